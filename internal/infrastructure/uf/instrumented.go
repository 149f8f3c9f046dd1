package uf

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tucontable-api/internal/observability/metrics"
	"github.com/jhoicas/tucontable-api/pkg/logger"
	"github.com/jhoicas/tucontable-api/pkg/sii"
)

var _ sii.RateProvider = (*InstrumentedProvider)(nil)

// InstrumentedProvider registra métricas y logs de cada consulta a la fuente.
type InstrumentedProvider struct {
	next   sii.RateProvider
	fuente string
	log    *logger.Logger
}

// NewInstrumentedProvider envuelve next.
func NewInstrumentedProvider(next sii.RateProvider, fuente string, log *logger.Logger) *InstrumentedProvider {
	if log == nil {
		log = logger.Nop()
	}
	return &InstrumentedProvider{next: next, fuente: fuente, log: log}
}

// ValorUF implementa sii.RateProvider.
func (p *InstrumentedProvider) ValorUF(ctx context.Context, fecha time.Time) (decimal.Decimal, error) {
	inicio := time.Now()
	v, err := p.next.ValorUF(ctx, fecha)
	dur := time.Since(inicio)
	metrics.ObserveUFLookup(p.fuente, err, dur)

	if err != nil {
		p.log.Warn().Err(err).
			Str("fuente", p.fuente).
			Str("fecha", fecha.Format(fechaISO)).
			Dur("duracion", dur).
			Msg("consulta UF fallida")
		return decimal.Zero, err
	}
	p.log.Debug().
		Str("fuente", p.fuente).
		Str("fecha", fecha.Format(fechaISO)).
		Str("valor", v.String()).
		Dur("duracion", dur).
		Msg("valor UF obtenido")
	return v, nil
}
