package uf

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tucontable-api/internal/domain/entity"
	"github.com/jhoicas/tucontable-api/internal/domain/repository"
	"github.com/jhoicas/tucontable-api/pkg/logger"
	"github.com/jhoicas/tucontable-api/pkg/sii"
)

var _ sii.RateProvider = (*StoredProvider)(nil)

// StoredProvider lee primero la tabla uf_values y, si no hay valor, consulta next y lo guarda.
// Un fallo de la base de datos no impide responder: se registra y se sigue con next.
type StoredProvider struct {
	next   sii.RateProvider
	repo   repository.UFValueRepository
	fuente string
	log    *logger.Logger
}

// NewStoredProvider envuelve next. fuente queda registrada junto a cada valor guardado.
func NewStoredProvider(next sii.RateProvider, repo repository.UFValueRepository, fuente string, log *logger.Logger) *StoredProvider {
	if log == nil {
		log = logger.Nop()
	}
	return &StoredProvider{next: next, repo: repo, fuente: fuente, log: log}
}

// ValorUF implementa sii.RateProvider.
func (p *StoredProvider) ValorUF(ctx context.Context, fecha time.Time) (decimal.Decimal, error) {
	dia := diaCivil(fecha)

	guardado, err := p.repo.Get(ctx, dia)
	if err != nil {
		p.log.Warn().Err(err).Str("fecha", dia.Format(fechaISO)).Msg("no se pudo leer uf_values")
	} else if guardado != nil && guardado.Valor.IsPositive() {
		return guardado.Valor, nil
	}

	v, err := p.next.ValorUF(ctx, fecha)
	if err != nil {
		return decimal.Zero, err
	}
	if !v.IsPositive() {
		return v, nil
	}

	if err := p.repo.Upsert(ctx, &entity.UFValue{Fecha: dia, Valor: v, Fuente: p.fuente}); err != nil {
		p.log.Warn().Err(err).Str("fecha", dia.Format(fechaISO)).Msg("no se pudo guardar valor UF")
	}
	return v, nil
}
