package uf

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tucontable-api/pkg/sii"
)

var _ sii.RateProvider = (*FixedProvider)(nil)

// FixedProvider entrega valores conocidos de antemano: una tabla por fecha y un valor por defecto.
// Sirve para desarrollo sin red y para pruebas.
type FixedProvider struct {
	defecto  decimal.Decimal
	porFecha map[string]decimal.Decimal // clave YYYY-MM-DD
}

// NewFixedProvider construye un provider que responde defecto para cualquier fecha.
// Un defecto cero deja sin valor las fechas que no estén en la tabla.
func NewFixedProvider(defecto decimal.Decimal) *FixedProvider {
	return &FixedProvider{defecto: defecto, porFecha: map[string]decimal.Decimal{}}
}

// ConValor agrega (o reemplaza) el valor de una fecha. Devuelve el mismo provider para encadenar.
// No es seguro llamarlo mientras otras goroutines consultan.
func (p *FixedProvider) ConValor(fecha string, valor decimal.Decimal) *FixedProvider {
	p.porFecha[fecha] = valor
	return p
}

// ValorUF implementa sii.RateProvider.
func (p *FixedProvider) ValorUF(ctx context.Context, fecha time.Time) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	if v, ok := p.porFecha[fecha.Format(fechaISO)]; ok {
		return v, nil
	}
	if p.defecto.IsZero() {
		return decimal.Zero, ErrValorNoDisponible
	}
	return p.defecto, nil
}
