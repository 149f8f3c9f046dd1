package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UFValue es el valor de la UF en pesos para un día, guardado para no volver a consultar la fuente.
type UFValue struct {
	Fecha     time.Time // solo la fecha; la hora se ignora
	Valor     decimal.Decimal
	Fuente    string
	CreatedAt time.Time
}
