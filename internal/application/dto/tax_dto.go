package dto

import "github.com/shopspring/decimal"

// Los montos en pesos llegan como número JSON; se validan con sii.PesosDesdeFloat / MontoDesdeFloat
// para que un negativo o un NaN se informe en el resultado y no como 400.

// IVARequest body para los endpoints de IVA.
type IVARequest struct {
	Monto float64 `json:"monto"`
}

// RetencionRequest body para los endpoints de retención.
type RetencionRequest struct {
	MontoBruto float64 `json:"monto_bruto"`
}

// UFAPesosRequest body para POST /api/tax/uf/a-pesos. Fecha vacía = hoy.
type UFAPesosRequest struct {
	CantidadUF decimal.Decimal `json:"cantidad_uf"`
	Fecha      string          `json:"fecha,omitempty"`
}

// PesosAUFRequest body para POST /api/tax/uf/desde-pesos.
type PesosAUFRequest struct {
	Pesos float64 `json:"pesos"`
	Fecha string  `json:"fecha,omitempty"`
}
