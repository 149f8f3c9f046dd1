package sii

import "github.com/shopspring/decimal"

// Tasas y categorías de retención vigentes.
var (
	TasaRetencionHonorarios   = decimal.RequireFromString("0.10")
	TasaRetencionConstruccion = decimal.RequireFromString("0.03")
)

const (
	TipoRetencionHonorarios   = "Honorarios (Art. 84 Ley de la Renta)"
	TipoRetencionConstruccion = "Construcción (Art. 84 bis Ley de la Renta)"
)

// Retencion es el resultado de un cálculo de retención: monto_a_pagar = monto_bruto − retencion.
type Retencion struct {
	MontoBruto    int64           `json:"monto_bruto"`
	Retencion     int64           `json:"retencion"`
	MontoAPagar   int64           `json:"monto_a_pagar"`
	TasaRetencion decimal.Decimal `json:"tasa_retencion"`
	TipoRetencion string          `json:"tipo_retencion"`
	Success       bool            `json:"success"`
	Mensaje       string          `json:"mensaje"`
}

// RetencionHonorarios calcula la retención de boletas de honorarios.
func RetencionHonorarios(bruto int64) Retencion {
	return calcularRetencion(bruto, TasaRetencionHonorarios, TipoRetencionHonorarios)
}

// RetencionConstruccion calcula la retención sobre contratos de construcción.
func RetencionConstruccion(bruto int64) Retencion {
	return calcularRetencion(bruto, TasaRetencionConstruccion, TipoRetencionConstruccion)
}

func calcularRetencion(bruto int64, tasa decimal.Decimal, tipo string) Retencion {
	res := Retencion{MontoBruto: bruto, TasaRetencion: tasa, TipoRetencion: tipo}
	if bruto < 0 {
		res.Mensaje = "Monto bruto inválido (debe ser mayor o igual a cero)"
		return res
	}
	// tasa < 1: la retención nunca supera al bruto
	res.Retencion, _ = RedondearPesos(decimal.NewFromInt(bruto).Mul(tasa))
	res.MontoAPagar = bruto - res.Retencion
	res.Success = true
	res.Mensaje = "Retención " + FormatearPesos(res.Retencion) + ", líquido a pagar " + FormatearPesos(res.MontoAPagar)
	return res
}
