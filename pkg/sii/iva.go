package sii

import "github.com/shopspring/decimal"

// TasaIVA es la tasa general del IVA en Chile (DL 825, art. 14).
var TasaIVA = decimal.RequireFromString("0.19")

// DesgloseIVA descompone un monto en neto, IVA y bruto. Siempre se cumple bruto = neto + iva.
type DesgloseIVA struct {
	MontoNeto  int64           `json:"monto_neto"`
	IVA        int64           `json:"iva"`
	MontoBruto int64           `json:"monto_bruto"`
	TasaIVA    decimal.Decimal `json:"tasa_iva"`
	Success    bool            `json:"success"`
	Mensaje    string          `json:"mensaje"`
}

// IVANetoABruto agrega el IVA a un monto neto: iva = round(neto × tasa).
func IVANetoABruto(neto int64) DesgloseIVA {
	if neto < 0 {
		return DesgloseIVA{MontoNeto: neto, TasaIVA: TasaIVA, Mensaje: "Monto neto inválido (debe ser mayor o igual a cero)"}
	}
	iva, ok := RedondearPesos(decimal.NewFromInt(neto).Mul(TasaIVA))
	var bruto int64
	if ok {
		bruto, ok = sumarPesos(neto, iva)
	}
	if !ok {
		return DesgloseIVA{MontoNeto: neto, TasaIVA: TasaIVA, Mensaje: MensajeFueraDeRango}
	}
	return DesgloseIVA{
		MontoNeto:  neto,
		IVA:        iva,
		MontoBruto: bruto,
		TasaIVA:    TasaIVA,
		Success:    true,
		Mensaje:    "Neto " + FormatearPesos(neto) + " + IVA " + FormatearPesos(iva) + " = " + FormatearPesos(bruto),
	}
}

// IVABrutoANeto quita el IVA de un monto bruto: neto = round(bruto / (1 + tasa)), iva = bruto − neto.
func IVABrutoANeto(bruto int64) DesgloseIVA {
	if bruto < 0 {
		return DesgloseIVA{MontoBruto: bruto, TasaIVA: TasaIVA, Mensaje: "Monto bruto inválido (debe ser mayor o igual a cero)"}
	}
	// neto < bruto siempre, así que el redondeo no desborda
	neto, _ := RedondearPesos(decimal.NewFromInt(bruto).Div(decimal.NewFromInt(1).Add(TasaIVA)))
	iva := bruto - neto
	return DesgloseIVA{
		MontoNeto:  neto,
		IVA:        iva,
		MontoBruto: bruto,
		TasaIVA:    TasaIVA,
		Success:    true,
		Mensaje:    "Bruto " + FormatearPesos(bruto) + " = neto " + FormatearPesos(neto) + " + IVA " + FormatearPesos(iva),
	}
}

// ExtraerIVA devuelve el IVA contenido en un monto bruto. Mismo cálculo que IVABrutoANeto.
func ExtraerIVA(bruto int64) DesgloseIVA {
	return IVABrutoANeto(bruto)
}
