// Package sii reúne los cálculos tributarios chilenos usados por la API: validación de RUT,
// IVA, retenciones, conversión UF/pesos y vencimientos del Formulario 29.
//
// Todas las funciones públicas son totales: nunca entran en pánico ni devuelven error por
// entradas mal formadas; informan el problema en los campos Valido/Success y Mensaje del resultado.
package sii

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrMontoInvalido se devuelve en los bordes (HTTP, asistente) cuando un monto no es un número
// finito y no negativo.
var ErrMontoInvalido = errors.New("sii: monto inválido")

// ErrMontoNoEntero indica un monto en pesos con fracción (el peso chileno no tiene subunidades).
var ErrMontoNoEntero = errors.New("sii: el monto en pesos debe ser entero")

// MensajeFueraDeRango se informa cuando un resultado no cabe en un int64 de pesos.
const MensajeFueraDeRango = "Monto fuera de rango"

var (
	maxPesos = decimal.NewFromInt(math.MaxInt64)
	minPesos = decimal.NewFromInt(math.MinInt64)
)

// RedondearPesos redondea a pesos enteros con la regla "mitad lejos de cero".
// Es el único punto de redondeo monetario del paquete. ok es false si el resultado
// no cabe en un int64.
func RedondearPesos(d decimal.Decimal) (pesos int64, ok bool) {
	r := d.Round(0)
	if r.GreaterThan(maxPesos) || r.LessThan(minPesos) {
		return 0, false
	}
	return r.IntPart(), true
}

// sumarPesos suma dos montos no negativos; ok es false si la suma desborda.
func sumarPesos(a, b int64) (int64, bool) {
	if b > math.MaxInt64-a {
		return 0, false
	}
	return a + b, true
}

// RedondearUF redondea una cantidad de UF a 2 decimales ("mitad lejos de cero").
func RedondearUF(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MontoDesdeFloat convierte un número recibido como float64 (JSON) en decimal, rechazando NaN,
// infinitos y negativos. decimal.NewFromFloat entra en pánico con NaN/Inf, por eso se valida antes.
func MontoDesdeFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Zero, ErrMontoInvalido
	}
	return decimal.NewFromFloat(f), nil
}

// PesosDesdeFloat es MontoDesdeFloat para montos en pesos: además exige un valor entero.
func PesosDesdeFloat(f float64) (int64, error) {
	d, err := MontoDesdeFloat(f)
	if err != nil {
		return 0, err
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, ErrMontoNoEntero
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt64 / 100)) {
		return 0, ErrMontoInvalido
	}
	return d.IntPart(), nil
}

var printerCL = message.NewPrinter(language.MustParse("es-CL"))

// FormatearPesos formatea un monto como pesos chilenos, ej. 119000 -> "$119.000".
func FormatearPesos(monto int64) string {
	if monto < 0 {
		return "-$" + printerCL.Sprintf("%d", -monto)
	}
	return "$" + printerCL.Sprintf("%d", monto)
}
