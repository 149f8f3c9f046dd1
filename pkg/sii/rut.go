package sii

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrRUTInvalido indica que el RUT no superó la validación del dígito verificador.
var ErrRUTInvalido = errors.New("sii: RUT inválido")

// ValidacionRUT es el resultado de ValidarRUT. RUTNumerico y DigitoVerificador solo vienen
// informados cuando el cuerpo pudo leerse (aunque el dígito no coincida).
type ValidacionRUT struct {
	Valido            bool   `json:"valido"`
	RUTFormateado     string `json:"rut_formateado"`
	Mensaje           string `json:"mensaje"`
	RUTNumerico       string `json:"rut_numerico,omitempty"`
	DigitoVerificador string `json:"digito_verificador,omitempty"`
}

// RUT es un RUT ya validado. Solo se obtiene desde ValidacionRUT.RUT().
type RUT struct {
	numero string
	dv     string
}

// Numero devuelve el cuerpo numérico (sin puntos ni dígito verificador).
func (r RUT) Numero() string { return r.numero }

// DV devuelve el dígito verificador ("0".."9" o "K").
func (r RUT) DV() string { return r.dv }

// UltimoDigito devuelve el último dígito del cuerpo numérico (no el verificador).
func (r RUT) UltimoDigito() byte { return r.numero[len(r.numero)-1] }

// String devuelve la forma canónica 12.345.678-5.
func (r RUT) String() string { return agruparMiles(r.numero) + "-" + r.dv }

// RUT devuelve el RUT normalizado si la validación fue exitosa.
func (v ValidacionRUT) RUT() (RUT, bool) {
	if !v.Valido {
		return RUT{}, false
	}
	return RUT{numero: v.RUTNumerico, dv: v.DigitoVerificador}, true
}

// ValidarRUT limpia, valida y formatea un RUT chileno.
// Acepta "12.345.678-5", "12345678-5", "123456785" o variantes con espacios y k minúscula.
func ValidarRUT(raw string) ValidacionRUT {
	limpio := limpiarRUT(raw)
	if len(limpio) < 2 {
		return ValidacionRUT{RUTFormateado: raw, Mensaje: "RUT muy corto"}
	}

	numero, dv := limpio[:len(limpio)-1], limpio[len(limpio)-1:]
	if !soloDigitos(numero) {
		return ValidacionRUT{RUTFormateado: raw, Mensaje: "RUT contiene caracteres inválidos"}
	}
	if !(dv == "K" || soloDigitos(dv)) {
		return ValidacionRUT{RUTFormateado: raw, Mensaje: "Dígito verificador inválido"}
	}

	esperado := digitoVerificador(numero)
	res := ValidacionRUT{
		Valido:            dv == esperado,
		RUTFormateado:     agruparMiles(numero) + "-" + dv,
		RUTNumerico:       numero,
		DigitoVerificador: dv,
	}
	if res.Valido {
		res.Mensaje = "RUT válido"
	} else {
		res.Mensaje = fmt.Sprintf("RUT inválido. Dígito verificador debería ser %s", esperado)
	}
	return res
}

// CalcularDV calcula el dígito verificador de un cuerpo numérico (se ignoran puntos y espacios).
func CalcularDV(numero string) (string, error) {
	limpio := limpiarRUT(numero)
	if limpio == "" || !soloDigitos(limpio) {
		return "", fmt.Errorf("%w: el cuerpo debe contener solo dígitos", ErrRUTInvalido)
	}
	return digitoVerificador(limpio), nil
}

// FormatearRUT devuelve la forma canónica del RUT, o la entrada original si no se puede leer.
func FormatearRUT(raw string) string {
	return ValidarRUT(raw).RUTFormateado
}

// digitoVerificador aplica el módulo 11 con pesos 2..7 cíclicos, de derecha a izquierda.
func digitoVerificador(numero string) string {
	suma, peso := 0, 2
	for i := len(numero) - 1; i >= 0; i-- {
		suma += int(numero[i]-'0') * peso
		if peso == 7 {
			peso = 2
		} else {
			peso++
		}
	}
	switch resto := suma % 11; resto {
	case 0:
		return "0"
	case 1:
		return "K"
	default:
		return string(rune('0' + 11 - resto))
	}
}

func limpiarRUT(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '.' || r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

func soloDigitos(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// agruparMiles inserta un punto cada 3 dígitos contando desde la derecha.
func agruparMiles(numero string) string {
	n := len(numero)
	if n <= 3 {
		return numero
	}
	var b strings.Builder
	b.Grow(n + n/3)
	primero := n % 3
	if primero == 0 {
		primero = 3
	}
	b.WriteString(numero[:primero])
	for i := primero; i < n; i += 3 {
		b.WriteByte('.')
		b.WriteString(numero[i : i+3])
	}
	return b.String()
}
