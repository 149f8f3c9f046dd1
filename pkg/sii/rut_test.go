package sii_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tucontable-api/pkg/sii"
)

func TestValidarRUT_FormatoCanonicoValido(t *testing.T) {
	res := sii.ValidarRUT("12.345.678-5")

	assert.True(t, res.Valido)
	assert.Equal(t, "12.345.678-5", res.RUTFormateado)
	assert.Equal(t, "12345678", res.RUTNumerico)
	assert.Equal(t, "5", res.DigitoVerificador)
	assert.Equal(t, "RUT válido", res.Mensaje)
}

func TestValidarRUT_DigitoIncorrectoIndicaElEsperado(t *testing.T) {
	res := sii.ValidarRUT("12345678-9")

	assert.False(t, res.Valido)
	assert.Contains(t, res.Mensaje, "5", "el mensaje debe nombrar el dígito correcto")
	assert.Equal(t, "12.345.678-9", res.RUTFormateado, "el formato se produce aunque sea inválido")
	assert.Equal(t, "12345678", res.RUTNumerico)
}

func TestValidarRUT_VariantesDeEntrada(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		formato string
	}{
		{"sin puntos", "12345678-5", "12.345.678-5"},
		{"sin separadores", "123456785", "12.345.678-5"},
		{"con espacios", "  12 345 678 - 5 ", "12.345.678-5"},
		{"k minúscula", "12.345.670-k", "12.345.670-K"},
		{"verificador cero", "12.345.675-0", "12.345.675-0"},
		{"cuerpo corto", "1-9", "1-9"},
		{"siete dígitos", "1000001-7", "1.000.001-7"},
		{"nueve dígitos", "100000013-9", "100.000.013-9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := sii.ValidarRUT(tc.raw)
			assert.Equal(t, tc.formato, res.RUTFormateado)
		})
	}
}

func TestValidarRUT_RechazosSinPanico(t *testing.T) {
	cases := []struct {
		raw     string
		mensaje string
	}{
		{"", "RUT muy corto"},
		{"5", "RUT muy corto"},
		{"..--", "RUT muy corto"},
		{"12A45678-5", "RUT contiene caracteres inválidos"},
		{"12345678-X", "Dígito verificador inválido"},
		{"1234ñ", "RUT contiene caracteres inválidos"},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			res := sii.ValidarRUT(tc.raw)
			assert.False(t, res.Valido)
			assert.Equal(t, tc.mensaje, res.Mensaje)
			assert.Equal(t, tc.raw, res.RUTFormateado, "sin cuerpo legible se devuelve la entrada")
			_, ok := res.RUT()
			assert.False(t, ok)
		})
	}
}

func TestValidarRUT_VerificadorK(t *testing.T) {
	for _, raw := range []string{"10.000.013-K", "20000003-k", "12345670K"} {
		assert.True(t, sii.ValidarRUT(raw).Valido, raw)
	}
}

// Para cualquier cuerpo, formatear con su dígito calculado produce un RUT válido.
func TestValidarRUT_RoundTripConDVCalculado(t *testing.T) {
	for _, body := range []string{"1", "76", "999", "1000", "76086428", "96790240", "99570020", "20000008", "123456789"} {
		dv, err := sii.CalcularDV(body)
		require.NoError(t, err)

		res := sii.ValidarRUT(body + "-" + dv)
		require.True(t, res.Valido, "cuerpo %s con DV %s", body, dv)

		again := sii.ValidarRUT(res.RUTFormateado)
		assert.True(t, again.Valido)
		assert.Equal(t, res.RUTFormateado, again.RUTFormateado)
	}
}

func TestCalcularDV_ValoresConocidos(t *testing.T) {
	cases := map[string]string{
		"12345678": "5",
		"11111111": "1",
		"96790240": "3",
		"12345670": "K",
		"12345675": "0",
		"1":        "9",
	}
	for body, want := range cases {
		got, err := sii.CalcularDV(body)
		require.NoError(t, err)
		assert.Equal(t, want, got, body)
	}
}

func TestCalcularDV_ErrorSiNoEsNumerico(t *testing.T) {
	_, err := sii.CalcularDV("12A")
	assert.ErrorIs(t, err, sii.ErrRUTInvalido)

	_, err = sii.CalcularDV("")
	assert.ErrorIs(t, err, sii.ErrRUTInvalido)
}

func TestRUT_AccesoresNormalizados(t *testing.T) {
	r, ok := sii.ValidarRUT("12.345.678-5").RUT()
	require.True(t, ok)

	assert.Equal(t, "12345678", r.Numero())
	assert.Equal(t, "5", r.DV())
	assert.Equal(t, byte('8'), r.UltimoDigito(), "el último dígito es del cuerpo, no el verificador")
	assert.Equal(t, "12.345.678-5", r.String())
}

func TestFormatearRUT(t *testing.T) {
	assert.Equal(t, "76.086.428-5", sii.FormatearRUT("760864285"))
	assert.Equal(t, "abc", sii.FormatearRUT("abc"))
}
