package sii_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tucontable-api/pkg/sii"
)

func calendarioEn(t time.Time) *sii.CalendarioF29 {
	return sii.NewCalendarioF29(
		sii.CalendarioConZona(zonaPrueba),
		sii.CalendarioConClock(fixedClock(t)),
	)
}

// RUTs válidos 1234567d-DV, uno por cada último dígito del cuerpo.
var rutPorDigito = map[byte]string{
	'0': "12.345.670-K",
	'1': "12.345.671-8",
	'2': "12.345.672-6",
	'3': "12.345.673-4",
	'4': "12.345.674-2",
	'5': "12.345.675-0",
	'6': "12.345.676-9",
	'7': "12.345.677-7",
	'8': "12.345.678-5",
	'9': "12.345.679-3",
}

func TestDiaVencimientoF29_TablaCompleta(t *testing.T) {
	want := map[byte]int{'0': 21, '1': 12, '2': 13, '3': 14, '4': 15, '5': 16, '6': 17, '7': 18, '8': 19, '9': 20}
	for d, dia := range want {
		assert.Equal(t, dia, sii.DiaVencimientoF29(d), "dígito %c", d)
	}
}

func TestClasificarUrgencia_Bordes(t *testing.T) {
	cases := map[int]sii.EstadoVencimiento{
		-30: sii.EstadoVencido,
		-1:  sii.EstadoVencido,
		0:   sii.EstadoUrgente,
		3:   sii.EstadoUrgente,
		4:   sii.EstadoProximo,
		7:   sii.EstadoProximo,
		8:   sii.EstadoLejano,
		90:  sii.EstadoLejano,
	}
	for dias, want := range cases {
		assert.Equal(t, want, sii.ClasificarUrgencia(dias), "dias=%d", dias)
	}
}

// Período 2025-01 vence en febrero 2025: el 15 es sábado y el 16 domingo.
func TestVencimiento_TodosLosDigitosConAjusteFinDeSemana(t *testing.T) {
	cal := calendarioEn(time.Date(2025, 2, 10, 12, 0, 0, 0, zonaPrueba))

	cases := []struct {
		digito byte
		fecha  string
		dias   int
		estado sii.EstadoVencimiento
	}{
		{'1', "2025-02-12", 2, sii.EstadoUrgente},
		{'2', "2025-02-13", 3, sii.EstadoUrgente},
		{'3', "2025-02-14", 4, sii.EstadoProximo},
		{'4', "2025-02-17", 7, sii.EstadoProximo}, // sábado 15 -> lunes 17
		{'5', "2025-02-17", 7, sii.EstadoProximo}, // domingo 16 -> lunes 17
		{'6', "2025-02-17", 7, sii.EstadoProximo},
		{'7', "2025-02-18", 8, sii.EstadoLejano},
		{'8', "2025-02-19", 9, sii.EstadoLejano},
		{'9', "2025-02-20", 10, sii.EstadoLejano},
		{'0', "2025-02-21", 11, sii.EstadoLejano},
	}
	for _, tc := range cases {
		t.Run(string(tc.digito), func(t *testing.T) {
			res := cal.Vencimiento(rutPorDigito[tc.digito], "2025-01")

			require.True(t, res.Valido, res.Mensaje)
			assert.Equal(t, string(tc.digito), res.UltimoDigito)
			assert.Equal(t, tc.fecha, res.FechaVencimiento)
			assert.Equal(t, tc.dias, res.DiasRestantes)
			assert.Equal(t, tc.estado, res.Estado)
			assert.Empty(t, res.Error)
			assert.NotEqual(t, time.Saturday, res.Fecha.Weekday())
			assert.NotEqual(t, time.Sunday, res.Fecha.Weekday())
		})
	}
}

func TestVencimiento_CambioDeAnioYFinDeSemana(t *testing.T) {
	cal := calendarioEn(time.Date(2025, 1, 13, 9, 0, 0, 0, zonaPrueba))

	// Período diciembre vence en enero del año siguiente; el 12 de enero 2025 es domingo.
	res := cal.Vencimiento(rutPorDigito['1'], "2024-12")
	require.True(t, res.Valido)
	assert.Equal(t, "2025-01-13", res.FechaVencimiento)
	assert.Equal(t, 0, res.DiasRestantes)
	assert.Equal(t, sii.EstadoUrgente, res.Estado)
	assert.Contains(t, res.Mensaje, "vence hoy")

	// El 18 de enero 2025 es sábado -> lunes 20.
	res = cal.Vencimiento(rutPorDigito['7'], "2024-12")
	assert.Equal(t, "2025-01-20", res.FechaVencimiento)
	assert.Equal(t, 7, res.DiasRestantes)
}

func TestVencimiento_Vencido(t *testing.T) {
	cal := calendarioEn(time.Date(2025, 3, 1, 8, 0, 0, 0, zonaPrueba))

	res := cal.Vencimiento(rutPorDigito['8'], "2025-01")
	require.True(t, res.Valido)
	assert.Equal(t, -10, res.DiasRestantes)
	assert.Equal(t, sii.EstadoVencido, res.Estado)
	assert.Contains(t, res.Mensaje, "10 días vencido")
}

func TestVencimiento_PeriodosLejanos(t *testing.T) {
	hoy := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	cal := calendarioEn(time.Date(2025, 2, 10, 12, 0, 0, 0, zonaPrueba))

	futuro := cal.Vencimiento(rutPorDigito['8'], "9999-01")
	require.True(t, futuro.Valido)
	assert.Greater(t, futuro.DiasRestantes, 2_800_000)
	assert.Equal(t, futuro.FechaVencimiento, hoy.AddDate(0, 0, futuro.DiasRestantes).Format(time.DateOnly))
	assert.Equal(t, sii.EstadoLejano, futuro.Estado)

	pasado := cal.Vencimiento(rutPorDigito['8'], "1000-01")
	require.True(t, pasado.Valido)
	assert.Less(t, pasado.DiasRestantes, -370_000)
	assert.Equal(t, pasado.FechaVencimiento, hoy.AddDate(0, 0, pasado.DiasRestantes).Format(time.DateOnly))
	assert.Equal(t, sii.EstadoVencido, pasado.Estado)
}

func TestVencimiento_HoyDependeDeLaZona(t *testing.T) {
	// 2025-02-12 01:00 UTC es todavía 11 de febrero en UTC-3.
	cal := calendarioEn(time.Date(2025, 2, 12, 1, 0, 0, 0, time.UTC))

	res := cal.Vencimiento(rutPorDigito['1'], "2025-01")
	assert.Equal(t, 1, res.DiasRestantes)
}

func TestVencimiento_RUTInvalidoUsaCanalDeError(t *testing.T) {
	res := calendarioEn(time.Now()).Vencimiento("12345678-9", "2025-01")

	assert.False(t, res.Valido)
	assert.Equal(t, sii.ErrorRUTInvalido, res.Error)
	assert.Equal(t, sii.EstadoVencido, res.Estado, "la entrada inválida sigue informando VENCIDO")
	assert.Empty(t, res.FechaVencimiento)
	assert.Contains(t, res.Mensaje, "RUT inválido")
}

func TestVencimiento_PeriodoInvalido(t *testing.T) {
	cal := calendarioEn(time.Now())
	for _, periodo := range []string{"", "2025-13", "2025-00", "2025/01", "25-01", "0000-05", "enero"} {
		res := cal.Vencimiento(rutPorDigito['8'], periodo)
		assert.False(t, res.Valido, periodo)
		assert.Equal(t, sii.ErrorPeriodoInvalido, res.Error, periodo)
		assert.Equal(t, "8", res.UltimoDigito)
		assert.Equal(t, sii.EstadoVencido, res.Estado, periodo)
	}
}

func TestAjustarFinDeSemana(t *testing.T) {
	sab := time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)
	dom := time.Date(2025, 2, 16, 0, 0, 0, 0, time.UTC)
	lun := time.Date(2025, 2, 17, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, lun, sii.AjustarFinDeSemana(sab))
	assert.Equal(t, lun, sii.AjustarFinDeSemana(dom))
	assert.Equal(t, lun, sii.AjustarFinDeSemana(lun))
}

func TestPeriodoPorDeclarar(t *testing.T) {
	assert.Equal(t, "2025-01", calendarioEn(time.Date(2025, time.February, 10, 15, 0, 0, 0, time.UTC)).PeriodoPorDeclarar())
	assert.Equal(t, "2024-12", calendarioEn(time.Date(2025, time.January, 3, 15, 0, 0, 0, time.UTC)).PeriodoPorDeclarar())
}

func TestPeriodoValido(t *testing.T) {
	assert.True(t, sii.PeriodoValido("2025-02"))
	assert.True(t, sii.PeriodoValido("2025-2"))
	assert.False(t, sii.PeriodoValido("2025-13"))
	assert.False(t, sii.PeriodoValido("02-2025"))
}
