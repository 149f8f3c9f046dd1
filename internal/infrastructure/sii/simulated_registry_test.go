package sii_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	siireg "github.com/jhoicas/tucontable-api/internal/infrastructure/sii"
	"github.com/jhoicas/tucontable-api/pkg/sii"
)

func rutValido(t *testing.T, raw string) sii.RUT {
	t.Helper()
	r, ok := sii.ValidarRUT(raw).RUT()
	require.True(t, ok, "el RUT de prueba %s debe ser válido", raw)
	return r
}

// ── Contribuyentes conocidos ──

func TestSimulated_BancoDeChile(t *testing.T) {
	reg := siireg.NewSimulatedRegistry()
	ficha, err := reg.EstadoContribuyente(context.Background(), rutValido(t, "96.790.240-3"))
	require.NoError(t, err)

	assert.Equal(t, sii.EstadoActivo, ficha.Estado)
	assert.Equal(t, "BANCO DE CHILE", ficha.RazonSocial)
	assert.Contains(t, ficha.Advertencias, siireg.AdvertenciaSimulada)
}

func TestSimulated_ConocidoNoSeModifica(t *testing.T) {
	reg := siireg.NewSimulatedRegistry()
	ficha, err := reg.EstadoContribuyente(context.Background(), rutValido(t, "99570020-4"))
	require.NoError(t, err)
	ficha.RazonSocial = "otra"

	again, err := reg.EstadoContribuyente(context.Background(), rutValido(t, "99570020-4"))
	require.NoError(t, err)
	assert.Equal(t, "SERVICIO DE IMPUESTOS INTERNOS", again.RazonSocial)
}

// ── Reglas por dígito ──

func TestSimulated_EstadoPorUltimoDigito(t *testing.T) {
	cases := []struct {
		rut    string
		estado sii.EstadoSII
	}{
		{"12.345.670-K", sii.EstadoInactivo},     // 0
		{"12.345.671-8", sii.EstadoActivo},       // 1
		{"12.345.673-4", sii.EstadoInactivo},     // 3
		{"12.345.675-0", sii.EstadoNoEncontrado}, // 5
		{"12.345.676-9", sii.EstadoInactivo},     // 6
		{"12.345.677-7", sii.EstadoActivo},       // 7
	}
	reg := siireg.NewSimulatedRegistry()
	for _, tc := range cases {
		t.Run(tc.rut, func(t *testing.T) {
			ficha, err := reg.EstadoContribuyente(context.Background(), rutValido(t, tc.rut))
			require.NoError(t, err)
			assert.Equal(t, tc.estado, ficha.Estado)
			assert.Contains(t, ficha.Advertencias, siireg.AdvertenciaSimulada)
		})
	}
}

func TestSimulated_ActivoIncluyeRUTEnRazonSocial(t *testing.T) {
	ficha, err := siireg.NewSimulatedRegistry().EstadoContribuyente(context.Background(), rutValido(t, "12345671-8"))
	require.NoError(t, err)
	assert.Equal(t, "EMPRESA DEMO 12.345.671-8", ficha.RazonSocial)
}

func TestSimulated_Boletas(t *testing.T) {
	reg := siireg.NewSimulatedRegistry()

	par, err := reg.AutorizacionBoletas(context.Background(), rutValido(t, "12.345.672-6"))
	require.NoError(t, err)
	assert.True(t, par.Autorizado)
	assert.Equal(t, "2023-01-15", par.FechaAutorizacion)

	impar, err := reg.AutorizacionBoletas(context.Background(), rutValido(t, "12.345.673-4"))
	require.NoError(t, err)
	assert.False(t, impar.Autorizado)
	assert.Empty(t, impar.TipoAutorizacion)
}

func TestSimulated_LatenciaRespetaContexto(t *testing.T) {
	reg := &siireg.SimulatedRegistry{Latencia: time.Minute}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := reg.EstadoContribuyente(ctx, rutValido(t, "12345671-8"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ── Integración con ConsultarEstadoSII ──

func TestConsultarEstadoSII_ConRegistroSimulado(t *testing.T) {
	res := sii.ConsultarEstadoSII(context.Background(), siireg.NewSimulatedRegistry(), "12.345.675-0", nil)
	assert.True(t, res.Success)
	assert.Equal(t, sii.EstadoNoEncontrado, res.EstadoSII)
	assert.Equal(t, "12.345.675-0", res.RUTFormateado)
}

func TestUnavailableRegistry_SiempreFalla(t *testing.T) {
	reg := siireg.UnavailableRegistry{}
	_, err := reg.EstadoContribuyente(context.Background(), rutValido(t, "12345671-8"))
	assert.ErrorIs(t, err, sii.ErrRegistroNoDisponible)

	res := sii.ConsultarEstadoSII(context.Background(), reg, "12345671-8", nil)
	assert.False(t, res.Success)
	assert.Equal(t, sii.EstadoError, res.EstadoSII)

	bol := sii.VerificarAutorizacionBoletas(context.Background(), reg, "12345671-8")
	assert.False(t, bol.Success)
}

func TestNewRegistry_SeleccionPorConfig(t *testing.T) {
	assert.IsType(t, &siireg.SimulatedRegistry{}, siireg.NewRegistry("simulated"))
	assert.IsType(t, siireg.UnavailableRegistry{}, siireg.NewRegistry("none"))
	assert.IsType(t, siireg.UnavailableRegistry{}, siireg.NewRegistry(""))
}
