package tax_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/application/tax"
	siireg "github.com/jhoicas/tucontable-api/internal/infrastructure/sii"
	"github.com/jhoicas/tucontable-api/pkg/sii"
)

type ufFija struct{ valor decimal.Decimal }

func (u ufFija) ValorUF(context.Context, time.Time) (decimal.Decimal, error) { return u.valor, nil }

func nuevoUseCase(t *testing.T) *tax.UseCase {
	t.Helper()
	zona := time.FixedZone("CLT", -3*3600)
	clock := func() time.Time { return time.Date(2025, time.February, 10, 15, 0, 0, 0, time.UTC) }
	conv := sii.NewConversorUF(ufFija{valor: decimal.NewFromInt(37500)}, sii.WithClock(clock), sii.WithLocation(zona))
	cal := sii.NewCalendarioF29(sii.CalendarioConClock(clock), sii.CalendarioConZona(zona))
	return tax.NewUseCase(conv, cal, siireg.NewSimulatedRegistry(), clock, nil)
}

// ── IVA / retenciones desde float ──

func TestIVA_DesdeFloatEntero(t *testing.T) {
	uc := nuevoUseCase(t)
	res := uc.IVANetoABruto(dto.IVARequest{Monto: 100000})
	require.True(t, res.Success)
	assert.Equal(t, int64(119000), res.MontoBruto)
	assert.Equal(t, int64(19000), res.IVA)
}

func TestIVA_MontosNoValidosNoSonError(t *testing.T) {
	uc := nuevoUseCase(t)
	for _, monto := range []float64{-1, math.NaN(), math.Inf(1), 100.5} {
		res := uc.IVABrutoANeto(dto.IVARequest{Monto: monto})
		assert.False(t, res.Success, "monto %v", monto)
		assert.NotEmpty(t, res.Mensaje)
		assert.True(t, res.TasaIVA.Equal(sii.TasaIVA))
	}
}

func TestIVA_FraccionTieneMensajePropio(t *testing.T) {
	res := nuevoUseCase(t).ExtraerIVA(dto.IVARequest{Monto: 10.25})
	assert.Contains(t, res.Mensaje, "entero")
}

func TestRetencion_Honorarios(t *testing.T) {
	res := nuevoUseCase(t).RetencionHonorarios(dto.RetencionRequest{MontoBruto: 1000000})
	require.True(t, res.Success)
	assert.Equal(t, int64(100000), res.Retencion)
	assert.Equal(t, int64(900000), res.MontoAPagar)
}

func TestRetencion_NegativaConservaTipo(t *testing.T) {
	res := nuevoUseCase(t).RetencionConstruccion(dto.RetencionRequest{MontoBruto: math.NaN()})
	assert.False(t, res.Success)
	assert.Equal(t, sii.TipoRetencionConstruccion, res.TipoRetencion)
}

// ── UF ──

func TestPesosAUF_FechaPorDefectoEnZonaConfigurada(t *testing.T) {
	res := nuevoUseCase(t).PesosAUF(context.Background(), dto.PesosAUFRequest{Pesos: 100000})
	require.True(t, res.Success, res.Mensaje)
	assert.Equal(t, "2.67", res.CantidadUF.String())
	assert.Equal(t, "2025-02-10", res.FechaConsulta)
}

func TestPesosAUF_MontoInvalido(t *testing.T) {
	res := nuevoUseCase(t).PesosAUF(context.Background(), dto.PesosAUFRequest{Pesos: -5, Fecha: "2025-03-01"})
	assert.False(t, res.Success)
	assert.Equal(t, sii.DireccionPesosAUF, res.Direccion)
	assert.Equal(t, "2025-03-01", res.FechaConsulta)
	assert.Equal(t, sii.FuenteBancoCentral, res.Fuente)
}

func TestUFAPesos(t *testing.T) {
	res := nuevoUseCase(t).UFAPesos(context.Background(), dto.UFAPesosRequest{CantidadUF: decimal.NewFromInt(2), Fecha: "2025-03-01"})
	require.True(t, res.Success)
	assert.Equal(t, int64(75000), res.TotalPesos)
}

// ── F29 / SII ──

func TestVencimientoF29(t *testing.T) {
	res := nuevoUseCase(t).VencimientoF29("12.345.671-8", "2025-02")
	require.True(t, res.Valido)
	assert.NotEmpty(t, res.FechaVencimiento)
}

func TestConsultarSII_RegistroSimulado(t *testing.T) {
	res := nuevoUseCase(t).ConsultarSII(context.Background(), "96.790.240-3")
	require.True(t, res.Success)
	assert.Equal(t, "BANCO DE CHILE", res.Contribuyente.RazonSocial)
	assert.Equal(t, "2025-02-10T15:00:00Z", res.UltimaActualizacion)
}

func TestVerificarBoletas_RUTInvalido(t *testing.T) {
	res := nuevoUseCase(t).VerificarBoletas(context.Background(), "12.345.678-0")
	assert.False(t, res.Success)
	assert.Equal(t, "RUT inválido", res.Mensaje)
}
