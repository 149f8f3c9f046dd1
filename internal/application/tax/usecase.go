// Package tax expone los cálculos de pkg/sii a la capa HTTP y al asistente, con métricas y logs.
package tax

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/observability/metrics"
	"github.com/jhoicas/tucontable-api/pkg/logger"
	"github.com/jhoicas/tucontable-api/pkg/sii"
)

// Nombres de operación (etiqueta "operacion" de las métricas).
const (
	OpValidarRUT            = "validar_rut"
	OpIVANetoABruto         = "iva_neto_a_bruto"
	OpIVABrutoANeto         = "iva_bruto_a_neto"
	OpExtraerIVA            = "extraer_iva"
	OpRetencionHonorarios   = "retencion_honorarios"
	OpRetencionConstruccion = "retencion_construccion"
	OpUFAPesos              = "uf_a_pesos"
	OpPesosAUF              = "pesos_a_uf"
	OpVencimientoF29        = "vencimiento_f29"
	OpConsultaSII           = "consulta_sii"
	OpAutorizacionBoletas   = "autorizacion_boletas"
)

// UseCase casos de uso de cálculo tributario. No tiene estado propio; los componentes de pkg/sii
// que recibe son seguros para uso concurrente.
type UseCase struct {
	conversor  *sii.ConversorUF
	calendario *sii.CalendarioF29
	registro   sii.Registro
	clock      sii.Clock
	log        *logger.Logger
}

// NewUseCase construye el caso de uso. clock nil usa la hora del sistema.
func NewUseCase(conv *sii.ConversorUF, cal *sii.CalendarioF29, reg sii.Registro, clock sii.Clock, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{conversor: conv, calendario: cal, registro: reg, clock: clock, log: log.Component("tax")}
}

// ValidarRUT valida y formatea un RUT.
func (uc *UseCase) ValidarRUT(raw string) sii.ValidacionRUT {
	res := sii.ValidarRUT(raw)
	metrics.IncCalculation(OpValidarRUT, res.Valido)
	return res
}

// IVANetoABruto calcula bruto e IVA a partir del neto.
func (uc *UseCase) IVANetoABruto(in dto.IVARequest) sii.DesgloseIVA {
	return uc.iva(OpIVANetoABruto, in.Monto, sii.IVANetoABruto)
}

// IVABrutoANeto descompone un bruto en neto e IVA.
func (uc *UseCase) IVABrutoANeto(in dto.IVARequest) sii.DesgloseIVA {
	return uc.iva(OpIVABrutoANeto, in.Monto, sii.IVABrutoANeto)
}

// ExtraerIVA obtiene el IVA incluido en un bruto.
func (uc *UseCase) ExtraerIVA(in dto.IVARequest) sii.DesgloseIVA {
	return uc.iva(OpExtraerIVA, in.Monto, sii.ExtraerIVA)
}

func (uc *UseCase) iva(op string, monto float64, fn func(int64) sii.DesgloseIVA) sii.DesgloseIVA {
	pesos, err := sii.PesosDesdeFloat(monto)
	if err != nil {
		metrics.IncCalculation(op, false)
		return sii.DesgloseIVA{TasaIVA: sii.TasaIVA, Mensaje: mensajeMonto(err)}
	}
	res := fn(pesos)
	metrics.IncCalculation(op, res.Success)
	return res
}

// RetencionHonorarios calcula la retención de boletas de honorarios.
func (uc *UseCase) RetencionHonorarios(in dto.RetencionRequest) sii.Retencion {
	return uc.retencion(OpRetencionHonorarios, in.MontoBruto, sii.TasaRetencionHonorarios, sii.TipoRetencionHonorarios, sii.RetencionHonorarios)
}

// RetencionConstruccion calcula la retención de servicios de construcción.
func (uc *UseCase) RetencionConstruccion(in dto.RetencionRequest) sii.Retencion {
	return uc.retencion(OpRetencionConstruccion, in.MontoBruto, sii.TasaRetencionConstruccion, sii.TipoRetencionConstruccion, sii.RetencionConstruccion)
}

func (uc *UseCase) retencion(op string, monto float64, tasa decimal.Decimal, tipo string, fn func(int64) sii.Retencion) sii.Retencion {
	pesos, err := sii.PesosDesdeFloat(monto)
	if err != nil {
		metrics.IncCalculation(op, false)
		return sii.Retencion{TasaRetencion: tasa, TipoRetencion: tipo, Mensaje: mensajeMonto(err)}
	}
	res := fn(pesos)
	metrics.IncCalculation(op, res.Success)
	return res
}

// UFAPesos convierte UF a pesos.
func (uc *UseCase) UFAPesos(ctx context.Context, in dto.UFAPesosRequest) sii.ConversionUF {
	res := uc.conversor.UFAPesos(ctx, in.CantidadUF, in.Fecha)
	uc.logConversion(OpUFAPesos, res)
	return res
}

// PesosAUF convierte pesos a UF.
func (uc *UseCase) PesosAUF(ctx context.Context, in dto.PesosAUFRequest) sii.ConversionUF {
	pesos, err := sii.PesosDesdeFloat(in.Pesos)
	if err != nil {
		res := uc.conversor.Rechazo(sii.DireccionPesosAUF, in.Fecha, mensajeMonto(err))
		uc.logConversion(OpPesosAUF, res)
		return res
	}
	res := uc.conversor.PesosAUF(ctx, pesos, in.Fecha)
	uc.logConversion(OpPesosAUF, res)
	return res
}

func (uc *UseCase) logConversion(op string, res sii.ConversionUF) {
	metrics.IncCalculation(op, res.Success)
	if !res.Success {
		uc.log.Info().Str("operacion", op).Str("fecha", res.FechaConsulta).Str("mensaje", res.Mensaje).Msg("conversión UF fallida")
	}
}

// VencimientoF29 calcula el vencimiento del F29 de un RUT para el período YYYY-MM.
func (uc *UseCase) VencimientoF29(rut, periodo string) sii.VencimientoF29 {
	res := uc.calendario.Vencimiento(rut, periodo)
	metrics.IncCalculation(OpVencimientoF29, res.Valido)
	return res
}

// ConsultarSII consulta la situación tributaria del RUT en el registro configurado.
func (uc *UseCase) ConsultarSII(ctx context.Context, rut string) sii.ConsultaSII {
	res := sii.ConsultarEstadoSII(ctx, uc.registro, rut, uc.clock)
	metrics.IncCalculation(OpConsultaSII, res.Success)
	if !res.Success {
		uc.log.Info().Str("operacion", OpConsultaSII).Str("rut", res.RUTFormateado).Str("mensaje", res.Mensaje).Msg("consulta SII fallida")
	}
	return res
}

// VerificarBoletas consulta si el RUT está autorizado para emitir boletas electrónicas.
func (uc *UseCase) VerificarBoletas(ctx context.Context, rut string) sii.ConsultaBoletas {
	res := sii.VerificarAutorizacionBoletas(ctx, uc.registro, rut)
	metrics.IncCalculation(OpAutorizacionBoletas, res.Success)
	return res
}

func mensajeMonto(err error) string {
	if errors.Is(err, sii.ErrMontoNoEntero) {
		return "El monto en pesos debe ser un número entero"
	}
	return "Monto inválido"
}
