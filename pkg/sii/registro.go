package sii

import (
	"context"
	"errors"
	"time"
)

// FuenteSII es la procedencia informada en las consultas de registro.
const FuenteSII = "SII Chile"

// EstadoSII es la situación del contribuyente ante el SII.
type EstadoSII string

const (
	EstadoActivo       EstadoSII = "ACTIVO"
	EstadoInactivo     EstadoSII = "INACTIVO"
	EstadoNoAutorizado EstadoSII = "NO_AUTORIZADO"
	EstadoError        EstadoSII = "ERROR"
	EstadoNoEncontrado EstadoSII = "NO_ENCONTRADO"
)

// ErrRegistroNoDisponible lo devuelven los registros que no tienen backend configurado.
var ErrRegistroNoDisponible = errors.New("sii: registro de contribuyentes no disponible")

// FichaContribuyente son los datos que entrega el registro para un RUT.
type FichaContribuyente struct {
	Estado                 EstadoSII `json:"estado_sii"`
	RazonSocial            string    `json:"razon_social,omitempty"`
	ActividadEconomica     string    `json:"actividad_economica,omitempty"`
	FechaInicioActividades string    `json:"fecha_inicio_actividades,omitempty"`
	Direccion              string    `json:"direccion,omitempty"`
	Comuna                 string    `json:"comuna,omitempty"`
	Region                 string    `json:"region,omitempty"`
	Telefono               string    `json:"telefono,omitempty"`
	Email                  string    `json:"email,omitempty"`
	RepresentanteLegal     string    `json:"representante_legal,omitempty"`
	Capital                string    `json:"capital,omitempty"`
	TipoContribuyente      string    `json:"tipo_contribuyente,omitempty"`
	RegimenTributario      string    `json:"regimen_tributario,omitempty"`
	Advertencias           []string  `json:"advertencias,omitempty"`
}

// AutorizacionBoletas indica si el contribuyente puede emitir boletas electrónicas.
type AutorizacionBoletas struct {
	Autorizado        bool   `json:"autorizado_boletas"`
	FechaAutorizacion string `json:"fecha_autorizacion,omitempty"`
	TipoAutorizacion  string `json:"tipo_autorizacion,omitempty"`
	Vigencia          string `json:"vigencia,omitempty"`
}

// Registro es el cliente del registro de contribuyentes. Recibe siempre un RUT ya validado.
type Registro interface {
	EstadoContribuyente(ctx context.Context, rut RUT) (*FichaContribuyente, error)
	AutorizacionBoletas(ctx context.Context, rut RUT) (*AutorizacionBoletas, error)
}

// ConsultaSII es el resultado de ConsultarEstadoSII.
type ConsultaSII struct {
	RUT                 string              `json:"rut"`
	RUTFormateado       string              `json:"rut_formateado"`
	EstadoSII           EstadoSII           `json:"estado_sii"`
	Contribuyente       *FichaContribuyente `json:"contribuyente,omitempty"`
	UltimaActualizacion string              `json:"ultima_actualizacion"`
	Fuente              string              `json:"fuente"`
	Success             bool                `json:"success"`
	Mensaje             string              `json:"mensaje"`
	Advertencias        []string            `json:"advertencias,omitempty"`
}

// ConsultaBoletas es el resultado de VerificarAutorizacionBoletas.
type ConsultaBoletas struct {
	RUT string `json:"rut"`
	AutorizacionBoletas
	Success bool   `json:"success"`
	Mensaje string `json:"mensaje"`
}

// ConsultarEstadoSII valida el RUT y consulta su situación en el registro.
func ConsultarEstadoSII(ctx context.Context, reg Registro, raw string, clock Clock) ConsultaSII {
	ahora := clock.ahora().UTC().Format(time.RFC3339)
	validacion := ValidarRUT(raw)
	r, ok := validacion.RUT()
	if !ok {
		return ConsultaSII{
			RUT:                 raw,
			RUTFormateado:       raw,
			EstadoSII:           EstadoError,
			UltimaActualizacion: ahora,
			Fuente:              FuenteSII,
			Mensaje:             "RUT inválido para consulta SII",
			Advertencias:        []string{"Verificar formato del RUT"},
		}
	}

	var ficha *FichaContribuyente
	err := llamarSeguro(func() error {
		if reg == nil {
			return ErrRegistroNoDisponible
		}
		var err error
		ficha, err = reg.EstadoContribuyente(ctx, r)
		return err
	})
	if err != nil || ficha == nil {
		return ConsultaSII{
			RUT:                 r.Numero(),
			RUTFormateado:       r.String(),
			EstadoSII:           EstadoError,
			UltimaActualizacion: ahora,
			Fuente:              FuenteSII,
			Mensaje:             "Error al consultar SII",
			Advertencias:        []string{"Servicio temporalmente no disponible"},
		}
	}

	return ConsultaSII{
		RUT:                 r.Numero(),
		RUTFormateado:       r.String(),
		EstadoSII:           ficha.Estado,
		Contribuyente:       ficha,
		UltimaActualizacion: ahora,
		Fuente:              FuenteSII,
		Success:             true,
		Mensaje:             "Información de " + r.String() + " obtenida exitosamente",
		Advertencias:        ficha.Advertencias,
	}
}

// VerificarAutorizacionBoletas valida el RUT y consulta si puede emitir boletas electrónicas.
func VerificarAutorizacionBoletas(ctx context.Context, reg Registro, raw string) ConsultaBoletas {
	validacion := ValidarRUT(raw)
	r, ok := validacion.RUT()
	if !ok {
		return ConsultaBoletas{RUT: raw, Mensaje: "RUT inválido"}
	}

	var aut *AutorizacionBoletas
	err := llamarSeguro(func() error {
		if reg == nil {
			return ErrRegistroNoDisponible
		}
		var err error
		aut, err = reg.AutorizacionBoletas(ctx, r)
		return err
	})
	if err != nil || aut == nil {
		return ConsultaBoletas{RUT: r.String(), Mensaje: "Error al verificar autorización"}
	}

	res := ConsultaBoletas{RUT: r.String(), AutorizacionBoletas: *aut, Success: true}
	if aut.Autorizado {
		res.Mensaje = "Contribuyente autorizado para emitir boletas electrónicas"
	} else {
		res.Mensaje = "Contribuyente no autorizado para boletas electrónicas"
	}
	return res
}
