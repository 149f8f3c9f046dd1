// Package sii contiene las implementaciones del registro de contribuyentes (sii.Registro).
package sii

import (
	"context"
	"time"

	"github.com/jhoicas/tucontable-api/pkg/sii"
)

// AdvertenciaSimulada marca toda ficha entregada por SimulatedRegistry.
const AdvertenciaSimulada = "Datos simulados para desarrollo"

var (
	_ sii.Registro = (*SimulatedRegistry)(nil)
	_ sii.Registro = UnavailableRegistry{}
)

// contribuyentesConocidos se indexan por cuerpo numérico del RUT.
var contribuyentesConocidos = map[string]sii.FichaContribuyente{
	"96790240": {
		RazonSocial:            "BANCO DE CHILE",
		ActividadEconomica:     "Banco comercial",
		FechaInicioActividades: "1893-10-15",
		Direccion:              "AHUMADA 251",
		Comuna:                 "SANTIAGO",
		Region:                 "METROPOLITANA",
		Telefono:               "+56226370000",
		Email:                  "contacto@bancochile.cl",
		RepresentanteLegal:     "EDUARDO EBENSPERGER ORREGO",
		Capital:                "UF 3.500.000",
		TipoContribuyente:      "Primera Categoría",
		RegimenTributario:      "Régimen General",
	},
	"99570020": {
		RazonSocial:            "SERVICIO DE IMPUESTOS INTERNOS",
		ActividadEconomica:     "Administración pública",
		FechaInicioActividades: "1902-02-27",
		Direccion:              "TEATINOS 120",
		Comuna:                 "SANTIAGO",
		Region:                 "METROPOLITANA",
		Telefono:               "+56228242828",
		Email:                  "contacto@sii.cl",
		RepresentanteLegal:     "HERNÁN FRIGOLETT CÓRDOVA",
		Capital:                "N/A",
		TipoContribuyente:      "Exento",
		RegimenTributario:      "Sector Público",
	},
}

// SimulatedRegistry es un registro determinista para desarrollo y demos. Nunca consulta al SII.
//
// Reglas para RUTs no conocidos, según el último dígito del cuerpo:
// múltiplo de 3 (incluye 0) -> INACTIVO, múltiplo de 5 -> NO_ENCONTRADO, resto -> ACTIVO.
// Boletas: autorizado si ese mismo dígito es par.
type SimulatedRegistry struct {
	// Latencia opcional para imitar una consulta real; respeta la cancelación del contexto.
	Latencia time.Duration
}

// NewSimulatedRegistry construye el registro simulado sin latencia.
func NewSimulatedRegistry() *SimulatedRegistry {
	return &SimulatedRegistry{}
}

// EstadoContribuyente devuelve la ficha simulada del RUT.
func (s *SimulatedRegistry) EstadoContribuyente(ctx context.Context, rut sii.RUT) (*sii.FichaContribuyente, error) {
	if err := s.esperar(ctx); err != nil {
		return nil, err
	}

	if conocido, ok := contribuyentesConocidos[rut.Numero()]; ok {
		ficha := conocido
		ficha.Estado = sii.EstadoActivo
		ficha.Advertencias = []string{AdvertenciaSimulada}
		return &ficha, nil
	}

	digito := int(rut.UltimoDigito() - '0')
	formateado := rut.String()
	switch {
	case digito%3 == 0:
		return &sii.FichaContribuyente{
			Estado:                 sii.EstadoInactivo,
			RazonSocial:            "EMPRESA INACTIVA " + formateado,
			ActividadEconomica:     "Sin actividad económica",
			FechaInicioActividades: "2020-01-15",
			Direccion:              "SIN DOMICILIO CONOCIDO",
			Comuna:                 "SANTIAGO",
			Region:                 "METROPOLITANA",
			TipoContribuyente:      "Segunda Categoría",
			RegimenTributario:      "Régimen Simplificado",
			Advertencias:           []string{"Contribuyente inactivo", AdvertenciaSimulada},
		}, nil
	case digito%5 == 0:
		return &sii.FichaContribuyente{
			Estado:       sii.EstadoNoEncontrado,
			Advertencias: []string{"RUT no encontrado en registros SII", AdvertenciaSimulada},
		}, nil
	default:
		return &sii.FichaContribuyente{
			Estado:                 sii.EstadoActivo,
			RazonSocial:            "EMPRESA DEMO " + formateado,
			ActividadEconomica:     "Servicios profesionales",
			FechaInicioActividades: "2022-03-10",
			Direccion:              "PROVIDENCIA 123",
			Comuna:                 "PROVIDENCIA",
			Region:                 "METROPOLITANA",
			Telefono:               "+56912345678",
			Email:                  "contacto@empresademo.cl",
			RepresentanteLegal:     "JUAN PÉREZ GONZÁLEZ",
			Capital:                "UF 1.000",
			TipoContribuyente:      "Primera Categoría",
			RegimenTributario:      "Régimen General",
			Advertencias:           []string{AdvertenciaSimulada},
		}, nil
	}
}

// AutorizacionBoletas autoriza los RUT cuyo último dígito del cuerpo es par.
func (s *SimulatedRegistry) AutorizacionBoletas(ctx context.Context, rut sii.RUT) (*sii.AutorizacionBoletas, error) {
	if err := s.esperar(ctx); err != nil {
		return nil, err
	}
	if (rut.UltimoDigito()-'0')%2 != 0 {
		return &sii.AutorizacionBoletas{Autorizado: false}, nil
	}
	return &sii.AutorizacionBoletas{
		Autorizado:        true,
		FechaAutorizacion: "2023-01-15",
		TipoAutorizacion:  "Boleta Electrónica",
		Vigencia:          "Indefinida",
	}, nil
}

func (s *SimulatedRegistry) esperar(ctx context.Context) error {
	if s.Latencia <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Latencia)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// UnavailableRegistry responde siempre sii.ErrRegistroNoDisponible. Es el registro por defecto fuera
// de desarrollo: mientras no exista una integración real, no se entregan datos inventados.
type UnavailableRegistry struct{}

// EstadoContribuyente implementa sii.Registro.
func (UnavailableRegistry) EstadoContribuyente(context.Context, sii.RUT) (*sii.FichaContribuyente, error) {
	return nil, sii.ErrRegistroNoDisponible
}

// AutorizacionBoletas implementa sii.Registro.
func (UnavailableRegistry) AutorizacionBoletas(context.Context, sii.RUT) (*sii.AutorizacionBoletas, error) {
	return nil, sii.ErrRegistroNoDisponible
}

// NewRegistry elige la implementación según la configuración (SII_REGISTRY).
func NewRegistry(kind string) sii.Registro {
	if kind == "simulated" {
		return NewSimulatedRegistry()
	}
	return UnavailableRegistry{}
}
