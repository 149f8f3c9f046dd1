package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/domain"
	"github.com/jhoicas/tucontable-api/internal/observability/metrics"
	"github.com/jhoicas/tucontable-api/pkg/logger"
	"github.com/jhoicas/tucontable-api/pkg/sii"
)

// TaxService es lo que el asistente usa del caso de uso tributario (tax.UseCase).
type TaxService interface {
	ValidarRUT(raw string) sii.ValidacionRUT
	IVANetoABruto(in dto.IVARequest) sii.DesgloseIVA
	IVABrutoANeto(in dto.IVARequest) sii.DesgloseIVA
	ExtraerIVA(in dto.IVARequest) sii.DesgloseIVA
	RetencionHonorarios(in dto.RetencionRequest) sii.Retencion
	RetencionConstruccion(in dto.RetencionRequest) sii.Retencion
	UFAPesos(ctx context.Context, in dto.UFAPesosRequest) sii.ConversionUF
	PesosAUF(ctx context.Context, in dto.PesosAUFRequest) sii.ConversionUF
	VencimientoF29(rut, periodo string) sii.VencimientoF29
	ConsultarSII(ctx context.Context, rut string) sii.ConsultaSII
	VerificarBoletas(ctx context.Context, rut string) sii.ConsultaBoletas
}

// ClientService es lo que el asistente usa del caso de uso de clientes (clients.UseCase).
type ClientService interface {
	Create(ctx context.Context, companyID string, in dto.CreateClientRequest) (*dto.ClientResponse, error)
	Update(ctx context.Context, companyID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error)
}

// Dispatcher ejecuta comandos del asistente contra los casos de uso. Un comando desconocido
// o con JSON inválido produce un CommandResult fallido; nunca corta la conversación.
type Dispatcher struct {
	tax     TaxService
	clients ClientService
	log     *logger.Logger
}

// NewDispatcher construye el dispatcher. clients nil deshabilita los comandos de escritura.
func NewDispatcher(tax TaxService, clients ClientService, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{tax: tax, clients: clients, log: log.Component("assistant")}
}

type rutPayload struct {
	RUT string `json:"rut"`
}

type f29Payload struct {
	RUT     string `json:"rut"`
	Periodo string `json:"periodo"`
}

type updateClientePayload struct {
	ID      string                  `json:"id"`
	Updates dto.UpdateClientRequest `json:"updates"`
}

// Dispatch ejecuta un comando en nombre del estudio companyID.
func (d *Dispatcher) Dispatch(ctx context.Context, companyID string, cmd Command) dto.CommandResult {
	data, ok, msg := d.run(ctx, companyID, cmd)
	res := dto.CommandResult{Command: cmd.Name, Success: ok, Message: msg}
	if data != nil {
		if raw, err := json.Marshal(data); err == nil {
			res.Data = raw
		}
	}
	metrics.IncAssistantCommand(cmd.Name, ok)
	if !ok {
		d.log.Info().Str("comando", cmd.Name).Str("company_id", companyID).Str("mensaje", msg).Msg("comando del asistente fallido")
	}
	return res
}

func (d *Dispatcher) run(ctx context.Context, companyID string, cmd Command) (any, bool, string) {
	switch cmd.Name {
	case CmdValidarRUT:
		var p rutPayload
		if err := decode(cmd.Payload, &p); err != nil {
			return nil, false, err.Error()
		}
		r := d.tax.ValidarRUT(p.RUT)
		return r, r.Valido, r.Mensaje

	case CmdIVANetoABruto, CmdIVABrutoANeto, CmdExtraerIVA:
		var p dto.IVARequest
		if err := decode(cmd.Payload, &p); err != nil {
			return nil, false, err.Error()
		}
		var r sii.DesgloseIVA
		switch cmd.Name {
		case CmdIVANetoABruto:
			r = d.tax.IVANetoABruto(p)
		case CmdIVABrutoANeto:
			r = d.tax.IVABrutoANeto(p)
		default:
			r = d.tax.ExtraerIVA(p)
		}
		return r, r.Success, r.Mensaje

	case CmdRetencionHonorarios, CmdRetencionConstruccion:
		var p dto.RetencionRequest
		if err := decode(cmd.Payload, &p); err != nil {
			return nil, false, err.Error()
		}
		var r sii.Retencion
		if cmd.Name == CmdRetencionConstruccion {
			r = d.tax.RetencionConstruccion(p)
		} else {
			r = d.tax.RetencionHonorarios(p)
		}
		return r, r.Success, r.Mensaje

	case CmdUFAPesos:
		var p dto.UFAPesosRequest
		if err := decode(cmd.Payload, &p); err != nil {
			return nil, false, err.Error()
		}
		r := d.tax.UFAPesos(ctx, p)
		return r, r.Success, r.Mensaje

	case CmdPesosAUF:
		var p dto.PesosAUFRequest
		if err := decode(cmd.Payload, &p); err != nil {
			return nil, false, err.Error()
		}
		r := d.tax.PesosAUF(ctx, p)
		return r, r.Success, r.Mensaje

	case CmdVencimientoF29:
		var p f29Payload
		if err := decode(cmd.Payload, &p); err != nil {
			return nil, false, err.Error()
		}
		r := d.tax.VencimientoF29(p.RUT, p.Periodo)
		return r, r.Valido, r.Mensaje

	case CmdConsultarSII:
		var p rutPayload
		if err := decode(cmd.Payload, &p); err != nil {
			return nil, false, err.Error()
		}
		r := d.tax.ConsultarSII(ctx, p.RUT)
		return r, r.Success, r.Mensaje

	case CmdVerificarBoletas:
		var p rutPayload
		if err := decode(cmd.Payload, &p); err != nil {
			return nil, false, err.Error()
		}
		r := d.tax.VerificarBoletas(ctx, p.RUT)
		return r, r.Success, r.Mensaje

	case CmdCreateCliente:
		if d.clients == nil || companyID == "" {
			return nil, false, "Comando no disponible en esta sesión"
		}
		var p dto.CreateClientRequest
		if err := decode(cmd.Payload, &p); err != nil {
			return nil, false, err.Error()
		}
		c, err := d.clients.Create(ctx, companyID, p)
		if err != nil {
			return nil, false, clientError(err)
		}
		return c, true, "Cliente " + c.RazonSocial + " creado"

	case CmdUpdateCliente:
		if d.clients == nil || companyID == "" {
			return nil, false, "Comando no disponible en esta sesión"
		}
		var p updateClientePayload
		if err := decode(cmd.Payload, &p); err != nil {
			return nil, false, err.Error()
		}
		if p.ID == "" {
			return nil, false, "Falta el id del cliente"
		}
		c, err := d.clients.Update(ctx, companyID, p.ID, p.Updates)
		if err != nil {
			return nil, false, clientError(err)
		}
		return c, true, "Cliente " + c.RazonSocial + " actualizado"
	}
	return nil, false, fmt.Sprintf("Comando desconocido: %s", cmd.Name)
}

func decode(payload string, v any) error {
	if payload == "" {
		payload = "{}"
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return fmt.Errorf("JSON del comando inválido: %v", err)
	}
	return nil
}

// clientError traduce errores de dominio a un mensaje apto para mostrar en el chat.
func clientError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRUT), errors.Is(err, domain.ErrInvalidInput):
		return err.Error()
	case errors.Is(err, domain.ErrDuplicate):
		return "Ya existe un cliente con ese RUT"
	case errors.Is(err, domain.ErrNotFound):
		return "Cliente no encontrado"
	}
	return "No se pudo guardar el cliente"
}
