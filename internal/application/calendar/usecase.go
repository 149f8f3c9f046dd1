// Package calendar arma el calendario de vencimientos F29 de la cartera de un estudio.
package calendar

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/application/ports"
	"github.com/jhoicas/tucontable-api/internal/domain"
	"github.com/jhoicas/tucontable-api/internal/domain/entity"
	"github.com/jhoicas/tucontable-api/internal/domain/repository"
	"github.com/jhoicas/tucontable-api/internal/observability/metrics"
	"github.com/jhoicas/tucontable-api/pkg/logger"
	"github.com/jhoicas/tucontable-api/pkg/sii"
)

// ClientLister entrega los clientes activos de un estudio.
type ClientLister interface {
	ListAll(ctx context.Context, companyID string) ([]*entity.Client, error)
}

// Export archivo generado por un exportador.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UseCase calendario F29.
type UseCase struct {
	clients    ClientLister
	companies  repository.CompanyRepository
	calendario *sii.CalendarioF29
	exporters  map[string]ports.CalendarExporter
	log        *logger.Logger
}

// NewUseCase construye el caso de uso. exporters se indexa por extensión ("pdf", "xlsx").
func NewUseCase(clients ClientLister, companies repository.CompanyRepository, cal *sii.CalendarioF29, log *logger.Logger, exporters ...ports.CalendarExporter) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &UseCase{
		clients:    clients,
		companies:  companies,
		calendario: cal,
		exporters:  make(map[string]ports.CalendarExporter, len(exporters)),
		log:        log.Component("calendar"),
	}
	for _, e := range exporters {
		uc.exporters[e.Extension()] = e
	}
	return uc
}

// F29 calcula el vencimiento de cada cliente activo para el período (vacío = período por declarar),
// ordenado por fecha y luego por razón social.
func (uc *UseCase) F29(ctx context.Context, companyID, periodo string) (*dto.CalendarResponse, error) {
	periodo = strings.TrimSpace(periodo)
	if periodo == "" {
		periodo = uc.calendario.PeriodoPorDeclarar()
	}
	if !sii.PeriodoValido(periodo) {
		return nil, domain.ErrInvalidPeriod
	}

	list, err := uc.clients.ListAll(ctx, companyID)
	if err != nil {
		return nil, err
	}

	type fila struct {
		entry dto.CalendarEntry
		fecha time.Time
	}
	filas := make([]fila, 0, len(list))
	out := &dto.CalendarResponse{
		Periodo:  periodo,
		Generado: uc.calendario.Hoy().Format(time.DateOnly),
		Resumen:  map[string]int{},
	}
	for _, c := range list {
		v := uc.calendario.Vencimiento(c.RUT, periodo)
		if !v.Valido {
			// Solo puede ocurrir con datos cargados por fuera de la API.
			uc.log.Warn().Str("client_id", c.ID).Str("rut", c.RUT).Str("error", v.Error).Msg("cliente omitido del calendario")
			out.Omitidos = append(out.Omitidos, c.ID)
			continue
		}
		filas = append(filas, fila{
			entry: dto.CalendarEntry{
				ClientID:         c.ID,
				RUT:              v.RUT,
				RazonSocial:      c.RazonSocial,
				FechaVencimiento: v.FechaVencimiento,
				DiasRestantes:    v.DiasRestantes,
				Estado:           string(v.Estado),
				Mensaje:          v.Mensaje,
			},
			fecha: v.Fecha,
		})
		out.Resumen[string(v.Estado)]++
	}
	sort.SliceStable(filas, func(i, j int) bool {
		if !filas[i].fecha.Equal(filas[j].fecha) {
			return filas[i].fecha.Before(filas[j].fecha)
		}
		return filas[i].entry.RazonSocial < filas[j].entry.RazonSocial
	})
	out.Entries = make([]dto.CalendarEntry, len(filas))
	for i, f := range filas {
		out.Entries[i] = f.entry
	}
	return out, nil
}

// Export genera el calendario en el formato pedido (pdf o xlsx).
func (uc *UseCase) Export(ctx context.Context, companyID, periodo, formato string) (*Export, error) {
	formato = strings.ToLower(strings.TrimSpace(formato))
	exp, ok := uc.exporters[formato]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, formato)
	}
	cal, err := uc.F29(ctx, companyID, periodo)
	if err != nil {
		return nil, err
	}

	nombre := ""
	if uc.companies != nil {
		company, err := uc.companies.GetByID(ctx, companyID)
		if err != nil {
			return nil, err
		}
		if company != nil {
			nombre = company.Name
		}
	}

	data, err := exp.Export(cal, nombre)
	metrics.IncExport(formato, err)
	if err != nil {
		uc.log.Error().Err(err).Str("formato", formato).Str("periodo", cal.Periodo).Msg("exportación de calendario fallida")
		return nil, fmt.Errorf("exportar calendario: %w", err)
	}
	return &Export{
		Filename:    fmt.Sprintf("calendario-f29-%s.%s", cal.Periodo, exp.Extension()),
		ContentType: exp.ContentType(),
		Data:        data,
	}, nil
}
