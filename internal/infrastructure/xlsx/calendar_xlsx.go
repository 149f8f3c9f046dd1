// Package xlsx genera el calendario de vencimientos F29 como planilla Excel.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/application/ports"
	"github.com/jhoicas/tucontable-api/pkg/sii"
)

var _ ports.CalendarExporter = (*CalendarXLSX)(nil)

const (
	hojaCalendario = "Calendario"
	hojaResumen    = "Resumen"
)

// CalendarXLSX implementa ports.CalendarExporter con excelize.
type CalendarXLSX struct{}

// NewCalendarXLSX construye el exportador.
func NewCalendarXLSX() *CalendarXLSX { return &CalendarXLSX{} }

// ContentType implementa ports.CalendarExporter.
func (CalendarXLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension implementa ports.CalendarExporter.
func (CalendarXLSX) Extension() string { return "xlsx" }

// Export arma dos hojas: el detalle por cliente y el resumen por estado.
func (CalendarXLSX) Export(cal *dto.CalendarResponse, companyName string) ([]byte, error) {
	if cal == nil {
		return nil, fmt.Errorf("xlsx: calendario vacío")
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", hojaCalendario); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(hojaResumen); err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	headers := []any{"Vencimiento", "RUT", "Razón social", "Días restantes", "Estado", "Detalle"}
	if err := f.SetSheetRow(hojaCalendario, "A1", &headers); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	_ = f.SetCellStyle(hojaCalendario, "A1", "F1", bold)
	for i, e := range cal.Entries {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		fila := []any{e.FechaVencimiento, e.RUT, e.RazonSocial, e.DiasRestantes, e.Estado, e.Mensaje}
		if err := f.SetSheetRow(hojaCalendario, cell, &fila); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(hojaCalendario, "A", "B", 14)
	_ = f.SetColWidth(hojaCalendario, "C", "C", 40)
	_ = f.SetColWidth(hojaCalendario, "F", "F", 60)

	_ = f.SetCellValue(hojaResumen, "A1", "Estudio")
	_ = f.SetCellValue(hojaResumen, "B1", companyName)
	_ = f.SetCellValue(hojaResumen, "A2", "Período")
	_ = f.SetCellValue(hojaResumen, "B2", cal.Periodo)
	_ = f.SetCellValue(hojaResumen, "A3", "Emitido")
	_ = f.SetCellValue(hojaResumen, "B3", cal.Generado)
	estados := []sii.EstadoVencimiento{sii.EstadoVencido, sii.EstadoUrgente, sii.EstadoProximo, sii.EstadoLejano}
	for i, estado := range estados {
		row := i + 5
		_ = f.SetCellValue(hojaResumen, fmt.Sprintf("A%d", row), string(estado))
		_ = f.SetCellValue(hojaResumen, fmt.Sprintf("B%d", row), cal.Resumen[string(estado)])
	}
	_ = f.SetCellStyle(hojaResumen, "A1", "A8", bold)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
