// Package pdf genera el calendario de vencimientos F29 en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Estudio contable     │  Período + fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: vencidos / urgentes / próximos / lejanos          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Vence | RUT | Razón social | Días | Estado           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/application/ports"
	"github.com/jhoicas/tucontable-api/pkg/sii"
)

var _ ports.CalendarExporter = (*CalendarPDF)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 57, Blue: 166}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 200, Green: 30, Blue: 45}
	colorOrange  = &props.Color{Red: 220, Green: 120, Blue: 0}
)

// CalendarPDF implementa ports.CalendarExporter usando Maroto v2.
type CalendarPDF struct{}

// NewCalendarPDF construye el exportador.
func NewCalendarPDF() *CalendarPDF { return &CalendarPDF{} }

// ContentType implementa ports.CalendarExporter.
func (CalendarPDF) ContentType() string { return "application/pdf" }

// Extension implementa ports.CalendarExporter.
func (CalendarPDF) Extension() string { return "pdf" }

// Export genera el PDF y devuelve sus bytes.
func (g *CalendarPDF) Export(cal *dto.CalendarResponse, companyName string) ([]byte, error) {
	if cal == nil {
		return nil, fmt.Errorf("pdf: calendario vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Calendario F29 "+cal.Periodo, true).
		WithAuthor(nonEmpty(companyName, "TuContable"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(cal, companyName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumenRow(cal))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(cal.Entries) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin clientes activos para el período.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(tableRows(cal.Entries)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(
			"El F29 vence el mes siguiente al período, en el día que fija el último dígito del RUT "+
				"(1 al 9: días 12 al 20; 0: día 21). Si cae en fin de semana se corre al lunes siguiente.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del estudio (izq) y período + fecha de emisión (der).
func headerRow(cal *dto.CalendarResponse, companyName string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(companyName, "Estudio contable"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Calendario de vencimientos Formulario 29", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(cal.Periodo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+cal.Generado, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// resumenRow: conteo de clientes por estado.
func resumenRow(cal *dto.CalendarResponse) core.Row {
	celda := func(label string, estado sii.EstadoVencimiento, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(strconv.Itoa(cal.Resumen[string(estado)]), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: color, Top: 5,
			}),
		)
	}
	return row.New(14).Add(
		celda("VENCIDOS", sii.EstadoVencido, colorRed),
		celda("URGENTES (≤ 3 días)", sii.EstadoUrgente, colorOrange),
		celda("PRÓXIMOS (≤ 7 días)", sii.EstadoProximo, colorPrimary),
		celda("LEJANOS", sii.EstadoLejano, colorGray),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Vence", 2, align.Left),
		h("RUT", 2, align.Left),
		h("Razón social", 5, align.Left),
		h("Días", 1, align.Right),
		h("Estado", 2, align.Center),
	)
}

// tableRows: una fila por cliente, ya ordenadas por fecha.
func tableRows(entries []dto.CalendarEntry) []core.Row {
	rows := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		estilo := props.Text{Size: 8, Align: align.Center, Top: 1, Style: fontstyle.Bold, Color: colorEstado(e.Estado)}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(e.FechaVencimiento, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(e.RUT, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(e.RazonSocial, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(e.DiasRestantes), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(e.Estado, estilo)),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func colorEstado(estado string) *props.Color {
	switch sii.EstadoVencimiento(estado) {
	case sii.EstadoVencido:
		return colorRed
	case sii.EstadoUrgente:
		return colorOrange
	case sii.EstadoProximo:
		return colorPrimary
	}
	return colorGray
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
