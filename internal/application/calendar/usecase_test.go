package calendar_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tucontable-api/internal/application/calendar"
	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/domain"
	"github.com/jhoicas/tucontable-api/internal/domain/entity"
	"github.com/jhoicas/tucontable-api/pkg/sii"
)

type listaFija []*entity.Client

func (l listaFija) ListAll(context.Context, string) ([]*entity.Client, error) { return l, nil }

type listaRota struct{}

func (listaRota) ListAll(context.Context, string) ([]*entity.Client, error) {
	return nil, errors.New("db caída")
}

type companiesFijas struct{ nombre string }

func (c companiesFijas) Create(context.Context, *entity.Company) error { return nil }
func (c companiesFijas) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return &entity.Company{ID: id, Name: c.nombre}, nil
}
func (c companiesFijas) GetByRUT(context.Context, string) (*entity.Company, error) { return nil, nil }

type exportadorEco struct {
	recibido *dto.CalendarResponse
	nombre   string
}

func (e *exportadorEco) Export(cal *dto.CalendarResponse, companyName string) ([]byte, error) {
	e.recibido, e.nombre = cal, companyName
	return []byte("ok"), nil
}
func (e *exportadorEco) ContentType() string { return "text/plain" }
func (e *exportadorEco) Extension() string   { return "txt" }

// Hoy: lunes 10 de febrero de 2025 (hora de Chile).
func calendarioFeb() *sii.CalendarioF29 {
	zona := time.FixedZone("CLT", -3*3600)
	return sii.NewCalendarioF29(
		sii.CalendarioConZona(zona),
		sii.CalendarioConClock(func() time.Time { return time.Date(2025, time.February, 10, 15, 0, 0, 0, time.UTC) }),
	)
}

func cartera() listaFija {
	return listaFija{
		{ID: "c0", RUT: "12.345.670-K", RazonSocial: "Cero Ltda"},     // día 21
		{ID: "c1", RUT: "12.345.671-8", RazonSocial: "Uno SpA"},       // día 12
		{ID: "c4", RUT: "12.345.674-2", RazonSocial: "Cuatro EIRL"},   // día 15 (sábado) -> 17
		{ID: "c8", RUT: "76.086.428-5", RazonSocial: "Ocho SA"},       // día 19
		{ID: "roto", RUT: "11.111.111-2", RazonSocial: "Mal cargado"}, // DV inválido
	}
}

func TestF29_OrdenaPorFechaYResume(t *testing.T) {
	uc := calendar.NewUseCase(cartera(), nil, calendarioFeb(), nil)
	out, err := uc.F29(context.Background(), "company", "2025-01")
	require.NoError(t, err)

	require.Len(t, out.Entries, 4)
	assert.Equal(t, "2025-02-12", out.Entries[0].FechaVencimiento)
	assert.Equal(t, "Uno SpA", out.Entries[0].RazonSocial)
	assert.Equal(t, "2025-02-17", out.Entries[1].FechaVencimiento)
	assert.Equal(t, "2025-02-19", out.Entries[2].FechaVencimiento)
	assert.Equal(t, "2025-02-21", out.Entries[3].FechaVencimiento)

	assert.Equal(t, 1, out.Resumen[string(sii.EstadoUrgente)])
	assert.Equal(t, 1, out.Resumen[string(sii.EstadoProximo)])
	assert.Equal(t, 2, out.Resumen[string(sii.EstadoLejano)])
	assert.Equal(t, []string{"roto"}, out.Omitidos)
	assert.Equal(t, "2025-02-10", out.Generado)
}

func TestF29_PeriodoPorDefecto(t *testing.T) {
	uc := calendar.NewUseCase(listaFija{}, nil, calendarioFeb(), nil)
	out, err := uc.F29(context.Background(), "company", "")
	require.NoError(t, err)
	assert.Equal(t, "2025-01", out.Periodo)
	assert.Empty(t, out.Entries)
}

func TestF29_PeriodoInvalido(t *testing.T) {
	uc := calendar.NewUseCase(cartera(), nil, calendarioFeb(), nil)
	_, err := uc.F29(context.Background(), "company", "2025-13")
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestF29_ErrorDelRepo(t *testing.T) {
	uc := calendar.NewUseCase(listaRota{}, nil, calendarioFeb(), nil)
	_, err := uc.F29(context.Background(), "company", "2025-01")
	assert.Error(t, err)
}

func TestExport_UsaExportadorYNombreDelEstudio(t *testing.T) {
	exp := &exportadorEco{}
	uc := calendar.NewUseCase(cartera(), companiesFijas{nombre: "Estudio Pérez"}, calendarioFeb(), nil, exp)

	out, err := uc.Export(context.Background(), "company", "2025-01", "TXT")
	require.NoError(t, err)
	assert.Equal(t, "calendario-f29-2025-01.txt", out.Filename)
	assert.Equal(t, "text/plain", out.ContentType)
	assert.Equal(t, "Estudio Pérez", exp.nombre)
	assert.Len(t, exp.recibido.Entries, 4)
}

func TestExport_FormatoDesconocido(t *testing.T) {
	uc := calendar.NewUseCase(cartera(), nil, calendarioFeb(), nil)
	_, err := uc.Export(context.Background(), "company", "2025-01", "docx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
