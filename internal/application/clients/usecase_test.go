package clients_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tucontable-api/internal/application/clients"
	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/domain"
	"github.com/jhoicas/tucontable-api/internal/domain/entity"
	"github.com/jhoicas/tucontable-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repo en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memClientRepo struct {
	mu   sync.Mutex
	byID map[string]*entity.Client
}

func newMemRepo() *memClientRepo { return &memClientRepo{byID: map[string]*entity.Client{}} }

func (m *memClientRepo) Create(_ context.Context, c *entity.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *memClientRepo) GetByID(_ context.Context, companyID, id string) (*entity.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.byID[id]; ok && c.CompanyID == companyID {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *memClientRepo) GetByRUT(_ context.Context, companyID, rut string) (*entity.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.byID {
		if c.CompanyID == companyID && c.RUT == rut {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memClientRepo) List(_ context.Context, companyID string, f repository.ClientFilter) ([]*entity.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Client
	for _, c := range m.byID {
		if c.CompanyID != companyID || (f.OnlyActive && !c.Active) {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(c.RazonSocial), strings.ToLower(f.Search)) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RazonSocial < out[j].RazonSocial })
	return out, nil
}

func (m *memClientRepo) Update(_ context.Context, c *entity.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *memClientRepo) Delete(_ context.Context, companyID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.byID[id]; !ok || c.CompanyID != companyID {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

const companyA = "00000000-0000-0000-0000-0000000000aa"
const companyB = "00000000-0000-0000-0000-0000000000bb"

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_GuardaRUTCanonico(t *testing.T) {
	uc := clients.NewUseCase(newMemRepo(), nil)
	out, err := uc.Create(context.Background(), companyA, dto.CreateClientRequest{
		RUT: " 12345678-5 ", RazonSocial: "Panadería El Trigal SpA", Regimen: entity.RegimenProPymeGeneral,
	})
	require.NoError(t, err)
	assert.Equal(t, "12.345.678-5", out.RUT)
	assert.True(t, out.Active)
	_, err = uuid.Parse(out.ID)
	assert.NoError(t, err)
}

func TestCreate_RUTInvalido(t *testing.T) {
	uc := clients.NewUseCase(newMemRepo(), nil)
	_, err := uc.Create(context.Background(), companyA, dto.CreateClientRequest{RUT: "12.345.678-0", RazonSocial: "X"})
	require.ErrorIs(t, err, domain.ErrInvalidRUT)
	assert.Contains(t, err.Error(), "debería ser 5")
}

func TestCreate_DuplicadoMismoEstudio(t *testing.T) {
	uc := clients.NewUseCase(newMemRepo(), nil)
	_, err := uc.Create(context.Background(), companyA, dto.CreateClientRequest{RUT: "12345678-5", RazonSocial: "A"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), companyA, dto.CreateClientRequest{RUT: "12.345.678-5", RazonSocial: "B"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el mismo RUT con otro formato es duplicado")

	_, err = uc.Create(context.Background(), companyB, dto.CreateClientRequest{RUT: "12.345.678-5", RazonSocial: "B"})
	assert.NoError(t, err, "otro estudio puede tener el mismo cliente")
}

func TestCreate_Validaciones(t *testing.T) {
	uc := clients.NewUseCase(newMemRepo(), nil)
	_, err := uc.Create(context.Background(), companyA, dto.CreateClientRequest{RUT: "12345678-5", RazonSocial: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), companyA, dto.CreateClientRequest{RUT: "12345678-5", RazonSocial: "A", Regimen: "XX"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Get / Update / Delete / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_AislaEstudios(t *testing.T) {
	uc := clients.NewUseCase(newMemRepo(), nil)
	out, err := uc.Create(context.Background(), companyA, dto.CreateClientRequest{RUT: "12345678-5", RazonSocial: "A"})
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), companyB, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Get(context.Background(), companyA, "no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_CambiaRUTYValida(t *testing.T) {
	uc := clients.NewUseCase(newMemRepo(), nil)
	a, err := uc.Create(context.Background(), companyA, dto.CreateClientRequest{RUT: "12345678-5", RazonSocial: "A"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), companyA, dto.CreateClientRequest{RUT: "76086428-5", RazonSocial: "B"})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), companyA, a.ID, dto.UpdateClientRequest{RUT: ptr("1-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidRUT)

	_, err = uc.Update(context.Background(), companyA, a.ID, dto.UpdateClientRequest{RUT: ptr("76.086.428-5")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	out, err := uc.Update(context.Background(), companyA, a.ID, dto.UpdateClientRequest{
		RUT: ptr("10000013-k"), Giro: ptr("Asesorías"), Active: ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "10.000.013-K", out.RUT)
	assert.Equal(t, "Asesorías", out.Giro)
	assert.False(t, out.Active)
	assert.Equal(t, "A", out.RazonSocial)
}

func TestDelete_YListado(t *testing.T) {
	uc := clients.NewUseCase(newMemRepo(), nil)
	a, err := uc.Create(context.Background(), companyA, dto.CreateClientRequest{RUT: "12345678-5", RazonSocial: "Zeta"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), companyA, dto.CreateClientRequest{RUT: "76086428-5", RazonSocial: "Alfa"})
	require.NoError(t, err)

	list, err := uc.List(context.Background(), companyA, dto.ClientListRequest{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alfa", list[0].RazonSocial)

	require.NoError(t, uc.Delete(context.Background(), companyA, a.ID))
	assert.ErrorIs(t, uc.Delete(context.Background(), companyA, a.ID), domain.ErrNotFound)

	all, err := uc.ListAll(context.Background(), companyA)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
