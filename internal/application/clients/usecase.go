// Package clients administra la cartera de clientes de cada estudio contable.
package clients

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/domain"
	"github.com/jhoicas/tucontable-api/internal/domain/entity"
	"github.com/jhoicas/tucontable-api/internal/domain/repository"
	"github.com/jhoicas/tucontable-api/pkg/logger"
	"github.com/jhoicas/tucontable-api/pkg/sii"
)

// UseCase casos de uso para clientes. Todo RUT pasa por sii.ValidarRUT antes de guardarse
// y se persiste en su forma canónica.
type UseCase struct {
	repo repository.ClientRepository
	now  func() time.Time
	log  *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ClientRepository, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{repo: repo, now: time.Now, log: log.Component("clients")}
}

// Create crea un nuevo cliente. Devuelve domain.ErrInvalidRUT si el RUT no valida y
// domain.ErrDuplicate si el estudio ya tiene un cliente con ese RUT.
func (uc *UseCase) Create(ctx context.Context, companyID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	razon := strings.TrimSpace(in.RazonSocial)
	if razon == "" {
		return nil, fmt.Errorf("%w: razon_social es requerida", domain.ErrInvalidInput)
	}
	rut, err := canonicalRUT(in.RUT)
	if err != nil {
		return nil, err
	}
	if !entity.ValidRegimen(in.Regimen) {
		return nil, fmt.Errorf("%w: régimen %q desconocido", domain.ErrInvalidInput, in.Regimen)
	}

	existing, err := uc.repo.GetByRUT(ctx, companyID, rut)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := uc.now()
	c := &entity.Client{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		RUT:         rut,
		RazonSocial: razon,
		Giro:        strings.TrimSpace(in.Giro),
		Regimen:     in.Regimen,
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	uc.log.Info().Str("company_id", companyID).Str("client_id", c.ID).Str("rut", c.RUT).Msg("cliente creado")
	return toResponse(c), nil
}

// Get obtiene un cliente del estudio.
func (uc *UseCase) Get(ctx context.Context, companyID, id string) (*dto.ClientResponse, error) {
	c, err := uc.find(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// Find devuelve la entidad (lo usa el asistente para armar el contexto del cliente).
func (uc *UseCase) Find(ctx context.Context, companyID, id string) (*entity.Client, error) {
	return uc.find(ctx, companyID, id)
}

// List lista clientes del estudio.
func (uc *UseCase) List(ctx context.Context, companyID string, in dto.ClientListRequest) ([]*dto.ClientResponse, error) {
	in.Normalize()
	list, err := uc.repo.List(ctx, companyID, repository.ClientFilter{
		Search:     in.Search,
		OnlyActive: in.OnlyActive,
		Limit:      in.Limit,
		Offset:     in.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toResponse(c))
	}
	return out, nil
}

// ListAll devuelve todos los clientes activos del estudio (calendario F29).
func (uc *UseCase) ListAll(ctx context.Context, companyID string) ([]*entity.Client, error) {
	return uc.repo.List(ctx, companyID, repository.ClientFilter{OnlyActive: true})
}

// Update aplica los campos informados. Un RUT nuevo se valida igual que en Create.
func (uc *UseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.find(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.RUT != nil {
		rut, err := canonicalRUT(*in.RUT)
		if err != nil {
			return nil, err
		}
		if rut != c.RUT {
			other, err := uc.repo.GetByRUT(ctx, companyID, rut)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, domain.ErrDuplicate
			}
		}
		c.RUT = rut
	}
	if in.RazonSocial != nil {
		razon := strings.TrimSpace(*in.RazonSocial)
		if razon == "" {
			return nil, fmt.Errorf("%w: razon_social no puede quedar vacía", domain.ErrInvalidInput)
		}
		c.RazonSocial = razon
	}
	if in.Regimen != nil {
		if !entity.ValidRegimen(*in.Regimen) {
			return nil, fmt.Errorf("%w: régimen %q desconocido", domain.ErrInvalidInput, *in.Regimen)
		}
		c.Regimen = *in.Regimen
	}
	if in.Giro != nil {
		c.Giro = strings.TrimSpace(*in.Giro)
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	c.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// Delete elimina un cliente del estudio.
func (uc *UseCase) Delete(ctx context.Context, companyID, id string) error {
	if err := uc.repo.Delete(ctx, companyID, id); err != nil {
		return err
	}
	uc.log.Info().Str("company_id", companyID).Str("client_id", id).Msg("cliente eliminado")
	return nil
}

func (uc *UseCase) find(ctx context.Context, companyID, id string) (*entity.Client, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	c, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func canonicalRUT(raw string) (string, error) {
	v := sii.ValidarRUT(raw)
	r, ok := v.RUT()
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidRUT, v.Mensaje)
	}
	return r.String(), nil
}

func toResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:          c.ID,
		RUT:         c.RUT,
		RazonSocial: c.RazonSocial,
		Giro:        c.Giro,
		Regimen:     c.Regimen,
		Email:       c.Email,
		Phone:       c.Phone,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
