package repository

import (
	"context"

	"github.com/jhoicas/tucontable-api/internal/domain/entity"
)

// ClientFilter filtros de listado. Search busca en razón social y RUT.
type ClientFilter struct {
	Search     string
	OnlyActive bool
	Limit      int
	Offset     int
}

// ClientRepository define el puerto de persistencia para los clientes del estudio.
// Los métodos devuelven (nil, nil) cuando el registro no existe.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Client, error)
	GetByRUT(ctx context.Context, companyID, rut string) (*entity.Client, error)
	List(ctx context.Context, companyID string, f ClientFilter) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, companyID, id string) error
}
