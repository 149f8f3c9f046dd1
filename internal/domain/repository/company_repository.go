package repository

import (
	"context"

	"github.com/jhoicas/tucontable-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para el estudio contable.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByRUT(ctx context.Context, rut string) (*entity.Company, error)
}
