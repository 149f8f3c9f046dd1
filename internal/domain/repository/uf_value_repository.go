package repository

import (
	"context"
	"time"

	"github.com/jhoicas/tucontable-api/internal/domain/entity"
)

// UFValueRepository guarda los valores UF ya consultados. Get devuelve (nil, nil) si no hay valor.
type UFValueRepository interface {
	Get(ctx context.Context, fecha time.Time) (*entity.UFValue, error)
	Upsert(ctx context.Context, v *entity.UFValue) error
}
