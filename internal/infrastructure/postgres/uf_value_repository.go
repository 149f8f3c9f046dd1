package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tucontable-api/internal/domain/entity"
	"github.com/jhoicas/tucontable-api/internal/domain/repository"
)

var _ repository.UFValueRepository = (*UFValueRepo)(nil)

// UFValueRepo guarda valores UF por fecha. NUMERIC se lee como decimal.Decimal gracias al
// codec registrado en NewPool.
type UFValueRepo struct {
	q Querier
}

// NewUFValueRepository construye el adaptador.
func NewUFValueRepository(q Querier) *UFValueRepo {
	return &UFValueRepo{q: q}
}

// Get devuelve el valor guardado para la fecha, o (nil, nil) si no existe.
func (r *UFValueRepo) Get(ctx context.Context, fecha time.Time) (*entity.UFValue, error) {
	var v entity.UFValue
	err := r.q.QueryRow(ctx,
		`SELECT fecha, valor, fuente, created_at FROM uf_values WHERE fecha = $1`, soloFecha(fecha),
	).Scan(&v.Fecha, &v.Valor, &v.Fuente, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get uf value: %w", err)
	}
	return &v, nil
}

// Upsert inserta o reemplaza el valor de la fecha.
func (r *UFValueRepo) Upsert(ctx context.Context, v *entity.UFValue) error {
	createdAt := v.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO uf_values (fecha, valor, fuente, created_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (fecha) DO UPDATE SET valor = EXCLUDED.valor, fuente = EXCLUDED.fuente`,
		soloFecha(v.Fecha), v.Valor, v.Fuente, createdAt,
	)
	if err != nil {
		return fmt.Errorf("upsert uf value: %w", err)
	}
	return nil
}

// soloFecha deja la fecha civil en UTC para que la columna DATE no dependa de la zona de la conexión.
func soloFecha(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
