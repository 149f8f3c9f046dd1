package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tucontable-api/internal/domain"
	"github.com/jhoicas/tucontable-api/internal/domain/entity"
	"github.com/jhoicas/tucontable-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, company_id, rut, razon_social, giro, regimen, email, phone, active, created_at, updated_at`

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente. (company_id, rut) es único.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `INSERT INTO clients (` + clientColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyID, c.RUT, c.RazonSocial, c.Giro, c.Regimen, c.Email, c.Phone, c.Active,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente del estudio por ID.
func (r *ClientRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE company_id = $1 AND id = $2`
	return r.findOne(ctx, query, companyID, id)
}

// GetByRUT obtiene un cliente del estudio por RUT canónico.
func (r *ClientRepo) GetByRUT(ctx context.Context, companyID, rut string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE company_id = $1 AND rut = $2`
	return r.findOne(ctx, query, companyID, rut)
}

// List lista clientes del estudio ordenados por razón social.
func (r *ClientRepo) List(ctx context.Context, companyID string, f repository.ClientFilter) ([]*entity.Client, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + clientColumns + ` FROM clients WHERE company_id = $1`)
	args := []any{companyID}
	if f.OnlyActive {
		sb.WriteString(` AND active`)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, likePattern(s))
		fmt.Fprintf(&sb, ` AND (razon_social ILIKE $%d OR rut ILIKE $%d)`, len(args), len(args))
	}
	sb.WriteString(` ORDER BY razon_social`)
	if f.Limit > 0 {
		args = append(args, f.Limit, f.Offset)
		fmt.Fprintf(&sb, ` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente. Devuelve domain.ErrNotFound si no existe en el estudio.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET rut = $3, razon_social = $4, giro = $5, regimen = $6, email = $7, phone = $8,
			active = $9, updated_at = $10
		WHERE company_id = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query,
		c.CompanyID, c.ID, c.RUT, c.RazonSocial, c.Giro, c.Regimen, c.Email, c.Phone, c.Active, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente del estudio.
func (r *ClientRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clients WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientRepo) findOne(ctx context.Context, query string, args ...any) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.CompanyID, &c.RUT, &c.RazonSocial, &c.Giro, &c.Regimen, &c.Email, &c.Phone,
		&c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
