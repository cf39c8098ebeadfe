package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/emelinabraham-cmd/homeease-api/internal/domain"
	"github.com/emelinabraham-cmd/homeease-api/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ServiceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(s *server.Server) *ServiceRepository {
	return &ServiceRepository{pool: s.DB.Pool}
}

// Prices travel as text because the numeric column is scanned into a
// decimal, not a float.
const serviceColumns = `id, name, category, price::text, description, image_url, is_active, created_at`

func scanService(row pgx.Row) (*domain.Service, error) {
	var svc domain.Service
	var price string

	err := row.Scan(
		&svc.ID,
		&svc.Name,
		&svc.Category,
		&price,
		&svc.Description,
		&svc.ImageURL,
		&svc.IsActive,
		&svc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	svc.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parsing stored price: %w", err)
	}

	return &svc, nil
}

// Insert writes a new catalog entry. A concurrent duplicate name surfaces
// as a unique-violation pgconn error, which sqlerr maps to the conflict
// response.
func (r *ServiceRepository) Insert(ctx context.Context, in domain.CreateServiceInput) (*domain.Service, error) {
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO services (name, category, price, description, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+serviceColumns,
		in.Name,
		in.Category,
		in.Price.StringFixed(2),
		in.Description,
		in.ImageURL,
		isActive,
	)

	return scanService(row)
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)

	svc, err := scanService(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrServiceNotFound
	}
	return svc, err
}

// ExistsByName reports whether a service with exactly this (trimmed) name
// already exists.
func (r *ServiceRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM services WHERE name = $1)`, name,
	).Scan(&exists)
	return exists, err
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE is_active ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, *svc)
	}

	return services, rows.Err()
}

func (r *ServiceRepository) SetActive(ctx context.Context, id string, active bool) (*domain.Service, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE services SET is_active = $2 WHERE id = $1
		RETURNING `+serviceColumns,
		id, active,
	)

	svc, err := scanService(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrServiceNotFound
	}
	return svc, err
}
