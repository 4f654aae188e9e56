package tenant

import (
	"context"
	"fmt"

	"pickup-service/internal/entities"
	"pickup-service/internal/repository"
	"pickup-service/internal/service/tenant"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, name string) (*entities.Tenant, error) {
	query := `INSERT INTO tenants (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at`

	var created entities.Tenant
	err := r.querier.QueryRow(ctx, query, name).
		Scan(&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, tenant.ErrConflict
		}
		return nil, fmt.Errorf("unexpected tenant repository create error: %w", err)
	}

	return &created, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Tenant, error) {
	query := `SELECT id, name, created_at, updated_at FROM tenants ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected tenant repository getall error: %w", err)
	}
	defer rows.Close()

	tenants := make([]entities.Tenant, 0, 4)
	for rows.Next() {
		var t entities.Tenant
		err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected tenant repository getall error: %w", err)
		}
		tenants = append(tenants, t)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected tenant repository getall error: %w", err)
	}

	return tenants, nil
}
