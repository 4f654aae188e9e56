package pickup

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"pickup-service/internal/entities"
	"pickup-service/internal/service/assignment"
)

// GetDriver водитель для проверки предусловий назначения, читается в той же транзакции.
func (r *Repository) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT id, tenant_id, name, phone, status, last_seen_at, created_at, updated_at
		FROM drivers
		WHERE id = $1`

	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&driverModel.ID,
			&driverModel.TenantID,
			&driverModel.Name,
			&driverModel.Phone,
			&driverModel.Status,
			&driverModel.LastSeenAt,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected pickup repository get driver error: %w", err)
	}

	return DriverToDomain(&driverModel), nil
}

func (r *Repository) TenantExists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM tenants WHERE id = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected pickup repository tenant exists error: %w", err)
	}
	return exists, nil
}
