package pickup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"pickup-service/internal/entities"
	"pickup-service/internal/repository"
	"pickup-service/internal/service/assignment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const finalPriceConstraint = "pickup_orders_final_price_check"

var pickupColumns = []string{
	"id",
	"tenant_id",
	"customer_request_id",
	"pickup_address",
	"vehicle_info",
	"scheduled_at",
	"status",
	"assigned_driver_id",
	"final_price",
	"driver_notes",
	"created_at",
	"updated_at",
	"completed_at",
}

var returningPickup = "RETURNING " + strings.Join(pickupColumns, ", ")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, pickup entities.PickupOrder) (*entities.PickupOrder, error) {
	query, args, err := qb.
		Insert("pickup_orders").
		Columns("id", "tenant_id", "customer_request_id", "pickup_address", "vehicle_info", "scheduled_at", "status").
		Values(
			pickup.ID,
			pickup.TenantID,
			pickup.CustomerRequestID,
			pickup.PickupAddress,
			pickup.VehicleInfo,
			pickup.ScheduledAt,
			pickup.Status.String(),
		).
		Suffix(returningPickup).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository create error: %w", err)
	}

	created, err := scanPickup(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, assignment.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, assignment.ErrTenantNotFound
		}
		return nil, fmt.Errorf("unexpected pickup repository create error: %w", err)
	}

	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.PickupOrder, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, false)
}

// GetByIDForUpdate блокирует строку заявки до конца транзакции из контекста.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.PickupOrder, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, true)
}

func (r *Repository) GetByCustomerRequestIDForUpdate(ctx context.Context, customerRequestID string) (*entities.PickupOrder, error) {
	return r.getOne(ctx, sq.Eq{"customer_request_id": customerRequestID}, true)
}

func (r *Repository) ListUnassigned(ctx context.Context, tenantID int64, limit uint64) ([]entities.PickupOrder, error) {
	builder := qb.
		Select(pickupColumns...).
		From("pickup_orders").
		Where(sq.Eq{
			"tenant_id":          tenantID,
			"assigned_driver_id": nil,
			"status": []string{
				entities.PickupPending.String(),
				entities.PickupScheduled.String(),
			},
		}).
		OrderBy("created_at ASC", "id ASC").
		Limit(limit)

	return r.list(ctx, builder, "listunassigned")
}

func (r *Repository) ListAssignedToDriver(ctx context.Context, tenantID, driverID int64) ([]entities.PickupOrder, error) {
	builder := qb.
		Select(pickupColumns...).
		From("pickup_orders").
		Where(sq.Eq{
			"tenant_id":          tenantID,
			"assigned_driver_id": driverID,
			"status": []string{
				entities.PickupAssigned.String(),
				entities.PickupInProgress.String(),
			},
		}).
		OrderBy("created_at ASC", "id ASC")

	return r.list(ctx, builder, "listassigned")
}

// Update записывает статус и назначение целиком, остальные поля только если заданы.
func (r *Repository) Update(ctx context.Context, update entities.PickupUpdate) (*entities.PickupOrder, error) {
	builder := qb.
		Update("pickup_orders").
		Set("status", update.Status.String()).
		Set("assigned_driver_id", update.AssignedDriverID)

	// опциональные поля
	if update.FinalPrice != nil {
		builder = builder.Set("final_price", *update.FinalPrice)
	}
	if update.DriverNotes != nil {
		builder = builder.Set("driver_notes", *update.DriverNotes)
	}
	if update.CompletedAt != nil {
		builder = builder.Set("completed_at", *update.CompletedAt)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.ID}).
		Suffix(returningPickup)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository update error: %w", err)
	}

	updated, err := scanPickup(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrPickupNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, assignment.ErrDriverNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrNumericOverflow) {
			return nil, assignment.ErrInvalidFinalPrice
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			constraint := repository.PgConstraintName(err)
			if constraint == finalPriceConstraint {
				return nil, assignment.ErrInvalidFinalPrice
			}
			return nil, fmt.Errorf("%w: violates %s", assignment.ErrIllegalTransition, constraint)
		}
		return nil, fmt.Errorf("unexpected pickup repository update error: %w", err)
	}

	return updated, nil
}

func (r *Repository) getOne(ctx context.Context, where sq.Eq, forUpdate bool) (*entities.PickupOrder, error) {
	builder := qb.
		Select(pickupColumns...).
		From("pickup_orders").
		Where(where)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository get error: %w", err)
	}

	pickup, err := scanPickup(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrPickupNotFound
		}
		return nil, fmt.Errorf("unexpected pickup repository get error: %w", err)
	}

	return pickup, nil
}

func (r *Repository) list(ctx context.Context, builder sq.SelectBuilder, operation string) ([]entities.PickupOrder, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository %s error: %w", operation, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository %s error: %w", operation, err)
	}
	defer rows.Close()

	pickupModels := make([]PickupOrderDB, 0, 16)
	for rows.Next() {
		var pickupModel PickupOrderDB
		err := scanPickupModel(rows, &pickupModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected pickup repository %s error: %w", operation, err)
		}
		pickupModels = append(pickupModels, pickupModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository %s error: %w", operation, err)
	}

	return ToDomainList(pickupModels), nil
}

func scanPickup(row pgx.Row) (*entities.PickupOrder, error) {
	var pickupModel PickupOrderDB
	err := scanPickupModel(row, &pickupModel)
	if err != nil {
		return nil, err
	}
	return ToDomain(&pickupModel), nil
}

func scanPickupModel(row pgx.Row, p *PickupOrderDB) error {
	return row.Scan(
		&p.ID,
		&p.TenantID,
		&p.CustomerRequestID,
		&p.PickupAddress,
		&p.VehicleInfo,
		&p.ScheduledAt,
		&p.Status,
		&p.AssignedDriverID,
		&p.FinalPrice,
		&p.DriverNotes,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.CompletedAt,
	)
}
