package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"pickup-service/internal/entities"
	"pickup-service/internal/repository"
	"pickup-service/internal/service/driver"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = "id, tenant_id, name, phone, status, last_seen_at, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, driverModifyEntity entities.DriverModify) (int64, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)
	query := `INSERT INTO drivers (tenant_id, name, phone, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		driverModifyModel.TenantID,
		driverModifyModel.Name,
		driverModifyModel.Phone,
		driverModifyModel.Status,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError("create", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)

	builder := qb.
		Update("drivers")

	// опционнные поля
	if driverModifyModel.TenantID != nil {
		builder = builder.Set("tenant_id", driverModifyModel.TenantID)
	}
	if driverModifyModel.Name != nil {
		builder = builder.Set("name", driverModifyModel.Name)
	}
	if driverModifyModel.Phone != nil {
		builder = builder.Set("phone", driverModifyModel.Phone)
	}
	if driverModifyModel.Status != nil {
		builder = builder.Set("status", driverModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyModel.ID}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	updated, err := scanDriver(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapWriteError("update", err)
	}

	return updated, nil
}

// UpdateStatus смена присутствия, заодно отмечает водителя как живого.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.DriverStatusType) (*entities.Driver, error) {
	query := `UPDATE drivers
		SET status = $2, last_seen_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + driverColumns

	updated, err := scanDriver(r.querier.QueryRow(ctx, query, id, status.String()))
	if err != nil {
		return nil, mapWriteError("update status", err)
	}

	return updated, nil
}

func (r *Repository) Touch(ctx context.Context, id int64) error {
	query := `UPDATE drivers SET last_seen_at = NOW() WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected driver repository touch error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return driver.ErrDriverNotFound
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	return r.getByID(ctx, id, "")
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Driver, error) {
	return r.getByID(ctx, id, " FOR UPDATE")
}

// GetAll tenantID == 0 все водители.
func (r *Repository) GetAll(ctx context.Context, tenantID int64) ([]entities.Driver, error) {
	builder := qb.
		Select(driverColumns).
		From("drivers").
		OrderBy("id")
	if tenantID != 0 {
		builder = builder.Where(sq.Eq{"tenant_id": tenantID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		var driverModel DriverDB
		err := scanDriverModel(rows, &driverModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
		}
		driverModels = append(driverModels, driverModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}

	return ToDomainList(driverModels), nil
}

func (r *Repository) AppendStatusEvent(ctx context.Context, event entities.DriverStatusEvent) (*entities.DriverStatusEvent, error) {
	query := `INSERT INTO driver_status_events (driver_id, old_status, new_status, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, driver_id, old_status, new_status, reason, created_at`

	var eventModel DriverStatusEventDB
	err := r.querier.QueryRow(
		ctx,
		query,
		event.DriverID,
		event.OldStatus.String(),
		event.NewStatus.String(),
		event.Reason,
	).Scan(
		&eventModel.ID,
		&eventModel.DriverID,
		&eventModel.OldStatus,
		&eventModel.NewStatus,
		&eventModel.Reason,
		&eventModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, driver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository append status event error: %w", err)
	}

	return EventToDomain(&eventModel), nil
}

// ReleaseStale одним запросом переводит пропавших водителей в offline и пишет историю.
// Строки, заблокированные параллельной сменой статуса, пропускаются до следующего прогона.
func (r *Repository) ReleaseStale(
	ctx context.Context,
	seenBefore time.Time,
	statuses []entities.DriverStatusType,
	reason string,
) ([]entities.DriverStatusEvent, error) {
	query := `
		WITH stale AS (
			SELECT id, status
			FROM drivers
			WHERE status = ANY($2)
			  AND COALESCE(last_seen_at, updated_at) < $1
			FOR UPDATE SKIP LOCKED
		), released AS (
			UPDATE drivers d
			SET status = $3, updated_at = NOW()
			FROM stale
			WHERE d.id = stale.id
			RETURNING d.id, stale.status AS old_status
		)
		INSERT INTO driver_status_events (driver_id, old_status, new_status, reason)
		SELECT id, old_status, $3, $4 FROM released
		RETURNING id, driver_id, old_status, new_status, reason, created_at
	`

	rows, err := r.querier.Query(ctx, query, seenBefore, statusStrings(statuses), entities.DriverOffline.String(), reason)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository release stale error: %w", err)
	}
	defer rows.Close()

	events := make([]entities.DriverStatusEvent, 0)
	for rows.Next() {
		var eventModel DriverStatusEventDB
		err := rows.Scan(
			&eventModel.ID,
			&eventModel.DriverID,
			&eventModel.OldStatus,
			&eventModel.NewStatus,
			&eventModel.Reason,
			&eventModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository release stale error: %w", err)
		}
		events = append(events, *EventToDomain(&eventModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository release stale error: %w", err)
	}

	return events, nil
}

func (r *Repository) getByID(ctx context.Context, id int64, lock string) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE id = $1` + lock

	found, err := scanDriver(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return found, nil
}

func mapWriteError(operation string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return driver.ErrDriverNotFound
	case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
		return driver.ErrConflict
	case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
		return driver.ErrTenantNotFound
	default:
		return fmt.Errorf("unexpected driver repository %s error: %w", operation, err)
	}
}

func scanDriver(row pgx.Row) (*entities.Driver, error) {
	var driverModel DriverDB
	err := scanDriverModel(row, &driverModel)
	if err != nil {
		return nil, err
	}
	return ToDomain(&driverModel), nil
}

func scanDriverModel(row pgx.Row, d *DriverDB) error {
	return row.Scan(
		&d.ID,
		&d.TenantID,
		&d.Name,
		&d.Phone,
		&d.Status,
		&d.LastSeenAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
}
