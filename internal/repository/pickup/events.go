package pickup

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"pickup-service/internal/entities"
	"pickup-service/internal/repository"
	"pickup-service/internal/service/assignment"
)

var eventColumns = []string{
	"id",
	"pickup_order_id",
	"tenant_id",
	"old_status",
	"new_status",
	"actor_type",
	"actor_driver_id",
	"reason",
	"created_at",
}

// AppendEvent единственная запись в assignment_events, UPDATE/DELETE отклоняет триггер.
func (r *Repository) AppendEvent(ctx context.Context, event entities.AssignmentEventCreate) (*entities.AssignmentEvent, error) {
	eventModel := FromEventCreate(&event)

	query := `INSERT INTO assignment_events
		(pickup_order_id, tenant_id, old_status, new_status, actor_type, actor_driver_id, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.querier.QueryRow(
		ctx,
		query,
		eventModel.PickupOrderID,
		eventModel.TenantID,
		eventModel.OldStatus,
		eventModel.NewStatus,
		eventModel.ActorType,
		eventModel.ActorDriverID,
		eventModel.Reason,
	).Scan(&eventModel.ID, &eventModel.CreatedAt)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, assignment.ErrPickupNotFound
		}
		return nil, fmt.Errorf("unexpected pickup repository append event error: %w", err)
	}

	return EventToDomain(eventModel), nil
}

func (r *Repository) ListEvents(ctx context.Context, pickupID string) ([]entities.AssignmentEvent, error) {
	builder := qb.
		Select(eventColumns...).
		From("assignment_events").
		Where(sq.Eq{"pickup_order_id": pickupID}).
		OrderBy("id ASC")

	return r.listEvents(ctx, builder, "listevents")
}

// ListEventsAfter лента аудита для ретранслятора: события с id > cursor, старше settle.
// settle отсекает хвост, где транзакции с меньшими id еще могут не закоммититься.
func (r *Repository) ListEventsAfter(ctx context.Context, cursor int64, limit uint64, settle time.Duration) ([]entities.AssignmentEvent, error) {
	builder := qb.
		Select(eventColumns...).
		From("assignment_events").
		Where(sq.Gt{"id": cursor}).
		Where(sq.Expr("created_at <= NOW() - make_interval(secs => ?)", settle.Seconds())).
		OrderBy("id ASC").
		Limit(limit)

	return r.listEvents(ctx, builder, "listeventsafter")
}

func (r *Repository) listEvents(ctx context.Context, builder sq.SelectBuilder, operation string) ([]entities.AssignmentEvent, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository %s error: %w", operation, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository %s error: %w", operation, err)
	}
	defer rows.Close()

	eventModels := make([]AssignmentEventDB, 0, 8)
	for rows.Next() {
		var e AssignmentEventDB
		err := rows.Scan(
			&e.ID,
			&e.PickupOrderID,
			&e.TenantID,
			&e.OldStatus,
			&e.NewStatus,
			&e.ActorType,
			&e.ActorDriverID,
			&e.Reason,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected pickup repository %s error: %w", operation, err)
		}
		eventModels = append(eventModels, e)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected pickup repository %s error: %w", operation, err)
	}

	return EventToDomainList(eventModels), nil
}
