package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pickup-service/internal/entities"
	retrierconfig "pickup-service/pkg/retrier"
	"pickup-service/pkg/retrier/backoff_adapter"
	"pickup-service/pkg/tx"
)

const (
	// транзиентную ошибку повторяем ровно один раз
	maxTransientRetries = 1

	initialInterval = 20 * time.Millisecond
	maxInterval     = 200 * time.Millisecond
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type Assignment struct {
	repository Repository
	txManager  TxManager
	retrier    retrier
	now        func() time.Time
}

func New(repository Repository, txManager TxManager) *Assignment {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxTransientRetries,
		ShouldRetry:     isTransient,
	}

	return &Assignment{
		repository: repository,
		txManager:  txManager,
		retrier:    backoff_adapter.New(retryConfig),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// ListUnassigned пул заявок тенанта актора, старые первыми. Пустой список не ошибка.
func (a *Assignment) ListUnassigned(ctx context.Context, actor entities.Actor, limit int) ([]entities.PickupOrder, error) {
	if actor.TenantID <= 0 {
		return nil, ErrInvalidTenantID
	}
	normalized, err := normalizeLimit(limit)
	if err != nil {
		return nil, err
	}

	pickups, err := a.repository.ListUnassigned(ctx, actor.TenantID, normalized)
	if err != nil {
		return nil, fmt.Errorf("list unassigned pickups: %w", err)
	}
	return pickups, nil
}

// ListAssigned активные (assigned, in_progress) заявки водителя.
func (a *Assignment) ListAssigned(ctx context.Context, actor entities.Actor) ([]entities.PickupOrder, error) {
	if !actor.IsDriver() {
		return nil, ErrWrongActor
	}

	pickups, err := a.repository.ListAssignedToDriver(ctx, actor.TenantID, actor.DriverID)
	if err != nil {
		return nil, fmt.Errorf("list assigned pickups: %w", err)
	}
	return pickups, nil
}

// SelfAssign водитель забирает заявку из пула. Из двух конкурентных вызовов успешен ровно один,
// второй получает ErrConflict.
func (a *Assignment) SelfAssign(ctx context.Context, actor entities.Actor, pickupID string) (*entities.AssignmentResult, error) {
	if !actor.IsDriver() {
		return nil, ErrWrongActor
	}
	if !isValidPickupID(pickupID) {
		return nil, ErrInvalidPickupID
	}

	return a.mutate(ctx, "self_assign", func(ctx context.Context) (*entities.AssignmentResult, error) {
		err := a.checkDriver(ctx, actor)
		if err != nil {
			return nil, err
		}

		pickup, err := a.lockPickup(ctx, actor, pickupID)
		if err != nil {
			return nil, err
		}

		if pickup.AssignedDriverID != nil || !pickup.Status.IsClaimable() {
			return nil, ErrConflict
		}

		driverID := actor.DriverID
		return a.apply(ctx, actor, pickup, entities.PickupUpdate{
			ID:               pickup.ID,
			Status:           entities.PickupAssigned,
			AssignedDriverID: &driverID,
		}, nil)
	})
}

// Reject возвращает заявку в пул, отказаться может только текущий исполнитель и только до начала работ.
func (a *Assignment) Reject(ctx context.Context, actor entities.Actor, pickupID, reason string) (*entities.AssignmentResult, error) {
	if !actor.IsDriver() {
		return nil, ErrWrongActor
	}
	if !isValidPickupID(pickupID) {
		return nil, ErrInvalidPickupID
	}
	if !isValidReason(reason) {
		return nil, ErrInvalidReason
	}

	return a.mutate(ctx, "reject", func(ctx context.Context) (*entities.AssignmentResult, error) {
		pickup, err := a.lockPickup(ctx, actor, pickupID)
		if err != nil {
			return nil, err
		}

		if !isAssignee(pickup, actor.DriverID) {
			return nil, ErrNotOwner
		}
		if pickup.Status != entities.PickupAssigned {
			return nil, fmt.Errorf("%w: cannot reject from %s", ErrIllegalTransition, pickup.Status)
		}

		return a.apply(ctx, actor, pickup, entities.PickupUpdate{
			ID:     pickup.ID,
			Status: entities.PickupScheduled,
		}, &reason)
	})
}

// AdvanceStatus assigned -> in_progress -> completed. Завершение требует положительной итоговой цены.
func (a *Assignment) AdvanceStatus(ctx context.Context, actor entities.Actor, pickupID string, change entities.StatusChange) (*entities.AssignmentResult, error) {
	if !actor.IsDriver() {
		return nil, ErrWrongActor
	}
	if !isValidPickupID(pickupID) {
		return nil, ErrInvalidPickupID
	}
	err := validateStatusChange(change)
	if err != nil {
		return nil, err
	}

	return a.mutate(ctx, "advance_status", func(ctx context.Context) (*entities.AssignmentResult, error) {
		pickup, err := a.lockPickup(ctx, actor, pickupID)
		if err != nil {
			return nil, err
		}

		if !isAssignee(pickup, actor.DriverID) {
			return nil, ErrNotOwner
		}
		if !canAdvance(pickup.Status, change.NewStatus) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, pickup.Status, change.NewStatus)
		}

		update := entities.PickupUpdate{
			ID:               pickup.ID,
			Status:           change.NewStatus,
			AssignedDriverID: pickup.AssignedDriverID,
			DriverNotes:      change.Notes,
		}
		if change.NewStatus == entities.PickupCompleted {
			completedAt := a.now()
			update.FinalPrice = change.FinalPrice
			update.CompletedAt = &completedAt
		}

		return a.apply(ctx, actor, pickup, update, nil)
	})
}

// Events история переходов заявки, от старых к новым.
func (a *Assignment) Events(ctx context.Context, actor entities.Actor, pickupID string) ([]entities.AssignmentEvent, error) {
	if !isValidPickupID(pickupID) {
		return nil, ErrInvalidPickupID
	}

	pickup, err := a.repository.GetByID(ctx, pickupID)
	if err != nil {
		return nil, fmt.Errorf("get pickup: %w", err)
	}
	if !actor.CanAccessTenant(pickup.TenantID) {
		return nil, ErrWrongTenant
	}

	events, err := a.repository.ListEvents(ctx, pickupID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// mutate выполняет fn в одной транзакции: строка заявки и событие аудита коммитятся вместе.
// Конфликт сериализации повторяется один раз, затем отдается как ErrTransient.
func (a *Assignment) mutate(
	ctx context.Context,
	operation string,
	fn func(ctx context.Context) (*entities.AssignmentResult, error),
) (*entities.AssignmentResult, error) {
	var result *entities.AssignmentResult

	err := a.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return a.txManager.Do(ctx, func(ctx context.Context) error {
			res, err := fn(ctx)
			if err != nil {
				return err
			}
			result = res
			return nil
		})
	})

	if err != nil && isTransient(err) && !errors.Is(err, ErrTransient) {
		err = fmt.Errorf("%w: %w", ErrTransient, err)
	}

	outcome := "ok"
	if err != nil {
		outcome = Kind(err)
	}
	OperationsTotal.WithLabelValues(operation, outcome).Inc()

	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return result, nil
}

func (a *Assignment) apply(
	ctx context.Context,
	actor entities.Actor,
	pickup *entities.PickupOrder,
	update entities.PickupUpdate,
	reason *string,
) (*entities.AssignmentResult, error) {
	updated, err := a.repository.Update(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("update pickup: %w", err)
	}

	event, err := a.repository.AppendEvent(ctx, entities.AssignmentEventCreate{
		PickupOrderID: pickup.ID,
		TenantID:      pickup.TenantID,
		OldStatus:     pickup.Status,
		NewStatus:     update.Status,
		ActorType:     actor.Type,
		ActorDriverID: actor.DriverIDPtr(),
		Reason:        reason,
	})
	if err != nil {
		return nil, fmt.Errorf("append assignment event: %w", err)
	}

	return &entities.AssignmentResult{
		Pickup: *updated,
		Event:  *event,
	}, nil
}

// lockPickup берет строку заявки FOR UPDATE и проверяет тенант и терминальность.
func (a *Assignment) lockPickup(ctx context.Context, actor entities.Actor, pickupID string) (*entities.PickupOrder, error) {
	pickup, err := a.repository.GetByIDForUpdate(ctx, pickupID)
	if err != nil {
		return nil, fmt.Errorf("get pickup: %w", err)
	}

	err = checkMutable(actor, pickup)
	if err != nil {
		return nil, err
	}
	return pickup, nil
}

func (a *Assignment) checkDriver(ctx context.Context, actor entities.Actor) error {
	driver, err := a.repository.GetDriver(ctx, actor.DriverID)
	if err != nil {
		return fmt.Errorf("get driver: %w", err)
	}
	if driver.TenantID != actor.TenantID {
		return ErrWrongTenant
	}
	if driver.Status == entities.DriverInactive {
		return ErrDriverInactive
	}
	return nil
}

func checkMutable(actor entities.Actor, pickup *entities.PickupOrder) error {
	if !actor.CanAccessTenant(pickup.TenantID) {
		return ErrWrongTenant
	}
	if pickup.Status.IsTerminal() {
		return ErrTerminal
	}
	return nil
}

func isAssignee(pickup *entities.PickupOrder, driverID int64) bool {
	return pickup.AssignedDriverID != nil && *pickup.AssignedDriverID == driverID
}

func isTransient(err error) bool {
	return errors.Is(err, tx.ErrSerializationFailure) || errors.Is(err, ErrTransient)
}
