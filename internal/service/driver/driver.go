package driver

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
	adminUpdateReason      = "admin update"
	heartbeatTimeoutReason = "heartbeat timeout"

	// конфликт сериализации повторяем ровно один раз
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

type Driver struct {
	repository Repository
	txManager  TxManager
	retrier    retrier
	now        func() time.Time
}

func New(repository Repository, txManager TxManager) *Driver {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxTransientRetries,
		ShouldRetry:     isTransient,
	}

	return &Driver{
		repository: repository,
		txManager:  txManager,
		retrier:    backoff_adapter.New(retryConfig),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *Driver) CreateDriver(ctx context.Context, actor entities.Actor, driverModify entities.DriverModify) (int64, error) {
	if !actor.IsPrivileged() {
		return 0, ErrForbidden
	}
	if driverModify.Name == nil ||
		driverModify.Phone == nil ||
		driverModify.TenantID == nil {
		return 0, ErrMissingRequiredFields
	}

	if *driverModify.TenantID <= 0 {
		return 0, ErrInvalidTenantID
	}
	if !isValidName(*driverModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*driverModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if driverModify.Status == nil {
		status := entities.DefaultDriverStatus
		driverModify.Status = &status
	}
	if !isValidStatus(*driverModify.Status) {
		return 0, ErrInvalidStatus
	}
	if !actor.CanAccessTenant(*driverModify.TenantID) {
		return 0, ErrForbidden
	}

	id, err := s.repository.Create(ctx, driverModify)
	if err != nil {
		return 0, fmt.Errorf("create driver: %w", err)
	}

	return id, nil
}

// UpdateDriver частичное обновление. Смена статуса через админку тоже попадает в историю статусов.
func (s *Driver) UpdateDriver(ctx context.Context, actor entities.Actor, driverModify entities.DriverModify) (*entities.Driver, error) {
	if !actor.IsPrivileged() {
		return nil, ErrForbidden
	}
	if driverModify.ID == nil || *driverModify.ID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if driverModify.Name == nil &&
		driverModify.Phone == nil &&
		driverModify.Status == nil &&
		driverModify.TenantID == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if driverModify.Name != nil && !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if driverModify.Status != nil && !isValidStatus(*driverModify.Status) {
		return nil, ErrInvalidStatus
	}
	if driverModify.TenantID != nil {
		if *driverModify.TenantID <= 0 {
			return nil, ErrInvalidTenantID
		}
		if !actor.CanAccessTenant(*driverModify.TenantID) {
			return nil, ErrForbidden
		}
	}

	var updated *entities.Driver
	err := s.inTx(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, *driverModify.ID)
		if err != nil {
			return err
		}
		if !actor.CanAccessTenant(current.TenantID) {
			return ErrForbidden
		}

		updated, err = s.repository.Update(ctx, driverModify)
		if err != nil {
			return err
		}

		if updated.Status == current.Status {
			return nil
		}

		reason := adminUpdateReason
		_, err = s.repository.AppendStatusEvent(ctx, entities.DriverStatusEvent{
			DriverID:  current.ID,
			OldStatus: current.Status,
			NewStatus: updated.Status,
			Reason:    &reason,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return updated, nil
}

func (s *Driver) GetDriver(ctx context.Context, actor entities.Actor, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}
	if actor.IsDriver() && actor.DriverID != id {
		return nil, ErrForbidden
	}

	driver, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	if !actor.CanAccessTenant(driver.TenantID) {
		return nil, ErrForbidden
	}

	return driver, nil
}

// GetDrivers водители тенанта. tenantID == 0 допустим только для админа без привязки к тенанту.
func (s *Driver) GetDrivers(ctx context.Context, actor entities.Actor, tenantID int64) ([]entities.Driver, error) {
	if !actor.IsPrivileged() {
		return nil, ErrForbidden
	}
	if tenantID < 0 {
		return nil, ErrInvalidTenantID
	}
	if tenantID == 0 {
		tenantID = actor.TenantID
	}
	if tenantID != 0 && !actor.CanAccessTenant(tenantID) {
		return nil, ErrForbidden
	}

	drivers, err := s.repository.GetAll(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}

	return drivers, nil
}

// SetStatus смена присутствия водителя. Водитель меняет только себя и не может выйти из inactive
// или войти в него, админ может все в своем тенанте. Каждая смена пишется в историю статусов.
func (s *Driver) SetStatus(
	ctx context.Context,
	actor entities.Actor,
	driverID int64,
	status entities.DriverStatusType,
	reason *string,
) (*entities.Driver, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if reason != nil && !isValidReason(*reason) {
		return nil, ErrInvalidReason
	}
	if actor.IsDriver() {
		if actor.DriverID != driverID {
			return nil, ErrForbidden
		}
		if !isSelfServiceStatus(status) {
			return nil, fmt.Errorf("%w: status %s is set by administrators only", ErrForbidden, status)
		}
	}

	var result *entities.Driver
	err := s.inTx(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, driverID)
		if err != nil {
			return err
		}
		if !actor.CanAccessTenant(current.TenantID) {
			return ErrForbidden
		}
		if actor.IsDriver() && current.Status == entities.DriverInactive {
			return ErrDriverInactive
		}

		if current.Status == status {
			result = current
			return s.repository.Touch(ctx, driverID)
		}

		result, err = s.repository.UpdateStatus(ctx, driverID, status)
		if err != nil {
			return err
		}

		_, err = s.repository.AppendStatusEvent(ctx, entities.DriverStatusEvent{
			DriverID:  driverID,
			OldStatus: current.Status,
			NewStatus: status,
			Reason:    reason,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("set driver status: %w", err)
	}

	return result, nil
}

func (s *Driver) Heartbeat(ctx context.Context, actor entities.Actor) error {
	if !actor.IsDriver() {
		return ErrForbidden
	}

	err := s.repository.Touch(ctx, actor.DriverID)
	if err != nil {
		return fmt.Errorf("heartbeat: %w", err)
	}
	return nil
}

// ReleaseStaleDrivers переводит в offline водителей, не подававших признаков жизни дольше threshold.
func (s *Driver) ReleaseStaleDrivers(ctx context.Context, threshold time.Duration) (int64, error) {
	if threshold <= 0 {
		return 0, ErrInvalidThreshold
	}

	seenBefore := s.now().Add(-threshold)
	events, err := s.repository.ReleaseStale(ctx, seenBefore, releasableStatuses, heartbeatTimeoutReason)
	if err != nil {
		return 0, fmt.Errorf("release stale drivers: %w", err)
	}

	return int64(len(events)), nil
}

// inTx выполняет fn в транзакции. Конфликт сериализации повторяется один раз, затем отдается как ErrTransient.
func (s *Driver) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, fn)
	})
	if err != nil && isTransient(err) && !errors.Is(err, ErrTransient) {
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}
	return err
}

func isTransient(err error) bool {
	return errors.Is(err, tx.ErrSerializationFailure) || errors.Is(err, ErrTransient)
}
