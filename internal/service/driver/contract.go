//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"
	"time"

	"pickup-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, driverModify entities.DriverModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Driver, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Driver, error)
	GetAll(ctx context.Context, tenantID int64) ([]entities.Driver, error)
	Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
	UpdateStatus(ctx context.Context, id int64, status entities.DriverStatusType) (*entities.Driver, error)
	Touch(ctx context.Context, id int64) error
	AppendStatusEvent(ctx context.Context, event entities.DriverStatusEvent) (*entities.DriverStatusEvent, error)
	ReleaseStale(ctx context.Context, seenBefore time.Time, statuses []entities.DriverStatusType, reason string) ([]entities.DriverStatusEvent, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
