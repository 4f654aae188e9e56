//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"pickup-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, pickup entities.PickupOrder) (*entities.PickupOrder, error)
	GetByID(ctx context.Context, id string) (*entities.PickupOrder, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entities.PickupOrder, error)
	GetByCustomerRequestIDForUpdate(ctx context.Context, customerRequestID string) (*entities.PickupOrder, error)
	ListUnassigned(ctx context.Context, tenantID int64, limit uint64) ([]entities.PickupOrder, error)
	ListAssignedToDriver(ctx context.Context, tenantID, driverID int64) ([]entities.PickupOrder, error)
	Update(ctx context.Context, update entities.PickupUpdate) (*entities.PickupOrder, error)

	AppendEvent(ctx context.Context, event entities.AssignmentEventCreate) (*entities.AssignmentEvent, error)
	ListEvents(ctx context.Context, pickupID string) ([]entities.AssignmentEvent, error)

	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
	TenantExists(ctx context.Context, id int64) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
