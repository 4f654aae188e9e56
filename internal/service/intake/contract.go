//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=intake_test
package intake

import (
	"context"

	"pickup-service/internal/entities"
)

type PickupService interface {
	CreatePickup(ctx context.Context, actor entities.Actor, create entities.PickupCreate) (*entities.AssignmentResult, error)
	CancelByCustomerRequest(ctx context.Context, actor entities.Actor, customerRequestID, reason string) (*entities.AssignmentResult, error)
}

type (
	ExecuteFn      func(ctx context.Context, change entities.PickupRequestChange) (*entities.AssignmentResult, error)
	HandlerFactory interface {
		GetHandler(status entities.PickupRequestStatusType) (ExecuteFn, error)
	}
)
