package intake_handle

import (
	"context"
	"errors"
	"fmt"

	"pickup-service/internal/entities"
	"pickup-service/internal/service/assignment"
	"pickup-service/internal/service/intake"
)

const defaultCancelReason = "canceled by customer"

type StatusHandlerFactory struct {
	pickupService intake.PickupService
}

func NewStatusHandlerFactory(pickupService intake.PickupService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		pickupService: pickupService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.PickupRequestStatusType) (intake.ExecuteFn, error) {
	switch status {
	case entities.PickupRequestCreated:
		return f.createdHandler, nil
	case entities.PickupRequestCanceled:
		return f.canceledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", intake.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) createdHandler(ctx context.Context, change entities.PickupRequestChange) (*entities.AssignmentResult, error) {
	result, err := f.pickupService.CreatePickup(ctx, entities.SystemActor(change.TenantID), entities.PickupCreate{
		TenantID:          change.TenantID,
		CustomerRequestID: change.RequestID,
		PickupAddress:     change.PickupAddress,
		VehicleInfo:       change.VehicleInfo,
		ScheduledAt:       change.ScheduledAt,
	})
	if err != nil {
		// повторная доставка того же события
		if errors.Is(err, assignment.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", intake.ErrAlreadyProcessed, err)
		}
		return nil, fmt.Errorf("create pickup for request %s: %w", change.RequestID, err)
	}
	return result, nil
}

func (f *StatusHandlerFactory) canceledHandler(ctx context.Context, change entities.PickupRequestChange) (*entities.AssignmentResult, error) {
	reason := defaultCancelReason
	if change.Reason != nil && *change.Reason != "" {
		reason = *change.Reason
	}

	result, err := f.pickupService.CancelByCustomerRequest(ctx, entities.SystemActor(change.TenantID), change.RequestID, reason)
	if err != nil {
		if errors.Is(err, assignment.ErrTerminal) {
			return nil, fmt.Errorf("%w: %w", intake.ErrAlreadyProcessed, err)
		}
		return nil, fmt.Errorf("cancel pickup for request %s: %w", change.RequestID, err)
	}
	return result, nil
}
