package assignment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"pickup-service/internal/entities"
)

// CreatePickup заводит заявку из клиентского запроса. Повтор того же customer_request_id дает ErrConflict.
func (a *Assignment) CreatePickup(ctx context.Context, actor entities.Actor, create entities.PickupCreate) (*entities.AssignmentResult, error) {
	if !actor.IsPrivileged() {
		return nil, ErrWrongActor
	}
	err := validatePickupCreate(create)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessTenant(create.TenantID) {
		return nil, ErrWrongTenant
	}

	return a.mutate(ctx, "create_pickup", func(ctx context.Context) (*entities.AssignmentResult, error) {
		exists, err := a.repository.TenantExists(ctx, create.TenantID)
		if err != nil {
			return nil, fmt.Errorf("check tenant: %w", err)
		}
		if !exists {
			return nil, ErrTenantNotFound
		}

		status := initialStatus(create)
		pickup, err := a.repository.Create(ctx, entities.PickupOrder{
			ID:                uuid.NewString(),
			TenantID:          create.TenantID,
			CustomerRequestID: create.CustomerRequestID,
			PickupAddress:     create.PickupAddress,
			VehicleInfo:       create.VehicleInfo,
			ScheduledAt:       create.ScheduledAt,
			Status:            status,
		})
		if err != nil {
			return nil, fmt.Errorf("create pickup: %w", err)
		}

		event, err := a.repository.AppendEvent(ctx, entities.AssignmentEventCreate{
			PickupOrderID: pickup.ID,
			TenantID:      pickup.TenantID,
			NewStatus:     status,
			ActorType:     actor.Type,
		})
		if err != nil {
			return nil, fmt.Errorf("append assignment event: %w", err)
		}

		return &entities.AssignmentResult{Pickup: *pickup, Event: *event}, nil
	})
}

// CancelPickup административная отмена из любого нетерминального статуса, назначение сохраняется в истории.
func (a *Assignment) CancelPickup(ctx context.Context, actor entities.Actor, pickupID, reason string) (*entities.AssignmentResult, error) {
	if !actor.IsPrivileged() {
		return nil, ErrWrongActor
	}
	if !isValidPickupID(pickupID) {
		return nil, ErrInvalidPickupID
	}
	if !isValidReason(reason) {
		return nil, ErrInvalidReason
	}

	return a.mutate(ctx, "cancel_pickup", func(ctx context.Context) (*entities.AssignmentResult, error) {
		pickup, err := a.lockPickup(ctx, actor, pickupID)
		if err != nil {
			return nil, err
		}
		return a.cancel(ctx, actor, pickup, reason)
	})
}

// CancelByCustomerRequest отмена по ссылке на клиентский запрос (событие из системы приема заявок).
func (a *Assignment) CancelByCustomerRequest(ctx context.Context, actor entities.Actor, customerRequestID, reason string) (*entities.AssignmentResult, error) {
	if !actor.IsPrivileged() {
		return nil, ErrWrongActor
	}
	if !isValidCustomerRequestID(customerRequestID) {
		return nil, ErrInvalidCustomerRequestID
	}
	if !isValidReason(reason) {
		return nil, ErrInvalidReason
	}

	return a.mutate(ctx, "cancel_by_customer_request", func(ctx context.Context) (*entities.AssignmentResult, error) {
		pickup, err := a.repository.GetByCustomerRequestIDForUpdate(ctx, customerRequestID)
		if err != nil {
			return nil, fmt.Errorf("get pickup by customer request: %w", err)
		}
		err = checkMutable(actor, pickup)
		if err != nil {
			return nil, err
		}
		return a.cancel(ctx, actor, pickup, reason)
	})
}

func (a *Assignment) cancel(ctx context.Context, actor entities.Actor, pickup *entities.PickupOrder, reason string) (*entities.AssignmentResult, error) {
	return a.apply(ctx, actor, pickup, entities.PickupUpdate{
		ID:               pickup.ID,
		Status:           entities.PickupCanceled,
		AssignedDriverID: pickup.AssignedDriverID,
	}, &reason)
}
