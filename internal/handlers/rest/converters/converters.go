package converters

import (
	"pickup-service/internal/entities"
	"pickup-service/internal/generated/dto"
)

func PickupToDTO(pickup *entities.PickupOrder) dto.PickupOrder {
	result := dto.PickupOrder{
		ID:                pickup.ID,
		TenantID:          pickup.TenantID,
		CustomerRequestID: pickup.CustomerRequestID,
		PickupAddress:     pickup.PickupAddress,
		VehicleInfo:       pickup.VehicleInfo,
		ScheduledAt:       pickup.ScheduledAt,
		Status:            pickup.Status.String(),
		AssignedDriverID:  pickup.AssignedDriverID,
		CreatedAt:         pickup.CreatedAt,
		UpdatedAt:         pickup.UpdatedAt,
		CompletedAt:       pickup.CompletedAt,
	}
	if pickup.FinalPrice != nil {
		price := pickup.FinalPrice.StringFixed(2)
		result.FinalPrice = &price
	}
	if pickup.DriverNotes != "" {
		notes := pickup.DriverNotes
		result.DriverNotes = &notes
	}
	return result
}

func PickupsToDTO(pickups []entities.PickupOrder) []dto.PickupOrder {
	result := make([]dto.PickupOrder, 0, len(pickups))
	for i := range pickups {
		result = append(result, PickupToDTO(&pickups[i]))
	}
	return result
}

// EventToDTO old_status отсутствует у события создания.
func EventToDTO(event *entities.AssignmentEvent) dto.AssignmentEvent {
	result := dto.AssignmentEvent{
		ID:            event.ID,
		PickupOrderID: event.PickupOrderID,
		TenantID:      event.TenantID,
		NewStatus:     event.NewStatus.String(),
		ActorType:     event.ActorType.String(),
		ActorDriverID: event.ActorDriverID,
		Reason:        event.Reason,
		CreatedAt:     event.CreatedAt,
	}
	if event.OldStatus != "" {
		oldStatus := event.OldStatus.String()
		result.OldStatus = &oldStatus
	}
	return result
}

func EventsToDTO(events []entities.AssignmentEvent) []dto.AssignmentEvent {
	result := make([]dto.AssignmentEvent, 0, len(events))
	for i := range events {
		result = append(result, EventToDTO(&events[i]))
	}
	return result
}

func ResultToDTO(result *entities.AssignmentResult) dto.AssignmentResult {
	return dto.AssignmentResult{
		Pickup: PickupToDTO(&result.Pickup),
		Event:  EventToDTO(&result.Event),
	}
}

func DriverToDTO(driver *entities.Driver) dto.Driver {
	return dto.Driver{
		ID:         driver.ID,
		TenantID:   driver.TenantID,
		Name:       driver.Name,
		Phone:      driver.Phone,
		Status:     driver.Status.String(),
		LastSeenAt: driver.LastSeenAt,
		CreatedAt:  driver.CreatedAt,
		UpdatedAt:  driver.UpdatedAt,
	}
}

func DriversToDTO(drivers []entities.Driver) []dto.Driver {
	result := make([]dto.Driver, 0, len(drivers))
	for i := range drivers {
		result = append(result, DriverToDTO(&drivers[i]))
	}
	return result
}

func TenantToDTO(tenant *entities.Tenant) dto.Tenant {
	return dto.Tenant{
		ID:        tenant.ID,
		Name:      tenant.Name,
		CreatedAt: tenant.CreatedAt,
	}
}

func TenantsToDTO(tenants []entities.Tenant) []dto.Tenant {
	result := make([]dto.Tenant, 0, len(tenants))
	for i := range tenants {
		result = append(result, TenantToDTO(&tenants[i]))
	}
	return result
}
