package pickup

import (
	"pickup-service/internal/entities"
)

func ToDomain(p *PickupOrderDB) *entities.PickupOrder {
	if p == nil {
		return nil
	}

	pickup := &entities.PickupOrder{
		ID:                p.ID,
		TenantID:          p.TenantID,
		CustomerRequestID: p.CustomerRequestID,
		PickupAddress:     p.PickupAddress,
		VehicleInfo:       p.VehicleInfo,
		ScheduledAt:       p.ScheduledAt,
		Status:            entities.PickupStatusType(p.Status),
		AssignedDriverID:  p.AssignedDriverID,
		DriverNotes:       p.DriverNotes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		CompletedAt:       p.CompletedAt,
	}
	if p.FinalPrice.Valid {
		price := p.FinalPrice.Decimal
		pickup.FinalPrice = &price
	}
	return pickup
}

func ToDomainList(pickupsDB []PickupOrderDB) []entities.PickupOrder {
	if len(pickupsDB) == 0 {
		return []entities.PickupOrder{}
	}

	result := make([]entities.PickupOrder, len(pickupsDB))
	for i, pickupDB := range pickupsDB {
		result[i] = *ToDomain(&pickupDB)
	}
	return result
}

func EventToDomain(e *AssignmentEventDB) *entities.AssignmentEvent {
	if e == nil {
		return nil
	}

	event := &entities.AssignmentEvent{
		ID:            e.ID,
		PickupOrderID: e.PickupOrderID,
		TenantID:      e.TenantID,
		NewStatus:     entities.PickupStatusType(e.NewStatus),
		ActorType:     entities.ActorType(e.ActorType),
		ActorDriverID: e.ActorDriverID,
		Reason:        e.Reason,
		CreatedAt:     e.CreatedAt,
	}
	if e.OldStatus != nil {
		event.OldStatus = entities.PickupStatusType(*e.OldStatus)
	}
	return event
}

func EventToDomainList(eventsDB []AssignmentEventDB) []entities.AssignmentEvent {
	if len(eventsDB) == 0 {
		return []entities.AssignmentEvent{}
	}

	result := make([]entities.AssignmentEvent, len(eventsDB))
	for i, eventDB := range eventsDB {
		result[i] = *EventToDomain(&eventDB)
	}
	return result
}

// FromEventCreate пустой OldStatus (событие создания) пишется как NULL.
func FromEventCreate(e *entities.AssignmentEventCreate) *AssignmentEventDB {
	if e == nil {
		return nil
	}

	eventDB := &AssignmentEventDB{
		PickupOrderID: e.PickupOrderID,
		TenantID:      e.TenantID,
		NewStatus:     e.NewStatus.String(),
		ActorType:     e.ActorType.String(),
		ActorDriverID: e.ActorDriverID,
		Reason:        e.Reason,
	}
	if e.OldStatus != "" {
		oldStatus := e.OldStatus.String()
		eventDB.OldStatus = &oldStatus
	}
	return eventDB
}

func DriverToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:         d.ID,
		TenantID:   d.TenantID,
		Name:       d.Name,
		Phone:      d.Phone,
		Status:     entities.DriverStatusType(d.Status),
		LastSeenAt: d.LastSeenAt,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
