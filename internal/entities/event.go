package entities

import "time"

// AssignmentEvent неизменяемая запись аудита о переходе статуса/назначения заявки.
type AssignmentEvent struct {
	ID            int64
	PickupOrderID string
	TenantID      int64
	// OldStatus пустой для события создания
	OldStatus     PickupStatusType
	NewStatus     PickupStatusType
	ActorType     ActorType
	ActorDriverID *int64
	Reason        *string
	CreatedAt     time.Time
}

type AssignmentEventCreate struct {
	PickupOrderID string
	TenantID      int64
	OldStatus     PickupStatusType
	NewStatus     PickupStatusType
	ActorType     ActorType
	ActorDriverID *int64
	Reason        *string
}
