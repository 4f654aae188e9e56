package entities

import "time"

// PickupRequestStatusType статус клиентского запроса во внешней системе приема заявок.
type PickupRequestStatusType string

const (
	PickupRequestCreated  PickupRequestStatusType = "created"
	PickupRequestCanceled PickupRequestStatusType = "canceled"
)

func (s PickupRequestStatusType) String() string {
	return string(s)
}

// PickupRequestChange событие из топика приема заявок.
type PickupRequestChange struct {
	RequestID     string
	TenantID      int64
	Status        PickupRequestStatusType
	PickupAddress string
	VehicleInfo   string
	ScheduledAt   *time.Time
	Reason        *string
}
