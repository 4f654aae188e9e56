package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PickupOrder struct {
	ID                string
	TenantID          int64
	CustomerRequestID string
	PickupAddress     string
	VehicleInfo       string
	ScheduledAt       *time.Time
	Status            PickupStatusType
	AssignedDriverID  *int64
	FinalPrice        *decimal.Decimal
	DriverNotes       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CompletedAt       *time.Time
}

type PickupStatusType string

const (
	PickupPending    PickupStatusType = "pending"
	PickupScheduled  PickupStatusType = "scheduled"
	PickupAssigned   PickupStatusType = "assigned"
	PickupInProgress PickupStatusType = "in_progress"
	PickupCompleted  PickupStatusType = "completed"
	PickupCanceled   PickupStatusType = "canceled"
)

func (s PickupStatusType) String() string {
	return string(s)
}

// IsTerminal completed и canceled не допускают дальнейших изменений.
func (s PickupStatusType) IsTerminal() bool {
	return s == PickupCompleted || s == PickupCanceled
}

// IsClaimable статусы пула, из которых водитель может взять заявку.
func (s PickupStatusType) IsClaimable() bool {
	return s == PickupPending || s == PickupScheduled
}

// IsActive статусы, в которых у заявки обязан быть назначенный водитель.
func (s PickupStatusType) IsActive() bool {
	return s == PickupAssigned || s == PickupInProgress
}

// PickupCreate данные новой заявки из потока клиентских запросов или админки.
type PickupCreate struct {
	TenantID          int64
	CustomerRequestID string
	PickupAddress     string
	VehicleInfo       string
	ScheduledAt       *time.Time
}

// PickupUpdate одно изменение строки заявки, всегда записывается вместе с AssignmentEvent.
type PickupUpdate struct {
	ID               string
	Status           PickupStatusType
	AssignedDriverID *int64
	FinalPrice       *decimal.Decimal
	DriverNotes      *string
	CompletedAt      *time.Time
}

// StatusChange запрос водителя на продвижение статуса.
type StatusChange struct {
	NewStatus  PickupStatusType
	FinalPrice *decimal.Decimal
	Notes      *string
}

type AssignmentResult struct {
	Pickup PickupOrder
	Event  AssignmentEvent
}
