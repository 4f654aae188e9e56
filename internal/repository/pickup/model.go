package pickup

import (
	"time"

	"github.com/shopspring/decimal"
)

type PickupOrderDB struct {
	ID                string
	TenantID          int64
	CustomerRequestID string
	PickupAddress     string
	VehicleInfo       string
	ScheduledAt       *time.Time
	Status            string
	AssignedDriverID  *int64
	FinalPrice        decimal.NullDecimal
	DriverNotes       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CompletedAt       *time.Time
}

type AssignmentEventDB struct {
	ID            int64
	PickupOrderID string
	TenantID      int64
	OldStatus     *string
	NewStatus     string
	ActorType     string
	ActorDriverID *int64
	Reason        *string
	CreatedAt     time.Time
}

type DriverDB struct {
	ID         int64
	TenantID   int64
	Name       string
	Phone      string
	Status     string
	LastSeenAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
