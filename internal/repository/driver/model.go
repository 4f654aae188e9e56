package driver

import "time"

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

type DriverModifyDB struct {
	ID       *int64
	TenantID *int64
	Name     *string
	Phone    *string
	Status   *string
}

type DriverStatusEventDB struct {
	ID        int64
	DriverID  int64
	OldStatus string
	NewStatus string
	Reason    *string
	CreatedAt time.Time
}
