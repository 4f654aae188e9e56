package entities

import "time"

type Driver struct {
	ID         int64
	TenantID   int64
	Name       string
	Phone      string
	Status     DriverStatusType
	LastSeenAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DriverStatusType присутствие водителя, не зависит от статусов заявок.
type DriverStatusType string

const (
	DriverAvailable DriverStatusType = "available"
	DriverOnJob     DriverStatusType = "on_job"
	DriverBreak     DriverStatusType = "break"
	DriverOffline   DriverStatusType = "offline"
	DriverInactive  DriverStatusType = "inactive"
	DriverBusy      DriverStatusType = "busy"
)

const DefaultDriverStatus = DriverOffline

func (t DriverStatusType) String() string {
	return string(t)
}

type DriverModify struct {
	ID       *int64
	TenantID *int64
	Name     *string
	Phone    *string
	Status   *DriverStatusType
}

type DriverStatusEvent struct {
	ID        int64
	DriverID  int64
	OldStatus DriverStatusType
	NewStatus DriverStatusType
	Reason    *string
	CreatedAt time.Time
}
