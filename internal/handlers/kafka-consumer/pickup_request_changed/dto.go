package pickup_request_changed

import "time"

type requestChangedEvent struct {
	RequestID     string     `json:"request_id"`
	TenantID      int64      `json:"tenant_id"`
	Status        string     `json:"status"`
	PickupAddress string     `json:"pickup_address"`
	VehicleInfo   string     `json:"vehicle_info"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	Reason        *string    `json:"reason"`
}
