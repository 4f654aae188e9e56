package pickup_events

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"pickup-service/internal/entities"
)

// eventMessage формат сообщения в топике pickup.events.
type eventMessage struct {
	MessageID     string  `json:"message_id"`
	EventID       int64   `json:"event_id"`
	PickupOrderID string  `json:"pickup_order_id"`
	TenantID      int64   `json:"tenant_id"`
	OldStatus     *string `json:"old_status"`
	NewStatus     string  `json:"new_status"`
	ActorType     string  `json:"actor_type"`
	ActorDriverID *int64  `json:"actor_driver_id,omitempty"`
	Reason        *string `json:"reason,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// messageID детерминирован по id события, повторная публикация дает тот же id.
func messageID(eventID int64) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("pickup-event:"+strconv.FormatInt(eventID, 10))).String()
}

func toMessage(event entities.AssignmentEvent) eventMessage {
	var oldStatus *string
	if event.OldStatus != "" {
		s := event.OldStatus.String()
		oldStatus = &s
	}

	return eventMessage{
		MessageID:     messageID(event.ID),
		EventID:       event.ID,
		PickupOrderID: event.PickupOrderID,
		TenantID:      event.TenantID,
		OldStatus:     oldStatus,
		NewStatus:     event.NewStatus.String(),
		ActorType:     event.ActorType.String(),
		ActorDriverID: event.ActorDriverID,
		Reason:        event.Reason,
		CreatedAt:     event.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
