//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
	"time"

	"pickup-service/internal/entities"
)

type EventSource interface {
	ListEventsAfter(ctx context.Context, cursor int64, limit uint64, settle time.Duration) ([]entities.AssignmentEvent, error)
}

type CursorStore interface {
	Load(ctx context.Context) (int64, error)
	Save(ctx context.Context, cursor int64) error
}

type Publisher interface {
	Publish(ctx context.Context, event entities.AssignmentEvent) error
}
