package event_relay

import (
	"context"
	"time"

	"pickup-service/pkg/logger"
)

// maxBatchesPerRun ограничивает догон отставания за один тик.
const maxBatchesPerRun = 10

type Service interface {
	RelayBatch(ctx context.Context) (int, error)
	HasMore(published int) bool
}

type EventRelay struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewEventRelay(log logger.Logger, service Service, interval time.Duration) *EventRelay {
	return &EventRelay{
		log:      log,
		service:  service,
		interval: interval,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (e *EventRelay) TTL() time.Duration {
	return e.interval
}

// Do публикует пачки, пока они приходят полными.
func (e *EventRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, e.interval)
	defer cancel()

	total := 0
	for range maxBatchesPerRun {
		published, err := e.service.RelayBatch(ctxWithTimeout)
		total += published
		if err != nil {
			e.logRelayed(total)
			return err
		}
		if !e.service.HasMore(published) {
			break
		}
	}

	e.logRelayed(total)
	return nil
}

func (e *EventRelay) Info() string {
	return "event relay"
}

func (e *EventRelay) logRelayed(total int) {
	if total == 0 {
		return
	}
	e.log.With(
		logger.NewField("published_events", total),
	).Info("event relay")
}
