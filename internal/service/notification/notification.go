package notification

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultBatchSize = 100
	maxBatchSize     = 1000
)

var ErrInvalidBatchSize = errors.New("relay batch size must be between 1 and 1000")

type Service struct {
	source    EventSource
	cursors   CursorStore
	publisher Publisher
	batchSize uint64
	settle    time.Duration
}

func New(source EventSource, cursors CursorStore, publisher Publisher, batchSize int, settle time.Duration) (*Service, error) {
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}
	if batchSize < 0 || batchSize > maxBatchSize {
		return nil, ErrInvalidBatchSize
	}

	return &Service{
		source:    source,
		cursors:   cursors,
		publisher: publisher,
		batchSize: uint64(batchSize),
		settle:    settle,
	}, nil
}

// RelayBatch публикует следующую пачку событий аудита после сохраненного курсора.
// Курсор сдвигается только за успешно опубликованные события, поэтому доставка at-least-once:
// при сбое между публикацией и сохранением курсора событие уйдет повторно.
func (s *Service) RelayBatch(ctx context.Context) (int, error) {
	cursor, err := s.cursors.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load relay cursor: %w", err)
	}

	events, err := s.source.ListEventsAfter(ctx, cursor, s.batchSize, s.settle)
	if err != nil {
		return 0, fmt.Errorf("list events after %d: %w", cursor, err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	published := 0
	var publishErr error
	for _, event := range events {
		err := s.publisher.Publish(ctx, event)
		if err != nil {
			publishErr = fmt.Errorf("publish event %d: %w", event.ID, err)
			break
		}
		cursor = event.ID
		published++
	}

	if published > 0 {
		err := s.cursors.Save(ctx, cursor)
		if err != nil {
			return published, errors.Join(publishErr, fmt.Errorf("save relay cursor %d: %w", cursor, err))
		}
		EventsRelayedTotal.Add(float64(published))
		RelayCursor.Set(float64(cursor))
	}

	return published, publishErr
}

// HasMore полная пачка означает, что за курсором могут быть еще события.
func (s *Service) HasMore(published int) bool {
	return uint64(published) == s.batchSize
}
