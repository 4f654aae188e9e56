package pickup_events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"pickup-service/internal/entities"
	retrierconfig "pickup-service/pkg/retrier"
	"pickup-service/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const (
	headerMessageID = "message_id"
	headerEventType = "event_type"
	eventType       = "pickup.status.changed"
)

type Gateway struct {
	producer producer
	retrier  retrier
	topic    string
}

func New(producer producer, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

// Publish ключ сообщения id заявки, события одной заявки попадают в одну партицию.
func (g *Gateway) Publish(ctx context.Context, event entities.AssignmentEvent) error {
	message := toMessage(event)
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("gateway pickup events, marshal event %d: %w", event.ID, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(event.PickupOrderID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerMessageID), Value: []byte(message.MessageID)},
			{Key: []byte(headerEventType), Value: []byte(eventType)},
		},
	}

	err = g.executeWithMetrics(ctx, func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _, err := g.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway pickup events, publish event %d: %w", event.ID, err)
	}

	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var kErr sarama.KError
	if errors.As(err, &kErr) {
		switch kErr {
		case sarama.ErrNotLeaderForPartition,
			sarama.ErrLeaderNotAvailable,
			sarama.ErrRequestTimedOut,
			sarama.ErrNotEnoughReplicas,
			sarama.ErrNotEnoughReplicasAfterAppend,
			sarama.ErrNetworkException:
			return true
		default:
			return false
		}
	}

	return errors.Is(err, sarama.ErrOutOfBrokers) || errors.Is(err, sarama.ErrNotConnected)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := resultLabel(err)
	PublisherRequestDuration.WithLabelValues(g.topic, result).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		PublisherRetriesTotal.WithLabelValues(g.topic, result).Inc()
	}

	return err
}

func resultLabel(err error) string {
	if err == nil {
		return "OK"
	}
	var kErr sarama.KError
	if errors.As(err, &kErr) {
		return kErr.Error()
	}
	return "UNKNOWN"
}
