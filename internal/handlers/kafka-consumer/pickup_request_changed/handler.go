package pickup_request_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"pickup-service/internal/entities"
	"pickup-service/internal/service/assignment"
	"pickup-service/internal/service/intake"
	"pickup-service/pkg/logger"
)

type Handler struct {
	intakeService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, intakeService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		intakeService:            intakeService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("pickup.request.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("pickup.request.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim без коммита оффсета,
// тогда сообщение будет прочитано заново после перезапуска сессии.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event requestChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("pickup.request.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("request", event.RequestID),
		logger.NewField("tenant", event.TenantID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("pickup.request.changed processing")

	result, err := h.intakeService.ProcessPickupRequestChange(ctx, toEntity(event))
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("pickup.request.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, assignment.ErrTransient):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("pickup.request.changed handler transient failure, message will be reprocessed")
			return true

		case errors.Is(err, intake.ErrAlreadyProcessed):
			msgLog.With(
				logger.NewField("error", err),
			).Info("pickup.request.changed handler request already processed")

		case errors.Is(err, intake.ErrInvalidEvent),
			errors.Is(err, assignment.ErrValidation):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("pickup.request.changed handler invalid request")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("pickup.request.changed handler failed to process request")
		}
		sess.MarkMessage(message, "")
		return false
	}

	if result == nil {
		msgLog.Debug("pickup.request.changed: status skipped")
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("request", event.RequestID),
		logger.NewField("pickup", result.Pickup.ID),
		logger.NewField("current_status", result.Pickup.Status.String()),
		logger.NewField("offset", message.Offset),
	).Info("pickup.request.changed: processed")

	sess.MarkMessage(message, "")
	return false
}

func toEntity(event requestChangedEvent) entities.PickupRequestChange {
	return entities.PickupRequestChange{
		RequestID:     event.RequestID,
		TenantID:      event.TenantID,
		Status:        entities.PickupRequestStatusType(event.Status),
		PickupAddress: event.PickupAddress,
		VehicleInfo:   event.VehicleInfo,
		ScheduledAt:   event.ScheduledAt,
		Reason:        event.Reason,
	}
}
