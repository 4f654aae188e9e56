package intake

import (
	"context"
	"errors"
	"fmt"

	"pickup-service/internal/entities"
)

type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

// ProcessPickupRequestChange применяет событие из потока приема заявок.
// Возвращает nil результат без ошибки, если статус события нас не касается.
func (s *Service) ProcessPickupRequestChange(ctx context.Context, change entities.PickupRequestChange) (*entities.AssignmentResult, error) {
	if change.RequestID == "" || change.TenantID <= 0 || change.Status == "" {
		return nil, ErrInvalidEvent
	}

	executeFn, err := s.statusFactory.GetHandler(change.Status)
	if err != nil {
		// необрабатываемые статусы пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return nil, nil
		}
		return nil, err
	}

	result, err := executeFn(ctx, change)
	if err != nil {
		return nil, fmt.Errorf("process pickup request %s: %w", change.RequestID, err)
	}

	return result, nil
}
