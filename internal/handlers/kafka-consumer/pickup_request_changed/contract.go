//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pickup_request_changed_test
package pickup_request_changed

import (
	"context"

	"pickup-service/internal/entities"
	"pickup-service/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessPickupRequestChange(ctx context.Context, change entities.PickupRequestChange) (*entities.AssignmentResult, error)
}
