//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pickups_available_get_test
package pickups_available_get

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
	ListUnassigned(ctx context.Context, actor entities.Actor, limit int) ([]entities.PickupOrder, error)
}
