//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drivers_get_test
package drivers_get

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
	GetDrivers(ctx context.Context, actor entities.Actor, tenantID int64) ([]entities.Driver, error)
}
