//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_status_put_test
package driver_status_put

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
	SetStatus(ctx context.Context, actor entities.Actor, driverID int64, status entities.DriverStatusType, reason *string) (*entities.Driver, error)
}
