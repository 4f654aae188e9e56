//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pickup_assign_post_test
package pickup_assign_post

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
	SelfAssign(ctx context.Context, actor entities.Actor, pickupID string) (*entities.AssignmentResult, error)
}
