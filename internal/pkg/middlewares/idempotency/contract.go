//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=idempotency_test
package idempotency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"pickup-service/pkg/logger"
)

type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
