//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cursor_test
package cursor

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}
