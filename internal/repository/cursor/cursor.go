package cursor

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RelayCursorKey id последнего опубликованного события аудита.
const RelayCursorKey = "pickup:relay:cursor"

type Repository struct {
	store store
	key   string
}

func New(store store) *Repository {
	return &Repository{
		store: store,
		key:   RelayCursorKey,
	}
}

// Load отсутствие ключа означает, что ничего еще не опубликовано.
func (r *Repository) Load(ctx context.Context) (int64, error) {
	raw, err := r.store.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("unexpected cursor repository load error: %w", err)
	}

	cursor, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupted relay cursor %q: %w", raw, err)
	}
	return cursor, nil
}

func (r *Repository) Save(ctx context.Context, cursor int64) error {
	err := r.store.Set(ctx, r.key, strconv.FormatInt(cursor, 10), 0).Err()
	if err != nil {
		return fmt.Errorf("unexpected cursor repository save error: %w", err)
	}
	return nil
}
