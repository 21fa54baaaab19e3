package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hollowcoast/hollowcoast-web/pkg/redis"
)

type redisStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(cartID string) string
}

// RedisRepository stores the serialized item list under the visitor's cart key.
type RedisRepository struct {
	store redisStore
	ttl   time.Duration
}

// NewRedisRepository binds the repository to the shared redis client. A zero
// TTL keeps carts until explicitly cleared.
func NewRedisRepository(store redisStore, ttl time.Duration) *RedisRepository {
	return &RedisRepository{store: store, ttl: ttl}
}

func (r *RedisRepository) Load(ctx context.Context, cartID string) ([]Item, error) {
	blob, err := r.store.Get(ctx, r.store.CartKey(cartID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading cart: %w", err)
	}

	var items []Item
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return nil, ErrCorrupt
	}
	return items, nil
}

func (r *RedisRepository) Save(ctx context.Context, cartID string, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	if err := r.store.Set(ctx, r.store.CartKey(cartID), string(blob), r.ttl); err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context, cartID string) error {
	if err := r.store.Del(ctx, r.store.CartKey(cartID)); err != nil {
		return fmt.Errorf("deleting cart: %w", err)
	}
	return nil
}
