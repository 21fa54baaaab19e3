package authsession

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/hollowcoast/hollowcoast-web/pkg/redis"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"
)

type redisStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	SessionKey(sessionID string) string
}

// RedisRepository keeps the token and the user record under two separate
// keys, mirroring the two storage slots the browser used. A half-present
// pair counts as corrupt and reads as logged-out.
type RedisRepository struct {
	store redisStore
	ttl   time.Duration
}

func NewRedisRepository(store redisStore, ttl time.Duration) *RedisRepository {
	return &RedisRepository{store: store, ttl: ttl}
}

func (r *RedisRepository) tokenKey(sessionID string) string {
	return r.store.SessionKey(sessionID) + ":token"
}

func (r *RedisRepository) userKey(sessionID string) string {
	return r.store.SessionKey(sessionID) + ":user"
}

func (r *RedisRepository) Load(ctx context.Context, sessionID string) (*StoredCredentials, error) {
	token, err := r.store.Get(ctx, r.tokenKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading session token: %w", err)
	}

	blob, err := r.store.Get(ctx, r.userKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading session user: %w", err)
	}

	var user upstream.User
	if err := json.Unmarshal([]byte(blob), &user); err != nil {
		// Corrupt stored data destroys the session rather than erroring.
		return nil, nil
	}
	return &StoredCredentials{Token: token, User: user}, nil
}

func (r *RedisRepository) Save(ctx context.Context, sessionID string, creds StoredCredentials) error {
	blob, err := json.Marshal(creds.User)
	if err != nil {
		return fmt.Errorf("encoding session user: %w", err)
	}
	if err := r.store.Set(ctx, r.tokenKey(sessionID), creds.Token, r.ttl); err != nil {
		return fmt.Errorf("saving session token: %w", err)
	}
	if err := r.store.Set(ctx, r.userKey(sessionID), string(blob), r.ttl); err != nil {
		return fmt.Errorf("saving session user: %w", err)
	}
	return nil
}

func (r *RedisRepository) Clear(ctx context.Context, sessionID string) error {
	return multierr.Combine(
		r.store.Del(ctx, r.tokenKey(sessionID)),
		r.store.Del(ctx, r.userKey(sessionID)),
	)
}
