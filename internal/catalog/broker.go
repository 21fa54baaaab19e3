package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
	"github.com/hollowcoast/hollowcoast-web/pkg/redis"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"
)

// expiryMargin is shaved off the token lifetime so a cached token is never
// handed out moments before the catalog API rejects it.
const expiryMargin = 30 * time.Second

type tokenSource interface {
	CatalogToken(ctx context.Context) (*upstream.CatalogToken, error)
}

type tokenCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CatalogTokenKey() string
}

// TokenBroker hands out the short-lived music-catalog access token. The token
// is minted by the band API and cached until just before expiry; cache
// trouble degrades to brokering a fresh token per call.
type TokenBroker struct {
	source tokenSource
	cache  tokenCache
	logg   *logger.Logger
}

func NewTokenBroker(source tokenSource, cache tokenCache, logg *logger.Logger) (*TokenBroker, error) {
	if source == nil {
		return nil, fmt.Errorf("token source is required")
	}
	if cache == nil {
		return nil, fmt.Errorf("token cache is required")
	}
	return &TokenBroker{source: source, cache: cache, logg: logg}, nil
}

// Token returns a catalog access token, cached when its remaining lifetime
// allows.
func (b *TokenBroker) Token(ctx context.Context) (string, error) {
	key := b.cache.CatalogTokenKey()

	cached, err := b.cache.Get(ctx, key)
	if err == nil && cached != "" {
		return cached, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) && b.logg != nil {
		b.logg.Warn(ctx, "catalog token cache read failed, brokering fresh token")
	}

	minted, err := b.source.CatalogToken(ctx)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "broker catalog token")
	}
	if minted.AccessToken == "" {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "catalog token response carried no token")
	}

	ttl := time.Duration(minted.ExpiresIn)*time.Second - expiryMargin
	if ttl > 0 {
		if err := b.cache.Set(ctx, key, minted.AccessToken, ttl); err != nil && b.logg != nil {
			b.logg.Warn(ctx, "failed to cache catalog token")
		}
	}
	return minted.AccessToken, nil
}
