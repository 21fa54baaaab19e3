package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/hollowcoast/hollowcoast-web/api/responses"
	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
)

// rateLimiter is the slice of the redis client the limit middleware needs.
type rateLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// RateLimit applies a fixed-window limit to an abuse-prone endpoint, counted
// per visitor session. A zero limit disables the check. A limiter outage
// fails open: the request proceeds and the outage is logged.
func RateLimit(limiter rateLimiter, scope string, limit int64, window time.Duration, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := scope
			if sessionID := SessionIDFromContext(r.Context()); sessionID != "" {
				key = scope + ":" + sessionID
			}

			allowed, _, err := limiter.FixedWindowAllow(r.Context(), key, limit, window)
			if err != nil {
				if logg != nil {
					logg.Warn(r.Context(), "rate limiter unavailable, allowing request")
				}
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
