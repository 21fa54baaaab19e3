package middleware

import (
	"context"
	"net/http"

	"github.com/hollowcoast/hollowcoast-web/api/responses"
	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"

	"github.com/hollowcoast/hollowcoast-web/internal/authsession"
)

// sessionChecker is the slice of the auth session holder the middleware needs.
type sessionChecker interface {
	Current(ctx context.Context, sessionID string) (*authsession.Session, error)
}

// AdminAuth gates the admin routes behind the auth session holder. It resolves
// the visitor's stored session without a revalidation round trip and seeds the
// context with the bearer token for downstream handlers; the upstream API
// remains the final authority on every proxied call.
func AdminAuth(sessions sessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := SessionIDFromContext(r.Context())
			if sessionID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session"))
				return
			}

			session, err := sessions.Current(r.Context(), sessionID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			if !session.Authenticated() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required"))
				return
			}

			ctx := WithAdminToken(r.Context(), session.Token)
			if session.User != nil {
				ctx = context.WithValue(ctx, ctxAdminEmail, session.User.Email)
				if logg != nil {
					ctx = logg.WithUserEmail(ctx, session.User.Email)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
