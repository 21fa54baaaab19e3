package authsession

import (
	"context"

	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"
)

// State models the explicit three-state lifecycle of an admin session. The
// pending state covers the window between optimistic hydration and the
// revalidation round trip.
type State string

const (
	StateUnauthenticated   State = "unauthenticated"
	StatePendingValidation State = "pending_validation"
	StateAuthenticated     State = "authenticated"
)

// Session is the in-memory view of one browser session's auth state.
type Session struct {
	State State
	Token string
	User  *upstream.User
}

// Authenticated reports whether the session carries a validated user.
func (s *Session) Authenticated() bool {
	return s != nil && s.State == StateAuthenticated
}

// StoredCredentials is the persisted token/user pair, kept as two separate
// values the way the browser kept two storage keys.
type StoredCredentials struct {
	Token string
	User  upstream.User
}

// Repository persists credentials per browser session. Load returns nil with
// no error when nothing (or nothing readable) is stored.
type Repository interface {
	Load(ctx context.Context, sessionID string) (*StoredCredentials, error)
	Save(ctx context.Context, sessionID string, creds StoredCredentials) error
	Clear(ctx context.Context, sessionID string) error
}
