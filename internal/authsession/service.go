package authsession

import (
	"context"
	"fmt"

	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"
)

// Deliberately generic: never distinguish "user not found" from "wrong
// password" to avoid account enumeration.
const invalidCredentialsMessage = "invalid email or password"

type authBackend interface {
	Login(ctx context.Context, email, password string) (*upstream.LoginResult, error)
	Me(ctx context.Context, token string) (*upstream.User, error)
}

// Service holds the bearer token and user record for the admin area.
type Service interface {
	// Hydrate loads persisted credentials and revalidates them against the
	// backend. Revalidation failure clears memory and storage silently and
	// yields an unauthenticated session, never an error to surface.
	Hydrate(ctx context.Context, sessionID string) (*Session, error)

	// Current returns the session without a revalidation round trip; the
	// admin middleware uses it to source the bearer token per request.
	Current(ctx context.Context, sessionID string) (*Session, error)

	Login(ctx context.Context, sessionID, email, password string) (*Session, error)

	// Logout clears storage before any redirect is issued so a stale token
	// is never left behind.
	Logout(ctx context.Context, sessionID string) error
}

type service struct {
	repo    Repository
	backend authBackend
	logg    *logger.Logger
}

func NewService(repo Repository, backend authBackend, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("session repository is required")
	}
	if backend == nil {
		return nil, fmt.Errorf("auth backend is required")
	}
	return &service{repo: repo, backend: backend, logg: logg}, nil
}

func (s *service) Hydrate(ctx context.Context, sessionID string) (*Session, error) {
	creds, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session")
	}
	if creds == nil {
		return &Session{State: StateUnauthenticated}, nil
	}

	// Optimistic hydrate: the pending state exists between here and the
	// revalidation result.
	pending := &Session{State: StatePendingValidation, Token: creds.Token, User: &creds.User}

	user, err := s.backend.Me(ctx, pending.Token)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "stored token failed revalidation, clearing session")
		}
		if clearErr := s.repo.Clear(ctx, sessionID); clearErr != nil && s.logg != nil {
			s.logg.Error(ctx, "failed to clear invalid session", clearErr)
		}
		return &Session{State: StateUnauthenticated}, nil
	}

	// Refresh the user record only; the token is reused as-is.
	refreshed := StoredCredentials{Token: creds.Token, User: *user}
	if err := s.repo.Save(ctx, sessionID, refreshed); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "refresh session")
	}
	return &Session{State: StateAuthenticated, Token: creds.Token, User: user}, nil
}

func (s *service) Current(ctx context.Context, sessionID string) (*Session, error) {
	creds, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session")
	}
	if creds == nil {
		return &Session{State: StateUnauthenticated}, nil
	}
	return &Session{State: StateAuthenticated, Token: creds.Token, User: &creds.User}, nil
}

func (s *service) Login(ctx context.Context, sessionID, email, password string) (*Session, error) {
	result, err := s.backend.Login(ctx, email, password)
	if err != nil {
		// Clear any partial state, then propagate a generic failure.
		if clearErr := s.repo.Clear(ctx, sessionID); clearErr != nil && s.logg != nil {
			s.logg.Error(ctx, "failed to clear session after login failure", clearErr)
		}
		if upstream.IsStatus(err, 401) || upstream.IsStatus(err, 403) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "login")
	}

	creds := StoredCredentials{Token: result.Token, User: result.User}
	if err := s.repo.Save(ctx, sessionID, creds); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist session")
	}
	return &Session{State: StateAuthenticated, Token: result.Token, User: &result.User}, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if err := s.repo.Clear(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear session")
	}
	return nil
}
