package controllers

import (
	"net/http"

	"github.com/hollowcoast/hollowcoast-web/api/middleware"
	"github.com/hollowcoast/hollowcoast-web/api/responses"
	"github.com/hollowcoast/hollowcoast-web/api/validators"
	"github.com/hollowcoast/hollowcoast-web/internal/authsession"
	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	State string        `json:"state"`
	User  *userResponse `json:"user,omitempty"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AuthLogin exchanges credentials for an authenticated session. Failures are
// reported with one generic message regardless of cause.
func AuthLogin(svc authsession.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := visitorSessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Login(r.Context(), sessionID, payload.Email, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newSessionResponse(session))
	}
}

// AuthLogout clears the stored session. The response is written only after
// storage is cleared so the browser never redirects with a live token behind.
func AuthLogout(svc authsession.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := visitorSessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Logout(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newSessionResponse(&authsession.Session{State: authsession.StateUnauthenticated}))
	}
}

// AuthSession hydrates and revalidates the stored session. A stale token reads
// as a clean unauthenticated state, never as an error.
func AuthSession(svc authsession.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := visitorSessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Hydrate(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newSessionResponse(session))
	}
}

func visitorSessionID(r *http.Request) (string, error) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "missing visitor session")
	}
	return sessionID, nil
}

func newSessionResponse(session *authsession.Session) sessionResponse {
	resp := sessionResponse{State: string(session.State)}
	if session.Authenticated() && session.User != nil {
		resp.User = newUserResponse(session.User)
	}
	return resp
}

func newUserResponse(user *upstream.User) *userResponse {
	return &userResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}
