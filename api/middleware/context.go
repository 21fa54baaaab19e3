package middleware

import "context"

type contextKey string

const (
	ctxSessionID  contextKey = "session_id"
	ctxAdminToken contextKey = "admin_token"
	ctxAdminEmail contextKey = "admin_email"
)

// SessionIDFromContext returns the visitor session id seeded by the session
// cookie middleware.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}

// AdminTokenFromContext returns the bearer token seeded by the admin auth
// middleware.
func AdminTokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAdminToken).(string); ok {
		return v
	}
	return ""
}

func AdminEmailFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAdminEmail).(string); ok {
		return v
	}
	return ""
}

// WithSessionID injects the visitor session id into the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSessionID, sessionID)
}

// WithAdminToken injects the validated admin bearer token into the context.
func WithAdminToken(ctx context.Context, token string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxAdminToken, token)
}
