package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/axiomforum/axiom-backend/internal/domain"
)

type ctxKey string

const (
	sessionKey   ctxKey = "session"
	requestIDKey ctxKey = "request_id"
)

// WithSession stores the signed-in session in the context.
func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromCtx extracts the session from the context.
// Returns false if the value is missing, anonymous, or the wrong type.
func SessionFromCtx(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(domain.Session)
	if !ok || s.UserID == uuid.Nil {
		return domain.Session{}, false
	}
	return s, true
}

// UserIDFromCtx extracts the account identity from the context session.
// Returns uuid.Nil and false when the request is anonymous.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	s, ok := SessionFromCtx(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return s.UserID, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
