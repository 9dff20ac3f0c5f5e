package httpx

import (
	"context"
	"net/http"

	"tunereads/internal/auth"
)

type contextKey string

const (
	requestIDKey contextKey = "requestID"
	sessionKey   contextKey = "session"
)

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// SessionFrom retrieves the Spotify session placed there by the session
// middleware. ok is false on unauthenticated routes.
func SessionFrom(r *http.Request) (auth.Session, bool) {
	s, ok := r.Context().Value(sessionKey).(auth.Session)
	return s, ok
}

func ContextWithSession(ctx context.Context, s auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}
