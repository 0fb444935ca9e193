package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	memberIDKey    contextKey = "memberID"
	memberEmailKey contextKey = "memberEmail"
	requestIDKey   contextKey = "requestID"
)

// MemberIDFrom retrieves the authenticated member ID from the request context.
func MemberIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(memberIDKey).(string); ok {
		return v
	}
	return ""
}

// MemberEmailFrom retrieves the authenticated member email from the request context.
func MemberEmailFrom(r *http.Request) string {
	if v, ok := r.Context().Value(memberEmailKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithMember returns a new context carrying the member identity.
func ContextWithMember(ctx context.Context, memberID, email string) context.Context {
	ctx = context.WithValue(ctx, memberIDKey, memberID)
	return context.WithValue(ctx, memberEmailKey, email)
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context carrying the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
