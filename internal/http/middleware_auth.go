package http

import (
	"net/http"
	"strings"

	"pharmhub/internal/auth"
	"pharmhub/internal/httpx"
)

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// RequireAuth rejects requests without a valid session token.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				JSONError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Missing session token", nil)
				return
			}
			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				JSONError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid session token", nil)
				return
			}
			ctx := httpx.ContextWithMember(r.Context(), claims.Sub, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth populates the member identity when a valid token is
// present and passes anonymous requests through untouched. Resource reads
// use it to merge the caller's bookmark set.
func OptionalAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				if claims, err := auth.ParseToken(secret, token); err == nil {
					r = r.WithContext(httpx.ContextWithMember(r.Context(), claims.Sub, claims.Email))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
