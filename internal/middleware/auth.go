package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hongminglow/puzzle-be/internal/auth"
	"github.com/hongminglow/puzzle-be/internal/http/respond"
	"github.com/hongminglow/puzzle-be/internal/logging"
)

const (
	msgNoToken      = "No token provided. Access denied."
	msgInvalidToken = "Invalid or expired token. Access forbidden."
)

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// RequireAuth only lets requests carrying a valid "Bearer <token>" Authorization
// header through to next. A missing token yields 401; anything else that fails
// verification yields 403.
func RequireAuth(tokens TokenVerifier, logger logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		parts := strings.Split(header, " ")
		if len(parts) < 2 || parts[1] == "" {
			respond.Error(w, r, http.StatusUnauthorized, msgNoToken)
			return
		}
		if len(parts) != 2 || parts[0] != "Bearer" {
			logger.Warn(r.Context(), "rejected authorization header", "request_id", RequestIDFromContext(r.Context()))
			respond.Error(w, r, http.StatusForbidden, msgInvalidToken)
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			logger.Warn(r.Context(), "jwt verification failed",
				"error", err,
				"request_id", RequestIDFromContext(r.Context()),
			)
			respond.Error(w, r, http.StatusForbidden, msgInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the claims attached by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
