package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// JWTValidator defines the interface for validating bearer tokens.
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims we expect from the JWT validator.
type JWTClaims struct {
	ClientID string
}

type contextKeyClientID struct{}

// ContextKeyClientID is exported for use in handlers.
var ContextKeyClientID = contextKeyClientID{}

// GetClientID retrieves the authenticated client ID from the context.
func GetClientID(ctx context.Context) string {
	clientID, ok := ctx.Value(ContextKeyClientID).(string)
	if !ok {
		return ""
	}
	return clientID
}

// RequireAuth rejects requests without a valid bearer token and stores
// the caller's client ID in the request context.
func RequireAuth(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(r.Context(), "rejected bearer token",
					"request_id", GetRequestID(r.Context()),
					"error", err.Error(),
				)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClientID, claims.ClientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
