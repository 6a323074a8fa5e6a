// internal/api/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"fintrack-api/internal/service"
	"fintrack-api/pkg/token"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// Authenticator verifies bearer tokens and resolves them to active users.
type Authenticator struct {
	tokens *token.Manager
	auth   service.AuthService
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(tokens *token.Manager, auth service.AuthService) *Authenticator {
	return &Authenticator{tokens: tokens, auth: auth}
}

// RequireUser is a middleware for JWT-protected endpoints. It parses the
// Bearer token, checks the user still exists and is active, and places the
// user ID in the request context.
func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			unauthorized(w, "missing bearer token")
			return
		}

		userID, err := a.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			unauthorized(w, "invalid token")
			return
		}

		if _, err := a.auth.GetActiveUser(r.Context(), userID); err != nil {
			unauthorized(w, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUserID(r.Context(), userID)))
	})
}

// ContextWithUserID returns a context carrying the authenticated user's ID.
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user's ID placed by RequireUser.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
