// internal/api/middleware/auth_test.go
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack-api/internal/domain"
	"fintrack-api/internal/util"
	"fintrack-api/pkg/token"
)

// stubAuthService resolves any known user ID to a fixed user.
type stubAuthService struct {
	activeUserID int64
}

func (s *stubAuthService) Register(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	return nil, util.ErrInvalidInput
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return "", util.ErrBadCredentials
}

func (s *stubAuthService) GetActiveUser(ctx context.Context, userID int64) (*domain.User, error) {
	if userID != s.activeUserID {
		return nil, util.ErrUnauthenticated
	}
	return &domain.User{ID: userID, IsActive: true}, nil
}

func TestRequireUser(t *testing.T) {
	tokens := token.NewManager("test-secret", 30*time.Minute)
	authenticator := NewAuthenticator(tokens, &stubAuthService{activeUserID: 42})

	var seenUserID int64
	var seenOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, seenOK = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := authenticator.RequireUser(next)

	t.Run("ValidToken", func(t *testing.T) {
		signed, err := tokens.Issue(42)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, seenOK)
		assert.Equal(t, int64(42), seenUserID)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Token abc")
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("TamperedToken", func(t *testing.T) {
		other := token.NewManager("other-secret", 30*time.Minute)
		signed, err := other.Issue(42)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("TokenForDeactivatedUser", func(t *testing.T) {
		signed, err := tokens.Issue(7)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
