// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"fintrack-api/internal/domain"
	"fintrack-api/internal/util"
	"fintrack-api/pkg/token"
)

func newAuthServiceWithMocks() (AuthService, *MockUserRepository, *token.Manager) {
	userRepo := new(MockUserRepository)
	tokens := token.NewManager("test-secret", 30*time.Minute)
	return NewAuthService(new(MockDBExecutor), userRepo, tokens), userRepo, tokens
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

// TestRegister tests the Register method of AuthService.
func TestRegister(t *testing.T) {
	t.Run("SuccessfulRegistration", func(t *testing.T) {
		ctx := context.Background()
		service, userRepo, _ := newAuthServiceWithMocks()

		userRepo.On("CreateUser", ctx, mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "user@test.com" && u.IsActive && u.HashedPassword != "Test123"
		})).Return(nil).Once()

		user, err := service.Register(ctx, "User@Test.com", "Test123", "Test User")

		assert.NoError(t, err)
		assert.Equal(t, "user@test.com", user.Email, "email is normalized to lower case")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("Test123")))

		userRepo.AssertExpectations(t)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		ctx := context.Background()
		service, userRepo, _ := newAuthServiceWithMocks()

		userRepo.On("CreateUser", ctx, mock.Anything, mock.Anything).Return(util.ErrDuplicateEmail).Once()

		_, err := service.Register(ctx, "user@test.com", "Test123", "Test User")

		assert.ErrorIs(t, err, util.ErrDuplicateEmail)
		userRepo.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		ctx := context.Background()
		service, userRepo, _ := newAuthServiceWithMocks()

		_, err := service.Register(ctx, "not-an-email", "Test123", "Test User")

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

// TestLogin tests the Login method of AuthService.
func TestLogin(t *testing.T) {
	t.Run("SuccessfulLogin", func(t *testing.T) {
		ctx := context.Background()
		service, userRepo, tokens := newAuthServiceWithMocks()

		user := &domain.User{
			ID:             7,
			Email:          "user@test.com",
			HashedPassword: hashPassword(t, "Test123"),
			IsActive:       true,
		}
		userRepo.On("GetUserByEmail", ctx, mock.Anything, "user@test.com").Return(user, nil).Once()

		signed, err := service.Login(ctx, "user@test.com", "Test123")

		assert.NoError(t, err)
		userID, err := tokens.Verify(signed)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), userID)

		userRepo.AssertExpectations(t)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		ctx := context.Background()
		service, userRepo, _ := newAuthServiceWithMocks()

		user := &domain.User{
			ID:             7,
			Email:          "user@test.com",
			HashedPassword: hashPassword(t, "Test123"),
			IsActive:       true,
		}
		userRepo.On("GetUserByEmail", ctx, mock.Anything, "user@test.com").Return(user, nil).Once()

		_, err := service.Login(ctx, "user@test.com", "wrong")

		assert.ErrorIs(t, err, util.ErrBadCredentials)
		userRepo.AssertExpectations(t)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		ctx := context.Background()
		service, userRepo, _ := newAuthServiceWithMocks()

		userRepo.On("GetUserByEmail", ctx, mock.Anything, "nobody@test.com").Return(nil, util.ErrNotFound).Once()

		_, err := service.Login(ctx, "nobody@test.com", "Test123")

		// Unknown accounts and bad passwords are indistinguishable.
		assert.ErrorIs(t, err, util.ErrBadCredentials)
		userRepo.AssertExpectations(t)
	})

	t.Run("DeactivatedUser", func(t *testing.T) {
		ctx := context.Background()
		service, userRepo, _ := newAuthServiceWithMocks()

		user := &domain.User{
			ID:             7,
			Email:          "user@test.com",
			HashedPassword: hashPassword(t, "Test123"),
			IsActive:       false,
		}
		userRepo.On("GetUserByEmail", ctx, mock.Anything, "user@test.com").Return(user, nil).Once()

		_, err := service.Login(ctx, "user@test.com", "Test123")

		assert.ErrorIs(t, err, util.ErrBadCredentials)
		userRepo.AssertExpectations(t)
	})
}

// TestGetActiveUser tests the GetActiveUser method of AuthService.
func TestGetActiveUser(t *testing.T) {
	t.Run("MissingUserMapsToUnauthenticated", func(t *testing.T) {
		ctx := context.Background()
		service, userRepo, _ := newAuthServiceWithMocks()

		userRepo.On("GetUserByID", ctx, mock.Anything, int64(99)).Return(nil, util.ErrNotFound).Once()

		_, err := service.GetActiveUser(ctx, 99)

		assert.ErrorIs(t, err, util.ErrUnauthenticated)
		userRepo.AssertExpectations(t)
	})

	t.Run("DeactivatedUserRejected", func(t *testing.T) {
		ctx := context.Background()
		service, userRepo, _ := newAuthServiceWithMocks()

		user := &domain.User{ID: 7, Email: "user@test.com", IsActive: false}
		userRepo.On("GetUserByID", ctx, mock.Anything, int64(7)).Return(user, nil).Once()

		_, err := service.GetActiveUser(ctx, 7)

		assert.ErrorIs(t, err, util.ErrUnauthenticated)
		userRepo.AssertExpectations(t)
	})
}
