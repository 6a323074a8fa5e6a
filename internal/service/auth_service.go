// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"fintrack-api/internal/domain"
	"fintrack-api/internal/repository"
	"fintrack-api/internal/util"
	"fintrack-api/pkg/token"
)

// AuthService defines identity operations: registration, credential
// verification and token issuance.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetActiveUser(ctx context.Context, userID int64) (*domain.User, error)
}

type authService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	tokens     *token.Manager
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(dbExecutor repository.DBExecutor, userRepo repository.UserRepository, tokens *token.Manager) AuthService {
	return &authService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		tokens:     tokens,
	}
}

// Register creates a new user with a bcrypt password hash.
func (s *authService) Register(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") || password == "" || fullName == "" {
		return nil, util.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: failed to hash password: %w", err)
	}

	user := domain.NewUser(email, string(hash), fullName)
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		if errors.Is(err, util.ErrDuplicateEmail) {
			return nil, util.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("register: failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return "", util.ErrBadCredentials
		}
		return "", fmt.Errorf("login: failed to look up user: %w", err)
	}
	if !user.IsActive {
		return "", util.ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", util.ErrBadCredentials
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("login: failed to issue token: %w", err)
	}
	return signed, nil
}

// GetActiveUser loads the user and rejects deactivated accounts.
func (s *authService) GetActiveUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	if !user.IsActive {
		return nil, util.ErrUnauthenticated
	}
	return user, nil
}
