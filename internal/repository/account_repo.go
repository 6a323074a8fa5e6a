// internal/repository/account_repo.go
package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fintrack-api/internal/domain"
)

// AccountRepository defines the interface for account data operations.
type AccountRepository interface {
	// CreateAccount adds a new account using the provided DBExecutor.
	CreateAccount(ctx context.Context, q DBExecutor, account *domain.Account) error
	// GetAccountByID retrieves an account by its ID.
	GetAccountByID(ctx context.Context, q DBExecutor, id int64) (*domain.Account, error)
	// GetActiveAccountsByUserID lists the user's active accounts with platform
	// fields joined in.
	GetActiveAccountsByUserID(ctx context.Context, q DBExecutor, userID int64) ([]domain.Account, error)
	// AdjustBalance applies a signed delta to the account's balance and
	// refreshes last_updated.
	AdjustBalance(ctx context.Context, q DBExecutor, accountID int64, delta decimal.Decimal, at time.Time) error
	// SetBalance overwrites the account's balance and refreshes last_updated.
	SetBalance(ctx context.Context, q DBExecutor, accountID int64, balance decimal.Decimal, at time.Time) error
}
