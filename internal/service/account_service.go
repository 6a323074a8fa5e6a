// internal/service/account_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fintrack-api/internal/domain"
	"fintrack-api/internal/repository"
	"fintrack-api/internal/util"
)

// AccountService defines the account ledger operations.
type AccountService interface {
	CreateAccount(ctx context.Context, userID int64, input CreateAccountInput) (*domain.Account, error)
	GetAccounts(ctx context.Context, userID int64) ([]domain.Account, error)
	// OverrideBalance sets the account balance directly, bypassing the
	// journal. This is an explicit administrative override: it does not
	// create a transaction row, so the balance-equals-sum-of-transactions
	// invariant does not hold across it.
	OverrideBalance(ctx context.Context, userID, accountID int64, newBalance decimal.Decimal) (*domain.Account, error)
}

// CreateAccountInput carries the caller-supplied account fields.
type CreateAccountInput struct {
	PlatformID     int64
	AccountName    string
	AccountType    domain.AccountType
	AccountNumber  string
	OpeningBalance decimal.Decimal
	Currency       string
}

type accountService struct {
	dbExecutor   repository.DBExecutor
	accountRepo  repository.AccountRepository
	platformRepo repository.PlatformRepository
}

// NewAccountService creates a new instance of AccountService.
func NewAccountService(dbExecutor repository.DBExecutor, accountRepo repository.AccountRepository, platformRepo repository.PlatformRepository) AccountService {
	return &accountService{
		dbExecutor:   dbExecutor,
		accountRepo:  accountRepo,
		platformRepo: platformRepo,
	}
}

// CreateAccount creates an account for the caller under an existing platform.
func (s *accountService) CreateAccount(ctx context.Context, userID int64, input CreateAccountInput) (*domain.Account, error) {
	if input.AccountName == "" || !domain.ValidAccountType(input.AccountType) {
		return nil, util.ErrInvalidInput
	}
	if input.Currency == "" {
		input.Currency = "USD"
	}

	if _, err := s.platformRepo.GetPlatformByID(ctx, s.dbExecutor, input.PlatformID); err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, fmt.Errorf("%w: platform %d does not exist", util.ErrInvalidInput, input.PlatformID)
		}
		return nil, fmt.Errorf("create account: failed to check platform: %w", err)
	}

	account := domain.NewAccount(userID, input.PlatformID, input.AccountName, input.AccountType,
		input.AccountNumber, input.OpeningBalance, input.Currency)
	if err := s.accountRepo.CreateAccount(ctx, s.dbExecutor, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

// GetAccounts lists the caller's active accounts.
func (s *accountService) GetAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	accounts, err := s.accountRepo.GetActiveAccountsByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("get accounts: %w", err)
	}
	return accounts, nil
}

// OverrideBalance sets the balance of a caller-owned account.
func (s *accountService) OverrideBalance(ctx context.Context, userID, accountID int64, newBalance decimal.Decimal) (*domain.Account, error) {
	account, err := s.accountRepo.GetAccountByID(ctx, s.dbExecutor, accountID)
	if err != nil {
		return nil, fmt.Errorf("override balance: failed to get account %d: %w", accountID, err)
	}
	// Ownership misses surface as NotFound, never revealing the row exists.
	if account.UserID != userID {
		return nil, util.ErrNotFound
	}

	now := time.Now().UTC()
	if err := s.accountRepo.SetBalance(ctx, s.dbExecutor, accountID, newBalance, now); err != nil {
		return nil, fmt.Errorf("override balance: failed to set balance: %w", err)
	}

	account.CurrentBalance = newBalance
	account.LastUpdated = now
	return account, nil
}
