// internal/repository/postgres/account_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"fintrack-api/internal/domain"
	"fintrack-api/internal/repository"
	"fintrack-api/internal/util"
)

// AccountRepository implements repository.AccountRepository for PostgreSQL.
type AccountRepository struct{}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db *sqlx.DB) repository.AccountRepository {
	return &AccountRepository{}
}

// CreateAccount inserts a new account using the provided DBExecutor.
func (r *AccountRepository) CreateAccount(ctx context.Context, q repository.DBExecutor, account *domain.Account) error {
	query := `INSERT INTO accounts (user_id, platform_id, account_name, account_type, account_number,
                                    current_balance, currency, is_active, created_at, last_updated)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		account.UserID,
		account.PlatformID,
		account.AccountName,
		account.AccountType,
		account.AccountNumber,
		account.CurrentBalance,
		account.Currency,
		account.IsActive,
		account.CreatedAt,
		account.LastUpdated,
	).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetAccountByID retrieves an account by its ID using the provided DBExecutor.
func (r *AccountRepository) GetAccountByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT id, user_id, platform_id, account_name, account_type, account_number,
                     current_balance, currency, is_active, created_at, last_updated
              FROM accounts WHERE id = $1`
	err := q.GetContext(ctx, &account, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by ID %d: %w", id, err)
	}
	return &account, nil
}

// GetActiveAccountsByUserID lists the user's active accounts with the owning
// platform's name and type joined in.
func (r *AccountRepository) GetActiveAccountsByUserID(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Account, error) {
	accounts := []domain.Account{}
	query := `SELECT a.id, a.user_id, a.platform_id, a.account_name, a.account_type, a.account_number,
                     a.current_balance, a.currency, a.is_active, a.created_at, a.last_updated,
                     p.name AS platform_name, p.platform_type AS platform_kind
              FROM accounts a
              JOIN banking_platforms p ON p.id = a.platform_id
              WHERE a.user_id = $1 AND a.is_active = TRUE
              ORDER BY a.created_at`
	if err := q.SelectContext(ctx, &accounts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch accounts for user %d: %w", userID, err)
	}
	return accounts, nil
}

// AdjustBalance applies a signed delta to the account's balance.
// The single UPDATE row-locks the account, serializing concurrent writers.
func (r *AccountRepository) AdjustBalance(ctx context.Context, q repository.DBExecutor, accountID int64, delta decimal.Decimal, at time.Time) error {
	query := `UPDATE accounts SET current_balance = current_balance + $1, last_updated = $2 WHERE id = $3`
	result, err := q.ExecContext(ctx, query, delta, at, accountID)
	if err != nil {
		return fmt.Errorf("failed to adjust balance for account %d: %w", accountID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after adjusting balance for account %d: %w", accountID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// SetBalance overwrites the account's balance with a caller-supplied value.
func (r *AccountRepository) SetBalance(ctx context.Context, q repository.DBExecutor, accountID int64, balance decimal.Decimal, at time.Time) error {
	query := `UPDATE accounts SET current_balance = $1, last_updated = $2 WHERE id = $3`
	result, err := q.ExecContext(ctx, query, balance, at, accountID)
	if err != nil {
		return fmt.Errorf("failed to set balance for account %d: %w", accountID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after setting balance for account %d: %w", accountID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
