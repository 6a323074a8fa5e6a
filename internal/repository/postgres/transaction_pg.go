// internal/repository/postgres/transaction_pg.go
package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"fintrack-api/internal/domain"
	"fintrack-api/internal/repository"
)

// TransactionRepository implements repository.TransactionRepository for PostgreSQL.
type TransactionRepository struct{}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) repository.TransactionRepository {
	return &TransactionRepository{}
}

// CreateTransaction inserts a new journal entry using the provided DBExecutor.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (user_id, account_id, transaction_type, category, amount,
                                        description, transaction_date, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		transaction.UserID,
		transaction.AccountID,
		transaction.TransactionType,
		transaction.Category,
		transaction.Amount,
		transaction.Description,
		transaction.TransactionDate,
		transaction.CreatedAt,
	).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransactionsByUserID lists the user's transactions ordered by
// transaction_date descending. Optional filter clauses are appended with
// positional parameters built up in order.
func (r *TransactionRepository) GetTransactionsByUserID(ctx context.Context, q repository.DBExecutor, userID int64, filter repository.TransactionFilter) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}

	var sb strings.Builder
	sb.WriteString(`SELECT id, user_id, account_id, transaction_type, category, amount,
                           description, transaction_date, created_at
                    FROM transactions
                    WHERE user_id = $1`)
	args := []interface{}{userID}

	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		fmt.Fprintf(&sb, " AND account_id = $%d", len(args))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		fmt.Fprintf(&sb, " AND transaction_type = $%d", len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		fmt.Fprintf(&sb, " AND transaction_date >= $%d", len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		fmt.Fprintf(&sb, " AND transaction_date <= $%d", len(args))
	}

	args = append(args, filter.Limit)
	fmt.Fprintf(&sb, " ORDER BY transaction_date DESC LIMIT $%d", len(args))

	if err := q.SelectContext(ctx, &transactions, sb.String(), args...); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for user %d: %w", userID, err)
	}
	return transactions, nil
}

// GetTransactionsByPeriod lists the user's transactions with
// transaction_date in the inclusive [start, end] range.
func (r *TransactionRepository) GetTransactionsByPeriod(ctx context.Context, q repository.DBExecutor, userID int64, start, end time.Time) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `SELECT id, user_id, account_id, transaction_type, category, amount,
                     description, transaction_date, created_at
              FROM transactions
              WHERE user_id = $1 AND transaction_date >= $2 AND transaction_date <= $3
              ORDER BY transaction_date`
	if err := q.SelectContext(ctx, &transactions, query, userID, start, end); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for user %d in period: %w", userID, err)
	}
	return transactions, nil
}
