// internal/repository/transaction_repo.go
package repository

import (
	"context"
	"time"

	"fintrack-api/internal/domain"
)

// TransactionFilter bounds a transaction listing. The user scope is always
// mandatory and supplied separately.
type TransactionFilter struct {
	AccountID *int64
	Type      *domain.TransactionType
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
}

// TransactionRepository defines the interface for journal data operations.
type TransactionRepository interface {
	// CreateTransaction adds a new journal entry using the provided DBExecutor.
	CreateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// GetTransactionsByUserID lists the user's transactions ordered by
	// transaction_date descending, bounded by the filter.
	GetTransactionsByUserID(ctx context.Context, q DBExecutor, userID int64, filter TransactionFilter) ([]domain.Transaction, error)
	// GetTransactionsByPeriod lists the user's transactions with
	// transaction_date in the inclusive [start, end] range.
	GetTransactionsByPeriod(ctx context.Context, q DBExecutor, userID int64, start, end time.Time) ([]domain.Transaction, error)
}
