// internal/service/transaction_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fintrack-api/internal/domain"
	"fintrack-api/internal/metrics"
	"fintrack-api/internal/repository"
	"fintrack-api/internal/util"
	"fintrack-api/pkg/db"
)

// DefaultTransactionLimit bounds transaction listings when the caller does
// not supply one.
const DefaultTransactionLimit = 50

// TransactionService defines the journal operations.
type TransactionService interface {
	CreateTransaction(ctx context.Context, userID int64, input CreateTransactionInput) (*domain.Transaction, *domain.Account, error)
	GetTransactions(ctx context.Context, userID int64, filter repository.TransactionFilter) ([]domain.Transaction, error)
}

// CreateTransactionInput carries the caller-supplied journal entry fields.
type CreateTransactionInput struct {
	AccountID       int64
	TransactionType domain.TransactionType
	Category        string
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time
}

type transactionService struct {
	dbBeginner      db.DBTxBeginner
	dbExecutor      repository.DBExecutor
	accountRepo     repository.AccountRepository
	transactionRepo repository.TransactionRepository
	collector       *metrics.Collector
	beginTx         db.BeginTxFunc
	commitTx        db.CommitTxFunc
	rollbackTx      db.RollbackTxFunc
}

// NewTransactionService creates a new instance of TransactionService.
func NewTransactionService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	collector *metrics.Collector,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) TransactionService {
	return &transactionService{
		dbBeginner:      dbBeginner,
		dbExecutor:      dbExecutor,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		collector:       collector,
		beginTx:         beginTx,
		commitTx:        commitTx,
		rollbackTx:      rollbackTx,
	}
}

// CreateTransaction records a journal entry and adjusts the owning account's
// balance. The insert and the balance adjustment commit as one database
// transaction; on any failure both are rolled back.
func (s *transactionService) CreateTransaction(ctx context.Context, userID int64, input CreateTransactionInput) (*domain.Transaction, *domain.Account, error) {
	if !domain.ValidTransactionType(input.TransactionType) || input.Category == "" {
		s.recordRejected()
		return nil, nil, util.ErrInvalidInput
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		s.recordRejected()
		return nil, nil, util.ErrInvalidInput
	}
	if input.TransactionDate.After(time.Now().UTC()) {
		s.recordRejected()
		return nil, nil, util.ErrFutureDated
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, nil, fmt.Errorf("create transaction: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, nil, fmt.Errorf("create transaction: transaction controller does not implement DBExecutor")
	}

	account, err := s.accountRepo.GetAccountByID(ctx, txExecutor, input.AccountID)
	if err != nil {
		return nil, nil, fmt.Errorf("create transaction: failed to get account %d: %w", input.AccountID, err)
	}
	if account.UserID != userID {
		// Ownership misses fold into NotFound to avoid leaking existence.
		s.recordRejected()
		return nil, nil, util.ErrNotFound
	}

	if input.TransactionType == domain.TransactionTypeExpense && input.Amount.GreaterThan(account.CurrentBalance) {
		s.recordRejected()
		return nil, nil, &util.InsufficientBalanceError{
			Available: account.CurrentBalance,
			Required:  input.Amount,
		}
	}

	transaction := domain.NewTransaction(userID, account.ID, input.TransactionType,
		input.Category, input.Amount, input.Description, input.TransactionDate)
	if err := s.transactionRepo.CreateTransaction(ctx, txExecutor, transaction); err != nil {
		return nil, nil, fmt.Errorf("create transaction: failed to insert journal entry: %w", err)
	}

	delta := transaction.BalanceEffect()
	now := time.Now().UTC()
	if err := s.accountRepo.AdjustBalance(ctx, txExecutor, account.ID, delta, now); err != nil {
		return nil, nil, fmt.Errorf("create transaction: failed to adjust account balance: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, nil, fmt.Errorf("create transaction: failed to commit: %w", err)
	}

	account.CurrentBalance = account.CurrentBalance.Add(delta)
	account.LastUpdated = now

	if s.collector != nil {
		s.collector.RecordTransaction(string(transaction.TransactionType))
	}
	return transaction, account, nil
}

// GetTransactions lists the caller's transactions, newest first.
func (s *transactionService) GetTransactions(ctx context.Context, userID int64, filter repository.TransactionFilter) ([]domain.Transaction, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultTransactionLimit
	}
	if filter.Type != nil && !domain.ValidTransactionType(*filter.Type) {
		return nil, util.ErrInvalidInput
	}

	transactions, err := s.transactionRepo.GetTransactionsByUserID(ctx, s.dbExecutor, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}
	return transactions, nil
}

func (s *transactionService) recordRejected() {
	if s.collector != nil {
		s.collector.RecordRejectedTransaction()
	}
}
