// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// TransactionType defines the type of a journal entry.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// ValidTransactionType reports whether t is one of the known transaction types.
func ValidTransactionType(t TransactionType) bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// Transaction is an immutable journal entry against exactly one account.
// Amount is a positive magnitude; the sign is implied by the type.
// Transfers are recorded as labeled entries with no balance effect.
type Transaction struct {
	ID              int64           `db:"id" json:"id"`
	UserID          int64           `db:"user_id" json:"user_id"`
	AccountID       int64           `db:"account_id" json:"account_id"`
	TransactionType TransactionType `db:"transaction_type" json:"transaction_type"`
	Category        string          `db:"category" json:"category"`
	Amount          decimal.Decimal `db:"amount" json:"amount"`
	Description     string          `db:"description" json:"description"`
	TransactionDate time.Time       `db:"transaction_date" json:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

// NewTransaction creates a new Transaction instance.
func NewTransaction(userID, accountID int64, txType TransactionType, category string, amount decimal.Decimal, description string, date time.Time) *Transaction {
	return &Transaction{
		UserID:          userID,
		AccountID:       accountID,
		TransactionType: txType,
		Category:        category,
		Amount:          amount,
		Description:     description,
		TransactionDate: date,
		CreatedAt:       time.Now().UTC(),
	}
}

// BalanceEffect returns the signed delta this transaction applies to its
// account's balance.
func (t *Transaction) BalanceEffect() decimal.Decimal {
	switch t.TransactionType {
	case TransactionTypeIncome:
		return t.Amount
	case TransactionTypeExpense:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}
