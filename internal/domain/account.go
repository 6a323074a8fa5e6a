// internal/domain/account.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// AccountType defines the kind of a user account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeInvestment AccountType = "investment"
)

// ValidAccountType reports whether t is one of the known account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCredit, AccountTypeInvestment:
		return true
	}
	return false
}

// Account is a user-owned named balance tied to one platform.
// CurrentBalance is maintained incrementally as transactions are recorded,
// not recomputed from history.
type Account struct {
	ID             int64           `db:"id" json:"id"`
	UserID         int64           `db:"user_id" json:"user_id"`
	PlatformID     int64           `db:"platform_id" json:"platform_id"`
	AccountName    string          `db:"account_name" json:"account_name"`
	AccountType    AccountType     `db:"account_type" json:"account_type"`
	AccountNumber  string          `db:"account_number" json:"account_number"`
	CurrentBalance decimal.Decimal `db:"current_balance" json:"current_balance"`
	Currency       string          `db:"currency" json:"currency"`
	IsActive       bool            `db:"is_active" json:"is_active"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	LastUpdated    time.Time       `db:"last_updated" json:"last_updated"`

	// Joined platform fields, populated on reads.
	PlatformName *string       `db:"platform_name" json:"platform_name,omitempty"`
	PlatformKind *PlatformType `db:"platform_kind" json:"platform_type,omitempty"`
}

// NewAccount creates a new Account instance.
func NewAccount(userID, platformID int64, name string, accountType AccountType, number string, openingBalance decimal.Decimal, currency string) *Account {
	now := time.Now().UTC()
	return &Account{
		UserID:         userID,
		PlatformID:     platformID,
		AccountName:    name,
		AccountType:    accountType,
		AccountNumber:  number,
		CurrentBalance: openingBalance,
		Currency:       currency,
		IsActive:       true,
		CreatedAt:      now,
		LastUpdated:    now,
	}
}
