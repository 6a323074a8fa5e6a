// internal/domain/overview.go
package domain

import "github.com/shopspring/decimal"

// MonthlyMetrics holds the computed metrics for one calendar month.
type MonthlyMetrics struct {
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	SavingsRate     decimal.Decimal `json:"savings_rate"`
}

// PlatformSummary aggregates a user's accounts under one platform.
type PlatformSummary struct {
	PlatformName string          `json:"platform_name"`
	PlatformType PlatformType    `json:"platform_type"`
	TotalBalance decimal.Decimal `json:"total_balance"`
	AccountCount int             `json:"account_count"`
	Accounts     []Account       `json:"accounts"`
}

// FinancialOverview is the assembled dashboard view for one user.
type FinancialOverview struct {
	TotalBalance       decimal.Decimal   `json:"total_balance"`
	MonthlyIncome      decimal.Decimal   `json:"monthly_income"`
	MonthlyExpenses    decimal.Decimal   `json:"monthly_expenses"`
	SavingsRate        decimal.Decimal   `json:"savings_rate"`
	AccountSummaries   []PlatformSummary `json:"account_summaries"`
	RecentTransactions []Transaction     `json:"recent_transactions"`
	ActiveGoals        []FinancialGoal   `json:"active_goals"`
}

// Advice is the responder's answer to a free-text financial question.
type Advice struct {
	Response        string   `json:"response"`
	Recommendations []string `json:"recommendations"`
	Confidence      float64  `json:"confidence"`
}
