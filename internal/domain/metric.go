// internal/domain/metric.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Metric type tags used by the analytics audit trail.
const (
	MetricTypeMonthlyIncome   = "monthly_income"
	MetricTypeMonthlyExpenses = "monthly_expenses"
	MetricTypeSavingsRate     = "savings_rate"
)

// FinancialMetric is an append-only audit row written as a side effect of
// analytics computation. It is never read back by the API.
type FinancialMetric struct {
	ID              int64           `db:"id" json:"id"`
	UserID          int64           `db:"user_id" json:"user_id"`
	MetricName      string          `db:"metric_name" json:"metric_name"`
	MetricValue     decimal.Decimal `db:"metric_value" json:"metric_value"`
	MetricType      string          `db:"metric_type" json:"metric_type"`
	PeriodStart     time.Time       `db:"period_start" json:"period_start"`
	PeriodEnd       time.Time       `db:"period_end" json:"period_end"`
	CalculationDate time.Time       `db:"calculation_date" json:"calculation_date"`
}
