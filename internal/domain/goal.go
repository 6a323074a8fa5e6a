// internal/domain/goal.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalType classifies a financial goal.
type GoalType string

const (
	GoalTypeSavings       GoalType = "savings"
	GoalTypeDebtReduction GoalType = "debt_reduction"
	GoalTypeInvestment    GoalType = "investment"
)

// ValidGoalType reports whether t is one of the known goal types.
func ValidGoalType(t GoalType) bool {
	switch t {
	case GoalTypeSavings, GoalTypeDebtReduction, GoalTypeInvestment:
		return true
	}
	return false
}

// Priority orders goals for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ValidPriority reports whether p is one of the known priorities.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// FinancialGoal is a user-owned target/current amount pair.
// Soft-deleted via IsActive=false, preserving history.
type FinancialGoal struct {
	ID            int64           `db:"id" json:"id"`
	UserID        int64           `db:"user_id" json:"user_id"`
	GoalName      string          `db:"goal_name" json:"goal_name"`
	GoalType      GoalType        `db:"goal_type" json:"goal_type"`
	TargetAmount  decimal.Decimal `db:"target_amount" json:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount" json:"current_amount"`
	TargetDate    time.Time       `db:"target_date" json:"target_date"`
	Priority      Priority        `db:"priority" json:"priority"`
	IsActive      bool            `db:"is_active" json:"is_active"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// NewFinancialGoal creates a new goal with zero progress.
func NewFinancialGoal(userID int64, name string, goalType GoalType, target decimal.Decimal, targetDate time.Time, priority Priority) *FinancialGoal {
	return &FinancialGoal{
		UserID:        userID,
		GoalName:      name,
		GoalType:      goalType,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		TargetDate:    targetDate,
		Priority:      priority,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}
}

// GoalUpdate enumerates the caller-mutable fields for a full goal update.
// Fields outside this set (current_amount, is_active, ownership, timestamps)
// are managed by their own operations.
type GoalUpdate struct {
	GoalName     string          `json:"goal_name"`
	GoalType     GoalType        `json:"goal_type"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	TargetDate   time.Time       `json:"target_date"`
	Priority     Priority        `json:"priority"`
}

// Apply merges the update into the goal, field by field.
func (u GoalUpdate) Apply(g *FinancialGoal) {
	g.GoalName = u.GoalName
	g.GoalType = u.GoalType
	g.TargetAmount = u.TargetAmount
	g.TargetDate = u.TargetDate
	g.Priority = u.Priority
}
