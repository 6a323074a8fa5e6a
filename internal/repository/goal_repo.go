// internal/repository/goal_repo.go
package repository

import (
	"context"

	"fintrack-api/internal/domain"
)

// GoalRepository defines the interface for financial goal data operations.
// All lookups are scoped by (goal_id, user_id) so that another user's goals
// are indistinguishable from absent ones.
type GoalRepository interface {
	// CreateGoal adds a new goal using the provided DBExecutor.
	CreateGoal(ctx context.Context, q DBExecutor, goal *domain.FinancialGoal) error
	// GetGoalByIDAndUserID retrieves a goal owned by the given user.
	GetGoalByIDAndUserID(ctx context.Context, q DBExecutor, goalID, userID int64) (*domain.FinancialGoal, error)
	// GetActiveGoalsByUserID lists the user's active goals.
	GetActiveGoalsByUserID(ctx context.Context, q DBExecutor, userID int64) ([]domain.FinancialGoal, error)
	// UpdateGoal persists the goal's mutable fields.
	UpdateGoal(ctx context.Context, q DBExecutor, goal *domain.FinancialGoal) error
}
