// internal/repository/postgres/goal_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"fintrack-api/internal/domain"
	"fintrack-api/internal/repository"
	"fintrack-api/internal/util"
)

// GoalRepository implements repository.GoalRepository for PostgreSQL.
type GoalRepository struct{}

// NewGoalRepository creates a new GoalRepository.
func NewGoalRepository(db *sqlx.DB) repository.GoalRepository {
	return &GoalRepository{}
}

// CreateGoal inserts a new goal using the provided DBExecutor.
func (r *GoalRepository) CreateGoal(ctx context.Context, q repository.DBExecutor, goal *domain.FinancialGoal) error {
	query := `INSERT INTO financial_goals (user_id, goal_name, goal_type, target_amount, current_amount,
                                           target_date, priority, is_active, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		goal.UserID,
		goal.GoalName,
		goal.GoalType,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		goal.Priority,
		goal.IsActive,
		goal.CreatedAt,
	).Scan(&goal.ID)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// GetGoalByIDAndUserID retrieves a goal scoped by owner. A goal owned by a
// different user surfaces as ErrNotFound.
func (r *GoalRepository) GetGoalByIDAndUserID(ctx context.Context, q repository.DBExecutor, goalID, userID int64) (*domain.FinancialGoal, error) {
	var goal domain.FinancialGoal
	query := `SELECT id, user_id, goal_name, goal_type, target_amount, current_amount,
                     target_date, priority, is_active, created_at
              FROM financial_goals WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &goal, query, goalID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get goal %d for user %d: %w", goalID, userID, err)
	}
	return &goal, nil
}

// GetActiveGoalsByUserID lists the user's active goals.
func (r *GoalRepository) GetActiveGoalsByUserID(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.FinancialGoal, error) {
	goals := []domain.FinancialGoal{}
	query := `SELECT id, user_id, goal_name, goal_type, target_amount, current_amount,
                     target_date, priority, is_active, created_at
              FROM financial_goals
              WHERE user_id = $1 AND is_active = TRUE
              ORDER BY created_at`
	if err := q.SelectContext(ctx, &goals, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch goals for user %d: %w", userID, err)
	}
	return goals, nil
}

// UpdateGoal persists the goal's mutable fields, still scoped by owner.
func (r *GoalRepository) UpdateGoal(ctx context.Context, q repository.DBExecutor, goal *domain.FinancialGoal) error {
	query := `UPDATE financial_goals
              SET goal_name = $1, goal_type = $2, target_amount = $3, current_amount = $4,
                  target_date = $5, priority = $6, is_active = $7
              WHERE id = $8 AND user_id = $9`
	result, err := q.ExecContext(ctx, query,
		goal.GoalName,
		goal.GoalType,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		goal.Priority,
		goal.IsActive,
		goal.ID,
		goal.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal %d: %w", goal.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating goal %d: %w", goal.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
