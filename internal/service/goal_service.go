// internal/service/goal_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fintrack-api/internal/domain"
	"fintrack-api/internal/repository"
	"fintrack-api/internal/util"
)

// GoalService defines the goal tracker operations. Every operation is scoped
// by (goal_id, user_id); goals owned by another user surface as NotFound.
type GoalService interface {
	CreateGoal(ctx context.Context, userID int64, input CreateGoalInput) (*domain.FinancialGoal, error)
	GetGoals(ctx context.Context, userID int64) ([]domain.FinancialGoal, error)
	UpdateGoalProgress(ctx context.Context, userID, goalID int64, currentAmount decimal.Decimal) (*domain.FinancialGoal, error)
	UpdateGoal(ctx context.Context, userID, goalID int64, update domain.GoalUpdate) (*domain.FinancialGoal, error)
	DeleteGoal(ctx context.Context, userID, goalID int64) error
}

// CreateGoalInput carries the caller-supplied goal fields.
type CreateGoalInput struct {
	GoalName     string
	GoalType     domain.GoalType
	TargetAmount decimal.Decimal
	TargetDate   time.Time
	Priority     domain.Priority
}

type goalService struct {
	dbExecutor repository.DBExecutor
	goalRepo   repository.GoalRepository
}

// NewGoalService creates a new instance of GoalService.
func NewGoalService(dbExecutor repository.DBExecutor, goalRepo repository.GoalRepository) GoalService {
	return &goalService{
		dbExecutor: dbExecutor,
		goalRepo:   goalRepo,
	}
}

// CreateGoal creates a goal with zero progress.
func (s *goalService) CreateGoal(ctx context.Context, userID int64, input CreateGoalInput) (*domain.FinancialGoal, error) {
	if input.GoalName == "" || !domain.ValidGoalType(input.GoalType) {
		return nil, util.ErrInvalidInput
	}
	if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidInput
	}
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(input.Priority) {
		return nil, util.ErrInvalidInput
	}

	goal := domain.NewFinancialGoal(userID, input.GoalName, input.GoalType,
		input.TargetAmount, input.TargetDate, input.Priority)
	if err := s.goalRepo.CreateGoal(ctx, s.dbExecutor, goal); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return goal, nil
}

// GetGoals lists the caller's active goals.
func (s *goalService) GetGoals(ctx context.Context, userID int64) ([]domain.FinancialGoal, error) {
	goals, err := s.goalRepo.GetActiveGoalsByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("get goals: %w", err)
	}
	return goals, nil
}

// UpdateGoalProgress sets the goal's current amount only.
func (s *goalService) UpdateGoalProgress(ctx context.Context, userID, goalID int64, currentAmount decimal.Decimal) (*domain.FinancialGoal, error) {
	if currentAmount.IsNegative() {
		return nil, util.ErrInvalidInput
	}

	goal, err := s.goalRepo.GetGoalByIDAndUserID(ctx, s.dbExecutor, goalID, userID)
	if err != nil {
		return nil, fmt.Errorf("update goal progress: %w", err)
	}

	goal.CurrentAmount = currentAmount
	if err := s.goalRepo.UpdateGoal(ctx, s.dbExecutor, goal); err != nil {
		return nil, fmt.Errorf("update goal progress: %w", err)
	}
	return goal, nil
}

// UpdateGoal overwrites the goal's caller-mutable fields from the update,
// using an explicit field merge rather than blanket attribute copy.
func (s *goalService) UpdateGoal(ctx context.Context, userID, goalID int64, update domain.GoalUpdate) (*domain.FinancialGoal, error) {
	if update.GoalName == "" || !domain.ValidGoalType(update.GoalType) || !domain.ValidPriority(update.Priority) {
		return nil, util.ErrInvalidInput
	}
	if update.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidInput
	}

	goal, err := s.goalRepo.GetGoalByIDAndUserID(ctx, s.dbExecutor, goalID, userID)
	if err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}

	update.Apply(goal)
	if err := s.goalRepo.UpdateGoal(ctx, s.dbExecutor, goal); err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}
	return goal, nil
}

// DeleteGoal flips the goal inactive, keeping the row for history.
func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID int64) error {
	goal, err := s.goalRepo.GetGoalByIDAndUserID(ctx, s.dbExecutor, goalID, userID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	goal.IsActive = false
	if err := s.goalRepo.UpdateGoal(ctx, s.dbExecutor, goal); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return nil
}
