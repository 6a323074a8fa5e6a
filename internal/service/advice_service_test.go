// internal/service/advice_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fintrack-api/internal/domain"
)

// MockAnalyticsService is a mock implementation of AnalyticsService.
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetMonthlyMetrics(ctx context.Context, userID int64, month, year int) (*domain.MonthlyMetrics, error) {
	args := m.Called(ctx, userID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyMetrics), args.Error(1)
}

func (m *MockAnalyticsService) GetFinancialOverview(ctx context.Context, userID int64) (*domain.FinancialOverview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialOverview), args.Error(1)
}

// MockTextGenerator is a mock implementation of TextGenerator.
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, financialContext, query string) (string, error) {
	args := m.Called(ctx, financialContext, query)
	return args.String(0), args.Error(1)
}

func healthyOverview() *domain.FinancialOverview {
	return &domain.FinancialOverview{
		TotalBalance:    decimal.NewFromInt(20000),
		MonthlyIncome:   decimal.NewFromInt(5000),
		MonthlyExpenses: decimal.NewFromInt(2500),
		SavingsRate:     decimal.NewFromInt(50),
		AccountSummaries: []domain.PlatformSummary{
			{PlatformName: "Chase"},
			{PlatformName: "Fidelity"},
		},
		ActiveGoals: []domain.FinancialGoal{{GoalName: "Emergency fund"}},
	}
}

func strugglingOverview() *domain.FinancialOverview {
	return &domain.FinancialOverview{
		TotalBalance:     decimal.NewFromInt(300),
		MonthlyIncome:    decimal.NewFromInt(2000),
		MonthlyExpenses:  decimal.NewFromInt(1900),
		SavingsRate:      decimal.NewFromInt(5),
		AccountSummaries: []domain.PlatformSummary{{PlatformName: "Chase"}},
		ActiveGoals:      []domain.FinancialGoal{},
	}
}

// TestDeriveRecommendations checks the rule set and its cap.
func TestDeriveRecommendations(t *testing.T) {
	t.Run("HealthyProfileGetsNone", func(t *testing.T) {
		recommendations := deriveRecommendations(healthyOverview())
		assert.Empty(t, recommendations)
	})

	t.Run("AllRulesFireCappedAtThree", func(t *testing.T) {
		recommendations := deriveRecommendations(strugglingOverview())
		assert.Len(t, recommendations, 3)
		// Rules apply in priority order: savings rate first.
		assert.Contains(t, recommendations[0], "savings rate")
	})

	t.Run("MissingGoalsOnly", func(t *testing.T) {
		overview := healthyOverview()
		overview.ActiveGoals = nil
		recommendations := deriveRecommendations(overview)
		assert.Len(t, recommendations, 1)
		assert.Contains(t, recommendations[0], "goals")
	})
}

// TestGetAdvice tests the GetAdvice method of AdviceService.
func TestGetAdvice(t *testing.T) {
	userID := int64(1)

	t.Run("GeneratorAnswersWithHighConfidence", func(t *testing.T) {
		ctx := context.Background()
		analytics := new(MockAnalyticsService)
		generator := new(MockTextGenerator)
		service := NewAdviceService(analytics, generator, discardLogger())

		analytics.On("GetFinancialOverview", ctx, userID).Return(healthyOverview(), nil).Once()
		generator.On("Generate", ctx, mock.AnythingOfType("string"), "how am I doing?").
			Return("You are on track.", nil).Once()

		advice, err := service.GetAdvice(ctx, userID, "how am I doing?")

		assert.NoError(t, err)
		assert.Equal(t, "You are on track.", advice.Response)
		assert.Equal(t, 0.85, advice.Confidence)

		mock.AssertExpectationsForObjects(t, analytics, generator)
	})

	t.Run("GeneratorFailureFallsBack", func(t *testing.T) {
		ctx := context.Background()
		analytics := new(MockAnalyticsService)
		generator := new(MockTextGenerator)
		service := NewAdviceService(analytics, generator, discardLogger())

		analytics.On("GetFinancialOverview", ctx, userID).Return(healthyOverview(), nil).Once()
		generator.On("Generate", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return("", errors.New("service unavailable")).Once()

		advice, err := service.GetAdvice(ctx, userID, "How can I improve my savings?")

		assert.NoError(t, err, "generator failure must never surface")
		assert.Equal(t, 0.5, advice.Confidence)
		assert.Contains(t, advice.Response, "savings rate is 50.0%")

		mock.AssertExpectationsForObjects(t, analytics, generator)
	})

	t.Run("NoGeneratorConfigured", func(t *testing.T) {
		ctx := context.Background()
		analytics := new(MockAnalyticsService)
		service := NewAdviceService(analytics, nil, discardLogger())

		analytics.On("GetFinancialOverview", ctx, userID).Return(strugglingOverview(), nil).Once()

		advice, err := service.GetAdvice(ctx, userID, "What should my budget look like?")

		assert.NoError(t, err)
		assert.Equal(t, 0.5, advice.Confidence)
		assert.Contains(t, advice.Response, "spent $1900.00")
		assert.Len(t, advice.Recommendations, 3)

		analytics.AssertExpectations(t)
	})

	t.Run("KeywordRouting", func(t *testing.T) {
		cases := []struct {
			query    string
			contains string
		}{
			{"Should I invest in index funds?", "emergency fund"},
			{"How do I pay off my debt?", "high-interest debt"},
			{"Tell me about my goals", "active goals"},
			{"What is the weather like?", "total balance"},
		}
		for _, tc := range cases {
			ctx := context.Background()
			analytics := new(MockAnalyticsService)
			service := NewAdviceService(analytics, nil, discardLogger())
			analytics.On("GetFinancialOverview", ctx, userID).Return(strugglingOverview(), nil).Once()

			advice, err := service.GetAdvice(ctx, userID, tc.query)

			assert.NoError(t, err)
			assert.Contains(t, advice.Response, tc.contains, "query %q", tc.query)
		}
	})
}
