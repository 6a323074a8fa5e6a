// internal/service/analytics_service_test.go
package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fintrack-api/internal/domain"
	"fintrack-api/internal/repository"
	"fintrack-api/internal/util"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type analyticsServiceMocks struct {
	accountRepo     *MockAccountRepository
	transactionRepo *MockTransactionRepository
	goalRepo        *MockGoalRepository
	metricRepo      *MockMetricRepository
	dbExecutor      *MockDBExecutor
}

func newAnalyticsServiceWithMocks() (AnalyticsService, *analyticsServiceMocks) {
	m := &analyticsServiceMocks{
		accountRepo:     new(MockAccountRepository),
		transactionRepo: new(MockTransactionRepository),
		goalRepo:        new(MockGoalRepository),
		metricRepo:      new(MockMetricRepository),
		dbExecutor:      new(MockDBExecutor),
	}
	svc := NewAnalyticsService(m.dbExecutor, m.accountRepo, m.transactionRepo, m.goalRepo, m.metricRepo, discardLogger())
	return svc, m
}

// TestMonthPeriod checks the period bounds, including the December rollover.
func TestMonthPeriod(t *testing.T) {
	t.Run("MidYearMonth", func(t *testing.T) {
		start, end := MonthPeriod(4, 2024)
		assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("FebruaryLeapYear", func(t *testing.T) {
		_, end := MonthPeriod(2, 2024)
		assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("DecemberRollsIntoNextYear", func(t *testing.T) {
		start, end := MonthPeriod(12, 2023)
		assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), end)
	})
}

// TestSavingsRate checks the savings rate derivation, including the
// zero-income guard.
func TestSavingsRate(t *testing.T) {
	t.Run("TypicalMonth", func(t *testing.T) {
		rate := SavingsRate(decimal.NewFromInt(5000), decimal.NewFromInt(3000))
		assert.True(t, rate.Equal(decimal.NewFromInt(40)), "got %s", rate)
	})

	t.Run("ZeroIncome", func(t *testing.T) {
		rate := SavingsRate(decimal.Zero, decimal.NewFromInt(3000))
		assert.True(t, rate.Equal(decimal.Zero))
	})

	t.Run("OverspentMonth", func(t *testing.T) {
		rate := SavingsRate(decimal.NewFromInt(1000), decimal.NewFromInt(1500))
		assert.True(t, rate.Equal(decimal.NewFromInt(-50)), "got %s", rate)
	})
}

// TestGetMonthlyMetrics tests the GetMonthlyMetrics method of AnalyticsService.
func TestGetMonthlyMetrics(t *testing.T) {
	userID := int64(1)

	t.Run("SumsByType", func(t *testing.T) {
		ctx := context.Background()
		service, mocks := newAnalyticsServiceWithMocks()

		transactions := []domain.Transaction{
			{TransactionType: domain.TransactionTypeIncome, Amount: decimal.NewFromInt(3000)},
			{TransactionType: domain.TransactionTypeIncome, Amount: decimal.NewFromInt(2000)},
			{TransactionType: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(3000)},
			// Transfers never contribute to either side.
			{TransactionType: domain.TransactionTypeTransfer, Amount: decimal.NewFromInt(900)},
		}
		mocks.transactionRepo.On("GetTransactionsByPeriod", ctx, mock.Anything, userID,
			mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(transactions, nil).Once()
		mocks.metricRepo.On("CreateMetrics", ctx, mock.Anything, mock.MatchedBy(func(rows []domain.FinancialMetric) bool {
			return len(rows) == 3
		})).Return(nil).Once()

		result, err := service.GetMonthlyMetrics(ctx, userID, 4, 2024)

		assert.NoError(t, err)
		assert.True(t, result.MonthlyIncome.Equal(decimal.NewFromInt(5000)))
		assert.True(t, result.MonthlyExpenses.Equal(decimal.NewFromInt(3000)))
		assert.True(t, result.SavingsRate.Equal(decimal.NewFromInt(40)))

		mock.AssertExpectationsForObjects(t, mocks.transactionRepo, mocks.metricRepo)
	})

	t.Run("AuditFailureDoesNotBlock", func(t *testing.T) {
		ctx := context.Background()
		service, mocks := newAnalyticsServiceWithMocks()

		mocks.transactionRepo.On("GetTransactionsByPeriod", ctx, mock.Anything, userID,
			mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]domain.Transaction{}, nil).Once()
		mocks.metricRepo.On("CreateMetrics", ctx, mock.Anything, mock.Anything).Return(errors.New("db error")).Once()

		result, err := service.GetMonthlyMetrics(ctx, userID, 4, 2024)

		assert.NoError(t, err)
		assert.True(t, result.SavingsRate.Equal(decimal.Zero))

		mock.AssertExpectationsForObjects(t, mocks.transactionRepo, mocks.metricRepo)
	})

	t.Run("InvalidMonth", func(t *testing.T) {
		ctx := context.Background()
		service, mocks := newAnalyticsServiceWithMocks()

		_, err := service.GetMonthlyMetrics(ctx, userID, 13, 2024)

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		mocks.transactionRepo.AssertNotCalled(t, "GetTransactionsByPeriod",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

// TestGetFinancialOverview tests the GetFinancialOverview method of AnalyticsService.
func TestGetFinancialOverview(t *testing.T) {
	ctx := context.Background()
	userID := int64(1)
	service, mocks := newAnalyticsServiceWithMocks()

	chase := "Chase"
	paypal := "PayPal"
	bank := domain.PlatformTypeBank
	wallet := domain.PlatformTypeDigitalWallet

	accounts := []domain.Account{
		{ID: 1, UserID: userID, CurrentBalance: decimal.NewFromInt(500), PlatformName: &chase, PlatformKind: &bank},
		{ID: 2, UserID: userID, CurrentBalance: decimal.NewFromInt(1500), PlatformName: &chase, PlatformKind: &bank},
		{ID: 3, UserID: userID, CurrentBalance: decimal.NewFromInt(250), PlatformName: &paypal, PlatformKind: &wallet},
	}

	mocks.accountRepo.On("GetActiveAccountsByUserID", ctx, mock.Anything, userID).Return(accounts, nil).Once()
	mocks.transactionRepo.On("GetTransactionsByPeriod", ctx, mock.Anything, userID,
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]domain.Transaction{}, nil).Once()
	mocks.metricRepo.On("CreateMetrics", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	mocks.transactionRepo.On("GetTransactionsByUserID", ctx, mock.Anything, userID,
		repository.TransactionFilter{Limit: 10}).Return([]domain.Transaction{}, nil).Once()
	mocks.goalRepo.On("GetActiveGoalsByUserID", ctx, mock.Anything, userID).Return([]domain.FinancialGoal{}, nil).Once()

	overview, err := service.GetFinancialOverview(ctx, userID)

	assert.NoError(t, err)
	assert.True(t, overview.TotalBalance.Equal(decimal.NewFromInt(2250)))

	// Accounts group by platform in first-seen order.
	assert.Len(t, overview.AccountSummaries, 2)
	assert.Equal(t, "Chase", overview.AccountSummaries[0].PlatformName)
	assert.Equal(t, domain.PlatformTypeBank, overview.AccountSummaries[0].PlatformType)
	assert.Equal(t, 2, overview.AccountSummaries[0].AccountCount)
	assert.True(t, overview.AccountSummaries[0].TotalBalance.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, "PayPal", overview.AccountSummaries[1].PlatformName)
	assert.Equal(t, 1, overview.AccountSummaries[1].AccountCount)

	mock.AssertExpectationsForObjects(t, mocks.accountRepo, mocks.transactionRepo, mocks.goalRepo, mocks.metricRepo)
}
