// internal/service/analytics_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"fintrack-api/internal/domain"
	"fintrack-api/internal/repository"
	"fintrack-api/internal/util"
)

var oneHundred = decimal.NewFromInt(100)

// AnalyticsService computes period-bounded aggregates over the journal.
type AnalyticsService interface {
	// GetMonthlyMetrics sums the month's income and expenses and derives the
	// savings rate. Three audit rows are written best-effort; their
	// persistence failing never blocks the response.
	GetMonthlyMetrics(ctx context.Context, userID int64, month, year int) (*domain.MonthlyMetrics, error)
	// GetFinancialOverview assembles the dashboard view for the user.
	GetFinancialOverview(ctx context.Context, userID int64) (*domain.FinancialOverview, error)
}

type analyticsService struct {
	dbExecutor      repository.DBExecutor
	accountRepo     repository.AccountRepository
	transactionRepo repository.TransactionRepository
	goalRepo        repository.GoalRepository
	metricRepo      repository.MetricRepository
	logger          *slog.Logger
}

// NewAnalyticsService creates a new instance of AnalyticsService.
func NewAnalyticsService(
	dbExecutor repository.DBExecutor,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	goalRepo repository.GoalRepository,
	metricRepo repository.MetricRepository,
	logger *slog.Logger,
) AnalyticsService {
	return &analyticsService{
		dbExecutor:      dbExecutor,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		metricRepo:      metricRepo,
		logger:          logger,
	}
}

// MonthPeriod returns the first and last calendar day of the given month.
// December rolls the exclusive bound into January 1 of the following year.
func MonthPeriod(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return start, end
}

// SavingsRate computes (income - expenses) / income * 100, zero when income
// is zero.
func SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income).Mul(oneHundred)
}

func (s *analyticsService) GetMonthlyMetrics(ctx context.Context, userID int64, month, year int) (*domain.MonthlyMetrics, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, util.ErrInvalidInput
	}

	start, end := MonthPeriod(month, year)
	transactions, err := s.transactionRepo.GetTransactionsByPeriod(ctx, s.dbExecutor, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("monthly metrics: %w", err)
	}

	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range transactions {
		switch t.TransactionType {
		case domain.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case domain.TransactionTypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}

	result := &domain.MonthlyMetrics{
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		SavingsRate:     SavingsRate(income, expenses),
	}

	s.persistMetrics(ctx, userID, start, end, result)
	return result, nil
}

// persistMetrics appends the audit rows. Failure is logged and swallowed:
// the audit trail is best-effort and never blocks the caller.
func (s *analyticsService) persistMetrics(ctx context.Context, userID int64, start, end time.Time, m *domain.MonthlyMetrics) {
	now := time.Now().UTC()
	rows := []domain.FinancialMetric{
		{UserID: userID, MetricName: "Monthly Income", MetricValue: m.MonthlyIncome,
			MetricType: domain.MetricTypeMonthlyIncome, PeriodStart: start, PeriodEnd: end, CalculationDate: now},
		{UserID: userID, MetricName: "Monthly Expenses", MetricValue: m.MonthlyExpenses,
			MetricType: domain.MetricTypeMonthlyExpenses, PeriodStart: start, PeriodEnd: end, CalculationDate: now},
		{UserID: userID, MetricName: "Savings Rate", MetricValue: m.SavingsRate,
			MetricType: domain.MetricTypeSavingsRate, PeriodStart: start, PeriodEnd: end, CalculationDate: now},
	}
	if err := s.metricRepo.CreateMetrics(ctx, s.dbExecutor, rows); err != nil {
		s.logger.Warn("Failed to persist metric audit rows", "user_id", userID, "error", err)
	}
}

func (s *analyticsService) GetFinancialOverview(ctx context.Context, userID int64) (*domain.FinancialOverview, error) {
	accounts, err := s.accountRepo.GetActiveAccountsByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("overview: failed to fetch accounts: %w", err)
	}

	totalBalance := decimal.Zero
	summaryIndex := map[string]int{}
	summaries := []domain.PlatformSummary{}
	for _, account := range accounts {
		totalBalance = totalBalance.Add(account.CurrentBalance)

		name := ""
		if account.PlatformName != nil {
			name = *account.PlatformName
		}
		idx, seen := summaryIndex[name]
		if !seen {
			summary := domain.PlatformSummary{
				PlatformName: name,
				TotalBalance: decimal.Zero,
				Accounts:     []domain.Account{},
			}
			if account.PlatformKind != nil {
				summary.PlatformType = *account.PlatformKind
			}
			summaries = append(summaries, summary)
			idx = len(summaries) - 1
			summaryIndex[name] = idx
		}
		summaries[idx].TotalBalance = summaries[idx].TotalBalance.Add(account.CurrentBalance)
		summaries[idx].AccountCount++
		summaries[idx].Accounts = append(summaries[idx].Accounts, account)
	}

	now := time.Now().UTC()
	monthly, err := s.GetMonthlyMetrics(ctx, userID, int(now.Month()), now.Year())
	if err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}

	recent, err := s.transactionRepo.GetTransactionsByUserID(ctx, s.dbExecutor, userID,
		repository.TransactionFilter{Limit: 10})
	if err != nil {
		return nil, fmt.Errorf("overview: failed to fetch recent transactions: %w", err)
	}

	goals, err := s.goalRepo.GetActiveGoalsByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("overview: failed to fetch goals: %w", err)
	}

	return &domain.FinancialOverview{
		TotalBalance:       totalBalance,
		MonthlyIncome:      monthly.MonthlyIncome,
		MonthlyExpenses:    monthly.MonthlyExpenses,
		SavingsRate:        monthly.SavingsRate,
		AccountSummaries:   summaries,
		RecentTransactions: recent,
		ActiveGoals:        goals,
	}, nil
}
