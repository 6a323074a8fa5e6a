// internal/service/advice_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"fintrack-api/internal/domain"
)

// Confidence scores reported with advice responses. Externally generated
// text scores higher than the deterministic fallback.
const (
	adviceConfidenceGenerated = 0.85
	adviceConfidenceFallback  = 0.5
)

// TextGenerator produces free-form advice text from a financial context and
// a user query. Implementations call an external service and may fail; the
// responder always falls back locally.
type TextGenerator interface {
	Generate(ctx context.Context, financialContext, query string) (string, error)
}

// AdviceService answers free-text financial questions.
type AdviceService interface {
	GetAdvice(ctx context.Context, userID int64, query string) (*domain.Advice, error)
}

type adviceService struct {
	analytics AnalyticsService
	generator TextGenerator // nil when no external service is configured
	logger    *slog.Logger
}

// NewAdviceService creates a new instance of AdviceService. generator may be
// nil, in which case the deterministic responder is always used.
func NewAdviceService(analytics AnalyticsService, generator TextGenerator, logger *slog.Logger) AdviceService {
	return &adviceService{
		analytics: analytics,
		generator: generator,
		logger:    logger,
	}
}

// GetAdvice derives rule-based recommendations from the user's overview and
// answers the query, delegating text generation to the external service when
// one is configured and reachable.
func (s *adviceService) GetAdvice(ctx context.Context, userID int64, query string) (*domain.Advice, error) {
	overview, err := s.analytics.GetFinancialOverview(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("advice: %w", err)
	}

	recommendations := deriveRecommendations(overview)

	if s.generator != nil {
		text, genErr := s.generator.Generate(ctx, formatFinancialContext(overview), query)
		if genErr == nil {
			return &domain.Advice{
				Response:        text,
				Recommendations: recommendations,
				Confidence:      adviceConfidenceGenerated,
			}, nil
		}
		// The external service failing is absorbed here; the fallback below
		// must never raise.
		s.logger.Warn("External advice generation failed, using fallback", "error", genErr)
	}

	return &domain.Advice{
		Response:        fallbackResponse(query, overview),
		Recommendations: recommendations,
		Confidence:      adviceConfidenceFallback,
	}, nil
}

// deriveRecommendations applies the rule set in priority order, capped at 3.
func deriveRecommendations(o *domain.FinancialOverview) []string {
	recommendations := []string{}

	if o.SavingsRate.LessThan(decimal.NewFromInt(20)) {
		recommendations = append(recommendations, "Consider increasing your savings rate to at least 20%")
	}
	if o.MonthlyExpenses.GreaterThan(o.MonthlyIncome.Mul(decimal.NewFromFloat(0.8))) {
		recommendations = append(recommendations, "Review your expenses to identify areas for cost reduction")
	}
	if len(o.ActiveGoals) == 0 {
		recommendations = append(recommendations, "Set specific financial goals to stay motivated")
	}
	if len(o.AccountSummaries) < 2 {
		recommendations = append(recommendations, "Diversify your finances across more than one platform")
	}

	if len(recommendations) > 3 {
		recommendations = recommendations[:3]
	}
	return recommendations
}

// formatFinancialContext renders the overview for the external generator.
func formatFinancialContext(o *domain.FinancialOverview) string {
	return fmt.Sprintf(
		"User Financial Overview:\n"+
			"- Total Balance: $%s\n"+
			"- Monthly Income: $%s\n"+
			"- Monthly Expenses: $%s\n"+
			"- Savings Rate: %s%%\n"+
			"- Active Goals: %d\n"+
			"- Accounts: %d platforms",
		o.TotalBalance.StringFixed(2),
		o.MonthlyIncome.StringFixed(2),
		o.MonthlyExpenses.StringFixed(2),
		o.SavingsRate.StringFixed(1),
		len(o.ActiveGoals),
		len(o.AccountSummaries),
	)
}

// fallbackResponse matches the query against a small keyword table and
// interpolates the overview's numbers into canned prose.
func fallbackResponse(query string, o *domain.FinancialOverview) string {
	q := strings.ToLower(query)

	switch {
	case strings.Contains(q, "saving"):
		return fmt.Sprintf(
			"Your current savings rate is %s%%. A common guideline is to save at least 20%% of your income. With a monthly income of $%s and expenses of $%s, you have $%s available each month.",
			o.SavingsRate.StringFixed(1),
			o.MonthlyIncome.StringFixed(2),
			o.MonthlyExpenses.StringFixed(2),
			o.MonthlyIncome.Sub(o.MonthlyExpenses).StringFixed(2))
	case strings.Contains(q, "budget"), strings.Contains(q, "expense"), strings.Contains(q, "spend"):
		return fmt.Sprintf(
			"This month you have spent $%s against an income of $%s. Reviewing your largest expense categories is the quickest way to free up room in your budget.",
			o.MonthlyExpenses.StringFixed(2),
			o.MonthlyIncome.StringFixed(2))
	case strings.Contains(q, "goal"):
		return fmt.Sprintf(
			"You currently have %d active goals. Breaking large targets into monthly contributions makes progress easier to sustain.",
			len(o.ActiveGoals))
	case strings.Contains(q, "invest"):
		return fmt.Sprintf(
			"With a total balance of $%s across %d platforms, consider keeping an emergency fund in cash before investing the remainder.",
			o.TotalBalance.StringFixed(2),
			len(o.AccountSummaries))
	case strings.Contains(q, "debt"):
		return "Prioritize paying down high-interest debt first while keeping minimum payments on everything else."
	default:
		return fmt.Sprintf(
			"Your total balance is $%s with a savings rate of %s%% this month. Keep tracking your transactions to build an accurate picture of your finances.",
			o.TotalBalance.StringFixed(2),
			o.SavingsRate.StringFixed(1))
	}
}
