// internal/repository/postgres/metric_pg.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"fintrack-api/internal/domain"
	"fintrack-api/internal/repository"
)

// MetricRepository implements repository.MetricRepository for PostgreSQL.
type MetricRepository struct{}

// NewMetricRepository creates a new MetricRepository.
func NewMetricRepository(db *sqlx.DB) repository.MetricRepository {
	return &MetricRepository{}
}

// CreateMetrics appends audit rows for one analytics computation.
func (r *MetricRepository) CreateMetrics(ctx context.Context, q repository.DBExecutor, metrics []domain.FinancialMetric) error {
	query := `INSERT INTO financial_metrics (user_id, metric_name, metric_value, metric_type,
                                             period_start, period_end, calculation_date)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i := range metrics {
		m := &metrics[i]
		if _, err := q.ExecContext(ctx, query,
			m.UserID,
			m.MetricName,
			m.MetricValue,
			m.MetricType,
			m.PeriodStart,
			m.PeriodEnd,
			m.CalculationDate,
		); err != nil {
			return fmt.Errorf("failed to create metric '%s': %w", m.MetricName, err)
		}
	}
	return nil
}
