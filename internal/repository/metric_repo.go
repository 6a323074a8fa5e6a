// internal/repository/metric_repo.go
package repository

import (
	"context"

	"fintrack-api/internal/domain"
)

// MetricRepository defines the interface for the analytics audit trail.
type MetricRepository interface {
	// CreateMetrics appends audit rows for one analytics computation.
	CreateMetrics(ctx context.Context, q DBExecutor, metrics []domain.FinancialMetric) error
}
