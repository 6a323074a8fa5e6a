// internal/repository/postgres/platform_pg.go
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

// PlatformRepository implements repository.PlatformRepository for PostgreSQL.
type PlatformRepository struct{}

// NewPlatformRepository creates a new PlatformRepository.
func NewPlatformRepository(db *sqlx.DB) repository.PlatformRepository {
	return &PlatformRepository{}
}

// GetActivePlatforms lists all active platforms ordered by name.
func (r *PlatformRepository) GetActivePlatforms(ctx context.Context, q repository.DBExecutor) ([]domain.Platform, error) {
	platforms := []domain.Platform{}
	query := `SELECT id, name, platform_type, logo_url, is_active
              FROM banking_platforms
              WHERE is_active = TRUE
              ORDER BY name`
	if err := q.SelectContext(ctx, &platforms, query); err != nil {
		return nil, fmt.Errorf("failed to fetch platforms: %w", err)
	}
	return platforms, nil
}

// GetPlatformByID retrieves one platform by ID.
func (r *PlatformRepository) GetPlatformByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Platform, error) {
	var platform domain.Platform
	query := `SELECT id, name, platform_type, logo_url, is_active
              FROM banking_platforms WHERE id = $1`
	err := q.GetContext(ctx, &platform, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get platform by ID %d: %w", id, err)
	}
	return &platform, nil
}
