// internal/repository/platform_repo.go
package repository

import (
	"context"

	"fintrack-api/internal/domain"
)

// PlatformRepository defines the interface for platform catalog reads.
// Platforms are seeded once and read-only from the application's perspective.
type PlatformRepository interface {
	// GetActivePlatforms lists all active platforms.
	GetActivePlatforms(ctx context.Context, q DBExecutor) ([]domain.Platform, error)
	// GetPlatformByID retrieves one platform by ID.
	GetPlatformByID(ctx context.Context, q DBExecutor, id int64) (*domain.Platform, error)
}
