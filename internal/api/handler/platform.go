// internal/api/handler/platform.go
package handler

import (
	"log/slog"
	"net/http"

	"fintrack-api/internal/repository"
)

// PlatformHandler serves the read-only platform catalog.
type PlatformHandler struct {
	dbExecutor   repository.DBExecutor
	platformRepo repository.PlatformRepository
	logger       *slog.Logger
}

// NewPlatformHandler creates a new PlatformHandler.
func NewPlatformHandler(dbExecutor repository.DBExecutor, platformRepo repository.PlatformRepository, logger *slog.Logger) *PlatformHandler {
	return &PlatformHandler{
		dbExecutor:   dbExecutor,
		platformRepo: platformRepo,
		logger:       logger,
	}
}

// List returns all active platforms.
// GET /platforms
func (h *PlatformHandler) List(w http.ResponseWriter, r *http.Request) {
	platforms, err := h.platformRepo.GetActivePlatforms(r.Context(), h.dbExecutor)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, platforms)
}
