// internal/api/handler/analytics.go
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apimw "fintrack-api/internal/api/middleware"
	"fintrack-api/internal/service"
	"fintrack-api/internal/util"
)

// AnalyticsHandler handles HTTP requests for the analytics aggregator.
type AnalyticsHandler struct {
	service service.AnalyticsService
	logger  *slog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc, logger: logger}
}

// Overview returns the caller's assembled financial overview.
// GET /analytics/overview
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID, ok := apimw.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	overview, err := h.service.GetFinancialOverview(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, overview)
}

// Monthly returns the computed metrics for one calendar month.
// GET /analytics/monthly/{year}/{month}
func (h *AnalyticsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	userID, ok := apimw.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	year, month, err := yearMonthParams(r)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	metrics, err := h.service.GetMonthlyMetrics(r.Context(), userID, month, year)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, metrics)
}

func yearMonthParams(r *http.Request) (int, int, error) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return 0, 0, util.ErrInvalidInput
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		return 0, 0, util.ErrInvalidInput
	}
	return year, month, nil
}
