// internal/api/handler/advice.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	apimw "fintrack-api/internal/api/middleware"
	"fintrack-api/internal/service"
	"fintrack-api/internal/util"
)

// AdviceHandler handles HTTP requests for the advice responder.
type AdviceHandler struct {
	service service.AdviceService
	logger  *slog.Logger
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(svc service.AdviceService, logger *slog.Logger) *AdviceHandler {
	return &AdviceHandler{service: svc, logger: logger}
}

// AdviceRequest represents the request body for an advice query.
type AdviceRequest struct {
	Query   string `json:"query"`
	Context string `json:"context,omitempty"`
}

// Advise answers a free-text financial question.
// POST /ai/advice
func (h *AdviceHandler) Advise(w http.ResponseWriter, r *http.Request) {
	userID, ok := apimw.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	var req AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	advice, err := h.service.GetAdvice(r.Context(), userID, req.Query)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, advice)
}
