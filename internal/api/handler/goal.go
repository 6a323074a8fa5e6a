// internal/api/handler/goal.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	apimw "fintrack-api/internal/api/middleware"
	"fintrack-api/internal/domain"
	"fintrack-api/internal/service"
	"fintrack-api/internal/util"
)

// GoalHandler handles HTTP requests for the goal tracker.
type GoalHandler struct {
	service service.GoalService
	logger  *slog.Logger
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(svc service.GoalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{service: svc, logger: logger}
}

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	GoalName     string          `json:"goal_name"`
	GoalType     domain.GoalType `json:"goal_type"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	TargetDate   time.Time       `json:"target_date"`
	Priority     domain.Priority `json:"priority"`
}

// Create handles goal creation.
// POST /goals
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := apimw.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	var req CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	goal, err := h.service.CreateGoal(r.Context(), userID, service.CreateGoalInput{
		GoalName:     req.GoalName,
		GoalType:     req.GoalType,
		TargetAmount: req.TargetAmount,
		TargetDate:   req.TargetDate,
		Priority:     req.Priority,
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, goal)
}

// List returns the caller's active goals.
// GET /goals
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := apimw.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	goals, err := h.service.GetGoals(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, goals)
}

// UpdateProgressRequest represents the request body for a progress update.
type UpdateProgressRequest struct {
	CurrentAmount decimal.Decimal `json:"current_amount"`
}

// UpdateProgress sets the goal's current amount.
// PUT /goals/{goalID}/progress
func (h *GoalHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := apimw.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	goalID, err := goalIDParam(r)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	var req UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	goal, err := h.service.UpdateGoalProgress(r.Context(), userID, goalID, req.CurrentAmount)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, goal)
}

// Update overwrites the goal's caller-mutable fields.
// PUT /goals/{goalID}
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := apimw.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	goalID, err := goalIDParam(r)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	var update domain.GoalUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	goal, err := h.service.UpdateGoal(r.Context(), userID, goalID, update)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, goal)
}

// Delete soft-deletes the goal.
// DELETE /goals/{goalID}
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := apimw.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	goalID, err := goalIDParam(r)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	if err := h.service.DeleteGoal(r.Context(), userID, goalID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]string{"message": "Goal deleted successfully"})
}

func goalIDParam(r *http.Request) (int64, error) {
	goalID, err := strconv.ParseInt(chi.URLParam(r, "goalID"), 10, 64)
	if err != nil {
		return 0, util.ErrInvalidInput
	}
	return goalID, nil
}
