// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"fintrack-api/internal/util"
)

// DefaultTimeout bounds request handling at the router level.
const DefaultTimeout = 60 * time.Second

// respondWithJSON sends a JSON response with the given status code.
func respondWithJSON(logger *slog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps service errors onto the HTTP error taxonomy.
func respondWithError(logger *slog.Logger, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	if ibe, ok := util.AsInsufficientBalance(err); ok {
		respondWithJSON(logger, w, http.StatusPaymentRequired, map[string]interface{}{
			"error":     "insufficient balance",
			"available": ibe.Available,
			"required":  ibe.Required,
		})
		return
	}

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrBadCredentials):
		statusCode = http.StatusUnauthorized
		message = "Incorrect email or password"
	case util.IsError(err, util.ErrUnauthenticated):
		statusCode = http.StatusUnauthorized
		message = "Authentication required"
	case util.IsError(err, util.ErrForbidden):
		statusCode = http.StatusForbidden
		message = "Action not permitted"
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case util.IsError(err, util.ErrDuplicateEmail):
		statusCode = http.StatusConflict
		message = "Email already registered"
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(logger, w, statusCode, map[string]string{"error": message})
}
