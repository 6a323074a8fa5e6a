// internal/api/handler/report.go
package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	apimw "fintrack-api/internal/api/middleware"
	"fintrack-api/internal/service"
	"fintrack-api/internal/util"
)

// ReportHandler serves generated statement documents.
type ReportHandler struct {
	service service.StatementService
	logger  *slog.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(svc service.StatementService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{service: svc, logger: logger}
}

// MonthlyStatement renders the caller's monthly statement as a PDF.
// GET /reports/statement/{year}/{month}
func (h *ReportHandler) MonthlyStatement(w http.ResponseWriter, r *http.Request) {
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

	pdfBytes, err := h.service.MonthlyStatement(r.Context(), userID, month, year)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="statement-%04d-%02d.pdf"`, year, month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
