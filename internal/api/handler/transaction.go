// internal/api/handler/transaction.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	apimw "fintrack-api/internal/api/middleware"
	"fintrack-api/internal/domain"
	"fintrack-api/internal/repository"
	"fintrack-api/internal/service"
	"fintrack-api/internal/util"
)

// TransactionHandler handles HTTP requests for the transaction journal.
type TransactionHandler struct {
	service service.TransactionService
	logger  *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc service.TransactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{service: svc, logger: logger}
}

// CreateTransactionRequest represents the request body for a journal entry.
type CreateTransactionRequest struct {
	AccountID       int64                  `json:"account_id"`
	TransactionType domain.TransactionType `json:"transaction_type"`
	Category        string                 `json:"category"`
	Amount          decimal.Decimal        `json:"amount"`
	Description     string                 `json:"description"`
	TransactionDate time.Time              `json:"transaction_date"`
}

// Create records a journal entry and returns it with the updated account.
// POST /transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := apimw.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	transaction, account, err := h.service.CreateTransaction(r.Context(), userID, service.CreateTransactionInput{
		AccountID:       req.AccountID,
		TransactionType: req.TransactionType,
		Category:        req.Category,
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: req.TransactionDate,
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, map[string]interface{}{
		"transaction": transaction,
		"account":     account,
	})
}

// List returns the caller's transactions, newest first.
// GET /transactions?limit=&account_id=&type=&date_from=&date_to=
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := apimw.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	filter, err := parseTransactionFilter(r)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	transactions, err := h.service.GetTransactions(r.Context(), userID, filter)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, transactions)
}

func parseTransactionFilter(r *http.Request) (repository.TransactionFilter, error) {
	filter := repository.TransactionFilter{Limit: service.DefaultTransactionLimit}
	query := r.URL.Query()

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return filter, util.ErrInvalidInput
		}
		filter.Limit = limit
	}
	if accountIDStr := query.Get("account_id"); accountIDStr != "" {
		accountID, err := strconv.ParseInt(accountIDStr, 10, 64)
		if err != nil {
			return filter, util.ErrInvalidInput
		}
		filter.AccountID = &accountID
	}
	if typeStr := query.Get("type"); typeStr != "" {
		txType := domain.TransactionType(typeStr)
		if !domain.ValidTransactionType(txType) {
			return filter, util.ErrInvalidInput
		}
		filter.Type = &txType
	}
	if fromStr := query.Get("date_from"); fromStr != "" {
		from, err := parseDate(fromStr)
		if err != nil {
			return filter, util.ErrInvalidInput
		}
		filter.DateFrom = &from
	}
	if toStr := query.Get("date_to"); toStr != "" {
		to, err := parseDate(toStr)
		if err != nil {
			return filter, util.ErrInvalidInput
		}
		filter.DateTo = &to
	}

	return filter, nil
}

// parseDate accepts RFC3339 timestamps or bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
