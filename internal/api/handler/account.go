// internal/api/handler/account.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	apimw "fintrack-api/internal/api/middleware"
	"fintrack-api/internal/domain"
	"fintrack-api/internal/service"
	"fintrack-api/internal/util"
)

// AccountHandler handles HTTP requests for the account ledger.
type AccountHandler struct {
	service service.AccountService
	logger  *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{service: svc, logger: logger}
}

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	PlatformID     int64              `json:"platform_id"`
	AccountName    string             `json:"account_name"`
	AccountType    domain.AccountType `json:"account_type"`
	AccountNumber  string             `json:"account_number"`
	CurrentBalance decimal.Decimal    `json:"current_balance"`
	Currency       string             `json:"currency"`
}

// Create handles account creation.
// POST /accounts
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := apimw.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	account, err := h.service.CreateAccount(r.Context(), userID, service.CreateAccountInput{
		PlatformID:     req.PlatformID,
		AccountName:    req.AccountName,
		AccountType:    req.AccountType,
		AccountNumber:  req.AccountNumber,
		OpeningBalance: req.CurrentBalance,
		Currency:       req.Currency,
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, account)
}

// List returns the caller's active accounts.
// GET /accounts
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := apimw.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	accounts, err := h.service.GetAccounts(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, accounts)
}

// UpdateBalanceRequest represents the request body for a balance override.
type UpdateBalanceRequest struct {
	NewBalance decimal.Decimal `json:"new_balance"`
}

// UpdateBalance handles the direct balance override. It bypasses the journal.
// PUT /accounts/{accountID}/balance
func (h *AccountHandler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := apimw.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	var req UpdateBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	account, err := h.service.OverrideBalance(r.Context(), userID, accountID, req.NewBalance)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, account)
}
