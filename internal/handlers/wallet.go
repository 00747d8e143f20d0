package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/logger"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/models"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/services"
	"github.com/shopspring/decimal"
)

// WalletCreator defines the interface that the service must implement.
type WalletCreator interface {
	Create(ctx context.Context, accountID uuid.UUID, category models.Category, balance decimal.Decimal) (*models.WalletDB, error)
}

// WalletCrediter defines the interface that the service must implement.
type WalletCrediter interface {
	Credit(ctx context.Context, accountID uuid.UUID, category models.Category, amount decimal.Decimal) (*models.WalletDB, error)
}

// CreateWalletRequest represents the JSON body for creating a wallet
// swagger:model CreateWalletRequest
type CreateWalletRequest struct {
	// Account identifier
	// required: true
	// example: 3fa85f64-5717-4562-b3fc-2c963f66afa6
	Account string `json:"account"`

	// Benefit category
	// required: true
	// example: FOOD
	Category models.Category `json:"category"`

	// Opening balance
	// example: 100.00
	Balance decimal.Decimal `json:"balance"`
}

// CreditWalletRequest represents the JSON body for topping up a wallet
// swagger:model CreditWalletRequest
type CreditWalletRequest struct {
	// Account identifier
	// required: true
	// example: 3fa85f64-5717-4562-b3fc-2c963f66afa6
	Account string `json:"account"`

	// Benefit category
	// required: true
	// example: MEAL
	Category models.Category `json:"category"`

	// Amount to credit
	// required: true
	// example: 50.00
	Amount decimal.Decimal `json:"amount"`
}

// WalletResponse represents a wallet returned by a management operation
// swagger:model WalletResponse
type WalletResponse struct {
	// Wallet identifier
	WalletID string `json:"wallet_id"`

	// Owning account identifier
	AccountID string `json:"account_id"`

	// Benefit category
	Category models.Category `json:"category"`

	// Current balance
	Balance decimal.Decimal `json:"balance"`
}

// WalletErrorResponse represents an error response for wallet management
// swagger:model WalletErrorResponse
type WalletErrorResponse struct {
	// Error message
	// example: Wallet already exists
	Error string `json:"error"`
}

// NewCreateWalletHandler returns an HTTP handler for opening a wallet.
// @Summary Create a wallet
// @Description Opens a wallet for an account and category with an opening balance
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.CreateWalletRequest true "Wallet creation request"
// @Success 201 {object} handlers.WalletResponse "Created wallet"
// @Failure 400 {object} handlers.WalletErrorResponse "Invalid request / wallet already exists"
// @Failure 404 {object} handlers.WalletErrorResponse "Account not found"
// @Router /wallet [post]
// @Security BearerAuth
func NewCreateWalletHandler(svc WalletCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateWalletRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WalletErrorResponse{Error: "invalid request body"})
			return
		}

		w.Header().Set("Content-Type", "application/json")

		accountID, err := uuid.Parse(req.Account)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WalletErrorResponse{Error: "invalid account id"})
			return
		}

		wallet, err := svc.Create(r.Context(), accountID, req.Category, req.Balance)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WalletErrorResponse{Error: "Account not found"})
			case errors.Is(err, services.ErrWalletAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WalletErrorResponse{Error: "Wallet already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WalletErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(WalletResponse{
			WalletID:  wallet.WalletID.String(),
			AccountID: wallet.AccountID.String(),
			Category:  wallet.Category,
			Balance:   wallet.Balance,
		})
	}
}

// NewCreditWalletHandler returns an HTTP handler for topping up a wallet.
// Credits are unconditional and never round the balance.
// @Summary Credit a wallet
// @Description Adds funds to the wallet of an account and category
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.CreditWalletRequest true "Wallet credit request"
// @Success 200 {object} handlers.WalletResponse "Wallet with the new balance"
// @Failure 400 {object} handlers.WalletErrorResponse "Invalid request"
// @Failure 404 {object} handlers.WalletErrorResponse "Wallet not found"
// @Router /wallet/credit [post]
// @Security BearerAuth
func NewCreditWalletHandler(svc WalletCrediter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreditWalletRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WalletErrorResponse{Error: "invalid request body"})
			return
		}

		w.Header().Set("Content-Type", "application/json")

		accountID, err := uuid.Parse(req.Account)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WalletErrorResponse{Error: "invalid account id"})
			return
		}

		wallet, err := svc.Credit(r.Context(), accountID, req.Category, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWalletNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WalletErrorResponse{Error: "Wallet not found"})
			case errors.Is(err, services.ErrMalformedRequest):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WalletErrorResponse{Error: "Invalid account or amount"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WalletErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WalletResponse{
			WalletID:  wallet.WalletID.String(),
			AccountID: wallet.AccountID.String(),
			Category:  wallet.Category,
			Balance:   wallet.Balance,
		})
	}
}

// RegisterCreateWalletHandler registers the route for creating wallets
func RegisterCreateWalletHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet", h)
}

// RegisterCreditWalletHandler registers the route for topping up wallets
func RegisterCreditWalletHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet/credit", h)
}
