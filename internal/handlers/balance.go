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

// WalletLister defines the interface that the service must implement.
type WalletLister interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.WalletDB, error)
}

// CategoryBalance represents balances for the benefit categories
// swagger:model CategoryBalance
type CategoryBalance struct {
	// Balance of the FOOD wallet
	// example: 100.00
	Food decimal.Decimal `json:"FOOD"`

	// Balance of the MEAL wallet
	// example: 50.00
	Meal decimal.Decimal `json:"MEAL"`

	// Balance of the CASH wallet
	// example: 150.00
	Cash decimal.Decimal `json:"CASH"`
}

// BalanceResponse represents a successful response with account balances
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Account balances per category
	Balance *CategoryBalance `json:"balance"`
}

// BalanceErrorResponse represents an error response when fetching balances
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// example: Account or wallets not found
	Error string `json:"error"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching account balances.
// @Summary Get account balances
// @Description Returns the balance of every benefit category wallet of an account
// @Tags wallet
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} handlers.BalanceResponse "Account balances"
// @Failure 400 {object} handlers.BalanceErrorResponse "Invalid account id"
// @Failure 404 {object} handlers.BalanceErrorResponse "Account or wallets not found"
// @Failure 500 {object} handlers.BalanceErrorResponse "Internal server error"
// @Router /balance/{accountID} [get]
// @Security BearerAuth
func NewGetBalanceHandler(walletLister WalletLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BalanceErrorResponse{
				Error: "Invalid account id",
			})
			return
		}

		wallets, err := walletLister.ListByAccount(ctx, accountID)
		if err != nil {
			if errors.Is(err, services.ErrWalletNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BalanceErrorResponse{
					Error: "Account or wallets not found",
				})
				return
			}
			logger.Log.Errorw("failed to get balances", "accountID", accountID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BalanceErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		balance := CategoryBalance{}
		for _, wallet := range wallets {
			switch wallet.Category {
			case models.CategoryFood:
				balance.Food = wallet.Balance
			case models.CategoryMeal:
				balance.Meal = wallet.Balance
			case models.CategoryCash:
				balance.Cash = wallet.Balance
			}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{
			Balance: &balance,
		})
	}
}

// RegisterGetBalanceHandler registers the route for fetching account balances
func RegisterGetBalanceHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/balance/{accountID}", h)
}
