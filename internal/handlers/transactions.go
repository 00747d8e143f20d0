package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/logger"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/models"
)

// TransactionListerHandler defines the interface that the service must implement.
type TransactionListerHandler interface {
	List(ctx context.Context) ([]models.TransactionDB, error)
}

// TransactionsResponse represents the recorded authorization attempts
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	// Recorded authorization attempts, newest first
	Transactions []models.TransactionDB `json:"transactions"`
}

// TransactionsErrorResponse represents an error response when listing transactions
// swagger:model TransactionsErrorResponse
type TransactionsErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewListTransactionsHandler returns an HTTP handler for listing all recorded attempts.
// @Summary List transactions
// @Description Returns every recorded authorization attempt
// @Tags transaction
// @Produce json
// @Success 200 {object} handlers.TransactionsResponse "Recorded attempts"
// @Failure 500 {object} handlers.TransactionsErrorResponse "Internal server error"
// @Router /transaction/all [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionListerHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		txns, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionsResponse{Transactions: txns})
	}
}

// RegisterListTransactionsHandler registers the route for listing transactions
func RegisterListTransactionsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/transaction/all", h)
}
