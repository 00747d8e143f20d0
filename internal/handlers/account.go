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
)

// AccountCreator defines the interface that the service must implement.
type AccountCreator interface {
	Create(ctx context.Context, name string) (*models.AccountDB, error)
}

// AccountReader defines the interface that the service must implement.
type AccountReader interface {
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error)
}

// CreateAccountRequest represents the JSON body for creating an account
// swagger:model CreateAccountRequest
type CreateAccountRequest struct {
	// Cardholder display name
	// required: true
	// example: Jose Silva
	Name string `json:"name"`
}

// AccountResponse represents an account
// swagger:model AccountResponse
type AccountResponse struct {
	// Account identifier
	AccountID string `json:"account_id"`

	// Cardholder display name
	Name string `json:"name"`
}

// AccountErrorResponse represents an error response for account operations
// swagger:model AccountErrorResponse
type AccountErrorResponse struct {
	// Error message
	// example: Account not found
	Error string `json:"error"`
}

// NewCreateAccountHandler returns an HTTP handler for creating an account.
// A new account gets one zero-balance wallet per benefit category.
// @Summary Create an account
// @Description Creates a cardholder account and seeds a zero wallet for every category
// @Tags account
// @Accept json
// @Produce json
// @Param request body handlers.CreateAccountRequest true "Account creation request"
// @Success 201 {object} handlers.AccountResponse "Created account"
// @Failure 400 {object} handlers.AccountErrorResponse "Invalid request"
// @Router /account [post]
// @Security BearerAuth
func NewCreateAccountHandler(svc AccountCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AccountErrorResponse{Error: "invalid request body"})
			return
		}

		w.Header().Set("Content-Type", "application/json")

		account, err := svc.Create(r.Context(), req.Name)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AccountResponse{
			AccountID: account.AccountID.String(),
			Name:      account.Name,
		})
	}
}

// NewGetAccountHandler returns an HTTP handler for fetching an account.
// @Summary Get an account
// @Description Returns the account with the given id
// @Tags account
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} handlers.AccountResponse "Account"
// @Failure 400 {object} handlers.AccountErrorResponse "Invalid account id"
// @Failure 404 {object} handlers.AccountErrorResponse "Account not found"
// @Router /account/{accountID} [get]
// @Security BearerAuth
func NewGetAccountHandler(svc AccountReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AccountErrorResponse{Error: "invalid account id"})
			return
		}

		account, err := svc.GetByID(r.Context(), accountID)
		if err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Account not found"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AccountResponse{
			AccountID: account.AccountID.String(),
			Name:      account.Name,
		})
	}
}

// RegisterCreateAccountHandler registers the route for creating accounts
func RegisterCreateAccountHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/account", h)
}

// RegisterGetAccountHandler registers the route for fetching accounts
func RegisterGetAccountHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/account/{accountID}", h)
}
