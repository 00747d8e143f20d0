package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, mcc, merchant string, considerMerchant, fallback bool) models.Outcome
}

// AuthorizeRequest represents the JSON body of an authorization attempt
// swagger:model AuthorizeRequest
type AuthorizeRequest struct {
	// Account identifier
	// required: true
	// example: 3fa85f64-5717-4562-b3fc-2c963f66afa6
	Account string `json:"account"`

	// Purchase amount
	// required: true
	// example: 100.50
	TotalAmount decimal.Decimal `json:"totalAmount"`

	// Merchant-category code
	// required: true
	// example: 5411
	MCC string `json:"mcc"`

	// Merchant name
	// required: true
	// example: PADARIA DO ZE               SAO PAULO BR
	Merchant string `json:"merchant"`
}

// AuthorizeResponse is the outcome of an authorization attempt
// swagger:model AuthorizeResponse
type AuthorizeResponse struct {
	// Outcome code: "00" approved, "51" insufficient funds, "07" error
	// example: 00
	Code string `json:"code"`

	// Human-readable message
	// example: Transaction approved
	Message string `json:"message"`
}

// AuthorizeErrorResponse represents an error response for authorization
// swagger:model AuthorizeErrorResponse
type AuthorizeErrorResponse struct {
	// Error message
	// example: invalid request body
	Error string `json:"error"`
}

// NewAuthorizeHandler returns an HTTP handler for authorizing a purchase.
// Declines are business outcomes, not HTTP errors: the handler always answers
// 200 with an outcome code unless the body itself cannot be decoded.
// @Summary Authorize a purchase
// @Description Classifies the purchase by MCC (and optionally merchant name), debits the matching segmented balance and records the attempt
// @Tags transaction
// @Accept json
// @Produce json
// @Param request body handlers.AuthorizeRequest true "Authorization request"
// @Success 200 {object} handlers.AuthorizeResponse "Outcome code and message"
// @Failure 400 {object} handlers.AuthorizeErrorResponse "Invalid request body"
// @Router /transaction [post]
func NewAuthorizeHandler(svc TransactionCreator, considerMerchant, fallback bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AuthorizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AuthorizeErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")

		accountID, err := uuid.Parse(req.Account)
		if err != nil {
			// An unparseable account id still yields an outcome, like any
			// other failure downstream of request decoding.
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(AuthorizeResponse{
				Code:    models.CodeError,
				Message: fmt.Sprintf("Transaction error: invalid account id %q", req.Account),
			})
			return
		}

		outcome := svc.Create(r.Context(), accountID, req.TotalAmount, req.MCC, req.Merchant, considerMerchant, fallback)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AuthorizeResponse{
			Code:    outcome.Code,
			Message: outcome.Message,
		})
	}
}

// RegisterAuthorizeHandler registers the plain authorization route
func RegisterAuthorizeHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/transaction", h)
}

// RegisterAuthorizeWithFallbackHandler registers the authorization route with cash fallback
func RegisterAuthorizeWithFallbackHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/transaction/with-fallback", h)
}

// RegisterMerchantAwareAuthorizeHandler registers the merchant-aware authorization route
func RegisterMerchantAwareAuthorizeHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/l2/transaction", h)
}

// RegisterMerchantAwareAuthorizeWithFallbackHandler registers the merchant-aware authorization route with cash fallback
func RegisterMerchantAwareAuthorizeWithFallbackHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/l2/transaction/with-fallback", h)
}
