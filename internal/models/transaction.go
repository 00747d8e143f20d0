package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDB represents an immutable authorization attempt record in the database.
type TransactionDB struct {
	TransactionID uuid.UUID       `json:"transaction_id" db:"transaction_id"` // Unique transaction identifier
	AccountID     uuid.UUID       `json:"account_id" db:"account_id"`         // Identifier of the account the purchase was made against
	Amount        decimal.Decimal `json:"amount" db:"amount"`                 // Requested purchase amount
	MCC           string          `json:"mcc" db:"mcc"`                       // Merchant-category code as received
	Merchant      string          `json:"merchant" db:"merchant"`             // Merchant name as received
	Outcome       string          `json:"outcome" db:"outcome"`               // Outcome code: "00", "51" or "07"
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`         // Timestamp when the attempt was recorded
}

// AuthorizationEvent is the message published to Kafka for every authorization attempt.
type AuthorizationEvent struct {
	TransactionID string `json:"transaction_id"` // TransactionID is a unique identifier for the attempt.
	Timestamp     int64  `json:"timestamp"`      // Timestamp is the Unix timestamp (in seconds) when the attempt occurred.
	AccountID     string `json:"account_id"`     // AccountID is the identifier of the account.
	Amount        string `json:"amount"`         // Amount is the requested purchase amount as a decimal string.
	MCC           string `json:"mcc"`            // MCC is the merchant-category code as received.
	Merchant      string `json:"merchant"`       // Merchant is the merchant name as received.
	Outcome       string `json:"outcome"`        // Outcome is the resulting code: "00", "51" or "07".
}
