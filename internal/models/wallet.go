package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletDB represents a segmented balance row in the database.
// Exactly one row exists per (account_id, category) pair.
type WalletDB struct {
	WalletID  uuid.UUID       `json:"wallet_id" db:"wallet_id"`   // Unique wallet identifier
	AccountID uuid.UUID       `json:"account_id" db:"account_id"` // Identifier of the owning account
	Category  Category        `json:"category" db:"category"`     // Benefit category (FOOD, MEAL, CASH)
	Balance   decimal.Decimal `json:"balance" db:"balance"`       // Current balance of the wallet
	CreatedAt time.Time       `json:"created_at" db:"created_at"` // Timestamp when the wallet was created
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"` // Timestamp of the last balance update
}
