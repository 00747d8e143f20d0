package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountDB represents a cardholder account row in the database
type AccountDB struct {
	AccountID uuid.UUID `json:"account_id" db:"account_id"` // Unique account identifier
	Name      string    `json:"name" db:"name"`             // Cardholder display name
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the account was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last account update
}
