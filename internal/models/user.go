package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a backoffice user row in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Unique user identifier
	Username     string    `json:"username" db:"username"`           // Unique username
	Email        string    `json:"email" db:"email"`                 // Unique email
	PasswordHash string    `json:"password_hash" db:"password_hash"` // bcrypt password hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Timestamp when the user was created
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Timestamp of the last user update
}
