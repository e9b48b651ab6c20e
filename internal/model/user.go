package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. PasswordHash is never serialised
// into API responses.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// AuthResult is returned by register and login: the authenticated user's
// public fields plus a freshly issued bearer token.
type AuthResult struct {
	User  *User
	Token string
}
