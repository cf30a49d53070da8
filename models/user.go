package models

import "time"

// User represents an account entity used for authentication and ownership
// scoping. Every Name, Context, and Assignment row belongs to exactly one
// user; repositories never return rows across user boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// Password carries the plaintext password on signup/login requests only.
	// It is never persisted; the store keeps a bcrypt hash instead.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// FullName is the legal name supplied at signup. It seeds the user's
	// first Name row (category "legal").
	FullName string `json:"full_name"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
