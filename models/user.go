package models

import "time"

// User represents an account entity used for authentication and ownership
// of calendar events.
// Sensitive fields must never be exposed outside the credential store boundary.
type User struct {
	// UserID is the unique identifier of the user (UUID).
	UserID string `json:"id"`

	// Email is the unique user login identifier.
	Email string `json:"email"`

	// FirstName and LastName are non-sensitive profile fields.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// IsActive reports whether the account may log in.
	IsActive bool `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the redacted view of the user that is safe to hand out
// in authentication responses.
func (u User) Summary() UserSummary {
	return UserSummary{
		UserID:    u.UserID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// UserSummary is the public projection of a [User].
type UserSummary struct {
	UserID    string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
