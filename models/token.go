package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of an issued session token:
// the user's email plus the standard claims, with "sub" holding the user ID.
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID and Email are parsed copies of the "sub" and "email" claims.
	UserID string `json:"-"`
	Email  string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
