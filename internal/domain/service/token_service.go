package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the assertion carried by an access token: which user
// it was issued for (subject), their phone number, and the validity
// window. It is never persisted.
type SessionClaims struct {
	Phone string `json:"phone"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and validating session tokens.
type TokenService interface {
	// Issue mints a signed token binding the user id and phone number,
	// valid for a fixed window from issuance. Returns the token and its
	// expiry time. A signing failure is a server-side fault.
	Issue(userID uuid.UUID, phone string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns its claims.
	ValidateToken(tokenString string) (*SessionClaims, error)
}
