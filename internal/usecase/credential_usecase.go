// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"passport/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Phone     string
	FirstName string
	LastName  string
	Password  string
}

// SigninInput defines the data required to sign in.
type SigninInput struct {
	Phone    string
	Password string
}

// ChangePasswordInput defines the data required to rotate a password.
// UserID comes from the authenticated session, never from the request body.
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// --- Output DTOs ---

// SessionOutput returns a freshly minted access token. Both signup and
// signin produce one, so a new account is signed in immediately.
type SessionOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ProfileOutput returns the profile of the authenticated user.
type ProfileOutput struct {
	User *entity.Profile `json:"user"`
}

// ChangePasswordOutput confirms a completed password change.
type ChangePasswordOutput struct {
	Message string `json:"message"`
}

// CredentialUsecase defines the interface for credential-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CredentialUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SessionOutput, error)
	Signin(ctx context.Context, input *SigninInput) (*SessionOutput, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) (*ChangePasswordOutput, error)
}
