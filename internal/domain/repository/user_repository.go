// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. The phone number carries a uniqueness
	// constraint; a collision surfaces as ErrPhoneAlreadyRegistered from
	// the domain error set, not as a driver error.
	Create(ctx context.Context, user *entity.User) error

	// FindByPhone retrieves a single user by their phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdatePassword replaces the stored password hash for one user in a
	// single id-scoped statement. Returns ErrUserNotFound when no row
	// matched.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
