// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the sole entity in the system: one account keyed by a unique
// phone number. PasswordHash holds the bcrypt-encoded secret and must
// never leave the service; every outward-facing path goes through
// Profile() instead.
type User struct {
	ID           uuid.UUID // Assigned by the database at creation, immutable.
	Phone        string    // Unique sign-in key, immutable after creation.
	FirstName    string
	LastName     string
	PasswordHash string // bcrypt encoded, never the plaintext password.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the public projection of a User. It deliberately has no
// password field, so handing a Profile to a caller can never leak the
// stored secret.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Phone     string    `json:"phone"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile returns the sanitized projection of the user.
func (u *User) Profile() *Profile {
	if u == nil {
		return nil
	}

	return &Profile{
		ID:        u.ID,
		Phone:     u.Phone,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
