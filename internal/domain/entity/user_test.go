package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Profile_StripsPasswordHash(t *testing.T) {
	user := &User{
		ID:           uuid.New(),
		Phone:        "+14155550123",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Now().Add(-time.Hour),
		UpdatedAt:    time.Now(),
	}

	profile := user.Profile()

	require.NotNil(t, profile)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, user.Phone, profile.Phone)
	assert.Equal(t, user.FirstName, profile.FirstName)
	assert.Equal(t, user.LastName, profile.LastName)
	assert.Equal(t, user.CreatedAt, profile.CreatedAt)
	assert.Equal(t, user.UpdatedAt, profile.UpdatedAt)
}

func TestUser_Profile_JSONHasNoPasswordField(t *testing.T) {
	user := &User{
		ID:           uuid.New(),
		Phone:        "+14155550123",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PasswordHash: "supersecrethash",
	}

	raw, err := json.Marshal(user.Profile())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.NotContains(t, fields, "password")
	assert.NotContains(t, fields, "passwordHash")
	assert.NotContains(t, string(raw), "supersecrethash")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "firstName")
	assert.Contains(t, fields, "lastName")
}

func TestUser_Profile_NilReceiver(t *testing.T) {
	var user *User
	assert.Nil(t, user.Profile())
}
