package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/drivehub/vehicle-registry/internal/models"
)

func newTestUser(username, email string) models.User {
	return models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$04$fakehashfakehashfakehash",
	}
}

func TestMemoryUserStore_Insert(t *testing.T) {
	s := NewMemoryUserStore()

	err := s.Insert(newTestUser("alice", "alice@example.com"))
	assert.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryUserStore_Insert_DuplicateUsername(t *testing.T) {
	s := NewMemoryUserStore()

	assert.NoError(t, s.Insert(newTestUser("alice", "alice@example.com")))

	// Same username with a different email still conflicts.
	err := s.Insert(newTestUser("alice", "other@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryUserStore_FindByUsername(t *testing.T) {
	s := NewMemoryUserStore()
	assert.NoError(t, s.Insert(newTestUser("alice", "alice@example.com")))

	user, err := s.FindByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = s.FindByUsername("bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryUserStore_FindByEmail(t *testing.T) {
	s := NewMemoryUserStore()
	assert.NoError(t, s.Insert(newTestUser("alice", "alice@example.com")))

	user, err := s.FindByEmail("alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = s.FindByEmail("missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
