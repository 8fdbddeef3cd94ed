package store

import (
	"errors"
	"sync"

	"github.com/drivehub/vehicle-registry/internal/models"
)

var (
	// ErrUserNotFound is returned when no user has the requested key.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserStore defines the operations the auth handlers need over admin users.
type UserStore interface {
	Insert(user models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Len() int
}

// MemoryUserStore keeps admin users in insertion order. Users are never
// updated or deleted once registered.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
}

// NewMemoryUserStore creates an empty user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

// Insert appends a user, re-checking username uniqueness under the lock.
// Two concurrent signups for the same name can both pass the handler's
// pre-hash check; the second one loses here.
func (s *MemoryUserStore) Insert(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return ErrDuplicateUsername
		}
	}
	s.users = append(s.users, user)
	return nil
}

// FindByUsername finds a user by username.
func (s *MemoryUserStore) FindByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// FindByEmail finds a user by email.
func (s *MemoryUserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// Len reports the number of stored users.
func (s *MemoryUserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
