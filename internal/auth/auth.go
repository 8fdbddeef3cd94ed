package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when a password does not match the
	// stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Hasher abstracts password hashing so handlers can be tested against a
// failing implementation.
type Hasher interface {
	HashPassword(password string) (string, error)
	CheckPassword(password, hash string) error
}

// Service handles password hashing and verification.
type Service struct {
	cost int
}

// NewService creates an auth service with the given bcrypt cost. Costs
// outside bcrypt's valid range fall back to the default.
func NewService(cost int) *Service {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Service{cost: cost}
}

// HashPassword hashes a password using bcrypt. The salt is generated per
// call and embedded in the output, so verification needs no separate salt.
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword verifies a password against a stored hash. A mismatch is
// reported as ErrInvalidCredentials; anything else is a backend fault.
func (s *Service) CheckPassword(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidCredentials
	}
	return fmt.Errorf("failed to verify password: %w", err)
}
