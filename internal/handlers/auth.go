package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/drivehub/vehicle-registry/internal/auth"
	"github.com/drivehub/vehicle-registry/internal/models"
	"github.com/drivehub/vehicle-registry/internal/store"
)

// AuthHandler handles admin signup and login.
type AuthHandler struct {
	hasher auth.Hasher
	users  store.UserStore
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(hasher auth.Hasher, users store.UserStore) *AuthHandler {
	return &AuthHandler{hasher: hasher, users: users}
}

// SignUp registers a new admin. The password is stored only as a bcrypt
// hash; the response never carries it.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Username, email and password must not be empty.")
		return
	}

	if _, err := h.users.FindByUsername(req.Username); err == nil {
		respondMessage(w, http.StatusBadRequest, "User already exists.")
		return
	}

	hash, err := h.hasher.HashPassword(req.Password)
	if err != nil {
		log.WithError(err).Error("failed to hash password")
		respondMessage(w, http.StatusInternalServerError, "Failed to register admin.")
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	// A concurrent signup for the same username can slip past the check
	// above while this one is still hashing; the store settles the race.
	if err := h.users.Insert(user); err != nil {
		respondMessage(w, http.StatusBadRequest, "User already exists.")
		return
	}

	respondJSON(w, http.StatusCreated, models.UserResponse{
		Message: "Admin registered successfully.",
		User:    user,
	})
}

// Login verifies an admin's credentials. No session or token is issued;
// success is informational only.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	user, err := h.users.FindByEmail(req.Email)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Admin not found.")
		return
	}

	if err := h.hasher.CheckPassword(req.Password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondMessage(w, http.StatusBadRequest, "Invalid credentials.")
			return
		}
		log.WithError(err).Error("failed to verify password")
		respondMessage(w, http.StatusInternalServerError, "Failed to log in.")
		return
	}

	respondMessage(w, http.StatusOK, "Login successful.")
}
