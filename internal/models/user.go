package models

// User represents an admin account. PasswordHash holds the bcrypt output and
// is never serialized.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// SignUpRequest represents an admin registration request.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the envelope for the signup endpoint.
type UserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}
