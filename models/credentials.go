package models

// RegisterRequest carries the credentials submitted on account creation.
// Password is plaintext in transit only; it is hashed before persistence
// and never stored or logged.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries the credentials submitted on sign-in.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
