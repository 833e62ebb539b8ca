package model

import "time"

// User represents a user in the database. Users are created lazily on first
// Google login; there is no local password credential.
type User struct {
	ID        int64
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GoogleLoginRequest carries the raw ID token obtained from Google sign-in.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token"`
}

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse represents user data safe for API responses.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
