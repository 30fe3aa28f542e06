package dto

import (
	"time"

	"github.com/spec-kit/skillswap-service/internal/domain"
)

// RegisterRequest payload.
type RegisterRequest struct {
	Email        string              `json:"email"`
	Username     string              `json:"username"`
	Name         string              `json:"name"`
	Password     string              `json:"password"`
	Location     *string             `json:"location"`
	Bio          *string             `json:"bio"`
	Availability domain.Availability `json:"availability"`
	Visibility   domain.Visibility   `json:"visibility"`
}

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a freshly issued access token.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}
