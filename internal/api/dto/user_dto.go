package dto

import (
	"time"

	"github.com/spec-kit/skillswap-service/internal/domain"
)

// UserResponse is the owner's view of an account.
type UserResponse struct {
	ID           string              `json:"id"`
	Email        string              `json:"email"`
	Username     string              `json:"username"`
	Name         string              `json:"name"`
	Location     *string             `json:"location"`
	Bio          *string             `json:"bio"`
	PhotoURL     *string             `json:"photo_url"`
	Availability domain.Availability `json:"availability"`
	Visibility   domain.Visibility   `json:"visibility"`
	Role         domain.UserRole     `json:"role"`
	IsActive     bool                `json:"is_active"`
	IsBanned     bool                `json:"is_banned"`
	CreatedAt    time.Time           `json:"created_at"`
}

// PublicProfileResponse is what other members see of a profile.
type PublicProfileResponse struct {
	ID           string              `json:"id"`
	Username     string              `json:"username"`
	Name         string              `json:"name"`
	Location     *string             `json:"location"`
	Bio          *string             `json:"bio"`
	PhotoURL     *string             `json:"photo_url"`
	Availability domain.Availability `json:"availability"`
}

// UpdateProfileRequest payload. Absent fields are left untouched.
type UpdateProfileRequest struct {
	Email        *string              `json:"email"`
	Username     *string              `json:"username"`
	Name         *string              `json:"name"`
	Password     *string              `json:"password"`
	Location     *string              `json:"location"`
	Bio          *string              `json:"bio"`
	Availability *domain.Availability `json:"availability"`
	Visibility   *domain.Visibility   `json:"visibility"`
}
