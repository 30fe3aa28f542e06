package dto

import (
	"time"

	"github.com/spec-kit/skillswap-service/internal/domain"
)

// SkillRequest payload, used for both offered and wanted skills.
type SkillRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// SkillOfferedResponse response.
type SkillOfferedResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	Name        string             `json:"name"`
	Description *string            `json:"description"`
	Status      domain.SkillStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// SkillWantedResponse response.
type SkillWantedResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SkillSearchHit is one search result with its owner attached.
type SkillSearchHit struct {
	SkillID     string           `json:"skill_id"`
	SkillType   domain.SkillType `json:"skill_type"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	UserID      string           `json:"user_id"`
	Username    string           `json:"username"`
	DisplayName string           `json:"display_name"`
}
