package dto

import (
	"time"

	"github.com/spec-kit/skillswap-service/internal/domain"
)

// BroadcastRequest payload.
type BroadcastRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// AdminSwapResponse is the oversight view of a swap. It deliberately omits
// the viewer affordances (allowed_actions, can_delete) because the admin is
// not a participant and the lifecycle table does not apply to them.
type AdminSwapResponse struct {
	ID             string            `json:"id"`
	RequesterID    string            `json:"requester_id"`
	ProviderID     string            `json:"provider_id"`
	SkillOfferedID *string           `json:"skill_offered_id"`
	SkillWantedID  *string           `json:"skill_wanted_id"`
	Message        *string           `json:"message"`
	Status         domain.SwapStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	CompletedAt    *time.Time        `json:"completed_at"`
}
