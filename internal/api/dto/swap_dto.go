package dto

import (
	"time"

	"github.com/spec-kit/skillswap-service/internal/domain"
)

// CreateSwapRequest payload.
type CreateSwapRequest struct {
	ProviderID     string  `json:"provider_id"`
	SkillOfferedID *string `json:"skill_offered_id"`
	SkillWantedID  *string `json:"skill_wanted_id"`
	Message        *string `json:"message"`
}

// UpdateSwapRequest payload. Message, when present, replaces the stored one
// alongside the status change.
type UpdateSwapRequest struct {
	Status  domain.SwapStatus `json:"status"`
	Message *string           `json:"message"`
}

// SwapResponse is one swap together with the viewer's affordances: the
// lifecycle actions currently open to them and whether they may delete the
// record outright.
type SwapResponse struct {
	ID             string              `json:"id"`
	RequesterID    string              `json:"requester_id"`
	ProviderID     string              `json:"provider_id"`
	SkillOfferedID *string             `json:"skill_offered_id"`
	SkillWantedID  *string             `json:"skill_wanted_id"`
	Message        *string             `json:"message"`
	Status         domain.SwapStatus   `json:"status"`
	AllowedActions []domain.SwapAction `json:"allowed_actions"`
	CanDelete      bool                `json:"can_delete"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	CompletedAt    *time.Time          `json:"completed_at"`
}

// SwapDetailResponse adds the audit trail.
type SwapDetailResponse struct {
	SwapResponse
	History []SwapHistoryResponse `json:"history"`
}

// SwapHistoryResponse is one recorded lifecycle transition.
type SwapHistoryResponse struct {
	ID        string            `json:"id"`
	ActorID   string            `json:"actor_id"`
	Action    domain.SwapAction `json:"action"`
	OldStatus domain.SwapStatus `json:"old_status"`
	NewStatus domain.SwapStatus `json:"new_status"`
	CreatedAt time.Time         `json:"created_at"`
}
