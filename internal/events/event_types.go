package events

import (
	"time"

	"github.com/spec-kit/skillswap-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSwapCreated       EventType = "swap_created"
	EventSwapStatusChanged EventType = "swap_status_changed"
	EventSwapDeleted       EventType = "swap_deleted"
	EventFeedbackGiven     EventType = "feedback_given"
	EventUserBanned        EventType = "user_banned"
	EventBroadcast         EventType = "platform_broadcast"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SwapCreatedPayload payload.
type SwapCreatedPayload struct {
	SwapID      string  `json:"swap_id"`
	RequesterID string  `json:"requester_id"`
	ProviderID  string  `json:"provider_id"`
	Message     *string `json:"message,omitempty"`
}

// SwapStatusChangedPayload payload.
type SwapStatusChangedPayload struct {
	SwapID    string            `json:"swap_id"`
	Action    domain.SwapAction `json:"action"`
	OldStatus domain.SwapStatus `json:"old_status"`
	NewStatus domain.SwapStatus `json:"new_status"`
}

// SwapDeletedPayload payload.
type SwapDeletedPayload struct {
	SwapID     string `json:"swap_id"`
	ProviderID string `json:"provider_id"`
}

// FeedbackGivenPayload payload.
type FeedbackGivenPayload struct {
	SwapID     string `json:"swap_id"`
	FeedbackID string `json:"feedback_id"`
	ReceiverID string `json:"receiver_id"`
	Rating     int    `json:"rating"`
}

// UserBannedPayload payload.
type UserBannedPayload struct {
	UserID string `json:"user_id"`
	Banned bool   `json:"banned"`
}

// BroadcastPayload payload.
type BroadcastPayload struct {
	Title          string `json:"title"`
	Message        string `json:"message"`
	RecipientCount int64  `json:"recipient_count"`
}
