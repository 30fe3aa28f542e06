package domain

import "time"

// SwapStatus enumerates lifecycle states for swap requests.
type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCancelled SwapStatus = "cancelled"
	SwapStatusCompleted SwapStatus = "completed"
)

// Swap is the aggregate for a negotiated exchange between two members. The
// requester initiates, the provider receives; either side of the exchange may
// reference a concrete skill record.
type Swap struct {
	ID             string
	RequesterID    string
	ProviderID     string
	SkillOfferedID *string
	SkillWantedID  *string
	Message        *string
	Status         SwapStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time
}

// IsParticipant reports whether userID is one of the two fixed roles on the swap.
func (s *Swap) IsParticipant(userID string) bool {
	return s != nil && (s.RequesterID == userID || s.ProviderID == userID)
}

// OtherParticipant returns the counterparty of userID, or "" when userID is
// not on the swap.
func (s *Swap) OtherParticipant(userID string) string {
	switch {
	case s == nil:
		return ""
	case s.RequesterID == userID:
		return s.ProviderID
	case s.ProviderID == userID:
		return s.RequesterID
	}
	return ""
}

// ValidSwapStatus reports whether st is a known lifecycle state.
func ValidSwapStatus(st SwapStatus) bool {
	switch st {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCancelled, SwapStatusCompleted:
		return true
	}
	return false
}
