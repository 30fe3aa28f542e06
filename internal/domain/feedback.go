package domain

import "time"

// Feedback is a one-way rating a participant leaves for the counterparty of
// a completed swap. Records are immutable and unique per (swap, giver).
type Feedback struct {
	ID         string
	SwapID     string
	GiverID    string
	ReceiverID string
	Rating     int
	Comment    *string
	CreatedAt  time.Time
}

const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether rating is an integer star value in [1,5].
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// CanGiveFeedback reports whether giverID may submit feedback on the swap:
// the swap must be completed, the giver must be a participant, and the giver
// must not have submitted feedback for this swap already.
func CanGiveFeedback(swap *Swap, giverID string, alreadyGiven bool) bool {
	if swap == nil || swap.Status != SwapStatusCompleted {
		return false
	}
	if !swap.IsParticipant(giverID) {
		return false
	}
	return !alreadyGiven
}

// FeedbackReceiver computes the receiver for feedback given by giverID: always
// the other participant on the swap. Returns "" when the giver is not a
// participant.
func FeedbackReceiver(swap *Swap, giverID string) string {
	return swap.OtherParticipant(giverID)
}
