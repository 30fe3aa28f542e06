package domain

import "time"

// SwapHistory is an immutable record of one lifecycle transition, always
// attributable to one of the two participants.
type SwapHistory struct {
	ID        string
	SwapID    string
	ActorID   string
	Action    SwapAction
	OldStatus SwapStatus
	NewStatus SwapStatus
	CreatedAt time.Time
}
