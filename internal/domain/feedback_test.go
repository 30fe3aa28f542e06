package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completedSwap() *Swap {
	return &Swap{ID: "s1", RequesterID: "alice", ProviderID: "bob", Status: SwapStatusCompleted}
}

func TestValidRating(t *testing.T) {
	assert.False(t, ValidRating(0))
	assert.True(t, ValidRating(1))
	assert.True(t, ValidRating(3))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(6))
	assert.False(t, ValidRating(-1))
}

func TestCanGiveFeedback(t *testing.T) {
	swap := completedSwap()

	assert.True(t, CanGiveFeedback(swap, "alice", false))
	assert.True(t, CanGiveFeedback(swap, "bob", false))

	// one record per giver per swap
	assert.False(t, CanGiveFeedback(swap, "alice", true))

	// outsiders never qualify
	assert.False(t, CanGiveFeedback(swap, "mallory", false))

	// only completed swaps accept feedback
	for _, status := range []SwapStatus{SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCancelled} {
		swap := completedSwap()
		swap.Status = status
		assert.False(t, CanGiveFeedback(swap, "alice", false), "status %s", status)
	}

	assert.False(t, CanGiveFeedback(nil, "alice", false))
}

func TestFeedbackReceiver(t *testing.T) {
	swap := completedSwap()
	assert.Equal(t, "bob", FeedbackReceiver(swap, "alice"))
	assert.Equal(t, "alice", FeedbackReceiver(swap, "bob"))
	assert.Equal(t, "", FeedbackReceiver(swap, "mallory"))
}
