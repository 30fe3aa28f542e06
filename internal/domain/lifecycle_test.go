package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedActions(t *testing.T) {
	cases := []struct {
		name        string
		status      SwapStatus
		isRequester bool
		want        []SwapAction
	}{
		{"pending requester", SwapStatusPending, true, []SwapAction{SwapActionCancel}},
		{"pending provider", SwapStatusPending, false, []SwapAction{SwapActionAccept, SwapActionReject}},
		{"accepted requester", SwapStatusAccepted, true, []SwapAction{SwapActionComplete}},
		{"accepted provider", SwapStatusAccepted, false, []SwapAction{SwapActionComplete}},
		{"rejected requester", SwapStatusRejected, true, nil},
		{"rejected provider", SwapStatusRejected, false, nil},
		{"cancelled requester", SwapStatusCancelled, true, nil},
		{"cancelled provider", SwapStatusCancelled, false, nil},
		{"completed requester", SwapStatusCompleted, true, nil},
		{"completed provider", SwapStatusCompleted, false, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AllowedActions(tc.status, tc.isRequester))
		})
	}
}

func TestActionForTransition(t *testing.T) {
	action, ok := ActionForTransition(SwapStatusPending, SwapStatusCancelled, true)
	require.True(t, ok)
	assert.Equal(t, SwapActionCancel, action)

	action, ok = ActionForTransition(SwapStatusPending, SwapStatusAccepted, false)
	require.True(t, ok)
	assert.Equal(t, SwapActionAccept, action)

	action, ok = ActionForTransition(SwapStatusPending, SwapStatusRejected, false)
	require.True(t, ok)
	assert.Equal(t, SwapActionReject, action)

	action, ok = ActionForTransition(SwapStatusAccepted, SwapStatusCompleted, true)
	require.True(t, ok)
	assert.Equal(t, SwapActionComplete, action)

	// the requester cannot accept their own request
	_, ok = ActionForTransition(SwapStatusPending, SwapStatusAccepted, true)
	assert.False(t, ok)

	// the provider cannot cancel
	_, ok = ActionForTransition(SwapStatusPending, SwapStatusCancelled, false)
	assert.False(t, ok)

	// no transitions out of terminal states
	for _, status := range []SwapStatus{SwapStatusRejected, SwapStatusCancelled, SwapStatusCompleted} {
		for _, target := range []SwapStatus{SwapStatusPending, SwapStatusAccepted, SwapStatusCompleted} {
			_, ok := ActionForTransition(status, target, true)
			assert.False(t, ok, "%s -> %s should not be reachable", status, target)
		}
	}

	// accepted cannot go back to pending or sideways to rejected
	_, ok = ActionForTransition(SwapStatusAccepted, SwapStatusRejected, false)
	assert.False(t, ok)
	_, ok = ActionForTransition(SwapStatusAccepted, SwapStatusCancelled, true)
	assert.False(t, ok)
}

func TestTargetStatus(t *testing.T) {
	target, ok := TargetStatus(SwapActionAccept)
	require.True(t, ok)
	assert.Equal(t, SwapStatusAccepted, target)

	_, ok = TargetStatus(SwapAction("escalate"))
	assert.False(t, ok)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(SwapStatusPending))
	assert.False(t, IsTerminal(SwapStatusAccepted))
	assert.True(t, IsTerminal(SwapStatusRejected))
	assert.True(t, IsTerminal(SwapStatusCancelled))
	assert.True(t, IsTerminal(SwapStatusCompleted))
}

func TestCanDeleteSwap(t *testing.T) {
	assert.True(t, CanDeleteSwap(SwapStatusPending, true))
	assert.False(t, CanDeleteSwap(SwapStatusPending, false))
	assert.False(t, CanDeleteSwap(SwapStatusAccepted, true))
	assert.False(t, CanDeleteSwap(SwapStatusCompleted, true))
	assert.False(t, CanDeleteSwap(SwapStatusCancelled, true))
}
