package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/skillswap-service/internal/domain"
	"github.com/spec-kit/skillswap-service/internal/events"
)

func newFeedbackFixture(t *testing.T, status domain.SwapStatus) (*FeedbackService, *domain.Swap) {
	t.Helper()
	swaps := newFakeSwapRepo()
	swap := &domain.Swap{RequesterID: "alice", ProviderID: "bob", Status: status}
	require.NoError(t, swaps.Create(context.Background(), swap))

	svc := NewFeedbackService(FeedbackDependencies{
		FeedbackRepo: &fakeFeedbackRepo{},
		SwapRepo:     swaps,
		Dispatcher:   events.NewInMemoryDispatcher(),
	})
	return svc, swap
}

func TestFeedbackBothParticipantsOnceEach(t *testing.T) {
	svc, swap := newFeedbackFixture(t, domain.SwapStatusCompleted)
	ctx := context.Background()

	first, err := svc.Create(ctx, "alice", FeedbackInput{SwapID: swap.ID, Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, "bob", first.ReceiverID)

	second, err := svc.Create(ctx, "bob", FeedbackInput{SwapID: swap.ID, Rating: 3})
	require.NoError(t, err)
	assert.Equal(t, "alice", second.ReceiverID)

	_, err = svc.Create(ctx, "alice", FeedbackInput{SwapID: swap.ID, Rating: 4})
	assert.Equal(t, http.StatusConflict, domainErr(t, err).HTTPStatus)

	records, err := svc.ListBySwap(ctx, "alice", swap.ID)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	received, err := svc.ListReceived(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, 5, received[0].Rating)

	given, err := svc.ListGiven(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, given, 1)
	assert.Equal(t, 3, given[0].Rating)
}

func TestFeedbackRequiresCompletedSwap(t *testing.T) {
	for _, status := range []domain.SwapStatus{domain.SwapStatusPending, domain.SwapStatusAccepted, domain.SwapStatusRejected, domain.SwapStatusCancelled} {
		svc, swap := newFeedbackFixture(t, status)
		_, err := svc.Create(context.Background(), "alice", FeedbackInput{SwapID: swap.ID, Rating: 5})
		assert.Equal(t, http.StatusBadRequest, domainErr(t, err).HTTPStatus, "status %s", status)
	}
}

func TestFeedbackRejectsOutsiders(t *testing.T) {
	svc, swap := newFeedbackFixture(t, domain.SwapStatusCompleted)

	_, err := svc.Create(context.Background(), "mallory", FeedbackInput{SwapID: swap.ID, Rating: 5})
	assert.Equal(t, http.StatusNotFound, domainErr(t, err).HTTPStatus)

	_, err = svc.ListBySwap(context.Background(), "mallory", swap.ID)
	assert.Equal(t, http.StatusNotFound, domainErr(t, err).HTTPStatus)
}

func TestFeedbackValidatesRating(t *testing.T) {
	svc, swap := newFeedbackFixture(t, domain.SwapStatusCompleted)

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.Create(context.Background(), "alice", FeedbackInput{SwapID: swap.ID, Rating: rating})
		assert.Equal(t, http.StatusBadRequest, domainErr(t, err).HTTPStatus, "rating %d", rating)
	}
}

func TestFeedbackUnknownSwap(t *testing.T) {
	svc, _ := newFeedbackFixture(t, domain.SwapStatusCompleted)
	_, err := svc.Create(context.Background(), "alice", FeedbackInput{SwapID: "missing", Rating: 5})
	assert.Equal(t, http.StatusNotFound, domainErr(t, err).HTTPStatus)
}
