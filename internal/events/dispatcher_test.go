package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventSwapCreated, func(ctx context.Context, event Event) error {
		got = append(got, event)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e1", Type: EventSwapCreated})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)
}

func TestPublishIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventSwapCreated, func(ctx context.Context, event Event) error {
		called = true
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e1", Type: EventFeedbackGiven})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestPublishContinuesPastHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()

	var order []string
	d.Subscribe(EventBroadcast, func(ctx context.Context, event Event) error {
		order = append(order, "first")
		return errors.New("boom")
	})
	d.Subscribe(EventBroadcast, func(ctx context.Context, event Event) error {
		order = append(order, "second")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventBroadcast})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}
