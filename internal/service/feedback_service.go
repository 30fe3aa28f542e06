package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/skillswap-service/internal/domain"
	"github.com/spec-kit/skillswap-service/internal/events"
	"github.com/spec-kit/skillswap-service/internal/repository"
	apperrors "github.com/spec-kit/skillswap-service/pkg/util/errorutil"
)

// FeedbackService gates feedback behind a completed swap.
type FeedbackService struct {
	feedback   repository.FeedbackRepository
	swaps      repository.SwapRepository
	dispatcher events.Dispatcher
}

// FeedbackDependencies bundles what the feedback service needs.
type FeedbackDependencies struct {
	FeedbackRepo repository.FeedbackRepository
	SwapRepo     repository.SwapRepository
	Dispatcher   events.Dispatcher
}

// FeedbackInput is the payload for submitting feedback on a swap.
type FeedbackInput struct {
	SwapID  string
	Rating  int
	Comment *string
}

// NewFeedbackService constructs the service.
func NewFeedbackService(deps FeedbackDependencies) *FeedbackService {
	return &FeedbackService{
		feedback:   deps.FeedbackRepo,
		swaps:      deps.SwapRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create submits feedback from giverID on a completed swap. The receiver is
// always the counterparty; a giver may leave at most one record per swap.
func (s *FeedbackService) Create(ctx context.Context, giverID string, input FeedbackInput) (*domain.Feedback, error) {
	if !domain.ValidRating(input.Rating) {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5", map[string]any{"rating": input.Rating})
	}

	swap, err := s.swaps.GetByID(ctx, input.SwapID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("swap", map[string]any{"id": input.SwapID})
		}
		return nil, err
	}
	if !swap.IsParticipant(giverID) {
		return nil, apperrors.NewNotFound("swap", map[string]any{"id": input.SwapID})
	}
	if swap.Status != domain.SwapStatusCompleted {
		return nil, apperrors.NewValidationError("feedback requires a completed swap", map[string]any{"status": swap.Status})
	}

	alreadyGiven, err := s.feedback.ExistsForGiver(ctx, swap.ID, giverID)
	if err != nil {
		return nil, err
	}
	if !domain.CanGiveFeedback(swap, giverID, alreadyGiven) {
		return nil, apperrors.NewConflict("feedback already submitted for this swap", nil)
	}

	record := &domain.Feedback{
		SwapID:     swap.ID,
		GiverID:    giverID,
		ReceiverID: domain.FeedbackReceiver(swap, giverID),
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := s.feedback.Create(ctx, record); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventFeedbackGiven,
		ActorID:   giverID,
		Timestamp: time.Now().UTC(),
		Payload: events.FeedbackGivenPayload{
			SwapID:     record.SwapID,
			FeedbackID: record.ID,
			ReceiverID: record.ReceiverID,
			Rating:     record.Rating,
		},
	})
	return record, nil
}

// ListReceived returns feedback left for the given user.
func (s *FeedbackService) ListReceived(ctx context.Context, userID string) ([]domain.Feedback, error) {
	return s.feedback.ListByReceiver(ctx, userID)
}

// ListGiven returns feedback the given user has left for others.
func (s *FeedbackService) ListGiven(ctx context.Context, userID string) ([]domain.Feedback, error) {
	return s.feedback.ListByGiver(ctx, userID)
}

// ListBySwap returns all feedback on a swap, visible to participants only.
func (s *FeedbackService) ListBySwap(ctx context.Context, viewerID, swapID string) ([]domain.Feedback, error) {
	swap, err := s.swaps.GetByID(ctx, swapID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("swap", map[string]any{"id": swapID})
		}
		return nil, err
	}
	if !swap.IsParticipant(viewerID) {
		return nil, apperrors.NewNotFound("swap", map[string]any{"id": swapID})
	}
	return s.feedback.ListBySwap(ctx, swapID)
}
