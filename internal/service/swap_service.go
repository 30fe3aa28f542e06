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

// SwapService drives the swap lifecycle and its audit trail.
type SwapService struct {
	swaps      repository.SwapRepository
	history    repository.SwapHistoryRepository
	users      repository.UserRepository
	offered    repository.SkillOfferedRepository
	wanted     repository.SkillWantedRepository
	dispatcher events.Dispatcher
}

// SwapDependencies bundles what the swap service needs.
type SwapDependencies struct {
	SwapRepo    repository.SwapRepository
	HistoryRepo repository.SwapHistoryRepository
	UserRepo    repository.UserRepository
	OfferedRepo repository.SkillOfferedRepository
	WantedRepo  repository.SkillWantedRepository
	Dispatcher  events.Dispatcher
}

// CreateSwapInput is the payload for a new swap request.
type CreateSwapInput struct {
	ProviderID     string
	SkillOfferedID *string
	SkillWantedID  *string
	Message        *string
}

// SwapView pairs a swap with what the viewer may do next.
type SwapView struct {
	Swap           *domain.Swap
	AllowedActions []domain.SwapAction
	CanDelete      bool
}

// SwapDetail adds the audit trail to a SwapView.
type SwapDetail struct {
	SwapView
	History []domain.SwapHistory
}

// SwapListScope restricts listing to one side of the negotiation.
type SwapListScope string

const (
	SwapScopeAll      SwapListScope = "all"
	SwapScopeSent     SwapListScope = "sent"
	SwapScopeReceived SwapListScope = "received"
)

// NewSwapService constructs the service.
func NewSwapService(deps SwapDependencies) *SwapService {
	return &SwapService{
		swaps:      deps.SwapRepo,
		history:    deps.HistoryRepo,
		users:      deps.UserRepo,
		offered:    deps.OfferedRepo,
		wanted:     deps.WantedRepo,
		dispatcher: deps.Dispatcher,
	}
}

func (s *SwapService) viewFor(swap *domain.Swap, viewerID string) SwapView {
	isRequester := swap.RequesterID == viewerID
	return SwapView{
		Swap:           swap,
		AllowedActions: domain.AllowedActions(swap.Status, isRequester),
		CanDelete:      domain.CanDeleteSwap(swap.Status, isRequester),
	}
}

// Create opens a pending swap request against a provider.
func (s *SwapService) Create(ctx context.Context, requester *domain.User, input CreateSwapInput) (*SwapView, error) {
	if input.ProviderID == "" {
		return nil, apperrors.NewValidationError("provider_id required", nil)
	}
	if input.ProviderID == requester.ID {
		return nil, apperrors.NewValidationError("cannot request a swap with yourself", nil)
	}

	provider, err := s.users.GetByID(ctx, input.ProviderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": input.ProviderID})
		}
		return nil, err
	}
	if !provider.CanParticipate() {
		return nil, apperrors.NewValidationError("provider is not available for swaps", nil)
	}

	if input.SkillOfferedID != nil {
		if _, err := s.offered.GetByID(ctx, *input.SkillOfferedID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("skill", map[string]any{"id": *input.SkillOfferedID})
			}
			return nil, err
		}
	}
	if input.SkillWantedID != nil {
		if _, err := s.wanted.GetByID(ctx, *input.SkillWantedID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("skill", map[string]any{"id": *input.SkillWantedID})
			}
			return nil, err
		}
	}

	swap := &domain.Swap{
		RequesterID:    requester.ID,
		ProviderID:     input.ProviderID,
		SkillOfferedID: input.SkillOfferedID,
		SkillWantedID:  input.SkillWantedID,
		Message:        input.Message,
		Status:         domain.SwapStatusPending,
	}

	duplicate, err := s.swaps.ExistsPendingDuplicate(ctx, swap)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, apperrors.NewConflict("a pending request for this exchange already exists", nil)
	}

	if err := s.swaps.Create(ctx, swap); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventSwapCreated,
		ActorID:   requester.ID,
		Timestamp: time.Now().UTC(),
		Payload: events.SwapCreatedPayload{
			SwapID:      swap.ID,
			RequesterID: swap.RequesterID,
			ProviderID:  swap.ProviderID,
			Message:     swap.Message,
		},
	})

	view := s.viewFor(swap, requester.ID)
	return &view, nil
}

// List returns the viewer's swaps, optionally scoped to one role and one
// lifecycle status.
func (s *SwapService) List(ctx context.Context, viewerID string, scope SwapListScope, status *domain.SwapStatus, limit, offset int) ([]SwapView, error) {
	if status != nil && !domain.ValidSwapStatus(*status) {
		return nil, apperrors.NewValidationError("invalid swap status", map[string]any{"status": *status})
	}

	filter := repository.SwapFilter{Status: status, Limit: limit, Offset: offset}
	switch scope {
	case SwapScopeSent:
		filter.RequesterID = &viewerID
	case SwapScopeReceived:
		filter.ProviderID = &viewerID
	case SwapScopeAll, "":
		filter.ParticipantID = &viewerID
	default:
		return nil, apperrors.NewValidationError("scope must be all, sent or received", map[string]any{"scope": scope})
	}

	swaps, err := s.swaps.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	views := make([]SwapView, 0, len(swaps))
	for i := range swaps {
		views = append(views, s.viewFor(&swaps[i], viewerID))
	}
	return views, nil
}

// Get fetches one swap with its audit trail. Non-participants get not found
// rather than forbidden, so the endpoint does not confirm the swap exists.
func (s *SwapService) Get(ctx context.Context, viewerID, id string) (*SwapDetail, error) {
	swap, err := s.swaps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("swap", map[string]any{"id": id})
		}
		return nil, err
	}
	if !swap.IsParticipant(viewerID) {
		return nil, apperrors.NewNotFound("swap", map[string]any{"id": id})
	}

	history, err := s.history.ListBySwap(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SwapDetail{SwapView: s.viewFor(swap, viewerID), History: history}, nil
}

// UpdateStatus moves a swap to a new lifecycle state on behalf of actorID,
// recording the transition in the audit trail. A non-empty message replaces
// the stored one alongside the transition.
func (s *SwapService) UpdateStatus(ctx context.Context, actorID string, id string, target domain.SwapStatus, message *string) (*SwapView, error) {
	if !domain.ValidSwapStatus(target) {
		return nil, apperrors.NewValidationError("invalid swap status", map[string]any{"status": target})
	}

	swap, err := s.swaps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("swap", map[string]any{"id": id})
		}
		return nil, err
	}
	if !swap.IsParticipant(actorID) {
		return nil, apperrors.NewForbidden("not a participant in this swap")
	}
	if domain.IsTerminal(swap.Status) {
		return nil, apperrors.NewValidationError("swap can no longer be updated", map[string]any{"status": swap.Status})
	}

	isRequester := swap.RequesterID == actorID
	action, ok := domain.ActionForTransition(swap.Status, target, isRequester)
	if !ok {
		return nil, apperrors.NewForbidden("transition not permitted for your role")
	}

	oldStatus := swap.Status
	swap.Status = target
	if target == domain.SwapStatusCompleted {
		now := time.Now().UTC()
		swap.CompletedAt = &now
	}
	if message != nil && *message != "" {
		swap.Message = message
	}

	if err := s.swaps.Update(ctx, swap); err != nil {
		return nil, apperrors.MapError(err)
	}

	entry := &domain.SwapHistory{
		SwapID:    swap.ID,
		ActorID:   actorID,
		Action:    action,
		OldStatus: oldStatus,
		NewStatus: target,
	}
	if err := s.history.Create(ctx, entry); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventSwapStatusChanged,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
		Payload: events.SwapStatusChangedPayload{
			SwapID:    swap.ID,
			Action:    action,
			OldStatus: oldStatus,
			NewStatus: target,
		},
	})

	view := s.viewFor(swap, actorID)
	return &view, nil
}

// Delete removes a swap record. Only the requester may delete, and only while
// the request is still pending.
func (s *SwapService) Delete(ctx context.Context, actorID, id string) error {
	swap, err := s.swaps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("swap", map[string]any{"id": id})
		}
		return err
	}
	if !swap.IsParticipant(actorID) {
		return apperrors.NewNotFound("swap", map[string]any{"id": id})
	}
	if !domain.CanDeleteSwap(swap.Status, swap.RequesterID == actorID) {
		return apperrors.NewForbidden("only the requester may delete a pending swap")
	}

	if err := s.swaps.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventSwapDeleted,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
		Payload: events.SwapDeletedPayload{
			SwapID:     id,
			ProviderID: swap.ProviderID,
		},
	})
	return nil
}
