package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/skillswap-service/internal/domain"
	"github.com/spec-kit/skillswap-service/internal/events"
	"github.com/spec-kit/skillswap-service/internal/repository"
	apperrors "github.com/spec-kit/skillswap-service/pkg/util/errorutil"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 30 * time.Second
)

// AdminService covers moderation, user management and platform oversight.
type AdminService struct {
	users      repository.UserRepository
	offered    repository.SkillOfferedRepository
	wanted     repository.SkillWantedRepository
	swaps      repository.SwapRepository
	cache      *redis.Client
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AdminDependencies bundles what the admin service needs.
type AdminDependencies struct {
	UserRepo    repository.UserRepository
	OfferedRepo repository.SkillOfferedRepository
	WantedRepo  repository.SkillWantedRepository
	SwapRepo    repository.SwapRepository
	Cache       *redis.Client
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// PlatformStats is the admin dashboard aggregate.
type PlatformStats struct {
	TotalUsers    int64                       `json:"total_users"`
	ActiveUsers   int64                       `json:"active_users"`
	SkillsOffered int64                       `json:"skills_offered"`
	SkillsWanted  int64                       `json:"skills_wanted"`
	TotalSwaps    int64                       `json:"total_swaps"`
	SwapsByStatus map[domain.SwapStatus]int64 `json:"swaps_by_status"`
	GeneratedAt   time.Time                   `json:"generated_at"`
}

// BroadcastResult reports how many members a platform message targets.
type BroadcastResult struct {
	Title          string `json:"title"`
	Message        string `json:"message"`
	RecipientCount int64  `json:"recipient_count"`
}

// NewAdminService constructs the service.
func NewAdminService(deps AdminDependencies) *AdminService {
	return &AdminService{
		users:      deps.UserRepo,
		offered:    deps.OfferedRepo,
		wanted:     deps.WantedRepo,
		swaps:      deps.SwapRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// ListUsers pages through all accounts.
func (s *AdminService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.users.List(ctx, limit, offset)
}

func (s *AdminService) getUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}
	return user, nil
}

// BanUser bars a member from the platform. Admin accounts cannot be banned.
func (s *AdminService) BanUser(ctx context.Context, actorID, userID string) (*domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !domain.CanBanUser(user) {
		return nil, apperrors.NewValidationError("cannot ban an admin", nil)
	}
	user.Banned = true
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserBanned,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
		Payload:   events.UserBannedPayload{UserID: user.ID, Banned: true},
	})
	return user, nil
}

// UnbanUser restores a banned member.
func (s *AdminService) UnbanUser(ctx context.Context, actorID, userID string) (*domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !domain.CanUnbanUser(user) || !user.Banned {
		return nil, apperrors.NewValidationError("user is not banned", nil)
	}
	user.Banned = false
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserBanned,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
		Payload:   events.UserBannedPayload{UserID: user.ID, Banned: false},
	})
	return user, nil
}

// PromoteUser grants admin rights. Banned accounts cannot be promoted.
func (s *AdminService) PromoteUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !domain.CanPromoteUser(user) {
		return nil, apperrors.NewValidationError("cannot promote a banned user", nil)
	}
	user.Role = domain.UserRoleAdmin
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// ListPendingSkills returns offered skills awaiting moderation.
func (s *AdminService) ListPendingSkills(ctx context.Context) ([]domain.SkillOffered, error) {
	return s.offered.ListByStatus(ctx, domain.SkillStatusPending)
}

// ModerateSkill resolves a pending offered skill to approved or rejected.
func (s *AdminService) ModerateSkill(ctx context.Context, skillID string, status domain.SkillStatus) (*domain.SkillOffered, error) {
	if status != domain.SkillStatusApproved && status != domain.SkillStatusRejected {
		return nil, apperrors.NewValidationError("status must be approved or rejected", map[string]any{"status": status})
	}
	skill, err := s.offered.GetByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("skill", map[string]any{"id": skillID})
		}
		return nil, err
	}
	skill.Status = status
	if err := s.offered.Update(ctx, skill); err != nil {
		return nil, apperrors.MapError(err)
	}
	return skill, nil
}

// ListSwaps pages through all swaps, optionally filtered by status.
func (s *AdminService) ListSwaps(ctx context.Context, status *domain.SwapStatus, limit, offset int) ([]domain.Swap, error) {
	if status != nil && !domain.ValidSwapStatus(*status) {
		return nil, apperrors.NewValidationError("invalid swap status", map[string]any{"status": *status})
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.swaps.ListWithFilter(ctx, repository.SwapFilter{Status: status, Limit: limit, Offset: offset})
}

// Stats aggregates platform counters. Results are cached briefly in Redis so
// a busy dashboard does not hammer the database.
func (s *AdminService) Stats(ctx context.Context) (*PlatformStats, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, statsCacheKey).Result(); err == nil {
			var cached PlatformStats
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	stats := &PlatformStats{GeneratedAt: time.Now().UTC()}
	var err error
	if stats.TotalUsers, err = s.users.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveUsers, err = s.swaps.CountDistinctParticipants(ctx); err != nil {
		return nil, err
	}
	if stats.SkillsOffered, err = s.offered.Count(ctx); err != nil {
		return nil, err
	}
	if stats.SkillsWanted, err = s.wanted.Count(ctx); err != nil {
		return nil, err
	}
	if stats.SwapsByStatus, err = s.swaps.CountByStatus(ctx); err != nil {
		return nil, err
	}
	for _, count := range stats.SwapsByStatus {
		stats.TotalSwaps += count
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache platform stats", zap.Error(err))
			}
		}
	}
	return stats, nil
}

// Broadcast publishes a platform-wide announcement to all active, unbanned
// members. Delivery happens asynchronously through the notification worker.
func (s *AdminService) Broadcast(ctx context.Context, actorID, title, message string) (*BroadcastResult, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" || message == "" {
		return nil, apperrors.NewValidationError("title and message required", nil)
	}

	recipients, err := s.users.CountActiveUnbanned(ctx)
	if err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventBroadcast,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
		Payload: events.BroadcastPayload{
			Title:          title,
			Message:        message,
			RecipientCount: recipients,
		},
	})
	return &BroadcastResult{Title: title, Message: message, RecipientCount: recipients}, nil
}
