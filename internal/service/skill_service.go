package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/skillswap-service/internal/domain"
	"github.com/spec-kit/skillswap-service/internal/repository"
	apperrors "github.com/spec-kit/skillswap-service/pkg/util/errorutil"
)

// SkillService manages offered and wanted skill listings plus search.
type SkillService struct {
	offered repository.SkillOfferedRepository
	wanted  repository.SkillWantedRepository
}

// SkillDependencies bundles repositories for the skill service.
type SkillDependencies struct {
	OfferedRepo repository.SkillOfferedRepository
	WantedRepo  repository.SkillWantedRepository
}

// SkillInput describes a skill create/update payload.
type SkillInput struct {
	Name        string
	Description *string
}

// NewSkillService constructs the service.
func NewSkillService(deps SkillDependencies) *SkillService {
	return &SkillService{offered: deps.OfferedRepo, wanted: deps.WantedRepo}
}

// CreateOffered records a new offered skill. It enters moderation as pending.
func (s *SkillService) CreateOffered(ctx context.Context, ownerID string, input SkillInput) (*domain.SkillOffered, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	skill := &domain.SkillOffered{
		UserID:      ownerID,
		Name:        name,
		Description: input.Description,
		Status:      domain.SkillStatusPending,
	}
	if err := s.offered.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// ListOffered returns the caller's offered skills.
func (s *SkillService) ListOffered(ctx context.Context, ownerID string) ([]domain.SkillOffered, error) {
	return s.offered.ListByUser(ctx, ownerID)
}

// GetOffered fetches one offered skill.
func (s *SkillService) GetOffered(ctx context.Context, id string) (*domain.SkillOffered, error) {
	skill, err := s.offered.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("skill", map[string]any{"id": id})
		}
		return nil, err
	}
	return skill, nil
}

// UpdateOffered updates an offered skill owned by the caller. Moderation
// status can only be changed through the admin surface, so a non-admin
// caller's status input is ignored.
func (s *SkillService) UpdateOffered(ctx context.Context, actor *domain.User, id string, input SkillInput, status *domain.SkillStatus) (*domain.SkillOffered, error) {
	skill, err := s.GetOffered(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill.UserID != actor.ID {
		return nil, apperrors.NewNotFound("skill", map[string]any{"id": id})
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		skill.Name = name
	}
	if input.Description != nil {
		skill.Description = input.Description
	}
	if status != nil && actor.IsAdmin() {
		if !domain.ValidSkillStatus(*status) {
			return nil, apperrors.NewValidationError("invalid skill status", map[string]any{"status": *status})
		}
		skill.Status = *status
	}
	if err := s.offered.Update(ctx, skill); err != nil {
		return nil, apperrors.MapError(err)
	}
	return skill, nil
}

// DeleteOffered removes an offered skill owned by the caller.
func (s *SkillService) DeleteOffered(ctx context.Context, actorID, id string) error {
	skill, err := s.GetOffered(ctx, id)
	if err != nil {
		return err
	}
	if skill.UserID != actorID {
		return apperrors.NewNotFound("skill", map[string]any{"id": id})
	}
	return apperrors.MapError(s.offered.Delete(ctx, id))
}

// CreateWanted records a new wanted skill.
func (s *SkillService) CreateWanted(ctx context.Context, ownerID string, input SkillInput) (*domain.SkillWanted, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	skill := &domain.SkillWanted{
		UserID:      ownerID,
		Name:        name,
		Description: input.Description,
	}
	if err := s.wanted.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// ListWanted returns the caller's wanted skills.
func (s *SkillService) ListWanted(ctx context.Context, ownerID string) ([]domain.SkillWanted, error) {
	return s.wanted.ListByUser(ctx, ownerID)
}

// GetWanted fetches one wanted skill.
func (s *SkillService) GetWanted(ctx context.Context, id string) (*domain.SkillWanted, error) {
	skill, err := s.wanted.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("skill", map[string]any{"id": id})
		}
		return nil, err
	}
	return skill, nil
}

// UpdateWanted updates a wanted skill owned by the caller.
func (s *SkillService) UpdateWanted(ctx context.Context, actorID, id string, input SkillInput) (*domain.SkillWanted, error) {
	skill, err := s.GetWanted(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill.UserID != actorID {
		return nil, apperrors.NewNotFound("skill", map[string]any{"id": id})
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		skill.Name = name
	}
	if input.Description != nil {
		skill.Description = input.Description
	}
	if err := s.wanted.Update(ctx, skill); err != nil {
		return nil, apperrors.MapError(err)
	}
	return skill, nil
}

// DeleteWanted removes a wanted skill owned by the caller.
func (s *SkillService) DeleteWanted(ctx context.Context, actorID, id string) error {
	skill, err := s.GetWanted(ctx, id)
	if err != nil {
		return err
	}
	if skill.UserID != actorID {
		return apperrors.NewNotFound("skill", map[string]any{"id": id})
	}
	return apperrors.MapError(s.wanted.Delete(ctx, id))
}

// Search runs a fresh query against skill listings. The query is required;
// skillType restricts the search to one side of the marketplace and must be
// "offered" or "wanted" when present.
func (s *SkillService) Search(ctx context.Context, query string, skillType *domain.SkillType) ([]domain.SkillSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("query required", nil)
	}
	if skillType != nil && *skillType != domain.SkillTypeOffered && *skillType != domain.SkillTypeWanted {
		return nil, apperrors.NewValidationError("skill_type must be offered or wanted", map[string]any{"skill_type": *skillType})
	}

	var results []domain.SkillSearchResult
	if skillType == nil || *skillType == domain.SkillTypeOffered {
		hits, err := s.offered.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		results = append(results, hits...)
	}
	if skillType == nil || *skillType == domain.SkillTypeWanted {
		hits, err := s.wanted.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		results = append(results, hits...)
	}
	return results, nil
}
