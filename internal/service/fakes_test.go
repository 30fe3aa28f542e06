package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/skillswap-service/internal/domain"
	"github.com/spec-kit/skillswap-service/internal/repository"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	user.UpdatedAt = time.Now()
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context, limit, offset int) ([]domain.User, error) {
	var result []domain.User
	for _, user := range f.users {
		result = append(result, *user)
	}
	return result, nil
}

func (f *fakeUserRepo) SearchPublic(_ context.Context, query string) ([]domain.User, error) {
	var result []domain.User
	for _, user := range f.users {
		if user.Visibility != domain.VisibilityPublic || !user.CanParticipate() {
			continue
		}
		if strings.Contains(strings.ToLower(user.Name), strings.ToLower(query)) ||
			strings.Contains(strings.ToLower(user.Username), strings.ToLower(query)) {
			result = append(result, *user)
		}
	}
	return result, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountActiveUnbanned(_ context.Context) (int64, error) {
	var count int64
	for _, user := range f.users {
		if user.CanParticipate() {
			count++
		}
	}
	return count, nil
}

type fakeOfferedRepo struct {
	skills      map[string]*domain.SkillOffered
	searchCalls int
}

func newFakeOfferedRepo() *fakeOfferedRepo {
	return &fakeOfferedRepo{skills: make(map[string]*domain.SkillOffered)}
}

func (f *fakeOfferedRepo) Create(_ context.Context, skill *domain.SkillOffered) error {
	skill.ID = uuid.NewString()
	skill.CreatedAt = time.Now()
	skill.UpdatedAt = skill.CreatedAt
	clone := *skill
	f.skills[skill.ID] = &clone
	return nil
}

func (f *fakeOfferedRepo) Update(_ context.Context, skill *domain.SkillOffered) error {
	if _, ok := f.skills[skill.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *skill
	f.skills[skill.ID] = &clone
	return nil
}

func (f *fakeOfferedRepo) GetByID(_ context.Context, id string) (*domain.SkillOffered, error) {
	skill, ok := f.skills[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *skill
	return &clone, nil
}

func (f *fakeOfferedRepo) ListByUser(_ context.Context, userID string) ([]domain.SkillOffered, error) {
	var result []domain.SkillOffered
	for _, skill := range f.skills {
		if skill.UserID == userID {
			result = append(result, *skill)
		}
	}
	return result, nil
}

func (f *fakeOfferedRepo) ListByStatus(_ context.Context, status domain.SkillStatus) ([]domain.SkillOffered, error) {
	var result []domain.SkillOffered
	for _, skill := range f.skills {
		if skill.Status == status {
			result = append(result, *skill)
		}
	}
	return result, nil
}

func (f *fakeOfferedRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.skills[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.skills, id)
	return nil
}

func (f *fakeOfferedRepo) Search(_ context.Context, query string) ([]domain.SkillSearchResult, error) {
	f.searchCalls++
	var result []domain.SkillSearchResult
	for _, skill := range f.skills {
		if skill.Status != domain.SkillStatusApproved {
			continue
		}
		if strings.Contains(strings.ToLower(skill.Name), strings.ToLower(query)) {
			result = append(result, domain.SkillSearchResult{
				SkillID:   skill.ID,
				SkillType: domain.SkillTypeOffered,
				Name:      skill.Name,
				UserID:    skill.UserID,
			})
		}
	}
	return result, nil
}

func (f *fakeOfferedRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.skills)), nil
}

type fakeWantedRepo struct {
	skills      map[string]*domain.SkillWanted
	searchCalls int
}

func newFakeWantedRepo() *fakeWantedRepo {
	return &fakeWantedRepo{skills: make(map[string]*domain.SkillWanted)}
}

func (f *fakeWantedRepo) Create(_ context.Context, skill *domain.SkillWanted) error {
	skill.ID = uuid.NewString()
	skill.CreatedAt = time.Now()
	skill.UpdatedAt = skill.CreatedAt
	clone := *skill
	f.skills[skill.ID] = &clone
	return nil
}

func (f *fakeWantedRepo) Update(_ context.Context, skill *domain.SkillWanted) error {
	if _, ok := f.skills[skill.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *skill
	f.skills[skill.ID] = &clone
	return nil
}

func (f *fakeWantedRepo) GetByID(_ context.Context, id string) (*domain.SkillWanted, error) {
	skill, ok := f.skills[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *skill
	return &clone, nil
}

func (f *fakeWantedRepo) ListByUser(_ context.Context, userID string) ([]domain.SkillWanted, error) {
	var result []domain.SkillWanted
	for _, skill := range f.skills {
		if skill.UserID == userID {
			result = append(result, *skill)
		}
	}
	return result, nil
}

func (f *fakeWantedRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.skills[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.skills, id)
	return nil
}

func (f *fakeWantedRepo) Search(_ context.Context, query string) ([]domain.SkillSearchResult, error) {
	f.searchCalls++
	var result []domain.SkillSearchResult
	for _, skill := range f.skills {
		if strings.Contains(strings.ToLower(skill.Name), strings.ToLower(query)) {
			result = append(result, domain.SkillSearchResult{
				SkillID:   skill.ID,
				SkillType: domain.SkillTypeWanted,
				Name:      skill.Name,
				UserID:    skill.UserID,
			})
		}
	}
	return result, nil
}

func (f *fakeWantedRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.skills)), nil
}

type fakeSwapRepo struct {
	swaps map[string]*domain.Swap
}

func newFakeSwapRepo() *fakeSwapRepo {
	return &fakeSwapRepo{swaps: make(map[string]*domain.Swap)}
}

func (f *fakeSwapRepo) Create(_ context.Context, swap *domain.Swap) error {
	swap.ID = uuid.NewString()
	swap.CreatedAt = time.Now()
	swap.UpdatedAt = swap.CreatedAt
	clone := *swap
	f.swaps[swap.ID] = &clone
	return nil
}

func (f *fakeSwapRepo) Update(_ context.Context, swap *domain.Swap) error {
	if _, ok := f.swaps[swap.ID]; !ok {
		return pgx.ErrNoRows
	}
	swap.UpdatedAt = time.Now()
	clone := *swap
	f.swaps[swap.ID] = &clone
	return nil
}

func (f *fakeSwapRepo) GetByID(_ context.Context, id string) (*domain.Swap, error) {
	swap, ok := f.swaps[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *swap
	return &clone, nil
}

func (f *fakeSwapRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.swaps[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.swaps, id)
	return nil
}

func (f *fakeSwapRepo) ListWithFilter(_ context.Context, filter repository.SwapFilter) ([]domain.Swap, error) {
	var result []domain.Swap
	for _, swap := range f.swaps {
		if filter.RequesterID != nil && swap.RequesterID != *filter.RequesterID {
			continue
		}
		if filter.ProviderID != nil && swap.ProviderID != *filter.ProviderID {
			continue
		}
		if filter.ParticipantID != nil && !swap.IsParticipant(*filter.ParticipantID) {
			continue
		}
		if filter.Status != nil && swap.Status != *filter.Status {
			continue
		}
		result = append(result, *swap)
	}
	return result, nil
}

func (f *fakeSwapRepo) ExistsPendingDuplicate(_ context.Context, candidate *domain.Swap) (bool, error) {
	for _, swap := range f.swaps {
		if swap.Status != domain.SwapStatusPending {
			continue
		}
		if swap.RequesterID == candidate.RequesterID && swap.ProviderID == candidate.ProviderID &&
			ptrEq(swap.SkillOfferedID, candidate.SkillOfferedID) && ptrEq(swap.SkillWantedID, candidate.SkillWantedID) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSwapRepo) CountByStatus(_ context.Context) (map[domain.SwapStatus]int64, error) {
	counts := make(map[domain.SwapStatus]int64)
	for _, swap := range f.swaps {
		counts[swap.Status]++
	}
	return counts, nil
}

func (f *fakeSwapRepo) CountDistinctParticipants(_ context.Context) (int64, error) {
	seen := make(map[string]struct{})
	for _, swap := range f.swaps {
		seen[swap.RequesterID] = struct{}{}
		seen[swap.ProviderID] = struct{}{}
	}
	return int64(len(seen)), nil
}

func ptrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type fakeHistoryRepo struct {
	entries []domain.SwapHistory
}

func (f *fakeHistoryRepo) Create(_ context.Context, entry *domain.SwapHistory) error {
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeHistoryRepo) ListBySwap(_ context.Context, swapID string) ([]domain.SwapHistory, error) {
	var result []domain.SwapHistory
	for _, entry := range f.entries {
		if entry.SwapID == swapID {
			result = append(result, entry)
		}
	}
	return result, nil
}

type fakeFeedbackRepo struct {
	records []domain.Feedback
}

func (f *fakeFeedbackRepo) Create(_ context.Context, feedback *domain.Feedback) error {
	feedback.ID = uuid.NewString()
	feedback.CreatedAt = time.Now()
	f.records = append(f.records, *feedback)
	return nil
}

func (f *fakeFeedbackRepo) ExistsForGiver(_ context.Context, swapID, giverID string) (bool, error) {
	for _, record := range f.records {
		if record.SwapID == swapID && record.GiverID == giverID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFeedbackRepo) ListBySwap(_ context.Context, swapID string) ([]domain.Feedback, error) {
	var result []domain.Feedback
	for _, record := range f.records {
		if record.SwapID == swapID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (f *fakeFeedbackRepo) ListByGiver(_ context.Context, giverID string) ([]domain.Feedback, error) {
	var result []domain.Feedback
	for _, record := range f.records {
		if record.GiverID == giverID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (f *fakeFeedbackRepo) ListByReceiver(_ context.Context, receiverID string) ([]domain.Feedback, error) {
	var result []domain.Feedback
	for _, record := range f.records {
		if record.ReceiverID == receiverID {
			result = append(result, record)
		}
	}
	return result, nil
}
