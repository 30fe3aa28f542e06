package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/skillswap-service/internal/domain"
	"github.com/spec-kit/skillswap-service/internal/events"
)

type adminFixture struct {
	svc     *AdminService
	users   *fakeUserRepo
	offered *fakeOfferedRepo
	swaps   *fakeSwapRepo
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	f := &adminFixture{
		users:   newFakeUserRepo(),
		offered: newFakeOfferedRepo(),
		swaps:   newFakeSwapRepo(),
	}
	f.svc = NewAdminService(AdminDependencies{
		UserRepo:    f.users,
		OfferedRepo: f.offered,
		WantedRepo:  newFakeWantedRepo(),
		SwapRepo:    f.swaps,
		Dispatcher:  events.NewInMemoryDispatcher(),
		Logger:      zap.NewNop(),
	})
	return f
}

func (f *adminFixture) addUser(t *testing.T, id string, role domain.UserRole, banned bool) *domain.User {
	t.Helper()
	user := &domain.User{ID: id, Username: id, Role: role, Active: true, Banned: banned, Visibility: domain.VisibilityPublic}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func TestBanAndUnbanUser(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	f.addUser(t, "alice", domain.UserRoleMember, false)

	banned, err := f.svc.BanUser(ctx, "root", "alice")
	require.NoError(t, err)
	assert.True(t, banned.Banned)

	restored, err := f.svc.UnbanUser(ctx, "root", "alice")
	require.NoError(t, err)
	assert.False(t, restored.Banned)

	// unbanning twice is a client error
	_, err = f.svc.UnbanUser(ctx, "root", "alice")
	assert.Equal(t, http.StatusBadRequest, domainErr(t, err).HTTPStatus)

	_, err = f.svc.BanUser(ctx, "root", "missing")
	assert.Equal(t, http.StatusNotFound, domainErr(t, err).HTTPStatus)
}

func TestBanUserRejectsAdmins(t *testing.T) {
	f := newAdminFixture(t)
	f.addUser(t, "root2", domain.UserRoleAdmin, false)

	_, err := f.svc.BanUser(context.Background(), "root", "root2")
	assert.Equal(t, http.StatusBadRequest, domainErr(t, err).HTTPStatus)
}

func TestPromoteUser(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	f.addUser(t, "alice", domain.UserRoleMember, false)
	f.addUser(t, "mallory", domain.UserRoleMember, true)

	promoted, err := f.svc.PromoteUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleAdmin, promoted.Role)

	_, err = f.svc.PromoteUser(ctx, "mallory")
	assert.Equal(t, http.StatusBadRequest, domainErr(t, err).HTTPStatus)
}

func TestModerateSkill(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	skill := &domain.SkillOffered{UserID: "alice", Name: "Baking", Status: domain.SkillStatusPending}
	require.NoError(t, f.offered.Create(ctx, skill))

	pending, err := f.svc.ListPendingSkills(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	approved, err := f.svc.ModerateSkill(ctx, skill.ID, domain.SkillStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.SkillStatusApproved, approved.Status)

	pending, err = f.svc.ListPendingSkills(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// back to pending is not an allowed moderation outcome
	_, err = f.svc.ModerateSkill(ctx, skill.ID, domain.SkillStatusPending)
	assert.Equal(t, http.StatusBadRequest, domainErr(t, err).HTTPStatus)
}

func TestStatsAggregates(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	f.addUser(t, "alice", domain.UserRoleMember, false)
	f.addUser(t, "bob", domain.UserRoleMember, false)

	require.NoError(t, f.swaps.Create(ctx, &domain.Swap{RequesterID: "alice", ProviderID: "bob", Status: domain.SwapStatusPending}))
	require.NoError(t, f.swaps.Create(ctx, &domain.Swap{RequesterID: "bob", ProviderID: "alice", Status: domain.SwapStatusCompleted}))
	require.NoError(t, f.offered.Create(ctx, &domain.SkillOffered{UserID: "alice", Name: "Baking"}))

	stats, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.ActiveUsers)
	assert.Equal(t, int64(1), stats.SkillsOffered)
	assert.Equal(t, int64(0), stats.SkillsWanted)
	assert.Equal(t, int64(2), stats.TotalSwaps)
	assert.Equal(t, int64(1), stats.SwapsByStatus[domain.SwapStatusPending])
	assert.Equal(t, int64(1), stats.SwapsByStatus[domain.SwapStatusCompleted])
}

func TestBroadcast(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()
	f.addUser(t, "alice", domain.UserRoleMember, false)
	f.addUser(t, "bob", domain.UserRoleMember, false)
	f.addUser(t, "mallory", domain.UserRoleMember, true)

	result, err := f.svc.Broadcast(ctx, "root", "Maintenance", "Down tonight at 22:00 UTC")
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.RecipientCount)

	_, err = f.svc.Broadcast(ctx, "root", "  ", "body")
	assert.Equal(t, http.StatusBadRequest, domainErr(t, err).HTTPStatus)
}
