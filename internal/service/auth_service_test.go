package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/skillswap-service/internal/config"
	"github.com/spec-kit/skillswap-service/internal/domain"
)

type fakeDenylist struct {
	revoked map[string]time.Time
}

func (f *fakeDenylist) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	if f.revoked == nil {
		f.revoked = make(map[string]time.Time)
	}
	f.revoked[tokenID] = expiresAt
	return nil
}

func (f *fakeDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := f.revoked[tokenID]
	return ok, nil
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "unit-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            4,
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users, Denylist: &fakeDenylist{}})
	ctx := context.Background()

	user, token, exp, err := svc.Register(ctx, RegisterInput{
		Email:    "Alice@Example.com",
		Username: "alice",
		Name:     "Alice",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, domain.UserRoleMember, user.Role)
	assert.Equal(t, domain.AvailabilityAnytime, user.Availability)
	assert.Equal(t, domain.VisibilityPublic, user.Visibility)
	assert.True(t, user.Active)

	logged, _, _, err := svc.Login(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterValidatesInput(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users})
	ctx := context.Background()

	// passwords under 8 characters are refused before any account exists
	_, _, _, err := svc.Register(ctx, RegisterInput{Email: "a@b.c", Username: "alice", Name: "A", Password: "short67"})
	assert.Equal(t, http.StatusBadRequest, domainErr(t, err).HTTPStatus)

	_, _, _, err = svc.Register(ctx, RegisterInput{
		Email: "a@b.c", Username: "alice", Name: "A", Password: "pw123456",
		Availability: domain.Availability("midnight"),
	})
	assert.Equal(t, http.StatusBadRequest, domainErr(t, err).HTTPStatus)

	_, _, _, err = svc.Register(ctx, RegisterInput{
		Email: "a@b.c", Username: "alice", Name: "A", Password: "pw123456",
		Visibility: domain.Visibility("hidden"),
	})
	assert.Equal(t, http.StatusBadRequest, domainErr(t, err).HTTPStatus)

	// the two profile enums carry through when supplied
	user, _, _, err := svc.Register(ctx, RegisterInput{
		Email: "a@b.c", Username: "alice", Name: "A", Password: "pw123456",
		Availability: domain.AvailabilityWeekends,
		Visibility:   domain.VisibilityPrivate,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityWeekends, user.Availability)
	assert.Equal(t, domain.VisibilityPrivate, user.Visibility)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users})
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, RegisterInput{Email: "a@b.c", Username: "alice", Name: "A", Password: "pw123456"})
	require.NoError(t, err)

	_, _, _, err = svc.Register(ctx, RegisterInput{Email: "a@b.c", Username: "other", Name: "A", Password: "pw123456"})
	assert.Equal(t, http.StatusConflict, domainErr(t, err).HTTPStatus)

	_, _, _, err = svc.Register(ctx, RegisterInput{Email: "x@y.z", Username: "alice", Name: "A", Password: "pw123456"})
	assert.Equal(t, http.StatusConflict, domainErr(t, err).HTTPStatus)
}

func TestLoginFailures(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users})
	ctx := context.Background()

	user, _, _, err := svc.Register(ctx, RegisterInput{Email: "a@b.c", Username: "alice", Name: "A", Password: "pw123456"})
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "a@b.c", "wrong")
	assert.Equal(t, http.StatusUnauthorized, domainErr(t, err).HTTPStatus)

	_, _, _, err = svc.Login(ctx, "nobody@b.c", "pw123456")
	assert.Equal(t, http.StatusUnauthorized, domainErr(t, err).HTTPStatus)

	user.Banned = true
	require.NoError(t, users.Update(ctx, user))
	_, _, _, err = svc.Login(ctx, "a@b.c", "pw123456")
	assert.Equal(t, http.StatusForbidden, domainErr(t, err).HTTPStatus)

	user.Banned = false
	user.Active = false
	require.NoError(t, users.Update(ctx, user))
	_, _, _, err = svc.Login(ctx, "a@b.c", "pw123456")
	assert.Equal(t, http.StatusForbidden, domainErr(t, err).HTTPStatus)
}

func TestLogoutRevokesToken(t *testing.T) {
	denylist := &fakeDenylist{}
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: newFakeUserRepo(), Denylist: denylist})

	exp := time.Now().Add(time.Hour)
	require.NoError(t, svc.Logout(context.Background(), "token-1", exp))

	revoked, err := denylist.IsRevoked(context.Background(), "token-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}
