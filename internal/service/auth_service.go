package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/skillswap-service/internal/auth"
	"github.com/spec-kit/skillswap-service/internal/config"
	"github.com/spec-kit/skillswap-service/internal/domain"
	"github.com/spec-kit/skillswap-service/internal/repository"
	apperrors "github.com/spec-kit/skillswap-service/pkg/util/errorutil"
)

const minPasswordLength = 8

// AuthService coordinates registration, login and logout flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	denylist   auth.TokenDenylist
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Denylist auth.TokenDenylist
}

// RegisterInput describes a new account.
type RegisterInput struct {
	Email        string
	Username     string
	Name         string
	Password     string
	Location     *string
	Bio          *string
	Availability domain.Availability
	Visibility   domain.Visibility
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		denylist:   deps.Denylist,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Register creates a new member account and issues a session token.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, time.Time, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	username := strings.TrimSpace(input.Username)

	if len(input.Password) < minPasswordLength {
		return nil, "", time.Time{}, apperrors.NewValidationError("password must be at least 8 characters long", nil)
	}
	if input.Availability != "" && !domain.ValidAvailability(input.Availability) {
		return nil, "", time.Time{}, apperrors.NewValidationError("invalid availability", map[string]any{"availability": input.Availability})
	}
	if input.Visibility != "" && !domain.ValidVisibility(input.Visibility) {
		return nil, "", time.Time{}, apperrors.NewValidationError("invalid visibility", map[string]any{"visibility": input.Visibility})
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("username already taken", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	availability := input.Availability
	if availability == "" {
		availability = domain.AvailabilityAnytime
	}
	visibility := input.Visibility
	if visibility == "" {
		visibility = domain.VisibilityPublic
	}

	user := &domain.User{
		Email:        email,
		Username:     username,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		Location:     input.Location,
		Bio:          input.Bio,
		Availability: availability,
		Visibility:   visibility,
		Role:         domain.UserRoleMember,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates a member by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("incorrect email or password")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("incorrect email or password")
	}
	if !user.Active {
		return nil, "", time.Time{}, apperrors.NewForbidden("account deactivated")
	}
	if user.Banned {
		return nil, "", time.Time{}, apperrors.NewForbidden("account banned")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.denylist == nil || tokenID == "" {
		return nil
	}
	return s.denylist.Revoke(ctx, tokenID, expiresAt)
}
