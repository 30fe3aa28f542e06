package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/skillswap-service/internal/auth"
	"github.com/spec-kit/skillswap-service/internal/config"
	"github.com/spec-kit/skillswap-service/internal/domain"
	"github.com/spec-kit/skillswap-service/internal/repository"
	"github.com/spec-kit/skillswap-service/internal/storage"
	apperrors "github.com/spec-kit/skillswap-service/pkg/util/errorutil"
)

// UserService manages member profiles.
type UserService struct {
	users          repository.UserRepository
	photos         storage.PhotoStore
	bcryptCost     int
	maxUploadBytes int64
}

// UserDependencies bundles requirements for the user service.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	PhotoStore storage.PhotoStore
}

// ProfileUpdateInput carries the mutable profile fields. Nil pointers mean
// "leave unchanged".
type ProfileUpdateInput struct {
	Email        *string
	Username     *string
	Name         *string
	Password     *string
	Location     *string
	Bio          *string
	Availability *domain.Availability
	Visibility   *domain.Visibility
}

var allowedPhotoTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, deps UserDependencies) *UserService {
	return &UserService{
		users:          deps.UserRepo,
		photos:         deps.PhotoStore,
		bcryptCost:     cfg.Auth.BcryptCost,
		maxUploadBytes: cfg.Cloudinary.MaxUploadBytes,
	}
}

// UpdateProfile applies a partial update to the caller's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, user *domain.User, input ProfileUpdateInput) (*domain.User, error) {
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != user.Email {
			if _, err := s.users.GetByEmail(ctx, email); err == nil {
				return nil, apperrors.NewConflict("email already registered", nil)
			} else if !errors.Is(err, pgx.ErrNoRows) {
				return nil, err
			}
			user.Email = email
		}
	}
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username != user.Username {
			if _, err := s.users.GetByUsername(ctx, username); err == nil {
				return nil, apperrors.NewConflict("username already taken", nil)
			} else if !errors.Is(err, pgx.ErrNoRows) {
				return nil, err
			}
			user.Username = username
		}
	}
	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.Location != nil {
		user.Location = input.Location
	}
	if input.Bio != nil {
		user.Bio = input.Bio
	}
	if input.Availability != nil {
		if !domain.ValidAvailability(*input.Availability) {
			return nil, apperrors.NewValidationError("invalid availability", map[string]any{"availability": *input.Availability})
		}
		user.Availability = *input.Availability
	}
	if input.Visibility != nil {
		if !domain.ValidVisibility(*input.Visibility) {
			return nil, apperrors.NewValidationError("invalid visibility", map[string]any{"visibility": *input.Visibility})
		}
		user.Visibility = *input.Visibility
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UploadProfilePhoto validates and stores a new profile photo, then records
// its URL on the profile.
func (s *UserService) UploadProfilePhoto(ctx context.Context, user *domain.User, contentType string, data []byte) (*domain.User, error) {
	if s.photos == nil {
		return nil, apperrors.NewDomainError("UPLOADS_DISABLED", "photo uploads not configured", 503, nil)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, apperrors.NewDomainError("PAYLOAD_TOO_LARGE", "file exceeds upload size limit", 413,
			map[string]any{"max_bytes": s.maxUploadBytes})
	}
	if _, ok := allowedPhotoTypes[contentType]; !ok {
		return nil, apperrors.NewDomainError("UNSUPPORTED_MEDIA_TYPE", "upload a JPEG, PNG, or GIF image", 415, nil)
	}

	url, err := s.photos.UploadProfilePhoto(ctx, user.ID, data)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	user.PhotoURL = &url
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// GetProfile returns another member's profile, honoring visibility.
func (s *UserService) GetProfile(ctx context.Context, viewer *domain.User, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": userID})
		}
		return nil, err
	}
	if user.Visibility == domain.VisibilityPrivate && user.ID != viewer.ID {
		return nil, apperrors.NewForbidden("this profile is private")
	}
	return user, nil
}

// SearchUsers lists public, active, unbanned members matching the query. An
// empty query returns all browsable profiles.
func (s *UserService) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	return s.users.SearchPublic(ctx, strings.TrimSpace(query))
}
