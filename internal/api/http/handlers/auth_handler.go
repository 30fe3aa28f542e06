package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skillswap-service/internal/api/dto"
	"github.com/spec-kit/skillswap-service/internal/auth"
	"github.com/spec-kit/skillswap-service/internal/domain"
	"github.com/spec-kit/skillswap-service/internal/service"
	apperrors "github.com/spec-kit/skillswap-service/pkg/util/errorutil"
)

// AuthHandler exposes registration, login and logout.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Username) == "" ||
		strings.TrimSpace(req.Name) == "" || req.Password == "" {
		return apperrors.NewValidationError("email, username, name, password required", nil)
	}

	user, token, exp, err := h.auth.Register(c.Context(), service.RegisterInput{
		Email:        req.Email,
		Username:     req.Username,
		Name:         req.Name,
		Password:     req.Password,
		Location:     req.Location,
		Bio:          req.Bio,
		Availability: req.Availability,
		Visibility:   req.Visibility,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   exp,
		User:        userResponse(user),
	}})
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   exp,
		User:        userResponse(user),
	}})
}

// Logout POST /auth/logout. Revokes the presented token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.auth.Logout(c.Context(), principal.TokenID, principal.TokenExpiresAt); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "logged out"}})
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		Name:         user.Name,
		Location:     user.Location,
		Bio:          user.Bio,
		PhotoURL:     user.PhotoURL,
		Availability: user.Availability,
		Visibility:   user.Visibility,
		Role:         user.Role,
		IsActive:     user.Active,
		IsBanned:     user.Banned,
		CreatedAt:    user.CreatedAt,
	}
}

func publicProfileResponse(user *domain.User) dto.PublicProfileResponse {
	return dto.PublicProfileResponse{
		ID:           user.ID,
		Username:     user.Username,
		Name:         user.Name,
		Location:     user.Location,
		Bio:          user.Bio,
		PhotoURL:     user.PhotoURL,
		Availability: user.Availability,
	}
}
