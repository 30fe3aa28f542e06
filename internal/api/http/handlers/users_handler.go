package handlers

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skillswap-service/internal/api/dto"
	"github.com/spec-kit/skillswap-service/internal/auth"
	"github.com/spec-kit/skillswap-service/internal/service"
	apperrors "github.com/spec-kit/skillswap-service/pkg/util/errorutil"
)

// UsersHandler manages profile endpoints.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// Me GET /users/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	return c.JSON(fiber.Map{"data": userResponse(principal.User)})
}

// UpdateMe PUT /users/me.
func (h *UsersHandler) UpdateMe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.service.UpdateProfile(c.Context(), principal.User, service.ProfileUpdateInput{
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
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// UploadPhoto POST /users/me/photo. Expects a multipart form with a "photo" file.
func (h *UsersHandler) UploadPhoto(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return apperrors.NewValidationError("photo file required", nil)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewValidationError("unable to read photo", nil)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return apperrors.NewValidationError("unable to read photo", nil)
	}

	user, err := h.service.UploadProfilePhoto(c.Context(), principal.User, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// GetUser GET /users/:id. Members see a public view of each other.
func (h *UsersHandler) GetUser(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	user, err := h.service.GetProfile(c.Context(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	if user.ID == principal.User.ID {
		return c.JSON(fiber.Map{"data": userResponse(user)})
	}
	return c.JSON(fiber.Map{"data": publicProfileResponse(user)})
}

// SearchUsers GET /users?query=. Only public, active, unbanned profiles surface.
func (h *UsersHandler) SearchUsers(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	query := strings.TrimSpace(c.Query("query"))
	users, err := h.service.SearchUsers(c.Context(), query)
	if err != nil {
		return err
	}
	items := make([]dto.PublicProfileResponse, 0, len(users))
	for i := range users {
		items = append(items, publicProfileResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
