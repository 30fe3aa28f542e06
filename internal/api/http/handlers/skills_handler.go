package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skillswap-service/internal/api/dto"
	"github.com/spec-kit/skillswap-service/internal/auth"
	"github.com/spec-kit/skillswap-service/internal/domain"
	"github.com/spec-kit/skillswap-service/internal/service"
	apperrors "github.com/spec-kit/skillswap-service/pkg/util/errorutil"
)

// SkillsHandler manages skill listings and search.
type SkillsHandler struct {
	service *service.SkillService
}

// NewSkillsHandler constructs handler.
func NewSkillsHandler(skillService *service.SkillService) *SkillsHandler {
	return &SkillsHandler{service: skillService}
}

// CreateOffered POST /skills/offered.
func (h *SkillsHandler) CreateOffered(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	skill, err := h.service.CreateOffered(c.Context(), principal.User.ID, service.SkillInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": skillOfferedResponse(skill)})
}

// ListOffered GET /skills/offered.
func (h *SkillsHandler) ListOffered(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	skills, err := h.service.ListOffered(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.SkillOfferedResponse, 0, len(skills))
	for i := range skills {
		items = append(items, skillOfferedResponse(&skills[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetOffered GET /skills/offered/:id.
func (h *SkillsHandler) GetOffered(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	skill, err := h.service.GetOffered(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": skillOfferedResponse(skill)})
}

// UpdateOffered PUT /skills/offered/:id.
func (h *SkillsHandler) UpdateOffered(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	skill, err := h.service.UpdateOffered(c.Context(), principal.User, c.Params("id"), service.SkillInput{
		Name:        req.Name,
		Description: req.Description,
	}, nil)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": skillOfferedResponse(skill)})
}

// DeleteOffered DELETE /skills/offered/:id.
func (h *SkillsHandler) DeleteOffered(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.DeleteOffered(c.Context(), principal.User.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateWanted POST /skills/wanted.
func (h *SkillsHandler) CreateWanted(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	skill, err := h.service.CreateWanted(c.Context(), principal.User.ID, service.SkillInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": skillWantedResponse(skill)})
}

// ListWanted GET /skills/wanted.
func (h *SkillsHandler) ListWanted(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	skills, err := h.service.ListWanted(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.SkillWantedResponse, 0, len(skills))
	for i := range skills {
		items = append(items, skillWantedResponse(&skills[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetWanted GET /skills/wanted/:id.
func (h *SkillsHandler) GetWanted(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	skill, err := h.service.GetWanted(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": skillWantedResponse(skill)})
}

// UpdateWanted PUT /skills/wanted/:id.
func (h *SkillsHandler) UpdateWanted(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	skill, err := h.service.UpdateWanted(c.Context(), principal.User.ID, c.Params("id"), service.SkillInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": skillWantedResponse(skill)})
}

// DeleteWanted DELETE /skills/wanted/:id.
func (h *SkillsHandler) DeleteWanted(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.DeleteWanted(c.Context(), principal.User.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Search GET /skills/search?query=&skill_type=.
func (h *SkillsHandler) Search(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var skillType *domain.SkillType
	if raw := c.Query("skill_type"); raw != "" {
		st := domain.SkillType(raw)
		skillType = &st
	}
	results, err := h.service.Search(c.Context(), c.Query("query"), skillType)
	if err != nil {
		return err
	}
	items := make([]dto.SkillSearchHit, 0, len(results))
	for _, hit := range results {
		items = append(items, dto.SkillSearchHit{
			SkillID:     hit.SkillID,
			SkillType:   hit.SkillType,
			Name:        hit.Name,
			Description: hit.Description,
			UserID:      hit.UserID,
			Username:    hit.Username,
			DisplayName: hit.DisplayName,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

func skillOfferedResponse(skill *domain.SkillOffered) dto.SkillOfferedResponse {
	return dto.SkillOfferedResponse{
		ID:          skill.ID,
		UserID:      skill.UserID,
		Name:        skill.Name,
		Description: skill.Description,
		Status:      skill.Status,
		CreatedAt:   skill.CreatedAt,
		UpdatedAt:   skill.UpdatedAt,
	}
}

func skillWantedResponse(skill *domain.SkillWanted) dto.SkillWantedResponse {
	return dto.SkillWantedResponse{
		ID:          skill.ID,
		UserID:      skill.UserID,
		Name:        skill.Name,
		Description: skill.Description,
		CreatedAt:   skill.CreatedAt,
		UpdatedAt:   skill.UpdatedAt,
	}
}
