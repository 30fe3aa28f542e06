package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skillswap-service/internal/api/dto"
	"github.com/spec-kit/skillswap-service/internal/auth"
	"github.com/spec-kit/skillswap-service/internal/domain"
	"github.com/spec-kit/skillswap-service/internal/observability"
	"github.com/spec-kit/skillswap-service/internal/service"
	apperrors "github.com/spec-kit/skillswap-service/pkg/util/errorutil"
)

// AdminHandler exposes the moderation and oversight surface.
type AdminHandler struct {
	service *service.AdminService
	metrics *observability.Metrics
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService, metrics *observability.Metrics) *AdminHandler {
	return &AdminHandler{service: adminService, metrics: metrics}
}

// ListUsers GET /admin/users?limit=&offset=.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	limit := parseInt(c.Query("limit"), 50)
	offset := parseInt(c.Query("offset"), 0)
	users, err := h.service.ListUsers(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, userResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// BanUser PUT /admin/users/:id/ban.
func (h *AdminHandler) BanUser(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	user, err := h.service.BanUser(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// UnbanUser PUT /admin/users/:id/unban.
func (h *AdminHandler) UnbanUser(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	user, err := h.service.UnbanUser(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// PromoteUser PUT /admin/users/:id/promote.
func (h *AdminHandler) PromoteUser(c *fiber.Ctx) error {
	user, err := h.service.PromoteUser(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// ListPendingSkills GET /admin/skills/pending.
func (h *AdminHandler) ListPendingSkills(c *fiber.Ctx) error {
	skills, err := h.service.ListPendingSkills(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.SkillOfferedResponse, 0, len(skills))
	for i := range skills {
		items = append(items, skillOfferedResponse(&skills[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ApproveSkill PUT /admin/skills/:id/approve.
func (h *AdminHandler) ApproveSkill(c *fiber.Ctx) error {
	return h.moderateSkill(c, domain.SkillStatusApproved)
}

// RejectSkill PUT /admin/skills/:id/reject.
func (h *AdminHandler) RejectSkill(c *fiber.Ctx) error {
	return h.moderateSkill(c, domain.SkillStatusRejected)
}

func (h *AdminHandler) moderateSkill(c *fiber.Ctx, status domain.SkillStatus) error {
	skill, err := h.service.ModerateSkill(c.Context(), c.Params("id"), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": skillOfferedResponse(skill)})
}

// ListSwaps GET /admin/swaps?status=&limit=&offset=.
func (h *AdminHandler) ListSwaps(c *fiber.Ctx) error {
	var status *domain.SwapStatus
	if raw := c.Query("status"); raw != "" {
		st := domain.SwapStatus(raw)
		status = &st
	}
	limit := parseInt(c.Query("limit"), 50)
	offset := parseInt(c.Query("offset"), 0)
	swaps, err := h.service.ListSwaps(c.Context(), status, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.AdminSwapResponse, 0, len(swaps))
	for i := range swaps {
		swap := &swaps[i]
		items = append(items, dto.AdminSwapResponse{
			ID:             swap.ID,
			RequesterID:    swap.RequesterID,
			ProviderID:     swap.ProviderID,
			SkillOfferedID: swap.SkillOfferedID,
			SkillWantedID:  swap.SkillWantedID,
			Message:        swap.Message,
			Status:         swap.Status,
			CreatedAt:      swap.CreatedAt,
			UpdatedAt:      swap.UpdatedAt,
			CompletedAt:    swap.CompletedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Stats GET /admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// Metrics GET /admin/metrics. In-process request counters.
func (h *AdminHandler) Metrics(c *fiber.Ctx) error {
	requests, errors := h.metrics.Snapshot()
	return c.JSON(fiber.Map{"data": fiber.Map{
		"requests": requests,
		"errors":   errors,
	}})
}

// Broadcast POST /admin/broadcast.
func (h *AdminHandler) Broadcast(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.BroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	result, err := h.service.Broadcast(c.Context(), principal.User.ID, req.Title, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": result})
}
