package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skillswap-service/internal/api/dto"
	"github.com/spec-kit/skillswap-service/internal/auth"
	"github.com/spec-kit/skillswap-service/internal/domain"
	"github.com/spec-kit/skillswap-service/internal/service"
	apperrors "github.com/spec-kit/skillswap-service/pkg/util/errorutil"
)

// SwapsHandler manages the swap lifecycle endpoints.
type SwapsHandler struct {
	swaps    *service.SwapService
	feedback *service.FeedbackService
}

// NewSwapsHandler constructs handler.
func NewSwapsHandler(swapService *service.SwapService, feedbackService *service.FeedbackService) *SwapsHandler {
	return &SwapsHandler{swaps: swapService, feedback: feedbackService}
}

// Create POST /swaps.
func (h *SwapsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateSwapRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	view, err := h.swaps.Create(c.Context(), principal.User, service.CreateSwapInput{
		ProviderID:     req.ProviderID,
		SkillOfferedID: req.SkillOfferedID,
		SkillWantedID:  req.SkillWantedID,
		Message:        req.Message,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": swapResponse(view)})
}

// List GET /swaps?status=.
func (h *SwapsHandler) List(c *fiber.Ctx) error {
	return h.list(c, service.SwapScopeAll)
}

// ListSent GET /swaps/sent.
func (h *SwapsHandler) ListSent(c *fiber.Ctx) error {
	return h.list(c, service.SwapScopeSent)
}

// ListReceived GET /swaps/received.
func (h *SwapsHandler) ListReceived(c *fiber.Ctx) error {
	return h.list(c, service.SwapScopeReceived)
}

func (h *SwapsHandler) list(c *fiber.Ctx, scope service.SwapListScope) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var status *domain.SwapStatus
	if raw := c.Query("status"); raw != "" {
		st := domain.SwapStatus(raw)
		status = &st
	}
	limit := parseInt(c.Query("limit"), 100)
	offset := parseInt(c.Query("offset"), 0)

	views, err := h.swaps.List(c.Context(), principal.User.ID, scope,
		status, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.SwapResponse, 0, len(views))
	for i := range views {
		items = append(items, swapResponse(&views[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /swaps/:id.
func (h *SwapsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	detail, err := h.swaps.Get(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	history := make([]dto.SwapHistoryResponse, 0, len(detail.History))
	for _, entry := range detail.History {
		history = append(history, dto.SwapHistoryResponse{
			ID:        entry.ID,
			ActorID:   entry.ActorID,
			Action:    entry.Action,
			OldStatus: entry.OldStatus,
			NewStatus: entry.NewStatus,
			CreatedAt: entry.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": dto.SwapDetailResponse{
		SwapResponse: swapResponse(&detail.SwapView),
		History:      history,
	}})
}

// Update PUT /swaps/:id. Moves the swap through the lifecycle and may
// replace the message.
func (h *SwapsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateSwapRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	view, err := h.swaps.UpdateStatus(c.Context(), principal.User.ID, c.Params("id"), req.Status, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": swapResponse(view)})
}

// Delete DELETE /swaps/:id.
func (h *SwapsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.swaps.Delete(c.Context(), principal.User.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateFeedback POST /swaps/feedback.
func (h *SwapsHandler) CreateFeedback(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	record, err := h.feedback.Create(c.Context(), principal.User.ID, service.FeedbackInput{
		SwapID:  req.SwapID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": feedbackResponse(record)})
}

// ListFeedback GET /swaps/:id/feedback.
func (h *SwapsHandler) ListFeedback(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	records, err := h.feedback.ListBySwap(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": feedbackResponses(records)})
}

// FeedbackReceived GET /swaps/feedback/received.
func (h *SwapsHandler) FeedbackReceived(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	records, err := h.feedback.ListReceived(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": feedbackResponses(records)})
}

// FeedbackGiven GET /swaps/feedback/given.
func (h *SwapsHandler) FeedbackGiven(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	records, err := h.feedback.ListGiven(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": feedbackResponses(records)})
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func swapResponse(view *service.SwapView) dto.SwapResponse {
	swap := view.Swap
	actions := view.AllowedActions
	if actions == nil {
		actions = []domain.SwapAction{}
	}
	return dto.SwapResponse{
		ID:             swap.ID,
		RequesterID:    swap.RequesterID,
		ProviderID:     swap.ProviderID,
		SkillOfferedID: swap.SkillOfferedID,
		SkillWantedID:  swap.SkillWantedID,
		Message:        swap.Message,
		Status:         swap.Status,
		AllowedActions: actions,
		CanDelete:      view.CanDelete,
		CreatedAt:      swap.CreatedAt,
		UpdatedAt:      swap.UpdatedAt,
		CompletedAt:    swap.CompletedAt,
	}
}

func feedbackResponse(record *domain.Feedback) dto.FeedbackResponse {
	return dto.FeedbackResponse{
		ID:         record.ID,
		SwapID:     record.SwapID,
		GiverID:    record.GiverID,
		ReceiverID: record.ReceiverID,
		Rating:     record.Rating,
		Comment:    record.Comment,
		CreatedAt:  record.CreatedAt,
	}
}

func feedbackResponses(records []domain.Feedback) []dto.FeedbackResponse {
	items := make([]dto.FeedbackResponse, 0, len(records))
	for i := range records {
		items = append(items, feedbackResponse(&records[i]))
	}
	return items
}
