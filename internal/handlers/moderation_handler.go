package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kofidarko/gyidie-backend/internal/dto"
	"github.com/kofidarko/gyidie-backend/internal/middleware"
	"github.com/kofidarko/gyidie-backend/internal/models"
	"github.com/kofidarko/gyidie-backend/internal/services"
	"github.com/kofidarko/gyidie-backend/internal/store"
)

type ModerationHandler struct {
	moderationService *services.ModerationService
	store             store.Store
}

func NewModerationHandler(moderationService *services.ModerationService, st store.Store) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService, store: st}
}

// ListReports serves the moderation queue. ?status= narrows to one
// status; without it every report is returned, newest first.
func (h *ModerationHandler) ListReports(c *fiber.Ctx) error {
	status := c.Query("status")
	if status != "" && !models.ValidStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid status filter",
		})
	}

	reports, err := h.store.ListReports(c.Context(), store.ReportFilter{Status: status})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}
	return c.JSON(fiber.Map{"reports": dto.NewAdminReports(reports)})
}

func (h *ModerationHandler) PendingReplies(c *fiber.Ctx) error {
	replies, err := h.moderationService.PendingReplies(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch replies",
		})
	}
	return c.JSON(fiber.Map{"replies": replies})
}

// ModerateReport approves or rejects a pending report.
func (h *ModerationHandler) ModerateReport(c *fiber.Ctx) error {
	moderatorID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	var req dto.ModerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	report, err := h.moderationService.ModerateReport(c.Context(), reportID, moderatorID, req.Action, req.Notes)
	if err != nil {
		return moderationError(c, err, "Failed to moderate report")
	}
	return c.JSON(dto.NewAdminReport(*report))
}

// RestoreReport puts a rejected report back into the pending queue.
func (h *ModerationHandler) RestoreReport(c *fiber.Ctx) error {
	moderatorID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	report, err := h.moderationService.RestoreReport(c.Context(), reportID, moderatorID)
	if err != nil {
		return moderationError(c, err, "Failed to restore report")
	}
	return c.JSON(dto.NewAdminReport(*report))
}

func (h *ModerationHandler) ModerateReply(c *fiber.Ctx) error {
	replyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid reply ID",
		})
	}

	var req dto.ModerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	reply, err := h.moderationService.ModerateReply(c.Context(), replyID, req.Action)
	if err != nil {
		return moderationError(c, err, "Failed to moderate reply")
	}
	return c.JSON(reply)
}

func (h *ModerationHandler) ApproveAll(c *fiber.Ctx) error {
	approved, err := h.moderationService.ApproveAllPending(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to approve pending reports",
		})
	}
	return c.JSON(dto.ApproveAllResponse{Approved: approved})
}

func (h *ModerationHandler) AdminStats(c *fiber.Ctx) error {
	stats, err := h.store.AdminStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute stats",
		})
	}
	return c.JSON(stats)
}

func moderationError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Not found",
		})
	case errors.Is(err, services.ErrInvalidAction),
		errors.Is(err, services.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}
