package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kofidarko/gyidie-backend/internal/dto"
	"github.com/kofidarko/gyidie-backend/internal/store"
)

type StatsHandler struct {
	store store.Store
}

func NewStatsHandler(st store.Store) *StatsHandler {
	return &StatsHandler{store: st}
}

// ReportStats serves per-entity positive/negative counts over approved
// reports only. Pending and rejected submissions never influence the
// public numbers.
func (h *StatsHandler) ReportStats(c *fiber.Ctx) error {
	stats, err := h.store.ReportStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute stats",
		})
	}
	return c.JSON(fiber.Map{"stats": stats})
}
