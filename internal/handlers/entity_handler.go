package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kofidarko/gyidie-backend/internal/dto"
	"github.com/kofidarko/gyidie-backend/internal/models"
	"github.com/kofidarko/gyidie-backend/internal/services"
	"github.com/kofidarko/gyidie-backend/internal/store"
)

type EntityHandler struct {
	reportService *services.ReportService
}

func NewEntityHandler(reportService *services.ReportService) *EntityHandler {
	return &EntityHandler{reportService: reportService}
}

func (h *EntityHandler) List(c *fiber.Ctx) error {
	entities, err := h.reportService.ListEntities(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch entities",
		})
	}
	return c.JSON(fiber.Map{"entities": entities})
}

func (h *EntityHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entity ID",
		})
	}

	entity, err := h.reportService.GetEntity(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Entity not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch entity",
		})
	}
	return c.JSON(entity)
}

func (h *EntityHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEntityRequest
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

	entity, err := h.reportService.CreateEntity(c.Context(), &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create entity",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(entity)
}

// Reports lists an entity's approved reports for public display.
// Anonymous submissions have the reporter identity scrubbed.
func (h *EntityHandler) Reports(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entity ID",
		})
	}

	reports, err := h.reportService.ListReports(c.Context(), store.ReportFilter{
		EntityID: id,
		Status:   models.StatusApproved,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}

	scrubAnonymous(reports)
	return c.JSON(fiber.Map{"reports": reports})
}

// scrubAnonymous hides reporter identity on anonymous reports before
// they leave a public endpoint.
func scrubAnonymous(reports []models.Report) {
	for i := range reports {
		if reports[i].IsAnonymous {
			reports[i].ReporterID = uuid.Nil
		}
	}
}
