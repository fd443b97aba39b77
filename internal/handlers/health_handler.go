package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/kofidarko/gyidie-backend/internal/database"
	"github.com/kofidarko/gyidie-backend/internal/dto"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports liveness plus backing-store state. The service stays
// "ok" with db "degraded" while running on the in-memory fallback.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	dbStatus := "degraded"
	if h.db != nil {
		if err := database.Ping(h.db); err == nil {
			dbStatus = "connected"
		}
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
