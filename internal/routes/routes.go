package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/kofidarko/gyidie-backend/internal/config"
	"github.com/kofidarko/gyidie-backend/internal/handlers"
	"github.com/kofidarko/gyidie-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	entityHandler *handlers.EntityHandler,
	reportHandler *handlers.ReportHandler,
	statsHandler *handlers.StatsHandler,
	moderationHandler *handlers.ModerationHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Health)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Public read surface: entities, their approved reports, stats
	api.Get("/entities", entityHandler.List)
	api.Get("/entities/:id", entityHandler.Get)
	api.Get("/entities/:id/reports", entityHandler.Reports)
	api.Get("/stats/reports", statsHandler.ReportStats)

	// Authenticated submission endpoints
	api.Post("/entities", middleware.JWTProtected(cfg), entityHandler.Create)
	api.Post("/reports", middleware.JWTProtected(cfg), reportHandler.Create)
	api.Get("/reports/mine", middleware.JWTProtected(cfg), reportHandler.Mine)
	api.Post("/reports/:id/evidence", middleware.JWTProtected(cfg), reportHandler.UploadEvidence)
	api.Post("/reports/:id/replies", middleware.JWTProtected(cfg), reportHandler.CreateReply)

	// Admin moderation panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/moderation/reports", moderationHandler.ListReports)
	admin.Put("/moderation/reports/:id", moderationHandler.ModerateReport)
	admin.Post("/moderation/reports/:id/restore", moderationHandler.RestoreReport)
	admin.Post("/moderation/approve-all", moderationHandler.ApproveAll)
	admin.Get("/moderation/replies", moderationHandler.PendingReplies)
	admin.Put("/moderation/replies/:id", moderationHandler.ModerateReply)
	admin.Get("/stats", moderationHandler.AdminStats)
}
