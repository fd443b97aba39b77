package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"

	"github.com/kofidarko/gyidie-backend/internal/blob"
	"github.com/kofidarko/gyidie-backend/internal/config"
	"github.com/kofidarko/gyidie-backend/internal/database"
	"github.com/kofidarko/gyidie-backend/internal/handlers"
	"github.com/kofidarko/gyidie-backend/internal/logging"
	"github.com/kofidarko/gyidie-backend/internal/middleware"
	"github.com/kofidarko/gyidie-backend/internal/routes"
	"github.com/kofidarko/gyidie-backend/internal/services"
	"github.com/kofidarko/gyidie-backend/internal/store"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	// Database. A connection failure does not abort startup: the
	// service runs on the seeded in-memory store and file-backed
	// credentials until the database comes back.
	var db *gorm.DB
	if conn, err := database.Connect(cfg); err != nil {
		slog.Warn("database unavailable, running in degraded mode", "error", err)
	} else if err := database.Migrate(conn); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	} else {
		db = conn
	}

	// PostgreSQL log handler (ERROR+ async batch) and retention
	// cleanup, only when the database is up.
	var pgLogHandler *logging.PGHandler
	cleanupDone := make(chan struct{})
	if db != nil {
		pgLogHandler = logging.NewPGHandler(db)
		slog.SetDefault(slog.New(logging.NewMultiHandler(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
			pgLogHandler,
		)))
		logging.StartCleanup(db, cleanupDone)
	}

	// Data store: Postgres primary with in-memory fallback, or the
	// seeded in-memory store alone in degraded mode.
	var dataStore store.Store
	if db != nil {
		dataStore = store.NewResilient(store.NewGorm(db), store.NewMemory())
	} else {
		dataStore = store.NewMemory()
	}

	// Evidence blob storage: S3 (or MinIO) when a bucket is
	// configured, in-memory mock otherwise.
	var blobStore blob.Store
	if cfg.S3Bucket != "" {
		s3Store, err := blob.NewS3(context.Background(), blob.S3Config{
			Region:       cfg.S3Region,
			Bucket:       cfg.S3Bucket,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
		if err != nil {
			slog.Error("S3 client init failed", "error", err)
			os.Exit(1)
		}
		blobStore = s3Store
	} else {
		slog.Warn("no S3 bucket configured, evidence uploads use mock storage")
		blobStore = blob.NewMemory()
	}

	// Degraded-mode credentials
	creds, err := store.NewCredentialFile(cfg.CredentialFilePath)
	if err != nil {
		slog.Error("failed to load credential file", "path", cfg.CredentialFilePath, "error", err)
		os.Exit(1)
	}

	// Services
	authService := services.NewAuthService(db, cfg, creds)
	reportService := services.NewReportService(dataStore, blobStore)
	moderationService := services.NewModerationService(dataStore)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(db)
	entityHandler := handlers.NewEntityHandler(reportService)
	reportHandler := handlers.NewReportHandler(reportService)
	statsHandler := handlers.NewStatsHandler(dataStore)
	moderationHandler := handlers.NewModerationHandler(moderationService, dataStore)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app. Evidence batches can carry 5 files of 10MB each.
	app := fiber.New(fiber.Config{
		BodyLimit:    55 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, db, authHandler, healthHandler, entityHandler, reportHandler, statsHandler, moderationHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	if pgLogHandler != nil {
		pgLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("database close error", "error", err)
			}
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
