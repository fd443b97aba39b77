// Package store owns persisted state for entities, reports, evidence
// and replies. The Postgres-backed Gorm store is the primary; Memory
// offers an identical in-process fallback; Resilient composes the two.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kofidarko/gyidie-backend/internal/models"
)

// ErrNotFound is returned when a get or update matches no row. It is a
// domain result, not a backend failure, and never triggers fallback.
var ErrNotFound = errors.New("record not found")

// ReportFilter narrows ListReports. Zero-valued fields apply no
// constraint; set fields match exactly.
type ReportFilter struct {
	EntityID   uuid.UUID
	ReporterID uuid.UUID
	Status     string
	Type       string
}

// ReportUpdate mutates a report's status. FromStatus, when set, guards
// the update: it only applies while the current status still matches,
// so concurrent moderator decisions cannot silently clobber each other.
type ReportUpdate struct {
	Status     string
	FromStatus string
}

type ReplyUpdate struct {
	Status string
}

// EntityStats counts approved reports per direction for one entity.
type EntityStats struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// AdminStats is a point-in-time snapshot for the admin dashboard.
type AdminStats struct {
	TotalReports   int64 `json:"total_reports"`
	PendingReports int64 `json:"pending_reports"`
	TotalEntities  int64 `json:"total_entities"`
	TotalUsers     int64 `json:"total_users"`
}

// Store is the data-access contract shared by the Postgres primary and
// the in-memory fallback.
type Store interface {
	ListEntities(ctx context.Context) ([]models.Entity, error)
	GetEntity(ctx context.Context, id uuid.UUID) (*models.Entity, error)
	CreateEntity(ctx context.Context, entity *models.Entity) error

	ListReports(ctx context.Context, filter ReportFilter) ([]models.Report, error)
	GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error)
	CreateReport(ctx context.Context, report *models.Report) error
	UpdateReport(ctx context.Context, id uuid.UUID, update ReportUpdate) (*models.Report, error)
	ApproveAllPending(ctx context.Context) (int64, error)

	CreateReply(ctx context.Context, reply *models.Reply) error
	UpdateReply(ctx context.Context, id uuid.UUID, update ReplyUpdate) (*models.Reply, error)
	ListReplies(ctx context.Context, status string) ([]models.Reply, error)

	CreateEvidence(ctx context.Context, evidence *models.Evidence) error
	CountEvidence(ctx context.Context, reportID uuid.UUID) (int64, error)

	CreateModeration(ctx context.Context, record *models.Moderation) error

	ReportStats(ctx context.Context) (map[uuid.UUID]EntityStats, error)
	AdminStats(ctx context.Context) (AdminStats, error)
}
