package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kofidarko/gyidie-backend/internal/models"
)

// Resilient composes a primary store with a local fallback. Backend
// failures on the primary are absorbed at this boundary: the operation
// is logged and retried against the fallback instead of propagating,
// trading consistency for availability in degraded mode. ErrNotFound
// passes through untouched — an absent row is an answer, not an
// outage.
type Resilient struct {
	primary  Store
	fallback Store
}

func NewResilient(primary, fallback Store) *Resilient {
	return &Resilient{primary: primary, fallback: fallback}
}

// degraded reports whether err warrants switching to the fallback.
func degraded(op string, err error) bool {
	if err == nil || errors.Is(err, ErrNotFound) {
		return false
	}
	slog.Warn("primary store error, falling back", "op", op, "error", err)
	return true
}

func (r *Resilient) ListEntities(ctx context.Context) ([]models.Entity, error) {
	entities, err := r.primary.ListEntities(ctx)
	if degraded("list_entities", err) {
		return r.fallback.ListEntities(ctx)
	}
	return entities, err
}

func (r *Resilient) GetEntity(ctx context.Context, id uuid.UUID) (*models.Entity, error) {
	entity, err := r.primary.GetEntity(ctx, id)
	if degraded("get_entity", err) {
		return r.fallback.GetEntity(ctx, id)
	}
	return entity, err
}

func (r *Resilient) CreateEntity(ctx context.Context, entity *models.Entity) error {
	err := r.primary.CreateEntity(ctx, entity)
	if degraded("create_entity", err) {
		return r.fallback.CreateEntity(ctx, entity)
	}
	return err
}

func (r *Resilient) ListReports(ctx context.Context, filter ReportFilter) ([]models.Report, error) {
	reports, err := r.primary.ListReports(ctx, filter)
	if degraded("list_reports", err) {
		return r.fallback.ListReports(ctx, filter)
	}
	return reports, err
}

func (r *Resilient) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	report, err := r.primary.GetReport(ctx, id)
	if degraded("get_report", err) {
		return r.fallback.GetReport(ctx, id)
	}
	return report, err
}

func (r *Resilient) CreateReport(ctx context.Context, report *models.Report) error {
	err := r.primary.CreateReport(ctx, report)
	if degraded("create_report", err) {
		return r.fallback.CreateReport(ctx, report)
	}
	return err
}

func (r *Resilient) UpdateReport(ctx context.Context, id uuid.UUID, update ReportUpdate) (*models.Report, error) {
	report, err := r.primary.UpdateReport(ctx, id, update)
	if degraded("update_report", err) {
		return r.fallback.UpdateReport(ctx, id, update)
	}
	return report, err
}

func (r *Resilient) ApproveAllPending(ctx context.Context) (int64, error) {
	affected, err := r.primary.ApproveAllPending(ctx)
	if degraded("approve_all_pending", err) {
		return r.fallback.ApproveAllPending(ctx)
	}
	return affected, err
}

func (r *Resilient) CreateReply(ctx context.Context, reply *models.Reply) error {
	err := r.primary.CreateReply(ctx, reply)
	if degraded("create_reply", err) {
		return r.fallback.CreateReply(ctx, reply)
	}
	return err
}

func (r *Resilient) UpdateReply(ctx context.Context, id uuid.UUID, update ReplyUpdate) (*models.Reply, error) {
	reply, err := r.primary.UpdateReply(ctx, id, update)
	if degraded("update_reply", err) {
		return r.fallback.UpdateReply(ctx, id, update)
	}
	return reply, err
}

func (r *Resilient) ListReplies(ctx context.Context, status string) ([]models.Reply, error) {
	replies, err := r.primary.ListReplies(ctx, status)
	if degraded("list_replies", err) {
		return r.fallback.ListReplies(ctx, status)
	}
	return replies, err
}

func (r *Resilient) CreateEvidence(ctx context.Context, evidence *models.Evidence) error {
	err := r.primary.CreateEvidence(ctx, evidence)
	if degraded("create_evidence", err) {
		return r.fallback.CreateEvidence(ctx, evidence)
	}
	return err
}

func (r *Resilient) CountEvidence(ctx context.Context, reportID uuid.UUID) (int64, error) {
	count, err := r.primary.CountEvidence(ctx, reportID)
	if degraded("count_evidence", err) {
		return r.fallback.CountEvidence(ctx, reportID)
	}
	return count, err
}

func (r *Resilient) CreateModeration(ctx context.Context, record *models.Moderation) error {
	err := r.primary.CreateModeration(ctx, record)
	if degraded("create_moderation", err) {
		return r.fallback.CreateModeration(ctx, record)
	}
	return err
}

func (r *Resilient) ReportStats(ctx context.Context) (map[uuid.UUID]EntityStats, error) {
	stats, err := r.primary.ReportStats(ctx)
	if degraded("report_stats", err) {
		return r.fallback.ReportStats(ctx)
	}
	return stats, err
}

func (r *Resilient) AdminStats(ctx context.Context) (AdminStats, error) {
	stats, err := r.primary.AdminStats(ctx)
	if degraded("admin_stats", err) {
		return r.fallback.AdminStats(ctx)
	}
	return stats, err
}
