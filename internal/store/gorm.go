package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kofidarko/gyidie-backend/internal/models"
)

// Gorm is the Postgres-backed primary store.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) ListEntities(ctx context.Context) ([]models.Entity, error) {
	var entities []models.Entity
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}
	return entities, nil
}

func (s *Gorm) GetEntity(ctx context.Context, id uuid.UUID) (*models.Entity, error) {
	var entity models.Entity
	err := s.db.WithContext(ctx).First(&entity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return &entity, nil
}

func (s *Gorm) CreateEntity(ctx context.Context, entity *models.Entity) error {
	if entity.ID == uuid.Nil {
		entity.ID = uuid.New()
	}
	entity.Verified = false
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create entity: %w", err)
	}
	return nil
}

func (s *Gorm) ListReports(ctx context.Context, filter ReportFilter) ([]models.Report, error) {
	query := s.db.WithContext(ctx).Model(&models.Report{}).
		Preload("Entity").
		Preload("Evidence").
		Preload("Replies", "status <> ?", models.StatusRejected).
		Preload("Replies.Entity")

	if filter.EntityID != uuid.Nil {
		query = query.Where("entity_id = ?", filter.EntityID)
	}
	if filter.ReporterID != uuid.Nil {
		query = query.Where("reporter_id = ?", filter.ReporterID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var reports []models.Report
	if err := query.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

func (s *Gorm) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	var report models.Report
	err := s.db.WithContext(ctx).
		Preload("Entity").
		Preload("Evidence").
		Preload("Replies", "status <> ?", models.StatusRejected).
		First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}

// CreateReport persists a new report. Status is always forced to
// pending; any caller-supplied status is discarded.
func (s *Gorm) CreateReport(ctx context.Context, report *models.Report) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	report.Status = models.StatusPending
	if err := s.db.WithContext(ctx).Omit("Entity", "Evidence", "Replies", "Reporter").Create(report).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (s *Gorm) UpdateReport(ctx context.Context, id uuid.UUID, update ReportUpdate) (*models.Report, error) {
	query := s.db.WithContext(ctx).Model(&models.Report{}).Where("id = ?", id)
	if update.FromStatus != "" {
		query = query.Where("status = ?", update.FromStatus)
	}

	result := query.Update("status", update.Status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetReport(ctx, id)
}

// ApproveAllPending flips every pending report to approved in a single
// bulk predicate update. Not atomic with respect to concurrent
// submissions; best-effort by design.
func (s *Gorm) ApproveAllPending(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Model(&models.Report{}).
		Where("status = ?", models.StatusPending).
		Update("status", models.StatusApproved)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to approve pending reports: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *Gorm) CreateReply(ctx context.Context, reply *models.Reply) error {
	if reply.ID == uuid.Nil {
		reply.ID = uuid.New()
	}
	reply.Status = models.StatusPending
	if err := s.db.WithContext(ctx).Omit("Entity", "Report").Create(reply).Error; err != nil {
		return fmt.Errorf("failed to create reply: %w", err)
	}
	return nil
}

func (s *Gorm) UpdateReply(ctx context.Context, id uuid.UUID, update ReplyUpdate) (*models.Reply, error) {
	result := s.db.WithContext(ctx).Model(&models.Reply{}).
		Where("id = ?", id).
		Update("status", update.Status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update reply: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var reply models.Reply
	if err := s.db.WithContext(ctx).First(&reply, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload reply: %w", err)
	}
	return &reply, nil
}

func (s *Gorm) ListReplies(ctx context.Context, status string) ([]models.Reply, error) {
	query := s.db.WithContext(ctx).Model(&models.Reply{}).
		Preload("Entity").
		Preload("Report")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var replies []models.Reply
	if err := query.Order("created_at DESC").Find(&replies).Error; err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	return replies, nil
}

func (s *Gorm) CreateEvidence(ctx context.Context, evidence *models.Evidence) error {
	if evidence.ID == uuid.Nil {
		evidence.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(evidence).Error; err != nil {
		return fmt.Errorf("failed to create evidence: %w", err)
	}
	return nil
}

func (s *Gorm) CountEvidence(ctx context.Context, reportID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Evidence{}).
		Where("report_id = ?", reportID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count evidence: %w", err)
	}
	return count, nil
}

func (s *Gorm) CreateModeration(ctx context.Context, record *models.Moderation) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create moderation record: %w", err)
	}
	return nil
}

// ReportStats accumulates approved-report counts per entity in a
// single pass. Stats are never cached; every call recomputes.
func (s *Gorm) ReportStats(ctx context.Context) (map[uuid.UUID]EntityStats, error) {
	var rows []struct {
		EntityID uuid.UUID
		Type     string
	}
	err := s.db.WithContext(ctx).Model(&models.Report{}).
		Select("entity_id", "type").
		Where("status = ?", models.StatusApproved).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load report stats: %w", err)
	}

	stats := make(map[uuid.UUID]EntityStats, len(rows))
	for _, row := range rows {
		s := stats[row.EntityID]
		switch row.Type {
		case models.ReportTypePositive:
			s.Positive++
		case models.ReportTypeNegative:
			s.Negative++
		}
		stats[row.EntityID] = s
	}
	return stats, nil
}

func (s *Gorm) AdminStats(ctx context.Context) (AdminStats, error) {
	var stats AdminStats
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Report{}).Count(&stats.TotalReports).Error; err != nil {
		return AdminStats{}, fmt.Errorf("failed to count reports: %w", err)
	}
	if err := db.Model(&models.Report{}).Where("status = ?", models.StatusPending).Count(&stats.PendingReports).Error; err != nil {
		return AdminStats{}, fmt.Errorf("failed to count pending reports: %w", err)
	}
	if err := db.Model(&models.Entity{}).Count(&stats.TotalEntities).Error; err != nil {
		return AdminStats{}, fmt.Errorf("failed to count entities: %w", err)
	}
	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return AdminStats{}, fmt.Errorf("failed to count users: %w", err)
	}
	return stats, nil
}
