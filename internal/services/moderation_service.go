package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kofidarko/gyidie-backend/internal/models"
	"github.com/kofidarko/gyidie-backend/internal/store"
)

var (
	ErrInvalidAction     = errors.New("action must be approve or reject")
	ErrInvalidTransition = errors.New("report status does not allow this transition")
)

// ModerationService drives the report and reply state machines:
// pending -> approved, pending -> rejected, rejected -> pending
// (restore). Approved is terminal. Every decision writes a Moderation
// audit record; notes attach there, never to the report.
type ModerationService struct {
	store store.Store
}

func NewModerationService(st store.Store) *ModerationService {
	return &ModerationService{store: st}
}

// ModerateReport applies an approve or reject decision to a pending
// report. The update is guarded on the current status, so two
// moderators racing on the same report cannot both win: the loser gets
// ErrInvalidTransition instead of silently overwriting.
func (s *ModerationService) ModerateReport(ctx context.Context, reportID, moderatorID uuid.UUID, action, notes string) (*models.Report, error) {
	var target string
	switch action {
	case models.ModerationActionApprove:
		target = models.StatusApproved
	case models.ModerationActionReject:
		target = models.StatusRejected
	default:
		return nil, ErrInvalidAction
	}

	report, err := s.transition(ctx, reportID, models.StatusPending, target)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, reportID, moderatorID, action, notes)
	return report, nil
}

// RestoreReport moves a rejected report back to the pending queue.
// Any other starting status is refused.
func (s *ModerationService) RestoreReport(ctx context.Context, reportID, moderatorID uuid.UUID) (*models.Report, error) {
	report, err := s.transition(ctx, reportID, models.StatusRejected, models.StatusPending)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, reportID, moderatorID, models.ModerationActionRestore, "")
	return report, nil
}

func (s *ModerationService) ModerateReply(ctx context.Context, replyID uuid.UUID, action string) (*models.Reply, error) {
	var target string
	switch action {
	case models.ModerationActionApprove:
		target = models.StatusApproved
	case models.ModerationActionReject:
		target = models.StatusRejected
	default:
		return nil, ErrInvalidAction
	}

	return s.store.UpdateReply(ctx, replyID, store.ReplyUpdate{Status: target})
}

// ApproveAllPending bulk-approves every currently pending report.
// Best-effort: submissions racing the bulk update may or may not be
// included.
func (s *ModerationService) ApproveAllPending(ctx context.Context) (int64, error) {
	return s.store.ApproveAllPending(ctx)
}

func (s *ModerationService) PendingReports(ctx context.Context) ([]models.Report, error) {
	return s.store.ListReports(ctx, store.ReportFilter{Status: models.StatusPending})
}

func (s *ModerationService) PendingReplies(ctx context.Context) ([]models.Reply, error) {
	return s.store.ListReplies(ctx, models.StatusPending)
}

// transition applies from -> to guarded on the current status. A miss
// is disambiguated by re-reading: absent report reports ErrNotFound,
// a status mismatch reports ErrInvalidTransition.
func (s *ModerationService) transition(ctx context.Context, reportID uuid.UUID, from, to string) (*models.Report, error) {
	report, err := s.store.UpdateReport(ctx, reportID, store.ReportUpdate{
		Status:     to,
		FromStatus: from,
	})
	if err == nil {
		return report, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if _, getErr := s.store.GetReport(ctx, reportID); getErr != nil {
		return nil, getErr
	}
	return nil, ErrInvalidTransition
}

func (s *ModerationService) audit(ctx context.Context, reportID, moderatorID uuid.UUID, action, notes string) {
	record := &models.Moderation{
		ReportID:    reportID,
		ModeratorID: moderatorID,
		Action:      action,
		Notes:       notes,
	}
	if err := s.store.CreateModeration(ctx, record); err != nil {
		// The decision already stuck; a lost audit row is logged, not fatal.
		slog.Error("failed to write moderation audit record",
			"report_id", reportID, "action", action, "error", err)
	}
}
