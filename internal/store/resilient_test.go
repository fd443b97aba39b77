package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kofidarko/gyidie-backend/internal/models"
)

var errBackendDown = errors.New("connection refused")

// failingStore returns the configured error from every operation.
type failingStore struct {
	err error
}

func (f *failingStore) ListEntities(context.Context) ([]models.Entity, error) { return nil, f.err }
func (f *failingStore) GetEntity(context.Context, uuid.UUID) (*models.Entity, error) {
	return nil, f.err
}
func (f *failingStore) CreateEntity(context.Context, *models.Entity) error { return f.err }
func (f *failingStore) ListReports(context.Context, ReportFilter) ([]models.Report, error) {
	return nil, f.err
}
func (f *failingStore) GetReport(context.Context, uuid.UUID) (*models.Report, error) {
	return nil, f.err
}
func (f *failingStore) CreateReport(context.Context, *models.Report) error { return f.err }
func (f *failingStore) UpdateReport(context.Context, uuid.UUID, ReportUpdate) (*models.Report, error) {
	return nil, f.err
}
func (f *failingStore) ApproveAllPending(context.Context) (int64, error) { return 0, f.err }
func (f *failingStore) CreateReply(context.Context, *models.Reply) error { return f.err }
func (f *failingStore) UpdateReply(context.Context, uuid.UUID, ReplyUpdate) (*models.Reply, error) {
	return nil, f.err
}
func (f *failingStore) ListReplies(context.Context, string) ([]models.Reply, error) {
	return nil, f.err
}
func (f *failingStore) CreateEvidence(context.Context, *models.Evidence) error { return f.err }
func (f *failingStore) CountEvidence(context.Context, uuid.UUID) (int64, error) { return 0, f.err }
func (f *failingStore) CreateModeration(context.Context, *models.Moderation) error { return f.err }
func (f *failingStore) ReportStats(context.Context) (map[uuid.UUID]EntityStats, error) {
	return nil, f.err
}
func (f *failingStore) AdminStats(context.Context) (AdminStats, error) { return AdminStats{}, f.err }

func TestResilientFallsBackOnBackendError(t *testing.T) {
	r := NewResilient(&failingStore{err: errBackendDown}, NewMemory())
	ctx := context.Background()

	entities, err := r.ListEntities(ctx)
	require.NoError(t, err)
	assert.Len(t, entities, 5)

	entity, err := r.GetEntity(ctx, seedEntityAccraMall)
	require.NoError(t, err)
	assert.Equal(t, "Accra Mall", entity.Name)

	report := &models.Report{
		EntityID:   seedEntityAccraMall,
		ReporterID: seedUserDemo,
		Type:       models.ReportTypeNegative,
		Category:   "Fraud",
		Title:      "Bad experience",
	}
	require.NoError(t, r.CreateReport(ctx, report))

	got, err := r.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)

	stats, err := r.AdminStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, stats.TotalReports)
}

func TestResilientNotFoundDoesNotFallBack(t *testing.T) {
	// ErrNotFound from the primary is a real answer. The fallback
	// holds seed data that would wrongly satisfy the lookup.
	r := NewResilient(&failingStore{err: ErrNotFound}, NewMemory())
	ctx := context.Background()

	_, err := r.GetEntity(ctx, seedEntityAccraMall)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.GetReport(ctx, seedReportPending)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.UpdateReport(ctx, seedReportPending, ReportUpdate{Status: models.StatusApproved})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResilientPrefersPrimary(t *testing.T) {
	primary := NewMemory()
	fallback := NewMemory()
	r := NewResilient(primary, fallback)
	ctx := context.Background()

	entity := &models.Entity{Name: "Primary Only", Type: models.EntityTypeCompany}
	require.NoError(t, r.CreateEntity(ctx, entity))

	entities, err := primary.ListEntities(ctx)
	require.NoError(t, err)
	assert.Len(t, entities, 6)

	entities, err = fallback.ListEntities(ctx)
	require.NoError(t, err)
	assert.Len(t, entities, 5, "fallback must stay untouched while primary is healthy")
}
