package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kofidarko/gyidie-backend/internal/models"
)

var (
	seedEntityAccraMall = uuid.MustParse("0b7f43f1-9a4e-4f3a-8a2e-6a1c7b9d0e01")
	seedEntityMTN       = uuid.MustParse("0b7f43f1-9a4e-4f3a-8a2e-6a1c7b9d0e02")
	seedEntityKwame     = uuid.MustParse("0b7f43f1-9a4e-4f3a-8a2e-6a1c7b9d0e03")
	seedReportPending   = uuid.MustParse("5e9d0001-0000-4000-8000-000000000004")
	seedUserDemo        = uuid.MustParse("d3a0c001-0000-4000-8000-000000000001")
)

func TestMemorySeedEntities(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	entities, err := m.ListEntities(ctx)
	require.NoError(t, err)
	require.Len(t, entities, 5)

	// Newest first
	assert.Equal(t, "Ama Serwaa", entities[0].Name)
	for i := 1; i < len(entities); i++ {
		assert.False(t, entities[i].CreatedAt.After(entities[i-1].CreatedAt))
	}
}

func TestMemoryGetEntity(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	entity, err := m.GetEntity(ctx, seedEntityAccraMall)
	require.NoError(t, err)
	assert.Equal(t, "Accra Mall", entity.Name)
	assert.True(t, entity.Verified)

	_, err = m.GetEntity(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCreateEntity(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	entity := &models.Entity{
		Name:     "New Shop",
		Type:     models.EntityTypeCompany,
		Verified: true,
	}
	require.NoError(t, m.CreateEntity(ctx, entity))

	assert.NotEqual(t, uuid.Nil, entity.ID)
	assert.False(t, entity.Verified, "new entities must start unverified")

	entities, err := m.ListEntities(ctx)
	require.NoError(t, err)
	assert.Len(t, entities, 6)
	assert.Equal(t, "New Shop", entities[0].Name)
}

func TestMemoryListReportsFilters(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	all, err := m.ListReports(ctx, ReportFilter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt))
	}
	for _, r := range all {
		require.NotNil(t, r.Entity, "relations must be attached")
		assert.Equal(t, r.EntityID, r.Entity.ID)
	}

	pending, err := m.ListReports(ctx, ReportFilter{Status: models.StatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	approved, err := m.ListReports(ctx, ReportFilter{Status: models.StatusApproved})
	require.NoError(t, err)
	assert.Len(t, approved, 3)

	byEntity, err := m.ListReports(ctx, ReportFilter{EntityID: seedEntityAccraMall})
	require.NoError(t, err)
	assert.Len(t, byEntity, 2)

	byReporter, err := m.ListReports(ctx, ReportFilter{ReporterID: seedUserDemo})
	require.NoError(t, err)
	assert.Len(t, byReporter, 3)

	combined, err := m.ListReports(ctx, ReportFilter{
		EntityID: seedEntityAccraMall,
		Status:   models.StatusApproved,
	})
	require.NoError(t, err)
	assert.Len(t, combined, 1)
}

func TestMemoryCreateReportForcesPending(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	report := &models.Report{
		EntityID:   seedEntityAccraMall,
		ReporterID: seedUserDemo,
		Type:       models.ReportTypeNegative,
		Category:   "Fraud",
		Title:      "Something happened",
		Status:     models.StatusApproved,
	}
	require.NoError(t, m.CreateReport(ctx, report))

	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.Equal(t, models.StatusPending, report.Status)

	got, err := m.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestMemoryUpdateReportStatusGuard(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	report, err := m.UpdateReport(ctx, seedReportPending, ReportUpdate{
		Status:     models.StatusApproved,
		FromStatus: models.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, report.Status)

	// The guard refuses a second pending->approved transition.
	_, err = m.UpdateReport(ctx, seedReportPending, ReportUpdate{
		Status:     models.StatusRejected,
		FromStatus: models.StatusPending,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// Unguarded update still applies.
	report, err = m.UpdateReport(ctx, seedReportPending, ReportUpdate{Status: models.StatusRejected})
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, report.Status)

	_, err = m.UpdateReport(ctx, uuid.New(), ReportUpdate{Status: models.StatusApproved})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryApproveAllPending(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	affected, err := m.ApproveAllPending(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, affected)

	pending, err := m.ListReports(ctx, ReportFilter{Status: models.StatusPending})
	require.NoError(t, err)
	assert.Empty(t, pending)

	affected, err = m.ApproveAllPending(ctx)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestMemoryReplies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	reply := &models.Reply{
		ReportID: seedReportPending,
		EntityID: seedEntityAccraMall,
		Content:  "We looked into this and apologize for the wait.",
	}
	require.NoError(t, m.CreateReply(ctx, reply))
	assert.Equal(t, models.StatusPending, reply.Status)

	pending, err := m.ListReplies(ctx, models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.NotNil(t, pending[0].Entity)
	assert.Equal(t, "Accra Mall", pending[0].Entity.Name)

	// Approved replies surface on the report; rejected ones never do.
	_, err = m.UpdateReply(ctx, reply.ID, ReplyUpdate{Status: models.StatusApproved})
	require.NoError(t, err)

	report, err := m.GetReport(ctx, seedReportPending)
	require.NoError(t, err)
	require.Len(t, report.Replies, 1)

	_, err = m.UpdateReply(ctx, reply.ID, ReplyUpdate{Status: models.StatusRejected})
	require.NoError(t, err)

	report, err = m.GetReport(ctx, seedReportPending)
	require.NoError(t, err)
	assert.Empty(t, report.Replies)
}

func TestMemoryEvidence(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	count, err := m.CountEvidence(ctx, seedReportPending)
	require.NoError(t, err)
	assert.Zero(t, count)

	for i := 0; i < 3; i++ {
		require.NoError(t, m.CreateEvidence(ctx, &models.Evidence{
			ReportID: seedReportPending,
			FilePath: "mock-storage/some/key",
			FileName: "receipt.jpg",
			FileType: "image/jpeg",
		}))
	}

	count, err = m.CountEvidence(ctx, seedReportPending)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	report, err := m.GetReport(ctx, seedReportPending)
	require.NoError(t, err)
	assert.Len(t, report.Evidence, 3)
}

func TestMemoryReportStats(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	stats, err := m.ReportStats(ctx)
	require.NoError(t, err)

	// Only the three approved seed reports count.
	assert.Equal(t, EntityStats{Positive: 1}, stats[seedEntityAccraMall])
	assert.Equal(t, EntityStats{Negative: 1}, stats[seedEntityMTN])
	assert.Equal(t, EntityStats{Positive: 1}, stats[seedEntityKwame])

	// Approving the pending negative report moves the numbers.
	_, err = m.UpdateReport(ctx, seedReportPending, ReportUpdate{
		Status:     models.StatusApproved,
		FromStatus: models.StatusPending,
	})
	require.NoError(t, err)

	stats, err = m.ReportStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, EntityStats{Positive: 1, Negative: 1}, stats[seedEntityAccraMall])
}

func TestMemoryAdminStats(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	stats, err := m.AdminStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, stats.TotalReports)
	assert.EqualValues(t, 2, stats.PendingReports)
	assert.EqualValues(t, 5, stats.TotalEntities)
	assert.EqualValues(t, 3, stats.TotalUsers)

	_, err = m.ApproveAllPending(ctx)
	require.NoError(t, err)

	stats, err = m.AdminStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.PendingReports)
}
