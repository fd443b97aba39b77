package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kofidarko/gyidie-backend/internal/blob"
	"github.com/kofidarko/gyidie-backend/internal/dto"
	"github.com/kofidarko/gyidie-backend/internal/models"
	"github.com/kofidarko/gyidie-backend/internal/store"
)

var (
	testEntityID = uuid.MustParse("0b7f43f1-9a4e-4f3a-8a2e-6a1c7b9d0e01")
	testUserID   = uuid.MustParse("d3a0c001-0000-4000-8000-000000000001")
)

const longDescription = "They promised delivery within two days but never showed up and stopped answering entirely."

func newReportService() (*ReportService, *blob.Memory) {
	blobs := blob.NewMemory()
	return NewReportService(store.NewMemory(), blobs), blobs
}

func validReportRequest() *dto.CreateReportRequest {
	return &dto.CreateReportRequest{
		EntityID:    testEntityID,
		Type:        models.ReportTypeNegative,
		Category:    "Poor Service",
		Title:       "Order never arrived",
		Description: longDescription,
	}
}

func TestCreateReportRequiresAuthentication(t *testing.T) {
	svc, _ := newReportService()

	_, err := svc.CreateReport(context.Background(), uuid.Nil, validReportRequest())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCreateReportValidation(t *testing.T) {
	svc, _ := newReportService()
	ctx := context.Background()

	req := validReportRequest()
	req.Type = "neutral"
	_, err := svc.CreateReport(ctx, testUserID, req)
	assert.ErrorIs(t, err, ErrInvalidType)

	req = validReportRequest()
	req.Category = "Excellent Service" // positive category on a negative report
	_, err = svc.CreateReport(ctx, testUserID, req)
	assert.ErrorIs(t, err, ErrInvalidCategory)

	req = validReportRequest()
	req.EntityID = uuid.Nil
	_, err = svc.CreateReport(ctx, testUserID, req)
	assert.ErrorIs(t, err, ErrEntityRequired)

	req = validReportRequest()
	req.EntityID = uuid.New()
	_, err = svc.CreateReport(ctx, testUserID, req)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateReportRedactsDescription(t *testing.T) {
	svc, _ := newReportService()

	req := validReportRequest()
	req.Description = "They took my money and vanished completely. Call them on 0244123456 or mail kofi@fraud.com for proof."

	report, err := svc.CreateReport(context.Background(), testUserID, req)
	require.NoError(t, err)

	assert.NotContains(t, report.Description, "0244123456")
	assert.NotContains(t, report.Description, "kofi@fraud.com")
	assert.Contains(t, report.Description, "[PHONE_REDACTED]")
	assert.Contains(t, report.Description, "[EMAIL_REDACTED]")

	// The raw text survives for moderators only.
	assert.Equal(t, req.Description, report.OriginalDescription)
}

func TestCreateReportAlwaysStartsPending(t *testing.T) {
	svc, _ := newReportService()

	report, err := svc.CreateReport(context.Background(), testUserID, validReportRequest())
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, report.Status)
	assert.Equal(t, testUserID, report.ReporterID)
}

func TestCreateReportWithNewEntity(t *testing.T) {
	svc, _ := newReportService()
	ctx := context.Background()

	req := validReportRequest()
	req.EntityID = uuid.Nil
	req.NewEntity = &dto.CreateEntityRequest{
		Name: "Osu Night Market",
		Type: models.EntityTypeCompany,
	}

	report, err := svc.CreateReport(ctx, testUserID, req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, report.EntityID)

	entity, err := svc.GetEntity(ctx, report.EntityID)
	require.NoError(t, err)
	assert.Equal(t, "Osu Night Market", entity.Name)
	assert.False(t, entity.Verified)

	// A new-entity block with no usable name is refused.
	req = validReportRequest()
	req.EntityID = uuid.Nil
	req.NewEntity = &dto.CreateEntityRequest{Name: "   ", Type: models.EntityTypeCompany}
	_, err = svc.CreateReport(ctx, testUserID, req)
	assert.ErrorIs(t, err, ErrEntityRequired)
}

func TestCreateReplyDefaultsEntityFromReport(t *testing.T) {
	svc, _ := newReportService()
	ctx := context.Background()

	report, err := svc.CreateReport(ctx, testUserID, validReportRequest())
	require.NoError(t, err)

	reply, err := svc.CreateReply(ctx, report.ID, &dto.CreateReplyRequest{
		Content: "We are sorry about this and have issued a refund.",
	})
	require.NoError(t, err)
	assert.Equal(t, report.EntityID, reply.EntityID)
	assert.Equal(t, models.StatusPending, reply.Status)

	_, err = svc.CreateReply(ctx, uuid.New(), &dto.CreateReplyRequest{
		Content: "Reply to a report that does not exist.",
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func evidenceOf(name, contentType, content string) EvidenceFile {
	return EvidenceFile{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func TestUploadEvidence(t *testing.T) {
	svc, blobs := newReportService()
	ctx := context.Background()

	report, err := svc.CreateReport(ctx, testUserID, validReportRequest())
	require.NoError(t, err)

	records, err := svc.UploadEvidence(ctx, report.ID, []EvidenceFile{
		evidenceOf("receipt.jpg", "image/jpeg", "jpeg-bytes"),
		evidenceOf("contract.pdf", "application/pdf", "pdf-bytes"),
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2, blobs.Len())

	for _, rec := range records {
		assert.Equal(t, report.ID, rec.ReportID)
		assert.True(t, strings.HasPrefix(rec.FilePath, "mock-storage/"+report.ID.String()+"/"))
	}

	got, err := svc.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Len(t, got.Evidence, 2)
}

func TestUploadEvidenceRejectsBatchBeforeStorage(t *testing.T) {
	svc, blobs := newReportService()
	ctx := context.Background()

	report, err := svc.CreateReport(ctx, testUserID, validReportRequest())
	require.NoError(t, err)

	sixFiles := make([]EvidenceFile, 6)
	for i := range sixFiles {
		sixFiles[i] = evidenceOf("f.png", "image/png", "png-bytes")
	}
	_, err = svc.UploadEvidence(ctx, report.ID, sixFiles)
	assert.ErrorIs(t, err, ErrTooManyFiles)

	tooBig := evidenceOf("huge.png", "image/png", "x")
	tooBig.Size = models.MaxEvidenceFileSize + 1
	_, err = svc.UploadEvidence(ctx, report.ID, []EvidenceFile{tooBig})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = svc.UploadEvidence(ctx, report.ID, []EvidenceFile{
		evidenceOf("ok.png", "image/png", "png-bytes"),
		evidenceOf("script.sh", "application/x-sh", "#!/bin/sh"),
	})
	assert.ErrorIs(t, err, ErrBadFileType)

	// A bad batch never touches blob storage.
	assert.Zero(t, blobs.Len())

	_, err = svc.UploadEvidence(ctx, uuid.New(), []EvidenceFile{
		evidenceOf("ok.png", "image/png", "png-bytes"),
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUploadEvidenceCountsExistingFiles(t *testing.T) {
	svc, _ := newReportService()
	ctx := context.Background()

	report, err := svc.CreateReport(ctx, testUserID, validReportRequest())
	require.NoError(t, err)

	_, err = svc.UploadEvidence(ctx, report.ID, []EvidenceFile{
		evidenceOf("1.png", "image/png", "a"),
		evidenceOf("2.png", "image/png", "b"),
		evidenceOf("3.png", "image/png", "c"),
	})
	require.NoError(t, err)

	_, err = svc.UploadEvidence(ctx, report.ID, []EvidenceFile{
		evidenceOf("4.png", "image/png", "d"),
		evidenceOf("5.png", "image/png", "e"),
		evidenceOf("6.png", "image/png", "f"),
	})
	assert.ErrorIs(t, err, ErrTooManyFiles)

	_, err = svc.UploadEvidence(ctx, report.ID, []EvidenceFile{
		evidenceOf("4.png", "image/png", "d"),
		evidenceOf("5.png", "image/png", "e"),
	})
	assert.NoError(t, err)
}

func TestStorageKeySanitizesFilename(t *testing.T) {
	reportID := uuid.New()
	key := storageKey(reportID, "my receipt (final).pdf")

	assert.True(t, strings.HasPrefix(key, reportID.String()+"/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.NotContains(t, key, " ")
	assert.NotContains(t, key, "(")
}
