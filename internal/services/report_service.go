package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kofidarko/gyidie-backend/internal/blob"
	"github.com/kofidarko/gyidie-backend/internal/dto"
	"github.com/kofidarko/gyidie-backend/internal/models"
	"github.com/kofidarko/gyidie-backend/internal/redact"
	"github.com/kofidarko/gyidie-backend/internal/store"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidType     = errors.New("report type must be positive or negative")
	ErrInvalidCategory = errors.New("category is not valid for this report type")
	ErrEntityRequired  = errors.New("an existing entity id or a new entity is required")
	ErrTooManyFiles    = errors.New("a report can have at most 5 evidence files")
	ErrFileTooLarge    = errors.New("evidence files must be 10MB or smaller")
	ErrBadFileType     = errors.New("only JPEG, PNG, GIF images and PDFs are accepted")
)

var filenamePattern = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// EvidenceFile is one file in an upload batch, decoupled from the
// multipart transport so the service can be exercised directly.
type EvidenceFile struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// ReportService owns report submission: validation, redaction, entity
// resolution and evidence upload.
type ReportService struct {
	store store.Store
	blobs blob.Store
}

func NewReportService(st store.Store, blobs blob.Store) *ReportService {
	return &ReportService{store: st, blobs: blobs}
}

// CreateReport validates and persists a submission. The stored
// description is always the redacted transform of the submitted text;
// the raw text is retained separately for moderators. Status is forced
// to pending regardless of any client input, and the reporter identity
// comes from the authenticated caller, never the request body.
func (s *ReportService) CreateReport(ctx context.Context, reporterID uuid.UUID, req *dto.CreateReportRequest) (*models.Report, error) {
	if reporterID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if !models.ValidReportType(req.Type) {
		return nil, ErrInvalidType
	}
	if !models.ValidCategory(req.Type, req.Category) {
		return nil, ErrInvalidCategory
	}

	entityID := req.EntityID
	if req.NewEntity != nil {
		entity := &models.Entity{
			Name:        strings.TrimSpace(req.NewEntity.Name),
			Type:        req.NewEntity.Type,
			Description: req.NewEntity.Description,
			Location:    req.NewEntity.Location,
		}
		if entity.Name == "" || !models.ValidEntityType(entity.Type) {
			return nil, ErrEntityRequired
		}
		if err := s.store.CreateEntity(ctx, entity); err != nil {
			return nil, err
		}
		entityID = entity.ID
	} else {
		if entityID == uuid.Nil {
			return nil, ErrEntityRequired
		}
		if _, err := s.store.GetEntity(ctx, entityID); err != nil {
			return nil, err
		}
	}

	report := &models.Report{
		EntityID:            entityID,
		ReporterID:          reporterID,
		Type:                req.Type,
		Category:            req.Category,
		Title:               strings.TrimSpace(req.Title),
		Description:         redact.Redact(req.Description),
		OriginalDescription: req.Description,
		IsAnonymous:         req.IsAnonymous,
	}
	if err := s.store.CreateReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) ListReports(ctx context.Context, filter store.ReportFilter) ([]models.Report, error) {
	return s.store.ListReports(ctx, filter)
}

func (s *ReportService) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	return s.store.GetReport(ctx, id)
}

func (s *ReportService) ListEntities(ctx context.Context) ([]models.Entity, error) {
	return s.store.ListEntities(ctx)
}

func (s *ReportService) GetEntity(ctx context.Context, id uuid.UUID) (*models.Entity, error) {
	return s.store.GetEntity(ctx, id)
}

func (s *ReportService) CreateEntity(ctx context.Context, req *dto.CreateEntityRequest) (*models.Entity, error) {
	entity := &models.Entity{
		Name:        strings.TrimSpace(req.Name),
		Type:        req.Type,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := s.store.CreateEntity(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// CreateReply files an entity response against a report. Replies start
// pending and surface publicly only after moderation.
func (s *ReportService) CreateReply(ctx context.Context, reportID uuid.UUID, req *dto.CreateReplyRequest) (*models.Reply, error) {
	report, err := s.store.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	reply := &models.Reply{
		ReportID: report.ID,
		EntityID: req.EntityID,
		Content:  req.Content,
	}
	if reply.EntityID == uuid.Nil {
		reply.EntityID = report.EntityID
	}
	if err := s.store.CreateReply(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// UploadEvidence validates the whole batch before touching storage,
// then uploads sequentially. A failure mid-batch aborts the remaining
// files; records created for earlier files are not rolled back.
func (s *ReportService) UploadEvidence(ctx context.Context, reportID uuid.UUID, files []EvidenceFile) ([]models.Evidence, error) {
	if _, err := s.store.GetReport(ctx, reportID); err != nil {
		return nil, err
	}

	existing, err := s.store.CountEvidence(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if existing+int64(len(files)) > models.MaxEvidencePerReport {
		return nil, ErrTooManyFiles
	}
	for _, f := range files {
		if f.Size > models.MaxEvidenceFileSize {
			return nil, ErrFileTooLarge
		}
		if !models.AllowedEvidenceTypes[f.ContentType] {
			return nil, ErrBadFileType
		}
	}

	records := make([]models.Evidence, 0, len(files))
	for _, f := range files {
		path, err := s.uploadFile(ctx, reportID, f)
		if err != nil {
			return records, fmt.Errorf("failed to upload %s: %w", f.Name, err)
		}

		evidence := &models.Evidence{
			ReportID: reportID,
			FilePath: path,
			FileName: f.Name,
			FileType: f.ContentType,
		}
		if err := s.store.CreateEvidence(ctx, evidence); err != nil {
			return records, err
		}
		records = append(records, *evidence)
	}
	return records, nil
}

func (s *ReportService) uploadFile(ctx context.Context, reportID uuid.UUID, f EvidenceFile) (string, error) {
	body, err := f.Open()
	if err != nil {
		return "", err
	}
	defer body.Close()

	key := storageKey(reportID, f.Name)
	return s.blobs.Put(ctx, key, f.ContentType, body)
}

// storageKey builds a collision-resistant key scoped under the report:
// sanitized extension, timestamp and a random suffix.
func storageKey(reportID uuid.UUID, name string) string {
	sanitized := filenamePattern.ReplaceAllString(name, "_")
	ext := filepath.Ext(sanitized)

	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)

	return fmt.Sprintf("%s/%d_%x%s", reportID, time.Now().UnixNano(), suffix, ext)
}
