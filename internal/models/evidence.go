package models

import (
	"time"

	"github.com/google/uuid"
)

// Evidence upload limits, enforced before any storage call.
const (
	MaxEvidencePerReport = 5
	MaxEvidenceFileSize  = 10 * 1024 * 1024
)

// AllowedEvidenceTypes lists the accepted MIME types for evidence files.
var AllowedEvidenceTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
}

// Evidence is a file attachment supporting a Report. FilePath is an
// opaque blob-storage locator; records are immutable once created.
type Evidence struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportID  uuid.UUID `gorm:"type:uuid;not null;index" json:"report_id"`
	FilePath  string    `gorm:"not null;size:512" json:"file_path"`
	FileName  string    `gorm:"not null;size:255" json:"file_name"`
	FileType  string    `gorm:"not null;size:100" json:"file_type"`
	CreatedAt time.Time `json:"created_at"`
}
