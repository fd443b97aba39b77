package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ModerationActionApprove = "approve"
	ModerationActionReject  = "reject"
	ModerationActionRestore = "restore"
)

// Moderation is an audit record of a moderator decision. Notes attach
// here, never to the report itself.
type Moderation struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportID    uuid.UUID `gorm:"type:uuid;not null;index" json:"report_id"`
	ModeratorID uuid.UUID `gorm:"type:uuid;not null;index" json:"moderator_id"`
	Action      string    `gorm:"not null;size:20" json:"action"`
	Notes       string    `gorm:"size:1000" json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Moderation) TableName() string {
	return "moderations"
}
