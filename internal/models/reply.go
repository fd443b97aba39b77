package models

import (
	"time"

	"github.com/google/uuid"
)

// Reply is an entity's response to a published report. Replies are
// moderated independently of their parent report and only become
// publicly visible once approved.
type Reply struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportID  uuid.UUID `gorm:"type:uuid;not null;index" json:"report_id"`
	EntityID  uuid.UUID `gorm:"type:uuid;not null;index" json:"entity_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Status    string    `gorm:"not null;default:'pending';size:20;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Entity    *Entity   `gorm:"foreignKey:EntityID" json:"entity,omitempty"`
	Report    *Report   `gorm:"foreignKey:ReportID" json:"report,omitempty"`
}
