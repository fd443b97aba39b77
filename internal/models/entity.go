package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EntityTypeCompany    = "company"
	EntityTypeIndividual = "individual"
)

// Entity is a company or individual that reports are filed about.
type Entity struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:255;index" json:"name"`
	Type        string    `gorm:"not null;size:20" json:"type"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Location    string    `gorm:"size:255" json:"location,omitempty"`
	Verified    bool      `gorm:"default:false" json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
}

func ValidEntityType(t string) bool {
	return t == EntityTypeCompany || t == EntityTypeIndividual
}
