package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportTypePositive = "positive"
	ReportTypeNegative = "negative"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Report is a single user-submitted account of an experience with an
// Entity. Description holds the redacted text shown publicly;
// OriginalDescription retains the raw submission for moderator review
// and is never exposed through public endpoints.
type Report struct {
	ID                  uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EntityID            uuid.UUID  `gorm:"type:uuid;not null;index" json:"entity_id"`
	ReporterID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"reporter_id"`
	Type                string     `gorm:"not null;size:20" json:"type"`
	Category            string     `gorm:"not null;size:50" json:"category"`
	Title               string     `gorm:"not null;size:255" json:"title"`
	Description         string     `gorm:"type:text;not null" json:"description"`
	OriginalDescription string     `gorm:"type:text;not null" json:"-"`
	Status              string     `gorm:"not null;default:'pending';size:20;index" json:"status"`
	IsAnonymous         bool       `gorm:"default:false" json:"is_anonymous"`
	CreatedAt           time.Time  `json:"created_at"`
	Entity              *Entity    `gorm:"foreignKey:EntityID" json:"entity,omitempty"`
	Evidence            []Evidence `gorm:"foreignKey:ReportID" json:"evidence,omitempty"`
	Replies             []Reply    `gorm:"foreignKey:ReportID" json:"replies,omitempty"`
	Reporter            User       `gorm:"foreignKey:ReporterID" json:"-"`
}

// ReportCategories is the fixed per-type category vocabulary.
var ReportCategories = map[string][]string{
	ReportTypeNegative: {
		"Fraud",
		"Scam",
		"Theft",
		"Poor Service",
		"Misconduct",
		"Unprofessional Behavior",
		"Breach of Contract",
		"Overcharging",
		"Discrimination",
		"Other",
	},
	ReportTypePositive: {
		"Excellent Service",
		"Honesty",
		"Refund Provided",
		"Community Contribution",
		"Fair Pricing",
		"Professional Conduct",
		"Timely Delivery",
		"Going Above and Beyond",
		"Transparency",
		"Other",
	},
}

func ValidReportType(t string) bool {
	return t == ReportTypePositive || t == ReportTypeNegative
}

func ValidCategory(reportType, category string) bool {
	for _, c := range ReportCategories[reportType] {
		if c == category {
			return true
		}
	}
	return false
}

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}
