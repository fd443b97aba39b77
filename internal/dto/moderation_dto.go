package dto

import "github.com/kofidarko/gyidie-backend/internal/models"

type ModerateRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Notes  string `json:"notes,omitempty" validate:"max=1000"`
}

type ApproveAllResponse struct {
	Approved int64 `json:"approved"`
}

// AdminReport is the moderator-facing view of a report. The raw
// submitted text is kept off models.Report's JSON (json:"-") so no
// public endpoint can leak it; this wrapper re-exposes it for the
// admin surface only, where moderators compare it against the
// redacted version.
type AdminReport struct {
	models.Report
	OriginalDescription string `json:"original_description"`
}

func NewAdminReport(report models.Report) AdminReport {
	return AdminReport{Report: report, OriginalDescription: report.OriginalDescription}
}

func NewAdminReports(reports []models.Report) []AdminReport {
	out := make([]AdminReport, len(reports))
	for i, r := range reports {
		out[i] = NewAdminReport(r)
	}
	return out
}
