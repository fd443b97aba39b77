package dto

import "github.com/google/uuid"

type CreateEntityRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Type        string `json:"type" validate:"required,oneof=company individual"`
	Description string `json:"description,omitempty" validate:"max=2000"`
	Location    string `json:"location,omitempty" validate:"max=255"`
}

// CreateReportRequest carries a report submission. A status field, if
// a client sends one, is deliberately absent here: reports always
// start pending. NewEntity lets a reporter register an unknown entity
// in the same submission.
type CreateReportRequest struct {
	EntityID    uuid.UUID            `json:"entity_id,omitempty"`
	NewEntity   *CreateEntityRequest `json:"new_entity,omitempty"`
	Type        string               `json:"type" validate:"required,oneof=positive negative"`
	Category    string               `json:"category" validate:"required"`
	Title       string               `json:"title" validate:"required,max=255"`
	Description string               `json:"description" validate:"required,min=50"`
	IsAnonymous bool                 `json:"is_anonymous"`
}

type CreateReplyRequest struct {
	EntityID uuid.UUID `json:"entity_id"`
	Content  string    `json:"content" validate:"required,min=10,max=2000"`
}
