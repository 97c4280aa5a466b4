package types

import (
	"github.com/google/uuid"

	"vibetravel/entities"
)

// GenerateOut is the wire shape of a generation attempt. The generation_id
// is single-use: it can be folded into at most one persisted plan.
type GenerateOut struct {
	GenerationID uuid.UUID           `json:"generation_id"`
	PlanText     string              `json:"plan_text"`
	Status       entities.PlanStatus `json:"status"`
}

// CreateOrAcceptIn covers the three create shapes:
// only generation_id (accept AI proposal verbatim), both fields (hybrid),
// only plan_text (manual).
type CreateOrAcceptIn struct {
	GenerationID *uuid.UUID `json:"generation_id,omitempty"`
	PlanText     *string    `json:"plan_text,omitempty"`
}

type UpdateIn struct {
	PlanText string `json:"plan_text"`
}
