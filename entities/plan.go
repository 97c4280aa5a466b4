package entities

import (
	"time"

	"github.com/google/uuid"
)

const PlanTextMaxLength = 5000

type Provenance string

const (
	ProvenanceAI     Provenance = "AI"
	ProvenanceManual Provenance = "MANUAL"
	ProvenanceHybrid Provenance = "HYBRID"
)

type PlanStatus string

const (
	StatusPendingAI PlanStatus = "PENDING_AI"
	StatusActive    PlanStatus = "ACTIVE"
	StatusArchived  PlanStatus = "ARCHIVED"
)

// Plan is the durable record of "the plan for a note". At most one ACTIVE
// plan may exist per note; that is enforced by a partial unique index
// created in database.OpenSQLite, not by application locking. A non-null
// GenerationID is unique across all plans, so a generation attempt can be
// folded into at most one plan.
type Plan struct {
	ID           uint       `gorm:"primaryKey" json:"plan_id"`
	NoteID       uint       `gorm:"not null;index" json:"note_id"`
	PlanText     string     `gorm:"size:5000;not null" json:"plan_text"`
	Provenance   Provenance `gorm:"size:16;not null" json:"plan_type"`
	Status       PlanStatus `gorm:"size:16;not null" json:"plan_status"`
	GenerationID *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"generation_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Generation records one invocation of the text-generation service. It is
// never exposed as a plan; it only exists so that accepting a proposal by
// generation_id can re-derive the canonical text server-side.
type Generation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"generation_id"`
	NoteID    uint      `gorm:"not null;index" json:"note_id"`
	PlanText  string    `gorm:"size:5000;not null" json:"plan_text"`
	CreatedAt time.Time `json:"created_at"`
}
