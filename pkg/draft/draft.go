// Package draft holds the client-side working copy of a note's plan and
// the rules for reconciling it against the server's single active plan.
package draft

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"vibetravel/entities"
	"vibetravel/pkg/plan/types"
)

// State labels what the draft currently is, derived from its fields.
type State string

const (
	// StateEmpty: no text, nothing persisted, nothing generated.
	StateEmpty State = "EMPTY"
	// StateSaved: the draft mirrors the persisted record exactly.
	StateSaved State = "SAVED"
	// StateAIProposal: text is a fresh generation result, unedited and not
	// yet persisted under this text.
	StateAIProposal State = "AI_PROPOSAL"
	// StateHybrid: text originated from a proposal but was edited away from it.
	StateHybrid State = "HYBRID"
	// StateManual: text has no AI origin in its ancestry.
	StateManual State = "MANUAL"
)

var (
	// ErrBusy is returned when a Generate/Save/Load overlaps one in flight.
	ErrBusy = errors.New("draft: operation already in flight")
	// ErrUnsavedChanges is returned by Generate when the draft is dirty and
	// the caller did not confirm the overwrite.
	ErrUnsavedChanges   = errors.New("draft: unsaved changes, overwrite not confirmed")
	ErrNothingToSave    = errors.New("draft: nothing to save")
	ErrNothingToDiscard = errors.New("draft: nothing to discard")
	ErrEmptyPlan        = errors.New("draft: plan text is empty")
	ErrNotLoaded        = errors.New("draft: no persisted snapshot loaded")
)

// PlanAPI is the persistence service as seen from the client. GetActive
// returns nil when the note has no active plan.
type PlanAPI interface {
	GetActive(ctx context.Context, noteID uint) (*entities.Plan, error)
	Generate(ctx context.Context, noteID uint) (*types.GenerateOut, error)
	CreateOrAccept(ctx context.Context, noteID uint, in types.CreateOrAcceptIn) (*entities.Plan, error)
	Update(ctx context.Context, noteID uint, in types.UpdateIn) (*entities.Plan, error)
}

// Draft is a snapshot of the controller's working copy, for display.
type Draft struct {
	NoteID              uint
	PlanID              *uint
	Text                string
	Provenance          entities.Provenance
	PendingGenerationID *uuid.UUID
	LastSavedText       string
	LastSavedProvenance entities.Provenance
	Dirty               bool
}
