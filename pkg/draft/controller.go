package draft

import (
	"context"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"vibetravel/entities"
	"vibetravel/pkg/plan/types"
)

// Controller owns exactly one draft for an open note view. It serializes
// Generate/Save/Load (a second call while one is in flight gets ErrBusy)
// and never applies a partial result: on any failed call the draft is left
// exactly as it was before.
type Controller struct {
	api    PlanAPI
	noteID uint

	mu       sync.Mutex
	inFlight bool

	planID         *uint
	text           string
	provenance     entities.Provenance
	pendingGenID   *uuid.UUID
	pendingGenText string
	lastSavedText  string
	lastSavedProv  entities.Provenance
	loaded         bool
}

func NewController(api PlanAPI, noteID uint) *Controller {
	return &Controller{api: api, noteID: noteID}
}

// Load fetches the active plan and re-seeds the draft from it, dropping any
// pending generation and unsaved edits. Also used to reconcile after a
// Conflict signalled a lost update.
func (c *Controller) Load(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	p, err := c.api.GetActive(ctx, c.noteID)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.seed(p)
	c.mu.Unlock()
	return nil
}

// Generate asks the gateway for a proposal and installs it as the draft
// text. When the draft holds unsaved work the caller must have obtained an
// explicit overwrite confirmation first; without it nothing is touched.
func (c *Controller) Generate(ctx context.Context, overwriteConfirmed bool) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.canSaveLocked() && !overwriteConfirmed {
		c.mu.Unlock()
		return ErrUnsavedChanges
	}
	c.inFlight = true
	c.mu.Unlock()
	defer c.end()

	res, err := c.api.Generate(ctx, c.noteID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	gid := res.GenerationID
	c.text = res.PlanText
	c.provenance = entities.ProvenanceAI
	c.pendingGenID = &gid
	c.pendingGenText = res.PlanText
	// planID and the last-saved snapshot stay as they are: the proposal is
	// not persisted until the user saves it.
	c.mu.Unlock()
	return nil
}

// EditText applies a keystroke-level text change and recomputes provenance.
func (c *Controller) EditText(newText string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.text = newText
	switch {
	case c.loaded && newText == c.lastSavedText:
		// Reverting to the saved text collapses the draft back to Saved.
		// A pending generation is abandoned: its id must never be sent.
		c.provenance = c.lastSavedProv
		c.pendingGenID = nil
		c.pendingGenText = ""
	case c.pendingGenID != nil && newText == c.pendingGenText:
		c.provenance = entities.ProvenanceAI
	case c.hasAIAncestryLocked():
		c.provenance = entities.ProvenanceHybrid
	default:
		c.provenance = entities.ProvenanceManual
	}
}

// Save persists the draft: create-or-accept when no plan id is bound yet,
// update otherwise. On success the draft converges to the server's echo
// (the server is the source of truth for provenance and, for a verbatim
// AI accept, for the canonical text).
func (c *Controller) Save(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	if !c.canSaveLocked() {
		c.mu.Unlock()
		return ErrNothingToSave
	}
	planID := c.planID
	req, err := c.buildCreateLocked()
	if planID == nil && err != nil {
		c.mu.Unlock()
		return err
	}
	text := c.text
	c.inFlight = true
	c.mu.Unlock()
	defer c.end()

	var saved *entities.Plan
	if planID == nil {
		saved, err = c.api.CreateOrAccept(ctx, c.noteID, req)
	} else {
		saved, err = c.api.Update(ctx, c.noteID, types.UpdateIn{PlanText: text})
	}
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.seed(saved)
	c.mu.Unlock()
	return nil
}

// Discard reverts the draft to the last persisted snapshot, dropping any
// pending generation and unsaved edits.
func (c *Controller) Discard() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return ErrNotLoaded
	}
	if !c.dirtyLocked() {
		return ErrNothingToDiscard
	}
	c.text = c.lastSavedText
	c.provenance = c.lastSavedProv
	c.pendingGenID = nil
	c.pendingGenText = ""
	return nil
}

func (c *Controller) CanSave() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSaveLocked()
}

func (c *Controller) CanDiscard() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded && c.dirtyLocked()
}

// State derives the provenance label shown to the user.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.pendingGenID != nil && c.text == c.pendingGenText:
		return StateAIProposal
	case c.pendingGenID == nil && c.text == c.lastSavedText:
		if c.planID == nil && c.text == "" {
			return StateEmpty
		}
		return StateSaved
	case c.provenance == entities.ProvenanceHybrid:
		return StateHybrid
	default:
		return StateManual
	}
}

// Snapshot returns a copy of the draft for rendering.
func (c *Controller) Snapshot() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := Draft{
		NoteID:              c.noteID,
		Text:                c.text,
		Provenance:          c.provenance,
		LastSavedText:       c.lastSavedText,
		LastSavedProvenance: c.lastSavedProv,
		Dirty:               c.dirtyLocked(),
	}
	if c.planID != nil {
		id := *c.planID
		d.PlanID = &id
	}
	if c.pendingGenID != nil {
		gid := *c.pendingGenID
		d.PendingGenerationID = &gid
	}
	return d
}

// seed resets the draft from a persisted snapshot (nil means "no plan").
// Caller holds the lock.
func (c *Controller) seed(p *entities.Plan) {
	if p == nil {
		c.planID = nil
		c.text = ""
		c.provenance = ""
		c.lastSavedText = ""
		c.lastSavedProv = ""
	} else {
		id := p.ID
		c.planID = &id
		c.text = p.PlanText
		c.provenance = p.Provenance
		c.lastSavedText = p.PlanText
		c.lastSavedProv = p.Provenance
	}
	c.pendingGenID = nil
	c.pendingGenText = ""
	c.loaded = true
}

func (c *Controller) dirtyLocked() bool {
	return c.text != c.lastSavedText || (c.pendingGenID != nil && c.planID == nil)
}

func (c *Controller) canSaveLocked() bool {
	return c.dirtyLocked() &&
		utf8.RuneCountInString(c.text) <= entities.PlanTextMaxLength &&
		(c.text != "" || c.pendingGenID != nil)
}

func (c *Controller) hasAIAncestryLocked() bool {
	return c.pendingGenID != nil ||
		c.lastSavedProv == entities.ProvenanceAI ||
		c.lastSavedProv == entities.ProvenanceHybrid
}

// buildCreateLocked constructs the create-or-accept payload from the
// draft's provenance. Caller holds the lock; only meaningful when no plan
// id is bound yet.
func (c *Controller) buildCreateLocked() (types.CreateOrAcceptIn, error) {
	switch {
	case c.pendingGenID != nil && c.text == c.pendingGenText:
		// Unmodified proposal: send only the generation id, the server
		// re-derives the canonical text from the generation record.
		gid := *c.pendingGenID
		return types.CreateOrAcceptIn{GenerationID: &gid}, nil
	case c.pendingGenID != nil:
		gid := *c.pendingGenID
		text := c.text
		return types.CreateOrAcceptIn{GenerationID: &gid, PlanText: &text}, nil
	default:
		if c.text == "" {
			return types.CreateOrAcceptIn{}, ErrEmptyPlan
		}
		text := c.text
		return types.CreateOrAcceptIn{PlanText: &text}, nil
	}
}

func (c *Controller) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight {
		return ErrBusy
	}
	c.inFlight = true
	return nil
}

func (c *Controller) end() {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
}
