package draft

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibetravel/entities"
	"vibetravel/pkg/apperr"
	"vibetravel/pkg/plan/types"
)

// fakeAPI mirrors the persistence service's contract in memory: at most one
// active plan, single-use generation ids, accept-by-id re-derives text.
type fakeAPI struct {
	active      *entities.Plan
	generations map[uuid.UUID]string
	nextPlanID  uint
	nextGenText string

	failGenerate error
	failSave     error

	lastCreate *types.CreateOrAcceptIn
	lastUpdate *types.UpdateIn
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		generations: map[uuid.UUID]string{},
		nextPlanID:  7,
		nextGenText: "Day 1...",
	}
}

func (f *fakeAPI) GetActive(_ context.Context, _ uint) (*entities.Plan, error) {
	if f.active == nil {
		return nil, nil
	}
	cp := *f.active
	return &cp, nil
}

func (f *fakeAPI) Generate(_ context.Context, noteID uint) (*types.GenerateOut, error) {
	if f.failGenerate != nil {
		return nil, f.failGenerate
	}
	gid := uuid.New()
	f.generations[gid] = f.nextGenText
	return &types.GenerateOut{GenerationID: gid, PlanText: f.nextGenText, Status: entities.StatusPendingAI}, nil
}

func (f *fakeAPI) CreateOrAccept(_ context.Context, noteID uint, in types.CreateOrAcceptIn) (*entities.Plan, error) {
	f.lastCreate = &in
	f.lastUpdate = nil
	if f.failSave != nil {
		return nil, f.failSave
	}
	if f.active != nil {
		return nil, apperr.Conflict("an active plan already exists")
	}
	p := &entities.Plan{ID: f.nextPlanID, NoteID: noteID, Status: entities.StatusActive}
	if in.GenerationID != nil {
		text, ok := f.generations[*in.GenerationID]
		if !ok {
			return nil, apperr.Conflict("generation unknown or consumed")
		}
		delete(f.generations, *in.GenerationID)
		gid := *in.GenerationID
		p.GenerationID = &gid
		if in.PlanText == nil || *in.PlanText == "" {
			p.PlanText = text
			p.Provenance = entities.ProvenanceAI
		} else {
			p.PlanText = *in.PlanText
			p.Provenance = entities.ProvenanceHybrid
		}
	} else {
		if in.PlanText == nil || *in.PlanText == "" {
			return nil, apperr.Validation("either generation_id or plan_text must be provided")
		}
		p.PlanText = *in.PlanText
		p.Provenance = entities.ProvenanceManual
	}
	f.active = p
	cp := *p
	return &cp, nil
}

func (f *fakeAPI) Update(_ context.Context, _ uint, in types.UpdateIn) (*entities.Plan, error) {
	f.lastUpdate = &in
	f.lastCreate = nil
	if f.failSave != nil {
		return nil, f.failSave
	}
	if f.active == nil {
		return nil, apperr.NotFound("no active plan")
	}
	if in.PlanText != f.active.PlanText && f.active.Provenance == entities.ProvenanceAI {
		f.active.Provenance = entities.ProvenanceHybrid
	}
	f.active.PlanText = in.PlanText
	cp := *f.active
	return &cp, nil
}

func newLoaded(t *testing.T, api *fakeAPI) *Controller {
	t.Helper()
	c := NewController(api, 1)
	require.NoError(t, c.Load(context.Background()))
	return c
}

func TestLoad_EmptyNote(t *testing.T) {
	c := newLoaded(t, newFakeAPI())

	assert.Equal(t, StateEmpty, c.State())
	assert.False(t, c.CanSave())
	assert.False(t, c.CanDiscard())
}

func TestLoad_ExistingAIPlan_NothingDirty(t *testing.T) {
	api := newFakeAPI()
	gid := uuid.New()
	api.active = &entities.Plan{
		ID: 7, NoteID: 1, PlanText: "Day 1...",
		Provenance: entities.ProvenanceAI, Status: entities.StatusActive,
		GenerationID: &gid,
	}
	c := newLoaded(t, api)

	assert.Equal(t, StateSaved, c.State())
	assert.False(t, c.CanSave())
	assert.False(t, c.CanDiscard())
	d := c.Snapshot()
	require.NotNil(t, d.PlanID)
	assert.Equal(t, uint(7), *d.PlanID)
	assert.Equal(t, entities.ProvenanceAI, d.Provenance)
}

func TestScenarioA_GenerateThenAcceptOnNewNote(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api)

	require.NoError(t, c.Generate(context.Background(), false))
	d := c.Snapshot()
	assert.Equal(t, StateAIProposal, c.State())
	assert.Equal(t, entities.ProvenanceAI, d.Provenance)
	assert.Nil(t, d.PlanID)
	assert.True(t, c.CanSave())

	require.NoError(t, c.Save(context.Background()))

	// Accept sends only the generation id; the server's text is canonical.
	require.NotNil(t, api.lastCreate)
	assert.NotNil(t, api.lastCreate.GenerationID)
	assert.Nil(t, api.lastCreate.PlanText)

	d = c.Snapshot()
	require.NotNil(t, d.PlanID)
	assert.Equal(t, uint(7), *d.PlanID)
	assert.Equal(t, entities.ProvenanceAI, d.Provenance)
	assert.False(t, c.CanSave())
	assert.Nil(t, d.PendingGenerationID)
	assert.Equal(t, StateSaved, c.State())
}

func TestScenarioB_EditAcceptedPlanUpdates(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api)
	require.NoError(t, c.Generate(context.Background(), false))
	require.NoError(t, c.Save(context.Background()))

	c.EditText("Day 1 revised...")
	assert.Equal(t, entities.ProvenanceHybrid, c.Snapshot().Provenance)
	assert.True(t, c.CanSave())

	require.NoError(t, c.Save(context.Background()))

	// planID is bound, so this must be an update, not create-or-accept.
	require.NotNil(t, api.lastUpdate)
	assert.Equal(t, "Day 1 revised...", api.lastUpdate.PlanText)
	assert.Equal(t, entities.ProvenanceHybrid, c.Snapshot().Provenance)
	assert.False(t, c.CanSave())
}

func TestScenarioD_ManualProvenanceWithoutGeneration(t *testing.T) {
	c := newLoaded(t, newFakeAPI())

	c.EditText("")
	assert.Equal(t, StateEmpty, c.State())
	c.EditText("My own plan")
	assert.Equal(t, entities.ProvenanceManual, c.Snapshot().Provenance)
	assert.Equal(t, StateManual, c.State())
	assert.True(t, c.CanSave())
}

func TestSave_ManualSendsOnlyPlanText(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api)
	c.EditText("My own plan")

	require.NoError(t, c.Save(context.Background()))
	require.NotNil(t, api.lastCreate)
	assert.Nil(t, api.lastCreate.GenerationID)
	require.NotNil(t, api.lastCreate.PlanText)
	assert.Equal(t, "My own plan", *api.lastCreate.PlanText)
	assert.Equal(t, entities.ProvenanceManual, c.Snapshot().Provenance)
}

func TestSave_HybridSendsBothFields(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api)
	require.NoError(t, c.Generate(context.Background(), false))
	c.EditText("Day 1... plus the harbour")

	assert.Equal(t, entities.ProvenanceHybrid, c.Snapshot().Provenance)
	require.NoError(t, c.Save(context.Background()))

	require.NotNil(t, api.lastCreate)
	assert.NotNil(t, api.lastCreate.GenerationID)
	require.NotNil(t, api.lastCreate.PlanText)
	assert.Equal(t, "Day 1... plus the harbour", *api.lastCreate.PlanText)
}

func TestEditText_RevertCollapsesToSavedAndAbandonsGeneration(t *testing.T) {
	api := newFakeAPI()
	api.active = &entities.Plan{
		ID: 7, NoteID: 1, PlanText: "saved text",
		Provenance: entities.ProvenanceManual, Status: entities.StatusActive,
	}
	c := newLoaded(t, api)

	require.NoError(t, c.Generate(context.Background(), false))
	assert.Equal(t, StateAIProposal, c.State())

	c.EditText("saved text")
	d := c.Snapshot()
	assert.Equal(t, StateSaved, c.State())
	assert.Equal(t, entities.ProvenanceManual, d.Provenance)
	assert.Nil(t, d.PendingGenerationID, "abandoned generation id must not be resubmittable")
	assert.False(t, c.CanSave())
	assert.False(t, c.CanDiscard())
}

func TestEditText_HybridCollapsesBackOnExactRevert(t *testing.T) {
	api := newFakeAPI()
	gid := uuid.New()
	api.active = &entities.Plan{
		ID: 7, NoteID: 1, PlanText: "Day 1...",
		Provenance: entities.ProvenanceAI, Status: entities.StatusActive,
		GenerationID: &gid,
	}
	c := newLoaded(t, api)

	c.EditText("Day 2...")
	assert.Equal(t, entities.ProvenanceHybrid, c.Snapshot().Provenance)
	assert.True(t, c.CanSave())

	c.EditText("Day 1...")
	assert.Equal(t, entities.ProvenanceAI, c.Snapshot().Provenance)
	assert.False(t, c.CanSave())
}

func TestGenerate_OverwriteGuard(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api)
	c.EditText("half-typed plan")
	require.True(t, c.CanSave())

	err := c.Generate(context.Background(), false)
	assert.ErrorIs(t, err, ErrUnsavedChanges)
	assert.Equal(t, "half-typed plan", c.Snapshot().Text)

	require.NoError(t, c.Generate(context.Background(), true))
	assert.Equal(t, "Day 1...", c.Snapshot().Text)
	assert.Equal(t, StateAIProposal, c.State())
}

func TestGenerate_FailureLeavesDraftUntouched(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api)
	c.EditText("my plan")
	api.failGenerate = apperr.Timeout("generation service timed out")

	err := c.Generate(context.Background(), true)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeTimeout))

	d := c.Snapshot()
	assert.Equal(t, "my plan", d.Text)
	assert.Equal(t, entities.ProvenanceManual, d.Provenance)
	assert.Nil(t, d.PendingGenerationID)
}

func TestSave_FailureLeavesDraftUntouched(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api)
	c.EditText("my plan")
	api.failSave = apperr.Conflict("an active plan already exists")

	err := c.Save(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeConflict))

	d := c.Snapshot()
	assert.Nil(t, d.PlanID)
	assert.Equal(t, "my plan", d.Text)
	assert.True(t, c.CanSave())
}

func TestSave_NothingToSave(t *testing.T) {
	c := newLoaded(t, newFakeAPI())
	assert.ErrorIs(t, c.Save(context.Background()), ErrNothingToSave)
}

func TestSave_RejectsOversizedText(t *testing.T) {
	c := newLoaded(t, newFakeAPI())
	big := make([]byte, entities.PlanTextMaxLength+1)
	for i := range big {
		big[i] = 'x'
	}
	c.EditText(string(big))
	assert.False(t, c.CanSave())
	assert.ErrorIs(t, c.Save(context.Background()), ErrNothingToSave)
}

func TestDiscard_RevertsToSnapshot(t *testing.T) {
	api := newFakeAPI()
	api.active = &entities.Plan{
		ID: 7, NoteID: 1, PlanText: "saved text",
		Provenance: entities.ProvenanceManual, Status: entities.StatusActive,
	}
	c := newLoaded(t, api)

	c.EditText("scribbles")
	require.True(t, c.CanDiscard())
	require.NoError(t, c.Discard())

	d := c.Snapshot()
	assert.Equal(t, "saved text", d.Text)
	assert.Equal(t, entities.ProvenanceManual, d.Provenance)
	assert.Equal(t, StateSaved, c.State())

	assert.ErrorIs(t, c.Discard(), ErrNothingToDiscard)
}

func TestDiscard_DropsPendingGeneration(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api)
	require.NoError(t, c.Generate(context.Background(), false))
	require.True(t, c.CanDiscard())

	require.NoError(t, c.Discard())
	d := c.Snapshot()
	assert.Equal(t, "", d.Text)
	assert.Nil(t, d.PendingGenerationID)
	assert.Equal(t, StateEmpty, c.State())
}

func TestBusy_SecondOperationRejected(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api)

	// Simulate an operation in flight.
	require.NoError(t, c.begin())
	assert.ErrorIs(t, c.Generate(context.Background(), true), ErrBusy)
	assert.ErrorIs(t, c.Save(context.Background()), ErrBusy)
	assert.ErrorIs(t, c.Load(context.Background()), ErrBusy)
	c.end()

	require.NoError(t, c.Generate(context.Background(), true))
}

func TestReload_ReconcilesAfterConflict(t *testing.T) {
	api := newFakeAPI()
	c := newLoaded(t, api)
	c.EditText("mine")
	// Someone else won the create race.
	api.active = &entities.Plan{
		ID: 9, NoteID: 1, PlanText: "theirs",
		Provenance: entities.ProvenanceManual, Status: entities.StatusActive,
	}

	err := c.Save(context.Background())
	assert.True(t, apperr.Is(err, apperr.CodeConflict))

	require.NoError(t, c.Load(context.Background()))
	d := c.Snapshot()
	require.NotNil(t, d.PlanID)
	assert.Equal(t, uint(9), *d.PlanID)
	assert.Equal(t, "theirs", d.Text)
	assert.False(t, c.CanSave())
}
