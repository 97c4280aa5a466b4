package serviceImp

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vibetravel/entities"
	"vibetravel/pkg/ai"
	"vibetravel/pkg/apperr"
	noterepo "vibetravel/pkg/note/repository"
	planrepo "vibetravel/pkg/plan/repository"
	"vibetravel/pkg/plan/service"
	"vibetravel/pkg/plan/types"
	profilerepo "vibetravel/pkg/profile/repository"
)

type PlanSvc struct {
	llm      ai.Client
	plans    planrepo.PlanRepository
	notes    noterepo.NoteRepository
	profiles profilerepo.ProfileRepository
}

var _ service.PlanService = (*PlanSvc)(nil)

func NewPlanService(llm ai.Client, pr planrepo.PlanRepository, nr noterepo.NoteRepository, ur profilerepo.ProfileRepository) *PlanSvc {
	return &PlanSvc{llm: llm, plans: pr, notes: nr, profiles: ur}
}

func (s *PlanSvc) GetActive(noteID uint, userID uuid.UUID) (*entities.Plan, error) {
	if _, err := s.ownedNote(noteID, userID); err != nil {
		return nil, err
	}
	return s.plans.ActiveByNote(noteID)
}

func (s *PlanSvc) Generate(ctx context.Context, noteID uint, userID uuid.UUID) (*types.GenerateOut, error) {
	note, err := s.ownedNote(noteID, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	text, err := s.llm.GeneratePlan(ctx, ai.PromptInput{Note: note, Profile: profile})
	if err != nil {
		return nil, err
	}
	text = clipRunes(strings.TrimSpace(text), entities.PlanTextMaxLength)
	if text == "" {
		return nil, apperr.Unavailable("generation produced no text")
	}

	g := &entities.Generation{ID: uuid.New(), NoteID: noteID, PlanText: text}
	if err := s.plans.CreateGeneration(g); err != nil {
		return nil, err
	}
	return &types.GenerateOut{
		GenerationID: g.ID,
		PlanText:     g.PlanText,
		Status:       entities.StatusPendingAI,
	}, nil
}

func (s *PlanSvc) CreateOrAccept(noteID uint, userID uuid.UUID, in types.CreateOrAcceptIn) (*entities.Plan, error) {
	if _, err := s.ownedNote(noteID, userID); err != nil {
		return nil, err
	}

	// Empty plan_text counts as absent.
	text := ""
	if in.PlanText != nil {
		text = *in.PlanText
	}
	if in.GenerationID == nil && text == "" {
		return nil, apperr.Validation("either generation_id or plan_text must be provided")
	}
	if utf8.RuneCountInString(text) > entities.PlanTextMaxLength {
		return nil, apperr.Validation("plan_text must be at most %d characters", entities.PlanTextMaxLength)
	}

	// Pre-check for a clean error; the partial unique index still guards
	// the concurrent case below.
	if existing, err := s.plans.ActiveByNote(noteID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperr.Conflict("an active plan already exists for note %d", noteID)
	}

	p := &entities.Plan{
		NoteID: noteID,
		Status: entities.StatusActive,
	}
	if in.GenerationID != nil {
		g, err := s.plans.GenerationByID(*in.GenerationID)
		if err != nil {
			return nil, err
		}
		if g == nil || g.NoteID != noteID {
			return nil, apperr.Conflict("generation %s is unknown or stale for note %d", *in.GenerationID, noteID)
		}
		gid := g.ID
		p.GenerationID = &gid
		if text == "" {
			// Accepting the proposal verbatim: the stored generation record
			// is the canonical text, not whatever copy the client held.
			p.PlanText = g.PlanText
			p.Provenance = entities.ProvenanceAI
		} else {
			p.PlanText = text
			p.Provenance = entities.ProvenanceHybrid
		}
	} else {
		p.PlanText = text
		p.Provenance = entities.ProvenanceManual
	}

	if err := s.plans.Create(p); err != nil {
		return nil, mapCreateConflict(err, noteID, in.GenerationID)
	}
	return p, nil
}

func (s *PlanSvc) Update(noteID uint, userID uuid.UUID, planText string) (*entities.Plan, error) {
	if _, err := s.ownedNote(noteID, userID); err != nil {
		return nil, err
	}
	if planText == "" {
		return nil, apperr.Validation("plan_text must not be empty")
	}
	if utf8.RuneCountInString(planText) > entities.PlanTextMaxLength {
		return nil, apperr.Validation("plan_text must be at most %d characters", entities.PlanTextMaxLength)
	}

	p, err := s.plans.ActiveByNote(noteID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("no active plan exists for note %d", noteID)
	}

	// Provenance is recomputed server-side: editing an accepted AI plan
	// makes it hybrid; identical text leaves it untouched (idempotent).
	if planText != p.PlanText && p.Provenance == entities.ProvenanceAI {
		p.Provenance = entities.ProvenanceHybrid
	}
	p.PlanText = planText
	if err := s.plans.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlanSvc) ownedNote(noteID uint, userID uuid.UUID) (*entities.Note, error) {
	n, err := s.notes.FindByID(noteID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("note %d not found", noteID)
		}
		return nil, err
	}
	return n, nil
}

// mapCreateConflict translates the unique-index violations the insert can
// hit under concurrency into the conflicts the client reconciles on.
func mapCreateConflict(err error, noteID uint, genID *uuid.UUID) error {
	msg := err.Error()
	if strings.Contains(msg, "uniq_active_plan_per_note") {
		return apperr.Conflict("an active plan already exists for note %d", noteID)
	}
	if genID != nil && strings.Contains(msg, "generation_id") {
		return apperr.Conflict("generation %s was already consumed", *genID)
	}
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return apperr.Conflict("an active plan already exists for note %d", noteID)
	}
	return err
}

func clipRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	rs := []rune(s)
	return string(rs[:max])
}
