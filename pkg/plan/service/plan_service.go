package service

import (
	"context"

	"github.com/google/uuid"

	"vibetravel/entities"
	"vibetravel/pkg/plan/types"
)

type PlanService interface {
	// GetActive returns the ACTIVE plan for the note, or nil when none exists.
	GetActive(noteID uint, userID uuid.UUID) (*entities.Plan, error)
	// Generate invokes the generation gateway and records the attempt.
	// It never touches persisted plans.
	Generate(ctx context.Context, noteID uint, userID uuid.UUID) (*types.GenerateOut, error)
	// CreateOrAccept inserts the first ACTIVE plan for a note. Fails with
	// Conflict when one already exists or when the generation id was
	// already consumed.
	CreateOrAccept(noteID uint, userID uuid.UUID, in types.CreateOrAcceptIn) (*entities.Plan, error)
	// Update mutates the existing ACTIVE plan in place. Fails with NotFound
	// when there is none.
	Update(noteID uint, userID uuid.UUID, planText string) (*entities.Plan, error)
}
