package repository

import (
	"github.com/google/uuid"

	"vibetravel/entities"
)

type PlanRepository interface {
	// ActiveByNote returns nil (no error) when the note has no ACTIVE plan.
	ActiveByNote(noteID uint) (*entities.Plan, error)
	Create(p *entities.Plan) error
	Save(p *entities.Plan) error

	CreateGeneration(g *entities.Generation) error
	// GenerationByID returns nil (no error) when no such generation exists.
	GenerationByID(id uuid.UUID) (*entities.Generation, error)
}
