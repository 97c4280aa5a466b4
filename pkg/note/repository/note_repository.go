package repository

import (
	"github.com/google/uuid"

	"vibetravel/entities"
)

type NoteRepository interface {
	Create(n *entities.Note) error
	// FindByID returns the note only when it exists and belongs to userID.
	FindByID(id uint, userID uuid.UUID) (*entities.Note, error)
	List(userID uuid.UUID, search string, limit, offset int) ([]entities.Note, int64, error)
	Save(n *entities.Note) error
	Delete(n *entities.Note) error
}
