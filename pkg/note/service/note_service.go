package service

import (
	"time"

	"github.com/google/uuid"

	"vibetravel/entities"
)

type NoteInput struct {
	Title          string
	Place          string
	DateFrom       time.Time
	DateTo         time.Time
	NumberOfPeople int
	KeyIdeas       string
}

type ListQuery struct {
	Search string
	Limit  int
	Offset int
}

type NoteService interface {
	Create(userID uuid.UUID, in NoteInput) (*entities.Note, error)
	Get(id uint, userID uuid.UUID) (*entities.Note, error)
	List(userID uuid.UUID, q ListQuery) ([]entities.Note, int64, error)
	Update(id uint, userID uuid.UUID, in NoteInput) (*entities.Note, error)
	Delete(id uint, userID uuid.UUID) error
}
