package serviceImp

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vibetravel/entities"
	"vibetravel/pkg/apperr"
	"vibetravel/pkg/note/repository"
	"vibetravel/pkg/note/service"
)

const (
	titleMinLen      = 3
	titleMaxLen      = 255
	placeMinLen      = 3
	placeMaxLen      = 255
	keyIdeasMaxLen   = 2000
	minPeople        = 1
	maxPeople        = 20
	maxTripDays      = 14
	defaultListLimit = 20
	maxListLimit     = 100
)

type noteSvc struct{ notes repository.NoteRepository }

func New(notes repository.NoteRepository) service.NoteService { return &noteSvc{notes: notes} }

func (s *noteSvc) Create(userID uuid.UUID, in service.NoteInput) (*entities.Note, error) {
	if err := validate(&in); err != nil {
		return nil, err
	}
	n := &entities.Note{
		UserID:         userID,
		Title:          in.Title,
		Place:          in.Place,
		DateFrom:       in.DateFrom,
		DateTo:         in.DateTo,
		NumberOfPeople: in.NumberOfPeople,
		KeyIdeas:       in.KeyIdeas,
	}
	if err := s.notes.Create(n); err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict("a note titled %q already exists", in.Title)
		}
		return nil, err
	}
	return n, nil
}

func (s *noteSvc) Get(id uint, userID uuid.UUID) (*entities.Note, error) {
	n, err := s.notes.FindByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("note %d not found", id)
		}
		return nil, err
	}
	return n, nil
}

func (s *noteSvc) List(userID uuid.UUID, q service.ListQuery) ([]entities.Note, int64, error) {
	if q.Limit <= 0 {
		q.Limit = defaultListLimit
	}
	if q.Limit > maxListLimit {
		q.Limit = maxListLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return s.notes.List(userID, q.Search, q.Limit, q.Offset)
}

func (s *noteSvc) Update(id uint, userID uuid.UUID, in service.NoteInput) (*entities.Note, error) {
	n, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}
	if err := validate(&in); err != nil {
		return nil, err
	}
	n.Title = in.Title
	n.Place = in.Place
	n.DateFrom = in.DateFrom
	n.DateTo = in.DateTo
	n.NumberOfPeople = in.NumberOfPeople
	n.KeyIdeas = in.KeyIdeas
	if err := s.notes.Save(n); err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict("a note titled %q already exists", in.Title)
		}
		return nil, err
	}
	return n, nil
}

func (s *noteSvc) Delete(id uint, userID uuid.UUID) error {
	n, err := s.Get(id, userID)
	if err != nil {
		return err
	}
	return s.notes.Delete(n)
}

func validate(in *service.NoteInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Place = strings.TrimSpace(in.Place)
	if l := utf8.RuneCountInString(in.Title); l < titleMinLen || l > titleMaxLen {
		return apperr.Validation("title must be %d-%d characters", titleMinLen, titleMaxLen)
	}
	if l := utf8.RuneCountInString(in.Place); l < placeMinLen || l > placeMaxLen {
		return apperr.Validation("place must be %d-%d characters", placeMinLen, placeMaxLen)
	}
	if in.DateFrom.IsZero() || in.DateTo.IsZero() {
		return apperr.Validation("date_from and date_to are required")
	}
	if in.DateFrom.After(in.DateTo) {
		return apperr.Validation("date_from must be before or equal to date_to")
	}
	if days := int(in.DateTo.Sub(in.DateFrom).Hours() / 24); days > maxTripDays {
		return apperr.Validation("trip duration cannot exceed %d days", maxTripDays)
	}
	if in.NumberOfPeople < minPeople || in.NumberOfPeople > maxPeople {
		return apperr.Validation("number_of_people must be %d-%d", minPeople, maxPeople)
	}
	if utf8.RuneCountInString(in.KeyIdeas) > keyIdeasMaxLen {
		return apperr.Validation("key_ideas must be at most %d characters", keyIdeasMaxLen)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// glebarez/sqlite surfaces constraint failures as plain errors
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
