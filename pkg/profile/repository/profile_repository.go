package repository

import (
	"github.com/google/uuid"

	"vibetravel/entities"
)

type ProfileRepository interface {
	// FindByUser returns nil (no error) when the user has no profile yet.
	FindByUser(userID uuid.UUID) (*entities.UserProfile, error)
	Upsert(p *entities.UserProfile) error
}
