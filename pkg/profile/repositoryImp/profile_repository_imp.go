package repositoryImp

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vibetravel/entities"
	"vibetravel/pkg/profile/repository"
)

type profileRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProfileRepository { return &profileRepo{db} }

func (r *profileRepo) FindByUser(userID uuid.UUID) (*entities.UserProfile, error) {
	var p entities.UserProfile
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Upsert(p *entities.UserProfile) error {
	var existing entities.UserProfile
	err := r.db.Where("user_id = ?", p.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(p).Error
	}
	if err != nil {
		return err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	return r.db.Save(p).Error
}
