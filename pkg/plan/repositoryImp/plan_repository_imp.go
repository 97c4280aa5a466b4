package repositoryImp

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vibetravel/entities"
	"vibetravel/pkg/plan/repository"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) ActiveByNote(noteID uint) (*entities.Plan, error) {
	var p entities.Plan
	err := r.db.Where("note_id = ? AND status = ?", noteID, entities.StatusActive).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepo) Create(p *entities.Plan) error { return r.db.Create(p).Error }

func (r *planRepo) Save(p *entities.Plan) error { return r.db.Save(p).Error }

func (r *planRepo) CreateGeneration(g *entities.Generation) error { return r.db.Create(g).Error }

func (r *planRepo) GenerationByID(id uuid.UUID) (*entities.Generation, error) {
	var g entities.Generation
	err := r.db.Where("id = ?", id).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}
