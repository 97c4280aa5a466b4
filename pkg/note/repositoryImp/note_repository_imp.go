package repositoryImp

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vibetravel/entities"
	"vibetravel/pkg/note/repository"
)

type noteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NoteRepository { return &noteRepo{db} }

func (r *noteRepo) Create(n *entities.Note) error { return r.db.Create(n).Error }

func (r *noteRepo) FindByID(id uint, userID uuid.UUID) (*entities.Note, error) {
	var n entities.Note
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *noteRepo) List(userID uuid.UUID, search string, limit, offset int) ([]entities.Note, int64, error) {
	q := r.db.Model(&entities.Note{}).Where("user_id = ?", userID)
	if search != "" {
		q = q.Where("title LIKE ?", "%"+search+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ns []entities.Note
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ns).Error; err != nil {
		return nil, 0, err
	}
	return ns, total, nil
}

func (r *noteRepo) Save(n *entities.Note) error { return r.db.Save(n).Error }

func (r *noteRepo) Delete(n *entities.Note) error { return r.db.Delete(n).Error }
