package entities

import (
	"time"

	"github.com/google/uuid"
)

// Note is a user's raw trip note: the input plans are generated from.
// (user_id, title) is unique so a user cannot have two notes with the
// same title.
type Note struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_user_title" json:"user_id"`
	Title          string    `gorm:"size:255;not null;uniqueIndex:uniq_user_title" json:"title"`
	Place          string    `gorm:"size:255;not null" json:"place"`
	DateFrom       time.Time `gorm:"not null" json:"date_from"`
	DateTo         time.Time `gorm:"not null" json:"date_to"`
	NumberOfPeople int       `gorm:"not null" json:"number_of_people"`
	KeyIdeas       string    `gorm:"size:2000" json:"key_ideas,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
