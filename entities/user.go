package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type TravelStyle string

const (
	StyleRelax     TravelStyle = "RELAX"
	StyleAdventure TravelStyle = "ADVENTURE"
	StyleCulture   TravelStyle = "CULTURE"
	StyleParty     TravelStyle = "PARTY"
)

type TravelPace string

const (
	PaceCalm     TravelPace = "CALM"
	PaceModerate TravelPace = "MODERATE"
	PaceIntense  TravelPace = "INTENSE"
)

type Budget string

const (
	BudgetLow    Budget = "LOW"
	BudgetMedium Budget = "MEDIUM"
	BudgetHigh   Budget = "HIGH"
)

// UserProfile holds the travel preferences fed into plan generation.
type UserProfile struct {
	ID            uint         `gorm:"primaryKey" json:"-"`
	UserID        uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	TravelStyle   *TravelStyle `json:"travel_style"`
	PreferredPace *TravelPace  `json:"preferred_pace"`
	Budget        *Budget      `json:"budget"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
