// pkg/ai/client.go

package ai

import (
	"context"

	"vibetravel/entities"
)

// PromptInput is everything the gateway needs to draft an itinerary:
// the note's travel facts plus the owner's stored preferences (may be nil).
type PromptInput struct {
	Note    *entities.Note
	Profile *entities.UserProfile
}

type Client interface {
	GeneratePlan(ctx context.Context, in PromptInput) (string, error)
}
