// pkg/ai/mock_client.go

package ai

import (
	"context"
	"fmt"
	"strings"
)

type mockClient struct{}

// NewMock returns a client that fabricates a deterministic itinerary.
// Used when no LLM endpoint is configured, and in tests.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) GeneratePlan(_ context.Context, in PromptInput) (string, error) {
	n := in.Note
	days := int(n.DateTo.Sub(n.DateFrom).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Trip to %s (%d people)\n", n.Place, n.NumberOfPeople)
	for d := 1; d <= days; d++ {
		date := n.DateFrom.AddDate(0, 0, d-1)
		fmt.Fprintf(&sb, "Day %d (%s): explore %s", d, date.Format("2006-01-02"), n.Place)
		if d == 1 {
			sb.WriteString(", check in and walk the old town")
		}
		sb.WriteString("\n")
	}
	if n.KeyIdeas != "" {
		fmt.Fprintf(&sb, "Ideas to weave in: %s\n", n.KeyIdeas)
	}
	return strings.TrimSpace(sb.String()), nil
}
