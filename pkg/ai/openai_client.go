// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"vibetravel/entities"
	"vibetravel/pkg/apperr"
)

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewOpenAI(endpoint, key, model string, timeout time.Duration) Client {
	return &openAI{
		endpoint: endpoint,
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: timeout},
	}
}

func (c *openAI) GeneratePlan(ctx context.Context, in PromptInput) (string, error) {
	type chatReq struct {
		Model       string              `json:"model"`
		Messages    []map[string]string `json:"messages"`
		Temperature float64             `json:"temperature"`
	}
	reqBody := chatReq{
		Model: c.model,
		Messages: []map[string]string{
			{"role": "system", "content": "You are a travel planner who writes concise day-by-day itineraries in plain text."},
			{"role": "user", "content": renderPlanPrompt(in)},
		},
		Temperature: 0.7,
	}

	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", apperr.Internal("build generation request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", apperr.Timeout("generation service timed out")
		}
		return "", apperr.Unavailable("generation service unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperr.Unavailable("generation service returned %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperr.Unavailable("decode generation response: %v", err)
	}
	if len(out.Choices) == 0 {
		return "", apperr.Unavailable("empty generation response")
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", apperr.Unavailable("empty generation response")
	}
	return content, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func renderPlanPrompt(in PromptInput) string {
	n := in.Note
	var sb strings.Builder
	fmt.Fprintf(&sb, "Plan a trip to %s from %s to %s for %d people.\n",
		n.Place, n.DateFrom.Format("2006-01-02"), n.DateTo.Format("2006-01-02"), n.NumberOfPeople)
	fmt.Fprintf(&sb, "Trip title: %s\n", n.Title)
	if n.KeyIdeas != "" {
		fmt.Fprintf(&sb, "Key ideas from the traveller: %s\n", n.KeyIdeas)
	}
	if p := in.Profile; p != nil {
		if p.TravelStyle != nil {
			fmt.Fprintf(&sb, "Preferred travel style: %s\n", *p.TravelStyle)
		}
		if p.PreferredPace != nil {
			fmt.Fprintf(&sb, "Preferred pace: %s\n", *p.PreferredPace)
		}
		if p.Budget != nil {
			fmt.Fprintf(&sb, "Budget level: %s\n", *p.Budget)
		}
	}
	fmt.Fprintf(&sb, "Write a day-by-day plan, at most %d characters.", entities.PlanTextMaxLength)
	return sb.String()
}
