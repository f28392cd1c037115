package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stepsync/companion/internal/history"
)

// Insight is a short motivational status line shown above the game
// controls.
type Insight struct {
	Message string
	// Source is "coach" for model-generated copy, "local" for the
	// built-in rules.
	Source string
}

// statusSchema constrains model output to a single message field.
var statusSchema = &Schema{
	Name:        "status-insight",
	Description: "One short motivational status line for a fitness gamer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "Motivational status line, max 80 characters",
			},
		},
		"required":             []any{"message"},
		"additionalProperties": false,
	},
}

// Service produces status insights, preferring the model provider and
// falling back to local rules. The fallback is silent: a missing or
// failing provider must never surface to the user.
type Service struct {
	provider Provider
	timeout  time.Duration
}

// NewService creates a Service. A nil provider is valid and yields
// local messages only.
func NewService(provider Provider, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}
	return &Service{provider: provider, timeout: timeout}
}

// StatusInsight returns a status line for the user's current stats.
// Never fails.
func (s *Service) StatusInsight(ctx context.Context, username string, stats history.Stats) Insight {
	if s.provider == nil {
		return Insight{Message: StatusMessage(stats), Source: "local"}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := Request{
		System: "You are an upbeat fitness game coach. Write one short, " +
			"energetic status line (max 80 characters) for the player. " +
			"No hashtags, no quotes.",
		Messages: []Message{{
			Role: RoleUser,
			Content: fmt.Sprintf(
				"Player %s: %d-day streak, %d sessions today, %d sessions total.",
				username, stats.Streak, stats.TodayCount, stats.TotalCount,
			),
		}},
		Schema:      statusSchema,
		MaxTokens:   128,
		Temperature: 0.7,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Insight{Message: StatusMessage(stats), Source: "local"}
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil || out.Message == "" {
		return Insight{Message: StatusMessage(stats), Source: "local"}
	}

	return Insight{Message: out.Message, Source: "coach"}
}

// StatusMessage is the built-in status line, keyed off streak and
// session counts.
func StatusMessage(stats history.Stats) string {
	switch {
	case stats.TotalCount == 0:
		return "Ready to start your first gaming session?"
	case stats.TodayCount == 0 && stats.Streak == 0:
		return "Time to get back in the game!"
	case stats.TodayCount == 0 && stats.Streak >= 7:
		return fmt.Sprintf("%d-day streak! Keep the fire burning!", stats.Streak)
	case stats.TodayCount == 0:
		return fmt.Sprintf("Day %d streak - don't break it now!", stats.Streak)
	case stats.TodayCount >= 2:
		return fmt.Sprintf("%d sessions today! You're crushing it!", stats.TodayCount)
	default:
		return "Great session! Ready for another challenge?"
	}
}
