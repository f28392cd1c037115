// Package prediction talks to the StepSync prediction API, which maps a
// health feature vector to a difficulty class. Callers must treat every
// failure as recoverable: the recommendation engine falls back to local
// scoring and never surfaces prediction errors to the user.
package prediction

import (
	"context"
	"strings"

	"github.com/stepsync/companion/internal/game"
)

// Features is the input vector for a prediction request.
type Features struct {
	Age              int
	BMI              float64
	RestingBPM       int
	WorkoutFrequency int
}

// Result is the prediction response. Older API versions return only
// PredictedClass; newer ones add the richer fields.
type Result struct {
	PredictedClass  string  `json:"predicted_class"`
	DifficultyLevel string  `json:"difficultyLevel"`
	ConfidenceScore float64 `json:"confidenceScore"`
	Recommendation  string  `json:"recommendation"`
	HealthScore     float64 `json:"healthScore"`
}

// Label returns the class label, preferring the v1 field.
func (r Result) Label() string {
	if r.PredictedClass != "" {
		return r.PredictedClass
	}
	if r.DifficultyLevel != "" {
		return r.DifficultyLevel
	}
	return r.Recommendation
}

// Client is the prediction service abstraction.
type Client interface {
	// Predict submits the feature vector and returns the service's
	// classification.
	Predict(ctx context.Context, f Features) (Result, error)

	// Healthy reports whether the service answers its status probe.
	Healthy(ctx context.Context) bool
}

// ParseLabel maps a class label to a difficulty. It accepts the word
// labels, the numeric classes 1/2/3, and the low/moderate/high synonyms,
// case-insensitively.
func ParseLabel(label string) (game.Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "easy", "low", "1":
		return game.DifficultyEasy, true
	case "medium", "moderate", "2":
		return game.DifficultyMedium, true
	case "hard", "high", "3":
		return game.DifficultyHard, true
	}
	return "", false
}
