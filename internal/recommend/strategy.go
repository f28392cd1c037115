package recommend

import (
	"context"

	"github.com/stepsync/companion/internal/history"
	"github.com/stepsync/companion/internal/prediction"
)

// Strategy resolves a recommendation for a profile and its history.
// Implementations must always return concrete values; failure of a
// remote collaborator is absorbed, never propagated.
type Strategy interface {
	Recommend(ctx context.Context, p Profile, stats history.Stats) Recommendation
}

// Local is the pure rule-based strategy.
type Local struct {
	Config Config
}

// NewLocal creates a Local strategy with the given config.
func NewLocal(cfg Config) Local {
	return Local{Config: cfg}
}

func (l Local) Recommend(_ context.Context, p Profile, stats history.Stats) Recommendation {
	return Recommendation{
		Difficulty: ScoreDifficulty(p, stats, l.Config),
		Mode:       RecommendMode(p, stats),
		Source:     "local",
	}
}

// Remote asks the prediction service for the difficulty class and falls
// back to the local rules on any failure. The game mode is always
// scored locally; the service only classifies difficulty.
type Remote struct {
	client prediction.Client
	local  Local
}

// NewRemote creates a Remote strategy over the given prediction client.
func NewRemote(client prediction.Client, cfg Config) Remote {
	return Remote{client: client, local: NewLocal(cfg)}
}

func (r Remote) Recommend(ctx context.Context, p Profile, stats history.Stats) Recommendation {
	rec := r.local.Recommend(ctx, p, stats)
	if r.client == nil {
		return rec
	}

	result, err := r.client.Predict(ctx, prediction.Features{
		Age:              orDefault(p.Age, DefaultAge),
		BMI:              p.EffectiveBMI(),
		RestingBPM:       orDefault(p.RestingBPM, DefaultRestingBPM),
		WorkoutFrequency: p.WorkoutFrequency,
	})
	if err != nil {
		// Mandatory silent fallback: the local scores stand.
		return rec
	}

	difficulty, ok := prediction.ParseLabel(result.Label())
	if !ok {
		return rec
	}

	rec.Difficulty = difficulty
	rec.Source = "remote"
	return rec
}

// NewStrategy selects a strategy: Remote when a client is supplied,
// Local otherwise.
func NewStrategy(client prediction.Client, cfg Config) Strategy {
	if client == nil {
		return NewLocal(cfg)
	}
	return NewRemote(client, cfg)
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

var (
	_ Strategy = Local{}
	_ Strategy = Remote{}
)
