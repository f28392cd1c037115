// Package recommend scores a suggested difficulty and game mode from a
// user's health profile and derived session history. The local rule
// engine is the source of truth; a remote prediction service may
// override the difficulty, with a mandatory silent fallback to the
// local rules on any failure.
package recommend

import (
	"github.com/stepsync/companion/internal/game"
	"github.com/stepsync/companion/internal/history"
)

// Default values substituted for missing profile attributes.
const (
	DefaultAge        = 25
	DefaultRestingBPM = 70
)

// Profile carries the health attributes the engine scores on. Zero
// values mean "unknown" and take the documented defaults.
type Profile struct {
	Age              int
	WeightKg         float64
	HeightCm         float64
	BMI              float64
	RestingBPM       int
	WorkoutFrequency int
}

// Config tunes engine behavior.
type Config struct {
	// DefaultWorkoutFrequency substitutes for an unset workout
	// frequency. The historical deployments disagreed on this value,
	// so it is configuration, not contract. Default: 0.
	DefaultWorkoutFrequency int
}

// Recommendation is the engine's output. Never empty: every path
// resolves to concrete values.
type Recommendation struct {
	Difficulty game.Difficulty
	Mode       game.Mode

	// Source records which path produced the difficulty: "local" or
	// "remote". The fallback path reports "local".
	Source string
}

// EffectiveBMI resolves the profile's BMI, computing it from weight and
// height when not supplied. Returns 0 when it cannot be determined, in
// which case the BMI factor is skipped.
func (p Profile) EffectiveBMI() float64 {
	if p.BMI > 0 {
		return p.BMI
	}
	if p.WeightKg > 0 && p.HeightCm > 0 {
		m := p.HeightCm / 100
		return p.WeightKg / (m * m)
	}
	return 0
}

// ScoreDifficulty runs the rule-based difficulty scoring. Each factor
// contributes one fixed delta when its threshold is met; deltas never
// stack within a factor.
func ScoreDifficulty(p Profile, stats history.Stats, cfg Config) game.Difficulty {
	age := p.Age
	if age == 0 {
		age = DefaultAge
	}
	restingBPM := p.RestingBPM
	if restingBPM == 0 {
		restingBPM = DefaultRestingBPM
	}
	workoutFrequency := p.WorkoutFrequency
	if workoutFrequency == 0 {
		workoutFrequency = cfg.DefaultWorkoutFrequency
	}

	score := 0

	// Age: younger players tolerate higher difficulty.
	switch {
	case age < 25:
		score += 2
	case age < 40:
		score += 1
	case age > 55:
		score -= 1
	}

	// BMI: skipped entirely when unknown.
	if bmi := p.EffectiveBMI(); bmi > 0 {
		switch {
		case bmi >= 18.5 && bmi <= 24.9:
			score += 2
		case bmi >= 25 && bmi <= 29.9:
			score += 1
		default:
			score -= 1
		}
	}

	// Workout frequency, sessions per week.
	switch {
	case workoutFrequency >= 5:
		score += 2
	case workoutFrequency >= 3:
		score += 1
	case workoutFrequency <= 1:
		score -= 1
	}

	// Resting heart rate: lower is fitter.
	switch {
	case restingBPM < 60:
		score += 2
	case restingBPM < 70:
		score += 1
	case restingBPM > 85:
		score -= 1
	}

	// Experience from lifetime sessions.
	switch {
	case stats.TotalCount >= 20:
		score += 2
	case stats.TotalCount >= 10:
		score += 1
	}

	// Consistency bonus.
	if stats.Streak >= 7 {
		score += 1
	}

	// Fatigue from today's sessions.
	switch {
	case stats.TodayCount >= 3:
		score -= 2
	case stats.TodayCount >= 2:
		score -= 1
	}

	switch {
	case score >= 4:
		return game.DifficultyHard
	case score >= 1:
		return game.DifficultyMedium
	default:
		return game.DifficultyEasy
	}
}

// RecommendMode picks a game mode. New players always get Beat the
// Clock; experienced, fresh, young players get the mirror game;
// consistent experienced players get the memory game.
func RecommendMode(p Profile, stats history.Stats) game.Mode {
	age := p.Age
	if age == 0 {
		age = DefaultAge
	}

	if stats.TotalCount < 3 {
		return game.ModeBeatTheClock
	}
	if stats.TotalCount >= 10 {
		if age < 30 && stats.TodayCount < 2 {
			return game.ModeMirror
		}
		if stats.Streak >= 5 {
			return game.ModeMemory
		}
	}
	return game.ModeBeatTheClock
}
