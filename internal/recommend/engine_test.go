package recommend

import (
	"testing"

	"github.com/stepsync/companion/internal/game"
	"github.com/stepsync/companion/internal/history"
)

func TestScoreDifficultyAllFactorsPositive(t *testing.T) {
	// age<25 +2, normal BMI +2, frequency>=5 +2, bpm<60 +2,
	// total>=20 +2, streak>=7 +1, no fatigue = 11.
	p := Profile{Age: 22, BMI: 22, RestingBPM: 55, WorkoutFrequency: 6}
	stats := history.Stats{Streak: 8, TodayCount: 0, TotalCount: 25}

	if got := ScoreDifficulty(p, stats, Config{}); got != game.DifficultyHard {
		t.Errorf("difficulty = %s, want hard", got)
	}
}

func TestScoreDifficultyTable(t *testing.T) {
	tests := []struct {
		name  string
		p     Profile
		stats history.Stats
		want  game.Difficulty
	}{
		{
			// age 30 +1, bmi unknown, freq 0 -1, bpm 70 default +0... bpm 70 is
			// not <70, no delta; total 0; net 0 -> easy.
			name: "sedentary thirty-something",
			p:    Profile{Age: 30, RestingBPM: 70},
			want: game.DifficultyEasy,
		},
		{
			// age 30 +1, bmi 23 +2, freq 3 +1, bpm 65 +1 = 5 -> hard.
			name: "fit adult",
			p:    Profile{Age: 30, BMI: 23, RestingBPM: 65, WorkoutFrequency: 3},
			want: game.DifficultyHard,
		},
		{
			// age 60 -1, bmi 31 -1, freq 1 -1, bpm 90 -1 = -4 -> easy.
			name: "all negative factors",
			p:    Profile{Age: 60, BMI: 31, RestingBPM: 90, WorkoutFrequency: 1},
			want: game.DifficultyEasy,
		},
		{
			// age 30 +1, freq 0 -1, bpm default 70 +0, total 10 +1 = 1 -> medium.
			name: "experience lifts to medium",
			p:    Profile{Age: 30},
			stats: history.Stats{
				TotalCount: 10,
			},
			want: game.DifficultyMedium,
		},
		{
			// Same as above plus heavy fatigue: 1 - 2 = -1 -> easy.
			name: "fatigue pushes back down",
			p:    Profile{Age: 30},
			stats: history.Stats{
				TotalCount: 10,
				TodayCount: 3,
			},
			want: game.DifficultyEasy,
		},
		{
			// BMI derived from weight/height: 70kg at 1.70m = 24.2 -> +2.
			// age 30 +1, bmi +2, freq 0 -1, bpm 70 +0 = 2 -> medium.
			name: "bmi from weight and height",
			p:    Profile{Age: 30, WeightKg: 70, HeightCm: 170},
			want: game.DifficultyMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreDifficulty(tt.p, tt.stats, Config{}); got != tt.want {
				t.Errorf("difficulty = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestScoreDifficultyMissingDefaults(t *testing.T) {
	// Fully unknown profile: age defaults to 25 (+1), frequency to 0
	// (-1), bpm to 70 (no delta), BMI skipped. Net 0 -> easy.
	if got := ScoreDifficulty(Profile{}, history.Stats{}, Config{}); got != game.DifficultyEasy {
		t.Errorf("difficulty = %s, want easy for empty profile", got)
	}
}

func TestScoreDifficultyConfigurableFrequencyDefault(t *testing.T) {
	// The alternate deployment default of a high frequency flips the
	// frequency factor from -1 to +2.
	cfg := Config{DefaultWorkoutFrequency: 100}
	got := ScoreDifficulty(Profile{Age: 30}, history.Stats{}, cfg)
	// age +1, freq +2, bpm default 0 delta = 3 -> medium.
	if got != game.DifficultyMedium {
		t.Errorf("difficulty = %s, want medium with high frequency default", got)
	}
}

func TestEffectiveBMI(t *testing.T) {
	tests := []struct {
		name string
		p    Profile
		want float64
	}{
		{"explicit wins", Profile{BMI: 30, WeightKg: 70, HeightCm: 170}, 30},
		{"unknown", Profile{}, 0},
		{"height only", Profile{HeightCm: 170}, 0},
	}
	for _, tt := range tests {
		if got := tt.p.EffectiveBMI(); got != tt.want {
			t.Errorf("%s: EffectiveBMI() = %v, want %v", tt.name, got, tt.want)
		}
	}

	derived := Profile{WeightKg: 80, HeightCm: 180}.EffectiveBMI()
	if derived < 24.6 || derived > 24.8 {
		t.Errorf("derived BMI = %v, want ~24.7", derived)
	}
}

func TestRecommendModeNewPlayer(t *testing.T) {
	// Under 3 total sessions always recommends Beat the Clock.
	profiles := []Profile{
		{},
		{Age: 20},
		{Age: 70, RestingBPM: 50},
	}
	for _, p := range profiles {
		got := RecommendMode(p, history.Stats{TotalCount: 0})
		if got != game.ModeBeatTheClock {
			t.Errorf("mode = %s for %+v, want btc", got, p)
		}
	}
	if got := RecommendMode(Profile{Age: 25}, history.Stats{TotalCount: 2, Streak: 10}); got != game.ModeBeatTheClock {
		t.Errorf("mode = %s, want btc below 3 sessions", got)
	}
}

func TestRecommendModeExperienced(t *testing.T) {
	tests := []struct {
		name  string
		p     Profile
		stats history.Stats
		want  game.Mode
	}{
		{
			name:  "young and fresh gets mirror",
			p:     Profile{Age: 25},
			stats: history.Stats{TotalCount: 12, TodayCount: 0},
			want:  game.ModeMirror,
		},
		{
			name:  "consistent older player gets memory",
			p:     Profile{Age: 40},
			stats: history.Stats{TotalCount: 15, Streak: 6},
			want:  game.ModeMemory,
		},
		{
			name:  "young but fatigued falls through streak rule",
			p:     Profile{Age: 25},
			stats: history.Stats{TotalCount: 12, TodayCount: 2, Streak: 6},
			want:  game.ModeMemory,
		},
		{
			name:  "mid experience defaults to btc",
			p:     Profile{Age: 25},
			stats: history.Stats{TotalCount: 5, Streak: 9},
			want:  game.ModeBeatTheClock,
		},
		{
			name:  "experienced with no streak defaults to btc",
			p:     Profile{Age: 45},
			stats: history.Stats{TotalCount: 30},
			want:  game.ModeBeatTheClock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecommendMode(tt.p, tt.stats); got != tt.want {
				t.Errorf("mode = %s, want %s", got, tt.want)
			}
		})
	}
}
