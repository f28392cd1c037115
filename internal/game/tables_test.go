package game

import "testing"

func TestTimeBudgetSecs(t *testing.T) {
	tests := []struct {
		mode       Mode
		difficulty Difficulty
		want       int
	}{
		{ModeBeatTheClock, DifficultyEasy, 900},
		{ModeBeatTheClock, DifficultyHard, 600},
		{ModeMemory, DifficultyMedium, 480},
		{ModeMirror, DifficultyHard, 480},
	}

	for _, tt := range tests {
		got := TimeBudgetSecs(tt.mode, tt.difficulty)
		if got != tt.want {
			t.Errorf("TimeBudgetSecs(%s, %s) = %d, want %d", tt.mode, tt.difficulty, got, tt.want)
		}
	}
}

func TestTimeBudgetUnknownPairing(t *testing.T) {
	if got := TimeBudgetSecs(Mode("dance"), DifficultyEasy); got != DefaultTimeBudgetSecs {
		t.Errorf("unknown pairing budget = %d, want %d", got, DefaultTimeBudgetSecs)
	}
}

func TestCalories(t *testing.T) {
	tests := []struct {
		mode        Mode
		difficulty  Difficulty
		elapsedSecs int
		want        int
	}{
		// 60s of btc/easy at 4 kcal/min.
		{ModeBeatTheClock, DifficultyEasy, 60, 4},
		// 90s floors to 6, not 6.75 rounded.
		{ModeBeatTheClock, DifficultyEasy, 90, 6},
		{ModeMirror, DifficultyHard, 300, 40},
		{ModeMemory, DifficultyEasy, 0, 0},
		// Sub-minute elapsed floors to zero.
		{ModeBeatTheClock, DifficultyEasy, 10, 0},
	}

	for _, tt := range tests {
		got := Calories(tt.mode, tt.difficulty, tt.elapsedSecs)
		if got != tt.want {
			t.Errorf("Calories(%s, %s, %d) = %d, want %d",
				tt.mode, tt.difficulty, tt.elapsedSecs, got, tt.want)
		}
	}
}

func TestFinalScore(t *testing.T) {
	// mirror/hard for 300s: 300 * 12 = 3600 base, x3 multiplier.
	if got := FinalScore(ModeMirror, DifficultyHard, 300); got != 10800 {
		t.Errorf("FinalScore(mirror, hard, 300) = %d, want 10800", got)
	}
	if got := FinalScore(ModeBeatTheClock, DifficultyEasy, 100); got != 800 {
		t.Errorf("FinalScore(btc, easy, 100) = %d, want 800", got)
	}
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		want       int
	}{
		{DifficultyEasy, 1},
		{DifficultyMedium, 2},
		{DifficultyHard, 3},
	}
	for _, tt := range tests {
		if got := Multiplier(tt.difficulty); got != tt.want {
			t.Errorf("Multiplier(%s) = %d, want %d", tt.difficulty, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"btc", ModeBeatTheClock, false},
		{"Memory", ModeMemory, false},
		{" MIRROR ", ModeMirror, false},
		{"dance", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{"HARD", DifficultyHard, false},
		{"extreme", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDifficulty(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDifficulty(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestStatusActive(t *testing.T) {
	if !StatusPending.Active() || !StatusInProgress.Active() {
		t.Error("pending and in_progress should be active")
	}
	if StatusCompleted.Active() {
		t.Error("completed should not be active")
	}
}
