package recommend

import (
	"testing"

	"github.com/stepsync/companion/internal/game"
)

func TestDefaultOptionSets(t *testing.T) {
	d := DifficultyOptions()
	if len(d.Options) != 3 {
		t.Fatalf("difficulty options = %d, want 3", len(d.Options))
	}
	if d.RecommendedKey != "easy" || d.SelectedKey != "easy" {
		t.Errorf("defaults = (%s, %s), want easy recommended and selected",
			d.RecommendedKey, d.SelectedKey)
	}

	m := ModeOptions()
	if m.RecommendedKey != "btc" {
		t.Errorf("default mode recommendation = %s, want btc", m.RecommendedKey)
	}
	if m.Recommended().Label != "Beat the Clock" {
		t.Errorf("label = %q, want Beat the Clock", m.Recommended().Label)
	}
}

func TestSetRecommendedOverwritesSelection(t *testing.T) {
	d := DifficultyOptions()
	d.Select("hard")

	d.SetRecommended("medium")

	if d.RecommendedKey != "medium" {
		t.Errorf("recommended = %s, want medium", d.RecommendedKey)
	}
	// Recomputing a recommendation overwrites the manual selection;
	// preserving it is the caller's job.
	if d.SelectedKey != "medium" {
		t.Errorf("selected = %s, want medium", d.SelectedKey)
	}
}

func TestSetRecommendedIgnoresUnknownKey(t *testing.T) {
	d := DifficultyOptions()
	d.SetRecommended("extreme")
	if d.RecommendedKey != "easy" {
		t.Errorf("recommended = %s, want unchanged easy", d.RecommendedKey)
	}
}

func TestSelect(t *testing.T) {
	m := ModeOptions()
	if !m.Select("mirror") {
		t.Fatal("select mirror should succeed")
	}
	if m.SelectedKey != "mirror" {
		t.Errorf("selected = %s, want mirror", m.SelectedKey)
	}
	if m.RecommendedKey != "btc" {
		t.Errorf("recommended = %s, want untouched btc", m.RecommendedKey)
	}
	if m.Select("dance") {
		t.Error("unknown key should not select")
	}
}

func TestApply(t *testing.T) {
	d := DifficultyOptions()
	m := ModeOptions()

	Apply(Recommendation{
		Difficulty: game.DifficultyHard,
		Mode:       game.ModeMemory,
	}, d, m)

	if d.RecommendedKey != "hard" || d.SelectedKey != "hard" {
		t.Errorf("difficulty set = (%s, %s), want hard/hard", d.RecommendedKey, d.SelectedKey)
	}
	if m.RecommendedKey != "memory" {
		t.Errorf("mode recommended = %s, want memory", m.RecommendedKey)
	}
}
