package recommend

import "github.com/stepsync/companion/internal/game"

// Option is one labeled choice within a selectable set.
type Option struct {
	Key   string
	Label string
}

// OptionSet is a selectable category of options. A single RecommendedKey
// replaces the per-option recommended flag the mobile app scattered over
// its lists, so recomputing a recommendation never rewrites the list.
type OptionSet struct {
	Options        []Option
	RecommendedKey string
	SelectedKey    string
}

// DifficultyOptions returns the difficulty option set with the easy
// default recommended and selected.
func DifficultyOptions() *OptionSet {
	set := &OptionSet{}
	for _, d := range game.Difficulties {
		set.Options = append(set.Options, Option{Key: string(d), Label: d.Label()})
	}
	set.RecommendedKey = string(game.DifficultyEasy)
	set.SelectedKey = set.RecommendedKey
	return set
}

// ModeOptions returns the game-mode option set with Beat the Clock
// recommended and selected.
func ModeOptions() *OptionSet {
	set := &OptionSet{}
	for _, m := range game.Modes {
		set.Options = append(set.Options, Option{Key: string(m), Label: m.Label()})
	}
	set.RecommendedKey = string(game.ModeBeatTheClock)
	set.SelectedKey = set.RecommendedKey
	return set
}

// SetRecommended marks key as the recommendation and selects it,
// overwriting any prior user selection. Callers wanting to preserve a
// manual override must snapshot SelectedKey and reapply it.
func (s *OptionSet) SetRecommended(key string) {
	if !s.Has(key) {
		return
	}
	s.RecommendedKey = key
	s.SelectedKey = key
}

// Select sets the user's current selection without touching the
// recommendation.
func (s *OptionSet) Select(key string) bool {
	if !s.Has(key) {
		return false
	}
	s.SelectedKey = key
	return true
}

// Has reports whether key is a member of the set.
func (s *OptionSet) Has(key string) bool {
	for _, o := range s.Options {
		if o.Key == key {
			return true
		}
	}
	return false
}

// Recommended returns the recommended option.
func (s *OptionSet) Recommended() Option {
	return s.byKey(s.RecommendedKey)
}

// Selected returns the currently selected option.
func (s *OptionSet) Selected() Option {
	return s.byKey(s.SelectedKey)
}

func (s *OptionSet) byKey(key string) Option {
	for _, o := range s.Options {
		if o.Key == key {
			return o
		}
	}
	return Option{}
}

// Apply marks the recommendation's keys across both option sets.
func Apply(rec Recommendation, difficulty, mode *OptionSet) {
	if difficulty != nil {
		difficulty.SetRecommended(string(rec.Difficulty))
	}
	if mode != nil {
		mode.SetRecommended(string(rec.Mode))
	}
}
