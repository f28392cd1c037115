package game

import (
	"fmt"
	"strings"
)

// Mode identifies a game mode.
type Mode string

const (
	ModeBeatTheClock Mode = "btc"
	ModeMemory       Mode = "memory"
	ModeMirror       Mode = "mirror"
)

// Modes lists all game modes in display order.
var Modes = []Mode{ModeBeatTheClock, ModeMemory, ModeMirror}

// Label returns the display name for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeBeatTheClock:
		return "Beat the Clock"
	case ModeMemory:
		return "Memory Game"
	case ModeMirror:
		return "Mirror Game"
	}
	return string(m)
}

// ParseMode parses a mode key, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeBeatTheClock:
		return ModeBeatTheClock, nil
	case ModeMemory:
		return ModeMemory, nil
	case ModeMirror:
		return ModeMirror, nil
	}
	return "", fmt.Errorf("unknown game mode: %q", s)
}

// Difficulty identifies a difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all difficulty levels in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Label returns the display name for the difficulty.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	}
	return string(d)
}

// ParseDifficulty parses a difficulty key, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty: %q", s)
}

// Status is the lifecycle state of a shared pending session.
// The companion client owns the pending → in_progress transition;
// this app never performs it.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Active reports whether the status counts as an active session
// from this app's perspective.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusInProgress
}
