package store

import (
	"context"

	"github.com/stepsync/companion/internal/game"
)

// UserProfile is the read-mostly health and identity record at
// users/{uid}. The game core never mutates health attributes; only the
// profile-editing flow writes them.
type UserProfile struct {
	UserID           string
	Username         string
	Email            string
	Age              int
	WeightKg         float64
	HeightCm         float64
	BMI              float64
	RestingBPM       int
	WorkoutFrequency int
	ProfilePic       string
}

// SessionRecord is one completed session in a user's append-only
// history. Timestamp is Unix SECONDS; immutable once written.
type SessionRecord struct {
	SessionID    string
	UserID       string
	Timestamp    int64
	Mode         game.Mode
	Difficulty   game.Difficulty
	Score        int
	Calories     int
	DurationMins int
}

// PendingSession is the shared coordination record in
// pendingSessions/{sessionId}. CreatedAtMs is Unix MILLISECONDS. The
// unit differs from history records on purpose; the companion client
// depends on it.
type PendingSession struct {
	SessionID    string
	UserID       string
	UserEmail    string
	Mode         game.Mode
	Difficulty   game.Difficulty
	Status       game.Status
	CreatedAtMs  int64
	Score        int
	Calories     int
	DurationMins int
}

// SessionResult carries the completion figures written on finalization.
type SessionResult struct {
	Score        int
	Calories     int
	DurationMins int
}

// ProfileRepo manages user profiles.
type ProfileRepo interface {
	// Get returns the profile for userID, or nil if none exists.
	Get(ctx context.Context, userID string) (*UserProfile, error)

	// Save creates or overwrites the profile. Whole-record write,
	// last writer wins.
	Save(ctx context.Context, p *UserProfile) error

	// All returns every stored profile.
	All(ctx context.Context) ([]*UserProfile, error)
}

// HistoryRepo manages a user's append-only session history.
type HistoryRepo interface {
	// Sessions returns the user's history, newest first.
	Sessions(ctx context.Context, userID string) ([]*SessionRecord, error)

	// Append stores a new completed-session record.
	Append(ctx context.Context, rec *SessionRecord) error
}

// PendingRepo manages the shared pending-session collection.
type PendingRepo interface {
	// Create stores a new pending session.
	Create(ctx context.Context, ps *PendingSession) error

	// Get returns the session by id, or nil if none exists.
	Get(ctx context.Context, sessionID string) (*PendingSession, error)

	// FindActive returns the user's oldest session with status pending
	// or in_progress, or nil if none exists. Creation order makes the
	// first-match lookup deterministic when more than one is active.
	FindActive(ctx context.Context, userID string) (*PendingSession, error)

	// ActiveForUser returns all of the user's active sessions, oldest
	// first.
	ActiveForUser(ctx context.Context, userID string) ([]*PendingSession, error)

	// SetStatus writes a bare status transition.
	SetStatus(ctx context.Context, sessionID string, status game.Status) error

	// Complete writes the result figures and status=completed.
	Complete(ctx context.Context, sessionID string, res SessionResult) error
}
