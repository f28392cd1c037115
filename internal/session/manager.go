package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stepsync/companion/internal/game"
	"github.com/stepsync/companion/internal/store"
)

// Manager drives the shared-session lifecycle: it creates pending
// records for a game client to pick up, observes them while the game
// runs, and finalizes the results into the user's history.
type Manager struct {
	pending store.PendingRepo
	history store.HistoryRepo
	watcher *store.Watcher

	// Overridable for tests.
	now   func() time.Time
	newID func() string
}

// NewManager creates a Manager over the given repositories.
func NewManager(pending store.PendingRepo, history store.HistoryRepo) *Manager {
	return &Manager{
		pending: pending,
		history: history,
		watcher: store.NewWatcher(pending, store.DefaultWatchInterval),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Create allocates a session id and writes a pending record for the
// user. The creation timestamp is Unix milliseconds. More than one
// active session per user is allowed; lookups resolve to the oldest.
func (m *Manager) Create(ctx context.Context, userID, userEmail string, mode game.Mode, difficulty game.Difficulty) (*store.PendingSession, error) {
	ps := &store.PendingSession{
		SessionID:   m.newID(),
		UserID:      userID,
		UserEmail:   userEmail,
		Mode:        mode,
		Difficulty:  difficulty,
		Status:      game.StatusPending,
		CreatedAtMs: m.now().UnixMilli(),
	}
	if err := m.pending.Create(ctx, ps); err != nil {
		return nil, &ErrPersistence{Op: "create", Err: err}
	}
	return ps, nil
}

// ObserveActive subscribes to the user's oldest active session. The
// returned channel carries the current snapshot immediately and a new
// one on every status change; it closes when the session reaches a
// terminal status. Call stop to end the subscription early.
func (m *Manager) ObserveActive(ctx context.Context, userID string) (<-chan *store.PendingSession, func(), error) {
	active, err := m.pending.FindActive(ctx, userID)
	if err != nil {
		return nil, nil, &ErrPersistence{Op: "find active", Err: err}
	}
	if active == nil {
		return nil, nil, &ErrNoActiveSession{UserID: userID}
	}

	wctx, cancel := context.WithCancel(ctx)
	ch := m.watcher.Watch(wctx, active.SessionID)
	return ch, cancel, nil
}

// Start transitions a pending session to in_progress.
func (m *Manager) Start(ctx context.Context, sessionID string) error {
	ps, err := m.pending.Get(ctx, sessionID)
	if err != nil {
		return &ErrPersistence{Op: "start", Err: err}
	}
	if ps == nil {
		return &ErrPersistence{Op: "start", Err: fmt.Errorf("session %s not found", sessionID)}
	}
	if !ps.Status.Active() {
		return &ErrNotActive{SessionID: sessionID, Status: string(ps.Status)}
	}
	if err := m.pending.SetStatus(ctx, sessionID, game.StatusInProgress); err != nil {
		return &ErrPersistence{Op: "start", Err: err}
	}
	return nil
}

// Finalize writes the result to the shared pending record and appends
// an immutable record to the user's session history. History timestamps
// are Unix seconds; the pending record keeps its millisecond creation
// time. Only naturally expired sessions are finalized; a manual stop
// leaves the record untouched.
func (m *Manager) Finalize(ctx context.Context, sessionID string, res store.SessionResult) error {
	ps, err := m.pending.Get(ctx, sessionID)
	if err != nil {
		return &ErrPersistence{Op: "finalize", Err: err}
	}
	if ps == nil {
		return &ErrPersistence{Op: "finalize", Err: fmt.Errorf("session %s not found", sessionID)}
	}
	if !ps.Status.Active() {
		return &ErrNotActive{SessionID: sessionID, Status: string(ps.Status)}
	}

	if err := m.pending.Complete(ctx, sessionID, res); err != nil {
		return &ErrPersistence{Op: "finalize", Err: err}
	}

	rec := &store.SessionRecord{
		SessionID:    ps.SessionID,
		UserID:       ps.UserID,
		Timestamp:    m.now().Unix(),
		Mode:         ps.Mode,
		Difficulty:   ps.Difficulty,
		Score:        res.Score,
		Calories:     res.Calories,
		DurationMins: res.DurationMins,
	}
	if err := m.history.Append(ctx, rec); err != nil {
		return &ErrPersistence{Op: "finalize history", Err: err}
	}
	return nil
}
