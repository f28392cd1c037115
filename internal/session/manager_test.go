package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stepsync/companion/internal/game"
	"github.com/stepsync/companion/internal/store"
)

type fakePending struct {
	mu       sync.Mutex
	sessions map[string]*store.PendingSession
	failOp   string // "create", "get", "find", "status", "complete"
}

var errBoom = errors.New("boom")

func newFakePending() *fakePending {
	return &fakePending{sessions: make(map[string]*store.PendingSession)}
}

func (f *fakePending) Create(_ context.Context, ps *store.PendingSession) error {
	if f.failOp == "create" {
		return errBoom
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *ps
	f.sessions[ps.SessionID] = &cp
	return nil
}

func (f *fakePending) Get(_ context.Context, sessionID string) (*store.PendingSession, error) {
	if f.failOp == "get" {
		return nil, errBoom
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	ps, ok := f.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *ps
	return &cp, nil
}

func (f *fakePending) FindActive(_ context.Context, userID string) (*store.PendingSession, error) {
	if f.failOp == "find" {
		return nil, errBoom
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var oldest *store.PendingSession
	for _, ps := range f.sessions {
		if ps.UserID != userID || !ps.Status.Active() {
			continue
		}
		if oldest == nil || ps.CreatedAtMs < oldest.CreatedAtMs {
			oldest = ps
		}
	}
	if oldest == nil {
		return nil, nil
	}
	cp := *oldest
	return &cp, nil
}

func (f *fakePending) ActiveForUser(context.Context, string) ([]*store.PendingSession, error) {
	return nil, nil
}

func (f *fakePending) SetStatus(_ context.Context, sessionID string, status game.Status) error {
	if f.failOp == "status" {
		return errBoom
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[sessionID].Status = status
	return nil
}

func (f *fakePending) Complete(_ context.Context, sessionID string, res store.SessionResult) error {
	if f.failOp == "complete" {
		return errBoom
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	ps := f.sessions[sessionID]
	ps.Status = game.StatusCompleted
	ps.Score = res.Score
	ps.Calories = res.Calories
	ps.DurationMins = res.DurationMins
	return nil
}

type fakeHistory struct {
	mu      sync.Mutex
	records []*store.SessionRecord
	failed  bool
}

func (f *fakeHistory) Sessions(context.Context, string) ([]*store.SessionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*store.SessionRecord(nil), f.records...), nil
}

func (f *fakeHistory) Append(_ context.Context, rec *store.SessionRecord) error {
	if f.failed {
		return errBoom
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *rec
	f.records = append(f.records, &cp)
	return nil
}

func newTestManager(pending *fakePending, history *fakeHistory) *Manager {
	m := NewManager(pending, history)
	m.watcher = store.NewWatcher(pending, 5*time.Millisecond)
	return m
}

func TestCreatePendingSession(t *testing.T) {
	pending := newFakePending()
	m := newTestManager(pending, &fakeHistory{})
	m.now = func() time.Time { return time.UnixMilli(1750000000123) }

	ps, err := m.Create(context.Background(), "u1", "u1@example.com", game.ModeMemory, game.DifficultyHard)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ps.SessionID == "" {
		t.Fatal("expected non-empty session id")
	}
	if ps.Status != game.StatusPending {
		t.Errorf("status = %q, want pending", ps.Status)
	}
	if ps.CreatedAtMs != 1750000000123 {
		t.Errorf("createdAtMs = %d, want millisecond precision 1750000000123", ps.CreatedAtMs)
	}

	stored, _ := pending.Get(context.Background(), ps.SessionID)
	if stored == nil {
		t.Fatal("session not persisted")
	}
	if stored.Mode != game.ModeMemory || stored.Difficulty != game.DifficultyHard {
		t.Errorf("persisted %s/%s, want memory/hard", stored.Mode, stored.Difficulty)
	}
}

func TestCreateUniqueIDs(t *testing.T) {
	m := newTestManager(newFakePending(), &fakeHistory{})
	a, _ := m.Create(context.Background(), "u1", "", game.ModeBeatTheClock, game.DifficultyEasy)
	b, _ := m.Create(context.Background(), "u1", "", game.ModeBeatTheClock, game.DifficultyEasy)
	if a.SessionID == b.SessionID {
		t.Fatalf("duplicate session id %q", a.SessionID)
	}
}

func TestCreateWriteFailure(t *testing.T) {
	pending := newFakePending()
	pending.failOp = "create"
	m := newTestManager(pending, &fakeHistory{})

	_, err := m.Create(context.Background(), "u1", "", game.ModeBeatTheClock, game.DifficultyEasy)
	var perr *ErrPersistence
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ErrPersistence", err)
	}
	if !errors.Is(err, errBoom) {
		t.Error("expected wrapped cause")
	}
}

func TestObserveActiveNoSession(t *testing.T) {
	m := newTestManager(newFakePending(), &fakeHistory{})
	_, _, err := m.ObserveActive(context.Background(), "u1")
	var nerr *ErrNoActiveSession
	if !errors.As(err, &nerr) {
		t.Fatalf("error = %v, want *ErrNoActiveSession", err)
	}
	if nerr.UserID != "u1" {
		t.Errorf("user id = %q, want u1", nerr.UserID)
	}
}

func TestObserveActiveEmitsOnChange(t *testing.T) {
	pending := newFakePending()
	m := newTestManager(pending, &fakeHistory{})
	ctx := context.Background()

	ps, err := m.Create(ctx, "u1", "", game.ModeBeatTheClock, game.DifficultyEasy)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ch, stop, err := m.ObserveActive(ctx, "u1")
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	defer stop()

	first := <-ch
	if first.Status != game.StatusPending {
		t.Fatalf("first status = %q, want pending", first.Status)
	}

	if err := m.Start(ctx, ps.SessionID); err != nil {
		t.Fatalf("start: %v", err)
	}

	select {
	case snap := <-ch:
		if snap.Status != game.StatusInProgress {
			t.Fatalf("status = %q, want in_progress", snap.Status)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for status change")
	}
}

func TestObserveActivePicksOldest(t *testing.T) {
	pending := newFakePending()
	m := newTestManager(pending, &fakeHistory{})
	ctx := context.Background()

	times := []int64{2000, 1000}
	i := 0
	m.now = func() time.Time {
		ts := times[i]
		i++
		return time.UnixMilli(ts)
	}

	if _, err := m.Create(ctx, "u1", "", game.ModeBeatTheClock, game.DifficultyEasy); err != nil {
		t.Fatalf("create: %v", err)
	}
	older, err := m.Create(ctx, "u1", "", game.ModeMirror, game.DifficultyHard)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ch, stop, err := m.ObserveActive(ctx, "u1")
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	defer stop()

	snap := <-ch
	if snap.SessionID != older.SessionID {
		t.Fatalf("observed %q, want oldest active %q", snap.SessionID, older.SessionID)
	}
}

func TestStartGuards(t *testing.T) {
	pending := newFakePending()
	m := newTestManager(pending, &fakeHistory{})
	ctx := context.Background()

	if err := m.Start(ctx, "ghost"); err == nil {
		t.Error("expected error starting missing session")
	}

	ps, _ := m.Create(ctx, "u1", "", game.ModeBeatTheClock, game.DifficultyEasy)
	pending.Complete(ctx, ps.SessionID, store.SessionResult{})

	err := m.Start(ctx, ps.SessionID)
	var nerr *ErrNotActive
	if !errors.As(err, &nerr) {
		t.Fatalf("error = %v, want *ErrNotActive", err)
	}
}

func TestFinalizeWritesBothRecords(t *testing.T) {
	pending := newFakePending()
	history := &fakeHistory{}
	m := newTestManager(pending, history)
	ctx := context.Background()

	m.now = func() time.Time { return time.UnixMilli(1750000000123) }
	ps, err := m.Create(ctx, "u1", "u1@example.com", game.ModeMirror, game.DifficultyHard)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := m.Start(ctx, ps.SessionID); err != nil {
		t.Fatalf("start: %v", err)
	}

	m.now = func() time.Time { return time.Unix(1750000300, 0) }
	res := store.SessionResult{Score: 10800, Calories: 40, DurationMins: 5}
	if err := m.Finalize(ctx, ps.SessionID, res); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	done, _ := pending.Get(ctx, ps.SessionID)
	if done.Status != game.StatusCompleted {
		t.Errorf("pending status = %q, want completed", done.Status)
	}
	if done.Score != 10800 {
		t.Errorf("pending score = %d, want 10800", done.Score)
	}
	// Creation time stays millisecond precision.
	if done.CreatedAtMs != 1750000000123 {
		t.Errorf("createdAtMs = %d, want 1750000000123", done.CreatedAtMs)
	}

	if len(history.records) != 1 {
		t.Fatalf("history count = %d, want 1", len(history.records))
	}
	rec := history.records[0]
	// History timestamps are Unix seconds, not milliseconds.
	if rec.Timestamp != 1750000300 {
		t.Errorf("history timestamp = %d, want 1750000300", rec.Timestamp)
	}
	if rec.SessionID != ps.SessionID || rec.UserID != "u1" {
		t.Errorf("record identity = %s/%s, want %s/u1", rec.SessionID, rec.UserID, ps.SessionID)
	}
	if rec.Mode != game.ModeMirror || rec.Difficulty != game.DifficultyHard {
		t.Errorf("record pairing = %s/%s, want mirror/hard", rec.Mode, rec.Difficulty)
	}
	if rec.Score != 10800 || rec.Calories != 40 || rec.DurationMins != 5 {
		t.Errorf("record result = %d/%d/%d, want 10800/40/5", rec.Score, rec.Calories, rec.DurationMins)
	}
}

func TestFinalizeGuards(t *testing.T) {
	pending := newFakePending()
	history := &fakeHistory{}
	m := newTestManager(pending, history)
	ctx := context.Background()

	if err := m.Finalize(ctx, "ghost", store.SessionResult{}); err == nil {
		t.Error("expected error finalizing missing session")
	}

	ps, _ := m.Create(ctx, "u1", "", game.ModeBeatTheClock, game.DifficultyEasy)
	if err := m.Finalize(ctx, ps.SessionID, store.SessionResult{Score: 1}); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	// Finalizing twice hits the terminal-status guard.
	err := m.Finalize(ctx, ps.SessionID, store.SessionResult{Score: 2})
	var nerr *ErrNotActive
	if !errors.As(err, &nerr) {
		t.Fatalf("error = %v, want *ErrNotActive", err)
	}
	if len(history.records) != 1 {
		t.Errorf("history count = %d, want 1", len(history.records))
	}
}

func TestFinalizeHistoryFailure(t *testing.T) {
	pending := newFakePending()
	history := &fakeHistory{failed: true}
	m := newTestManager(pending, history)
	ctx := context.Background()

	ps, _ := m.Create(ctx, "u1", "", game.ModeBeatTheClock, game.DifficultyEasy)
	err := m.Finalize(ctx, ps.SessionID, store.SessionResult{Score: 1})
	var perr *ErrPersistence
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ErrPersistence", err)
	}
}
