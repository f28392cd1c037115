package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stepsync/companion/internal/game"
)

// fakePending is an in-memory PendingRepo for watcher timing tests.
type fakePending struct {
	mu       sync.Mutex
	sessions map[string]*PendingSession
}

func newFakePending() *fakePending {
	return &fakePending{sessions: make(map[string]*PendingSession)}
}

func (f *fakePending) put(ps *PendingSession) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *ps
	f.sessions[ps.SessionID] = &cp
}

func (f *fakePending) Create(_ context.Context, ps *PendingSession) error {
	f.put(ps)
	return nil
}

func (f *fakePending) Get(_ context.Context, sessionID string) (*PendingSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ps, ok := f.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *ps
	return &cp, nil
}

func (f *fakePending) FindActive(context.Context, string) (*PendingSession, error) {
	return nil, nil
}

func (f *fakePending) ActiveForUser(context.Context, string) ([]*PendingSession, error) {
	return nil, nil
}

func (f *fakePending) SetStatus(_ context.Context, sessionID string, status game.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[sessionID].Status = status
	return nil
}

func (f *fakePending) Complete(_ context.Context, sessionID string, res SessionResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ps := f.sessions[sessionID]
	ps.Status = game.StatusCompleted
	ps.Score = res.Score
	ps.Calories = res.Calories
	ps.DurationMins = res.DurationMins
	return nil
}

func recvSnapshot(t *testing.T, ch <-chan *PendingSession) *PendingSession {
	t.Helper()
	select {
	case ps, ok := <-ch:
		if !ok {
			t.Fatal("watch channel closed early")
		}
		return ps
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

func TestWatchEmitsOnStatusChange(t *testing.T) {
	pending := newFakePending()
	pending.put(&PendingSession{
		SessionID: "sess-1",
		UserID:    "u1",
		Status:    game.StatusPending,
	})

	w := NewWatcher(pending, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := w.Watch(ctx, "sess-1")

	first := recvSnapshot(t, ch)
	if first.Status != game.StatusPending {
		t.Fatalf("first snapshot status = %q, want pending", first.Status)
	}

	pending.SetStatus(ctx, "sess-1", game.StatusInProgress)
	second := recvSnapshot(t, ch)
	if second.Status != game.StatusInProgress {
		t.Fatalf("second snapshot status = %q, want in_progress", second.Status)
	}

	pending.Complete(ctx, "sess-1", SessionResult{Score: 100})
	third := recvSnapshot(t, ch)
	if third.Status != game.StatusCompleted {
		t.Fatalf("third snapshot status = %q, want completed", third.Status)
	}

	// Terminal status ends the stream.
	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected channel closed after terminal status")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestWatchSkipsUnchangedStatus(t *testing.T) {
	pending := newFakePending()
	pending.put(&PendingSession{
		SessionID: "sess-1",
		Status:    game.StatusPending,
	})

	w := NewWatcher(pending, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := w.Watch(ctx, "sess-1")
	recvSnapshot(t, ch)

	// No change: no second emission within several poll cycles.
	select {
	case ps := <-ch:
		t.Fatalf("unexpected snapshot %+v for unchanged status", ps)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatchWaitsForSessionToAppear(t *testing.T) {
	pending := newFakePending()
	w := NewWatcher(pending, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := w.Watch(ctx, "late")

	go func() {
		time.Sleep(20 * time.Millisecond)
		pending.put(&PendingSession{SessionID: "late", Status: game.StatusPending})
	}()

	ps := recvSnapshot(t, ch)
	if ps.SessionID != "late" {
		t.Fatalf("session id = %q, want late", ps.SessionID)
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	pending := newFakePending()
	pending.put(&PendingSession{SessionID: "sess-1", Status: game.StatusPending})

	w := NewWatcher(pending, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	ch := w.Watch(ctx, "sess-1")
	recvSnapshot(t, ch)
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected channel closed after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestWatchAgainstStore(t *testing.T) {
	s := openTestStore(t)
	repo := s.Pending()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := repo.Create(ctx, &PendingSession{
		SessionID:   "sess-1",
		UserID:      "u1",
		Mode:        game.ModeBeatTheClock,
		Difficulty:  game.DifficultyEasy,
		Status:      game.StatusPending,
		CreatedAtMs: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	w := NewWatcher(repo, 5*time.Millisecond)
	ch := w.Watch(ctx, "sess-1")

	if ps := recvSnapshot(t, ch); ps.Status != game.StatusPending {
		t.Fatalf("status = %q, want pending", ps.Status)
	}

	if err := repo.SetStatus(ctx, "sess-1", game.StatusInProgress); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if ps := recvSnapshot(t, ch); ps.Status != game.StatusInProgress {
		t.Fatalf("status = %q, want in_progress", ps.Status)
	}
}
