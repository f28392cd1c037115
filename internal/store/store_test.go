package store

import (
	"context"
	"strconv"
	"testing"

	"github.com/stepsync/companion/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileGetMissing(t *testing.T) {
	s := openTestStore(t)
	p, err := s.Profiles().Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile when none exists")
	}
}

func TestProfileSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	err := repo.Save(ctx, &UserProfile{
		UserID:           "u1",
		Username:         "runner",
		Email:            "runner@example.com",
		Age:              28,
		WeightKg:         72.5,
		HeightCm:         178,
		BMI:              22.9,
		RestingBPM:       62,
		WorkoutFrequency: 4,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	p, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p == nil {
		t.Fatal("expected profile")
	}
	if p.Username != "runner" {
		t.Errorf("username = %q, want %q", p.Username, "runner")
	}
	if p.Age != 28 {
		t.Errorf("age = %d, want 28", p.Age)
	}
	if p.BMI != 22.9 {
		t.Errorf("bmi = %v, want 22.9", p.BMI)
	}
	if p.ProfilePic != "default.jpg" {
		t.Errorf("profile pic = %q, want default", p.ProfilePic)
	}
}

func TestProfileSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	base := &UserProfile{UserID: "u1", Username: "old", Email: "a@b.c", Age: 30}
	if err := repo.Save(ctx, base); err != nil {
		t.Fatalf("save: %v", err)
	}

	base.Username = "new"
	base.Age = 31
	if err := repo.Save(ctx, base); err != nil {
		t.Fatalf("resave: %v", err)
	}

	p, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Username != "new" || p.Age != 31 {
		t.Errorf("got %q/%d, want new/31", p.Username, p.Age)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("profile count = %d, want 1", len(all))
	}
}

func TestHistoryAppendAndSessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.History()
	ctx := context.Background()

	// Append out of chronological order.
	for _, ts := range []int64{1000, 3000, 2000} {
		err := repo.Append(ctx, &SessionRecord{
			SessionID:    "rec-" + strconv.FormatInt(ts, 10),
			UserID:       "u1",
			Timestamp:    ts,
			Mode:         game.ModeBeatTheClock,
			Difficulty:   game.DifficultyEasy,
			Score:        int(ts),
			Calories:     4,
			DurationMins: 1,
		})
		if err != nil {
			t.Fatalf("append %d: %v", ts, err)
		}
	}

	recs, err := repo.Sessions(ctx, "u1")
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("record count = %d, want 3", len(recs))
	}
	for i, want := range []int64{3000, 2000, 1000} {
		if recs[i].Timestamp != want {
			t.Errorf("recs[%d].timestamp = %d, want %d (newest first)", i, recs[i].Timestamp, want)
		}
	}

	other, err := repo.Sessions(ctx, "u2")
	if err != nil {
		t.Fatalf("sessions u2: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("u2 record count = %d, want 0", len(other))
	}
}

func TestPendingLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.Pending()
	ctx := context.Background()

	ps := &PendingSession{
		SessionID:   "sess-1",
		UserID:      "u1",
		UserEmail:   "u1@example.com",
		Mode:        game.ModeMemory,
		Difficulty:  game.DifficultyMedium,
		Status:      game.StatusPending,
		CreatedAtMs: 1750000000000,
	}
	if err := repo.Create(ctx, ps); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Status != game.StatusPending {
		t.Fatalf("got %+v, want pending session", got)
	}
	if got.CreatedAtMs != 1750000000000 {
		t.Errorf("createdAtMs = %d, want 1750000000000", got.CreatedAtMs)
	}

	if err := repo.SetStatus(ctx, "sess-1", game.StatusInProgress); err != nil {
		t.Fatalf("set status: %v", err)
	}
	got, _ = repo.Get(ctx, "sess-1")
	if got.Status != game.StatusInProgress {
		t.Errorf("status = %q, want in_progress", got.Status)
	}

	err = repo.Complete(ctx, "sess-1", SessionResult{Score: 960, Calories: 4, DurationMins: 2})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	got, _ = repo.Get(ctx, "sess-1")
	if got.Status != game.StatusCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if got.Score != 960 || got.Calories != 4 || got.DurationMins != 2 {
		t.Errorf("result = %d/%d/%d, want 960/4/2", got.Score, got.Calories, got.DurationMins)
	}
}

func TestPendingFindActiveOldestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Pending()
	ctx := context.Background()

	sessions := []*PendingSession{
		{SessionID: "newer", UserID: "u1", Status: game.StatusPending, CreatedAtMs: 2000, Mode: game.ModeBeatTheClock, Difficulty: game.DifficultyEasy},
		{SessionID: "older", UserID: "u1", Status: game.StatusInProgress, CreatedAtMs: 1000, Mode: game.ModeBeatTheClock, Difficulty: game.DifficultyEasy},
		{SessionID: "done", UserID: "u1", Status: game.StatusCompleted, CreatedAtMs: 500, Mode: game.ModeBeatTheClock, Difficulty: game.DifficultyEasy},
		{SessionID: "theirs", UserID: "u2", Status: game.StatusPending, CreatedAtMs: 100, Mode: game.ModeBeatTheClock, Difficulty: game.DifficultyEasy},
	}
	for _, ps := range sessions {
		if err := repo.Create(ctx, ps); err != nil {
			t.Fatalf("create %s: %v", ps.SessionID, err)
		}
	}

	got, err := repo.FindActive(ctx, "u1")
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if got == nil || got.SessionID != "older" {
		t.Fatalf("find active = %+v, want session %q", got, "older")
	}

	active, err := repo.ActiveForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("active for user: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("active count = %d, want 2", len(active))
	}
	if active[0].SessionID != "older" || active[1].SessionID != "newer" {
		t.Errorf("order = %q,%q, want older,newer", active[0].SessionID, active[1].SessionID)
	}
}

func TestPendingFindActiveNone(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Pending().FindActive(context.Background(), "u1")
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}

func TestPendingUpdateMissing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Pending().SetStatus(ctx, "ghost", game.StatusInProgress); err == nil {
		t.Error("expected error setting status on missing session")
	}
	if err := s.Pending().Complete(ctx, "ghost", SessionResult{}); err == nil {
		t.Error("expected error completing missing session")
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"user_profiles", "session_records", "pending_sessions", "achievements"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
