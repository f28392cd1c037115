package gamezone

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stepsync/companion/internal/achievements"
	"github.com/stepsync/companion/internal/coach"
	"github.com/stepsync/companion/internal/game"
	"github.com/stepsync/companion/internal/identity"
	"github.com/stepsync/companion/internal/recommend"
	"github.com/stepsync/companion/internal/session"
	"github.com/stepsync/companion/internal/store"
)

type fakePending struct {
	mu       sync.Mutex
	sessions map[string]*store.PendingSession
}

func newFakePending() *fakePending {
	return &fakePending{sessions: make(map[string]*store.PendingSession)}
}

func (f *fakePending) Create(_ context.Context, ps *store.PendingSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *ps
	f.sessions[ps.SessionID] = &cp
	return nil
}

func (f *fakePending) Get(_ context.Context, sessionID string) (*store.PendingSession, error) {
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
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[sessionID].Status = status
	return nil
}

func (f *fakePending) Complete(_ context.Context, sessionID string, res store.SessionResult) error {
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
}

func (f *fakeHistory) Sessions(_ context.Context, userID string) ([]*store.SessionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*store.SessionRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeHistory) Append(_ context.Context, rec *store.SessionRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *rec
	f.records = append(f.records, &cp)
	return nil
}

type fakeProfiles struct {
	profile *store.UserProfile
}

func (f *fakeProfiles) Get(context.Context, string) (*store.UserProfile, error) {
	return f.profile, nil
}
func (f *fakeProfiles) Save(_ context.Context, p *store.UserProfile) error {
	f.profile = p
	return nil
}
func (f *fakeProfiles) All(context.Context) ([]*store.UserProfile, error) {
	if f.profile == nil {
		return nil, nil
	}
	return []*store.UserProfile{f.profile}, nil
}

type fakeAwardRepo struct {
	mu     sync.Mutex
	awards []*store.Achievement
}

func (f *fakeAwardRepo) Awarded(context.Context, string) ([]*store.Achievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*store.Achievement(nil), f.awards...), nil
}

func (f *fakeAwardRepo) Has(_ context.Context, userID, kind string, threshold int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.awards {
		if a.UserID == userID && a.Kind == kind && a.Threshold == threshold {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAwardRepo) Append(_ context.Context, a *store.Achievement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *a
	f.awards = append(f.awards, &cp)
	return nil
}

type failingIdentity struct{}

func (failingIdentity) Current() (identity.User, error) {
	return identity.User{}, errors.New("not signed in")
}

func newTestController(pending *fakePending, hist *fakeHistory, profiles *fakeProfiles, awardRepo *fakeAwardRepo) *Controller {
	deps := Deps{
		Users:    identity.Static{User: identity.User{UID: "u1", Email: "u1@example.com"}},
		Profiles: profiles,
		History:  hist,
		Manager:  session.NewManager(pending, hist),
		Strategy: recommend.NewLocal(recommend.Config{}),
		Coach:    coach.NewService(nil, 0),
	}
	if awardRepo != nil {
		deps.Awards = achievements.NewService(awardRepo)
	}
	c := NewController(deps)
	c.tickEvery = time.Millisecond
	return c
}

func TestPrepare(t *testing.T) {
	hist := &fakeHistory{}
	now := time.Now()
	// Two sessions today and one yesterday: streak 2, today 2, total 3.
	hist.records = []*store.SessionRecord{
		{UserID: "u1", Timestamp: now.Unix()},
		{UserID: "u1", Timestamp: now.Add(-time.Hour).Unix()},
		{UserID: "u1", Timestamp: now.AddDate(0, 0, -1).Unix()},
	}
	profiles := &fakeProfiles{profile: &store.UserProfile{
		UserID: "u1", Username: "alex", Age: 40, BMI: 31, WorkoutFrequency: 1,
	}}

	c := newTestController(newFakePending(), hist, profiles, nil)
	setup, err := c.Prepare(context.Background())
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}

	if setup.Stats.TotalCount != 3 || setup.Stats.TodayCount != 2 || setup.Stats.Streak != 2 {
		t.Errorf("stats = %+v, want total 3 / today 2 / streak 2", setup.Stats)
	}
	if setup.Rec.Mode != game.ModeBeatTheClock {
		t.Errorf("mode = %q, want btc for total<10", setup.Rec.Mode)
	}
	if setup.Difficulty.RecommendedKey != string(setup.Rec.Difficulty) {
		t.Errorf("difficulty set recommends %q, rec says %q",
			setup.Difficulty.RecommendedKey, setup.Rec.Difficulty)
	}
	if setup.Mode.SelectedKey != string(setup.Rec.Mode) {
		t.Errorf("mode set selects %q, rec says %q", setup.Mode.SelectedKey, setup.Rec.Mode)
	}
	if setup.Insight.Message == "" || setup.Insight.Source != "local" {
		t.Errorf("insight = %+v, want local message", setup.Insight)
	}
}

func TestPrepareIdentityFailure(t *testing.T) {
	c := newTestController(newFakePending(), &fakeHistory{}, &fakeProfiles{}, nil)
	c.deps.Users = failingIdentity{}

	_, err := c.Prepare(context.Background())
	var perr *session.ErrPrecondition
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *session.ErrPrecondition", err)
	}
}

func TestPlayRunsToExpiry(t *testing.T) {
	pending := newFakePending()
	hist := &fakeHistory{}
	// Nine prior sessions: this play crosses the 10-session milestone.
	now := time.Now()
	for i := 0; i < 9; i++ {
		hist.records = append(hist.records, &store.SessionRecord{
			UserID: "u1", Timestamp: now.Add(-time.Duration(i) * time.Minute).Unix(),
		})
	}
	awardRepo := &fakeAwardRepo{}

	c := newTestController(pending, hist, &fakeProfiles{}, awardRepo)

	outcome, err := c.Play(context.Background(), game.ModeMirror, game.DifficultyHard, nil)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !outcome.Expired {
		t.Fatal("expected natural expiry")
	}

	// mirror/hard: 480s budget, 12 pts/sec, x3, 8 kcal/min.
	if outcome.Result.Score != 480*12*3 {
		t.Errorf("score = %d, want %d", outcome.Result.Score, 480*12*3)
	}
	if outcome.Result.Calories != 64 {
		t.Errorf("calories = %d, want 64", outcome.Result.Calories)
	}
	if outcome.Result.DurationMins != 8 {
		t.Errorf("duration = %d, want 8", outcome.Result.DurationMins)
	}

	done, _ := pending.Get(context.Background(), outcome.SessionID)
	if done.Status != game.StatusCompleted {
		t.Errorf("pending status = %q, want completed", done.Status)
	}

	recs, _ := hist.Sessions(context.Background(), "u1")
	if len(recs) != 10 {
		t.Fatalf("history count = %d, want 10", len(recs))
	}

	foundTotal10 := false
	for _, a := range outcome.Awards {
		if a.Kind == achievements.KindTotal && a.Threshold == 10 {
			foundTotal10 = true
		}
	}
	if !foundTotal10 {
		t.Errorf("awards = %+v, want total/10 milestone", outcome.Awards)
	}
}

func TestPlayManualStopPersistsNothing(t *testing.T) {
	pending := newFakePending()
	hist := &fakeHistory{}
	c := newTestController(pending, hist, &fakeProfiles{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(400 * time.Millisecond)
		cancel()
	}()

	outcome, err := c.Play(ctx, game.ModeBeatTheClock, game.DifficultyEasy, nil)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if outcome.Expired {
		t.Fatal("manual stop must not report expiry")
	}

	ps, _ := pending.Get(context.Background(), outcome.SessionID)
	if ps.Status != game.StatusInProgress {
		t.Errorf("pending status = %q, want in_progress left untouched", ps.Status)
	}
	recs, _ := hist.Sessions(context.Background(), "u1")
	if len(recs) != 0 {
		t.Errorf("history count = %d, want 0 after manual stop", len(recs))
	}
}

func TestPlayReportsProgress(t *testing.T) {
	pending := newFakePending()
	c := newTestController(pending, &fakeHistory{}, &fakeProfiles{}, nil)

	var mu sync.Mutex
	ticks := 0
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		time.Sleep(500 * time.Millisecond)
		cancel()
	}()

	_, err := c.Play(ctx, game.ModeBeatTheClock, game.DifficultyEasy, func(remaining, calories int) {
		mu.Lock()
		ticks++
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("play: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if ticks == 0 {
		t.Error("expected progress callbacks during play")
	}
}
