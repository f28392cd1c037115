package achievements

import (
	"context"
	"testing"
	"time"

	"github.com/stepsync/companion/internal/history"
	"github.com/stepsync/companion/internal/store"
)

type fakeRepo struct {
	awards []*store.Achievement
}

func (f *fakeRepo) Awarded(_ context.Context, userID string) ([]*store.Achievement, error) {
	var out []*store.Achievement
	for _, a := range f.awards {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) Has(_ context.Context, userID, kind string, threshold int) (bool, error) {
	for _, a := range f.awards {
		if a.UserID == userID && a.Kind == kind && a.Threshold == threshold {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Append(_ context.Context, a *store.Achievement) error {
	cp := *a
	f.awards = append(f.awards, &cp)
	return nil
}

func newTestService(repo *fakeRepo) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return time.Unix(1750000000, 0) }
	return s
}

func TestEvaluateNoMilestones(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	awards, err := svc.Evaluate(context.Background(), "u1", "s1", history.Stats{Streak: 2, TotalCount: 5})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(awards) != 0 {
		t.Fatalf("awards = %v, want none", awards)
	}
}

func TestEvaluateStreakMilestone(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	awards, err := svc.Evaluate(context.Background(), "u1", "s1", history.Stats{Streak: 3, TotalCount: 4})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(awards) != 1 {
		t.Fatalf("award count = %d, want 1", len(awards))
	}
	if awards[0].Kind != KindStreak || awards[0].Threshold != 3 {
		t.Errorf("award = %+v, want streak/3", awards[0])
	}
	if repo.awards[0].SessionID != "s1" {
		t.Errorf("session id = %q, want s1", repo.awards[0].SessionID)
	}
}

func TestEvaluateCatchesUpMultipleMilestones(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	awards, err := svc.Evaluate(context.Background(), "u1", "s1", history.Stats{Streak: 15, TotalCount: 22})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	// Streak 3/7/14 plus totals 10/20.
	if len(awards) != 5 {
		t.Fatalf("award count = %d, want 5: %+v", len(awards), awards)
	}
	last := awards[len(awards)-1]
	if last.Kind != KindTotal || last.Threshold != 20 {
		t.Errorf("last award = %+v, want total/20", last)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()
	stats := history.Stats{Streak: 7, TotalCount: 12}

	first, err := svc.Evaluate(ctx, "u1", "s1", stats)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(first) != 3 { // streak 3, streak 7, total 10
		t.Fatalf("first pass awards = %d, want 3", len(first))
	}

	second, err := svc.Evaluate(ctx, "u1", "s2", stats)
	if err != nil {
		t.Fatalf("evaluate again: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("second pass awards = %v, want none", second)
	}
	if len(repo.awards) != 3 {
		t.Errorf("stored awards = %d, want 3", len(repo.awards))
	}
}

func TestEvaluatePerUser(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.Evaluate(ctx, "u1", "s1", history.Stats{Streak: 3, TotalCount: 1}); err != nil {
		t.Fatalf("evaluate u1: %v", err)
	}
	awards, err := svc.Evaluate(ctx, "u2", "s2", history.Stats{Streak: 3, TotalCount: 1})
	if err != nil {
		t.Fatalf("evaluate u2: %v", err)
	}
	if len(awards) != 1 {
		t.Fatalf("u2 awards = %d, want 1", len(awards))
	}

	earned, err := svc.Earned(ctx, "u1")
	if err != nil {
		t.Fatalf("earned: %v", err)
	}
	if len(earned) != 1 || earned[0].UserID != "u1" {
		t.Errorf("u1 earned = %+v", earned)
	}
}
