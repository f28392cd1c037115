package leaderboard

import (
	"context"
	"testing"

	"github.com/stepsync/companion/internal/game"
	"github.com/stepsync/companion/internal/store"
)

type fakeProfiles struct {
	profiles []*store.UserProfile
}

func (f *fakeProfiles) Get(_ context.Context, userID string) (*store.UserProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfiles) Save(_ context.Context, p *store.UserProfile) error {
	f.profiles = append(f.profiles, p)
	return nil
}

func (f *fakeProfiles) All(context.Context) ([]*store.UserProfile, error) {
	return f.profiles, nil
}

type fakeHistory struct {
	records map[string][]*store.SessionRecord
}

func (f *fakeHistory) Sessions(_ context.Context, userID string) ([]*store.SessionRecord, error) {
	return f.records[userID], nil
}

func (f *fakeHistory) Append(_ context.Context, rec *store.SessionRecord) error {
	f.records[rec.UserID] = append(f.records[rec.UserID], rec)
	return nil
}

func rec(userID string, score, calories int) *store.SessionRecord {
	return &store.SessionRecord{
		UserID:     userID,
		Mode:       game.ModeBeatTheClock,
		Difficulty: game.DifficultyEasy,
		Score:      score,
		Calories:   calories,
	}
}

func TestTopRanksByScore(t *testing.T) {
	profiles := &fakeProfiles{profiles: []*store.UserProfile{
		{UserID: "u1", Username: "amy"},
		{UserID: "u2", Username: "ben"},
		{UserID: "u3", Username: "cleo"},
	}}
	history := &fakeHistory{records: map[string][]*store.SessionRecord{
		"u1": {rec("u1", 500, 10), rec("u1", 300, 5)},
		"u2": {rec("u2", 2000, 30)},
		"u3": {rec("u3", 100, 2)},
	}}

	entries, err := NewService(profiles, history).Top(context.Background(), 0)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entry count = %d, want 3", len(entries))
	}

	wantOrder := []string{"ben", "amy", "cleo"}
	for i, want := range wantOrder {
		if entries[i].Username != want {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Username, want)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("entries[%d].Rank = %d, want %d", i, entries[i].Rank, i+1)
		}
	}
	if entries[1].TotalScore != 800 || entries[1].Sessions != 2 || entries[1].Calories != 15 {
		t.Errorf("amy totals = %+v", entries[1])
	}
}

func TestTopTieBreaks(t *testing.T) {
	profiles := &fakeProfiles{profiles: []*store.UserProfile{
		{UserID: "u1", Username: "zed"},
		{UserID: "u2", Username: "abe"},
		{UserID: "u3", Username: "mia"},
	}}
	// zed and abe tie on score; abe has more sessions. mia ties abe on
	// score and sessions; name order decides.
	history := &fakeHistory{records: map[string][]*store.SessionRecord{
		"u1": {rec("u1", 600, 1)},
		"u2": {rec("u2", 300, 1), rec("u2", 300, 1)},
		"u3": {rec("u3", 200, 1), rec("u3", 400, 1)},
	}}

	entries, err := NewService(profiles, history).Top(context.Background(), 0)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	wantOrder := []string{"abe", "mia", "zed"}
	for i, want := range wantOrder {
		if entries[i].Username != want {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Username, want)
		}
	}
}

func TestTopLimit(t *testing.T) {
	profiles := &fakeProfiles{profiles: []*store.UserProfile{
		{UserID: "u1", Username: "a"},
		{UserID: "u2", Username: "b"},
		{UserID: "u3", Username: "c"},
	}}
	history := &fakeHistory{records: map[string][]*store.SessionRecord{}}

	entries, err := NewService(profiles, history).Top(context.Background(), 2)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entry count = %d, want 2", len(entries))
	}
}

func TestTopEmptyHistoryUsers(t *testing.T) {
	profiles := &fakeProfiles{profiles: []*store.UserProfile{
		{UserID: "u1", Username: "idle"},
	}}
	history := &fakeHistory{records: map[string][]*store.SessionRecord{}}

	entries, err := NewService(profiles, history).Top(context.Background(), 0)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(entries) != 1 || entries[0].TotalScore != 0 || entries[0].Sessions != 0 {
		t.Errorf("entries = %+v", entries)
	}
}
