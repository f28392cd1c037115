package coach

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stepsync/companion/internal/history"
)

func TestStatusMessageRules(t *testing.T) {
	tests := []struct {
		name  string
		stats history.Stats
		want  string
	}{
		{
			name:  "first session",
			stats: history.Stats{},
			want:  "Ready to start your first gaming session?",
		},
		{
			name:  "comeback",
			stats: history.Stats{TotalCount: 5},
			want:  "Time to get back in the game!",
		},
		{
			name:  "long streak not played today",
			stats: history.Stats{Streak: 9, TotalCount: 30},
			want:  "9-day streak! Keep the fire burning!",
		},
		{
			name:  "short streak not played today",
			stats: history.Stats{Streak: 3, TotalCount: 10},
			want:  "Day 3 streak - don't break it now!",
		},
		{
			name:  "multiple sessions today",
			stats: history.Stats{Streak: 3, TodayCount: 2, TotalCount: 10},
			want:  "2 sessions today! You're crushing it!",
		},
		{
			name:  "one session today",
			stats: history.Stats{Streak: 3, TodayCount: 1, TotalCount: 10},
			want:  "Great session! Ready for another challenge?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusMessage(tt.stats); got != tt.want {
				t.Errorf("StatusMessage(%+v) = %q, want %q", tt.stats, got, tt.want)
			}
		})
	}
}

func TestStatusInsightNilProvider(t *testing.T) {
	svc := NewService(nil, 0)
	in := svc.StatusInsight(context.Background(), "alex", history.Stats{})
	if in.Source != "local" {
		t.Errorf("source = %q, want local", in.Source)
	}
	if in.Message == "" {
		t.Error("expected non-empty message")
	}
}

func TestStatusInsightFromProvider(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"message":"Lace up, Alex. The clock is waiting."}`),
	})
	svc := NewService(mock, 0)

	in := svc.StatusInsight(context.Background(), "alex", history.Stats{Streak: 4, TotalCount: 12})
	if in.Source != "coach" {
		t.Fatalf("source = %q, want coach", in.Source)
	}
	if in.Message != "Lace up, Alex. The clock is waiting." {
		t.Errorf("message = %q", in.Message)
	}
	if mock.CallCount() != 1 {
		t.Errorf("call count = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "status-insight" {
		t.Error("expected status-insight schema on request")
	}
}

func TestStatusInsightFallsBackOnError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	svc := NewService(mock, 0)

	in := svc.StatusInsight(context.Background(), "alex", history.Stats{TotalCount: 3})
	if in.Source != "local" {
		t.Fatalf("source = %q, want local fallback", in.Source)
	}
	if in.Message != "Time to get back in the game!" {
		t.Errorf("message = %q", in.Message)
	}
}

func TestStatusInsightFallsBackOnBadJSON(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"note":"wrong shape"}`),
	})
	svc := NewService(mock, 0)

	in := svc.StatusInsight(context.Background(), "alex", history.Stats{})
	if in.Source != "local" {
		t.Fatalf("source = %q, want local fallback", in.Source)
	}
}
