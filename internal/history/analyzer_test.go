package history

import (
	"testing"
	"time"
)

// now is a fixed reference point: mid-afternoon, away from midnight
// edge effects.
var now = time.Date(2025, 6, 15, 15, 0, 0, 0, time.UTC)

// at returns a Unix-seconds timestamp n days before now, at the given hour.
func at(daysAgo, hour int) int64 {
	return time.Date(2025, 6, 15-daysAgo, hour, 0, 0, 0, time.UTC).Unix()
}

func TestComputeEmptyHistory(t *testing.T) {
	got := Compute(nil, now)
	if got.Streak != 0 || got.TodayCount != 0 || got.TotalCount != 0 {
		t.Errorf("Compute(nil) = %+v, want all zeroes", got)
	}
}

func TestComputeSingleSessionToday(t *testing.T) {
	got := Compute([]Record{{Timestamp: at(0, 9)}}, now)
	if got.Streak < 1 {
		t.Errorf("streak = %d, want >= 1", got.Streak)
	}
	if got.TodayCount != 1 {
		t.Errorf("today = %d, want 1", got.TodayCount)
	}
	if got.TotalCount != 1 {
		t.Errorf("total = %d, want 1", got.TotalCount)
	}
}

func TestComputeYesterdayOnly(t *testing.T) {
	// One session yesterday, none today, nothing before: streak counts
	// from yesterday.
	got := Compute([]Record{{Timestamp: at(1, 20)}}, now)
	if got.Streak != 1 {
		t.Errorf("streak = %d, want 1", got.Streak)
	}
	if got.TodayCount != 0 {
		t.Errorf("today = %d, want 0", got.TodayCount)
	}
}

func TestComputeGapBreaksStreak(t *testing.T) {
	// Session three days ago, nothing since: the walk from today finds
	// no match on day one and stops.
	got := Compute([]Record{{Timestamp: at(3, 10)}}, now)
	if got.Streak != 0 {
		t.Errorf("streak = %d, want 0", got.Streak)
	}
}

func TestComputeMultiDayStreak(t *testing.T) {
	records := []Record{
		{Timestamp: at(0, 8)},
		{Timestamp: at(1, 9)},
		{Timestamp: at(2, 10)},
		{Timestamp: at(3, 11)},
		// Gap at 4 days ago.
		{Timestamp: at(5, 12)},
	}
	got := Compute(records, now)
	if got.Streak != 4 {
		t.Errorf("streak = %d, want 4", got.Streak)
	}
	if got.TotalCount != 5 {
		t.Errorf("total = %d, want 5", got.TotalCount)
	}
}

func TestComputeStreakEndingYesterday(t *testing.T) {
	// Three consecutive days ending yesterday; none today.
	records := []Record{
		{Timestamp: at(1, 8)},
		{Timestamp: at(2, 9)},
		{Timestamp: at(3, 10)},
	}
	got := Compute(records, now)
	if got.Streak != 3 {
		t.Errorf("streak = %d, want 3", got.Streak)
	}
}

func TestComputeMultipleSessionsSameDay(t *testing.T) {
	// Duplicate days collapse to one streak day; today's count sees all.
	records := []Record{
		{Timestamp: at(0, 7)},
		{Timestamp: at(0, 12)},
		{Timestamp: at(0, 18)},
		{Timestamp: at(1, 9)},
	}
	got := Compute(records, now)
	if got.Streak != 2 {
		t.Errorf("streak = %d, want 2", got.Streak)
	}
	if got.TodayCount != 3 {
		t.Errorf("today = %d, want 3", got.TodayCount)
	}
	if got.TotalCount != 4 {
		t.Errorf("total = %d, want 4", got.TotalCount)
	}
}

func TestComputeUsesNowLocation(t *testing.T) {
	// 23:30 UTC on June 14 is already June 15 in UTC+2. A session at
	// that instant counts as "today" for a UTC+2 observer at 01:00.
	loc := time.FixedZone("UTC+2", 2*60*60)
	observer := time.Date(2025, 6, 15, 1, 0, 0, 0, loc)
	session := time.Date(2025, 6, 14, 23, 30, 0, 0, time.UTC)

	got := Compute([]Record{{Timestamp: session.Unix()}}, observer)
	if got.TodayCount != 1 {
		t.Errorf("today = %d, want 1 in observer's zone", got.TodayCount)
	}
}
