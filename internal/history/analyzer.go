// Package history derives engagement stats from a user's completed
// session records: total count, today's count, and the consecutive-day
// streak that feeds the recommendation engine.
package history

import (
	"sort"
	"time"
)

const dayFormat = "2006-01-02"

// Record is the slice of a session history entry the analyzer needs.
type Record struct {
	// Timestamp is Unix seconds at completion.
	Timestamp int64
}

// Stats holds the derived history values.
type Stats struct {
	// Streak is the count of consecutive calendar days, ending today
	// or yesterday, with at least one session.
	Streak int
	// TodayCount is the number of sessions completed today.
	TodayCount int
	// TotalCount is the lifetime session count.
	TotalCount int
}

// Compute derives Stats from session records. Calendar dates are taken
// in now's location.
func Compute(records []Record, now time.Time) Stats {
	stats := Stats{TotalCount: len(records)}
	if len(records) == 0 {
		return stats
	}

	loc := now.Location()
	today := now.Format(dayFormat)

	seen := make(map[string]bool, len(records))
	var dates []string
	for _, rec := range records {
		day := time.Unix(rec.Timestamp, 0).In(loc).Format(dayFormat)
		if day == today {
			stats.TodayCount++
		}
		if !seen[day] {
			seen[day] = true
			dates = append(dates, day)
		}
	}

	stats.Streak = streak(dates, now)
	return stats
}

// streak walks backward one calendar day at a time, counting matching
// session days until the first gap. It starts from yesterday instead of
// today when the most recent session day is yesterday and there is none
// today.
func streak(uniqueDates []string, now time.Time) int {
	if len(uniqueDates) == 0 {
		return 0
	}

	// Distinct ISO dates, newest first. Lexicographic order matches
	// chronological order for this format.
	sort.Sort(sort.Reverse(sort.StringSlice(uniqueDates)))

	today := now.Format(dayFormat)
	yesterday := now.AddDate(0, 0, -1).Format(dayFormat)

	cursor := now
	if uniqueDates[0] == yesterday && !contains(uniqueDates, today) {
		cursor = now.AddDate(0, 0, -1)
	}

	count := 0
	for _, day := range uniqueDates {
		if day != cursor.Format(dayFormat) {
			break
		}
		count++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return count
}

func contains(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
