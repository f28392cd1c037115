// Package leaderboard ranks users by lifetime game performance.
package leaderboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/stepsync/companion/internal/store"
)

// Entry is one ranked row.
type Entry struct {
	Rank       int
	UserID     string
	Username   string
	TotalScore int
	Sessions   int
	Calories   int
}

// Service computes rankings from stored profiles and histories.
type Service struct {
	profiles store.ProfileRepo
	history  store.HistoryRepo
}

// NewService creates a Service over the given repositories.
func NewService(profiles store.ProfileRepo, history store.HistoryRepo) *Service {
	return &Service{profiles: profiles, history: history}
}

// Top returns up to limit entries ranked by total score, ties broken by
// session count, then username. A limit of 0 or less returns everyone.
func (s *Service) Top(ctx context.Context, limit int) ([]Entry, error) {
	profiles, err := s.profiles.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	entries := make([]Entry, 0, len(profiles))
	for _, p := range profiles {
		recs, err := s.history.Sessions(ctx, p.UserID)
		if err != nil {
			return nil, fmt.Errorf("load history for %s: %w", p.UserID, err)
		}
		e := Entry{UserID: p.UserID, Username: p.Username}
		for _, r := range recs {
			e.TotalScore += r.Score
			e.Calories += r.Calories
			e.Sessions++
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		if entries[i].Sessions != entries[j].Sessions {
			return entries[i].Sessions > entries[j].Sessions
		}
		return entries[i].Username < entries[j].Username
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
