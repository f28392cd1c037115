// Package achievements awards milestone badges from session history
// stats: streak length and lifetime session volume.
package achievements

import (
	"context"
	"fmt"
	"time"

	"github.com/stepsync/companion/internal/history"
	"github.com/stepsync/companion/internal/store"
)

// Milestone thresholds, ascending.
var (
	streakMilestones = []int{3, 7, 14, 30}
	totalMilestones  = []int{10, 20, 50}
)

const (
	KindStreak = "streak"
	KindTotal  = "total"
)

// Award is one newly earned badge.
type Award struct {
	Kind      string
	Threshold int
	Reason    string
}

// Service evaluates milestones and persists new awards.
type Service struct {
	repo store.AchievementRepo

	now func() time.Time
}

// NewService creates a Service over the given repository.
func NewService(repo store.AchievementRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Evaluate awards every milestone the user's stats have reached but not
// yet earned. Called after a session finalizes; sessionID attributes
// the award. Returns the newly earned badges in milestone order.
func (s *Service) Evaluate(ctx context.Context, userID, sessionID string, stats history.Stats) ([]Award, error) {
	var awards []Award

	for _, threshold := range streakMilestones {
		if stats.Streak < threshold {
			break
		}
		award, err := s.awardOnce(ctx, userID, sessionID, KindStreak, threshold,
			fmt.Sprintf("%d-day streak", threshold))
		if err != nil {
			return awards, err
		}
		if award != nil {
			awards = append(awards, *award)
		}
	}

	for _, threshold := range totalMilestones {
		if stats.TotalCount < threshold {
			break
		}
		award, err := s.awardOnce(ctx, userID, sessionID, KindTotal, threshold,
			fmt.Sprintf("%d sessions completed", threshold))
		if err != nil {
			return awards, err
		}
		if award != nil {
			awards = append(awards, *award)
		}
	}

	return awards, nil
}

// Earned returns all badges the user holds, oldest first.
func (s *Service) Earned(ctx context.Context, userID string) ([]*store.Achievement, error) {
	return s.repo.Awarded(ctx, userID)
}

func (s *Service) awardOnce(ctx context.Context, userID, sessionID, kind string, threshold int, reason string) (*Award, error) {
	has, err := s.repo.Has(ctx, userID, kind, threshold)
	if err != nil {
		return nil, fmt.Errorf("check %s %d: %w", kind, threshold, err)
	}
	if has {
		return nil, nil
	}

	err = s.repo.Append(ctx, &store.Achievement{
		UserID:    userID,
		Kind:      kind,
		Threshold: threshold,
		SessionID: sessionID,
		Reason:    reason,
		AwardedAt: s.now().Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("award %s %d: %w", kind, threshold, err)
	}
	return &Award{Kind: kind, Threshold: threshold, Reason: reason}, nil
}
