package store

import (
	"context"
	"fmt"

	"github.com/stepsync/companion/ent"
	"github.com/stepsync/companion/ent/achievement"
)

// Achievement is one milestone badge award. Append-only; (user, kind,
// threshold) is unique.
type Achievement struct {
	UserID    string
	Kind      string
	Threshold int
	SessionID string
	Reason    string
	AwardedAt int64
}

// AchievementRepo manages milestone badge awards.
type AchievementRepo interface {
	// Awarded returns the user's badges, oldest first.
	Awarded(ctx context.Context, userID string) ([]*Achievement, error)

	// Has reports whether the user already holds the given badge.
	Has(ctx context.Context, userID, kind string, threshold int) (bool, error)

	// Append stores a new badge award.
	Append(ctx context.Context, a *Achievement) error
}

type achievementRepo struct {
	client *ent.Client
}

func (r *achievementRepo) Awarded(ctx context.Context, userID string) ([]*Achievement, error) {
	rows, err := r.client.Achievement.Query().
		Where(achievement.UserID(userID)).
		Order(ent.Asc(achievement.FieldAwardedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	out := make([]*Achievement, len(rows))
	for i, row := range rows {
		out[i] = &Achievement{
			UserID:    row.UserID,
			Kind:      row.Kind,
			Threshold: row.Threshold,
			SessionID: row.SessionID,
			Reason:    row.Reason,
			AwardedAt: row.AwardedAt,
		}
	}
	return out, nil
}

func (r *achievementRepo) Has(ctx context.Context, userID, kind string, threshold int) (bool, error) {
	n, err := r.client.Achievement.Query().
		Where(
			achievement.UserID(userID),
			achievement.Kind(kind),
			achievement.Threshold(threshold),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("query achievement: %w", err)
	}
	return n > 0, nil
}

func (r *achievementRepo) Append(ctx context.Context, a *Achievement) error {
	_, err := r.client.Achievement.Create().
		SetUserID(a.UserID).
		SetKind(a.Kind).
		SetThreshold(a.Threshold).
		SetSessionID(a.SessionID).
		SetReason(a.Reason).
		SetAwardedAt(a.AwardedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append achievement: %w", err)
	}
	return nil
}
