package store

import (
	"context"
	"fmt"

	"github.com/stepsync/companion/ent"
	"github.com/stepsync/companion/ent/sessionrecord"
	"github.com/stepsync/companion/internal/game"
)

type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Sessions(ctx context.Context, userID string) ([]*SessionRecord, error) {
	rows, err := r.client.SessionRecord.Query().
		Where(sessionrecord.UserID(userID)).
		Order(ent.Desc(sessionrecord.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session history: %w", err)
	}

	out := make([]*SessionRecord, len(rows))
	for i, row := range rows {
		out[i] = &SessionRecord{
			SessionID:    row.SessionID,
			UserID:       row.UserID,
			Timestamp:    row.Timestamp,
			Mode:         game.Mode(row.GameMode),
			Difficulty:   game.Difficulty(row.Difficulty),
			Score:        row.Score,
			Calories:     row.Calories,
			DurationMins: row.DurationMins,
		}
	}
	return out, nil
}

func (r *historyRepo) Append(ctx context.Context, rec *SessionRecord) error {
	_, err := r.client.SessionRecord.Create().
		SetSessionID(rec.SessionID).
		SetUserID(rec.UserID).
		SetTimestamp(rec.Timestamp).
		SetGameMode(string(rec.Mode)).
		SetDifficulty(string(rec.Difficulty)).
		SetScore(rec.Score).
		SetCalories(rec.Calories).
		SetDurationMins(rec.DurationMins).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append session record: %w", err)
	}
	return nil
}
