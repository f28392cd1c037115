package store

import (
	"context"
	"fmt"

	"github.com/stepsync/companion/ent"
	"github.com/stepsync/companion/ent/pendingsession"
	"github.com/stepsync/companion/internal/game"
)

type pendingRepo struct {
	client *ent.Client
}

func (r *pendingRepo) Create(ctx context.Context, ps *PendingSession) error {
	_, err := r.client.PendingSession.Create().
		SetSessionID(ps.SessionID).
		SetUserID(ps.UserID).
		SetUserEmail(ps.UserEmail).
		SetGameMode(string(ps.Mode)).
		SetDifficulty(string(ps.Difficulty)).
		SetStatus(string(ps.Status)).
		SetCreatedAtMs(ps.CreatedAtMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create pending session: %w", err)
	}
	return nil
}

func (r *pendingRepo) Get(ctx context.Context, sessionID string) (*PendingSession, error) {
	row, err := r.client.PendingSession.Query().
		Where(pendingsession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query pending session: %w", err)
	}
	return pendingFromRow(row), nil
}

func (r *pendingRepo) FindActive(ctx context.Context, userID string) (*PendingSession, error) {
	row, err := r.client.PendingSession.Query().
		Where(
			pendingsession.UserID(userID),
			pendingsession.StatusIn(string(game.StatusPending), string(game.StatusInProgress)),
		).
		Order(ent.Asc(pendingsession.FieldCreatedAtMs)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find active session: %w", err)
	}
	return pendingFromRow(row), nil
}

func (r *pendingRepo) ActiveForUser(ctx context.Context, userID string) ([]*PendingSession, error) {
	rows, err := r.client.PendingSession.Query().
		Where(
			pendingsession.UserID(userID),
			pendingsession.StatusIn(string(game.StatusPending), string(game.StatusInProgress)),
		).
		Order(ent.Asc(pendingsession.FieldCreatedAtMs)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active sessions: %w", err)
	}
	out := make([]*PendingSession, len(rows))
	for i, row := range rows {
		out[i] = pendingFromRow(row)
	}
	return out, nil
}

func (r *pendingRepo) SetStatus(ctx context.Context, sessionID string, status game.Status) error {
	n, err := r.client.PendingSession.Update().
		Where(pendingsession.SessionID(sessionID)).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set session status: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("set session status: session %s not found", sessionID)
	}
	return nil
}

func (r *pendingRepo) Complete(ctx context.Context, sessionID string, res SessionResult) error {
	n, err := r.client.PendingSession.Update().
		Where(pendingsession.SessionID(sessionID)).
		SetStatus(string(game.StatusCompleted)).
		SetScore(res.Score).
		SetCalories(res.Calories).
		SetDurationMins(res.DurationMins).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete pending session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("complete pending session: session %s not found", sessionID)
	}
	return nil
}

func pendingFromRow(row *ent.PendingSession) *PendingSession {
	return &PendingSession{
		SessionID:    row.SessionID,
		UserID:       row.UserID,
		UserEmail:    row.UserEmail,
		Mode:         game.Mode(row.GameMode),
		Difficulty:   game.Difficulty(row.Difficulty),
		Status:       game.Status(row.Status),
		CreatedAtMs:  row.CreatedAtMs,
		Score:        row.Score,
		Calories:     row.Calories,
		DurationMins: row.DurationMins,
	}
}
