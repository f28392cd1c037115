// Package gamezone is the headless game-zone controller: it glues
// identity, history stats, recommendations, session lifecycle and the
// timer runtime into the flow the mobile screen drives by hand.
package gamezone

import (
	"context"
	"time"

	"github.com/stepsync/companion/internal/achievements"
	"github.com/stepsync/companion/internal/coach"
	"github.com/stepsync/companion/internal/game"
	"github.com/stepsync/companion/internal/history"
	"github.com/stepsync/companion/internal/identity"
	"github.com/stepsync/companion/internal/recommend"
	"github.com/stepsync/companion/internal/session"
	"github.com/stepsync/companion/internal/store"
)

// Deps are the collaborators a Controller needs. Coach and Awards are
// optional.
type Deps struct {
	Users    identity.Provider
	Profiles store.ProfileRepo
	History  store.HistoryRepo
	Manager  *session.Manager
	Strategy recommend.Strategy
	Coach    *coach.Service
	Awards   *achievements.Service
}

// Controller runs the game-zone flow.
type Controller struct {
	deps Deps

	now       func() time.Time
	tickEvery time.Duration
}

// NewController creates a Controller.
func NewController(deps Deps) *Controller {
	return &Controller{
		deps:      deps,
		now:       time.Now,
		tickEvery: time.Second,
	}
}

// Setup is everything the pre-game screen shows: who is playing, their
// stats, the coach line, and the recommended option sets.
type Setup struct {
	User       identity.User
	Profile    *store.UserProfile
	Stats      history.Stats
	Insight    coach.Insight
	Rec        recommend.Recommendation
	Difficulty *recommend.OptionSet
	Mode       *recommend.OptionSet
}

// Outcome is the result of one play.
type Outcome struct {
	SessionID string
	Expired   bool
	Result    store.SessionResult
	Awards    []achievements.Award
}

// Prepare resolves the user, computes stats, runs the recommendation
// and applies it to fresh option sets.
func (c *Controller) Prepare(ctx context.Context) (*Setup, error) {
	user, err := c.deps.Users.Current()
	if err != nil {
		return nil, &session.ErrPrecondition{Missing: "identity", Err: err}
	}

	profile, err := c.deps.Profiles.Get(ctx, user.UID)
	if err != nil {
		return nil, &session.ErrPersistence{Op: "load profile", Err: err}
	}

	stats, err := c.stats(ctx, user.UID)
	if err != nil {
		return nil, err
	}

	rec := c.deps.Strategy.Recommend(ctx, recProfile(profile), stats)

	setup := &Setup{
		User:       user,
		Profile:    profile,
		Stats:      stats,
		Rec:        rec,
		Difficulty: recommend.DifficultyOptions(),
		Mode:       recommend.ModeOptions(),
	}
	recommend.Apply(rec, setup.Difficulty, setup.Mode)

	if c.deps.Coach != nil {
		setup.Insight = c.deps.Coach.StatusInsight(ctx, username(profile), stats)
	}

	return setup, nil
}

// Play creates a pending session for the selected pairing, starts it,
// and drives the timer until natural expiry or cancellation. Expiry
// finalizes the session and evaluates milestones; canceling ctx is a
// manual stop and persists nothing. The progress callback, when set,
// fires once per tick.
func (c *Controller) Play(ctx context.Context, mode game.Mode, difficulty game.Difficulty, progress func(remaining, calories int)) (*Outcome, error) {
	user, err := c.deps.Users.Current()
	if err != nil {
		return nil, &session.ErrPrecondition{Missing: "identity", Err: err}
	}

	ps, err := c.deps.Manager.Create(ctx, user.UID, user.Email, mode, difficulty)
	if err != nil {
		return nil, err
	}

	// Observe before starting so no transition is missed.
	snapshots, stopObs, err := c.deps.Manager.ObserveActive(ctx, user.UID)
	if err != nil {
		return nil, err
	}
	defer stopObs()

	if err := c.deps.Manager.Start(ctx, ps.SessionID); err != nil {
		return nil, err
	}

	rt := game.NewRuntime(mode, difficulty)
	ticker := time.NewTicker(c.tickEvery)
	defer ticker.Stop()

	outcome := &Outcome{SessionID: ps.SessionID}

	for {
		select {
		case snap, ok := <-snapshots:
			if !ok {
				// Stream ended: the session went terminal elsewhere.
				rt.Stop()
				outcome.Result = store.SessionResult(rt.Result())
				return outcome, nil
			}
			rt.Reconcile(snap.Status)

		case <-ticker.C:
			if !rt.Ticking() {
				continue
			}
			if rt.Tick() != game.OutcomeExpired {
				if progress != nil {
					progress(rt.Remaining(), rt.CaloriesBurned())
				}
				continue
			}

			res := store.SessionResult(rt.Result())
			if err := c.deps.Manager.Finalize(ctx, ps.SessionID, res); err != nil {
				return nil, err
			}
			outcome.Expired = true
			outcome.Result = res
			c.evaluateAwards(ctx, user.UID, ps.SessionID, outcome)
			return outcome, nil

		case <-ctx.Done():
			// Manual stop: halt the timer, leave the record untouched.
			rt.Stop()
			outcome.Result = store.SessionResult(rt.Result())
			return outcome, nil
		}
	}
}

func (c *Controller) stats(ctx context.Context, userID string) (history.Stats, error) {
	recs, err := c.deps.History.Sessions(ctx, userID)
	if err != nil {
		return history.Stats{}, &session.ErrPersistence{Op: "load history", Err: err}
	}
	records := make([]history.Record, len(recs))
	for i, r := range recs {
		records[i] = history.Record{Timestamp: r.Timestamp}
	}
	return history.Compute(records, c.now()), nil
}

func (c *Controller) evaluateAwards(ctx context.Context, userID, sessionID string, outcome *Outcome) {
	if c.deps.Awards == nil {
		return
	}
	stats, err := c.stats(ctx, userID)
	if err != nil {
		return
	}
	awards, err := c.deps.Awards.Evaluate(ctx, userID, sessionID, stats)
	if err != nil {
		return
	}
	outcome.Awards = awards
}

func recProfile(p *store.UserProfile) recommend.Profile {
	if p == nil {
		return recommend.Profile{}
	}
	return recommend.Profile{
		Age:              p.Age,
		WeightKg:         p.WeightKg,
		HeightCm:         p.HeightCm,
		BMI:              p.BMI,
		RestingBPM:       p.RestingBPM,
		WorkoutFrequency: p.WorkoutFrequency,
	}
}

func username(p *store.UserProfile) string {
	if p == nil || p.Username == "" {
		return "Player"
	}
	return p.Username
}
