package game

import "sync"

// Outcome is the terminal result of a timer run.
type Outcome string

const (
	// OutcomeNone means the runtime has not finished.
	OutcomeNone Outcome = ""
	// OutcomeExpired means the countdown reached zero naturally.
	// The session must be finalized and persisted.
	OutcomeExpired Outcome = "expired"
	// OutcomeStopped means the player stopped early. Persistence is
	// left to the companion client.
	OutcomeStopped Outcome = "stopped"
)

// Result carries the figures written on finalization.
type Result struct {
	Score        int
	Calories     int
	DurationMins int
}

// Runtime is the countdown and scoring state machine for one session.
//
// Its lifecycle is solely a function of the externally observed session
// status: Reconcile must be called on every status change, and Tick once
// per second while ticking. Both are safe for concurrent use.
type Runtime struct {
	mu sync.Mutex

	mode       Mode
	difficulty Difficulty
	budget     int

	remaining int
	elapsed   int
	calories  int
	ticking   bool
	outcome   Outcome
	status    Status
}

// NewRuntime creates an idle runtime with the full time budget for the
// (mode, difficulty) pairing.
func NewRuntime(m Mode, d Difficulty) *Runtime {
	budget := TimeBudgetSecs(m, d)
	return &Runtime{
		mode:       m,
		difficulty: d,
		budget:     budget,
		remaining:  budget,
		status:     StatusPending,
	}
}

// Reconcile aligns the timer with an observed session status. Entering
// in_progress starts ticking; a repeated in_progress is a no-op so a
// second timer can never start over a running one. Re-entering pending
// resets elapsed time and calories so a fresh session cannot inherit
// stale figures. Any other status stops the timer.
func (r *Runtime) Reconcile(status Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.outcome != OutcomeNone {
		return
	}

	switch status {
	case StatusInProgress:
		if r.status != StatusInProgress {
			r.ticking = true
		}
	case StatusPending:
		r.remaining = r.budget
		r.elapsed = 0
		r.calories = 0
		r.ticking = false
	default:
		r.ticking = false
	}
	r.status = status
}

// Tick advances the countdown by one second. It returns the outcome,
// which is OutcomeExpired exactly once, on the tick that exhausts the
// budget. Ticks while not running are ignored.
func (r *Runtime) Tick() Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.ticking || r.outcome != OutcomeNone {
		return OutcomeNone
	}

	r.elapsed++
	r.remaining--
	r.calories = Calories(r.mode, r.difficulty, r.elapsed)

	if r.remaining <= 0 {
		r.remaining = 0
		r.ticking = false
		r.outcome = OutcomeExpired
		return OutcomeExpired
	}
	return OutcomeNone
}

// Stop halts the countdown for a manual early stop. It reports
// OutcomeStopped unless the run already expired.
func (r *Runtime) Stop() Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.outcome != OutcomeNone {
		return r.outcome
	}
	r.ticking = false
	r.outcome = OutcomeStopped
	return OutcomeStopped
}

// Result computes the figures for the run so far. Score is only
// meaningful after natural expiry; calories and duration track any
// elapsed play time.
func (r *Runtime) Result() Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Result{
		Score:        FinalScore(r.mode, r.difficulty, r.elapsed),
		Calories:     r.calories,
		DurationMins: r.elapsed / 60,
	}
}

// Ticking reports whether the countdown is running.
func (r *Runtime) Ticking() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ticking
}

// Remaining returns the seconds left on the countdown.
func (r *Runtime) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// Elapsed returns the seconds played so far.
func (r *Runtime) Elapsed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.elapsed
}

// CaloriesBurned returns the floored calorie figure for the elapsed time.
func (r *Runtime) CaloriesBurned() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calories
}

// Fraction returns the remaining share of the time budget, for the
// time-bar display. Range 0.0 to 1.0.
func (r *Runtime) Fraction() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.budget == 0 {
		return 0
	}
	return float64(r.remaining) / float64(r.budget)
}

// Outcome returns the terminal outcome, or OutcomeNone while running.
func (r *Runtime) Outcome() Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcome
}
