package game

import "testing"

func tick(t *testing.T, r *Runtime, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		r.Tick()
	}
}

func TestRuntimeIdleWhilePending(t *testing.T) {
	r := NewRuntime(ModeBeatTheClock, DifficultyEasy)

	if r.Ticking() {
		t.Fatal("new runtime should not be ticking")
	}
	tick(t, r, 10)
	if r.Elapsed() != 0 {
		t.Errorf("elapsed = %d, want 0 while pending", r.Elapsed())
	}
	if r.Remaining() != 900 {
		t.Errorf("remaining = %d, want full 900s budget", r.Remaining())
	}
}

func TestRuntimeStartsOnInProgress(t *testing.T) {
	r := NewRuntime(ModeBeatTheClock, DifficultyEasy)
	r.Reconcile(StatusInProgress)

	if !r.Ticking() {
		t.Fatal("runtime should tick once in_progress")
	}
	tick(t, r, 60)

	if r.Elapsed() != 60 {
		t.Errorf("elapsed = %d, want 60", r.Elapsed())
	}
	if r.Remaining() != 840 {
		t.Errorf("remaining = %d, want 840", r.Remaining())
	}
	// 1 minute of btc/easy at 4 kcal/min.
	if r.CaloriesBurned() != 4 {
		t.Errorf("calories = %d, want 4", r.CaloriesBurned())
	}
}

func TestRuntimeFraction(t *testing.T) {
	r := NewRuntime(ModeBeatTheClock, DifficultyEasy)
	r.Reconcile(StatusInProgress)
	tick(t, r, 90)

	want := 810.0 / 900.0
	if got := r.Fraction(); got != want {
		t.Errorf("fraction = %f, want %f", got, want)
	}
}

func TestRuntimeExpiry(t *testing.T) {
	r := NewRuntime(ModeMemory, DifficultyHard) // 360s budget

	r.Reconcile(StatusInProgress)
	var expired int
	for i := 0; i < 400; i++ {
		if r.Tick() == OutcomeExpired {
			expired++
		}
	}

	if expired != 1 {
		t.Errorf("OutcomeExpired reported %d times, want exactly 1", expired)
	}
	if r.Ticking() {
		t.Error("runtime should stop ticking after expiry")
	}
	if r.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", r.Remaining())
	}
	if r.Outcome() != OutcomeExpired {
		t.Errorf("outcome = %q, want expired", r.Outcome())
	}

	res := r.Result()
	if res.Score != FinalScore(ModeMemory, DifficultyHard, 360) {
		t.Errorf("score = %d, want %d", res.Score, FinalScore(ModeMemory, DifficultyHard, 360))
	}
	if res.DurationMins != 6 {
		t.Errorf("duration = %d mins, want 6", res.DurationMins)
	}
}

func TestRuntimeManualStop(t *testing.T) {
	r := NewRuntime(ModeBeatTheClock, DifficultyEasy)
	r.Reconcile(StatusInProgress)
	tick(t, r, 120)

	if got := r.Stop(); got != OutcomeStopped {
		t.Fatalf("Stop() = %q, want stopped", got)
	}
	if r.Ticking() {
		t.Error("runtime should not tick after manual stop")
	}
	// Further ticks are ignored.
	tick(t, r, 30)
	if r.Elapsed() != 120 {
		t.Errorf("elapsed = %d, want 120 after stop", r.Elapsed())
	}
}

func TestRuntimeStopAfterExpiryKeepsExpired(t *testing.T) {
	r := NewRuntime(ModeMemory, DifficultyHard)
	r.Reconcile(StatusInProgress)
	tick(t, r, 360)

	if got := r.Stop(); got != OutcomeExpired {
		t.Errorf("Stop() after expiry = %q, want expired", got)
	}
}

func TestRuntimeResetOnPending(t *testing.T) {
	r := NewRuntime(ModeBeatTheClock, DifficultyEasy)
	r.Reconcile(StatusInProgress)
	tick(t, r, 300)

	// Observation restarts: status reads pending again.
	r.Reconcile(StatusPending)

	if r.Elapsed() != 0 {
		t.Errorf("elapsed = %d, want 0 after pending reset", r.Elapsed())
	}
	if r.CaloriesBurned() != 0 {
		t.Errorf("calories = %d, want 0 after pending reset", r.CaloriesBurned())
	}
	if r.Remaining() != 900 {
		t.Errorf("remaining = %d, want full budget after pending reset", r.Remaining())
	}
	if r.Ticking() {
		t.Error("runtime should be idle after pending reset")
	}
}

func TestRuntimeRepeatedInProgressDoesNotRestart(t *testing.T) {
	r := NewRuntime(ModeBeatTheClock, DifficultyEasy)
	r.Reconcile(StatusInProgress)
	tick(t, r, 100)

	// The observer re-fires with the same status; counters must survive.
	r.Reconcile(StatusInProgress)

	if r.Elapsed() != 100 {
		t.Errorf("elapsed = %d, want 100 after redundant reconcile", r.Elapsed())
	}
	if !r.Ticking() {
		t.Error("runtime should still be ticking")
	}
}

func TestRuntimeStopsWhenStatusLeavesInProgress(t *testing.T) {
	r := NewRuntime(ModeBeatTheClock, DifficultyEasy)
	r.Reconcile(StatusInProgress)
	tick(t, r, 50)

	r.Reconcile(StatusCompleted)
	if r.Ticking() {
		t.Error("runtime should stop when status leaves in_progress")
	}
	tick(t, r, 10)
	if r.Elapsed() != 50 {
		t.Errorf("elapsed = %d, want 50", r.Elapsed())
	}
}
