package store

import (
	"context"
	"time"
)

// DefaultWatchInterval is how often a Watcher re-reads its session.
const DefaultWatchInterval = 250 * time.Millisecond

// Watcher turns the pending-session table into a subscription: callers
// get a snapshot stream that fires whenever the observed session's
// status changes, standing in for the push updates a hosted real-time
// database would deliver.
type Watcher struct {
	pending  PendingRepo
	interval time.Duration
}

// NewWatcher creates a Watcher over pending. A non-positive interval
// falls back to DefaultWatchInterval.
func NewWatcher(pending PendingRepo, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &Watcher{pending: pending, interval: interval}
}

// Watch emits the current snapshot of sessionID immediately, then a new
// snapshot each time the session's status changes. The channel closes
// when ctx is canceled, when the session reaches a terminal status, or
// when a read fails. A session that doesn't exist yet is waited for.
func (w *Watcher) Watch(ctx context.Context, sessionID string) <-chan *PendingSession {
	ch := make(chan *PendingSession, 1)

	go func() {
		defer close(ch)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		var lastStatus string
		seen := false

		for {
			ps, err := w.pending.Get(ctx, sessionID)
			if err != nil {
				return
			}
			if ps != nil {
				if !seen || string(ps.Status) != lastStatus {
					seen = true
					lastStatus = string(ps.Status)
					select {
					case ch <- ps:
					case <-ctx.Done():
						return
					}
					if !ps.Status.Active() {
						return
					}
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}
