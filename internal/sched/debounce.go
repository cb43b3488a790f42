// Package sched holds the small cancelable timers behind the UI: search
// debouncing and the page-transition flag. Every pending timer has an
// explicit handle and Close cancels it, so teardown never fires a callback
// into a dead view.
package sched

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers. A trigger restarts the quiescence
// window (last write wins, nothing is queued); when the window elapses the
// committed value is delivered, and after a short settle delay the busy
// flag clears.
type Debouncer struct {
	quiesce time.Duration
	settle  time.Duration
	commit  func(value string)

	mu       sync.Mutex
	pending  *time.Timer
	settling *time.Timer
	busy     bool
	closed   bool
}

func NewDebouncer(quiesce, settle time.Duration, commit func(value string)) *Debouncer {
	return &Debouncer{quiesce: quiesce, settle: settle, commit: commit}
}

// Trigger schedules value for commit, canceling any not-yet-committed
// predecessor.
func (d *Debouncer) Trigger(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	d.busy = true
	if d.pending != nil {
		d.pending.Stop()
	}
	d.pending = time.AfterFunc(d.quiesce, func() { d.fire(value) })
}

func (d *Debouncer) fire(value string) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	if d.settling != nil {
		d.settling.Stop()
	}
	d.settling = time.AfterFunc(d.settle, d.settled)
	d.mu.Unlock()

	// Commit outside the lock; the callback re-enters the view.
	d.commit(value)
}

func (d *Debouncer) settled() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.settling = nil
	d.busy = false
}

// Busy reports whether a commit or its settle delay is outstanding.
func (d *Debouncer) Busy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.busy
}

// Cancel drops any pending commit and clears busy without closing the
// debouncer; later triggers work normally.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	if d.settling != nil {
		d.settling.Stop()
		d.settling = nil
	}
	d.busy = false
}

// Close cancels all pending work. A closed debouncer ignores triggers.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	if d.settling != nil {
		d.settling.Stop()
		d.settling = nil
	}
	d.busy = false
}
