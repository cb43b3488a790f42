package sched

import (
	"sync"
	"time"
)

// Transient is a flag that raises immediately and clears itself after a
// fixed delay. It exists purely for visual smoothing (page transitions)
// and carries no correctness semantics.
type Transient struct {
	delay time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	active bool
	closed bool
}

func NewTransient(delay time.Duration) *Transient {
	return &Transient{delay: delay}
}

// Raise sets the flag and restarts the clear timer.
func (t *Transient) Raise() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.active = true
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.delay, t.clear)
}

func (t *Transient) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.timer = nil
	t.active = false
}

func (t *Transient) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

func (t *Transient) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.active = false
}
