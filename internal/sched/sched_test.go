package sched

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) commit(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncerLastWriteWins(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(30*time.Millisecond, 10*time.Millisecond, rec.commit)
	defer d.Close()

	// Three rapid triggers: only the last survives the quiescence window.
	d.Trigger("m")
	d.Trigger("mu")
	d.Trigger("muc")

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"muc"}, rec.snapshot())
}

func TestDebouncerBusyClearsAfterSettle(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, 10*time.Millisecond, rec.commit)
	defer d.Close()

	d.Trigger("x")
	assert.True(t, d.Busy())

	require.Eventually(t, func() bool { return !d.Busy() }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"x"}, rec.snapshot())
}

func TestDebouncerCloseCancelsPendingWork(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(30*time.Millisecond, 10*time.Millisecond, rec.commit)

	d.Trigger("doomed")
	d.Close()

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.snapshot(), "a closed debouncer must not fire")
	assert.False(t, d.Busy())

	// triggers after close are ignored
	d.Trigger("ignored")
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestDebouncerCancelKeepsItUsable(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, 5*time.Millisecond, rec.commit)
	defer d.Close()

	d.Trigger("dropped")
	d.Cancel()
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	d.Trigger("kept")
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"kept"}, rec.snapshot())
}

func TestTransientRaisesThenClears(t *testing.T) {
	tr := NewTransient(20 * time.Millisecond)
	defer tr.Close()

	assert.False(t, tr.Active())
	tr.Raise()
	assert.True(t, tr.Active())

	require.Eventually(t, func() bool { return !tr.Active() }, time.Second, 5*time.Millisecond)
}

func TestTransientCloseStopsTimer(t *testing.T) {
	tr := NewTransient(10 * time.Millisecond)
	tr.Raise()
	tr.Close()
	assert.False(t, tr.Active())

	tr.Raise() // closed: no effect
	assert.False(t, tr.Active())
}
