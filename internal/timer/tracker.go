// Package timer implements the per-item time budget clock.
//
// A Tracker owns its tick source: Start launches a one-second tick loop,
// and every exit path (Stop, Reset, a subsequent Start) cancels it. Two
// thresholds are evaluated against the same elapsed counter: the overtime
// flag (elapsed past the budget, re-evaluated every tick) and the one-shot
// auto-submit event at twice the budget.
package timer

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Snapshot is a point-in-time view of the tracker's counters.
type Snapshot struct {
	ExpectedSeconds int
	ElapsedSeconds  int

	// Overtime is true once elapsed exceeds the budget. Display flag only;
	// it does not stop the clock.
	Overtime bool
}

// RemainingSeconds returns the seconds left in the budget, floored at zero.
func (s Snapshot) RemainingSeconds() int {
	r := s.ExpectedSeconds - s.ElapsedSeconds
	if r < 0 {
		return 0
	}
	return r
}

// Progress returns budget consumption as a percentage, capped at 100.
func (s Snapshot) Progress() float64 {
	if s.ExpectedSeconds <= 0 {
		return 0
	}
	p := float64(s.ElapsedSeconds) / float64(s.ExpectedSeconds) * 100
	if p > 100 {
		return 100
	}
	return p
}

// Callbacks are invoked from the tick loop. Both are optional. A panic in
// either callback is recovered so a misbehaving consumer cannot kill the
// clock.
type Callbacks struct {
	// OnTick fires once per second with the updated snapshot.
	OnTick func(Snapshot)

	// OnAutoSubmit fires at most once per Start, on the first tick where
	// elapsed reaches twice the budget. The tracker keeps ticking; acting
	// on the event (force-submitting) is the consumer's job.
	OnAutoSubmit func()
}

// Tracker counts elapsed seconds against an expected budget.
// All methods are safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	cb        Callbacks
	expected  int
	elapsed   int
	running   bool
	autoFired bool
	cancel    chan struct{}
}

// New creates a stopped Tracker with the given callbacks.
func New(cb Callbacks) *Tracker {
	return &Tracker{cb: cb}
}

// Start resets elapsed to zero and begins a one-second tick loop for the
// given budget. Any previous loop is cancelled first, so starting over an
// already-running tracker cannot leave two counters driving the same value.
// A non-positive budget is a caller error.
func (t *Tracker) Start(expectedSeconds int) error {
	if err := t.prime(expectedSeconds); err != nil {
		return err
	}

	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()

	go t.loop(cancel)
	return nil
}

// prime performs everything Start does except launching the tick loop.
func (t *Tracker) prime(expectedSeconds int) error {
	if expectedSeconds <= 0 {
		return fmt.Errorf("time budget must be positive, got %d", expectedSeconds)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.haltLocked()
	t.expected = expectedSeconds
	t.elapsed = 0
	t.autoFired = false
	t.running = true
	t.cancel = make(chan struct{})
	return nil
}

func (t *Tracker) loop(cancel chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			t.step()
		}
	}
}

// step advances the clock by one second and fires threshold callbacks.
func (t *Tracker) step() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.elapsed++
	snap := t.snapshotLocked()
	fireAuto := !t.autoFired && t.elapsed >= 2*t.expected
	if fireAuto {
		t.autoFired = true
	}
	cb := t.cb
	t.mu.Unlock()

	if cb.OnTick != nil {
		safeCall(func() { cb.OnTick(snap) })
	}
	if fireAuto && cb.OnAutoSubmit != nil {
		safeCall(cb.OnAutoSubmit)
	}
}

// Stop halts the clock and returns the final snapshot.
// Safe to call when already stopped.
func (t *Tracker) Stop() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := t.snapshotLocked()
	t.haltLocked()
	return snap
}

// Reset halts the clock and zeroes all counters.
// Safe to call when already stopped.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.haltLocked()
	t.expected = 0
	t.elapsed = 0
	t.autoFired = false
}

// haltLocked cancels the tick loop. Caller must hold t.mu.
func (t *Tracker) haltLocked() {
	if t.cancel != nil {
		close(t.cancel)
		t.cancel = nil
	}
	t.running = false
}

func (t *Tracker) snapshotLocked() Snapshot {
	return Snapshot{
		ExpectedSeconds: t.expected,
		ElapsedSeconds:  t.elapsed,
		Overtime:        t.elapsed > t.expected,
	}
}

// Running reports whether the tick loop is active.
func (t *Tracker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Snapshot returns the current counters without stopping the clock.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "warning: timer callback panicked: %v\n", r)
		}
	}()
	fn()
}

// FormatClock renders whole seconds as m:ss with zero-padded seconds.
// Negative values render as 0:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
