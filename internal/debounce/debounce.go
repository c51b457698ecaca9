// Package debounce coalesces rapid repeated triggers into one deferred
// call after a quiet period.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet window used when no delay is given.
const DefaultDelay = 300 * time.Millisecond

// Debouncer holds at most one pending call. Each Trigger cancels the
// pending call, if any, and schedules a new one; this is cancel-and-
// reschedule, not a queue.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

// New creates a Debouncer with the given quiet window. A non-positive
// delay falls back to DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the quiet window, replacing any
// previously scheduled call. fn runs on its own goroutine.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
