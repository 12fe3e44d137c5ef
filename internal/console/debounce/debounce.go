// Package debounce buffers a stream of input values and delivers only the
// latest one after a quiet period. Superseded values are discarded, never
// queued.
package debounce

import (
	"sync"
	"time"
)

// Debouncer restarts a single timer on every Set call.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func(string)
	timer *time.Timer
}

// New creates a Debouncer that invokes fn with the latest value once input
// has been quiet for delay.
func New(delay time.Duration, fn func(string)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Set records a new value, discarding any pending one.
func (d *Debouncer) Set(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fn(value) })
}

// Flush delivers the pending value immediately, if any. Used for blur-style
// triggers that should not wait out the quiet period.
func (d *Debouncer) Flush(value string) {
	d.Stop()
	d.fn(value)
}

// Stop cancels any pending delivery.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
