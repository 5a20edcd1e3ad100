package searchsync

import (
	"sync"
	"time"
)

// DefaultDebounceInterval bounds backend read load under fast typing: the
// callback fires at most once per interval of input inactivity.
const DefaultDebounceInterval = 300 * time.Millisecond

// Debouncer invokes its callback with the latest term once no new term has
// arrived for the configured interval. It runs a single logical timeline: a
// new term restarts the window and supersedes any pending invocation, so
// rapid sequential terms produce exactly one callback carrying the final term.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func(term string)
	timer    *time.Timer
	gen      uint64
	stopped  bool
}

// NewDebouncer creates a debouncer that calls fn after interval of inactivity.
// A non-positive interval falls back to DefaultDebounceInterval.
func NewDebouncer(interval time.Duration, fn func(term string)) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	return &Debouncer{interval: interval, fn: fn}
}

// Trigger records a new term and restarts the quiet-period window.
func (d *Debouncer) Trigger(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		// A timer that was superseded while already in flight must not fire.
		if d.stopped || gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.mu.Unlock()
		d.fn(term)
	})
}

// Stop cancels any pending invocation. It is used on teardown so a stray
// late-firing callback can never observe a dismantled consumer. Stop is
// idempotent and the debouncer must not be reused afterwards.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
