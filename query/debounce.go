package query

import (
	"sync"
	"time"
)

// DefaultDebounce is the settle window applied when a Debouncer is
// created with a non-positive duration.
const DefaultDebounce = 350 * time.Millisecond

// Debouncer coalesces a burst of calls into one: each Call resets the
// pending timer, so only the last function of a burst runs, after the
// window elapses with no further calls.
type Debouncer struct {
	mu    sync.Mutex
	d     time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given settle window.
func NewDebouncer(d time.Duration) *Debouncer {
	if d <= 0 {
		d = DefaultDebounce
	}
	return &Debouncer{d: d}
}

// Call schedules fn to run after the settle window, cancelling any
// previously scheduled function. fn runs on a timer goroutine.
func (b *Debouncer) Call(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, fn)
}

// Stop cancels any pending call.
func (b *Debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
