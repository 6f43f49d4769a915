package catalog

import (
	"sync"
	"time"

	"storefront.GO/config"
)

// Debouncer delays propagation of free-text input: a value is emitted only
// after the quiet period passes with no further input. Each keystroke
// restarts the timer; intermediate values are never emitted, only the last
// stable one. Stop cancels any pending emission.
type Debouncer struct {
	mu      sync.Mutex
	quiet   time.Duration
	emit    func(string)
	timer   *time.Timer
	pending string
	stopped bool
}

// NewDebouncer creates a debouncer emitting through emit. A non-positive
// quiet period falls back to the configured default.
func NewDebouncer(quiet time.Duration, emit func(string)) *Debouncer {
	if quiet <= 0 {
		quiet = config.GetPricing().DebounceQuiet
	}
	return &Debouncer{quiet: quiet, emit: emit}
}

// Input feeds one raw text value and restarts the quiet-period timer.
func (d *Debouncer) Input(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = value
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	value := d.pending
	d.timer = nil
	d.mu.Unlock()
	d.emit(value)
}

// Stop cancels any pending emission. No value is emitted after Stop returns.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
