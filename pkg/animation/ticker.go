package animation

import "time"

// Ticker calls a callback on each scheduler step while active.
//
// Ticker is the low-level timing primitive used by [Controller]. The
// callback receives the time elapsed since Start was called, measured on
// the owning scheduler's clock.
type Ticker struct {
	owner    *Scheduler
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// TickerProvider creates tickers.
type TickerProvider interface {
	CreateTicker(callback func(time.Duration)) *Ticker
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.owner.clock.Now()
	t.owner.addTicker(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.owner.removeTicker(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.owner.clock.Now().Sub(t.start)
}
