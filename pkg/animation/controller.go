package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of a controller.
//
//	           Forward()
//	Dismissed ──────────► Forward ──────────► Completed
//	    ▲                    │ Stop()
//	    └────────────────────┘ Reset()
type Status int

const (
	// StatusDismissed means the controller is stopped at progress 0.
	StatusDismissed Status = iota
	// StatusForward means the controller is playing toward progress 1.
	StatusForward
	// StatusStopped means the controller was stopped part way.
	StatusStopped
	// StatusCompleted means the controller reached progress 1.
	StatusCompleted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusStopped:
		return "stopped"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller drives a progress value from 0 to 1 over Duration.
//
// The Path transforms linear time progress into eased progress. Listeners
// are called on every tick; status listeners when the status changes.
// Always call Dispose when done.
type Controller struct {
	// Value is the current eased progress.
	Value float64

	// Duration is the length of the animation. Zero or negative completes on
	// the first tick.
	Duration time.Duration

	// Path transforms linear progress. Nil means [Linear].
	Path Path

	provider        TickerProvider
	status          Status
	ticker          *Ticker
	listeners       map[int]func()
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewController creates a controller whose ticker comes from provider.
func NewController(provider TickerProvider, duration time.Duration) *Controller {
	return &Controller{
		Duration:        duration,
		Path:            Linear,
		provider:        provider,
		status:          StatusDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(Status)),
	}
}

// Forward plays the controller from 0 to 1.
func (c *Controller) Forward() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	c.Value = 0
	c.setStatus(StatusForward)
	c.ticker = c.provider.CreateTicker(c.tick)
	c.ticker.Start()
}

func (c *Controller) tick(elapsed time.Duration) {
	progress := 1.0
	if c.Duration > 0 {
		progress = min(float64(elapsed)/float64(c.Duration), 1)
	}

	eased := progress
	if c.Path != nil {
		eased = c.Path(progress)
	}
	c.Value = eased
	c.notifyListeners()

	if progress >= 1 && c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
		c.setStatus(StatusCompleted)
	}
}

// Stop halts the controller at its current value.
func (c *Controller) Stop() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	c.ticker = nil
	c.setStatus(StatusStopped)
}

// Reset stops the controller and returns it to progress 0.
func (c *Controller) Reset() {
	c.Stop()
	c.Value = 0
	c.setStatus(StatusDismissed)
}

// Status returns the current status.
func (c *Controller) Status() Status {
	return c.status
}

// IsAnimating returns true while the controller is playing.
func (c *Controller) IsAnimating() bool {
	return c.status == StatusForward
}

// AddListener adds a callback that fires on every tick.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and drops its listeners without notifying them.
func (c *Controller) Dispose() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.listeners = nil
	c.statusListeners = nil
}
