// Package animation provides the time-stepped animation scheduler used by
// widgets.
//
// # Components
//
//   - [Scheduler]: owns the active [Ticker]s and runs named animations. It is
//     stepped once per frame from the UI loop and never blocks.
//   - [Controller]: drives eased progress from 0 to 1 over a duration.
//   - [Path]: easing functions such as [Linear], [EaseOut] and [Overshoot].
//   - [Clock]: the time source; tests inject a fake one.
//
// # Usage
//
//	s := animation.NewScheduler(animation.SystemClock)
//	s.Start(animation.Anim{
//	    Target:   obj,
//	    Name:     "fade",
//	    From:     0,
//	    To:       255,
//	    Duration: 300 * time.Millisecond,
//	    Path:     animation.EaseOut,
//	    OnStep:   func(v float64) { obj.SetOpa(v) },
//	})
//
//	// once per frame
//	s.Step()
//
// An animation is identified by its Target and Name. Starting an animation
// with the same identity replaces the running one, and Cancel stops it
// without calling OnReady.
package animation

import (
	"sync"
	"time"
)

// Anim describes a value animation.
type Anim struct {
	// Target identifies the animated object. It must be comparable,
	// typically a pointer.
	Target any
	// Name distinguishes several animations on the same target.
	Name string
	// From and To are the start and end values.
	From, To float64
	// Duration is the length of the animation.
	Duration time.Duration
	// Path eases the progress. Nil means [Linear].
	Path Path
	// OnStep receives the current value. It is called once with From when the
	// animation starts and then on every step.
	OnStep func(value float64)
	// OnReady is called after the final step. It is not called on Cancel.
	OnReady func()
}

type animKey struct {
	target any
	name   string
}

type running struct {
	anim       Anim
	controller *Controller
}

// Scheduler runs animations against a clock. It is not safe for use by
// multiple goroutines except for the ticker registry, which is guarded so
// that Step may snapshot it while callbacks register new tickers.
type Scheduler struct {
	clock Clock

	tickerMu sync.Mutex
	tickers  []*Ticker

	anims map[animKey]*running
}

// NewScheduler creates a scheduler reading time from clock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock
	}
	return &Scheduler{
		clock: clock,
		anims: make(map[animKey]*running),
	}
}

var (
	defaultOnce      sync.Once
	defaultScheduler *Scheduler
)

// DefaultScheduler returns the process-wide scheduler on the system clock.
func DefaultScheduler() *Scheduler {
	defaultOnce.Do(func() {
		defaultScheduler = NewScheduler(SystemClock)
	})
	return defaultScheduler
}

// Clock returns the scheduler's time source.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// CreateTicker implements [TickerProvider].
func (s *Scheduler) CreateTicker(callback func(time.Duration)) *Ticker {
	return &Ticker{owner: s, callback: callback}
}

func (s *Scheduler) addTicker(t *Ticker) {
	s.tickerMu.Lock()
	s.tickers = append(s.tickers, t)
	s.tickerMu.Unlock()
}

func (s *Scheduler) removeTicker(t *Ticker) {
	s.tickerMu.Lock()
	defer s.tickerMu.Unlock()
	for i, cur := range s.tickers {
		if cur == t {
			s.tickers = append(s.tickers[:i], s.tickers[i+1:]...)
			return
		}
	}
}

// Start runs a, replacing any running animation with the same Target and Name.
func (s *Scheduler) Start(a Anim) {
	key := animKey{target: a.Target, name: a.Name}
	s.cancel(key)

	c := NewController(s, a.Duration)
	if a.Path != nil {
		c.Path = a.Path
	}
	r := &running{anim: a, controller: c}
	s.anims[key] = r

	c.AddListener(func() {
		if a.OnStep != nil {
			a.OnStep(a.From + (a.To-a.From)*c.Value)
		}
	})
	c.AddStatusListener(func(status Status) {
		if status != StatusCompleted {
			return
		}
		if s.anims[key] == r {
			delete(s.anims, key)
		}
		c.Dispose()
		if a.OnReady != nil {
			a.OnReady()
		}
	})

	if a.OnStep != nil {
		a.OnStep(a.From)
	}
	c.Forward()
}

// Cancel stops the animation identified by target and name.
// It reports whether such an animation was running.
func (s *Scheduler) Cancel(target any, name string) bool {
	return s.cancel(animKey{target: target, name: name})
}

func (s *Scheduler) cancel(key animKey) bool {
	r, ok := s.anims[key]
	if !ok {
		return false
	}
	delete(s.anims, key)
	r.controller.Dispose()
	return true
}

// Running reports whether the animation identified by target and name is active.
func (s *Scheduler) Running(target any, name string) bool {
	_, ok := s.anims[animKey{target: target, name: name}]
	return ok
}

// Len returns the number of running animations.
func (s *Scheduler) Len() int {
	return len(s.anims)
}

// Step advances every active ticker to the current clock time.
// Call it once per frame from the UI loop.
func (s *Scheduler) Step() {
	s.tickerMu.Lock()
	if len(s.tickers) == 0 {
		s.tickerMu.Unlock()
		return
	}
	tickers := make([]*Ticker, len(s.tickers))
	copy(tickers, s.tickers)
	s.tickerMu.Unlock()

	now := s.clock.Now()
	for _, t := range tickers {
		if t.isActive && t.callback != nil {
			t.callback(now.Sub(t.start))
		}
	}
}

// HasActiveTickers returns true if any ticker is active.
func (s *Scheduler) HasActiveTickers() bool {
	s.tickerMu.Lock()
	defer s.tickerMu.Unlock()
	return len(s.tickers) > 0
}
