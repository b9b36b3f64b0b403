package widgets

import (
	"math"
	"sync"
	"time"
	"weak"

	"github.com/go-drift/embedui/pkg/animation"
	"github.com/go-drift/embedui/pkg/graphics"
)

// InkController plays the press ripple of buttons.
type InkController interface {
	// Start makes b the ripple target, cancelling the ripple of any other
	// button. It reports whether an animation was started; d <= 0 starts
	// none.
	Start(b *Button, origin graphics.Point, d time.Duration, maxRadius graphics.Coord, bg, circle State) bool
	// Cancel stops the ripple if b is the target.
	Cancel(b *Button) bool
	// SetCircleState changes the circle style of a running ripple on b.
	SetCircleState(b *Button, s State)
	// Frame returns the ripple to draw on b, if b is the target.
	Frame(b *Button) (InkFrame, bool)
}

// InkFrame is the current ripple geometry and the states whose styles
// draw it.
type InkFrame struct {
	Origin     graphics.Point
	Radius     graphics.Coord
	Background State
	Circle     State
}

// Area returns the bounding box of the circle.
func (f InkFrame) Area() graphics.Area {
	return graphics.AreaAround(f.Origin, f.Radius)
}

// InkScheduler runs the ripple animation. *animation.Scheduler implements it.
type InkScheduler interface {
	Start(a animation.Anim)
	Cancel(target any, name string) bool
}

const inkAnimName = "widgets.ink"

// InkEffect is a ripple controller with at most one target at a time.
// The target is held weakly and cleared when its button is cleaned up.
type InkEffect struct {
	sched InkScheduler
	path  animation.Path

	target weak.Pointer[Button]
	frame  InkFrame
	closed bool
}

// InkOption configures an InkEffect.
type InkOption func(*InkEffect)

// WithInkPath sets the easing of the ripple growth. The default is
// animation.Linear.
func WithInkPath(p animation.Path) InkOption {
	return func(e *InkEffect) {
		if p != nil {
			e.path = p
		}
	}
}

// NewInkEffect creates a ripple controller driven by s.
func NewInkEffect(s InkScheduler, opts ...InkOption) *InkEffect {
	e := &InkEffect{sched: s, path: animation.Linear}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start implements InkController.
func (e *InkEffect) Start(b *Button, origin graphics.Point, d time.Duration, maxRadius graphics.Coord, bg, circle State) bool {
	if prev := e.target.Value(); prev != nil {
		e.stop()
		prev.obj.Invalidate()
	}
	if d <= 0 || e.closed {
		return false
	}

	wp := weak.Make(b)
	e.target = wp
	e.frame = InkFrame{Origin: origin, Background: bg, Circle: circle}
	e.sched.Start(animation.Anim{
		Target:   e,
		Name:     inkAnimName,
		From:     0,
		To:       float64(maxRadius),
		Duration: d,
		Path:     e.path,
		OnStep: func(v float64) {
			if e.target != wp {
				return
			}
			if b := wp.Value(); b != nil {
				e.frame.Radius = graphics.Coord(math.Round(v))
				b.obj.Invalidate()
			}
		},
		OnReady: func() {
			if e.target != wp {
				return
			}
			e.target = weak.Pointer[Button]{}
			if b := wp.Value(); b != nil {
				b.obj.Invalidate()
			}
		},
	})
	return true
}

// Cancel implements InkController.
func (e *InkEffect) Cancel(b *Button) bool {
	if b == nil || e.target.Value() != b {
		return false
	}
	e.stop()
	return true
}

// SetCircleState implements InkController.
func (e *InkEffect) SetCircleState(b *Button, s State) {
	if s >= NumStates || e.target.Value() != b {
		return
	}
	e.frame.Circle = s
}

// Frame implements InkController.
func (e *InkEffect) Frame(b *Button) (InkFrame, bool) {
	if b == nil || e.target.Value() != b {
		return InkFrame{}, false
	}
	return e.frame, true
}

// Target returns the button currently rippling, or nil.
func (e *InkEffect) Target() *Button {
	return e.target.Value()
}

// Close cancels the running ripple and makes every later Start a no-op.
func (e *InkEffect) Close() {
	if b := e.target.Value(); b != nil {
		e.stop()
		b.obj.Invalidate()
	}
	e.closed = true
}

func (e *InkEffect) stop() {
	e.sched.Cancel(e, inkAnimName)
	e.target = weak.Pointer[Button]{}
}

var (
	defaultInkMu sync.Mutex
	defaultInk   *InkEffect
)

// DefaultInk returns the process-wide ripple controller, creating it on the
// default animation scheduler on first use.
func DefaultInk() *InkEffect {
	defaultInkMu.Lock()
	defer defaultInkMu.Unlock()
	if defaultInk == nil {
		defaultInk = NewInkEffect(animation.DefaultScheduler())
	}
	return defaultInk
}

// ShutdownInk closes the process-wide ripple controller. The next
// DefaultInk call creates a fresh one.
func ShutdownInk() {
	defaultInkMu.Lock()
	defer defaultInkMu.Unlock()
	if defaultInk != nil {
		defaultInk.Close()
		defaultInk = nil
	}
}
