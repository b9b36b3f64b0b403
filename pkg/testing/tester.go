package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/embedui/pkg/animation"
	"github.com/go-drift/embedui/pkg/config"
	"github.com/go-drift/embedui/pkg/draw"
	"github.com/go-drift/embedui/pkg/focus"
	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/indev"
	"github.com/go-drift/embedui/pkg/object"
	"github.com/go-drift/embedui/pkg/widgets"
)

const (
	// DefaultTestWidth is the default display width.
	DefaultTestWidth = 240
	// DefaultTestHeight is the default display height.
	DefaultTestHeight = 160
	// FrameDuration is the time Advance moves per frame.
	FrameDuration = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not finish")

// Tester wires a display, a pointer device, a focus group and a private
// ripple controller to a fake clock.
type Tester struct {
	disp     *object.Display
	clock    *FakeClock
	sched    *animation.Scheduler
	pointer  *indev.Pointer
	group    *focus.Group
	ink      *widgets.InkEffect
	recorder *draw.Recorder

	point   graphics.Point
	pressed bool
}

// NewTester creates a tester with the given input settings. Zero fields
// take the defaults. Call Cleanup when done, or use NewTesterWithT.
func NewTester(input config.Input) *Tester {
	clk := NewFakeClock()
	sched := animation.NewScheduler(clk)
	disp := object.NewDisplay(DefaultTestWidth, DefaultTestHeight)
	return &Tester{
		disp:     disp,
		clock:    clk,
		sched:    sched,
		pointer:  indev.New(disp, clk, input),
		group:    focus.NewGroup(),
		ink:      widgets.NewInkEffect(sched),
		recorder: &draw.Recorder{},
	}
}

// NewTesterWithT creates a tester with default input settings that cleans
// up via t.Cleanup.
func NewTesterWithT(t testing.TB) *Tester {
	tester := NewTester(config.Input{})
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup stops the tester's ripple controller.
func (t *Tester) Cleanup() {
	t.ink.Close()
}

// Display returns the display.
func (t *Tester) Display() *object.Display { return t.disp }

// Screen returns the display's root object.
func (t *Tester) Screen() *object.Object { return t.disp.Screen() }

// Clock returns the fake clock.
func (t *Tester) Clock() *FakeClock { return t.clock }

// Scheduler returns the animation scheduler.
func (t *Tester) Scheduler() *animation.Scheduler { return t.sched }

// Pointer returns the pointer device.
func (t *Tester) Pointer() *indev.Pointer { return t.pointer }

// Group returns the focus group.
func (t *Tester) Group() *focus.Group { return t.group }

// Ink returns the ripple controller shared by buttons created with Button.
func (t *Tester) Ink() *widgets.InkEffect { return t.ink }

// Button creates a button on the screen using the tester's ripple
// controller and adds it to the focus group.
func (t *Tester) Button(opts ...widgets.ButtonOption) *widgets.Button {
	opts = append([]widgets.ButtonOption{widgets.WithInk(t.ink)}, opts...)
	b := widgets.NewButton(t.disp.Screen(), nil, opts...)
	t.group.Add(b.Object())
	return b
}

// Press puts the pointer down at p.
func (t *Tester) Press(p graphics.Point) {
	t.point = p
	t.pressed = true
	t.pointer.Read(p, true)
}

// PressObject puts the pointer down at the center of obj.
func (t *Tester) PressObject(obj *object.Object) {
	t.Press(obj.Coords().Center())
}

// MoveTo moves the pointer to p, keeping its button state.
func (t *Tester) MoveTo(p graphics.Point) {
	t.point = p
	t.pointer.Read(p, t.pressed)
}

// Release lifts the pointer where it is.
func (t *Tester) Release() {
	t.pressed = false
	t.pointer.Read(t.point, false)
}

// Tap presses and releases at p.
func (t *Tester) Tap(p graphics.Point) {
	t.Press(p)
	t.Release()
}

// TapObject presses and releases at the center of obj.
func (t *Tester) TapObject(obj *object.Object) {
	t.Tap(obj.Coords().Center())
}

// Key sends key to the focus group.
func (t *Tester) Key(key focus.Key) object.Result {
	return t.group.SendKey(key)
}

// Pump runs one frame without moving time: a held pointer is read again
// and animations are stepped.
func (t *Tester) Pump() {
	if t.pressed {
		t.pointer.Read(t.point, true)
	}
	t.sched.Step()
}

// Advance moves time forward by d in frames of FrameDuration, pumping after
// each frame.
func (t *Tester) Advance(d time.Duration) {
	for d > 0 {
		step := min(d, FrameDuration)
		t.clock.Advance(step)
		t.Pump()
		d -= step
	}
}

// PumpAndSettle advances frames until no animation is running or timeout
// elapses.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.sched.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// Refresh redraws every invalid area and returns the recorded operations.
func (t *Tester) Refresh() []draw.RectOp {
	t.recorder.Reset()
	t.disp.Refresh(t.recorder)
	return t.recorder.Ops
}

// Draw runs the main and post design phases of obj alone and returns the
// recorded operations.
func (t *Tester) Draw(obj *object.Object) []draw.RectOp {
	rec := &draw.Recorder{}
	h := obj.Handler()
	h.Design(obj, rec, obj.Coords(), object.DesignDrawMain)
	h.Design(obj, rec, obj.Coords(), object.DesignDrawPost)
	return rec.Ops
}
