// Package indev turns raw pointer samples into object signals.
//
// A [Pointer] is read once per loop iteration with the current pointer
// position and button state. It hit-tests the display on press, follows the
// pressed object while the pointer moves, detects drags and long presses,
// and delivers the matching [object.Signal] with the device itself as the
// signal parameter.
package indev

import (
	"time"

	"github.com/go-drift/embedui/pkg/animation"
	"github.com/go-drift/embedui/pkg/config"
	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/object"
)

// active is the device currently processing a sample.
var active *Pointer

// Active returns the device whose sample is being processed, or nil outside
// of Read.
func Active() *Pointer {
	return active
}

// Pointer is a mouse or touch input device.
type Pointer struct {
	disp  *object.Display
	clock animation.Clock
	cfg   config.Input

	point   graphics.Point
	last    graphics.Point
	pressed bool

	act           *object.Object
	pressTime     time.Time
	repeatTime    time.Time
	longPressSent bool
	dragSum       graphics.Point
	dragging      bool
}

// New creates a pointer device on disp. Zero fields of cfg take the values
// of config.DefaultInput.
func New(disp *object.Display, clock animation.Clock, cfg config.Input) *Pointer {
	def := config.DefaultInput()
	if cfg.DragLimit == 0 {
		cfg.DragLimit = def.DragLimit
	}
	if cfg.LongPress == 0 {
		cfg.LongPress = def.LongPress
	}
	if cfg.LongPressRepeat == 0 {
		cfg.LongPressRepeat = def.LongPressRepeat
	}
	p := &Pointer{disp: disp, clock: clock, cfg: cfg}
	disp.OnDelete(p.forget)
	return p
}

// Point returns the last sampled pointer position.
func (p *Pointer) Point() graphics.Point {
	return p.point
}

// Dragging reports whether the current press has turned into a drag.
func (p *Pointer) Dragging() bool {
	return p.dragging
}

// Pressed reports whether the pointer is down.
func (p *Pointer) Pressed() bool {
	return p.pressed
}

// Target returns the object being pressed, or nil.
func (p *Pointer) Target() *object.Object {
	return p.act
}

// Read processes one sample.
func (p *Pointer) Read(point graphics.Point, pressed bool) {
	prev := active
	active = p
	defer func() { active = prev }()

	p.last = p.point
	p.point = point
	wasPressed := p.pressed
	p.pressed = pressed

	switch {
	case pressed:
		if !wasPressed {
			p.last = point
			p.dragSum = graphics.Point{}
			p.dragging = false
		}
		p.processPress()
	case wasPressed:
		p.processRelease()
	}
}

func (p *Pointer) processPress() {
	p.trackDrag()

	// A drag stays on the object it started on.
	if !p.dragging {
		hit := p.disp.HitTest(p.point)
		if hit != p.act {
			if p.act != nil {
				if p.act.Signal(object.SignalPressLost, p) == object.ResInvalid {
					p.act = nil
				}
			}
			p.act = hit
			if hit != nil {
				p.pressTime = p.clock.Now()
				p.longPressSent = false
				if hit.Signal(object.SignalPressed, p) == object.ResInvalid {
					p.act = nil
				}
			}
		}
	}
	if p.act == nil {
		return
	}

	if p.act.Signal(object.SignalPressing, p) == object.ResInvalid {
		p.act = nil
		return
	}
	if p.dragging {
		return
	}

	now := p.clock.Now()
	if !p.longPressSent {
		if now.Sub(p.pressTime) >= p.cfg.LongPress {
			p.longPressSent = true
			p.repeatTime = now
			if p.act.Signal(object.SignalLongPress, p) == object.ResInvalid {
				p.act = nil
			}
		}
		return
	}
	if now.Sub(p.repeatTime) >= p.cfg.LongPressRepeat {
		p.repeatTime = now
		if p.act.Signal(object.SignalLongPressRepeat, p) == object.ResInvalid {
			p.act = nil
		}
	}
}

func (p *Pointer) trackDrag() {
	if p.act == nil || p.dragging {
		return
	}
	p.dragSum = p.dragSum.Add(p.point.Sub(p.last))
	limit := graphics.Coord(p.cfg.DragLimit)
	if abs(p.dragSum.X) >= limit || abs(p.dragSum.Y) >= limit {
		p.dragging = true
	}
}

func (p *Pointer) processRelease() {
	if p.act != nil {
		act := p.act
		p.act = nil
		act.Signal(object.SignalReleased, p)
	}
	p.dragging = false
	p.dragSum = graphics.Point{}
}

func (p *Pointer) forget(obj *object.Object) {
	if p.act == obj {
		p.act = nil
	}
}

func abs(v graphics.Coord) graphics.Coord {
	if v < 0 {
		return -v
	}
	return v
}
