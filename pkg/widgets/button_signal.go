package widgets

import (
	"fmt"

	"github.com/go-drift/embedui/pkg/errors"
	"github.com/go-drift/embedui/pkg/focus"
	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/indev"
	"github.com/go-drift/embedui/pkg/object"
)

// Pointer is the input device passed as param of pointer signals.
type Pointer interface {
	Point() graphics.Point
	Dragging() bool
}

// errReentrant is reported when a signal reaches a button from inside one
// of its own actions.
var errReentrant = fmt.Errorf("signal delivered while an action of the same button is running")

// Signal implements object.Handler.
func (b *Button) Signal(obj *object.Object, sig object.Signal, param any) object.Result {
	if b.dispatching && sig.IsInput() {
		errors.Report(&errors.UIError{
			Op:     "widgets.Button.Signal",
			Kind:   errors.KindSignal,
			Err:    fmt.Errorf("%s: %w", sig, errReentrant),
			Object: obj.ID().String(),
		})
		return object.ResOK
	}

	if res := b.base.Signal(obj, sig, param); res != object.ResOK {
		return res
	}

	// Actions are gated on the state the signal found the button in.
	state := b.state

	switch sig {
	case object.SignalPressed:
		return b.pressed(state, param)

	case object.SignalPressLost:
		b.releasePressed()

	case object.SignalPressing:
		if isDragging(param) {
			b.releasePressed()
		}

	case object.SignalReleased:
		return b.released(state, param)

	case object.SignalLongPress:
		if b.actions[ActionLongPress] != nil && state != StateInactive {
			b.longPressFired = true
			return b.fire(ActionLongPress)
		}

	case object.SignalLongPressRepeat:
		if b.actions[ActionLongPressRepeat] != nil && state != StateInactive {
			return b.fire(ActionLongPressRepeat)
		}

	case object.SignalControl:
		if key, ok := keyOf(param); ok {
			return b.control(state, key)
		}

	case object.SignalCleanup:
		b.ink.Cancel(b)

	case object.SignalGetType:
		if info, ok := param.(*object.TypeInfo); ok {
			info.Types = append(info.Types, "button")
		}
	}
	return object.ResOK
}

func (b *Button) pressed(state State, param any) object.Result {
	bg, circle := b.state, b.state
	switch b.state {
	case StateReleased:
		b.SetState(StatePressed)
		bg, circle = StateReleased, StatePressed
	case StateToggledReleased:
		b.SetState(StateToggledPressed)
		bg, circle = StateToggledReleased, StateToggledPressed
	}
	b.longPressFired = false

	c := b.obj.Coords()
	b.ink.Start(b, pointOf(param, c), b.inkTime, max(c.Width(), c.Height()), bg, circle)

	if b.actions[ActionPress] != nil && state != StateInactive {
		return b.fire(ActionPress)
	}
	return object.ResOK
}

func (b *Button) released(state State, param any) object.Result {
	res := object.ResOK
	if !isDragging(param) && !b.longPressFired {
		switch {
		case b.state == StatePressed && !b.toggle:
			b.SetState(StateReleased)
		case b.state == StateToggledPressed && !b.toggle:
			b.SetState(StateToggledReleased)
		case b.state == StatePressed && b.toggle:
			b.SetState(StateToggledReleased)
		case b.state == StateToggledPressed && b.toggle:
			b.SetState(StateReleased)
		}
		if b.toggle {
			b.ink.SetCircleState(b, b.state)
		}
		if b.actions[ActionClick] != nil && state != StateInactive {
			res = b.fire(ActionClick)
		}
		return res
	}

	b.releasePressed()
	if b.toggle {
		b.ink.SetCircleState(b, b.state)
	}
	return res
}

func (b *Button) control(state State, key focus.Key) object.Result {
	switch key {
	case focus.KeyRight, focus.KeyUp:
		if b.toggle {
			b.SetState(StateToggledReleased)
		}
		// Directional keys gate Click on the state after the transition.
		if b.actions[ActionClick] != nil && b.state != StateInactive {
			return b.fire(ActionClick)
		}

	case focus.KeyLeft, focus.KeyDown:
		if b.toggle {
			b.SetState(StateReleased)
		}
		if b.actions[ActionClick] != nil && b.state != StateInactive {
			return b.fire(ActionClick)
		}

	case focus.KeyEnter:
		fired := b.longPressFired
		b.longPressFired = false
		if fired {
			return object.ResOK
		}
		if b.toggle {
			switch state {
			case StateReleased:
				b.SetState(StateToggledReleased)
			case StatePressed:
				b.SetState(StateToggledPressed)
			case StateToggledReleased:
				b.SetState(StateReleased)
			case StateToggledPressed:
				b.SetState(StatePressed)
			}
		}
		if b.actions[ActionClick] != nil && state != StateInactive {
			return b.fire(ActionClick)
		}
	}
	return object.ResOK
}

// releasePressed reverts a pressed state to its released variant.
func (b *Button) releasePressed() {
	switch b.state {
	case StatePressed:
		b.SetState(StateReleased)
	case StateToggledPressed:
		b.SetState(StateToggledReleased)
	}
}

// fire runs the action of kind. Signals reaching the button meanwhile are
// dropped.
func (b *Button) fire(kind ActionKind) object.Result {
	b.dispatching = true
	defer func() { b.dispatching = false }()
	if res := b.actions[kind](b); res != object.ResOK {
		return res
	}
	if b.obj.Deleted() {
		return object.ResInvalid
	}
	return object.ResOK
}

func isDragging(param any) bool {
	if p, ok := param.(Pointer); ok {
		return p.Dragging()
	}
	if p := indev.Active(); p != nil {
		return p.Dragging()
	}
	return false
}

// pointOf returns the pointer position of a press, falling back to the
// center of area when no device is known.
func pointOf(param any, area graphics.Area) graphics.Point {
	if p, ok := param.(Pointer); ok {
		return p.Point()
	}
	if p := indev.Active(); p != nil {
		return p.Point()
	}
	return area.Center()
}

func keyOf(param any) (focus.Key, bool) {
	switch k := param.(type) {
	case focus.Key:
		return k, true
	case *focus.Key:
		if k != nil {
			return *k, true
		}
	}
	return 0, false
}
