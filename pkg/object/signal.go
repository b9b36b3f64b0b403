package object

import (
	"fmt"

	"github.com/go-drift/embedui/pkg/draw"
	"github.com/go-drift/embedui/pkg/graphics"
)

// Signal is an event delivered to an object's handler.
type Signal int

const (
	// SignalCleanup is sent right before the object is deleted.
	SignalCleanup Signal = iota
	// SignalStyleChanged is sent after the active style was replaced or refreshed.
	SignalStyleChanged
	// SignalGetType asks every handler in the chain to append its type name
	// to the *TypeInfo param.
	SignalGetType

	// SignalPressed is sent when a pointer goes down on the object.
	// The param is the input device.
	SignalPressed
	// SignalPressing is sent on every input read while the object stays pressed.
	SignalPressing
	// SignalPressLost is sent when the pointer slides off the pressed object.
	SignalPressLost
	// SignalReleased is sent when the pointer is lifted from the object.
	SignalReleased
	// SignalLongPress is sent once when the object has been pressed long enough.
	SignalLongPress
	// SignalLongPressRepeat is sent periodically after SignalLongPress.
	SignalLongPressRepeat

	// SignalFocus is sent when the object becomes the focused member of a group.
	SignalFocus
	// SignalDefocus is sent when the object loses group focus.
	SignalDefocus
	// SignalControl carries a navigation key (focus.Key) from a group.
	SignalControl
)

func (s Signal) String() string {
	switch s {
	case SignalCleanup:
		return "cleanup"
	case SignalStyleChanged:
		return "style_changed"
	case SignalGetType:
		return "get_type"
	case SignalPressed:
		return "pressed"
	case SignalPressing:
		return "pressing"
	case SignalPressLost:
		return "press_lost"
	case SignalReleased:
		return "released"
	case SignalLongPress:
		return "long_press"
	case SignalLongPressRepeat:
		return "long_press_repeat"
	case SignalFocus:
		return "focus"
	case SignalDefocus:
		return "defocus"
	case SignalControl:
		return "control"
	default:
		return fmt.Sprintf("Signal(%d)", int(s))
	}
}

// IsInput reports whether s is a pointer signal or a group key.
// Focus changes are not input.
func (s Signal) IsInput() bool {
	return (s >= SignalPressed && s <= SignalLongPressRepeat) || s == SignalControl
}

// Result reports whether an object survived a signal or action.
type Result int

const (
	// ResOK means the object still exists.
	ResOK Result = iota
	// ResInvalid means the object was deleted while handling the signal.
	ResInvalid
)

// DesignMode selects the phase of a design call.
type DesignMode int

const (
	// DesignCoverCheck asks whether the object fully covers the mask.
	DesignCoverCheck DesignMode = iota
	// DesignDrawMain draws the object before its children.
	DesignDrawMain
	// DesignDrawPost draws on top of the object's children.
	DesignDrawPost
)

// TypeInfo collects type names from the handler chain, base type first.
type TypeInfo struct {
	Types []string
}

// Handler implements an object type's behavior. Derived types keep a
// reference to their base handler and call it before adding their own logic.
type Handler interface {
	// Signal reacts to sig. It returns ResInvalid if obj was deleted.
	Signal(obj *Object, sig Signal, param any) Result
	// Design draws obj on s within mask, or answers a cover check.
	Design(obj *Object, s draw.Surface, mask graphics.Area, mode DesignMode) bool
}

// Base is the root handler shared by every object type.
type Base struct{}

// Signal handles the signals common to all objects.
func (Base) Signal(obj *Object, sig Signal, param any) Result {
	switch sig {
	case SignalGetType:
		if info, ok := param.(*TypeInfo); ok {
			info.Types = append(info.Types, "object")
		}
	case SignalStyleChanged:
		obj.Invalidate()
	}
	return ResOK
}

// Design draws the object's body with its active style.
func (Base) Design(obj *Object, s draw.Surface, mask graphics.Area, mode DesignMode) bool {
	switch mode {
	case DesignCoverCheck:
		st := obj.Style()
		if st == nil || st.Body.Radius != 0 || st.Body.Opa != graphics.OpaCover {
			return false
		}
		return obj.Coords().Covers(mask)
	case DesignDrawMain:
		s.Rect(obj.Coords(), mask, obj.Style(), graphics.OpaCover)
	}
	return true
}
