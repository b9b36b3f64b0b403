package widgets

import (
	"fmt"
	"time"

	"github.com/go-drift/embedui/pkg/object"
	"github.com/go-drift/embedui/pkg/style"
	"github.com/go-drift/embedui/pkg/theme"
)

// State is the visual and interaction state of a [Button].
type State uint8

const (
	StateReleased State = iota
	StatePressed
	StateToggledReleased
	StateToggledPressed
	// StateInactive keeps its style but suppresses every action.
	StateInactive

	// NumStates is the number of button states.
	NumStates
)

func (s State) String() string {
	switch s {
	case StateReleased:
		return "released"
	case StatePressed:
		return "pressed"
	case StateToggledReleased:
		return "toggled-released"
	case StateToggledPressed:
		return "toggled-pressed"
	case StateInactive:
		return "inactive"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// ParseState resolves a state name as printed by State.String.
func ParseState(name string) (State, bool) {
	for s := StateReleased; s < NumStates; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// ActionKind selects a slot of the action table.
type ActionKind uint8

const (
	ActionPress ActionKind = iota
	ActionClick
	ActionLongPress
	ActionLongPressRepeat

	// NumActions is the number of action slots.
	NumActions
)

func (k ActionKind) String() string {
	switch k {
	case ActionPress:
		return "press"
	case ActionClick:
		return "click"
	case ActionLongPress:
		return "long-press"
	case ActionLongPressRepeat:
		return "long-press-repeat"
	default:
		return fmt.Sprintf("ActionKind(%d)", uint8(k))
	}
}

// Action is a user callback. It returns object.ResInvalid if it deleted the
// button.
type Action func(b *Button) object.Result

// DefaultInkTime is the ripple duration of new buttons.
const DefaultInkTime = 300 * time.Millisecond

// Button is the extension block and handler of a button object.
type Button struct {
	obj  *object.Object
	base object.Handler
	ink  InkController

	state   State
	toggle  bool
	styles  [NumStates]*style.Style
	actions [NumActions]Action

	longPressFired bool
	inkTime        time.Duration
	dispatching    bool
}

// ButtonOption configures a new button.
type ButtonOption func(*buttonOptions)

type buttonOptions struct {
	ink     InkController
	theme   *theme.Theme
	inkTime *time.Duration
}

// WithInk makes the button use ink instead of the process-wide [DefaultInk].
func WithInk(ink InkController) ButtonOption {
	return func(o *buttonOptions) { o.ink = ink }
}

// WithTheme styles a new button from t instead of theme.Current.
// It has no effect when cloning.
func WithTheme(t *theme.Theme) ButtonOption {
	return func(o *buttonOptions) { o.theme = t }
}

// WithInkTime sets the ripple duration. Zero disables the ripple.
func WithInkTime(d time.Duration) ButtonOption {
	return func(o *buttonOptions) { o.inkTime = &d }
}

// NewButton creates a button on parent. If copy is non-nil the new button
// takes its geometry, state, toggle flag, action table and style table;
// otherwise it is released, clickable and styled by the active theme.
func NewButton(parent *object.Object, copy *Button, opts ...ButtonOption) *Button {
	var o buttonOptions
	for _, opt := range opts {
		opt(&o)
	}

	var copyObj *object.Object
	if copy != nil {
		copyObj = copy.obj
	}
	obj := NewContainer(parent, copyObj)

	b := &Button{
		obj:     obj,
		base:    obj.Handler(),
		ink:     o.ink,
		state:   StateReleased,
		inkTime: DefaultInkTime,
		styles: [NumStates]*style.Style{
			StateReleased:        style.ButtonReleased,
			StatePressed:         style.ButtonPressed,
			StateToggledReleased: style.ButtonToggledReleased,
			StateToggledPressed:  style.ButtonToggledPressed,
			StateInactive:        style.ButtonInactive,
		},
	}
	if o.inkTime != nil {
		b.inkTime = *o.inkTime
	}
	obj.SetExt(b)
	obj.SetHandler(b)

	if copy == nil {
		obj.SetClickable(true)
		th := o.theme
		if th == nil {
			th = theme.Current()
		}
		if th != nil {
			b.SetStyle(StateReleased, th.Button.Released)
			b.SetStyle(StatePressed, th.Button.Pressed)
			b.SetStyle(StateToggledReleased, th.Button.ToggledReleased)
			b.SetStyle(StateToggledPressed, th.Button.ToggledPressed)
			b.SetStyle(StateInactive, th.Button.Inactive)
		}
		obj.SetStyle(b.styles[b.state])
	} else {
		b.state = copy.state
		b.toggle = copy.toggle
		b.actions = copy.actions
		b.styles = copy.styles
		if b.ink == nil {
			b.ink = copy.ink
		}
		obj.SetStyle(b.styles[b.state])
	}
	if b.ink == nil {
		b.ink = DefaultInk()
	}
	return b
}

// FromObject returns the button attached to obj.
func FromObject(obj *object.Object) (*Button, bool) {
	b, ok := obj.Ext().(*Button)
	return b, ok
}

// Object returns the underlying object.
func (b *Button) Object() *object.Object {
	return b.obj
}

// State returns the current state.
func (b *Button) State() State {
	return b.state
}

// ToggleEnabled reports whether releases flip between the plain and
// toggled state families.
func (b *Button) ToggleEnabled() bool {
	return b.toggle
}

// SetToggle enables or disables toggle behavior.
func (b *Button) SetToggle(en bool) {
	b.toggle = en
}

// SetState moves the button to s and applies its style.
// Out of range states are ignored.
func (b *Button) SetState(s State) {
	if s >= NumStates || s == b.state {
		return
	}
	b.state = s
	b.obj.SetStyle(b.styles[s])
}

// Toggle swaps the plain and toggled variant of the current state.
// Inactive buttons are left alone.
func (b *Button) Toggle() {
	switch b.state {
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

// Style returns the style of state s, or nil if s is out of range.
func (b *Button) Style(s State) *style.Style {
	if s >= NumStates {
		return nil
	}
	return b.styles[s]
}

// SetStyle sets the style of state s. If s is the current state the style
// is applied immediately. Nil styles and out of range states are ignored.
func (b *Button) SetStyle(s State, st *style.Style) {
	if s >= NumStates || st == nil {
		return
	}
	b.styles[s] = st
	if s == b.state {
		b.obj.SetStyle(st)
	}
}

// Action returns the callback of kind, or nil.
func (b *Button) Action(kind ActionKind) Action {
	if kind >= NumActions {
		return nil
	}
	return b.actions[kind]
}

// SetAction sets the callback of kind. Out of range kinds are ignored.
func (b *Button) SetAction(kind ActionKind, fn Action) {
	if kind >= NumActions {
		return
	}
	b.actions[kind] = fn
}

// InkTime returns the ripple duration.
func (b *Button) InkTime() time.Duration {
	return b.inkTime
}

// SetInkTime sets the ripple duration. Zero disables the ripple; negative
// values are treated as zero.
func (b *Button) SetInkTime(d time.Duration) {
	b.inkTime = max(d, 0)
}

// Ink returns the ripple controller used by the button.
func (b *Button) Ink() InkController {
	return b.ink
}
