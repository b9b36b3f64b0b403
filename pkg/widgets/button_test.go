package widgets_test

import (
	"slices"
	"testing"
	"time"

	uierrors "github.com/go-drift/embedui/pkg/errors"
	"github.com/go-drift/embedui/pkg/focus"
	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/object"
	"github.com/go-drift/embedui/pkg/style"
	uitest "github.com/go-drift/embedui/pkg/testing"
	"github.com/go-drift/embedui/pkg/theme"
	"github.com/go-drift/embedui/pkg/widgets"
)

// fakePointer is a pointer signal param with a fixed position.
type fakePointer struct {
	pt   graphics.Point
	drag bool
}

func (p *fakePointer) Point() graphics.Point { return p.pt }
func (p *fakePointer) Dragging() bool        { return p.drag }

// counter counts action invocations per kind.
type counter map[widgets.ActionKind]int

func (c counter) attach(b *widgets.Button) {
	for k := widgets.ActionPress; k < widgets.NumActions; k++ {
		b.SetAction(k, func(*widgets.Button) object.Result {
			c[k]++
			return object.ResOK
		})
	}
}

func TestButton_PressReleaseClicksOnce(t *testing.T) {
	tests := []struct {
		name  string
		start widgets.State
		want  widgets.State
	}{
		{"released", widgets.StateReleased, widgets.StateReleased},
		{"toggled released", widgets.StateToggledReleased, widgets.StateToggledReleased},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := uitest.NewTesterWithT(t)
			btn := tester.Button()
			btn.SetState(tt.start)
			c := counter{}
			c.attach(btn)

			for range 3 {
				tester.TapObject(btn.Object())
			}

			if btn.State() != tt.want {
				t.Errorf("state = %v, want %v", btn.State(), tt.want)
			}
			if c[widgets.ActionClick] != 3 || c[widgets.ActionPress] != 3 {
				t.Errorf("clicks = %d, presses = %d, want 3 each", c[widgets.ActionClick], c[widgets.ActionPress])
			}
		})
	}
}

func TestButton_PressedStateWhileHeld(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	btn.SetState(widgets.StateToggledReleased)

	tester.PressObject(btn.Object())
	if btn.State() != widgets.StateToggledPressed {
		t.Errorf("state = %v, want toggled-pressed", btn.State())
	}
	if btn.Object().Style() != btn.Style(widgets.StateToggledPressed) {
		t.Error("expected active style to follow the state")
	}
	tester.Release()
}

func TestButton_ToggleAlternates(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	btn.SetToggle(true)
	c := counter{}
	c.attach(btn)

	want := []widgets.State{
		widgets.StateToggledReleased,
		widgets.StateReleased,
		widgets.StateToggledReleased,
		widgets.StateReleased,
	}
	for i, w := range want {
		tester.TapObject(btn.Object())
		if btn.State() != w {
			t.Fatalf("cycle %d: state = %v, want %v", i, btn.State(), w)
		}
		if c[widgets.ActionClick] != i+1 {
			t.Fatalf("cycle %d: clicks = %d, want %d", i, c[widgets.ActionClick], i+1)
		}
	}
}

func TestButton_DragCancels(t *testing.T) {
	tests := []struct {
		name   string
		start  widgets.State
		toggle bool
		want   widgets.State
	}{
		{"plain", widgets.StateReleased, false, widgets.StateReleased},
		{"toggled family", widgets.StateToggledReleased, false, widgets.StateToggledReleased},
		{"toggle enabled", widgets.StateReleased, true, widgets.StateReleased},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := uitest.NewTesterWithT(t)
			btn := tester.Button()
			btn.SetState(tt.start)
			btn.SetToggle(tt.toggle)
			c := counter{}
			c.attach(btn)
			obj := btn.Object()

			p := &fakePointer{pt: obj.Coords().Center()}
			obj.Signal(object.SignalPressed, p)
			p.drag = true
			obj.Signal(object.SignalPressing, p)
			if btn.State() != tt.want {
				t.Errorf("after drag: state = %v, want %v", btn.State(), tt.want)
			}
			obj.Signal(object.SignalReleased, p)

			if btn.State() != tt.want {
				t.Errorf("after release: state = %v, want %v", btn.State(), tt.want)
			}
			if c[widgets.ActionClick] != 0 {
				t.Errorf("clicks = %d, want 0", c[widgets.ActionClick])
			}
		})
	}
}

func TestButton_DragWithPointerDevice(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	btn.Object().SetSize(100, 50)
	c := counter{}
	c.attach(btn)

	start := btn.Object().Coords().Center()
	tester.Press(start)
	tester.MoveTo(start.Add(graphics.Pt(5, 0)))
	tester.MoveTo(start.Add(graphics.Pt(15, 0)))
	if !tester.Pointer().Dragging() {
		t.Fatal("expected the pointer to be dragging")
	}
	if btn.State() != widgets.StateReleased {
		t.Errorf("state = %v, want released", btn.State())
	}
	tester.Release()

	if c[widgets.ActionClick] != 0 {
		t.Errorf("clicks = %d, want 0", c[widgets.ActionClick])
	}
}

func TestButton_PressLost(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	btn.SetState(widgets.StateToggledReleased)
	c := counter{}
	c.attach(btn)

	p := &fakePointer{}
	btn.Object().Signal(object.SignalPressed, p)
	btn.Object().Signal(object.SignalPressLost, p)

	if btn.State() != widgets.StateToggledReleased {
		t.Errorf("state = %v, want toggled-released", btn.State())
	}
	if c[widgets.ActionClick] != 0 {
		t.Errorf("clicks = %d, want 0", c[widgets.ActionClick])
	}
}

func TestButton_LongPressSuppressesClick(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	c := counter{}
	c.attach(btn)

	tester.PressObject(btn.Object())
	tester.Advance(650 * time.Millisecond)
	tester.Release()

	if c[widgets.ActionLongPress] != 1 {
		t.Errorf("long presses = %d, want 1", c[widgets.ActionLongPress])
	}
	if c[widgets.ActionLongPressRepeat] != 2 {
		t.Errorf("repeats = %d, want 2", c[widgets.ActionLongPressRepeat])
	}
	if c[widgets.ActionClick] != 0 {
		t.Errorf("clicks = %d, want 0", c[widgets.ActionClick])
	}
	if btn.State() != widgets.StateReleased {
		t.Errorf("state = %v, want released", btn.State())
	}

	tester.TapObject(btn.Object())
	if c[widgets.ActionClick] != 1 {
		t.Errorf("clicks after new press = %d, want 1", c[widgets.ActionClick])
	}
}

func TestButton_LongPressWithoutActionKeepsClick(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	clicks := 0
	btn.SetAction(widgets.ActionClick, func(*widgets.Button) object.Result {
		clicks++
		return object.ResOK
	})

	tester.PressObject(btn.Object())
	tester.Advance(500 * time.Millisecond)
	tester.Release()

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestButton_InactiveSuppressesActions(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	btn.SetState(widgets.StateInactive)
	c := counter{}
	c.attach(btn)

	tester.PressObject(btn.Object())
	frame, ok := tester.Ink().Frame(btn)
	if !ok {
		t.Fatal("expected inactive press to ripple")
	}
	if frame.Background != widgets.StateInactive || frame.Circle != widgets.StateInactive {
		t.Errorf("ripple states = %v/%v, want inactive/inactive", frame.Background, frame.Circle)
	}
	tester.Advance(650 * time.Millisecond)
	tester.Release()
	tester.Key(focus.KeyEnter)
	tester.Key(focus.KeyRight)

	for k, n := range c {
		if n != 0 {
			t.Errorf("%v fired %d times", k, n)
		}
	}
	if btn.State() != widgets.StateInactive {
		t.Errorf("state = %v, want inactive", btn.State())
	}
}

func TestButton_Control(t *testing.T) {
	tests := []struct {
		name      string
		start     widgets.State
		toggle    bool
		key       focus.Key
		want      widgets.State
		wantClick int
	}{
		{"next on plain keeps state", widgets.StatePressed, false, focus.KeyRight, widgets.StatePressed, 1},
		{"up on plain keeps state", widgets.StateReleased, false, focus.KeyUp, widgets.StateReleased, 1},
		{"prev on plain keeps state", widgets.StateToggledReleased, false, focus.KeyLeft, widgets.StateToggledReleased, 1},
		{"next on toggle", widgets.StateReleased, true, focus.KeyRight, widgets.StateToggledReleased, 1},
		{"prev on toggle", widgets.StateToggledPressed, true, focus.KeyDown, widgets.StateReleased, 1},
		{"next on inactive plain", widgets.StateInactive, false, focus.KeyRight, widgets.StateInactive, 0},
		{"next activates inactive toggle", widgets.StateInactive, true, focus.KeyUp, widgets.StateToggledReleased, 1},
		{"enter on plain", widgets.StateReleased, false, focus.KeyEnter, widgets.StateReleased, 1},
		{"enter cycles released", widgets.StateReleased, true, focus.KeyEnter, widgets.StateToggledReleased, 1},
		{"enter cycles toggled released", widgets.StateToggledReleased, true, focus.KeyEnter, widgets.StateReleased, 1},
		{"enter cycles pressed", widgets.StatePressed, true, focus.KeyEnter, widgets.StateToggledPressed, 1},
		{"enter cycles toggled pressed", widgets.StateToggledPressed, true, focus.KeyEnter, widgets.StatePressed, 1},
		{"enter on inactive toggle", widgets.StateInactive, true, focus.KeyEnter, widgets.StateInactive, 0},
		{"escape ignored", widgets.StateReleased, true, focus.KeyEsc, widgets.StateReleased, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := uitest.NewTesterWithT(t)
			btn := tester.Button()
			btn.SetState(tt.start)
			btn.SetToggle(tt.toggle)
			c := counter{}
			c.attach(btn)

			tester.Key(tt.key)

			if btn.State() != tt.want {
				t.Errorf("state = %v, want %v", btn.State(), tt.want)
			}
			if c[widgets.ActionClick] != tt.wantClick {
				t.Errorf("clicks = %d, want %d", c[widgets.ActionClick], tt.wantClick)
			}
		})
	}
}

func TestButton_EnterAfterLongPress(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	btn.SetToggle(true)
	c := counter{}
	c.attach(btn)

	btn.Object().Signal(object.SignalLongPress, &fakePointer{})
	tester.Key(focus.KeyEnter)
	if c[widgets.ActionClick] != 0 || btn.State() != widgets.StateReleased {
		t.Fatalf("first enter: clicks = %d, state = %v; want 0, released", c[widgets.ActionClick], btn.State())
	}

	tester.Key(focus.KeyEnter)
	if c[widgets.ActionClick] != 1 || btn.State() != widgets.StateToggledReleased {
		t.Errorf("second enter: clicks = %d, state = %v; want 1, toggled-released", c[widgets.ActionClick], btn.State())
	}
}

func TestButton_SetStateAndToggle(t *testing.T) {
	tests := []struct {
		start widgets.State
		want  widgets.State
	}{
		{widgets.StateReleased, widgets.StateToggledReleased},
		{widgets.StateToggledReleased, widgets.StateReleased},
		{widgets.StatePressed, widgets.StateToggledPressed},
		{widgets.StateToggledPressed, widgets.StatePressed},
		{widgets.StateInactive, widgets.StateInactive},
	}

	for _, tt := range tests {
		t.Run(tt.start.String(), func(t *testing.T) {
			tester := uitest.NewTesterWithT(t)
			btn := tester.Button()
			btn.SetState(tt.start)
			btn.Toggle()
			if btn.State() != tt.want {
				t.Errorf("Toggle(): state = %v, want %v", btn.State(), tt.want)
			}
			if btn.Object().Style() != btn.Style(tt.want) {
				t.Error("expected active style to match the state")
			}
		})
	}
}

func TestButton_SetStateOutOfRange(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	btn.SetState(widgets.NumStates)
	if btn.State() != widgets.StateReleased {
		t.Errorf("state = %v, want released", btn.State())
	}
}

func TestButton_StyleTable(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	obj := btn.Object()

	red := style.Flat(graphics.ColorRed, 0)
	btn.SetStyle(widgets.StatePressed, red)
	if obj.Style() == red {
		t.Error("style of another state must not be applied")
	}
	if btn.Style(widgets.StatePressed) != red {
		t.Error("expected pressed style to be stored")
	}

	blue := style.Flat(graphics.ColorBlue, 0)
	btn.SetStyle(widgets.StateReleased, blue)
	if obj.Style() != blue {
		t.Error("expected style of the current state to be applied immediately")
	}

	btn.SetStyle(widgets.StateReleased, nil)
	btn.SetStyle(widgets.NumStates, red)
	if btn.Style(widgets.StateReleased) != blue {
		t.Error("nil style must be ignored")
	}
	if btn.Style(widgets.NumStates) != nil {
		t.Error("out of range style slot must be nil")
	}
}

func TestButton_ActionTable(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()

	for k := widgets.ActionPress; k < widgets.NumActions; k++ {
		if btn.Action(k) != nil {
			t.Errorf("%v: expected no action on a new button", k)
		}
	}
	btn.SetAction(widgets.NumActions, func(*widgets.Button) object.Result { return object.ResOK })
	if btn.Action(widgets.NumActions) != nil {
		t.Error("out of range action slot must be nil")
	}
}

func TestButton_Clone(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	src := tester.Button()
	src.SetToggle(true)
	src.SetState(widgets.StateToggledReleased)
	srcStyle := style.Flat(graphics.ColorGreen, 2)
	src.SetStyle(widgets.StateInactive, srcStyle)
	srcClicks := 0
	src.SetAction(widgets.ActionClick, func(*widgets.Button) object.Result {
		srcClicks++
		return object.ResOK
	})

	dup := widgets.NewButton(tester.Screen(), src)

	if dup.State() != src.State() || dup.ToggleEnabled() != src.ToggleEnabled() {
		t.Fatalf("clone state/toggle = %v/%v, want %v/%v", dup.State(), dup.ToggleEnabled(), src.State(), src.ToggleEnabled())
	}
	for s := widgets.StateReleased; s < widgets.NumStates; s++ {
		if dup.Style(s) != src.Style(s) {
			t.Errorf("%v: style not copied", s)
		}
	}
	if dup.Object().Style() != dup.Style(dup.State()) {
		t.Error("clone active style must match its state")
	}
	if dup.Object().Coords() != src.Object().Coords() {
		t.Error("clone geometry not copied")
	}
	if dup.Ink() != src.Ink() {
		t.Error("clone must share the ripple controller")
	}

	dup.Object().Signal(object.SignalControl, focus.KeyEnter)
	if srcClicks != 1 {
		t.Errorf("copied click action ran %d times, want 1", srcClicks)
	}

	dup.SetAction(widgets.ActionClick, nil)
	dup.SetStyle(widgets.StateInactive, style.Plain)
	if src.Action(widgets.ActionClick) == nil {
		t.Error("clone action mutation leaked into the source")
	}
	if src.Style(widgets.StateInactive) != srcStyle {
		t.Error("clone style mutation leaked into the source")
	}
}

func TestButton_Theme(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	th := theme.Dark()
	btn := tester.Button(widgets.WithTheme(th))

	if btn.Style(widgets.StateReleased) != th.Button.Released {
		t.Error("expected released style from the theme")
	}
	if btn.Object().Style() != th.Button.Released {
		t.Error("expected theme style to be active")
	}

	prev := theme.SetCurrent(theme.Default())
	defer theme.SetCurrent(prev)
	cur := theme.Current()
	other := tester.Button()
	if other.Style(widgets.StatePressed) != cur.Button.Pressed {
		t.Error("expected pressed style from the current theme")
	}
}

func TestButton_FallbackStyles(t *testing.T) {
	prev := theme.SetCurrent(nil)
	defer theme.SetCurrent(prev)

	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	if btn.Style(widgets.StateReleased) != style.ButtonReleased {
		t.Error("expected built-in released style")
	}
	if !btn.Object().Clickable() {
		t.Error("expected a new button to be clickable")
	}
}

func TestButton_TypeChain(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()

	got := btn.Object().TypeNames()
	want := []string{"object", "container", "button"}
	if !slices.Equal(got, want) {
		t.Errorf("TypeNames() = %v, want %v", got, want)
	}
	if b, ok := widgets.FromObject(btn.Object()); !ok || b != btn {
		t.Error("FromObject did not return the button")
	}
}

func TestButton_ActionDeletesButton(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	btn.SetToggle(true)
	btn.SetAction(widgets.ActionClick, func(b *widgets.Button) object.Result {
		return b.Object().Delete()
	})

	p := &fakePointer{pt: btn.Object().Coords().Center()}
	btn.Object().Signal(object.SignalPressed, p)
	res := btn.Object().Signal(object.SignalReleased, p)

	if res != object.ResInvalid {
		t.Errorf("result = %v, want ResInvalid", res)
	}
	if !btn.Object().Deleted() {
		t.Error("expected the button to be deleted")
	}
	if tester.Ink().Target() != nil {
		t.Error("expected the ripple target to be cleared")
	}
	if tester.Scheduler().Len() != 0 {
		t.Errorf("running animations = %d, want 0", tester.Scheduler().Len())
	}
}

func TestButton_DeletedBeforeActionReturnsInvalid(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	btn.SetAction(widgets.ActionPress, func(b *widgets.Button) object.Result {
		b.Object().Delete()
		return object.ResOK
	})

	res := btn.Object().Signal(object.SignalPressed, &fakePointer{})
	if res != object.ResInvalid {
		t.Errorf("result = %v, want ResInvalid", res)
	}
	if btn.Object().Signal(object.SignalReleased, &fakePointer{}) != object.ResInvalid {
		t.Error("signals to a deleted button must report ResInvalid")
	}
}

// captureHandler collects reported errors.
type captureHandler struct {
	errs []*uierrors.UIError
}

func (h *captureHandler) HandleError(err *uierrors.UIError)    { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *uierrors.PanicError) {}

func TestButton_ReentrantSignalDropped(t *testing.T) {
	h := &captureHandler{}
	old := uierrors.DefaultHandler
	uierrors.SetHandler(h)
	defer uierrors.SetHandler(old)

	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	presses := 0
	btn.SetAction(widgets.ActionPress, func(b *widgets.Button) object.Result {
		presses++
		b.Object().Signal(object.SignalPressed, &fakePointer{})
		return object.ResOK
	})

	btn.Object().Signal(object.SignalPressed, &fakePointer{})

	if presses != 1 {
		t.Errorf("presses = %d, want 1", presses)
	}
	if len(h.errs) != 1 || h.errs[0].Kind != uierrors.KindSignal {
		t.Fatalf("reported = %v, want one KindSignal error", h.errs)
	}
	if h.errs[0].Object != btn.Object().ID().String() {
		t.Errorf("error object = %q, want button id", h.errs[0].Object)
	}
}

func TestButton_InkTime(t *testing.T) {
	tester := uitest.NewTesterWithT(t)
	btn := tester.Button()
	if btn.InkTime() != widgets.DefaultInkTime {
		t.Errorf("InkTime() = %v, want %v", btn.InkTime(), widgets.DefaultInkTime)
	}
	btn.SetInkTime(-time.Second)
	if btn.InkTime() != 0 {
		t.Errorf("InkTime() = %v, want 0", btn.InkTime())
	}
	quick := tester.Button(widgets.WithInkTime(50 * time.Millisecond))
	if quick.InkTime() != 50*time.Millisecond {
		t.Errorf("InkTime() = %v, want 50ms", quick.InkTime())
	}
}

func TestState_String(t *testing.T) {
	for s := widgets.StateReleased; s < widgets.NumStates; s++ {
		got, ok := widgets.ParseState(s.String())
		if !ok || got != s {
			t.Errorf("ParseState(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := widgets.ParseState("bogus"); ok {
		t.Error("expected unknown state name to be rejected")
	}
	if widgets.ActionLongPressRepeat.String() != "long-press-repeat" {
		t.Errorf("ActionLongPressRepeat = %q", widgets.ActionLongPressRepeat.String())
	}
}
