package scenario

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/go-drift/embedui/pkg/animation"
	"github.com/go-drift/embedui/pkg/config"
	"github.com/go-drift/embedui/pkg/draw"
	"github.com/go-drift/embedui/pkg/focus"
	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/indev"
	"github.com/go-drift/embedui/pkg/object"
	"github.com/go-drift/embedui/pkg/theme"
	"github.com/go-drift/embedui/pkg/widgets"
)

// Options carries the resolved environment a scene is built in.
type Options struct {
	Width   int
	Height  int
	Input   config.Input
	InkTime time.Duration
	// InkPath eases the ripple. Nil is linear.
	InkPath animation.Path
	// Theme styles new buttons. Nil uses theme.Current.
	Theme *theme.Theme
	// Clock drives the pointer device and the animations. Nil uses the
	// system clock.
	Clock  animation.Clock
	Logger *log.Logger
}

// OptionsFrom copies the relevant fields of a resolved configuration.
func OptionsFrom(r *config.Resolved) Options {
	return Options{
		Width:   r.Width,
		Height:  r.Height,
		Input:   r.Input,
		InkTime: r.InkTime,
		InkPath: r.InkPath,
	}
}

// Counts tallies the actions a button has fired.
type Counts struct {
	Press           int
	Click           int
	LongPress       int
	LongPressRepeat int
}

// Scene is a display populated with a scenario's buttons, a pointer device,
// a focus group and a private ripple controller.
type Scene struct {
	Display   *object.Display
	Pointer   *indev.Pointer
	Group     *focus.Group
	Ink       *widgets.InkEffect
	Scheduler *animation.Scheduler

	logger  *log.Logger
	names   []string
	buttons map[string]*widgets.Button
	counts  map[string]*Counts

	point   graphics.Point
	pressed bool
}

// Build creates the scene for f. Buttons join the focus group in file
// order. Call Close when done.
func Build(f *File, opts Options) *Scene {
	w, h := opts.Width, opts.Height
	if f.Display.Width > 0 {
		w = f.Display.Width
	}
	if f.Display.Height > 0 {
		h = f.Display.Height
	}
	if w <= 0 {
		w = config.DefaultWidth
	}
	if h <= 0 {
		h = config.DefaultHeight
	}
	clock := opts.Clock
	if clock == nil {
		clock = animation.SystemClock
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	disp := object.NewDisplay(graphics.Coord(w), graphics.Coord(h))
	sched := animation.NewScheduler(clock)
	var inkOpts []widgets.InkOption
	if opts.InkPath != nil {
		inkOpts = append(inkOpts, widgets.WithInkPath(opts.InkPath))
	}
	s := &Scene{
		Display:   disp,
		Pointer:   indev.New(disp, clock, opts.Input),
		Group:     focus.NewGroup(),
		Ink:       widgets.NewInkEffect(sched, inkOpts...),
		Scheduler: sched,
		logger:    logger,
		buttons:   make(map[string]*widgets.Button, len(f.Buttons)),
		counts:    make(map[string]*Counts, len(f.Buttons)),
	}

	if opts.Theme != nil && opts.Theme.Screen != nil {
		disp.Screen().SetStyle(opts.Theme.Screen)
	}
	for _, bs := range f.Buttons {
		s.addButton(bs, opts)
	}
	return s
}

func (s *Scene) addButton(bs ButtonSpec, opts Options) {
	inkTime := opts.InkTime
	if bs.InkTime != nil {
		inkTime = *bs.InkTime
	}
	bopts := []widgets.ButtonOption{widgets.WithInk(s.Ink), widgets.WithInkTime(inkTime)}
	if opts.Theme != nil {
		bopts = append(bopts, widgets.WithTheme(opts.Theme))
	}

	var b *widgets.Button
	if bs.Clone != "" {
		b = widgets.NewButton(s.Display.Screen(), s.buttons[bs.Clone], bopts...)
	} else {
		b = widgets.NewButton(s.Display.Screen(), nil, bopts...)
	}
	obj := b.Object()
	obj.SetPos(graphics.Coord(bs.X), graphics.Coord(bs.Y))
	if bs.Width > 0 || bs.Height > 0 {
		w, h := obj.Width(), obj.Height()
		if bs.Width > 0 {
			w = graphics.Coord(bs.Width)
		}
		if bs.Height > 0 {
			h = graphics.Coord(bs.Height)
		}
		obj.SetSize(w, h)
	}
	if bs.Toggle {
		b.SetToggle(true)
	}
	if bs.State != "" {
		st, _ := widgets.ParseState(bs.State)
		b.SetState(st)
	}

	c := &Counts{}
	name := bs.Name
	s.counts[name] = c
	b.SetAction(widgets.ActionPress, s.count(name, widgets.ActionPress, &c.Press))
	b.SetAction(widgets.ActionClick, s.count(name, widgets.ActionClick, &c.Click))
	b.SetAction(widgets.ActionLongPress, s.count(name, widgets.ActionLongPress, &c.LongPress))
	b.SetAction(widgets.ActionLongPressRepeat, s.count(name, widgets.ActionLongPressRepeat, &c.LongPressRepeat))

	s.buttons[name] = b
	s.names = append(s.names, name)
	s.Group.Add(obj)
}

func (s *Scene) count(name string, kind widgets.ActionKind, n *int) widgets.Action {
	return func(b *widgets.Button) object.Result {
		*n++
		s.logger.Debug("action", "button", name, "kind", kind, "state", b.State())
		return object.ResOK
	}
}

// Names returns the button names in file order.
func (s *Scene) Names() []string {
	return s.names
}

// Button returns the named button.
func (s *Scene) Button(name string) (*widgets.Button, bool) {
	b, ok := s.buttons[name]
	return b, ok
}

// Counts returns the actions fired so far by the named button.
func (s *Scene) Counts(name string) Counts {
	if c, ok := s.counts[name]; ok {
		return *c
	}
	return Counts{}
}

// Input feeds one pointer sample.
func (s *Scene) Input(p graphics.Point, pressed bool) {
	s.point = p
	s.pressed = pressed
	s.Pointer.Read(p, pressed)
}

// Frame reads a held pointer again and steps the animations.
func (s *Scene) Frame() {
	if s.pressed {
		s.Pointer.Read(s.point, true)
	}
	s.Scheduler.Step()
}

// Render redraws the invalid areas onto r.
func (s *Scene) Render(r draw.Surface) {
	s.Display.Refresh(r)
}

// Close stops the scene's ripple.
func (s *Scene) Close() {
	s.Ink.Close()
}

// target resolves a pointer step to a display position.
func (s *Scene) target(step Step) graphics.Point {
	if b, ok := s.buttons[step.Button]; ok {
		return b.Object().Coords().Center()
	}
	return graphics.Pt(graphics.Coord(step.At[0]), graphics.Coord(step.At[1]))
}
