package scenario

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/go-drift/embedui/pkg/draw"
	"github.com/go-drift/embedui/pkg/focus"
	"github.com/go-drift/embedui/pkg/widgets"
)

// FrameDuration is the time a wait step advances per frame.
const FrameDuration = 16 * time.Millisecond

// Epoch is the replay clock's start time.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// ButtonRow is a button's observable state after a step.
type ButtonRow struct {
	Name    string
	State   widgets.State
	Focused bool
	Counts  Counts
}

// Row records the scene after one step.
type Row struct {
	Index   int
	Step    Step
	Elapsed time.Duration
	Buttons []ButtonRow
	// Ripple names the button currently rippling, if any.
	Ripple string
}

// Snapshot is a rendered frame.
type Snapshot struct {
	Name  string
	Image *image.RGBA
}

// Result is the outcome of a replay.
type Result struct {
	Rows      []Row
	Snapshots []Snapshot
	// Final is the frame after the last step.
	Final *image.RGBA
}

// Run replays f on a stepped clock. opts.Clock is ignored.
func Run(ctx context.Context, f *File, opts Options) (*Result, error) {
	clock := &stepClock{now: Epoch}
	opts.Clock = clock
	scene := Build(f, opts)
	defer scene.Close()

	b := scene.Display.Bounds()
	raster := draw.NewRaster(int(b.Width()), int(b.Height()))
	res := &Result{}

	for i, step := range f.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		scene.apply(step, clock)
		if step.Op == OpSnapshot {
			scene.Render(raster)
			res.Snapshots = append(res.Snapshots, Snapshot{Name: step.Name, Image: cloneImage(raster.Image())})
		}
		res.Rows = append(res.Rows, scene.row(i, step, clock.Now().Sub(Epoch)))
		scene.logger.Debug("step", "index", i, "op", step.Op, "elapsed", clock.Now().Sub(Epoch))
	}

	scene.Render(raster)
	res.Final = cloneImage(raster.Image())
	return res, nil
}

func (s *Scene) apply(step Step, clock *stepClock) {
	switch step.Op {
	case OpPress:
		s.Input(s.target(step), true)
	case OpMove:
		s.Input(s.target(step), s.pressed)
	case OpRelease:
		s.Input(s.point, false)
	case OpTap:
		p := s.target(step)
		s.Input(p, true)
		s.Input(p, false)
	case OpWait:
		for d := step.For; d > 0; {
			frame := min(d, FrameDuration)
			clock.Advance(frame)
			s.Frame()
			d -= frame
		}
	case OpKey:
		key, _ := focus.ParseKey(step.Key)
		s.Group.SendKey(key)
	case OpNavigate:
		dir, _ := parseDirection(step.Dir)
		s.Group.FocusInDirection(dir)
	case OpState:
		st, _ := widgets.ParseState(step.State)
		s.buttons[step.Button].SetState(st)
	case OpToggle:
		s.buttons[step.Button].Toggle()
	}
}

func (s *Scene) row(index int, step Step, elapsed time.Duration) Row {
	r := Row{Index: index, Step: step, Elapsed: elapsed}
	focused := s.Group.Focused()
	target := s.Ink.Target()
	for _, name := range s.names {
		b := s.buttons[name]
		r.Buttons = append(r.Buttons, ButtonRow{
			Name:    name,
			State:   b.State(),
			Focused: b.Object() == focused,
			Counts:  *s.counts[name],
		})
		if b == target {
			r.Ripple = name
		}
	}
	return r
}

func cloneImage(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// stepClock only moves when advanced.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
