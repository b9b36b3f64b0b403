// Package scenario loads scripted button sessions and replays them.
//
// A scenario file lays out buttons on a display and lists the input steps
// to feed them. Loading validates every reference so that a replay never
// fails halfway through.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	uierrors "github.com/go-drift/embedui/pkg/errors"
	"github.com/go-drift/embedui/pkg/focus"
	"github.com/go-drift/embedui/pkg/widgets"
)

// File is a parsed scenario.
type File struct {
	Display Display      `yaml:"display"`
	Buttons []ButtonSpec `yaml:"buttons"`
	Steps   []Step       `yaml:"steps"`
}

// Display overrides the configured resolution. Zero keeps the configured
// value.
type Display struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// ButtonSpec places one button.
type ButtonSpec struct {
	Name   string `yaml:"name"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Toggle bool   `yaml:"toggle,omitempty"`
	State  string `yaml:"state,omitempty"`
	// InkTime overrides the configured ripple duration for this button.
	InkTime *time.Duration `yaml:"ink_time,omitempty"`
	// Clone names an earlier button to copy. Width and height default to
	// the copied button's size.
	Clone string `yaml:"clone,omitempty"`
}

// Op is a step kind.
type Op string

// Step kinds.
const (
	OpPress    Op = "press"
	OpMove     Op = "move"
	OpRelease  Op = "release"
	OpTap      Op = "tap"
	OpWait     Op = "wait"
	OpKey      Op = "key"
	OpNavigate Op = "navigate"
	OpState    Op = "state"
	OpToggle   Op = "toggle"
	OpSnapshot Op = "snapshot"
)

// Step is one scripted input.
type Step struct {
	Op Op `yaml:"op"`
	// Button targets a button by name. Pointer steps aim at its center.
	Button string `yaml:"button,omitempty"`
	// At is an explicit pointer position, used when Button is empty.
	At    []int         `yaml:"at,flow,omitempty"`
	Key   string        `yaml:"key,omitempty"`
	Dir   string        `yaml:"dir,omitempty"`
	For   time.Duration `yaml:"for,omitempty"`
	State string        `yaml:"state,omitempty"`
	Name  string        `yaml:"name,omitempty"`
}

// String describes the step for traces.
func (s Step) String() string {
	switch s.Op {
	case OpPress, OpMove, OpTap:
		if s.Button != "" {
			return fmt.Sprintf("%s %s", s.Op, s.Button)
		}
		return fmt.Sprintf("%s (%d,%d)", s.Op, s.At[0], s.At[1])
	case OpWait:
		return fmt.Sprintf("wait %s", s.For)
	case OpKey:
		return "key " + s.Key
	case OpNavigate:
		return "navigate " + s.Dir
	case OpState:
		return fmt.Sprintf("state %s %s", s.Button, s.State)
	case OpToggle:
		return "toggle " + s.Button
	case OpSnapshot:
		return "snapshot " + s.Name
	default:
		return string(s.Op)
	}
}

// Default lays out a plain and a toggle button centered on a w by h
// display, with no steps.
func Default(w, h int) *File {
	const bw, bh, gap = 120, 48, 24
	x := (w - 2*bw - gap) / 2
	y := (h - bh) / 2
	return &File{
		Display: Display{Width: w, Height: h},
		Buttons: []ButtonSpec{
			{Name: "button", X: x, Y: y, Width: bw, Height: bh},
			{Name: "toggle", X: x + bw + gap, Y: y, Width: bw, Height: bh, Toggle: true},
		},
	}
}

// Load reads and validates a scenario file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(path, fmt.Errorf("failed to read scenario: %w", err))
	}
	return Parse(data, path)
}

// Parse decodes and validates scenario YAML. name is used in errors.
func Parse(data []byte, name string) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, wrap(name, fmt.Errorf("failed to parse scenario: %w", err))
	}
	if err := f.Validate(name); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks sizes, names and every step's arguments.
func (f *File) Validate(name string) error {
	bad := func(field string, got any) error {
		return wrap(name, &uierrors.ParseError{File: name, Field: field, Got: got})
	}

	if f.Display.Width < 0 {
		return bad("display.width", f.Display.Width)
	}
	if f.Display.Height < 0 {
		return bad("display.height", f.Display.Height)
	}

	seen := make(map[string]bool, len(f.Buttons))
	for i, b := range f.Buttons {
		field := fmt.Sprintf("buttons[%d]", i)
		switch {
		case b.Name == "":
			return bad(field+".name", b.Name)
		case seen[b.Name]:
			return bad(field+".name", b.Name+" (duplicate)")
		case b.Clone != "" && !seen[b.Clone]:
			return bad(field+".clone", b.Clone)
		case b.Clone == "" && b.Width <= 0:
			return bad(field+".width", b.Width)
		case b.Clone == "" && b.Height <= 0:
			return bad(field+".height", b.Height)
		case b.Width < 0:
			return bad(field+".width", b.Width)
		case b.Height < 0:
			return bad(field+".height", b.Height)
		case b.InkTime != nil && *b.InkTime < 0:
			return bad(field+".ink_time", *b.InkTime)
		}
		if b.State != "" {
			if _, ok := widgets.ParseState(b.State); !ok {
				return bad(field+".state", b.State)
			}
		}
		seen[b.Name] = true
	}

	for i, s := range f.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		if s.Button != "" && !seen[s.Button] {
			return bad(field+".button", s.Button)
		}
		switch s.Op {
		case OpPress, OpMove, OpTap:
			if s.Button == "" && len(s.At) != 2 {
				return bad(field+".at", s.At)
			}
		case OpRelease:
		case OpWait:
			if s.For <= 0 {
				return bad(field+".for", s.For)
			}
		case OpKey:
			if _, ok := focus.ParseKey(s.Key); !ok {
				return bad(field+".key", s.Key)
			}
		case OpNavigate:
			if _, ok := parseDirection(s.Dir); !ok {
				return bad(field+".dir", s.Dir)
			}
		case OpState:
			if s.Button == "" {
				return bad(field+".button", s.Button)
			}
			if _, ok := widgets.ParseState(s.State); !ok {
				return bad(field+".state", s.State)
			}
		case OpToggle:
			if s.Button == "" {
				return bad(field+".button", s.Button)
			}
		case OpSnapshot:
			if s.Name == "" {
				return bad(field+".name", s.Name)
			}
		default:
			return bad(field+".op", s.Op)
		}
	}
	return nil
}

func parseDirection(s string) (focus.Direction, bool) {
	switch s {
	case "up":
		return focus.DirectionUp, true
	case "down":
		return focus.DirectionDown, true
	case "left":
		return focus.DirectionLeft, true
	case "right":
		return focus.DirectionRight, true
	}
	return 0, false
}

func wrap(path string, err error) error {
	return &uierrors.UIError{
		Op:     "scenario.Load",
		Kind:   uierrors.KindConfig,
		Err:    err,
		Object: path,
	}
}
