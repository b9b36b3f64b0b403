// Package config loads the optional embedui.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/embedui/pkg/animation"
	uierrors "github.com/go-drift/embedui/pkg/errors"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "embedui.yaml"

// Defaults.
const (
	DefaultWidth           = 480
	DefaultHeight          = 320
	DefaultDragLimit       = 10
	DefaultLongPress       = 400 * time.Millisecond
	DefaultLongPressRepeat = 100 * time.Millisecond
	DefaultInkTime         = 300 * time.Millisecond
)

// Config represents the optional embedui.yaml configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Display DisplayConfig `yaml:"display"`
	Input   Input         `yaml:"input"`
	Button  ButtonConfig  `yaml:"button"`
	Theme   string        `yaml:"theme,omitempty"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// DisplayConfig sets the display resolution.
type DisplayConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// Input configures the pointer input device.
type Input struct {
	// DragLimit is the distance in pixels the pointer has to travel before a
	// press turns into a drag.
	DragLimit       int           `yaml:"drag_limit,omitempty"`
	LongPress       time.Duration `yaml:"long_press,omitempty"`
	LongPressRepeat time.Duration `yaml:"long_press_repeat,omitempty"`
}

// ButtonConfig contains button defaults.
type ButtonConfig struct {
	// InkTime is the ripple duration. A pointer value so that an explicit 0
	// (ripple disabled) is told apart from an unset field.
	InkTime *time.Duration `yaml:"ink_time,omitempty"`
	// InkPath names the ripple easing, see animation.PathByName.
	InkPath string `yaml:"ink_path,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root    string
	AppName string
	Width   int
	Height  int
	Input   Input
	InkTime time.Duration
	InkPath animation.Path
	// Theme is the absolute theme file path, or empty for the built-in theme.
	Theme string
}

// DefaultInput returns the input settings used when nothing is configured.
func DefaultInput() Input {
	return Input{
		DragLimit:       DefaultDragLimit,
		LongPress:       DefaultLongPress,
		LongPressRepeat: DefaultLongPressRepeat,
	}
}

// LoadOptional reads embedui.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, wrap(path, fmt.Errorf("failed to read %s: %w", FileName, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, wrap(path, fmt.Errorf("failed to parse %s: %w", FileName, err))
	}

	return &cfg, nil
}

// Resolve loads embedui.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir)
}

// Resolve applies defaults to cfg and validates the result. Relative theme
// paths are taken relative to dir.
func (cfg *Config) Resolve(dir string) (*Resolved, error) {
	path := filepath.Join(dir, FileName)

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(dir)
	}

	r := &Resolved{
		Root:    dir,
		AppName: appName,
		Width:   orDefault(cfg.Display.Width, DefaultWidth),
		Height:  orDefault(cfg.Display.Height, DefaultHeight),
		Input: Input{
			DragLimit:       orDefault(cfg.Input.DragLimit, DefaultDragLimit),
			LongPress:       orDefault(cfg.Input.LongPress, DefaultLongPress),
			LongPressRepeat: orDefault(cfg.Input.LongPressRepeat, DefaultLongPressRepeat),
		},
		InkTime: DefaultInkTime,
	}
	if cfg.Button.InkTime != nil {
		r.InkTime = *cfg.Button.InkTime
	}
	inkPath, ok := animation.PathByName(strings.TrimSpace(cfg.Button.InkPath))
	if !ok {
		return nil, wrap(path, &uierrors.ParseError{File: FileName, Field: "button.ink_path", Got: cfg.Button.InkPath})
	}
	r.InkPath = inkPath
	if t := strings.TrimSpace(cfg.Theme); t != "" {
		if !filepath.IsAbs(t) {
			t = filepath.Join(dir, t)
		}
		r.Theme = t
	}

	switch {
	case r.Width < 0:
		return nil, wrap(path, &uierrors.ParseError{File: FileName, Field: "display.width", Got: r.Width})
	case r.Height < 0:
		return nil, wrap(path, &uierrors.ParseError{File: FileName, Field: "display.height", Got: r.Height})
	case r.Input.DragLimit < 0:
		return nil, wrap(path, &uierrors.ParseError{File: FileName, Field: "input.drag_limit", Got: r.Input.DragLimit})
	case r.Input.LongPress < 0:
		return nil, wrap(path, &uierrors.ParseError{File: FileName, Field: "input.long_press", Got: r.Input.LongPress})
	case r.Input.LongPressRepeat < 0:
		return nil, wrap(path, &uierrors.ParseError{File: FileName, Field: "input.long_press_repeat", Got: r.Input.LongPressRepeat})
	case r.InkTime < 0:
		return nil, wrap(path, &uierrors.ParseError{File: FileName, Field: "button.ink_time", Got: r.InkTime})
	}
	return r, nil
}

// FindProjectRoot walks up from dir to the nearest directory holding a
// go.mod file.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// defaultAppName names the app after the Go module in dir, falling back to
// the directory name.
func defaultAppName(dir string) string {
	base := filepath.Base(dir)
	if data, err := os.ReadFile(filepath.Join(dir, "go.mod")); err == nil {
		if modPath := modfile.ModulePath(data); modPath != "" {
			if prefix, _, ok := module.SplitPathVersion(modPath); ok {
				modPath = prefix
			}
			parts := strings.Split(modPath, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "embedui"
	}
	return base
}

func orDefault[T int | time.Duration](v, def T) T {
	if v == 0 {
		return def
	}
	return v
}

func wrap(path string, err error) error {
	return &uierrors.UIError{
		Op:     "config.Load",
		Kind:   uierrors.KindConfig,
		Err:    err,
		Object: path,
	}
}
