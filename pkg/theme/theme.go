// Package theme provides the default style sets that widgets pick up at
// creation time.
//
// A [Theme] is derived from a [ColorScheme] and may be loaded from a YAML or
// TOML file with [Load]. Widgets read the active theme through [Current];
// when no theme is active they fall back to the built-in styles of package
// style.
package theme

import (
	"sync"

	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/style"
)

// ColorScheme is the palette a theme is derived from.
type ColorScheme struct {
	// Primary is the released button color.
	Primary graphics.Color
	// PrimaryDark is the pressed button color.
	PrimaryDark graphics.Color
	// Accent is the toggled button color.
	Accent graphics.Color
	// AccentDark is the toggled and pressed button color.
	AccentDark graphics.Color
	// Surface is the screen background.
	Surface graphics.Color
	// Outline is the border color.
	Outline graphics.Color
	// Disabled is the inactive button color.
	Disabled graphics.Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:     graphics.Hex(0x2196f3),
		PrimaryDark: graphics.Hex(0x1565c0),
		Accent:      graphics.Hex(0xff9800),
		AccentDark:  graphics.Hex(0xe65100),
		Surface:     graphics.Hex(0xfafafa),
		Outline:     graphics.Hex(0x90a4ae),
		Disabled:    graphics.Hex(0xe0e0e0),
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:     graphics.Hex(0x90caf9),
		PrimaryDark: graphics.Hex(0x42a5f5),
		Accent:      graphics.Hex(0xffcc80),
		AccentDark:  graphics.Hex(0xffa726),
		Surface:     graphics.Hex(0x121212),
		Outline:     graphics.Hex(0x546e7a),
		Disabled:    graphics.Hex(0x424242),
	}
}

// ButtonStyles holds one style per button state. Nil fields keep the
// widget's fallback style.
type ButtonStyles struct {
	Released        *style.Style
	Pressed         *style.Style
	ToggledReleased *style.Style
	ToggledPressed  *style.Style
	Inactive        *style.Style
}

// DefaultButtonStyles derives the five button styles from a color scheme.
func DefaultButtonStyles(colors ColorScheme, radius graphics.Coord) ButtonStyles {
	mk := func(c graphics.Color) *style.Style {
		st := style.Flat(c, radius)
		st.Body.Border = style.Border{Color: colors.Outline, Width: 1, Opa: graphics.OpaCover}
		return st
	}
	return ButtonStyles{
		Released:        mk(colors.Primary),
		Pressed:         mk(colors.PrimaryDark),
		ToggledReleased: mk(colors.Accent),
		ToggledPressed:  mk(colors.AccentDark),
		Inactive:        mk(colors.Disabled),
	}
}

// Theme is a named set of default styles.
type Theme struct {
	Name   string
	Colors ColorScheme
	Screen *style.Style
	Button ButtonStyles
}

// New derives a complete theme from colors.
func New(name string, colors ColorScheme) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,
		Screen: style.Flat(colors.Surface, 0),
		Button: DefaultButtonStyles(colors, 8),
	}
}

// Default returns the built-in light theme.
func Default() *Theme {
	return New("light", LightColorScheme())
}

// Dark returns the built-in dark theme.
func Dark() *Theme {
	return New("dark", DarkColorScheme())
}

var (
	currentMu sync.RWMutex
	current   *Theme
)

// Current returns the active theme, or nil when none was set.
func Current() *Theme {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent activates t for widgets created afterwards. Pass nil to go back
// to the built-in fallback styles. It returns the previous theme.
func SetCurrent(t *Theme) *Theme {
	currentMu.Lock()
	defer currentMu.Unlock()
	prev := current
	current = t
	return prev
}
