package theme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/embedui/pkg/errors"
	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/style"
)

// File is the on-disk theme format.
//
//	name: ocean
//	radius: 6
//	colors:
//	  primary: "#0277bd"
//	  accent: "#00bfa5"
//	button:
//	  inactive:
//	    main_color: "#cfd8dc"
//	    opa: 200
type File struct {
	Name   string               `yaml:"name" toml:"name"`
	Radius *int                 `yaml:"radius" toml:"radius"`
	Colors SchemeFile           `yaml:"colors" toml:"colors"`
	Button map[string]StyleFile `yaml:"button" toml:"button"`
}

// SchemeFile overrides colors of the light scheme. Empty fields keep the default.
type SchemeFile struct {
	Primary     string `yaml:"primary" toml:"primary"`
	PrimaryDark string `yaml:"primary_dark" toml:"primary_dark"`
	Accent      string `yaml:"accent" toml:"accent"`
	AccentDark  string `yaml:"accent_dark" toml:"accent_dark"`
	Surface     string `yaml:"surface" toml:"surface"`
	Outline     string `yaml:"outline" toml:"outline"`
	Disabled    string `yaml:"disabled" toml:"disabled"`
}

// StyleFile overrides fields of one button state's style.
type StyleFile struct {
	MainColor string      `yaml:"main_color" toml:"main_color"`
	GradColor string      `yaml:"grad_color" toml:"grad_color"`
	Radius    *int        `yaml:"radius" toml:"radius"`
	Opa       *int        `yaml:"opa" toml:"opa"`
	Border    *BorderFile `yaml:"border" toml:"border"`
}

// BorderFile overrides a style's border.
type BorderFile struct {
	Color string `yaml:"color" toml:"color"`
	Width int    `yaml:"width" toml:"width"`
	Opa   *int   `yaml:"opa" toml:"opa"`
}

// Load reads a theme file. The format is chosen by extension: .yaml, .yml
// or .toml.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(path, fmt.Errorf("failed to read theme: %w", err))
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, wrap(path, fmt.Errorf("failed to parse theme: %w", err))
		}
	case ".toml":
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, wrap(path, fmt.Errorf("failed to parse theme: %w", err))
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, wrap(path, &errors.ParseError{File: path, Field: undecoded[0].String(), Got: "unknown key"})
		}
	default:
		return nil, wrap(path, fmt.Errorf("unsupported theme format %q", ext))
	}

	t, err := f.Build(path)
	if err != nil {
		return nil, wrap(path, err)
	}
	return t, nil
}

func wrap(path string, err error) error {
	return &errors.UIError{Op: "theme.Load", Kind: errors.KindTheme, Object: path, Err: err}
}

// Build converts the file into a theme. file is only used in error messages.
func (f *File) Build(file string) (*Theme, error) {
	colors := LightColorScheme()
	fields := []struct {
		name string
		raw  string
		dst  *graphics.Color
	}{
		{"colors.primary", f.Colors.Primary, &colors.Primary},
		{"colors.primary_dark", f.Colors.PrimaryDark, &colors.PrimaryDark},
		{"colors.accent", f.Colors.Accent, &colors.Accent},
		{"colors.accent_dark", f.Colors.AccentDark, &colors.AccentDark},
		{"colors.surface", f.Colors.Surface, &colors.Surface},
		{"colors.outline", f.Colors.Outline, &colors.Outline},
		{"colors.disabled", f.Colors.Disabled, &colors.Disabled},
	}
	for _, fl := range fields {
		if fl.raw == "" {
			continue
		}
		c, err := ParseColor(fl.raw)
		if err != nil {
			return nil, &errors.ParseError{File: file, Field: fl.name, Got: fl.raw}
		}
		*fl.dst = c
	}

	name := f.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	t := New(name, colors)
	if f.Radius != nil {
		t.Button = DefaultButtonStyles(colors, graphics.Coord(*f.Radius))
	}

	slots := map[string]**style.Style{
		"released":         &t.Button.Released,
		"pressed":          &t.Button.Pressed,
		"toggled_released": &t.Button.ToggledReleased,
		"toggled_pressed":  &t.Button.ToggledPressed,
		"inactive":         &t.Button.Inactive,
	}
	for key, sf := range f.Button {
		slot, ok := slots[key]
		if !ok {
			return nil, &errors.ParseError{File: file, Field: "button." + key, Got: "unknown button state"}
		}
		st, err := sf.apply(*slot, file, "button."+key)
		if err != nil {
			return nil, err
		}
		*slot = st
	}
	return t, nil
}

func (sf StyleFile) apply(base *style.Style, file, field string) (*style.Style, error) {
	st := base.Copy()
	if sf.MainColor != "" {
		c, err := ParseColor(sf.MainColor)
		if err != nil {
			return nil, &errors.ParseError{File: file, Field: field + ".main_color", Got: sf.MainColor}
		}
		st.Body.MainColor = c
		st.Body.GradColor = c
	}
	if sf.GradColor != "" {
		c, err := ParseColor(sf.GradColor)
		if err != nil {
			return nil, &errors.ParseError{File: file, Field: field + ".grad_color", Got: sf.GradColor}
		}
		st.Body.GradColor = c
	}
	if sf.Radius != nil {
		st.Body.Radius = graphics.Coord(*sf.Radius)
	}
	if sf.Opa != nil {
		if *sf.Opa < 0 || *sf.Opa > 255 {
			return nil, &errors.ParseError{File: file, Field: field + ".opa", Got: *sf.Opa}
		}
		st.Body.Opa = graphics.Opa(*sf.Opa)
	}
	if b := sf.Border; b != nil {
		if b.Color != "" {
			c, err := ParseColor(b.Color)
			if err != nil {
				return nil, &errors.ParseError{File: file, Field: field + ".border.color", Got: b.Color}
			}
			st.Body.Border.Color = c
		}
		st.Body.Border.Width = graphics.Coord(b.Width)
		if b.Opa != nil {
			st.Body.Border.Opa = graphics.Opa(min(max(*b.Opa, 0), 255))
		}
	}
	return st, nil
}

// ParseColor parses "#rrggbb", "#aarrggbb" or the same without the hash.
func ParseColor(s string) (graphics.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6, 8:
	default:
		return 0, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return graphics.Hex(uint32(v)), nil
	}
	return graphics.Color(v), nil
}
