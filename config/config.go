// seehuhn.de/go/mapedit - a tile map editing core
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config holds the editor settings.  Settings can be read from a
// YAML file; fields which are missing or zero get their default values.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/pdf/graphics"
)

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid configuration")

// Config is the top-level editor configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Snap    SnapConfig    `yaml:"snap"`
	Solid   SolidConfig   `yaml:"solid"`
	Border  BorderConfig  `yaml:"border"`
	Line    LineConfig    `yaml:"line"`
	Stamp   StampConfig   `yaml:"stamp"`
	Guides  GuideConfig   `yaml:"guides"`
	Preview PreviewConfig `yaml:"preview"`
}

// GridConfig is the size of the map.
type GridConfig struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	TileSize float64 `yaml:"tile_size"`
	Color    Color   `yaml:"color"`
	Width    float64 `yaml:"width"` // of the grid lines
}

// SnapConfig controls pointer snapping and hit-testing.
type SnapConfig struct {
	Distance     float64 `yaml:"distance"`
	HitTolerance float64 `yaml:"hit_tolerance"` // for deleting lines
}

// SolidConfig is the appearance of filled map area.
type SolidConfig struct {
	Color Color `yaml:"color"`
}

// BorderConfig controls the markers along the edge of filled area.
type BorderConfig struct {
	Size  int   `yaml:"size"`
	Color Color `yaml:"color"`
	Pad   int   `yaml:"pad"` // margin around a shape for the damage scan
}

// LineConfig is the pen of the line tool.
type LineConfig struct {
	Width float64 `yaml:"width"`
	Color Color   `yaml:"color"`
	Cap   string  `yaml:"cap"` // butt | round | square
}

// StampConfig controls stamp placement.  A zero size means one tile.
type StampConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	RequireClear bool    `yaml:"require_clear"`
}

// GuideConfig is the appearance of the guide dots.
type GuideConfig struct {
	Radius      float64 `yaml:"radius"`
	HoverRadius float64 `yaml:"hover_radius"`
	Color       Color   `yaml:"color"`
}

// PreviewConfig is the appearance of the in-progress outline.
type PreviewConfig struct {
	Width        float64 `yaml:"width"`
	ValidColor   Color   `yaml:"valid_color"`
	InvalidColor Color   `yaml:"invalid_color"`
}

// Default returns the default configuration: a 10×10 map of 72 pixel
// tiles.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML configuration, fills in defaults and validates the
// result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var black = Color{A: 255}

func (c *Config) applyDefaults() {
	if c.Grid.Rows == 0 {
		c.Grid.Rows = 10
	}
	if c.Grid.Cols == 0 {
		c.Grid.Cols = 10
	}
	if c.Grid.TileSize == 0 {
		c.Grid.TileSize = 72
	}
	if !c.Grid.Color.set() {
		c.Grid.Color = Color{R: 0xcc, G: 0xcc, B: 0xcc, A: 255}
	}
	if c.Grid.Width == 0 {
		c.Grid.Width = 1
	}
	if c.Snap.Distance == 0 {
		c.Snap.Distance = 12
	}
	if c.Snap.HitTolerance == 0 {
		c.Snap.HitTolerance = 8
	}
	if !c.Solid.Color.set() {
		c.Solid.Color = Color{R: 0xc8, G: 0xb8, B: 0x9a, A: 255}
	}
	if c.Border.Size == 0 {
		c.Border.Size = 3
	}
	if !c.Border.Color.set() {
		c.Border.Color = black
	}
	if c.Border.Pad == 0 {
		c.Border.Pad = 3
	}
	if c.Line.Width == 0 {
		c.Line.Width = 3
	}
	if !c.Line.Color.set() {
		c.Line.Color = black
	}
	if c.Line.Cap == "" {
		c.Line.Cap = "butt"
	}
	if c.Stamp.Width == 0 {
		c.Stamp.Width = c.Grid.TileSize
	}
	if c.Stamp.Height == 0 {
		c.Stamp.Height = c.Grid.TileSize
	}
	if c.Guides.Radius == 0 {
		c.Guides.Radius = 2
	}
	if c.Guides.HoverRadius == 0 {
		c.Guides.HoverRadius = 6
	}
	if !c.Guides.Color.set() {
		c.Guides.Color = black
	}
	if c.Preview.Width == 0 {
		c.Preview.Width = 3
	}
	if !c.Preview.ValidColor.set() {
		c.Preview.ValidColor = black
	}
	if !c.Preview.InvalidColor.set() {
		c.Preview.InvalidColor = Color{R: 0xd0, G: 0x30, B: 0x30, A: 255}
	}
}

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	check(c.Grid.Rows > 0 && c.Grid.Cols > 0, "grid: %d×%d tiles", c.Grid.Rows, c.Grid.Cols)
	check(c.Grid.TileSize > 0, "grid: tile size %g", c.Grid.TileSize)
	check(c.Grid.Width > 0, "grid: line width %g", c.Grid.Width)
	check(c.Snap.Distance > 0, "snap: distance %g", c.Snap.Distance)
	check(c.Snap.HitTolerance > 0, "snap: hit tolerance %g", c.Snap.HitTolerance)
	check(c.Border.Size > 0, "border: size %d", c.Border.Size)
	check(c.Border.Pad > 0, "border: pad %d", c.Border.Pad)
	check(c.Line.Width > 0, "line: width %g", c.Line.Width)
	_, err := ParseCap(c.Line.Cap)
	check(err == nil, "line: %v", err)
	check(c.Stamp.Width > 0 && c.Stamp.Height > 0, "stamp: size %g×%g", c.Stamp.Width, c.Stamp.Height)
	check(c.Guides.Radius > 0 && c.Guides.HoverRadius > 0, "guides: radius %g/%g", c.Guides.Radius, c.Guides.HoverRadius)
	check(c.Preview.Width > 0, "preview: width %g", c.Preview.Width)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// ParseCap converts a cap style name to a line cap style.
func ParseCap(s string) (graphics.LineCapStyle, error) {
	switch strings.ToLower(s) {
	case "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	default:
		return 0, fmt.Errorf("unknown line cap %q", s)
	}
}

// Color is an opaque or translucent colour, written as "#rrggbb" or
// "#rrggbbaa" in YAML.
type Color color.NRGBA

// set reports whether the colour was given.  Fully transparent colours
// are treated as missing.
func (c Color) set() bool {
	return c != Color{}
}

// NRGBA returns c as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

// String formats c as "#rrggbbaa".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses a colour in "#rrggbb" or "#rrggbbaa" notation.
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return Color{}, fmt.Errorf("malformed colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("malformed colour %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	col, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = col
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
