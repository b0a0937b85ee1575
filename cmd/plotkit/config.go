package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/vdobler/plotkit/scale"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Config describes a chart to render.
type Config struct {
	Title  string `toml:"title"`
	Width  string `toml:"width"`
	Height string `toml:"height"`
	Output string `toml:"output"`

	X AxisConfig `toml:"x"`
	Y AxisConfig `toml:"y"`

	Series    []SeriesConfig    `toml:"series"`
	Histogram []HistogramConfig `toml:"histogram"`
}

// AxisConfig describes one axis.
type AxisConfig struct {
	Kind   string  `toml:"kind"` // linear, log or time
	Base   float64 `toml:"base"`
	Ticks  int     `toml:"ticks"`
	Format string  `toml:"format"` // strftime layout of time axes
	Label  string  `toml:"label"`
	Raw    bool    `toml:"raw"` // keep the data range, do not extend it to nice values
}

// SeriesConfig describes one line series. Points are given inline or
// read from two columns of a CSV file.
type SeriesConfig struct {
	Name    string      `toml:"name"`
	Curve   string      `toml:"curve"`
	Tension float64     `toml:"tension"`
	Color   string      `toml:"color"`
	Dashes  int         `toml:"dashes"`
	Points  [][]float64 `toml:"points"`
	CSV     string      `toml:"csv"`
	XCol    string      `toml:"xcol"`
	YCol    string      `toml:"ycol"`
}

// HistogramConfig describes a histogram drawn as bars. Values are given
// inline or read from a CSV column.
type HistogramConfig struct {
	Name       string    `toml:"name"`
	Color      string    `toml:"color"`
	Values     []float64 `toml:"values"`
	CSV        string    `toml:"csv"`
	Col        string    `toml:"col"`
	Thresholds []float64 `toml:"thresholds"`
}

// DefaultConfig returns the settings used for anything a chart file
// leaves unset.
func DefaultConfig() Config {
	return Config{
		Width:  "6in",
		Height: "4in",
		Output: "chart.svg",
	}
}

// LoadConfig reads a TOML chart file. Unset values keep their defaults.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return conf, errors.Wrap(err, "unable to load chart config")
	}
	return ParseConfig(b)
}

// ParseConfig parses a TOML chart description.
func ParseConfig(b []byte) (Config, error) {
	conf := DefaultConfig()
	if err := toml.Unmarshal(b, &conf); err != nil {
		return conf, errors.Wrap(err, "parsing chart config")
	}
	def := DefaultConfig()
	if conf.Width == "" {
		conf.Width = def.Width
	}
	if conf.Height == "" {
		conf.Height = def.Height
	}
	if conf.Output == "" {
		conf.Output = def.Output
	}
	return conf, conf.Validate()
}

// Validate checks names and sizes in c.
func (c Config) Validate() error {
	if _, _, err := c.Size(); err != nil {
		return err
	}
	for _, a := range []AxisConfig{c.X, c.Y} {
		if _, err := a.Axis(); err != nil {
			return err
		}
	}
	for i, s := range c.Series {
		if _, err := parseCurve(s.Curve, s.Tension); err != nil {
			return errors.Wrapf(err, "series %d", i+1)
		}
		if _, err := parseColor(s.Color); err != nil {
			return errors.Wrapf(err, "series %d", i+1)
		}
		for _, p := range s.Points {
			if len(p) != 2 {
				return errors.Errorf("series %d: point %v is not a pair", i+1, p)
			}
		}
		if len(s.Points) == 0 && s.CSV == "" {
			return errors.Errorf("series %d: no points and no csv file", i+1)
		}
	}
	for i, h := range c.Histogram {
		if _, err := parseColor(h.Color); err != nil {
			return errors.Wrapf(err, "histogram %d", i+1)
		}
	}
	return nil
}

// Size returns the parsed width and height.
func (c Config) Size() (width, height vg.Length, err error) {
	if width, err = vg.ParseLength(c.Width); err != nil {
		return 0, 0, errors.Wrapf(err, "width %q", c.Width)
	}
	if height, err = vg.ParseLength(c.Height); err != nil {
		return 0, 0, errors.Wrapf(err, "height %q", c.Height)
	}
	return width, height, nil
}

// Axis returns the scale axis described by a.
func (a AxisConfig) Axis() (scale.Axis, error) {
	var axis scale.Axis
	switch strings.ToLower(a.Kind) {
	case "", "linear":
		axis = scale.LinearAxis(a.Ticks)
	case "log":
		axis = scale.LogAxis(a.Base, a.Ticks)
	case "time":
		axis = scale.TimeAxis(a.Ticks, a.Format)
	default:
		return axis, errors.Errorf("unknown axis kind %q", a.Kind)
	}
	if a.Raw {
		axis.Nice = nil
	}
	return axis, nil
}

// parseColor parses "#rrggbb" colors. An empty string means no color;
// "palette:N" picks the N'th color of the plotutil default palette.
func parseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, nil
	case strings.HasPrefix(s, "palette:"):
		var n int
		if _, err := fmt.Sscanf(s, "palette:%d", &n); err != nil {
			return nil, errors.Errorf("malformed color %q", s)
		}
		return plotutil.Color(n), nil
	}
	var c color.RGBA
	c.A = 0xff
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil || len(s) != 7 {
		return nil, errors.Errorf("malformed color %q", s)
	}
	return c, nil
}
