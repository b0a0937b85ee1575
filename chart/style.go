package chart

import (
	"image/color"
	"math"

	"github.com/vdobler/plotkit/colors"
	"github.com/vdobler/plotkit/interpolate"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Panel is drawn.
type Style struct {
	Background color.Color

	TitleSize vg.Length
	LabelSize vg.Length
	TickSize  vg.Length

	Grid draw.LineStyle

	// LineWidth is the default stroke width of series.
	LineWidth vg.Length

	// Border is drawn around bars. A zero width draws no border.
	Border draw.LineStyle

	// Palette lists the anchor colors of the series color ramp. The
	// colors in between are interpolated in HSL space.
	Palette []colors.HSL
}

// DefaultStyle returns a Style which mimics the appearance of ggplot2.
// The baseFontSize is the font size for axis titles, the title is a bit
// bigger, tick labels a bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	s := Style{}
	s.Background = color.Gray16{0xeeee}

	s.TitleSize = scale(baseFontSize, 1.2)
	s.LabelSize = baseFontSize
	s.TickSize = scale(baseFontSize, 1/1.2)

	s.Grid.Color = color.White
	s.Grid.Width = vg.Length(1)

	s.LineWidth = vg.Length(1.5)

	s.Border.Color = color.Gray16{0x1111}
	s.Border.Width = vg.Length(0.5)

	s.Palette = []colors.HSL{
		{H: 210, S: 0.65, L: 0.45},
		{H: 30, S: 0.85, L: 0.5},
		{H: 130, S: 0.5, L: 0.4},
	}
	return s
}

// Color returns the i'th of n colors evenly spaced along the palette.
func (s Style) Color(i, n int) color.Color {
	switch len(s.Palette) {
	case 0:
		return color.Black
	case 1:
		return s.Palette[0]
	}
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}
	return interpolate.Piecewise[colors.HSL](interpolate.HSL{}, s.Palette...)(t)
}

// apply sets fonts sizes and background of p.
func (s Style) apply(p *plot.Plot) {
	p.BackgroundColor = s.Background
	if s.TitleSize > 0 {
		p.Title.TextStyle.Font.Size = s.TitleSize
	}
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		if s.LabelSize > 0 {
			ax.Label.TextStyle.Font.Size = s.LabelSize
		}
		if s.TickSize > 0 {
			ax.Tick.Label.Font.Size = s.TickSize
		}
	}
	if s.TickSize > 0 {
		p.Legend.TextStyle.Font.Size = s.TickSize
	}
}
