package chart

import (
	"image/color"
	"math"

	"github.com/vdobler/plotkit/data"
	"github.com/vdobler/plotkit/shape"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Series draws its points as one curve. Points with a coordinate that
// is not finite on the plot's axes are left out, splitting the curve.
//
// Series implements plot.Plotter, plot.DataRanger and plot.Thumbnailer.
type Series struct {
	Name string
	XYs  plotter.XYs

	// Curve interpolates between points; nil means shape.Linear.
	Curve shape.Curve

	Color  color.Color
	Width  vg.Length
	Dashes []vg.Length
}

func (s *Series) lineStyle() draw.LineStyle {
	col := s.Color
	if col == nil {
		col = color.Black
	}
	width := s.Width
	if width == 0 {
		width = vg.Length(1)
	}
	return draw.LineStyle{Color: col, Width: width, Dashes: s.Dashes}
}

// Path returns the curve through s on canvas c of plt.
func (s *Series) Path(c draw.Canvas, plt *plot.Plot) *shape.Path {
	trX, trY := plt.Transforms(&c)
	line := shape.NewXYLine().
		WithX(func(p plotter.XY, _ int) float64 { return float64(trX(p.X)) }).
		WithY(func(p plotter.XY, _ int) float64 { return float64(trY(p.Y)) }).
		WithDefined(func(p plotter.XY, _ int) bool {
			return finite(float64(trX(p.X))) && finite(float64(trY(p.Y)))
		})
	if s.Curve != nil {
		line = line.WithCurve(s.Curve)
	}
	return line.Path(s.XYs)
}

// Plot implements plot.Plotter.
func (s *Series) Plot(c draw.Canvas, plt *plot.Plot) {
	path := s.Path(c, plt)
	if len(path.Path) == 0 {
		return
	}
	c.SetLineStyle(s.lineStyle())
	c.Stroke(path.Path)
}

// DataRange implements plot.DataRanger.
func (s *Series) DataRange() (xmin, xmax, ymin, ymax float64) {
	x, y := data.XYRange(s.XYs)
	return x.Start, x.End, y.Start, y.End
}

// Thumbnail implements plot.Thumbnailer.
func (s *Series) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	c.StrokeLine2(s.lineStyle(), c.Min.X, y, c.Max.X, y)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
