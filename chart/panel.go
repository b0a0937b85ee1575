// Package chart assembles the scales, curves and data helpers of
// plotkit into gonum plots.
package chart

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/vdobler/plotkit"
	"github.com/vdobler/plotkit/scale"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

// ----------------------------------------------------------------------------
// Panel

// A Panel is a single chart: line series and bars drawn against an x
// and a y axis.
type Panel struct {
	Title  string
	XLabel string
	YLabel string

	// X and Y default to scale.LinearAxis(0) if their Normalizer is nil.
	X, Y scale.Axis

	Series []*Series
	Bars   []*Bars

	Style Style
}

// NewPanel returns an empty panel with linear axes and the default
// style.
func NewPanel(title string) *Panel {
	return &Panel{
		Title: title,
		X:     scale.LinearAxis(0),
		Y:     scale.LinearAxis(0),
		Style: DefaultStyle(vg.Length(12)),
	}
}

func (p *Panel) axes() (x, y scale.Axis) {
	x, y = p.X, p.Y
	if x.Normalizer == nil {
		x = scale.LinearAxis(0)
	}
	if y.Normalizer == nil {
		y = scale.LinearAxis(0)
	}
	return x, y
}

// Ranges returns the x and y data ranges covered by all series and
// bars, widened by the axes' Nice functions. Ranges without data are
// [0,1]; single values are padded by 0.5 on either side.
func (p *Panel) Ranges() (x, y plotkit.Interval, err error) {
	x, y = plotkit.UnsetInterval(), plotkit.UnsetInterval()
	update := func(d plot.DataRanger) {
		xmin, xmax, ymin, ymax := d.DataRange()
		x.Update(xmin, xmax)
		y.Update(ymin, ymax)
	}
	for _, s := range p.Series {
		update(s)
	}
	for _, b := range p.Bars {
		update(b)
	}

	xa, ya := p.axes()
	if x, err = niceRange(xa, x); err != nil {
		return x, y, errors.Wrap(err, "x axis")
	}
	if y, err = niceRange(ya, y); err != nil {
		return x, y, errors.Wrap(err, "y axis")
	}
	return x, y, nil
}

func niceRange(a scale.Axis, r plotkit.Interval) (plotkit.Interval, error) {
	switch {
	case math.IsNaN(r.Start):
		r = plotkit.Interval{Start: 0, End: 1}
	case r.Start == r.End:
		r = plotkit.Interval{Start: r.Start - 0.5, End: r.End + 0.5}
	}
	if a.Nice == nil {
		return r, nil
	}
	nice, err := a.Nice(r)
	if errors.Is(err, plotkit.ErrUnimplemented) {
		return r, nil
	}
	if err != nil {
		return r, err
	}
	return nice, nil
}

// Plot assembles a gonum plot from p. Series without color get one
// from the style's palette.
func (p *Panel) Plot() (*plot.Plot, error) {
	xr, yr, err := p.Ranges()
	if err != nil {
		return nil, err
	}

	plt := plot.New()
	plt.Title.Text = p.Title
	plt.X.Label.Text = p.XLabel
	plt.Y.Label.Text = p.YLabel
	p.Style.apply(plt)

	xa, ya := p.axes()
	xa.Apply(&plt.X)
	ya.Apply(&plt.Y)

	grid := plotter.NewGrid()
	grid.Vertical = p.Style.Grid
	grid.Horizontal = p.Style.Grid
	plt.Add(grid)

	for i, b := range p.Bars {
		bar := *b
		if bar.Fill == nil {
			bar.Fill = p.Style.Color(i, len(p.Bars))
		}
		if bar.Border.Width == 0 {
			bar.Border = p.Style.Border
		}
		plt.Add(&bar)
		if bar.Name != "" {
			plt.Legend.Add(bar.Name, &bar)
		}
	}
	for i, s := range p.Series {
		series := *s
		if series.Color == nil {
			series.Color = p.Style.Color(i, len(p.Series))
		}
		if series.Width == 0 {
			series.Width = p.Style.LineWidth
		}
		plt.Add(&series)
		if series.Name != "" {
			plt.Legend.Add(series.Name, &series)
		}
	}
	plt.Legend.Top = true

	plt.X.Min, plt.X.Max = xr.Start, xr.End
	plt.Y.Min, plt.Y.Max = yr.Start, yr.End
	return plt, nil
}

// MapXY maps the data coordinate (x,y) to a point on the data area c.
// The boolean reports whether the point lies inside c.
func (p *Panel) MapXY(c draw.Canvas, x, y float64) (vg.Point, bool) {
	xr, yr, err := p.Ranges()
	if err != nil {
		return vg.Point{}, false
	}
	xa, ya := p.axes()
	size := c.Size()
	xu := xa.Normalizer.Normalize(xr.Start, xr.End, x)
	yu := ya.Normalizer.Normalize(yr.Start, yr.End, y)
	pt := vg.Point{
		X: c.Min.X + vg.Length(xu)*size.X,
		Y: c.Min.Y + vg.Length(yu)*size.Y,
	}
	return pt, xu >= 0 && xu <= 1 && yu >= 0 && yu <= 1
}

// WriteSVG renders p as SVG to w.
func (p *Panel) WriteSVG(w io.Writer, width, height vg.Length) error {
	plt, err := p.Plot()
	if err != nil {
		return err
	}
	c := vgsvg.New(width, height)
	plt.Draw(draw.New(c))
	if _, err := c.WriteTo(w); err != nil {
		return errors.Wrap(err, "writing svg")
	}
	return nil
}

// Save renders p to the named file. The format follows the file
// extension, e.g. ".svg", ".png" or ".pdf".
func (p *Panel) Save(path string, width, height vg.Length) error {
	plt, err := p.Plot()
	if err != nil {
		return err
	}
	return errors.Wrapf(plt.Save(width, height, path), "saving %s", path)
}
