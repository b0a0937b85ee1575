package chart

import (
	"image/color"
	"math"

	"github.com/vdobler/plotkit"
	"github.com/vdobler/plotkit/data"
	"github.com/vdobler/plotkit/shape"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Rect is an axis aligned rectangle in data coordinates.
type Rect struct {
	X, Y plotkit.Interval
}

// Bars draws rectangles. The border is drawn inside the rectangle.
//
// Bars implements plot.Plotter, plot.DataRanger and plot.Thumbnailer.
type Bars struct {
	Name   string
	Rects  []Rect
	Fill   color.Color
	Border draw.LineStyle
}

// HistogramBars draws one bar per histogram bin, as high as the bin
// holds values.
func HistogramBars[T any](name string, bins []data.Bin[T]) *Bars {
	b := &Bars{Name: name, Rects: make([]Rect, len(bins))}
	for i, bin := range bins {
		b.Rects[i] = Rect{X: bin.Range, Y: plotkit.Interval{Start: 0, End: float64(bin.Len())}}
	}
	return b
}

// StackedBars stacks rows of values, one value per series, at the
// positions xs. Bars are width wide in data units. One Bars is returned
// per series; names label them in order.
func StackedBars(names []string, xs []float64, width float64, rows [][]float64, offset shape.Offset) []*Bars {
	stacked := shape.Stack(rows, offset)
	bars := make([]*Bars, len(stacked))
	for i, series := range stacked {
		b := &Bars{}
		if i < len(names) {
			b.Name = names[i]
		}
		for j, y := range series {
			if j >= len(xs) {
				break
			}
			x := plotkit.Interval{Start: xs[j] - width/2, End: xs[j] + width/2}
			b.Rects = append(b.Rects, Rect{X: x, Y: y})
		}
		bars[i] = b
	}
	return bars
}

// canonicRectangle returns r with its Min point having smaller
// coordinates than its Max point.
func canonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// clipRect clips rect to canvas. The returned rectangle is in the
// canonical form.
func clipRect(rect vg.Rectangle, canvas draw.Canvas) vg.Rectangle {
	rect = canonicRectangle(rect)
	limit := canonicRectangle(canvas.Rectangle)
	rect.Min.X = max(rect.Min.X, limit.Min.X)
	rect.Min.Y = max(rect.Min.Y, limit.Min.Y)
	rect.Max.X = min(rect.Max.X, limit.Max.X)
	rect.Max.Y = min(rect.Max.Y, limit.Max.Y)
	return rect
}

// Plot implements plot.Plotter.
func (b *Bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, r := range b.Rects {
		rect := vg.Rectangle{
			Min: vg.Point{X: trX(r.X.Start), Y: trY(r.Y.Start)},
			Max: vg.Point{X: trX(r.X.End), Y: trY(r.Y.End)},
		}
		if !finite(float64(rect.Min.X)) || !finite(float64(rect.Min.Y)) ||
			!finite(float64(rect.Max.X)) || !finite(float64(rect.Max.Y)) {
			continue
		}
		rect = clipRect(rect, c)
		if rect.Min.X >= rect.Max.X || rect.Min.Y >= rect.Max.Y {
			continue
		}

		if b.Fill != nil {
			c.SetColor(b.Fill)
			c.Fill(rect.Path())
		}
		if b.Border.Width <= 0 || b.Border.Color == nil {
			continue
		}
		w := 0.499 * b.Border.Width
		rect.Min.X += w
		rect.Min.Y += w
		rect.Max.X -= w
		rect.Max.Y -= w
		c.SetLineStyle(b.Border)
		c.Stroke(rect.Path())
	}
}

// DataRange implements plot.DataRanger.
func (b *Bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	x, y := plotkit.UnsetInterval(), plotkit.UnsetInterval()
	for _, r := range b.Rects {
		for _, v := range []float64{r.X.Start, r.X.End} {
			if !math.IsInf(v, 0) {
				x.Update(v)
			}
		}
		for _, v := range []float64{r.Y.Start, r.Y.End} {
			if !math.IsInf(v, 0) {
				y.Update(v)
			}
		}
	}
	return x.Start, x.End, y.Start, y.End
}

// Thumbnail implements plot.Thumbnailer.
func (b *Bars) Thumbnail(c *draw.Canvas) {
	if b.Fill != nil {
		c.SetColor(b.Fill)
		c.Fill(c.Rectangle.Path())
	}
	if b.Border.Width > 0 && b.Border.Color != nil {
		c.SetLineStyle(b.Border)
		c.Stroke(c.Rectangle.Path())
	}
}
