package shape

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// Line generates a path through a sequence of data values. Accessors
// extract the coordinates of each datum; data for which the defined
// accessor reports false split the line into separate segments.
//
// Line values are immutable; the With methods return modified copies.
type Line[T any] struct {
	x, y    func(d T, i int) float64
	defined func(d T, i int) bool
	curve   Curve
}

// NewLine returns a linear line generator using the given coordinate
// accessors. Every datum is defined.
func NewLine[T any](x, y func(d T, i int) float64) Line[T] {
	return Line[T]{
		x:       x,
		y:       y,
		defined: func(T, int) bool { return true },
		curve:   Linear{},
	}
}

// NewXYLine returns a line generator for plotter.XY points. Points with
// a NaN or infinite coordinate are undefined.
func NewXYLine() Line[plotter.XY] {
	return NewLine(
		func(p plotter.XY, _ int) float64 { return p.X },
		func(p plotter.XY, _ int) float64 { return p.Y },
	).WithDefined(func(p plotter.XY, _ int) bool {
		return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
	})
}

// WithX replaces the x accessor.
func (l Line[T]) WithX(x func(d T, i int) float64) Line[T] {
	l.x = x
	return l
}

// WithY replaces the y accessor.
func (l Line[T]) WithY(y func(d T, i int) float64) Line[T] {
	l.y = y
	return l
}

// WithDefined replaces the defined accessor.
func (l Line[T]) WithDefined(defined func(d T, i int) bool) Line[T] {
	l.defined = defined
	return l
}

// WithCurve sets the curve interpolating between points.
func (l Line[T]) WithCurve(c Curve) Line[T] {
	l.curve = c
	return l
}

// Curve returns the curve in use.
func (l Line[T]) Curve() Curve { return l.curve }

// Path draws data into a new path. Each maximal run of defined data is
// one segment of the curve.
func (l Line[T]) Path(data []T) *Path {
	ctx := l.curve.Context()
	inside := false
	for i := 0; i <= len(data); i++ {
		var d T
		defined := false
		if i < len(data) {
			d = data[i]
			defined = l.defined(d, i)
		}
		if defined != inside {
			inside = defined
			if inside {
				ctx.LineStart()
			} else {
				ctx.LineEnd()
			}
		}
		if inside {
			ctx.Point(l.x(d, i), l.y(d, i))
		}
	}
	return ctx.Path()
}

// Generate returns the SVG path data of the line through data; it is
// empty if no datum is defined.
func (l Line[T]) Generate(data []T) string {
	return l.Path(data).String()
}
