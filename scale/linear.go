// Package scale maps abstract data (numbers, instants or categories) to
// visual values like positions or colors.
//
// Continuous scales (Linear, Log and Time) are immutable values: every
// configuration method returns a modified copy. They are generic in the
// range type R; the conversion from a normalized position in [0,1] to
// R is done by an interpolate.Interpolator[R].
//
// Discrete scales (Band, Ordinal and Quantile) report unknown input
// through a second boolean result instead of panicking.
//
// The package also adapts the scales to gonum/plot: see Axis and the
// Ticker and Normalizer implementations.
package scale

import (
	"math"

	"github.com/pkg/errors"
	"github.com/vdobler/plotkit"
	"github.com/vdobler/plotkit/colors"
	"github.com/vdobler/plotkit/interpolate"
)

// Linear maps a real domain linearly onto a range.
type Linear[R any] struct {
	domain plotkit.Interval
	r0, r1 R
	clamp  bool
	interp interpolate.Interpolator[R]
}

// NewLinear returns the identity scale on [0,1].
func NewLinear() Linear[float64] {
	return NewLinearWith[float64](interpolate.Number{}, 0, 1)
}

// NewLinearHSL returns a color scale from red to blue over [0,1].
func NewLinearHSL() Linear[colors.HSL] {
	return NewLinearWith[colors.HSL](interpolate.HSL{},
		colors.HSL{H: 0, S: 1, L: 0.5},
		colors.HSL{H: 240, S: 1, L: 0.5})
}

// NewLinearWith returns a scale from the domain [0,1] to [r0,r1] using
// the given interpolator.
func NewLinearWith[R any](interp interpolate.Interpolator[R], r0, r1 R) Linear[R] {
	return Linear[R]{
		domain: plotkit.Interval{Start: 0, End: 1},
		r0:     r0,
		r1:     r1,
		interp: interp,
	}
}

// WithDomain sets the domain to [start, end]. A descending domain
// is rejected with plotkit.ErrDescendingScale.
func (s Linear[R]) WithDomain(start, end float64) (Linear[R], error) {
	if start > end {
		return s, errors.Wrapf(plotkit.ErrDescendingScale, "linear domain [%g, %g]", start, end)
	}
	s.domain = plotkit.Interval{Start: start, End: end}
	return s, nil
}

// WithRange sets the output range. Descending ranges are fine.
func (s Linear[R]) WithRange(r0, r1 R) Linear[R] {
	s.r0, s.r1 = r0, r1
	return s
}

// WithClamp turns clamping of input values to the domain on or off.
func (s Linear[R]) WithClamp(clamp bool) Linear[R] {
	s.clamp = clamp
	return s
}

// WithInterpolator replaces the interpolator.
func (s Linear[R]) WithInterpolator(interp interpolate.Interpolator[R]) Linear[R] {
	s.interp = interp
	return s
}

func (s Linear[R]) Domain() plotkit.Interval { return s.domain }
func (s Linear[R]) Range() (R, R)            { return s.r0, s.r1 }
func (s Linear[R]) Clamped() bool            { return s.clamp }

// maxNiceIter bounds the widening passes of Nice.
const maxNiceIter = 10

// Nice extends the domain outwards to multiples of the tick increment
// for about count ticks so that the domain starts and ends on a tick.
// Widening may change the increment, so the bounds are recomputed until
// the increment repeats. A count <= 0 means plotkit.DefaultTickCount.
// A degenerate domain, or one that does not settle, is left untouched.
func (s Linear[R]) Nice(count int) (Linear[R], error) {
	if count <= 0 {
		count = plotkit.DefaultTickCount
	}
	start, stop := s.domain.Start, s.domain.End
	prestep := math.NaN()
	for i := 0; i < maxNiceIter; i++ {
		step := plotkit.TickIncrement(start, stop, count)
		if step == prestep {
			return s.WithDomain(start, stop)
		}
		if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
			break
		}
		start, stop = niceBounds(start, stop, step)
		prestep = step
	}
	return s, nil
}

func niceBounds(start, stop, step float64) (float64, float64) {
	switch {
	case step > 0:
		return math.Floor(start/step) * step, math.Ceil(stop/step) * step
	case step < 0:
		return math.Ceil(start*step) / step, math.Floor(stop*step) / step
	}
	return start, stop
}

// Scale maps x from the domain to the range.
func (s Linear[R]) Scale(x float64) R {
	d, r0, r1 := s.domain, s.r0, s.r1
	if d.Descending() {
		d, r0, r1 = d.Reversed(), r1, r0
	}
	if s.clamp {
		x = math.Max(d.Start, math.Min(d.End, x))
	}
	return s.interp.Interpolate(r0, r1, (x-d.Start)/d.Span())
}

// Ticks returns about count nice values inside the domain.
// A count <= 0 means plotkit.DefaultTickCount.
func (s Linear[R]) Ticks(count int) []float64 {
	if count <= 0 {
		count = plotkit.DefaultTickCount
	}
	return plotkit.Ticks(s.domain.Start, s.domain.End, count)
}
