// Package interpolate maps a normalized parameter t in [0,1] onto a
// range given by two endpoints. Values of t outside [0,1] extrapolate.
package interpolate

import (
	"math"

	"github.com/vdobler/plotkit/colors"
)

// An Interpolator computes the value at t between start (t=0) and
// end (t=1).
type Interpolator[T any] interface {
	Interpolate(start, end T, t float64) T
}

// Number interpolates linearly between two reals.
type Number struct{}

func (Number) Interpolate(start, end, t float64) float64 {
	return start*(1-t) + end*t
}

// Round is like Number but rounds the result to the nearest integer.
type Round struct{}

func (Round) Interpolate(start, end, t float64) float64 {
	return math.Round(start*(1-t) + end*t)
}

// HSL interpolates colors in HSL space taking the shorter way round
// the hue circle.
type HSL struct{}

func (HSL) Interpolate(start, end colors.HSL, t float64) colors.HSL {
	d := end.H - start.H
	if d > 180 || d < -180 {
		d -= 360 * math.Round(d/360)
	}
	h := start.H + t*d
	if h < 0 {
		h += 360
	}
	return colors.HSL{
		H: h,
		S: start.S + t*(end.S-start.S),
		L: start.L + t*(end.L-start.L),
	}
}

// Piecewise returns a function interpolating through all values which
// are placed at equal distances in [0,1]. At least two values are needed.
func Piecewise[T any](interp Interpolator[T], values ...T) func(t float64) T {
	if len(values) < 2 {
		panic("interpolate: Piecewise needs at least two values")
	}
	n := len(values) - 1
	return func(t float64) T {
		t *= float64(n)
		i := int(math.Floor(t))
		if i < 0 {
			i = 0
		} else if i > n-1 {
			i = n - 1
		}
		return interp.Interpolate(values[i], values[i+1], t-float64(i))
	}
}
