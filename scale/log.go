package scale

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vdobler/plotkit"
	"github.com/vdobler/plotkit/interpolate"
)

// Log is a logarithmic scale: y = m·log(x) + b. The domain must be
// strictly positive or strictly negative. A negative domain behaves
// like the mirrored positive one. Descending domains are allowed.
type Log[R any] struct {
	domain plotkit.Interval
	r0, r1 R
	clamp  bool
	base   float64
	interp interpolate.Interpolator[R]
}

// NewLog returns a base 10 scale from [1,10] to [0,1].
func NewLog() Log[float64] {
	return NewLogWith[float64](interpolate.Number{}, 0, 1)
}

// NewLogWith returns a base 10 scale from [1,10] to [r0,r1].
func NewLogWith[R any](interp interpolate.Interpolator[R], r0, r1 R) Log[R] {
	return Log[R]{
		domain: plotkit.Interval{Start: 1, End: 10},
		r0:     r0,
		r1:     r1,
		base:   10,
		interp: interp,
	}
}

// WithDomain sets the domain. Domains touching or crossing zero fail
// with plotkit.ErrDegenerateDomain.
func (s Log[R]) WithDomain(start, end float64) (Log[R], error) {
	if !(start > 0 && end > 0) && !(start < 0 && end < 0) {
		return s, errors.Wrapf(plotkit.ErrDegenerateDomain, "log domain [%g, %g]", start, end)
	}
	s.domain = plotkit.Interval{Start: start, End: end}
	return s, nil
}

func (s Log[R]) WithRange(r0, r1 R) Log[R] {
	s.r0, s.r1 = r0, r1
	return s
}

func (s Log[R]) WithClamp(clamp bool) Log[R] {
	s.clamp = clamp
	return s
}

func (s Log[R]) WithInterpolator(interp interpolate.Interpolator[R]) Log[R] {
	s.interp = interp
	return s
}

// WithBase sets the logarithm base used for ticks and tick labels.
// The mapping itself does not depend on the base.
func (s Log[R]) WithBase(base float64) Log[R] {
	s.base = base
	return s
}

func (s Log[R]) Domain() plotkit.Interval { return s.domain }
func (s Log[R]) Range() (R, R)            { return s.r0, s.r1 }
func (s Log[R]) Clamped() bool            { return s.clamp }
func (s Log[R]) Base() float64            { return s.base }

// Nice is not available for log scales; it returns s unchanged and
// an error wrapping plotkit.ErrUnimplemented.
func (s Log[R]) Nice(count int) (Log[R], error) {
	return s, errors.Wrap(plotkit.ErrUnimplemented, "nice log scale")
}

// negative reports whether the domain lies below zero.
func (s Log[R]) negative() bool { return s.domain.Start < 0 }

// logb is the base b logarithm mirrored for negative domains.
func (s Log[R]) logb(x, b float64) float64 {
	if s.negative() {
		return -math.Log(-x) / math.Log(b)
	}
	return math.Log(x) / math.Log(b)
}

// powb inverts logb.
func (s Log[R]) powb(y, b float64) float64 {
	if s.negative() {
		return -math.Pow(b, -y)
	}
	return math.Pow(b, y)
}

// Scale maps x to the range. Values on the wrong side of zero yield
// NaN positions unless clamped.
func (s Log[R]) Scale(x float64) R {
	d, r0, r1 := s.domain, s.r0, s.r1
	if d.Descending() {
		d, r0, r1 = d.Reversed(), r1, r0
	}
	if s.clamp {
		x = math.Max(d.Start, math.Min(d.End, x))
	}
	l0, l1 := s.logb(d.Start, math.E), s.logb(d.End, math.E)
	return s.interp.Interpolate(r0, r1, (s.logb(x, math.E)-l0)/(l1-l0))
}

// Ticks returns tick values inside the domain. For integer bases the
// ticks are k·base^i for k = 1..base-1 as long as the domain spans
// fewer than count powers; wider domains and non-integer bases get at
// most one tick per power. Very narrow domains fall back to linear
// ticks. The ticks follow the direction of the domain. A count <= 0
// means plotkit.DefaultTickCount.
func (s Log[R]) Ticks(count int) []float64 {
	if count <= 0 {
		count = plotkit.DefaultTickCount
	}
	d := s.domain.Sorted()
	l0, l1 := s.logb(d.Start, s.base), s.logb(d.End, s.base)
	span := l1 - l0

	var z []float64
	switch {
	case math.Mod(s.base, 1) == 0 && span < float64(count):
		z = s.powerTicks(d, l0, l1)
		if 2*len(z) < count {
			z = plotkit.Ticks(d.Start, d.End, count)
		}
	case math.Mod(s.base, 1) == 0:
		z = s.expTicks(l0, l1, int(math.Min(span, float64(count))))
	default:
		z = s.expTicks(l0, l1, int(math.Floor(math.Min(span, float64(count)))))
		if len(z) == 0 {
			z = plotkit.Ticks(d.Start, d.End, count)
		}
	}

	if s.domain.Descending() {
		for i, j := 0, len(z)-1; i < j; i, j = i+1, j-1 {
			z[i], z[j] = z[j], z[i]
		}
	}
	return z
}

// powerTicks enumerates k·base^i inside the sorted domain d.
func (s Log[R]) powerTicks(d plotkit.Interval, l0, l1 float64) []float64 {
	z := []float64{}
	b := int(s.base)
	lo, hi := int(math.Floor(l0)), int(math.Ceil(l1))
	if !s.negative() {
		for i := lo; i <= hi; i++ {
			p := math.Pow(s.base, float64(i))
			for k := 1; k < b; k++ {
				t := p * float64(k)
				if t < d.Start {
					continue
				}
				if t > d.End {
					break
				}
				z = append(z, t)
			}
		}
		return z
	}
	for i := lo; i <= hi; i++ {
		p := -math.Pow(s.base, float64(-i))
		for k := b - 1; k >= 1; k-- {
			t := p * float64(k)
			if t < d.Start {
				continue
			}
			if t > d.End {
				break
			}
			z = append(z, t)
		}
	}
	return z
}

// expTicks places linear ticks in log space and maps them back.
func (s Log[R]) expTicks(l0, l1 float64, count int) []float64 {
	exps := plotkit.Ticks(l0, l1, count)
	z := make([]float64, len(exps))
	for i, e := range exps {
		z[i] = s.powb(e, s.base)
	}
	return z
}

// TickFormat returns a label function for the ticks of s that blanks
// the labels of minor ticks if there are many more ticks than count.
// Base 10 labels use exponent notation, other bases plain numbers.
// A count <= 0 means plotkit.DefaultTickCount.
func (s Log[R]) TickFormat(count int) func(float64) string {
	if count <= 0 {
		count = plotkit.DefaultTickCount
	}
	base := s.base
	n := len(s.Ticks(0))
	k := math.Max(1, base*float64(count)/float64(n))
	return func(d float64) string {
		i := d / math.Pow(base, math.Round(math.Log(d)/math.Log(base)))
		if i*base < base-0.5 {
			i *= base
		}
		if !(i <= k) {
			return ""
		}
		if base == 10 {
			return strconv.FormatFloat(d, 'e', 0, 64)
		}
		return strconv.FormatFloat(d, 'f', -1, 64)
	}
}
