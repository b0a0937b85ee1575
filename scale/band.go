package scale

import (
	"math"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/vdobler/plotkit"
)

// Band divides a continuous range into uniform bands, one per domain
// value, e.g. for the bars of a bar chart.
type Band[D comparable] struct {
	domain []D
	index  map[D]int
	rng    plotkit.Interval

	paddingInner, paddingOuter, align float64

	step, bandwidth float64
	values          []float64
}

// NewBand returns a band scale with empty domain, range [0,1], no
// padding and centered alignment.
func NewBand[D comparable]() Band[D] {
	return Band[D]{
		rng:   plotkit.Interval{Start: 0, End: 1},
		align: 0.5,
		index: map[D]int{},
	}.rescale()
}

// WithDomain sets the domain. Duplicates are dropped; the first
// occurrence determines the order.
func (s Band[D]) WithDomain(values ...D) Band[D] {
	s.domain, s.index = dedupe(values)
	return s.rescale()
}

// WithRange sets the output interval; descending intervals yield
// bands in reverse order.
func (s Band[D]) WithRange(start, end float64) Band[D] {
	s.rng = plotkit.Interval{Start: start, End: end}
	return s.rescale()
}

// WithPadding adds p to the outer padding.
func (s Band[D]) WithPadding(p float64) Band[D] {
	s.paddingOuter += p
	return s.rescale()
}

// WithPaddingInner sets the gap between bands as a fraction of the
// step, clamped to [0,1].
func (s Band[D]) WithPaddingInner(p float64) Band[D] {
	s.paddingInner = math.Max(0, math.Min(1, p))
	return s.rescale()
}

// WithPaddingOuter sets the space before the first and after the last
// band in multiples of the step.
func (s Band[D]) WithPaddingOuter(p float64) Band[D] {
	s.paddingOuter = p
	return s.rescale()
}

// WithAlign distributes the outer space: 0 puts it all at the end,
// 1 all at the start. Values are clamped to [0,1].
func (s Band[D]) WithAlign(a float64) Band[D] {
	s.align = math.Max(0, math.Min(1, a))
	return s.rescale()
}

func (s Band[D]) rescale() Band[D] {
	n := float64(len(s.domain))
	r := s.rng
	reverse := r.Descending()
	if reverse {
		r = r.Reversed()
	}

	s.step = r.Span() / math.Max(1, n-s.paddingInner+2*s.paddingOuter)
	start := r.Start + (r.Span()-s.step*(n-s.paddingInner))*s.align
	s.bandwidth = s.step * (1 - s.paddingInner)

	s.values = make([]float64, len(s.domain))
	for i := range s.values {
		s.values[i] = start + s.step*float64(i)
	}
	if reverse {
		for i, j := 0, len(s.values)-1; i < j; i, j = i+1, j-1 {
			s.values[i], s.values[j] = s.values[j], s.values[i]
		}
	}
	return s
}

// Scale returns the start of the band of v. The boolean is false if v
// is not part of the domain.
func (s Band[D]) Scale(v D) (float64, bool) {
	i, ok := s.index[v]
	if !ok {
		return math.NaN(), false
	}
	return s.values[i], true
}

// Domain returns a copy of the domain values.
func (s Band[D]) Domain() []D { return append([]D(nil), s.domain...) }

func (s Band[D]) Range() plotkit.Interval { return s.rng }

// Step is the distance between the starts of adjacent bands.
func (s Band[D]) Step() float64 { return s.step }

// Bandwidth is the width of each band.
func (s Band[D]) Bandwidth() float64 { return s.bandwidth }

// Values returns the band starts in domain order.
func (s Band[D]) Values() []float64 { return append([]float64(nil), s.values...) }

// dedupe drops repeated values keeping first occurrences and indexes
// the result.
func dedupe[D comparable](values []D) ([]D, map[D]int) {
	seen := mapset.NewThreadUnsafeSet[D]()
	unique := make([]D, 0, len(values))
	index := make(map[D]int, len(values))
	for _, v := range values {
		if seen.Add(v) {
			index[v] = len(unique)
			unique = append(unique, v)
		}
	}
	return unique, index
}
