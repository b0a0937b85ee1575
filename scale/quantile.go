package scale

import (
	"math"
	"sort"

	"github.com/vdobler/plotkit/data"
)

// Quantile maps a sample distribution onto a discrete range: with n
// range values the domain is split at its n-1 inner quantiles.
type Quantile[R any] struct {
	domain     []float64
	rng        []R
	thresholds []float64
}

// NewQuantile returns a quantile scale with empty domain and range.
func NewQuantile[R any]() Quantile[R] {
	return Quantile[R]{}
}

// WithDomain sets the sample. NaN values are dropped, the rest sorted.
func (s Quantile[R]) WithDomain(values ...float64) Quantile[R] {
	s.domain = make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			s.domain = append(s.domain, v)
		}
	}
	sort.Float64s(s.domain)
	return s.rescale()
}

func (s Quantile[R]) WithRange(values ...R) Quantile[R] {
	s.rng = append([]R(nil), values...)
	return s.rescale()
}

func (s Quantile[R]) rescale() Quantile[R] {
	n := max(1, len(s.rng))
	s.thresholds = make([]float64, n-1)
	for i := range s.thresholds {
		s.thresholds[i] = data.QuantileSorted(s.domain, float64(i+1)/float64(n))
	}
	return s
}

func (s Quantile[R]) Domain() []float64 { return append([]float64(nil), s.domain...) }
func (s Quantile[R]) Range() []R        { return append([]R(nil), s.rng...) }

// Thresholds returns the R-7 quantiles separating the range values.
func (s Quantile[R]) Thresholds() []float64 { return append([]float64(nil), s.thresholds...) }

// Scale returns the range value of the quantile containing x. The
// boolean is false for NaN, an empty domain or an empty range.
func (s Quantile[R]) Scale(x float64) (R, bool) {
	var zero R
	if math.IsNaN(x) || len(s.domain) == 0 || len(s.rng) == 0 {
		return zero, false
	}
	i := sort.Search(len(s.thresholds), func(k int) bool { return s.thresholds[k] > x })
	return s.rng[i], true
}
