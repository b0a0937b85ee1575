package data

import (
	"math"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Quantile returns the p-quantile of values using the R-7 method
// (linear interpolation between closest ranks). NaN values are ignored;
// NaN is returned if nothing remains. values is not modified.
func Quantile(values []float64, p float64) float64 {
	work := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			work = append(work, v)
		}
	}
	sort.Float64s(work)
	return QuantileSorted(work, p)
}

// QuantileSorted is like Quantile but requires sorted input without NaN.
func QuantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	switch {
	case n == 0:
		return math.NaN()
	case p <= 0 || n < 2:
		return sorted[0]
	case p >= 1:
		return sorted[n-1]
	}
	i := float64(n-1) * p
	i0 := math.Floor(i)
	v0, v1 := sorted[int(i0)], sorted[int(i0)+1]
	return v0 + (v1-v0)*(i-i0)
}

// Sturges returns the number of histogram bins suggested by Sturges'
// formula ceil(log2(n))+1 where n counts the distinct non-NaN values.
func Sturges(values []float64) int {
	distinct := mapset.NewThreadUnsafeSet[float64]()
	for _, v := range values {
		if !math.IsNaN(v) {
			distinct.Add(v)
		}
	}
	n := distinct.Cardinality()
	if n == 0 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}
