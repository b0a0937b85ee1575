package data

import (
	"math"
	"sort"

	"github.com/vdobler/plotkit"
)

// Bin is one bucket of a histogram. Range is half open [Start, End)
// except for the last bin which includes its End.
type Bin[T any] struct {
	Range  plotkit.Interval
	Values []T
}

// Len returns the number of values in b.
func (b Bin[T]) Len() int { return len(b.Values) }

// Histogram groups data into consecutive, non-overlapping bins.
type Histogram[T any] struct {
	// Domain restricts binning to this interval. Values outside are
	// dropped. If nil the extent of the data is used.
	Domain *plotkit.Interval

	// Thresholds are the inner bin boundaries. If nil they are derived
	// from Sturges' formula as uniformly spaced nice values.
	Thresholds []float64
}

// Bins sorts data into bins; value extracts the binned quantity of a
// datum. Data is kept in input order inside each bin.
func (h Histogram[T]) Bins(data []T, value func(T) float64) []Bin[T] {
	values := make([]float64, len(data))
	for i, d := range data {
		values[i] = value(d)
	}

	var domain plotkit.Interval
	if h.Domain != nil {
		domain = h.Domain.Sorted()
	} else {
		var ok bool
		if domain, ok = Extent(values); !ok {
			return nil
		}
	}

	thresholds := h.Thresholds
	if thresholds == nil {
		thresholds = uniformThresholds(domain, Sturges(values))
	}

	bins := make([]Bin[T], len(thresholds)+1)
	lower := domain.Start
	for i, t := range thresholds {
		bins[i].Range = plotkit.Interval{Start: lower, End: t}
		lower = t
	}
	bins[len(thresholds)].Range = plotkit.Interval{Start: lower, End: domain.End}

	for i, v := range values {
		if !(domain.Start <= v && v <= domain.End) {
			continue
		}
		j := sort.Search(len(thresholds), func(k int) bool { return thresholds[k] > v })
		bins[j].Values = append(bins[j].Values, data[i])
	}
	return bins
}

// uniformThresholds splits domain into about count nice steps and
// returns the boundaries strictly above the first multiple of the step.
func uniformThresholds(domain plotkit.Interval, count int) []float64 {
	step := plotkit.TickStep(domain.Start, domain.End, count)
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return []float64{}
	}
	lower := math.Ceil(domain.Start/step) * step
	upper := domain.End
	n := int(math.Ceil((upper - lower) / step))
	thresholds := []float64{}
	for i := 0; i < n; i++ {
		t := lower + float64(i)*step
		if t > lower && t <= upper {
			thresholds = append(thresholds, t)
		}
	}
	return thresholds
}
