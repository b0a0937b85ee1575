package shape

import (
	"math"

	"github.com/vdobler/plotkit"
)

// An Offset positions stacked series. Its argument holds the running
// sums of every series, indexed [series][row]; it returns the extent
// of every series at every row.
type Offset func(sums [][]float64) [][]plotkit.Interval

// OffsetNone stacks series on a zero baseline.
func OffsetNone(sums [][]float64) [][]plotkit.Interval {
	out := make([][]plotkit.Interval, len(sums))
	for i, series := range sums {
		out[i] = make([]plotkit.Interval, len(series))
		for j, v := range series {
			start := 0.0
			if i > 0 {
				start = sums[i-1][j]
			}
			out[i][j] = plotkit.Interval{Start: start, End: v}
		}
	}
	return out
}

// OffsetExpand stacks series on a zero baseline and normalizes each row
// so the topmost series ends at 1. A NaN sum in the series below is
// skipped in favour of the one below that.
func OffsetExpand(sums [][]float64) [][]plotkit.Interval {
	out := make([][]plotkit.Interval, len(sums))
	if len(sums) == 0 {
		return out
	}
	top := sums[len(sums)-1]
	for i, series := range sums {
		out[i] = make([]plotkit.Interval, len(series))
		for j, v := range series {
			start := 0.0
			if i > 0 {
				start = sums[i-1][j]
				if math.IsNaN(start) {
					start = 0
					if i > 1 {
						start = sums[i-2][j]
					}
				}
			}
			max := top[j]
			out[i][j] = plotkit.Interval{Start: start / max, End: v / max}
		}
	}
	return out
}

// Stack lays out rows of values, one value per series, as stacked
// series. The result is indexed [series][row]. The number of series is
// taken from the first row; missing values count as zero. A nil offset
// means OffsetNone.
func Stack(rows [][]float64, offset Offset) [][]plotkit.Interval {
	if len(rows) == 0 {
		return nil
	}
	if offset == nil {
		offset = OffsetNone
	}
	n := len(rows[0])
	sums := make([][]float64, n)
	for j := range sums {
		sums[j] = make([]float64, len(rows))
	}
	for i, row := range rows {
		last := 0.0
		for j := 0; j < n; j++ {
			v := 0.0
			if j < len(row) {
				v = row[j]
			}
			last += v
			sums[j][i] = last
		}
	}
	return offset(sums)
}
