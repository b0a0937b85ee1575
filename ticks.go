package plotkit

import "math"

// DefaultTickCount is the tick count used by nice and ticks if the
// caller has no preference.
const DefaultTickCount = 10

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// TickStep returns a nice step of the form 1, 2 or 5 times a power of
// ten approximating |stop-start|/count. The step is negative if stop < start.
func TickStep(start, stop float64, count int) float64 {
	step0 := math.Abs(stop-start) / math.Max(0, float64(count))
	step1 := math.Pow(10, math.Floor(math.Log(step0)/math.Ln10))
	step1 *= multiplier(step0 / step1)
	if stop < start {
		return -step1
	}
	return step1
}

// TickIncrement is like TickStep but encodes steps below one as their
// negative inverse: -10 means a step of 1/10. Dividing by the increment
// (or multiplying by its inverse) keeps tick values exact for small
// spans. A non-finite raw step is returned as is; a zero span yields 0.
func TickIncrement(start, stop float64, count int) float64 {
	step := math.Abs(stop-start) / math.Max(0, float64(count))
	if math.IsInf(step, 0) || math.IsNaN(step) {
		return step
	}
	if step == 0 {
		return 0
	}
	power := math.Floor(math.Log(step) / math.Ln10)
	mult := multiplier(step / math.Pow(10, power))
	if power >= 0 {
		return mult * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / mult
}

func multiplier(err float64) float64 {
	switch {
	case err >= e10:
		return 10
	case err >= e5:
		return 5
	case err >= e2:
		return 2
	}
	return 1
}

// Ticks returns about count nice values covering [start, stop]. The
// ticks are ascending for start < stop and descending otherwise. The
// first and last tick never lie outside the interval.
func Ticks(start, stop float64, count int) []float64 {
	if start == stop && count > 0 {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	step := TickIncrement(start, stop, count)
	if step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return []float64{}
	}

	var ticks []float64
	if step > 0 {
		lo, hi := math.Ceil(start/step), math.Floor(stop/step)
		n := int(math.Ceil(hi - lo + 1))
		ticks = make([]float64, 0, max(n, 0))
		for i := 0; i < n; i++ {
			ticks = append(ticks, (lo+float64(i))*step)
		}
	} else {
		lo, hi := math.Floor(start*step), math.Ceil(stop*step)
		n := int(math.Ceil(lo - hi + 1))
		ticks = make([]float64, 0, max(n, 0))
		for i := 0; i < n; i++ {
			ticks = append(ticks, (lo-float64(i))/step)
		}
	}

	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}
