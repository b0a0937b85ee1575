package plotkit

import (
	"math"
	"time"
)

// tickLadder lists the candidate time tick intervals, shortest first.
var tickLadder = []Duration{
	Seconds(1), Seconds(5), Seconds(15), Seconds(30),
	Minutes(1), Minutes(5), Minutes(15), Minutes(30),
	Hours(1), Hours(3), Hours(6), Hours(12),
	Days(1), Days(2),
	Weeks(1),
	Months(1), Months(3),
	Years(1),
}

// TimeTickIncrement selects the tick interval for about count ticks
// between start and end: the shortest ladder entry not shorter than
// the span divided by count. Spans needing more than a year per tick
// use a multi-year interval derived by TickStep on the year count.
func TimeTickIncrement(start, end time.Time, count int) Duration {
	span := math.Abs(end.Sub(start).Seconds())
	target := span / math.Max(0, float64(count))

	for _, d := range tickLadder {
		if d.Approx() >= target {
			return d
		}
	}

	years := math.Floor(span / Years(1).Approx())
	step := TickStep(0, years, count)
	if !(step >= 1) {
		step = 1
	}
	return Years(int(step))
}

// TimeTicks returns the instants start, start+d, start+2d, ... up to
// and including end, with d = TimeTickIncrement(start, end, count).
func TimeTicks(start, end time.Time, count int) []time.Time {
	if count <= 0 || end.Before(start) {
		return []time.Time{}
	}
	if end.Equal(start) {
		return []time.Time{start}
	}

	d := TimeTickIncrement(start, end, count)
	var ticks []time.Time
	for k := 0; ; k++ {
		t := d.AddTo(start, k)
		if t.After(end) {
			break
		}
		ticks = append(ticks, t)
	}
	return ticks
}
