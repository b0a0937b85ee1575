package plotkit

import (
	"fmt"
	"math"
	"time"
)

// ----------------------------------------------------------------------------
// Interval

// Interval is an ordered pair of reals. It need not be ascending: a
// descending interval (Start > End) is valid and describes a reversed
// scale.
type Interval struct {
	Start, End float64
}

// UnsetInterval returns the interval [NaN,NaN] which covers nothing.
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Descending reports whether i runs from a larger to a smaller value.
func (i Interval) Descending() bool { return i.End < i.Start }

// Span is End-Start and negative for descending intervals.
func (i Interval) Span() float64 { return i.End - i.Start }

// Lo returns the smaller edge of i.
func (i Interval) Lo() float64 { return math.Min(i.Start, i.End) }

// Hi returns the larger edge of i.
func (i Interval) Hi() float64 { return math.Max(i.Start, i.End) }

// Sorted returns i with ascending edges.
func (i Interval) Sorted() Interval {
	if i.Descending() {
		return Interval{i.End, i.Start}
	}
	return i
}

// Reversed swaps the edges of i.
func (i Interval) Reversed() Interval { return Interval{i.End, i.Start} }

// Contains reports whether x lies in the closed interval i, regardless
// of its direction.
func (i Interval) Contains(x float64) bool {
	return x >= i.Lo() && x <= i.Hi()
}

// Update expands i to include x. NaN values are ignored and an unset
// interval becomes [x,x].
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Start <= v) {
			i.Start = v
		}
		if !(i.End >= v) {
			i.End = v
		}
	}
}

// Equal compares two intervals; NaN edges compare equal to NaN.
func (i Interval) Equal(j Interval) bool {
	return same(i.Start, j.Start) && same(i.End, j.End)
}

func same(a, b float64) bool {
	if math.IsNaN(a) {
		return math.IsNaN(b)
	}
	return a == b
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Start, i.End)
}

// ----------------------------------------------------------------------------
// TimeInterval

// TimeInterval is the civil time analog of Interval.
type TimeInterval struct {
	Start, End time.Time
}

// Descending reports whether End is before Start.
func (i TimeInterval) Descending() bool { return i.End.Before(i.Start) }

// Duration is End-Start.
func (i TimeInterval) Duration() time.Duration { return i.End.Sub(i.Start) }

func (i TimeInterval) String() string {
	return fmt.Sprintf("[%s:%s]", i.Start.Format(DateTimeLayout), i.End.Format(DateTimeLayout))
}
