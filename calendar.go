package plotkit

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// ----------------------------------------------------------------------------
// Unit

// Unit is the calendar unit of a Duration.
type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

// String returns the short symbol of u.
func (u Unit) String() string {
	return []string{"ms", "s", "m", "h", "d", "w", "mo", "y"}[int(u)]
}

// seconds is the approximate length of one u in seconds. A month
// counts 30 days and a year 365 days.
func (u Unit) seconds() float64 {
	switch u {
	case Millisecond:
		return 0.001
	case Second:
		return 1
	case Minute:
		return 60
	case Hour:
		return 3600
	case Day:
		return 86400
	case Week:
		return 7 * 86400
	case Month:
		return 30 * 86400
	case Year:
		return 365 * 86400
	default:
		panic(u)
	}
}

// ----------------------------------------------------------------------------
// Duration

// Duration is a calendar aware duration of N units, e.g. 3 months.
// Unlike time.Duration a month or a year has no fixed length: adding
// them honours the calendar. Durations are totally ordered by their
// approximate length in seconds.
type Duration struct {
	Unit Unit
	N    int
}

func Milliseconds(n int) Duration { return Duration{Millisecond, n} }
func Seconds(n int) Duration      { return Duration{Second, n} }
func Minutes(n int) Duration      { return Duration{Minute, n} }
func Hours(n int) Duration        { return Duration{Hour, n} }
func Days(n int) Duration         { return Duration{Day, n} }
func Weeks(n int) Duration        { return Duration{Week, n} }
func Months(n int) Duration       { return Duration{Month, n} }
func Years(n int) Duration        { return Duration{Year, n} }

func (d Duration) String() string { return fmt.Sprintf("%d%s", d.N, d.Unit) }

// Approx returns the approximate length of d in seconds.
func (d Duration) Approx() float64 { return float64(d.N) * d.Unit.seconds() }

// Compare returns -1, 0 or +1 depending on whether d is shorter than,
// as long as or longer than e.
func (d Duration) Compare(e Duration) int {
	a, b := d.Approx(), e.Approx()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Less reports whether d is shorter than e.
func (d Duration) Less(e Duration) bool { return d.Compare(e) < 0 }

// AddTo returns t plus k times d. Adding months or years keeps the
// day of month if possible and clamps it to the last day of the target
// month otherwise.
func (d Duration) AddTo(t time.Time, k int) time.Time {
	n := k * d.N
	switch d.Unit {
	case Millisecond:
		return t.Add(time.Duration(n) * time.Millisecond)
	case Second:
		return t.Add(time.Duration(n) * time.Second)
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return addMonths(t, n)
	case Year:
		return addMonths(t, 12*n)
	default:
		panic(d.Unit)
	}
}

func addMonths(t time.Time, n int) time.Time {
	y, m, day := t.Date()
	// First of the target month, normalised by time.Date.
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(first.Year(), first.Month(), day, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Floor aligns t downwards to the calendar grid of d: Hours(3) floors
// to 00:00, 03:00, 06:00 and so on of the same day, Months(3) to the
// first of January, April, July and October. Weeks are not supported.
func (d Duration) Floor(t time.Time) (time.Time, error) {
	if d.N <= 0 {
		return t, errors.Errorf("cannot floor to non-positive duration %s", d)
	}

	loc := t.Location()
	y, mon, day := t.Date()
	hh, mm, ss := t.Clock()
	switch d.Unit {
	case Millisecond:
		ms := t.UnixMilli()
		return time.UnixMilli(ms - floorMod(ms, int64(d.N))).In(loc), nil
	case Second:
		return time.Date(y, mon, day, hh, mm, ss-ss%d.N, 0, loc), nil
	case Minute:
		return time.Date(y, mon, day, hh, mm-mm%d.N, 0, 0, loc), nil
	case Hour:
		return time.Date(y, mon, day, hh-hh%d.N, 0, 0, 0, loc), nil
	case Day:
		yday := t.YearDay() - 1
		return time.Date(y, time.January, 1+yday-yday%d.N, 0, 0, 0, 0, loc), nil
	case Week:
		return t, errors.Wrapf(ErrUnimplemented, "floor to %s", d)
	case Month:
		m0 := int(mon) - 1
		return time.Date(y, time.Month(1+m0-m0%d.N), 1, 0, 0, 0, 0, loc), nil
	case Year:
		return time.Date(y-int(floorMod(int64(y), int64(d.N))), time.January, 1, 0, 0, 0, 0, loc), nil
	}
	panic(d.Unit)
}

// Ceil returns Floor(t) advanced by d.
func (d Duration) Ceil(t time.Time) (time.Time, error) {
	f, err := d.Floor(t)
	if err != nil {
		return t, err
	}
	return d.AddTo(f, 1), nil
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
