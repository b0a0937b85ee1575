package scale

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vdobler/plotkit"
	"github.com/vdobler/plotkit/interpolate"
)

// Time is a linear scale over instants. Instants are compared as
// civil times; the default domain is in UTC.
type Time[R any] struct {
	domain plotkit.TimeInterval
	r0, r1 R
	clamp  bool
	interp interpolate.Interpolator[R]
}

// NewTime returns a scale from the first day of 2000 to [0,1].
func NewTime() Time[float64] {
	return NewTimeWith[float64](interpolate.Number{}, 0, 1)
}

// NewTimeWith returns a scale from the first day of 2000 to [r0,r1].
func NewTimeWith[R any](interp interpolate.Interpolator[R], r0, r1 R) Time[R] {
	return Time[R]{
		domain: plotkit.TimeInterval{
			Start: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		r0:     r0,
		r1:     r1,
		interp: interp,
	}
}

// WithDomain sets the domain. start after end fails with
// plotkit.ErrDescendingScale.
func (s Time[R]) WithDomain(start, end time.Time) (Time[R], error) {
	if end.Before(start) {
		return s, errors.Wrapf(plotkit.ErrDescendingScale, "time domain [%s, %s]",
			start.Format(plotkit.DateTimeLayout), end.Format(plotkit.DateTimeLayout))
	}
	s.domain = plotkit.TimeInterval{Start: start, End: end}
	return s, nil
}

// DomainFrom is like WithDomain but parses both ends with
// plotkit.ParseDateTime.
func (s Time[R]) DomainFrom(start, end string) (Time[R], error) {
	t0, err := plotkit.ParseDateTime(start)
	if err != nil {
		return s, err
	}
	t1, err := plotkit.ParseDateTime(end)
	if err != nil {
		return s, err
	}
	return s.WithDomain(t0, t1)
}

func (s Time[R]) WithRange(r0, r1 R) Time[R] {
	s.r0, s.r1 = r0, r1
	return s
}

func (s Time[R]) WithClamp(clamp bool) Time[R] {
	s.clamp = clamp
	return s
}

func (s Time[R]) WithInterpolator(interp interpolate.Interpolator[R]) Time[R] {
	s.interp = interp
	return s
}

func (s Time[R]) Domain() plotkit.TimeInterval { return s.domain }
func (s Time[R]) Range() (R, R)                { return s.r0, s.r1 }
func (s Time[R]) Clamped() bool                { return s.clamp }

// Nice widens the domain to the calendar grid of the tick increment for
// about count ticks. An end already on the grid stays put. Widening can
// coarsen the increment, so this repeats until the domain is stable.
// Weekly increments are not supported and yield an error wrapping
// plotkit.ErrUnimplemented. A count <= 0 means plotkit.DefaultTickCount.
func (s Time[R]) Nice(count int) (Time[R], error) {
	if count <= 0 {
		count = plotkit.DefaultTickCount
	}
	start, end := s.domain.Start, s.domain.End
	for i := 0; i < maxNiceIter; i++ {
		d := plotkit.TimeTickIncrement(start, end, count)
		lo, hi, err := niceTimeBounds(d, start, end)
		if err != nil {
			if i == 0 {
				return s, errors.Wrap(err, "nice time scale")
			}
			break
		}
		if lo.Equal(start) && hi.Equal(end) {
			break
		}
		start, end = lo, hi
	}
	return s.WithDomain(start, end)
}

func niceTimeBounds(d plotkit.Duration, start, end time.Time) (time.Time, time.Time, error) {
	lo, err := d.Floor(start)
	if err != nil {
		return start, end, err
	}
	hi, err := d.Floor(end)
	if err != nil {
		return start, end, err
	}
	if !hi.Equal(end) {
		if hi, err = d.Ceil(end); err != nil {
			return start, end, err
		}
	}
	return lo, hi, nil
}

// Scale maps t to the range by its offset from the domain start.
func (s Time[R]) Scale(t time.Time) R {
	if s.clamp {
		if t.Before(s.domain.Start) {
			t = s.domain.Start
		} else if t.After(s.domain.End) {
			t = s.domain.End
		}
	}
	pos := float64(t.Sub(s.domain.Start)) / float64(s.domain.Duration())
	return s.interp.Interpolate(s.r0, s.r1, pos)
}

// Ticks returns about count instants inside the domain, starting at the
// domain start. A count <= 0 means plotkit.DefaultTickCount.
func (s Time[R]) Ticks(count int) []time.Time {
	if count <= 0 {
		count = plotkit.DefaultTickCount
	}
	return plotkit.TimeTicks(s.domain.Start, s.domain.End, count)
}

// TickIncrement returns the calendar step used by Ticks and Nice.
func (s Time[R]) TickIncrement(count int) plotkit.Duration {
	if count <= 0 {
		count = plotkit.DefaultTickCount
	}
	return plotkit.TimeTickIncrement(s.domain.Start, s.domain.End, count)
}
