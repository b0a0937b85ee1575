package scale

import (
	"math"
	"time"

	"github.com/vdobler/plotkit"
	"gonum.org/v1/plot"
)

// An Axis bundles how a gonum/plot axis maps data to [0,1] with how it
// places and labels ticks. Nice, if non-nil, widens a data range to
// round values before the axis is drawn.
type Axis struct {
	Name       string
	Normalizer plot.Normalizer
	Ticker     plot.Ticker
	Nice       func(r plotkit.Interval) (plotkit.Interval, error)
}

// LinearAxis is a linear axis with about count ticks.
func LinearAxis(count int) Axis {
	return Axis{
		Name:       "Linear",
		Normalizer: LinearNormalizer{},
		Ticker:     LinearTicker{Count: count},
		Nice: func(r plotkit.Interval) (plotkit.Interval, error) {
			s, err := NewLinear().WithDomain(r.Start, r.End)
			if err != nil {
				return r, err
			}
			if s, err = s.Nice(count); err != nil {
				return r, err
			}
			return s.Domain(), nil
		},
	}
}

// LogAxis is a logarithmic axis. Its data must be strictly positive.
func LogAxis(base float64, count int) Axis {
	return Axis{
		Name:       "Log",
		Normalizer: LogNormalizer{},
		Ticker:     LogTicker{Base: base, Count: count},
	}
}

// TimeAxis is an axis over instants given as Unix seconds. An empty
// layout chooses a strftime layout matching the tick spacing.
func TimeAxis(count int, layout string) Axis {
	return Axis{
		Name:       "Time",
		Normalizer: TimeNormalizer{},
		Ticker:     TimeTicker{Count: count, Layout: layout},
		Nice: func(r plotkit.Interval) (plotkit.Interval, error) {
			s, err := NewTime().WithDomain(UnixTime(r.Start), UnixTime(r.End))
			if err != nil {
				return r, err
			}
			if s, err = s.Nice(count); err != nil {
				return r, err
			}
			d := s.Domain()
			return plotkit.Interval{Start: UnixSeconds(d.Start), End: UnixSeconds(d.End)}, nil
		},
	}
}

// Apply installs a on the gonum axis ax.
func (a Axis) Apply(ax *plot.Axis) {
	ax.Scale = a.Normalizer
	ax.Tick.Marker = a.Ticker
}

// ----------------------------------------------------------------------------
// Normalizers

// LinearNormalizer implements plot.Normalizer with a Linear scale.
type LinearNormalizer struct{}

func (LinearNormalizer) Normalize(min, max, x float64) float64 {
	s, err := NewLinear().WithDomain(min, max)
	if err != nil {
		return math.NaN()
	}
	return s.Scale(x)
}

// LogNormalizer implements plot.Normalizer with a Log scale. Ranges
// touching zero normalize to NaN.
type LogNormalizer struct{}

func (LogNormalizer) Normalize(min, max, x float64) float64 {
	s, err := NewLog().WithDomain(min, max)
	if err != nil {
		return math.NaN()
	}
	return s.Scale(x)
}

// TimeNormalizer implements plot.Normalizer for Unix seconds with a
// Time scale.
type TimeNormalizer struct{}

func (TimeNormalizer) Normalize(min, max, x float64) float64 {
	s, err := NewTime().WithDomain(UnixTime(min), UnixTime(max))
	if err != nil {
		return math.NaN()
	}
	return s.Scale(UnixTime(x))
}

// UnixTime converts Unix seconds to a UTC instant.
func UnixTime(sec float64) time.Time {
	s, frac := math.Modf(sec)
	return time.Unix(int64(s), int64(math.Round(frac*1e9))).UTC()
}

// UnixSeconds converts t to Unix seconds.
func UnixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// ----------------------------------------------------------------------------
// Tickers

// LinearTicker implements plot.Ticker with the ticks of a Linear scale.
// Format defaults to FormatNumber.
type LinearTicker struct {
	Count  int
	Format func(float64) string
}

func (t LinearTicker) Ticks(min, max float64) []plot.Tick {
	s, err := NewLinear().WithDomain(math.Min(min, max), math.Max(min, max))
	if err != nil {
		return nil
	}
	format := t.Format
	if format == nil {
		format = FormatNumber
	}
	return labeled(s.Ticks(t.Count), format)
}

// LogTicker implements plot.Ticker with the ticks of a Log scale. Minor
// ticks get empty labels. Non-positive ranges fall back to linear ticks.
type LogTicker struct {
	Base  float64
	Count int
}

func (t LogTicker) Ticks(min, max float64) []plot.Tick {
	base := t.Base
	if base <= 0 || base == 1 {
		base = 10
	}
	s, err := NewLog().WithDomain(min, max)
	if err != nil {
		return LinearTicker{Count: t.Count}.Ticks(min, max)
	}
	s = s.WithBase(base)
	visible := s.TickFormat(t.Count)
	return labeled(s.Ticks(t.Count), func(v float64) string {
		if visible(v) == "" {
			return ""
		}
		return FormatNumber(v)
	})
}

// TimeTicker implements plot.Ticker for Unix seconds with the ticks of
// a Time scale. Labels use the strftime Layout.
type TimeTicker struct {
	Count  int
	Layout string
}

func (t TimeTicker) Ticks(min, max float64) []plot.Tick {
	s, err := NewTime().WithDomain(UnixTime(min), UnixTime(max))
	if err != nil {
		return nil
	}
	layout := t.Layout
	if layout == "" {
		layout = DefaultTimeLayout(s.TickIncrement(t.Count))
	}
	instants := s.Ticks(t.Count)
	ticks := make([]plot.Tick, len(instants))
	for i, ti := range instants {
		ticks[i] = plot.Tick{Value: UnixSeconds(ti), Label: FormatTime(layout, ti)}
	}
	return ticks
}

func labeled(values []float64, format func(float64) string) []plot.Tick {
	ticks := make([]plot.Tick, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: format(v)}
	}
	return ticks
}
