package scale

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tebeka/strftime"
	"github.com/vdobler/plotkit"
)

// FormatNumber renders a tick value compactly: trailing zeros are
// dropped and magnitudes from 1e4 on, or below 1e-3, use SI prefixes
// ("25k", "1.5M", "200n").
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return humanize.Ftoa(v)
	}
	if abs := math.Abs(v); v == 0 || (abs >= 1e-3 && abs < 1e4) {
		return humanize.Ftoa(v)
	}
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	x, prefix := humanize.ComputeSI(v)
	return sign + humanize.Ftoa(x) + prefix
}

// FormatTime renders t with a strftime layout like "%Y-%m-%d". If the
// layout is malformed t is printed in plotkit.DateTimeLayout.
func FormatTime(layout string, t time.Time) string {
	s, err := strftime.Format(layout, t)
	if err != nil {
		return t.Format(plotkit.DateTimeLayout)
	}
	return s
}

// DefaultTimeLayout returns a strftime layout showing the fields which
// change between ticks spaced d apart.
func DefaultTimeLayout(d plotkit.Duration) string {
	switch d.Unit {
	case plotkit.Year:
		return "%Y"
	case plotkit.Month:
		return "%Y-%m"
	case plotkit.Day, plotkit.Week:
		return "%Y-%m-%d"
	case plotkit.Hour, plotkit.Minute:
		return "%H:%M"
	}
	return "%H:%M:%S"
}
