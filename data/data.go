// Package data contains small statistics helpers working on plain
// float slices and on gonum's XY data interfaces.
package data

import (
	"math"

	"github.com/vdobler/plotkit"
	"gonum.org/v1/plot/plotter"
)

// Extent returns the smallest interval covering all non-NaN values.
// The boolean is false if there is no such value.
func Extent(values []float64) (plotkit.Interval, bool) {
	ext := plotkit.UnsetInterval()
	ext.Update(values...)
	return ext, !math.IsNaN(ext.Start)
}

// XYRange returns the x and y extent of xys. Non-finite coordinates are
// ignored. An empty xys yields unset intervals.
func XYRange(xys plotter.XYer) (x, y plotkit.Interval) {
	x, y = plotkit.UnsetInterval(), plotkit.UnsetInterval()
	for i := 0; i < xys.Len(); i++ {
		xi, yi := xys.XY(i)
		if !math.IsInf(xi, 0) {
			x.Update(xi)
		}
		if !math.IsInf(yi, 0) {
			y.Update(yi)
		}
	}
	return x, y
}
