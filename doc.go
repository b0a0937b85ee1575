// Package plotkit provides the numeric primitives behind data driven
// charts: tick generation, calendar aware time steps and the interval
// types shared by the scale, shape and chart packages.
//
// It tries to use or enhance gonum.org/v1/plot.
//
// Ticks
//
// Numeric ticks are multiples of 1, 2 or 5 times a power of ten. The
// step is chosen from the raw step span/count by comparing it against
// the thresholds √2, √10 and √50:
//   - TickStep      a signed nice step
//   - TickIncrement like TickStep but steps below one are returned as
//                   negative inverses which keeps tick values exact
//   - Ticks         the tick values themselves, ordered like the input
//
// Time ticks use a fixed ladder of calendar durations from one second
// to one year; longer spans step in whole years.
//
// Packages
//
// The functionality is split into
//   1. scale        continuous (linear, log, time) and discrete
//                   (band, ordinal, quantile) scales
//   2. interpolate  range interpolators for numbers and HSL colors
//   3. shape        curve generators, the line generator and stacking
//   4. data         extents, quantiles and histograms
//   5. chart        line charts rendered with gonum.org/v1/plot
package plotkit
