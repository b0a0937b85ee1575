package interpolate

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vdobler/plotkit/colors"
)

var numberTests = []struct {
	t, number, round float64
}{
	{0.0, 10.0, 10},
	{0.1, 13.2, 13},
	{0.2, 16.4, 16},
	{0.3, 19.6, 20},
	{0.4, 22.8, 23},
	{0.5, 26.0, 26},
	{0.6, 29.2, 29},
	{0.7, 32.4, 32},
	{0.8, 35.6, 36},
	{0.9, 38.8, 39},
	{1.0, 42.0, 42},
	{1.5, 58.0, 58},
	{-0.5, -6.0, -6},
}

func TestNumberAndRound(t *testing.T) {
	for _, tc := range numberTests {
		t.Run(fmt.Sprintf("t=%g", tc.t), func(t *testing.T) {
			assert.InDelta(t, tc.number, Number{}.Interpolate(10, 42, tc.t), 1e-9)
			assert.Equal(t, tc.round, Round{}.Interpolate(10, 42, tc.t))
		})
	}
}

var hslTests = []struct {
	t   float64
	hue float64
	rgb color.RGBA
}{
	{0.0, 10, color.RGBA{191, 85, 64, 255}},
	{0.2, 6, color.RGBA{191, 76, 64, 255}},
	{0.4, 2, color.RGBA{191, 68, 64, 255}},
	{0.6, 358, color.RGBA{191, 64, 68, 255}},
	{0.8, 354, color.RGBA{191, 64, 76, 255}},
	{1.0, 350, color.RGBA{191, 64, 85, 255}},
}

func TestHSLShortestHuePath(t *testing.T) {
	start := colors.HSL{H: 10, S: 0.5, L: 0.5}
	end := colors.HSL{H: 350, S: 0.5, L: 0.5}
	for _, tc := range hslTests {
		t.Run(fmt.Sprintf("t=%g", tc.t), func(t *testing.T) {
			got := HSL{}.Interpolate(start, end, tc.t)
			assert.InDelta(t, tc.hue, got.H, 1e-9)
			assert.InDelta(t, 0.5, got.S, 1e-12)
			assert.InDelta(t, 0.5, got.L, 1e-12)
			assert.Equal(t, tc.rgb, got.RGB())
		})
	}
}

func TestHSLSaturationLightness(t *testing.T) {
	got := HSL{}.Interpolate(colors.HSL{H: 0, S: 1, L: 0.5}, colors.HSL{H: 120, S: 0, L: 0.25}, 0.5)
	assert.InDelta(t, 60, got.H, 1e-12)
	assert.InDelta(t, 0.5, got.S, 1e-12)
	assert.InDelta(t, 0.375, got.L, 1e-12)
}

func TestPiecewiseHSL(t *testing.T) {
	p := Piecewise[colors.HSL](HSL{},
		colors.HSL{H: 0, S: 1, L: 0.5},                  // red
		colors.HSL{H: 120, S: 1, L: 0.25098039215686274}, // green
		colors.HSL{H: 240, S: 1, L: 0.5},                 // blue
	)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, p(0).RGB())
	assert.Equal(t, color.RGBA{143, 179, 0, 255}, p(0.3).RGB())
	assert.Equal(t, color.RGBA{0, 128, 0, 255}, p(0.5).RGB())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, p(1).RGB())
}

func TestPiecewiseNumber(t *testing.T) {
	p := Piecewise[float64](Number{}, 0, 10, 100)
	assert.InDelta(t, 5, p(0.25), 1e-12)
	assert.InDelta(t, 55, p(0.75), 1e-12)
	assert.InDelta(t, 100, p(1), 1e-12)
	assert.InDelta(t, 190, p(1.5), 1e-12)
	assert.Panics(t, func() { Piecewise[float64](Number{}, 1) })
}
