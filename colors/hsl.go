// Package colors contains the HSL color model used by color scales.
package colors

import (
	"fmt"
	"image/color"
	"math"
)

// HSL is a color given by hue in degrees, saturation and lightness,
// the latter two in [0,1]. HSL implements color.Color.
type HSL struct {
	H, S, L float64
}

// String formats c like CSS, e.g. "hsl(300, 50%, 40%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", num(c.H), num(c.S*100), num(c.L*100))
}

func num(x float64) string {
	return fmt.Sprint(math.Round(x*1e9) / 1e9)
}

// RGB converts c to 8 bit RGB.
func (c HSL) RGB() color.RGBA {
	a := c.S * math.Min(c.L, 1-c.L)
	f := func(n float64) uint8 {
		k := math.Mod(n+c.H/30, 12)
		if k < 0 {
			k += 12
		}
		v := c.L - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		return uint8(math.Round(clamp01(v) * 255))
	}
	return color.RGBA{R: f(0), G: f(8), B: f(4), A: 0xff}
}

// RGBA implements color.Color.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// FromColor converts an arbitrary color to HSL.
func FromColor(col color.Color) HSL {
	r, g, b, _ := col.RGBA()
	rf, gf, bf := float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))

	h, s, l := 0.0, 0.0, (max+min)/2
	if d := max - min; d > 0 {
		if l < 0.5 {
			s = d / (max + min)
		} else {
			s = d / (2 - max - min)
		}
		switch max {
		case rf:
			h = (gf - bf) / d
			if gf < bf {
				h += 6
			}
		case gf:
			h = (bf-rf)/d + 2
		default:
			h = (rf-gf)/d + 4
		}
		h *= 60
	}
	return HSL{H: h, S: s, L: l}
}
