package colors

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHSLString(t *testing.T) {
	assert.Equal(t, "hsl(300, 50%, 40%)", HSL{300, 0.5, 0.4}.String())
	assert.Equal(t, "hsl(320.4, 100%, 50%)", HSL{320.4, 1, 0.5}.String())
}

var rgbTests = []struct {
	hsl  HSL
	want color.RGBA
}{
	{HSL{10, 0.5, 0.5}, color.RGBA{191, 85, 64, 255}},
	{HSL{6, 0.5, 0.5}, color.RGBA{191, 76, 64, 255}},
	{HSL{2, 0.5, 0.5}, color.RGBA{191, 68, 64, 255}},
	{HSL{358, 0.5, 0.5}, color.RGBA{191, 64, 68, 255}},
	{HSL{354, 0.5, 0.5}, color.RGBA{191, 64, 76, 255}},
	{HSL{350, 0.5, 0.5}, color.RGBA{191, 64, 85, 255}},
	{HSL{0, 1, 0.5}, color.RGBA{255, 0, 0, 255}},
	{HSL{120, 1, 0.25098039215686274}, color.RGBA{0, 128, 0, 255}},
	{HSL{240, 1, 0.5}, color.RGBA{0, 0, 255, 255}},
	{HSL{0, 0, 1}, color.RGBA{255, 255, 255, 255}},
}

func TestHSLToRGB(t *testing.T) {
	for i, tc := range rgbTests {
		t.Run(fmt.Sprintf("%d/%s", i, tc.hsl), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.hsl.RGB())
		})
	}
}

func TestHSLIsColor(t *testing.T) {
	var c color.Color = HSL{240, 1, 0.5}
	r, g, b, a := c.RGBA()
	assert.Equal(t, []uint32{0, 0, 0xffff, 0xffff}, []uint32{r, g, b, a})
}

func TestFromColor(t *testing.T) {
	for _, tc := range rgbTests[6:] {
		got := FromColor(tc.want)
		assert.Equal(t, tc.want, got.RGB(), "round trip of %v via %s", tc.want, got)
	}
}
