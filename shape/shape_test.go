package shape

import (
	"math"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/plotkit"
	"gonum.org/v1/plot/plotter"
)

var number = regexp.MustCompile(`-?[0-9]+(\.[0-9]+)?(e[-+]?[0-9]+)?`)

// normalize rounds all numbers in the path data to six decimals.
func normalize(path string) string {
	return number.ReplaceAllStringFunc(path, func(s string) string {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return s
		}
		v = math.Round(v*1e6) / 1e6
		if v == 0 {
			v = 0
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	})
}

func assertPath(t *testing.T, want, got string) {
	t.Helper()
	assert.Equal(t, normalize(want), normalize(got))
}

type point struct{ x, y float64 }

func pointLine() Line[point] {
	return NewLine(
		func(p point, _ int) float64 { return p.x },
		func(p point, _ int) float64 { return p.y },
	)
}

func pts(coords ...float64) []point {
	var ps []point
	for i := 0; i+1 < len(coords); i += 2 {
		ps = append(ps, point{coords[i], coords[i+1]})
	}
	return ps
}

func TestPathString(t *testing.T) {
	var p Path
	assert.Equal(t, "", p.String())
	p.MoveTo(0, 1)
	p.LineTo(2.5, -3)
	p.CubicTo(1, 2, 3, 4, 5, 6)
	p.ClosePath()
	assert.Equal(t, "M0,1L2.5,-3C1,2,3,4,5,6Z", p.String())
	assert.Equal(t, []Command{
		{'M', []float64{0, 1}},
		{'L', []float64{2.5, -3}},
		{'C', []float64{1, 2, 3, 4, 5, 6}},
		{'Z', nil},
	}, p.Commands())
}

var curveTests = []struct {
	name  string
	curve Curve
	data  []point
	want  string
}{
	{"linear-one", Linear{}, pts(0, 1), "M0,1L0,1Z"},
	{"linear-two", Linear{}, pts(0, 1, 2, 3), "M0,1L2,3"},
	{"linear-three", Linear{}, pts(0, 1, 2, 3, 4, 5), "M0,1L2,3L4,5"},

	{"basis-one", Basis{}, pts(0, 1), "M0,1L0,1Z"},
	{"basis-two", Basis{}, pts(0, 1, 1, 3), "M0,1L1,3"},
	{"basis-three", Basis{}, pts(0, 1, 1, 3, 2, 1),
		"M0,1L0.166667,1.333333C0.333333,1.666667,0.666667,2.333333,1,2.333333" +
			"C1.333333,2.333333,1.666667,1.666667,1.833333,1.333333L2,1"},

	{"cardinal-one", Cardinal{}, pts(0, 1), "M0,1L0,1Z"},
	{"cardinal-two", Cardinal{}, pts(0, 1, 1, 3), "M0,1L1,3"},
	{"cardinal-three", Cardinal{}, pts(0, 1, 1, 3, 2, 1),
		"M0,1C0,1,0.666667,3,1,3C1.333333,3,2,1,2,1"},
	{"cardinal-four", Cardinal{}, pts(0, 1, 1, 3, 2, 1, 3, 3),
		"M0,1C0,1,0.666667,3,1,3C1.333333,3,1.666667,1,2,1C2.333333,1,3,3,3,3"},
	{"cardinal-tension", Cardinal{Tension: 0.5}, pts(0, 1, 1, 3, 2, 1, 3, 3),
		"M0,1C0,1,0.833333,3,1,3C1.166667,3,1.833333,1,2,1C2.166667,1,3,3,3,3"},

	{"natural-one", Natural{}, pts(0, 1), "M0,1L0,1Z"},
	{"natural-two", Natural{}, pts(0, 1, 1, 3), "M0,1L1,3"},
	{"natural-three", Natural{}, pts(0, 1, 1, 3, 2, 1),
		"M0,1C0.333333,2,0.666667,3,1,3C1.333333,3,1.666667,2,2,1"},
	{"natural-four", Natural{}, pts(0, 1, 1, 3, 2, 1, 3, 3),
		"M0,1C0.333333,2.111111,0.666667,3.222222,1,3C1.333333,2.777778,1.666667,1.222222,2,1" +
			"C2.333333,0.777778,2.666667,1.888889,3,3"},

	{"step-one", Step{T: StepMiddle}, pts(0, 1), "M0,1L0,1Z"},
	{"step-two", Step{T: StepMiddle}, pts(0, 1, 2, 3), "M0,1L1,1L1,3L2,3"},
	{"step-three", Step{T: StepMiddle}, pts(0, 1, 2, 3, 4, 5), "M0,1L1,1L1,3L3,3L3,5L4,5"},
	{"step-before", Step{T: StepBefore}, pts(0, 1, 2, 3, 4, 5), "M0,1L0,3L2,3L2,5L4,5"},
	{"step-after", Step{T: StepAfter}, pts(0, 1, 2, 3, 4, 5), "M0,1L2,1L2,3L4,3L4,5"},
}

func TestCurves(t *testing.T) {
	for _, tc := range curveTests {
		t.Run(tc.name, func(t *testing.T) {
			got := pointLine().WithCurve(tc.curve).Generate(tc.data)
			assertPath(t, tc.want, got)
		})
	}
}

func TestLineEmpty(t *testing.T) {
	for _, c := range []Curve{Linear{}, Basis{}, Cardinal{}, Natural{}, Step{}} {
		assert.Equal(t, "", pointLine().WithCurve(c).Generate(nil))
	}
}

func TestLineDefaults(t *testing.T) {
	l := pointLine()
	assert.Equal(t, Linear{}, l.Curve())
}

func TestLineDefinedSplitsSegments(t *testing.T) {
	l := NewLine(
		func(_ float64, i int) float64 { return float64(i) },
		func(d float64, _ int) float64 { return d },
	).WithDefined(func(d float64, _ int) bool { return !math.IsNaN(d) })

	nan := math.NaN()
	assert.Equal(t, "M0,0L1,1M3,3L4,4", l.Generate([]float64{0, 1, nan, 3, 4}))
	assert.Equal(t, "M0,0L0,0ZM2,2L2,2Z", l.Generate([]float64{0, nan, 2}))
	assert.Equal(t, "", l.Generate([]float64{nan, nan}))

	assertPath(t, "M0,0L1,1M3,3C3,3,3.666667,3.666667,4,4C4.333333,4.333333,5,5,5,5",
		l.WithCurve(Cardinal{}).Generate([]float64{0, 1, nan, 3, 4, 5}))
}

func TestLineAccessors(t *testing.T) {
	l := pointLine().
		WithX(func(p point, _ int) float64 { return 2 * p.x }).
		WithY(func(p point, i int) float64 { return p.y + float64(i) })
	assert.Equal(t, "M0,1L4,4", l.Generate(pts(0, 1, 2, 3)))
}

func TestXYLine(t *testing.T) {
	xys := plotter.XYs{{X: 0, Y: 1}, {X: 1, Y: math.Inf(1)}, {X: 2, Y: 3}, {X: 3, Y: 4}}
	assert.Equal(t, "M0,1L0,1ZM2,3L3,4", NewXYLine().Generate(xys))
}

func TestStackReadme(t *testing.T) {
	rows := [][]float64{
		{3840, 1920, 960, 400},
		{1600, 1440, 960, 400},
		{640, 960, 640, 400},
		{320, 480, 640, 400},
	}
	iv := func(a, b float64) plotkit.Interval { return plotkit.Interval{Start: a, End: b} }

	s := Stack(rows, nil)
	require.Len(t, s, 4)
	assert.Equal(t, []plotkit.Interval{iv(0, 3840), iv(0, 1600), iv(0, 640), iv(0, 320)}, s[0])
	assert.Equal(t, []plotkit.Interval{iv(3840, 5760), iv(1600, 3040), iv(640, 1600), iv(320, 800)}, s[1])
	assert.Equal(t, []plotkit.Interval{iv(5760, 6720), iv(3040, 4000), iv(1600, 2240), iv(800, 1440)}, s[2])
	assert.Equal(t, []plotkit.Interval{iv(6720, 7120), iv(4000, 4400), iv(2240, 2640), iv(1440, 1840)}, s[3])

	assert.Equal(t, s, Stack(rows, OffsetNone))
	assert.Nil(t, Stack(nil, OffsetNone))
}

func TestStackMissingValues(t *testing.T) {
	s := Stack([][]float64{{1, 2}, {3}}, OffsetNone)
	require.Len(t, s, 2)
	assert.Equal(t, plotkit.Interval{Start: 3, End: 3}, s[1][1])
}

func TestOffsetExpand(t *testing.T) {
	sums := [][]float64{
		{1, 2, 1},
		{4, 6, 3},
		{9, 8, 7},
	}
	want := [][]plotkit.Interval{
		{{Start: 0, End: 1.0 / 9}, {Start: 0, End: 2.0 / 8}, {Start: 0, End: 1.0 / 7}},
		{{Start: 1.0 / 9, End: 4.0 / 9}, {Start: 2.0 / 8, End: 6.0 / 8}, {Start: 1.0 / 7, End: 3.0 / 7}},
		{{Start: 4.0 / 9, End: 1}, {Start: 6.0 / 8, End: 1}, {Start: 3.0 / 7, End: 1}},
	}
	assert.Equal(t, want, OffsetExpand(sums))

	rows := [][]float64{{1, 3, 5}, {2, 4, 2}, {1, 2, 4}}
	assert.Equal(t, want, Stack(rows, OffsetExpand))
}

func TestOffsetExpandSkipsNaN(t *testing.T) {
	sums := [][]float64{
		{1, 2, 1},
		{4, math.NaN(), 3},
		{9, 4, 7},
	}
	got := OffsetExpand(sums)
	assert.Equal(t, plotkit.Interval{Start: 2.0 / 4, End: 1}, got[2][1])
	assert.Equal(t, 2.0/4, got[1][1].Start)
	assert.True(t, math.IsNaN(got[1][1].End))
	assert.Equal(t, plotkit.Interval{Start: 1.0 / 7, End: 3.0 / 7}, got[1][2])
}
