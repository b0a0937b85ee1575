package main

import (
	"context"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/plotkit/shape"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const sampleConfig = `
title = "Rainfall"
width = "10cm"
output = "out.png"

[x]
kind = "time"
ticks = 5
label = "date"

[y]
kind = "log"
base = 2.0
raw = true

[[series]]
name = "a"
curve = "cardinal"
tension = 0.5
color = "#ff8000"
points = [[1.0, 2.0], [3.0, 4.0]]

[[series]]
name = "b"
csv = "b.csv"
xcol = "when"
ycol = "2"

[[histogram]]
name = "h"
values = [1.0, 2.0, 6.0]
thresholds = [5.0]
`

func TestParseConfig(t *testing.T) {
	conf, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "Rainfall", conf.Title)
	assert.Equal(t, "10cm", conf.Width)
	assert.Equal(t, "4in", conf.Height)
	assert.Equal(t, "out.png", conf.Output)

	assert.Equal(t, AxisConfig{Kind: "time", Ticks: 5, Label: "date"}, conf.X)
	assert.Equal(t, AxisConfig{Kind: "log", Base: 2, Raw: true}, conf.Y)

	require.Len(t, conf.Series, 2)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, conf.Series[0].Points)
	assert.Equal(t, 0.5, conf.Series[0].Tension)
	assert.Equal(t, "b.csv", conf.Series[1].CSV)
	assert.Equal(t, "when", conf.Series[1].XCol)

	require.Len(t, conf.Histogram, 1)
	assert.Equal(t, []float64{5}, conf.Histogram[0].Thresholds)

	w, h, err := conf.Size()
	require.NoError(t, err)
	assert.InDelta(t, float64(10*vg.Centimeter), float64(w), 1e-9)
	assert.InDelta(t, float64(4*vg.Inch), float64(h), 1e-9)

	x, err := conf.X.Axis()
	require.NoError(t, err)
	assert.Equal(t, "Time", x.Name)
	assert.NotNil(t, x.Nice)
	y, err := conf.Y.Axis()
	require.NoError(t, err)
	assert.Equal(t, "Log", y.Name)
	assert.Nil(t, y.Nice)
}

func TestParseConfigDefaults(t *testing.T) {
	conf, err := ParseConfig([]byte(`title = "empty"`))
	require.NoError(t, err)
	def := DefaultConfig()
	assert.Equal(t, def.Width, conf.Width)
	assert.Equal(t, def.Height, conf.Height)
	assert.Equal(t, def.Output, conf.Output)
}

var invalidConfigs = []struct {
	name, config string
}{
	{"syntax", `title = `},
	{"axis-kind", "[x]\nkind = \"polar\""},
	{"curve", "[[series]]\ncurve = \"spline\"\npoints = [[1.0, 2.0]]"},
	{"color", "[[series]]\ncolor = \"#zz0000\"\npoints = [[1.0, 2.0]]"},
	{"point", "[[series]]\npoints = [[1.0, 2.0, 3.0]]"},
	{"no-data", "[[series]]\nname = \"empty\""},
	{"width", `width = "wide"`},
	{"histogram-color", "[[histogram]]\ncolor = \"blue\""},
}

func TestParseConfigInvalid(t *testing.T) {
	for _, tc := range invalidConfigs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tc.config))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))
	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Rainfall", conf.Title)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x80, B: 0, A: 0xff}, c)

	c, err = parseColor("")
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = parseColor("palette:1")
	require.NoError(t, err)
	assert.Equal(t, plotutil.Color(1), c)

	for _, s := range []string{"red", "#ff80", "#ff80001", "palette:x"} {
		_, err := parseColor(s)
		assert.Error(t, err, s)
	}
}

func TestParseCurve(t *testing.T) {
	for name, want := range map[string]shape.Curve{
		"":            shape.Linear{},
		"linear":      shape.Linear{},
		"basis":       shape.Basis{},
		"Natural":     shape.Natural{},
		"cardinal":    shape.Cardinal{Tension: 0.25},
		"step":        shape.Step{T: shape.StepMiddle},
		"step-before": shape.Step{T: shape.StepBefore},
		"step-after":  shape.Step{T: shape.StepAfter},
	} {
		got, err := parseCurve(name, 0.25)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := parseCurve("bezier", 0)
	assert.Error(t, err)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeFile(t, "data.csv", "id,when,value\n1,2011-01-01T00:00:00,3.5\n2,2011-01-01T00:00:10,\n3,2011-01-01T00:00:20\n")

	xys, err := readCSV(context.Background(), path, "when", "value", true)
	require.NoError(t, err)
	require.Len(t, xys, 3)
	assert.Equal(t, 1293840000.0, xys[0].X)
	assert.Equal(t, 3.5, xys[0].Y)
	assert.True(t, math.IsNaN(xys[1].Y))
	assert.True(t, math.IsNaN(xys[2].Y))

	xys, err = readCSV(context.Background(), path, "", "3", false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, xys[0].X)
	assert.Equal(t, 3.5, xys[0].Y)

	_, err = readCSV(context.Background(), path, "nope", "value", false)
	assert.Error(t, err)

	_, err = readCSV(context.Background(), path, "when", "value", false)
	assert.ErrorContains(t, err, "data.csv:2")
}

func TestReadCSVCancelled(t *testing.T) {
	path := writeFile(t, "data.csv", "x,y\n1,2\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := readCSV(ctx, path, "", "", false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadColumn(t *testing.T) {
	path := writeFile(t, "data.csv", "a,b\n1,2\n3,\n5,6\n")
	values, err := readColumn(context.Background(), path, "b")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 6}, values)

	_, err = readColumn(context.Background(), writeFile(t, "empty.csv", ""), "b")
	assert.Error(t, err)
}

func TestLoadSeriesKeepsOrder(t *testing.T) {
	csvPath := writeFile(t, "s.csv", "x,y\n0,1\n1,2\n")
	conf := DefaultConfig()
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		conf.Series = append(conf.Series, SeriesConfig{Name: name, Points: [][]float64{{0, 1}, {1, 0}}})
	}
	conf.Series = append(conf.Series, SeriesConfig{Name: "csv", CSV: csvPath, Curve: "step", Dashes: 2})

	series, err := loadSeries(context.Background(), conf)
	require.NoError(t, err)
	require.Len(t, series, 7)
	for i, s := range series {
		assert.Equal(t, conf.Series[i].Name, s.Name)
	}
	assert.Equal(t, shape.Step{T: shape.StepMiddle}, series[6].Curve)
	assert.Equal(t, plotutil.Dashes(2), series[6].Dashes)
	assert.Len(t, series[6].XYs, 2)

	conf.Series = append(conf.Series, SeriesConfig{Name: "broken", CSV: filepath.Join(t.TempDir(), "missing.csv")})
	_, err = loadSeries(context.Background(), conf)
	assert.Error(t, err)
}

func TestLoadHistograms(t *testing.T) {
	conf := DefaultConfig()
	conf.Histogram = []HistogramConfig{{Name: "h", Values: []float64{1, 2, 6, 7}, Thresholds: []float64{5}}}
	bars, err := loadHistograms(context.Background(), conf)
	require.NoError(t, err)
	require.Len(t, bars, 1)
	require.Len(t, bars[0].Rects, 2)
	assert.Equal(t, 2.0, bars[0].Rects[1].Y.End)
}
