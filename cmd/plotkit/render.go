package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vdobler/plotkit/chart"
	"github.com/vdobler/plotkit/data"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// maxLoaders bounds the number of files read concurrently.
const maxLoaders = 4

// loadSeries builds the chart series of conf. Series are loaded
// concurrently and returned in configuration order.
func loadSeries(ctx context.Context, conf Config) ([]*chart.Series, error) {
	series := make([]*chart.Series, len(conf.Series))
	timeX := conf.X.Kind == "time"

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLoaders)
	for i, sc := range conf.Series {
		g.Go(func() error {
			curve, err := parseCurve(sc.Curve, sc.Tension)
			if err != nil {
				return err
			}
			col, err := parseColor(sc.Color)
			if err != nil {
				return err
			}

			var xys plotter.XYs
			if sc.CSV != "" {
				if xys, err = readCSV(ctx, sc.CSV, sc.XCol, sc.YCol, timeX); err != nil {
					return errors.Wrapf(err, "series %q", sc.Name)
				}
			} else {
				xys = make(plotter.XYs, len(sc.Points))
				for j, p := range sc.Points {
					xys[j].X, xys[j].Y = p[0], p[1]
				}
			}

			s := &chart.Series{Name: sc.Name, XYs: xys, Curve: curve, Color: col}
			if sc.Dashes > 0 {
				s.Dashes = plotutil.Dashes(sc.Dashes)
			}
			series[i] = s
			log.WithFields(log.Fields{"series": sc.Name, "points": len(xys)}).Debug("loaded series")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return series, nil
}

// loadHistograms bins the histogram values of conf.
func loadHistograms(ctx context.Context, conf Config) ([]*chart.Bars, error) {
	bars := make([]*chart.Bars, len(conf.Histogram))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLoaders)
	for i, hc := range conf.Histogram {
		g.Go(func() error {
			values := hc.Values
			if hc.CSV != "" {
				var err error
				if values, err = readColumn(ctx, hc.CSV, hc.Col); err != nil {
					return errors.Wrapf(err, "histogram %q", hc.Name)
				}
			}
			h := data.Histogram[float64]{Thresholds: hc.Thresholds}
			bins := h.Bins(values, func(v float64) float64 { return v })
			b := chart.HistogramBars(hc.Name, bins)
			col, err := parseColor(hc.Color)
			if err != nil {
				return err
			}
			b.Fill = col
			bars[i] = b
			log.WithFields(log.Fields{"histogram": hc.Name, "values": len(values), "bins": len(bins)}).Debug("binned")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bars, nil
}

// buildPanel assembles the chart described by conf.
func buildPanel(ctx context.Context, conf Config) (*chart.Panel, error) {
	p := chart.NewPanel(conf.Title)
	var err error
	if p.X, err = conf.X.Axis(); err != nil {
		return nil, err
	}
	if p.Y, err = conf.Y.Axis(); err != nil {
		return nil, err
	}
	p.XLabel, p.YLabel = conf.X.Label, conf.Y.Label

	if p.Series, err = loadSeries(ctx, conf); err != nil {
		return nil, err
	}
	if p.Bars, err = loadHistograms(ctx, conf); err != nil {
		return nil, err
	}
	return p, nil
}

func newRenderCmd() *cobra.Command {
	var (
		configFile    string
		out           string
		width, height string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart described in a TOML file",
		Long: `render draws the series and histograms of a TOML chart file and saves
the chart. The output format follows the file extension (svg, png, pdf,
eps, jpg, tif). Flags override the values of the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := DefaultConfig()
			var err error
			if configFile != "" {
				if conf, err = LoadConfig(configFile); err != nil {
					return err
				}
			}
			if out != "" {
				conf.Output = out
			}
			if width != "" {
				conf.Width = width
			}
			if height != "" {
				conf.Height = height
			}
			w, h, err := conf.Size()
			if err != nil {
				return err
			}

			start := time.Now()
			p, err := buildPanel(context.Background(), conf)
			if err != nil {
				return err
			}
			if err := p.Save(conf.Output, w, h); err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"output":   conf.Output,
				"series":   len(p.Series),
				"bars":     len(p.Bars),
				"duration": time.Since(start),
			}).Info("chart rendered")
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&configFile, "config", "", "TOML chart file")
	fs.StringVarP(&out, "out", "o", "", "Output file (default chart.svg)")
	fs.StringVar(&width, "width", "", "Chart width, e.g. 6in or 15cm")
	fs.StringVar(&height, "height", "", "Chart height, e.g. 4in or 10cm")
	return cmd
}
