package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vdobler/plotkit/shape"
	"gonum.org/v1/plot/plotter"
)

// parseCurve maps a curve name to a shape.Curve. An empty name means
// linear.
func parseCurve(name string, tension float64) (shape.Curve, error) {
	switch strings.ToLower(name) {
	case "", "linear":
		return shape.Linear{}, nil
	case "basis":
		return shape.Basis{}, nil
	case "cardinal":
		return shape.Cardinal{Tension: tension}, nil
	case "natural":
		return shape.Natural{}, nil
	case "step":
		return shape.Step{T: shape.StepMiddle}, nil
	case "step-before":
		return shape.Step{T: shape.StepBefore}, nil
	case "step-after":
		return shape.Step{T: shape.StepAfter}, nil
	}
	return nil, errors.Errorf("unknown curve %q", name)
}

// parsePoints parses points written as "x,y".
func parsePoints(args []string) (plotter.XYs, error) {
	xys := make(plotter.XYs, len(args))
	for i, a := range args {
		parts := strings.Split(a, ",")
		if len(parts) != 2 {
			return nil, errors.Errorf("point %q is not of the form x,y", a)
		}
		v, err := parseFloats(parts)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i+1)
		}
		xys[i].X, xys[i].Y = v[0], v[1]
	}
	return xys, nil
}

func newPathCmd() *cobra.Command {
	var (
		curve      string
		tension    float64
		csvFile    string
		xcol, ycol string
	)
	cmd := &cobra.Command{
		Use:   "path [X,Y...]",
		Short: "Print the SVG path data of a curve through points",
		Long: `path prints the SVG path data of the curve through the given points.
Points are taken from the arguments or from the columns of a CSV file.
Points with a NaN coordinate split the curve.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCurve(curve, tension)
			if err != nil {
				return err
			}
			var xys plotter.XYs
			if csvFile != "" {
				xys, err = readCSV(context.Background(), csvFile, xcol, ycol, false)
			} else {
				xys, err = parsePoints(args)
			}
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"curve": curve, "points": len(xys)}).Debug("generating path")
			fmt.Fprintln(cmd.OutOrStdout(), shape.NewXYLine().WithCurve(c).Generate(xys))
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&curve, "curve", "linear", "Curve: linear, basis, cardinal, natural, step, step-before or step-after")
	fs.Float64Var(&tension, "tension", 0, "Tension of cardinal curves")
	fs.StringVar(&csvFile, "csv", "", "Read points from this CSV file")
	fs.StringVar(&xcol, "x", "", "CSV column of x values, name or 1-based index (default first)")
	fs.StringVar(&ycol, "y", "", "CSV column of y values, name or 1-based index (default second)")
	return cmd
}
