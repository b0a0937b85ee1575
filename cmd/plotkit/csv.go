package main

import (
	"context"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/vdobler/plotkit"
	"github.com/vdobler/plotkit/scale"
	"gonum.org/v1/plot/plotter"
)

// column resolves a column given by header name or 1-based index. An
// empty col selects def.
func column(header []string, col string, def int) (int, error) {
	if col == "" {
		if def >= len(header) {
			return 0, errors.Errorf("need at least %d columns, got %d", def+1, len(header))
		}
		return def, nil
	}
	for i, h := range header {
		if strings.TrimSpace(h) == col {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(col); err == nil && n >= 1 && n <= len(header) {
		return n - 1, nil
	}
	return 0, errors.Errorf("no column %q in %v", col, header)
}

// parseCell parses one CSV value. Empty cells are NaN. Time cells are
// converted to Unix seconds.
func parseCell(s string, isTime bool) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	if isTime {
		t, err := plotkit.ParseDateTime(s)
		if err != nil {
			return 0, err
		}
		return scale.UnixSeconds(t), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, errors.WithStack(err)
}

// readRecords reads a CSV file with a header line and calls fn for each
// data record.
func readRecords(ctx context.Context, path string, fn func(header, record []string, line int) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return errors.Errorf("%s: empty file", path)
	}
	if err != nil {
		return errors.Wrap(err, path)
	}
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, path)
		}
		if err := fn(header, record, line); err != nil {
			return errors.Wrapf(err, "%s:%d", path, line)
		}
	}
}

// readCSV reads the x and y columns of a CSV file. Short records and
// empty cells yield NaN coordinates, which break curves.
func readCSV(ctx context.Context, path, xcol, ycol string, timeX bool) (plotter.XYs, error) {
	var (
		xys    plotter.XYs
		xi, yi = -1, -1
	)
	err := readRecords(ctx, path, func(header, record []string, line int) error {
		if xi < 0 {
			var err error
			if xi, err = column(header, xcol, 0); err != nil {
				return err
			}
			if yi, err = column(header, ycol, 1); err != nil {
				return err
			}
		}
		xy := plotter.XY{X: math.NaN(), Y: math.NaN()}
		var err error
		if xi < len(record) {
			if xy.X, err = parseCell(record[xi], timeX); err != nil {
				return err
			}
		}
		if yi < len(record) {
			if xy.Y, err = parseCell(record[yi], false); err != nil {
				return err
			}
		}
		xys = append(xys, xy)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"file": path, "points": len(xys)}).Debug("read csv")
	return xys, nil
}

// readColumn reads one numeric column of a CSV file, skipping empty
// cells.
func readColumn(ctx context.Context, path, col string) ([]float64, error) {
	var (
		values []float64
		ci     = -1
	)
	err := readRecords(ctx, path, func(header, record []string, line int) error {
		if ci < 0 {
			var err error
			if ci, err = column(header, col, 0); err != nil {
				return err
			}
		}
		if ci >= len(record) {
			return nil
		}
		v, err := parseCell(record[ci], false)
		if err != nil {
			return err
		}
		if !math.IsNaN(v) {
			values = append(values, v)
		}
		return nil
	})
	return values, err
}
