package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vdobler/plotkit"
	"github.com/vdobler/plotkit/interpolate"
	"github.com/vdobler/plotkit/scale"
)

// scaleOptions are the flags shared by the ticks and scale commands.
type scaleOptions struct {
	kind  string
	count int
	base  float64
	nice  bool
}

func (o *scaleOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.kind, "kind", "linear", "Scale kind: linear, log or time")
	fs.IntVar(&o.count, "count", plotkit.DefaultTickCount, "Approximate number of ticks")
	fs.Float64Var(&o.base, "base", 10, "Base of log scales")
	fs.BoolVar(&o.nice, "nice", false, "Extend the domain to nice round values first")
}

func parseFloats(values []string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, s := range values {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", s)
		}
		out[i] = v
	}
	return out, nil
}

func newTicksCmd() *cobra.Command {
	var opts scaleOptions
	cmd := &cobra.Command{
		Use:   "ticks START END",
		Short: "Print nicely spaced ticks covering START..END",
		Long: `ticks prints one tick per line: its value and its label separated by a
tab. Time scales take START and END as YYYY-MM-DDTHH:MM:SS.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTicks(cmd.OutOrStdout(), opts, args[0], args[1])
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}

func printTicks(w io.Writer, opts scaleOptions, start, end string) error {
	log.WithFields(log.Fields{"kind": opts.kind, "start": start, "end": end, "count": opts.count}).Debug("ticks")

	if opts.kind == "time" {
		s, err := scale.NewTime().DomainFrom(start, end)
		if err != nil {
			return err
		}
		if opts.nice {
			if s, err = s.Nice(opts.count); err != nil {
				return err
			}
		}
		layout := scale.DefaultTimeLayout(s.TickIncrement(opts.count))
		for _, t := range s.Ticks(opts.count) {
			fmt.Fprintf(w, "%s\t%s\n", t.Format(time.RFC3339), scale.FormatTime(layout, t))
		}
		return nil
	}

	bounds, err := parseFloats([]string{start, end})
	if err != nil {
		return err
	}
	lo, hi := bounds[0], bounds[1]

	switch opts.kind {
	case "linear":
		if opts.nice {
			s, err := scale.NewLinear().WithDomain(lo, hi)
			if err != nil {
				return err
			}
			if s, err = s.Nice(opts.count); err != nil {
				return err
			}
			lo, hi = s.Domain().Start, s.Domain().End
		}
		for _, v := range plotkit.Ticks(lo, hi, opts.count) {
			fmt.Fprintf(w, "%g\t%s\n", v, scale.FormatNumber(v))
		}
	case "log":
		s, err := scale.NewLog().WithBase(opts.base).WithDomain(lo, hi)
		if err != nil {
			return err
		}
		format := s.TickFormat(opts.count)
		for _, v := range s.Ticks(opts.count) {
			fmt.Fprintf(w, "%g\t%s\n", v, format(v))
		}
	default:
		return errors.Errorf("unknown scale kind %q", opts.kind)
	}
	return nil
}

func newScaleCmd() *cobra.Command {
	var (
		opts         scaleOptions
		domain, rng  []string
		clamp, round bool
		padding      float64
		paddingInner float64
		paddingOuter float64
		align        float64
	)
	cmd := &cobra.Command{
		Use:   "scale VALUE...",
		Short: "Map values through a scale",
		Long: `scale prints each VALUE and its image under the scale given by --kind,
--domain and --range. Continuous kinds are linear, log and time; discrete
kinds are band, ordinal and quantile.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch opts.kind {
			case "linear", "log", "time":
				return mapContinuous(w, opts, domain, rng, clamp, round, args)
			case "band":
				r, err := parseFloats(rng)
				if err != nil {
					return err
				}
				if len(r) != 2 {
					return errors.New("band scales need a range of two numbers")
				}
				s := scale.NewBand[string]().WithDomain(domain...).WithRange(r[0], r[1]).
					WithPadding(padding).WithAlign(align)
				if paddingInner >= 0 {
					s = s.WithPaddingInner(paddingInner)
				}
				if paddingOuter >= 0 {
					s = s.WithPaddingOuter(paddingOuter)
				}
				for _, v := range args {
					x, ok := s.Scale(v)
					if !ok {
						log.WithField("value", v).Warn("value not in band domain")
					}
					fmt.Fprintf(w, "%s\t%g\t%g\n", v, x, s.Bandwidth())
				}
			case "ordinal":
				s := scale.NewOrdinal[string, string]().WithDomain(domain...).WithRange(rng...)
				for _, v := range args {
					y, ok := s.Scale(v)
					if !ok {
						log.WithField("value", v).Warn("value not in ordinal domain")
					}
					fmt.Fprintf(w, "%s\t%s\n", v, y)
				}
			case "quantile":
				d, err := parseFloats(domain)
				if err != nil {
					return err
				}
				xs, err := parseFloats(args)
				if err != nil {
					return err
				}
				s := scale.NewQuantile[string]().WithDomain(d...).WithRange(rng...)
				for i, x := range xs {
					y, ok := s.Scale(x)
					if !ok {
						log.WithField("value", x).Warn("value cannot be classified")
					}
					fmt.Fprintf(w, "%s\t%s\n", args[i], y)
				}
			default:
				return errors.Errorf("unknown scale kind %q", opts.kind)
			}
			return nil
		},
	}
	fs := cmd.Flags()
	opts.addFlags(fs)
	fs.StringSliceVar(&domain, "domain", nil, "Domain of the scale, comma separated")
	fs.StringSliceVar(&rng, "range", []string{"0", "1"}, "Range of the scale, comma separated")
	fs.BoolVar(&clamp, "clamp", false, "Clamp continuous scales to their domain")
	fs.BoolVar(&round, "round", false, "Round the output of linear and log scales")
	fs.Float64Var(&padding, "padding", 0, "Band padding")
	fs.Float64Var(&paddingInner, "padding-inner", -1, "Band inner padding, negative means unset")
	fs.Float64Var(&paddingOuter, "padding-outer", -1, "Band outer padding, negative means unset")
	fs.Float64Var(&align, "align", 0.5, "Band alignment in [0,1]")
	return cmd
}

func mapContinuous(w io.Writer, opts scaleOptions, domain, rng []string, clamp, round bool, args []string) error {
	if len(domain) != 2 {
		return errors.Errorf("%s scales need a domain of two values, got %d", opts.kind, len(domain))
	}
	r, err := parseFloats(rng)
	if err != nil {
		return err
	}
	if len(r) != 2 {
		return errors.Errorf("%s scales need a range of two numbers, got %d", opts.kind, len(r))
	}

	if opts.kind == "time" {
		s, err := scale.NewTime().DomainFrom(domain[0], domain[1])
		if err != nil {
			return err
		}
		s = s.WithRange(r[0], r[1]).WithClamp(clamp)
		if round {
			s = s.WithInterpolator(interpolate.Round{})
		}
		if opts.nice {
			if s, err = s.Nice(opts.count); err != nil {
				return err
			}
		}
		for _, a := range args {
			t, err := plotkit.ParseDateTime(a)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%g\n", a, s.Scale(t))
		}
		return nil
	}

	d, err := parseFloats(domain)
	if err != nil {
		return err
	}
	xs, err := parseFloats(args)
	if err != nil {
		return err
	}

	var f func(float64) float64
	switch opts.kind {
	case "linear":
		s, err := scale.NewLinear().WithDomain(d[0], d[1])
		if err != nil {
			return err
		}
		s = s.WithRange(r[0], r[1]).WithClamp(clamp)
		if round {
			s = s.WithInterpolator(interpolate.Round{})
		}
		if opts.nice {
			if s, err = s.Nice(opts.count); err != nil {
				return err
			}
		}
		f = s.Scale
	case "log":
		s, err := scale.NewLog().WithBase(opts.base).WithDomain(d[0], d[1])
		if err != nil {
			return err
		}
		s = s.WithRange(r[0], r[1]).WithClamp(clamp)
		if round {
			s = s.WithInterpolator(interpolate.Round{})
		}
		f = s.Scale
	}
	for i, x := range xs {
		fmt.Fprintf(w, "%s\t%g\n", args[i], f(x))
	}
	return nil
}
