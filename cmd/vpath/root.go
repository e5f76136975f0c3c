package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"

	"honnef.co/go/vpath"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbosity  int
		flags      Config
	)
	cmd := &cobra.Command{
		Use:           "vpath [flags] [file]",
		Short:         "Transform SVG path data",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if configPath != "" {
				var err error
				cfg, err = loadConfig(configPath)
				if err != nil {
					return err
				}
			}
			f := cmd.Flags()
			if f.Changed("transform") {
				cfg.Transform = flags.Transform
			}
			if f.Changed("close") {
				cfg.Close = flags.Close
			}
			if f.Changed("conics") {
				cfg.Conics = flags.Conics
			}
			if f.Changed("downgrade") {
				cfg.Downgrade = flags.Downgrade
			}
			if f.Changed("validate") {
				cfg.Validate = flags.Validate
			}
			if f.Changed("tolerance") {
				cfg.Approx.Tolerance = flags.Approx.Tolerance
			}
			if f.Changed("max-depth") {
				cfg.Approx.MaxDepth = flags.Approx.MaxDepth
			}
			if f.Changed("precision") {
				cfg.SVG.MaxPrecision = flags.SVG.MaxPrecision
			}

			stdr.SetVerbosity(verbosity)
			log := stdr.New(stdlog.New(cmd.ErrOrStderr(), "", stdlog.LstdFlags))

			in := cmd.InOrStdin()
			if len(args) == 1 {
				fd, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer fd.Close()
				in = fd
			}
			err := run(cfg, in, cmd.OutOrStdout(), log)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "vpath:", err)
			}
			return err
		},
	}
	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "TOML `file` describing the pipeline")
	f.IntVarP(&verbosity, "verbose", "v", 0, "log verbosity; 1 logs every path command")
	f.Float64SliceVar(&flags.Transform, "transform", nil, "6 affine or 9 projective transform coefficients")
	f.StringVar(&flags.Close, "close", "none", `close contours: "none", "closed" or "all"`)
	f.StringVar(&flags.Conics, "conics", "keep", `conic handling: "keep", "arcs" or "cubics"`)
	f.Float64Var(&flags.Downgrade, "downgrade", 0, "tolerance for downgrading degenerate segments")
	f.BoolVar(&flags.Validate, "validate", false, "check the path data for protocol errors")
	f.Float64Var(&flags.Approx.Tolerance, "tolerance", 0, "tolerance for approximating conics")
	f.IntVar(&flags.Approx.MaxDepth, "max-depth", 0, "maximum subdivision depth for approximating conics")
	f.IntVar(&flags.SVG.MaxPrecision, "precision", 0, "maximum number of decimals in the output")
	return cmd
}

// reporter sits in front of the writer and counts the approximations that
// missed their tolerance.
type reporter struct {
	vpath.Forwarder[*vpath.SVGWriter]
	conics int
	failed int
}

func (r *reporter) EllipticalArcSegment(x0, y0, rx, ry, rot float64, largeArc, sweep bool, x2, y2 float64) {
	r.Downstream.EllipticalArcSegment(x0, y0, rx, ry, rot, largeArc, sweep, x2, y2)
}

func (r *reporter) ConicApproximated(rep vpath.ApproximationReport) {
	r.conics++
	if rep.Failed() {
		r.failed++
	}
}

// pipeline builds the filter chain described by cfg, ending in w.
func pipeline(cfg Config, w *vpath.SVGWriter, log logr.Logger) (vpath.Sink, *reporter, error) {
	approx := cfg.Approx
	approx.Logger = log.WithName("approx")
	rep := &reporter{Forwarder: vpath.Forwarder[*vpath.SVGWriter]{Downstream: w}}

	var s vpath.Sink
	switch cfg.Conics {
	case "", "keep":
		s = rep
	case "arcs":
		s = vpath.NewConicToArcs(approx, rep)
	case "cubics":
		s = vpath.NewConicToCubics(approx, rep)
	default:
		return nil, nil, fmt.Errorf("unknown conic handling %q", cfg.Conics)
	}
	if cfg.Downgrade > 0 {
		d := vpath.NewDowngrade(cfg.Downgrade, s)
		d.Epsilon = cfg.Approx.Epsilon
		s = d
	}
	switch cfg.Close {
	case "", "none":
	case "closed":
		s = vpath.NewCloseContours(s)
	case "all":
		s = vpath.NewCloseAllContours(s)
	default:
		return nil, nil, fmt.Errorf("unknown close mode %q", cfg.Close)
	}
	xf, err := cfg.transform()
	if err != nil {
		return nil, nil, err
	}
	if xf != nil {
		s = vpath.NewXFormEpsilon(xf, cfg.Approx.Epsilon, s)
	}
	if cfg.Validate {
		s = vpath.NewValidator(s)
	}
	return vpath.NewSpy(log, s), rep, nil
}

func run(cfg Config, in io.Reader, out io.Writer, log logr.Logger) (err error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	p, err := vpath.ParseSVGPath(string(data))
	if err != nil {
		return fmt.Errorf("reading path data: %w", err)
	}

	svgOpts := cfg.SVG
	svgOpts.Approx = cfg.Approx
	svgOpts.Approx.Logger = log.WithName("svg")
	w := vpath.NewSVGWriter(out, svgOpts)
	s, rep, err := pipeline(cfg, w, log)
	if err != nil {
		return err
	}
	if cfg.Validate {
		defer func() {
			if r := recover(); r != nil {
				perr, ok := r.(*vpath.ProtocolError)
				if !ok {
					panic(r)
				}
				err = perr
			}
		}()
	}
	p.Iterate(s)
	if rep.failed > 0 {
		log.Info("some conics exceed the tolerance", "conics", rep.conics, "failed", rep.failed)
	}
	if err := w.Err(); err != nil {
		return err
	}
	_, err = io.WriteString(out, "\n")
	return err
}
