package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/multibrot/pkg/ppm"
	"github.com/willbeason/multibrot/pkg/raster"
	"log/slog"
	"math"
	"os"
	"time"
)

const (
	DefaultWidth   = 1000
	DefaultHeight  = 1000
	DefaultMaxIter = 100
	DefaultN       = 2.0
	DefaultOutput  = "output.ppm"
)

type config struct {
	width, height uint16
	output        string

	zoomed bool
	view   viewFlag
	zoom   float64
	pan    panFlag

	n       float64
	maxIter uint32

	verbose bool
}

func mainCmd() *cobra.Command {
	cfg := &config{view: viewFull}

	cmd := &cobra.Command{
		Use:   "multibrot",
		Short: "Render the multibrot set z -> z^n + c to a binary pixmap",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.Uint16Var(&cfg.width, "width", DefaultWidth, "output image width")
	flags.Uint16Var(&cfg.height, "height", DefaultHeight, "output image height")
	flags.StringVarP(&cfg.output, "output", "o", DefaultOutput, "output file path")
	flags.BoolVarP(&cfg.zoomed, "zoomed", "z", false, "use the zoomed view window")
	flags.Var(&cfg.view, "view", "view window: full, zoomed or classic")
	flags.Float64Var(&cfg.zoom, "zoom", 1.0, "zoom factor applied to the view window")
	flags.Var(&cfg.pan, "pan", "offset dx,dy applied to the view window after zooming")
	flags.Float64VarP(&cfg.n, "exponent", "n", DefaultN, "multibrot n, where z -> z^n + c is used for drawing the set")
	flags.Uint32Var(&cfg.maxIter, "max-iter", DefaultMaxIter, "maximum iterations per pixel")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "log rendering progress")

	cmd.MarkFlagsMutuallyExclusive("zoomed", "view")

	return cmd
}

var (
	errEmptyDimensions = errors.New("width and height must be > 0")
	errExponent        = errors.New("exponent must be finite")
	errZoom            = errors.New("zoom must be finite and > 0")
)

func (cfg *config) validate() error {
	if cfg.width == 0 || cfg.height == 0 {
		return fmt.Errorf("%dx%d: %w", cfg.width, cfg.height, errEmptyDimensions)
	}
	if math.IsNaN(cfg.n) || math.IsInf(cfg.n, 0) {
		return fmt.Errorf("%v: %w", cfg.n, errExponent)
	}
	if !(cfg.zoom > 0) || math.IsInf(cfg.zoom, 0) {
		return fmt.Errorf("%v: %w", cfg.zoom, errZoom)
	}

	return nil
}

func (cfg *config) window() raster.Window {
	view := cfg.view
	if cfg.zoomed {
		view = viewZoomed
	}

	return view.Window().Zoom(cfg.zoom).Pan(cfg.pan.dx, cfg.pan.dy)
}

func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func runCmd(cmd *cobra.Command, cfg *config) error {
	start := time.Now()

	if err := cfg.validate(); err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := newLogger(cmd, cfg.verbose)

	generator, err := raster.NewMultibrotWithView(cfg.n, cfg.maxIter, cfg.window())
	if err != nil {
		return err
	}
	generator.Progress = func(done, total int) {
		logger.Debug("rendering", "pixels", done, "total", total, "percent", done*100/total)
	}

	width, height := int(cfg.width), int(cfg.height)
	logger.Info("generating raster", "generator", generator, "view", generator.View, "width", width, "height", height)

	pixels, err := generator.Generate(width, height)
	if err != nil {
		return fmt.Errorf("generating %v: %w", generator, err)
	}

	img, err := ppm.New(width, height, pixels)
	if err != nil {
		return fmt.Errorf("assembling pixmap: %w", err)
	}

	err = img.Save(cfg.output)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %d x %d multibrot (n=%g) image to %q in %s\n",
		width, height, cfg.n, cfg.output, time.Since(start).Round(time.Millisecond))

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
