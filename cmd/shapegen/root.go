package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"shapegen/internal/geom"
	"shapegen/internal/pipeline"
	"shapegen/internal/report"
	"shapegen/internal/tui"
)

// Version is the application version.
const Version = "0.1.0"

// errUsage marks bad command lines; main prints the usage text for it.
var errUsage = errors.New("usage")

// options holds the flag values layered on top of the positional arguments.
type options struct {
	outDir   string
	seed     uint64
	canvas   int
	headless bool
	frames   int
	wkt      bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use: fmt.Sprintf("shapegen <%s> <reduce_iterations> <abs_dispersion> <closed_contour> <delay>",
			strings.Join(geom.Kinds(), "|")),
		Short: "Synthetic contour trajectory generator",
		Long: `shapegen draws a random ellipse, rectangle or triangle every iteration,
traces its boundary, thins and jitters the points, and writes the normalized
direction of every edge to <shape>_<iteration>.dat.`,
		Version: Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 5 {
				return fmt.Errorf("%w: expected 5 arguments, got %d", errUsage, len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parseArgs(args)
			if err != nil {
				return err
			}
			cfg.OutDir = opts.outDir
			cfg.Seed = opts.seed
			cfg.Canvas = opts.canvas
			cfg.WKT = opts.wkt
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%w: %v", errUsage, err)
			}
			if opts.frames < 0 {
				return fmt.Errorf("%w: --frames must be >= 0", errUsage)
			}

			gen, err := pipeline.NewGenerator(cfg)
			if err != nil {
				return err
			}
			if opts.headless {
				if opts.verbose {
					log.SetOutput(cmd.ErrOrStderr())
				} else {
					log.SetOutput(io.Discard)
				}
				rec := report.NewRecorder(cfg, cmd.OutOrStdout())
				return runHeadless(cmd.Context(), gen, rec, opts.frames, cmd.ErrOrStderr())
			}
			return runInteractive(cmd.Context(), gen, report.NewRecorder(cfg, nil))
		},
	}
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	f := cmd.Flags()
	f.StringVarP(&opts.outDir, "out", "o", ".", "Directory for the per-iteration .dat files")
	f.Uint64Var(&opts.seed, "seed", 0, "Random seed (0 seeds from the clock)")
	f.IntVar(&opts.canvas, "canvas", pipeline.DefaultCanvas, "Side of the square canvas in pixels")
	f.BoolVar(&opts.headless, "headless", false, "Run without the terminal canvas, printing records to stdout")
	f.IntVarP(&opts.frames, "frames", "n", 0, "Stop after this many iterations (0 runs until interrupted)")
	f.BoolVar(&opts.wkt, "wkt", false, "Also write each final contour to <shape>_<iteration>.wkt")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log per-iteration details to stderr in headless mode")
	return cmd
}

// parseArgs turns the five positional arguments into a run configuration.
func parseArgs(args []string) (pipeline.Config, error) {
	kind, err := geom.ParseKind(args[0])
	if err != nil {
		return pipeline.Config{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	names := []string{"reduce_iterations", "abs_dispersion", "closed_contour", "delay"}
	vals := make([]int, len(names))
	for i, name := range names {
		v, err := strconv.Atoi(args[i+1])
		if err != nil {
			return pipeline.Config{}, fmt.Errorf("%w: %s: %q is not an integer", errUsage, name, args[i+1])
		}
		if v < 0 && name != "closed_contour" {
			return pipeline.Config{}, fmt.Errorf("%w: %s must be >= 0, got %d", errUsage, name, v)
		}
		vals[i] = v
	}
	return pipeline.Config{
		Shape:            kind,
		ReduceIterations: vals[0],
		Dispersion:       vals[1],
		Closed:           vals[2] != 0,
		Delay:            time.Duration(vals[3]) * time.Millisecond,
		Canvas:           pipeline.DefaultCanvas,
	}, nil
}

func runInteractive(ctx context.Context, gen *pipeline.Generator, rec *report.Recorder) error {
	// Logging must not write over the canvas.
	if path := os.Getenv("SHAPEGEN_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "shapegen")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(tui.New(gen, rec), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// runHeadless generates frames until ctx is cancelled or frames iterations
// are done. The delay between iterations is also the cancellation point.
func runHeadless(ctx context.Context, gen *pipeline.Generator, rec *report.Recorder, frames int, stderr io.Writer) error {
	delay := gen.Config().Delay
	var bar *progressbar.ProgressBar
	if frames > 0 {
		bar = progressbar.NewOptions(frames,
			progressbar.OptionSetDescription("generating"),
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionShowCount(),
		)
		defer bar.Finish()
	}
	for {
		f, err := gen.Next()
		if err != nil {
			return err
		}
		if err := rec.Record(f); err != nil {
			return err
		}
		if bar != nil {
			bar.Add(1)
		}
		if frames > 0 && gen.Iteration() >= frames {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
	}
}
