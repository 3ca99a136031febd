// Command fadeinfo prints per-block trajectories of the fade and crossfade
// processors.
//
// Usage:
//
//	fadeinfo [flags]
//
// Each mode renders a short scenario and prints one row per block. Output is
// an aligned table on a terminal and CSV otherwise.
//
// Examples:
//
//	fadeinfo -mode envelope-in -duration 500ms -block-rate 100
//	fadeinfo -mode crossfade -inputs 4 -blocks 24
//	fadeinfo -mode all -format csv > trajectories.csv
//	fadeinfo -mode pair -analyze
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/cwbudde/algo-fade/dsp/core"
)

var modes = []string{"envelope-in", "envelope-out", "crossfade", "pair", "fader"}

func main() {
	mode := flag.String("mode", "all", "scenario: "+strings.Join(modes, ", ")+" or all")
	sampleRate := flag.Float64("sample-rate", 48000, "sample rate in Hz")
	frames := flag.Int("frames", 256, "frames per block")
	blockRate := flag.Float64("block-rate", 0, "blocks per second (0 derives it from sample rate and frames)")
	duration := flag.Duration("duration", 500*time.Millisecond, "envelope fade duration")
	inputs := flag.Int("inputs", 4, "number of crossfade inputs")
	blocks := flag.Int("blocks", 0, "blocks to render (0 covers the fade duration)")
	freq := flag.Float64("freq", 440, "base oscillator frequency in Hz")
	fadeIn := flag.String("fade-in", "0,0.4", "fader fade-in range start,end")
	fadeOut := flag.String("fade-out", "0.6,1", "fader fade-out range start,end")
	format := flag.String("format", "auto", "output format: auto, table or csv")
	analyze := flag.Bool("analyze", false, "append a click analysis of each rendered output")
	cutoff := flag.Float64("cutoff", 8000, "analysis cutoff in Hz for the high-band energy ratio")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fadeinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints per-block trajectories of fade and crossfade processors.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fadeinfo -mode envelope-in -duration 500ms -block-rate 100\n")
		fmt.Fprintf(os.Stderr, "  fadeinfo -mode crossfade -inputs 4 -blocks 24\n")
		fmt.Fprintf(os.Stderr, "  fadeinfo -mode all -format csv > trajectories.csv\n")
	}
	flag.Parse()

	cfg := config{
		settings: core.NewBlockSettings(
			core.WithSampleRate(*sampleRate),
			core.WithFramesPerBlock(*frames),
			core.WithBlockRate(*blockRate),
		),
		duration: *duration,
		inputs:   *inputs,
		blocks:   *blocks,
		freq:     *freq,
		cutoff:   *cutoff,
		analyze:  *analyze,
	}

	var err error
	if cfg.fadeIn, err = parseRange(*fadeIn); err != nil {
		fmt.Fprintf(os.Stderr, "error: -fade-in: %v\n", err)
		os.Exit(2)
	}
	if cfg.fadeOut, err = parseRange(*fadeOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: -fade-out: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	selected, err := selectModes(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	asTable, err := tableOutput(*format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	results, err := render(context.Background(), cfg, selected)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := writeResults(os.Stdout, results, asTable); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func selectModes(mode string) ([]string, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "all" {
		return modes, nil
	}
	for _, m := range modes {
		if m == mode {
			return []string{m}, nil
		}
	}

	return nil, fmt.Errorf("unknown mode %q (want one of %s or all)", mode, strings.Join(modes, ", "))
}

// tableOutput resolves the -format flag. auto picks a table when out is a
// terminal.
func tableOutput(format string, out *os.File) (bool, error) {
	switch strings.ToLower(format) {
	case "table":
		return true, nil
	case "csv":
		return false, nil
	case "auto", "":
		return term.IsTerminal(int(out.Fd())), nil
	default:
		return false, fmt.Errorf("unknown format %q (want auto, table or csv)", format)
	}
}

// render runs every selected scenario concurrently. Each scenario builds its
// own processors, so nothing is shared between goroutines. Results keep the
// order of modes.
func render(ctx context.Context, cfg config, selected []string) ([]result, error) {
	results := make([]result, len(selected))

	g, ctx := errgroup.WithContext(ctx)
	for i, mode := range selected {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := runScenario(cfg, mode)
			if err != nil {
				return fmt.Errorf("%s: %w", mode, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if cfg.analyze {
		a, err := analysis(cfg, results)
		if err != nil {
			return nil, err
		}
		results = append(results, a)
	}

	return results, nil
}

func writeResults(w io.Writer, results []result, asTable bool) error {
	if !asTable {
		return writeCSV(w, results)
	}

	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeTable(w, r); err != nil {
			return err
		}
	}

	return nil
}
