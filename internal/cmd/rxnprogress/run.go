package rxnprogress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/rxnprogress/extent"
	"github.com/katalvlaran/rxnprogress/view"
)

// Run executes the command. In interactive mode commands are read from in
// until EOF, "quit" or ctx cancellation.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := newLogger(errOut, cfg.Verbose)

	mode, err := extent.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	format, err := view.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	printer, err := view.NewPrinter(cfg.Locale)
	if err != nil {
		return err
	}
	r, err := buildReaction(cfg, mode)
	if err != nil {
		return err
	}
	logger.Debug("reaction ready", "coefficients", r.Coefficients(), "mode", mode, "max_moles", r.MaxMoles())

	s := &Session{
		reaction:  r,
		mode:      mode,
		format:    format,
		printer:   printer,
		barChart:  cfg.BarChart,
		lineGraph: cfg.LineGraph,
		out:       out,
		logger:    logger,
	}
	if cfg.Interactive {
		return s.Run(ctx, in)
	}

	return runOnce(s, cfg)
}

// newLogger returns a text logger on w; verbose enables debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildReaction creates the model from cfg. Initial amounts are entered in
// mode units, so they go through SetInitialAmount after the molar masses are
// known.
func buildReaction(cfg Config, mode extent.Mode) (*extent.Reaction, error) {
	coeffs, err := sixOf("coefficients", cfg.Coefficients)
	if err != nil {
		return nil, err
	}
	initial, err := sixOf("initial", cfg.Initial)
	if err != nil {
		return nil, err
	}
	masses, err := sixOf("molar-masses", cfg.MolarMasses)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(cfg.MaxMoles) || math.IsInf(cfg.MaxMoles, 0) || cfg.MaxMoles <= 0 {
		return nil, fmt.Errorf("max-moles must be finite and > 0, got %v", cfg.MaxMoles)
	}

	r, err := extent.New(
		extent.WithMaxMoles(cfg.MaxMoles),
		extent.WithCoefficients(coeffs),
		extent.WithInitialAmounts([extent.SlotCount]float64{}),
		extent.WithMolarMasses(masses),
	)
	if err != nil {
		return nil, err
	}
	for _, sl := range extent.Slots {
		if err = r.SetInitialAmount(sl, initial[sl], mode); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// runOnce applies the configured extent, prints the tables and writes the
// requested charts.
func runOnce(s *Session, cfg Config) error {
	if cfg.Extent != "" {
		x, err := strconv.ParseFloat(cfg.Extent, 64)
		if err != nil {
			return fmt.Errorf("extent %q is not a number", cfg.Extent)
		}
		if err = s.reaction.SetExtentDirect(x); err != nil {
			return err
		}
	} else {
		s.reaction.SetExtentByPercent(cfg.Percent)
	}

	snap, err := s.reaction.Recompute(false)
	if errors.Is(err, extent.ErrInfeasibleReaction) {
		s.logger.Warn("reaction cannot progress", "range_min", snap.Range.Min, "range_max", snap.Range.Max)
	}
	if err = view.WriteTable(s.out, snap, s.mode, s.printer); err != nil {
		return err
	}

	return s.writeCharts(snap)
}

// writeChart renders c into path.
func writeChart(path string, c view.Renderable, f view.Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return view.Render(file, c, f)
}
