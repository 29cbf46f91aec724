package rxnprogress

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"golang.org/x/text/message"

	"github.com/katalvlaran/rxnprogress/extent"
	"github.com/katalvlaran/rxnprogress/view"
)

// errQuit ends a session loop without error.
var errQuit = errors.New("quit")

const sessionHelp = `commands:
  coef <slot> <value>      set a stoichiometric coefficient (A..Z)
  initial <slot> <value>   set an initial amount in the current mode units
  mass <slot> <g/mol>      set a molar mass (stored moles keep their mass)
  mode moles|mass          switch input/display units
  percent <0-100>          move the slider
  extent <value>           enter the extent directly
  show                     print the tables
  charts                   write the configured chart files
  help                     this text
  quit                     leave`

// Session is the event loop of the interactive mode. Each input line is one
// user event: it mutates the reaction, recomputes and prints the result
// before the next line is read.
type Session struct {
	reaction  *extent.Reaction
	mode      extent.Mode
	format    view.Format
	printer   *message.Printer
	barChart  string
	lineGraph string
	out       io.Writer
	logger    *slog.Logger
}

// Run reads commands from in until EOF, "quit" or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	if err := s.show(true); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.Handle(sc.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			s.logger.Warn("command rejected", "line", sc.Text(), "error", err)
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}

	return sc.Err()
}

// Handle executes a single command line. Validation errors are returned to
// the caller and leave the reaction unchanged.
func (s *Session) Handle(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("parse command: %w", err)
	}
	if len(args) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "coef", "coefficient":
		return s.slotEdit(args, s.reaction.SetCoefficient)
	case "initial":
		return s.slotEdit(args, func(sl extent.Slot, v float64) error {
			return s.reaction.SetInitialAmount(sl, v, s.mode)
		})
	case "mass", "molar-mass":
		return s.slotEdit(args, s.reaction.SetMolarMass)
	case "mode":
		if len(args) != 1 {
			return errors.New("usage: mode moles|mass")
		}
		m, err := extent.ParseMode(args[0])
		if err != nil {
			return err
		}
		s.mode = m
		s.logger.Debug("mode changed", "mode", m)
		return s.show(true)
	case "percent":
		p, err := oneNumber(args, "percent <0-100>")
		if err != nil {
			return err
		}
		s.reaction.SetExtentByPercent(p)
		return s.show(false)
	case "extent":
		x, err := oneNumber(args, "extent <value>")
		if err != nil {
			return err
		}
		if err = s.reaction.SetExtentDirect(x); err != nil {
			return err
		}
		return s.show(false)
	case "show":
		return s.show(false)
	case "charts":
		snap, _ := s.reaction.Recompute(false)
		return s.writeCharts(snap)
	case "help", "?":
		_, err := fmt.Fprintln(s.out, sessionHelp)
		return err
	case "quit", "exit", "q":
		return errQuit
	}

	return fmt.Errorf("unknown command %q (try help)", cmd)
}

// slotEdit parses "<slot> <value>", applies set and prints the new state.
func (s *Session) slotEdit(args []string, set func(extent.Slot, float64) error) error {
	if len(args) != 2 {
		return errors.New("usage: <command> <slot> <value>")
	}
	sl, err := extent.ParseSlot(args[0])
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", args[1])
	}
	if err = set(sl, v); err != nil {
		return err
	}
	s.logger.Debug("input changed", "slot", sl, "value", v)

	return s.show(true)
}

// show recomputes and prints the tables. An infeasible reaction is reported
// in the table itself, so it is not an error here.
func (s *Session) show(inputsChanged bool) error {
	snap, err := s.reaction.Recompute(inputsChanged)
	if errors.Is(err, extent.ErrInfeasibleReaction) {
		s.logger.Warn("reaction cannot progress")
	}
	if err = view.WriteTable(s.out, snap, s.mode, s.printer); err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out)

	return err
}

// writeCharts writes whichever chart paths are configured.
func (s *Session) writeCharts(snap extent.Snapshot) error {
	if s.barChart == "" && s.lineGraph == "" {
		s.logger.Debug("no chart paths configured")
		return nil
	}
	if s.barChart != "" {
		if err := writeChart(s.barChart, view.BarChart(snap, s.mode), s.format); err != nil {
			return err
		}
		s.logger.Info("bar chart written", "path", s.barChart)
	}
	if s.lineGraph != "" {
		g, err := view.LineGraph(snap, s.mode)
		if err != nil {
			return err
		}
		if err = writeChart(s.lineGraph, g, s.format); err != nil {
			return err
		}
		s.logger.Info("line graph written", "path", s.lineGraph)
	}

	return nil
}

// oneNumber parses a single numeric argument.
func oneNumber(args []string, usage string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", args[0])
	}

	return v, nil
}
