// Package console plays a match from line oriented input.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/leonelquinteros/gotext"
	"github.com/logrusorgru/aurora"

	"gamma/internal/game"
	"gamma/internal/match"
)

var ErrInput = errors.New("wrong input")

type Options struct {
	JSON  bool // final report as JSON instead of a table
	Color bool
	Quiet bool // no board before each prompt
}

// Run reads "x y" lines for the current player until the match is over or
// the input ends. Blank lines and lines starting with # are skipped.
func Run(m *match.Match, in io.Reader, out io.Writer, opts Options) error {
	g := m.Game()
	sc := bufio.NewScanner(in)
	for m.Status() == match.InProgress {
		p := m.Current()
		if !opts.Quiet {
			fmt.Fprint(out, g.Board())
		}
		fmt.Fprint(out, gotext.Get("Player %c (%d free fields)> ", g.Symbol(p), g.FreeFields(p)))
		if !sc.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		x, y, err := parseMove(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if err := m.Play(x, y); err != nil {
			if !game.Rejected(err) {
				return err
			}
			fmt.Fprintln(out, gotext.Get("Move rejected: %v", err))
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	m.End()
	return WriteResults(out, m, opts)
}

func parseMove(line string) (x, y int, err error) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInput, line)
	}
	if x, err = strconv.Atoi(f[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInput, line)
	}
	if y, err = strconv.Atoi(f[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInput, line)
	}
	return x, y, nil
}

// WriteResults prints the final board and the standings.
func WriteResults(out io.Writer, m *match.Match, opts Options) error {
	if opts.JSON {
		b, err := sonic.ConfigStd.MarshalIndent(m.Summary(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", b)
		return err
	}

	au := aurora.NewAurora(opts.Color)
	g := m.Game()
	fmt.Fprint(out, g.Board())
	fmt.Fprintln(out, au.Bold(gotext.Get("Results")))
	for _, s := range g.Standings() {
		line := gotext.Get("%d. player %s: %d fields, %d areas", s.Rank, s.Symbol, s.BusyFields, s.Areas)
		if s.Rank == 1 {
			fmt.Fprintln(out, au.Green(line).Bold())
			continue
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
