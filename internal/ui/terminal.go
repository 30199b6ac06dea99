package ui

import (
	"errors"
	"fmt"

	"golang.org/x/term"

	"gamma/internal/game"
)

var ErrTerminalTooSmall = errors.New("terminal too small")

// statsRows is the height of the stats panel.
const statsRows = 4

// MinSize returns the smallest terminal the board and stats fit in.
func MinSize(g *game.Game) (cols, rows int) {
	return g.Width(), g.Height() + max(g.Players(), statsRows) + 2
}

// CheckTerminal fails with ErrTerminalTooSmall when the terminal on fd
// cannot hold the game.
func CheckTerminal(fd int, g *game.Game) error {
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	return fits(cols, rows, g)
}

func fits(cols, rows int, g *game.Game) error {
	wantCols, wantRows := MinSize(g)
	if cols < wantCols || rows < wantRows {
		return fmt.Errorf("%w: %dx%d, need %dx%d", ErrTerminalTooSmall, cols, rows, wantCols, wantRows)
	}
	return nil
}
