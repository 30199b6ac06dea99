// Package ui runs a match in a full screen terminal view.
package ui

import (
	"io"
	"os"

	"github.com/rivo/tview"

	"gamma/internal/console"
	"gamma/internal/match"
)

// Run takes over the terminal until the match ends or the player presses
// Ctrl-D, then writes the final board and results to out.
func Run(m *match.Match, out io.Writer, color bool) error {
	g := m.Game()
	if err := CheckTerminal(int(os.Stdin.Fd()), g); err != nil {
		return err
	}

	app := tview.NewApplication()
	stats := tview.NewTextView().SetDynamicColors(true)
	view := NewBoardView(m, stats)
	view.OnEnd(app.Stop)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(view.Box, g.Height(), 0, true).
		AddItem(stats, 0, 1, false)
	if err := app.SetRoot(layout, true).SetFocus(view.Box).Run(); err != nil {
		return err
	}

	m.End()
	return console.WriteResults(out, m, console.Options{Color: color})
}
