package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/rivo/tview"

	"gamma/internal/match"
)

var (
	orchid     = tcell.NewRGBColor(153, 50, 204)
	mintGreen  = tcell.NewRGBColor(152, 255, 152)
	washedBlue = tcell.NewRGBColor(64, 64, 255)
)

// BoardView draws a match and turns key presses into moves.
type BoardView struct {
	Box   *tview.Box
	stats *tview.TextView
	m     *match.Match

	// cursor in screen cells, row 0 is the top row
	cursorX int
	cursorY int
	failed  bool

	onEnd func()
}

func NewBoardView(m *match.Match, stats *tview.TextView) *BoardView {
	v := &BoardView{
		Box:   tview.NewBox(),
		stats: stats,
		m:     m,
		onEnd: func() {},
	}
	v.Box.SetDrawFunc(v.draw)
	v.Box.SetInputCapture(v.HandleKey)
	v.refresh()
	return v
}

// OnEnd sets the function called once the match is over.
func (v *BoardView) OnEnd(f func()) {
	v.onEnd = f
}

// Cursor returns the cursor position in board coordinates.
func (v *BoardView) Cursor() (x, y int) {
	return v.cursorX, v.m.Game().Height() - 1 - v.cursorY
}

func (v *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	g := v.m.Game()
	current := v.m.Current()
	for row := 0; row < g.Height() && row < height; row++ {
		for col := 0; col < g.Width() && col < width; col++ {
			p := g.PlayerAt(col, g.Height()-1-row)
			style := tcell.StyleDefault
			switch {
			case p.Valid() && p == current:
				style = style.Foreground(orchid)
			case !p.Valid():
				style = style.Foreground(mintGreen)
			}
			if col == v.cursorX && row == v.cursorY {
				style = style.Background(orchid).Foreground(tcell.ColorBlack)
			}
			screen.SetContent(x+col, y+row, rune(g.Symbol(p)), nil, style)
		}
	}
	return x, y, width, height
}

// HandleKey moves the cursor with the arrows, plays on space or c and ends
// the match on Ctrl-D.
func (v *BoardView) HandleKey(ev *tcell.EventKey) *tcell.EventKey {
	g := v.m.Game()
	switch ev.Key() {
	case tcell.KeyUp:
		v.cursorY = max(v.cursorY-1, 0)
	case tcell.KeyDown:
		v.cursorY = min(v.cursorY+1, g.Height()-1)
	case tcell.KeyLeft:
		v.cursorX = max(v.cursorX-1, 0)
	case tcell.KeyRight:
		v.cursorX = min(v.cursorX+1, g.Width()-1)
	case tcell.KeyCtrlD:
		v.m.End()
		v.onEnd()
		return nil
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'c', 'C':
			v.play()
		default:
			return ev
		}
	default:
		return ev
	}
	v.refresh()
	return nil
}

func (v *BoardView) play() {
	x, y := v.Cursor()
	v.failed = v.m.Play(x, y) != nil
	if v.m.Status() == match.Finished {
		v.onEnd()
	}
}

func (v *BoardView) refresh() {
	if v.stats == nil {
		return
	}
	p := v.m.Current()
	if !p.Valid() {
		v.stats.SetText(gotext.Get("Game over."))
		return
	}
	g := v.m.Game()
	text := fmt.Sprintf("[%s]%s[-]", hex(orchid),
		gotext.Get("Make a move! Player: %d\nSymbol: %c\nAvailable fields: %d", p, g.Symbol(p), g.FreeFields(p)))
	if v.failed {
		text += fmt.Sprintf("\n[%s]%s[-]", hex(washedBlue), gotext.Get("Move not possible."))
	}
	v.stats.SetText(text)
}

func hex(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}
