package game

import (
	"cmp"
	"slices"

	"gamma/internal/board"
)

// Standings ranks players by the number of cells they hold. Players with the
// same count share a rank and keep id order.
func (g *Game) Standings() []Standing {
	out := make([]Standing, 0, g.players)
	for i := 1; i <= g.players; i++ {
		p := board.PlayerID(i)
		out = append(out, Standing{
			Player:     p,
			Symbol:     string(g.Symbol(p)),
			BusyFields: g.BusyFields(p),
			Areas:      g.Areas(p),
		})
	}
	slices.SortStableFunc(out, func(a, b Standing) int {
		return cmp.Compare(b.BusyFields, a.BusyFields)
	})
	for i := range out {
		if i > 0 && out[i].BusyFields == out[i-1].BusyFields {
			out[i].Rank = out[i-1].Rank
			continue
		}
		out[i].Rank = i + 1
	}
	return out
}

// Winners returns the players holding the most cells.
func (g *Game) Winners() []board.PlayerID {
	var out []board.PlayerID
	for _, s := range g.Standings() {
		if s.Rank != 1 {
			break
		}
		out = append(out, s.Player)
	}
	return out
}
