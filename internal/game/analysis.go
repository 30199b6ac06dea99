package game

import "gamma/internal/board"

// LegalMoves lists every cell p may take, bottom row first.
func (g *Game) LegalMoves(p board.PlayerID) []Move {
	if g.FreeFields(p) == 0 {
		return nil
	}
	var moves []Move
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.CanPlay(p, x, y) == nil {
				moves = append(moves, Move{Player: p, X: x, Y: y})
			}
		}
	}
	return moves
}

// NextPlayer returns the first player after current, in turn order and
// wrapping around to current itself, that still has fields to take.
// It returns board.NoPlayer when nobody can move.
func (g *Game) NextPlayer(current board.PlayerID) board.PlayerID {
	n := board.PlayerID(g.players)
	if current > n {
		current = board.NoPlayer
	}
	p := current
	for i := board.PlayerID(0); i < n; i++ {
		p = p%n + 1
		if g.FreeFields(p) > 0 {
			return p
		}
	}
	return board.NoPlayer
}

// Finished reports whether no player can move anymore.
func (g *Game) Finished() bool {
	return g.NextPlayer(board.NoPlayer) == board.NoPlayer
}
