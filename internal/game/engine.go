package game

import (
	"fmt"

	"gamma/internal/board"
	"gamma/internal/player"
)

// Game owns the board and the player ledger. It is not safe for concurrent use.
type Game struct {
	players    int
	areas      uint32
	freeFields uint64
	board      *board.Board
	ledger     player.Ledger
}

func New(width, height, players, areas int) (*Game, error) {
	if width <= 0 || height <= 0 || areas <= 0 || uint64(areas) > uint64(^uint32(0)) ||
		players <= 0 || players > board.MaxPlayers {
		return nil, fmt.Errorf("%w: width=%d height=%d players=%d areas=%d",
			ErrConfig, width, height, players, areas)
	}

	b, err := board.New(width, height)
	if err != nil {
		return nil, err
	}
	return &Game{
		players:    players,
		areas:      uint32(areas),
		freeFields: uint64(width) * uint64(height),
		board:      b,
		ledger:     player.NewLedger(players),
	}, nil
}

func (g *Game) validPlayer(p board.PlayerID) bool {
	return p.Valid() && int(p) <= g.players
}

// CanPlay checks whether p may take (x, y) without changing anything.
func (g *Game) CanPlay(p board.PlayerID, x, y int) error {
	if !g.validPlayer(p) {
		return fmt.Errorf("%w: %d", ErrPlayer, p)
	}
	if g.FreeFields(p) == 0 {
		return fmt.Errorf("%w: player %d", ErrNoFields, p)
	}
	if !g.board.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrPosition, x, y)
	}
	if !g.board.IsFree(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOccupied, x, y)
	}
	pl := &g.ledger[p]
	neighbour := g.board.HasNeighbourWithSymbol(x, y, pl.Symbol)
	if !pl.CanMove(g.areas, g.freeFields, neighbour) {
		return fmt.Errorf("%w: player %d at (%d,%d)", ErrIllegal, p, x, y)
	}
	return nil
}

// Move places a cell of p at (x, y). A rejected move leaves the game untouched.
func (g *Game) Move(p board.PlayerID, x, y int) error {
	if err := g.CanPlay(p, x, y); err != nil {
		return err
	}

	g.freeFields--
	g.ledger.UpdateNeighbours(g.board.NeighbourPlayers(x, y))

	symbol := g.ledger[p].Symbol
	newNeighbours := g.board.NewFreeNeighbours(x, y, symbol)
	merged := g.board.Place(x, y, symbol, p)
	g.ledger[p].Move(newNeighbours, merged)
	return nil
}

// BusyFields returns the number of cells p holds, 0 for an unknown player.
func (g *Game) BusyFields(p board.PlayerID) uint64 {
	if !g.validPlayer(p) {
		return 0
	}
	return g.ledger[p].BusyFields
}

// FreeFields returns how many cells p may still take, 0 for an unknown player.
func (g *Game) FreeFields(p board.PlayerID) uint64 {
	if !g.validPlayer(p) {
		return 0
	}
	return g.ledger[p].FreeFields(g.areas, g.freeFields)
}

func (g *Game) Areas(p board.PlayerID) uint32 {
	if !g.validPlayer(p) {
		return 0
	}
	return g.ledger[p].Areas
}

// Stats returns a copy of p's ledger entry.
func (g *Game) Stats(p board.PlayerID) (player.Player, bool) {
	if !g.validPlayer(p) {
		return player.Player{}, false
	}
	return g.ledger[p], true
}

// Symbol returns the symbol of p, board.Empty for an unknown player.
func (g *Game) Symbol(p board.PlayerID) byte {
	if !g.validPlayer(p) {
		return board.Empty
	}
	return g.ledger[p].Symbol
}

func (g *Game) Width() int        { return g.board.Width() }
func (g *Game) Height() int       { return g.board.Height() }
func (g *Game) Players() int      { return g.players }
func (g *Game) AreaCap() uint32   { return g.areas }
func (g *Game) FreeTotal() uint64 { return g.freeFields }

// Board renders the board, top row first.
func (g *Game) Board() string {
	return g.board.String()
}

// PlayerAt returns the owner of (x, y).
func (g *Game) PlayerAt(x, y int) board.PlayerID {
	return g.board.PlayerAt(x, y)
}
