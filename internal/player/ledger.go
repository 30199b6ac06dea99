package player

import "gamma/internal/board"

// Ledger is indexed by board.PlayerID. Entry 0 stands for board.NoPlayer and stays inert.
type Ledger []Player

func NewLedger(players int) Ledger {
	l := make(Ledger, players+1)
	l[board.NoPlayer] = New(board.Empty)
	for i := 1; i <= players; i++ {
		l[i] = New(board.PlayerSymbol(board.PlayerID(i)))
	}
	return l
}

func (l Ledger) Players() int { return len(l) - 1 }

// UpdateNeighbours takes one free neighbour from every player found among the
// owners of the cells around a taken cell. A player seen in several directions
// loses a single neighbour.
func (l Ledger) UpdateNeighbours(owners [4]board.PlayerID) {
	for _, p := range owners {
		l[p].MarkNeighbourToRemove()
	}
	for _, p := range owners {
		l[p].RemoveNeighbour()
	}
}
