package player

import "gamma/internal/board"

// Player holds the running statistics of one player.
type Player struct {
	Symbol         byte   `json:"symbol"`
	BusyFields     uint64 `json:"busy_fields"`
	FreeNeighbours uint32 `json:"free_neighbours"` // empty cells adjacent to the player's areas
	Areas          uint32 `json:"areas"`

	neighbourToRemove bool
}

func New(symbol byte) Player {
	return Player{Symbol: symbol}
}

func (p *Player) inert() bool {
	return p.Symbol == board.Empty
}

// MarkNeighbourToRemove records that one of the player's free neighbours was taken.
func (p *Player) MarkNeighbourToRemove() {
	if p.inert() {
		return
	}
	p.neighbourToRemove = true
}

// RemoveNeighbour drops a marked free neighbour. Repeated calls without a new
// mark do nothing.
func (p *Player) RemoveNeighbour() {
	if p.inert() || !p.neighbourToRemove {
		return
	}
	p.neighbourToRemove = false
	if p.FreeNeighbours == 0 {
		panic("player: removing a free neighbour from an empty frontier")
	}
	p.FreeNeighbours--
}

// Move records a placed cell: newNeighbours cells join the frontier and
// merged areas collapse into the new one.
func (p *Player) Move(newNeighbours, merged uint32) {
	p.BusyFields++
	p.FreeNeighbours += newNeighbours
	p.Areas++
	if p.Areas < merged {
		panic("player: more areas merged than owned")
	}
	p.Areas -= merged
}

// FreeFields returns how many cells the player may still take.
func (p *Player) FreeFields(areaCap uint32, freeFields uint64) uint64 {
	if p.Areas < areaCap {
		return freeFields
	}
	return uint64(p.FreeNeighbours)
}

// CanMove reports whether the player may take a cell; neighbour tells if that
// cell touches one of the player's areas.
func (p *Player) CanMove(areaCap uint32, freeFields uint64, neighbour bool) bool {
	if p.inert() {
		panic("player: move by the empty player")
	}
	if p.Areas < areaCap && freeFields > 0 {
		return true
	}
	return p.FreeNeighbours > 0 && neighbour
}
