package board

import "errors"

const (
	// Empty marks an unoccupied cell.
	Empty byte = '.'
	// Nonexistent is reported for coordinates outside the board.
	Nonexistent byte = '0'

	// MaxPlayers is the number of distinct player symbols ('1'..'9', 'A'..'Z').
	MaxPlayers = 35
)

var (
	ErrBoardSize  = errors.New("board dimensions must be positive")
	ErrAllocation = errors.New("cannot allocate board")
)

// PlayerID identifies a player. NoPlayer is reserved for empty and off-board cells.
type PlayerID uint32

const NoPlayer PlayerID = 0

func (p PlayerID) Valid() bool { return p != NoPlayer }

// AreaID is a node of the area forest. NoArea marks an empty cell.
type AreaID uint64

const NoArea AreaID = 0

func (a AreaID) Valid() bool { return a != NoArea }

type Cell struct {
	Player PlayerID `json:"player"`
	Symbol byte     `json:"symbol"`
	Area   AreaID   `json:"area"`
}

func (c Cell) Free() bool {
	return !c.Player.Valid()
}

// PlayerSymbol returns the symbol drawn for player p.
func PlayerSymbol(p PlayerID) byte {
	switch {
	case p == NoPlayer:
		return Empty
	case p < 10:
		return byte('0' + p)
	case p <= MaxPlayers:
		return byte('A' + p - 10)
	}
	panic("player id out of symbol range")
}

// SymbolPlayer is the inverse of PlayerSymbol. Unknown symbols give NoPlayer.
func SymbolPlayer(s byte) PlayerID {
	switch {
	case s >= '1' && s <= '9':
		return PlayerID(s - '0')
	case s >= 'A' && s <= 'Z':
		return PlayerID(s-'A') + 10
	}
	return NoPlayer
}
