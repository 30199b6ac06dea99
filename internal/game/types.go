package game

import (
	"errors"

	"gamma/internal/board"
)

var (
	ErrConfig   = errors.New("invalid game parameters")
	ErrPlayer   = errors.New("no such player")
	ErrNoFields = errors.New("player has no fields left")
	ErrPosition = errors.New("position is out of the board")
	ErrOccupied = errors.New("position is occupied")
	ErrIllegal  = errors.New("move breaks the area limit")
)

type Move struct {
	Player board.PlayerID `json:"player"`
	X      int            `json:"x"`
	Y      int            `json:"y"`
}

// Standing is one row of the result table.
type Standing struct {
	Player     board.PlayerID `json:"player"`
	Symbol     string         `json:"symbol"`
	BusyFields uint64         `json:"busy_fields"`
	Areas      uint32         `json:"areas"`
	Rank       int            `json:"rank"`
}

// Rejected reports whether err is one of the move rejections.
func Rejected(err error) bool {
	for _, e := range []error{ErrPlayer, ErrNoFields, ErrPosition, ErrOccupied, ErrIllegal} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
