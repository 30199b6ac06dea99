package match

import "gamma/internal/board"

const (
	ActionMove     = "move"
	ActionGameOver = "game_over"
)

// Broadcaster receives the events of a match.
type Broadcaster interface {
	Broadcast(matchID string, action string, data any)
}

type MoveEvent struct {
	Player board.PlayerID `json:"player"`
	X      int            `json:"x"`
	Y      int            `json:"y"`
	Next   board.PlayerID `json:"next"`
	Board  string         `json:"board"`
}

type GameOverEvent struct {
	Winners []board.PlayerID `json:"winners"`
	Board   string           `json:"board"`
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(string, string, any) {}
