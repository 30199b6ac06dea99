package game

import "gamma/internal/board"

type PlayerStats struct {
	Player         board.PlayerID `json:"player"`
	Symbol         string         `json:"symbol"`
	BusyFields     uint64         `json:"busy_fields"`
	Areas          uint32         `json:"areas"`
	FreeNeighbours uint32         `json:"free_neighbours"`
	FreeFields     uint64         `json:"free_fields"`
}

// Snapshot is a read-only report of the game state.
type Snapshot struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	AreaCap    uint32        `json:"area_cap"`
	FreeFields uint64        `json:"free_fields"`
	Board      []string      `json:"board"` // top row first
	Players    []PlayerStats `json:"players"`
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Width:      g.Width(),
		Height:     g.Height(),
		AreaCap:    g.areas,
		FreeFields: g.freeFields,
		Board:      g.board.Rows(),
		Players:    make([]PlayerStats, 0, g.players),
	}
	for i := 1; i <= g.players; i++ {
		p := board.PlayerID(i)
		st := g.ledger[p]
		s.Players = append(s.Players, PlayerStats{
			Player:         p,
			Symbol:         string(st.Symbol),
			BusyFields:     st.BusyFields,
			Areas:          st.Areas,
			FreeNeighbours: st.FreeNeighbours,
			FreeFields:     g.FreeFields(p),
		})
	}
	return s
}
