package game

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"gamma/internal/board"
)

// Verify recomputes the bookkeeping from the board and compares it with the
// ledger: connected cells share an area, cell counts add up, and every
// player's area and frontier counters match the board.
func (g *Game) Verify() error {
	var errs []error
	w, h := g.Width(), g.Height()

	roots := make([]mapset.Set[board.AreaID], g.players+1)
	frontier := make([]mapset.Set[[2]int], g.players+1)
	for i := range roots {
		roots[i] = mapset.New[board.AreaID]()
		frontier[i] = mapset.New[[2]int]()
	}

	var busy uint64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := g.board.PlayerAt(x, y)
			if !p.Valid() {
				for _, owner := range g.board.NeighbourPlayers(x, y) {
					frontier[owner].Put([2]int{x, y})
				}
				continue
			}
			busy++
			area := g.board.Area(x, y)
			roots[p].Put(area)
			for _, d := range []board.Direction{board.Right, board.Up} {
				nx, ny := d.Step(x, y)
				if g.board.PlayerAt(nx, ny) == p && g.board.Area(nx, ny) != area {
					errs = append(errs, fmt.Errorf("cells (%d,%d) and (%d,%d) of player %d are in different areas", x, y, nx, ny, p))
				}
			}
		}
	}

	components := g.components()

	var counted uint64
	for i := 1; i <= g.players; i++ {
		st := g.ledger[i]
		counted += st.BusyFields
		if roots[i].Size() != components[i] {
			errs = append(errs, fmt.Errorf("player %d: %d area roots for %d connected regions", i, roots[i].Size(), components[i]))
		}
		if got := uint32(roots[i].Size()); got != st.Areas {
			errs = append(errs, fmt.Errorf("player %d: ledger has %d areas, board has %d", i, st.Areas, got))
		}
		if got := uint32(frontier[i].Size()); got != st.FreeNeighbours {
			errs = append(errs, fmt.Errorf("player %d: ledger has %d free neighbours, board has %d", i, st.FreeNeighbours, got))
		}
	}
	if counted != busy {
		errs = append(errs, fmt.Errorf("ledger holds %d cells, board holds %d", counted, busy))
	}
	if counted+g.freeFields != uint64(w)*uint64(h) {
		errs = append(errs, fmt.Errorf("%d busy + %d free != %d cells", counted, g.freeFields, w*h))
	}
	return errors.Join(errs...)
}

// components counts the 4-connected regions of every player by flood fill.
func (g *Game) components() []int {
	out := make([]int, g.players+1)
	seen := mapset.New[[2]int]()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := g.board.PlayerAt(x, y)
			if !p.Valid() || seen.Has([2]int{x, y}) {
				continue
			}
			out[p]++
			queue := [][2]int{{x, y}}
			seen.Put([2]int{x, y})
			for len(queue) > 0 {
				c := queue[0]
				queue = queue[1:]
				for _, d := range board.Directions {
					nx, ny := d.Step(c[0], c[1])
					if g.board.PlayerAt(nx, ny) != p || seen.Has([2]int{nx, ny}) {
						continue
					}
					seen.Put([2]int{nx, ny})
					queue = append(queue, [2]int{nx, ny})
				}
			}
		}
	}
	return out
}
