package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxCells is the largest number of cells New will try to allocate.
const MaxCells = 1 << 30

// Board is the grid of cells together with the forest of areas they belong to.
// Row 0 is the bottom row.
type Board struct {
	width    int
	height   int
	cells    []Cell
	areas    forest
	lastArea AreaID
}

func New(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBoardSize, width, height)
	}
	hi, n := bits.Mul64(uint64(width), uint64(height))
	if hi != 0 || n > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrAllocation, width, height)
	}

	cells, areas, err := allocate(int(n))
	if err != nil {
		return nil, err
	}
	return &Board{
		width:  width,
		height: height,
		cells:  cells,
		areas:  areas,
	}, nil
}

func allocate(n int) (cells []Cell, areas forest, err error) {
	defer func() {
		if r := recover(); r != nil {
			cells, areas = nil, nil
			err = fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	cells = make([]Cell, n)
	areas = newForest(n)
	return cells, areas, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) mustInBounds(x, y int) {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("board: (%d,%d) outside %dx%d", x, y, b.width, b.height))
	}
}

// Cell returns a copy of the cell at (x, y). Off-board coordinates give an empty cell.
func (b *Board) Cell(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{Symbol: Nonexistent}
	}
	c := b.cells[b.index(x, y)]
	if c.Free() {
		c.Symbol = Empty
	}
	return c
}

func (b *Board) IsFree(x, y int) bool {
	b.mustInBounds(x, y)
	return b.cells[b.index(x, y)].Free()
}

// PlayerAt returns the owner of (x, y), NoPlayer for empty or off-board cells.
func (b *Board) PlayerAt(x, y int) PlayerID {
	if !b.InBounds(x, y) {
		return NoPlayer
	}
	return b.cells[b.index(x, y)].Player
}

func (b *Board) SymbolAt(x, y int) byte {
	return b.Cell(x, y).Symbol
}

// Area returns the root of the area containing (x, y), NoArea for empty or off-board cells.
func (b *Board) Area(x, y int) AreaID {
	if !b.InBounds(x, y) {
		return NoArea
	}
	c := b.cells[b.index(x, y)]
	if !c.Area.Valid() {
		return NoArea
	}
	return b.areas.find(c.Area)
}

// Neighbour returns the owner of the cell next to (x, y) in direction d.
func (b *Board) Neighbour(x, y int, d Direction) PlayerID {
	return b.PlayerAt(d.Step(x, y))
}

// NeighbourPlayers returns the owners of the four neighbours of (x, y) in Directions order.
func (b *Board) NeighbourPlayers(x, y int) [4]PlayerID {
	var out [4]PlayerID
	for i, d := range Directions {
		out[i] = b.Neighbour(x, y, d)
	}
	return out
}

// HasNeighbourWithSymbol reports whether any neighbour of (x, y) carries symbol.
func (b *Board) HasNeighbourWithSymbol(x, y int, symbol byte) bool {
	if !b.InBounds(x, y) {
		return false
	}
	for _, d := range Directions {
		if b.SymbolAt(d.Step(x, y)) == symbol {
			return true
		}
	}
	return false
}

// NewFreeNeighbours counts the empty neighbours of the free cell (x, y) that
// are not yet adjacent to any cell with symbol. Those cells join the frontier
// of the player once (x, y) is taken.
func (b *Board) NewFreeNeighbours(x, y int, symbol byte) uint32 {
	if !b.IsFree(x, y) {
		panic(fmt.Sprintf("board: new free neighbours of taken cell (%d,%d)", x, y))
	}
	var n uint32
	for _, d := range Directions {
		nx, ny := d.Step(x, y)
		if b.SymbolAt(nx, ny) == Empty && !b.HasNeighbourWithSymbol(nx, ny, symbol) {
			n++
		}
	}
	return n
}

// Place puts symbol of player on the free cell (x, y) and merges it with the
// areas of same-symbol neighbours. It returns how many unions joined two
// previously distinct areas.
func (b *Board) Place(x, y int, symbol byte, player PlayerID) uint32 {
	if !b.IsFree(x, y) {
		panic(fmt.Sprintf("board: place on taken cell (%d,%d)", x, y))
	}
	if !player.Valid() {
		panic("board: place without a player")
	}

	b.lastArea++
	area := b.lastArea
	b.cells[b.index(x, y)] = Cell{Player: player, Symbol: symbol, Area: area}

	var merged uint32
	for _, d := range Directions {
		nx, ny := d.Step(x, y)
		if !b.InBounds(nx, ny) {
			continue
		}
		n := b.cells[b.index(nx, ny)]
		if n.Free() || n.Symbol != symbol {
			continue
		}
		if b.areas.union(area, n.Area) {
			merged++
		}
	}
	return merged
}

// Rows returns the board as text rows, top row first.
func (b *Board) Rows() []string {
	rows := make([]string, 0, b.height)
	row := make([]byte, b.width)
	for y := b.height - 1; y >= 0; y-- {
		for x := 0; x < b.width; x++ {
			row[x] = b.SymbolAt(x, y)
		}
		rows = append(rows, string(row))
	}
	return rows
}

// String renders the board top row first, each row terminated by a newline.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for _, row := range b.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
