package board

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four orthogonal neighbours in scan order.
var Directions = [...]Direction{Up, Right, Down, Left}

var offsets = [...][2]int{
	Up:    {0, 1},
	Right: {1, 0},
	Down:  {0, -1},
	Left:  {-1, 0},
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// Step returns the coordinates one cell away from (x, y) in direction d.
func (d Direction) Step(x, y int) (int, int) {
	o := offsets[d]
	return x + o[0], y + o[1]
}
