package othello

// Cell is the content of a single board square.
type Cell int

const (
	Empty Cell = 0
	Black Cell = 1
	White Cell = 2
)

// Opponent returns the opposing color.
func Opponent(color Cell) Cell {
	return Black + White - color
}

// IsColor checks whether the cell holds a disc.
func (c Cell) IsColor() bool {
	return c == Black || c == White
}

// String returns a human readable name for the cell.
func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}
