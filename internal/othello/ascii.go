package othello

import (
	"fmt"
	"strings"
)

// AsciiArtLines returns the ascii art lines for the board. Squares that
// are legal moves for the side to move are marked with a dot.
func (b *Board) AsciiArtLines() []string {
	legal := make(map[Coord]bool)
	for _, move := range b.LegalMoves(b.toMove) {
		legal[Coord{Row: move.Row, Col: move.Col}] = true
	}

	lines := make([]string, 0, b.size+2)

	header := "   +"
	for col := 0; col < b.size; col++ {
		header += fmt.Sprintf("-%c", 'a'+col)
	}
	lines = append(lines, header+"-+")

	for row := 0; row < b.size; row++ {
		line := fmt.Sprintf("%2d |", row+1)

		for col := 0; col < b.size; col++ {
			switch {
			case b.grid[row][col] == Black:
				line += "● "
			case b.grid[row][col] == White:
				line += "○ "
			case legal[Coord{Row: row, Col: col}]:
				line += "· "
			default:
				line += "  "
			}
		}

		lines = append(lines, line+"|")
	}

	lines = append(lines, "   +"+strings.Repeat("-", 2*b.size+1)+"+")

	return lines
}

// FieldToCoord converts a field notation (e.g. "a1") to a board
// coordinate. Pass is written as "--", "ps" or "pa".
func (b *Board) FieldToCoord(field string) (Coord, error) {
	if len(field) < 2 {
		return Coord{}, fmt.Errorf("invalid field: %q", field)
	}

	field = strings.ToLower(field)

	if field == "--" || field == "ps" || field == "pa" {
		return Coord{Row: PassRow, Col: PassCol}, nil
	}

	col := int(field[0] - 'a')

	var row int
	if _, err := fmt.Sscanf(field[1:], "%d", &row); err != nil {
		return Coord{}, fmt.Errorf("invalid field: %q", field)
	}
	row--

	if !b.inBounds(row, col) {
		return Coord{}, fmt.Errorf("field %q is outside the %dx%d board", field, b.size, b.size)
	}

	return Coord{Row: row, Col: col}, nil
}
