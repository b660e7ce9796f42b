package othello

import "fmt"

// PassRow and PassCol mark a pass in the move log.
const (
	PassRow = -1
	PassCol = -1
)

// Coord is a board coordinate.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move describes a candidate placement and the discs it would flip.
// A legal move always has at least one flip.
type Move struct {
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Color Cell    `json:"color"`
	Flips []Coord `json:"flips"`
}

// FlipCount returns the number of discs the move would flip.
func (m Move) FlipCount() int {
	return len(m.Flips)
}

// String returns the move in "(row,col)" form, or "pass".
func (m Move) String() string {
	if m.Row == PassRow && m.Col == PassCol {
		return "pass"
	}
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// LoggedMove is one entry of the board's move log. A pass is logged
// with row and col set to -1.
type LoggedMove struct {
	Color Cell `json:"color"`
	Row   int  `json:"row"`
	Col   int  `json:"col"`
}

// IsPass checks whether the logged move was a pass.
func (m LoggedMove) IsPass() bool {
	return m.Row == PassRow && m.Col == PassCol
}
