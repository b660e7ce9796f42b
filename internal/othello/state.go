package othello

import (
	"fmt"

	"reversi/internal/config"
)

// State is the plain serialized representation of a board. Save files
// (conventionally *.rsv) hold this shape as JSON.
type State struct {
	Grid    [][]int `json:"grid"`
	Size    int     `json:"size"`
	ToMove  int     `json:"to_move"`
	Version string  `json:"version,omitempty"`
}

// Serialize converts the board to its plain data representation.
func (b *Board) Serialize() State {
	grid := make([][]int, b.size)
	for r := 0; r < b.size; r++ {
		grid[r] = make([]int, b.size)
		for c := 0; c < b.size; c++ {
			grid[r][c] = int(b.grid[r][c])
		}
	}

	return State{
		Grid:    grid,
		Size:    b.size,
		ToMove:  int(b.toMove),
		Version: config.SaveFileVersion,
	}
}

// Validate checks the structural integrity of the state.
func (s State) Validate() error {
	if s.Size < config.MinBoardSize || s.Size > config.MaxBoardSize || s.Size%2 != 0 {
		return fmt.Errorf("%w: size %d must be even and within [%d,%d]",
			ErrInvalidBoardState, s.Size, config.MinBoardSize, config.MaxBoardSize)
	}

	if len(s.Grid) != s.Size {
		return fmt.Errorf("%w: grid has %d rows, expected %d", ErrInvalidBoardState, len(s.Grid), s.Size)
	}

	for r, row := range s.Grid {
		if len(row) != s.Size {
			return fmt.Errorf("%w: grid row %d has %d cells, expected %d",
				ErrInvalidBoardState, r, len(row), s.Size)
		}
		for c, cell := range row {
			if cell != int(Empty) && cell != int(Black) && cell != int(White) {
				return fmt.Errorf("%w: invalid cell value %d at (%d,%d)", ErrInvalidBoardState, cell, r, c)
			}
		}
	}

	if s.ToMove != int(Black) && s.ToMove != int(White) {
		return fmt.Errorf("%w: invalid to_move value %d", ErrInvalidBoardState, s.ToMove)
	}

	return nil
}

// Deserialize builds a board from a validated state. It fails atomically:
// no board is produced on any structural violation. The resulting board
// has empty history and redo stacks.
func Deserialize(s State) (*Board, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		size:   s.Size,
		grid:   newGrid(s.Size),
		toMove: Cell(s.ToMove),
	}
	for r := 0; r < s.Size; r++ {
		for c := 0; c < s.Size; c++ {
			b.grid[r][c] = Cell(s.Grid[r][c])
		}
	}

	return b, nil
}
