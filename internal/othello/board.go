package othello

import (
	"fmt"

	"reversi/internal/config"
)

// directions holds the 8 direction vectors used for legality walks.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// snapshot is a full copy of the mutable board state, used by the
// undo stack.
type snapshot struct {
	grid   [][]Cell
	toMove Cell
}

// redoEntry pairs an undone state with the logged move that produced it,
// so redo can restore the move log as well.
type redoEntry struct {
	snap snapshot
	move LoggedMove
}

// Board owns the grid, the legality rules and the reversible move history.
// It is not safe for concurrent use; callers must serialize access.
type Board struct {
	size      int
	grid      [][]Cell
	toMove    Cell
	history   []snapshot
	redoStack []redoEntry
	moveList  []LoggedMove
}

// NewBoard creates a board of the given size with the canonical center
// cross and Black to move. Size must be even and within the supported range.
func NewBoard(size int) (*Board, error) {
	if size < config.MinBoardSize || size > config.MaxBoardSize || size%2 != 0 {
		return nil, fmt.Errorf("%w: board size %d must be even and within [%d,%d]",
			ErrConfiguration, size, config.MinBoardSize, config.MaxBoardSize)
	}

	b := &Board{
		size:   size,
		grid:   newGrid(size),
		toMove: Black,
	}

	center := size / 2
	b.grid[center-1][center-1] = White
	b.grid[center][center] = White
	b.grid[center-1][center] = Black
	b.grid[center][center-1] = Black

	return b, nil
}

func newGrid(size int) [][]Cell {
	grid := make([][]Cell, size)
	for i := range grid {
		grid[i] = make([]Cell, size)
	}
	return grid
}

func copyGrid(grid [][]Cell) [][]Cell {
	copied := make([][]Cell, len(grid))
	for i, row := range grid {
		copied[i] = make([]Cell, len(row))
		copy(copied[i], row)
	}
	return copied
}

// Size returns the board size.
func (b *Board) Size() int {
	return b.size
}

// ToMove returns the color whose turn it is.
func (b *Board) ToMove() Cell {
	return b.toMove
}

// Cell returns the content of the given square.
func (b *Board) Cell(row, col int) Cell {
	return b.grid[row][col]
}

// MoveList returns a copy of the log of applied moves.
func (b *Board) MoveList() []LoggedMove {
	moves := make([]LoggedMove, len(b.moveList))
	copy(moves, b.moveList)
	return moves
}

// HistoryLen returns the number of applied, non-reverted moves.
func (b *Board) HistoryLen() int {
	return len(b.history)
}

// RedoLen returns the number of moves available to redo.
func (b *Board) RedoLen() int {
	return len(b.redoStack)
}

// Clone returns a deep copy of the board, including its history.
func (b *Board) Clone() *Board {
	clone := &Board{
		size:      b.size,
		grid:      copyGrid(b.grid),
		toMove:    b.toMove,
		history:   make([]snapshot, len(b.history)),
		redoStack: make([]redoEntry, len(b.redoStack)),
		moveList:  make([]LoggedMove, len(b.moveList)),
	}
	for i, snap := range b.history {
		clone.history[i] = snapshot{grid: copyGrid(snap.grid), toMove: snap.toMove}
	}
	for i, entry := range b.redoStack {
		clone.redoStack[i] = redoEntry{
			snap: snapshot{grid: copyGrid(entry.snap.grid), toMove: entry.snap.toMove},
			move: entry.move,
		}
	}
	copy(clone.moveList, b.moveList)
	return clone
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// flipsFor walks all 8 directions from an empty square and collects the
// opponent runs that terminate on a same-color disc. An empty result
// means the square is not a legal move for color.
func (b *Board) flipsFor(row, col int, color Cell) []Coord {
	if !b.inBounds(row, col) || b.grid[row][col] != Empty {
		return nil
	}

	opponent := Opponent(color)
	var flips []Coord

	for _, dir := range directions {
		dr, dc := dir[0], dir[1]

		r, c := row+dr, col+dc
		run := 0
		for b.inBounds(r, c) && b.grid[r][c] == opponent {
			r += dr
			c += dc
			run++
		}

		// The run counts only if it is non-empty and ends on our own disc.
		if run > 0 && b.inBounds(r, c) && b.grid[r][c] == color {
			for s := 1; s <= run; s++ {
				flips = append(flips, Coord{Row: row + dr*s, Col: col + dc*s})
			}
		}
	}

	return flips
}

// LegalMoves returns all legal moves for color in row-major order.
// Every returned move has a non-empty flip set.
func (b *Board) LegalMoves(color Cell) []Move {
	var moves []Move
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			flips := b.flipsFor(row, col, color)
			if len(flips) > 0 {
				moves = append(moves, Move{Row: row, Col: col, Color: color, Flips: flips})
			}
		}
	}
	return moves
}

// HasMoves checks whether color has at least one legal move.
func (b *Board) HasMoves(color Cell) bool {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if len(b.flipsFor(row, col, color)) > 0 {
				return true
			}
		}
	}
	return false
}

// pushHistory snapshots the current state and invalidates the redo stack.
func (b *Board) pushHistory() {
	b.history = append(b.history, snapshot{grid: copyGrid(b.grid), toMove: b.toMove})
	b.redoStack = nil
}

// MakeMove applies a move for the side to move. The board is left
// untouched if the move is not currently legal.
func (b *Board) MakeMove(move Move) error {
	if move.Color != b.toMove {
		return fmt.Errorf("%w: it is %s's turn, not %s's", ErrInvalidMove, b.toMove, move.Color)
	}

	flips := b.flipsFor(move.Row, move.Col, move.Color)
	if len(flips) == 0 {
		return fmt.Errorf("%w: %s cannot play at (%d,%d)", ErrInvalidMove, move.Color, move.Row, move.Col)
	}

	b.pushHistory()

	b.grid[move.Row][move.Col] = move.Color
	for _, flip := range flips {
		b.grid[flip.Row][flip.Col] = move.Color
	}

	b.moveList = append(b.moveList, LoggedMove{Color: move.Color, Row: move.Row, Col: move.Col})
	b.toMove = Opponent(b.toMove)

	return nil
}

// PassTurn passes the turn to the opponent. It is intended for positions
// where the side to move has no legal moves, and is logged as (-1,-1).
func (b *Board) PassTurn() {
	b.pushHistory()
	b.moveList = append(b.moveList, LoggedMove{Color: b.toMove, Row: PassRow, Col: PassCol})
	b.toMove = Opponent(b.toMove)
}

// Undo reverts the last applied move. It returns false and leaves the
// board unchanged if there is nothing to undo.
func (b *Board) Undo() bool {
	if len(b.history) == 0 {
		return false
	}

	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	undone := b.moveList[len(b.moveList)-1]
	b.moveList = b.moveList[:len(b.moveList)-1]

	b.redoStack = append(b.redoStack, redoEntry{
		snap: snapshot{grid: b.grid, toMove: b.toMove},
		move: undone,
	})

	b.grid = last.grid
	b.toMove = last.toMove

	return true
}

// Redo re-applies the most recently undone move. It returns false if the
// redo stack is empty.
func (b *Board) Redo() bool {
	if len(b.redoStack) == 0 {
		return false
	}

	next := b.redoStack[len(b.redoStack)-1]
	b.redoStack = b.redoStack[:len(b.redoStack)-1]

	b.history = append(b.history, snapshot{grid: b.grid, toMove: b.toMove})

	b.grid = next.snap.grid
	b.toMove = next.snap.toMove
	b.moveList = append(b.moveList, next.move)

	return true
}

// GameOver reports whether the game has ended: the grid is full or
// neither color has a legal move. Computed on demand, never cached.
func (b *Board) GameOver() bool {
	if b.CountEmpty() == 0 {
		return true
	}
	return !b.HasMoves(Black) && !b.HasMoves(White)
}

// Score returns the disc counts for black and white.
func (b *Board) Score() (black, white int) {
	for _, row := range b.grid {
		for _, cell := range row {
			switch cell {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

// CountEmpty returns the number of empty squares.
func (b *Board) CountEmpty() int {
	empty := 0
	for _, row := range b.grid {
		for _, cell := range row {
			if cell == Empty {
				empty++
			}
		}
	}
	return empty
}

// Fingerprint returns a compact content-derived key identifying the grid
// contents and the side to move. Equal positions produce equal keys
// regardless of how they were reached.
func (b *Board) Fingerprint() string {
	buf := make([]byte, 0, b.size*b.size+2)
	buf = append(buf, byte(b.size), byte(b.toMove))
	for _, row := range b.grid {
		for _, cell := range row {
			buf = append(buf, byte(cell))
		}
	}
	return string(buf)
}
