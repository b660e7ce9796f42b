package ai

import "reversi/internal/othello"

// Evaluator weights. The exact values are a policy choice; what matters
// is the ordering they induce: a corner outweighs any single non-corner
// disc at equal piece count, and mobility dominates raw piece count in
// the midgame.
const (
	pieceWeight    = 1.0
	cornerWeight   = 25.0
	mobilityWeight = 5.0
)

// Evaluate scores the board from color's perspective. It combines the
// piece-count differential, corner occupancy and a mobility differential.
// The heuristic is zero-sum: Evaluate(b, c) == -Evaluate(b, Opponent(c)).
func Evaluate(b *othello.Board, color othello.Cell) float64 {
	opponent := othello.Opponent(color)
	size := b.Size()

	var ownPieces, oppPieces int
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			switch b.Cell(row, col) {
			case color:
				ownPieces++
			case opponent:
				oppPieces++
			}
		}
	}

	corners := [4]othello.Coord{
		{Row: 0, Col: 0},
		{Row: 0, Col: size - 1},
		{Row: size - 1, Col: 0},
		{Row: size - 1, Col: size - 1},
	}

	var ownCorners, oppCorners int
	for _, corner := range corners {
		switch b.Cell(corner.Row, corner.Col) {
		case color:
			ownCorners++
		case opponent:
			oppCorners++
		}
	}

	ownMobility := len(b.LegalMoves(color))
	oppMobility := len(b.LegalMoves(opponent))

	return pieceWeight*float64(ownPieces-oppPieces) +
		cornerWeight*float64(ownCorners-oppCorners) +
		mobilityWeight*float64(ownMobility-oppMobility)
}
