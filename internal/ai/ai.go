package ai

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"reversi/internal/config"
	"reversi/internal/othello"
)

// defaultEndgameThreshold is the empty-square count below which the
// search deepens to play out the remaining game exactly.
const defaultEndgameThreshold = 8

// tieTolerance is the score margin within which root moves are treated
// as equal for random tie-breaking.
const tieTolerance = 1e-9

// AI is a depth-bounded minimax search engine with alpha-beta pruning
// and a transposition cache. It holds no reference to any board between
// calls; Choose operates on a private clone of its argument.
type AI struct {
	maxDepth         int
	table            *TranspositionTable
	nodes            int
	rng              *rand.Rand
	endgameThreshold int
}

// Option configures an AI.
type Option func(*AI)

// WithRand injects the random source used for tie-breaking, so behavior
// is reproducible under test.
func WithRand(rng *rand.Rand) Option {
	return func(a *AI) { a.rng = rng }
}

// WithTableSize overrides the transposition table cap.
func WithTableSize(maxSize int) Option {
	return func(a *AI) { a.table = NewTranspositionTable(maxSize) }
}

// WithEndgameThreshold overrides the empty-square count at which the
// search switches to exact endgame play.
func WithEndgameThreshold(empties int) Option {
	return func(a *AI) { a.endgameThreshold = empties }
}

// New creates a search engine with the given maximum depth in plies.
func New(maxDepth int, opts ...Option) (*AI, error) {
	if !config.ValidAIDepth(maxDepth) {
		return nil, fmt.Errorf("%w: AI depth %d outside valid range [%d,%d]",
			othello.ErrConfiguration, maxDepth, config.MinAIDepth, config.MaxAIDepth)
	}

	a := &AI{
		maxDepth:         maxDepth,
		table:            NewTranspositionTable(config.MaxTranspositionSize),
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		endgameThreshold: defaultEndgameThreshold,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// MaxDepth returns the configured search depth.
func (a *AI) MaxDepth() int {
	return a.maxDepth
}

// NodesSearched returns the number of nodes visited by the last Choose
// call. It is reset at the start of each call.
func (a *AI) NodesSearched() int {
	return a.nodes
}

// Table returns the transposition table, mainly for diagnostics.
func (a *AI) Table() *TranspositionTable {
	return a.table
}

// Choose picks a move for color, or nil when color has no legal move.
// The board observed by the caller is never mutated.
func (a *AI) Choose(board *othello.Board, color othello.Cell) *othello.Move {
	a.nodes = 0

	if a.table.OverCap() {
		a.table.Clear()
	}

	moves := board.LegalMoves(color)
	if len(moves) == 0 {
		return nil
	}

	work := board.Clone()
	if work.ToMove() != color {
		// Treat the position as if the opponent passed. This only
		// affects the private clone.
		work.PassTurn()
	}

	depth := a.rootDepth(work)

	bestScore := math.Inf(-1)
	var best []othello.Move

	// Each root move is searched with a full window so that true ties
	// survive for random tie-breaking.
	for _, move := range a.orderMoves(work, moves) {
		if err := work.MakeMove(move); err != nil {
			continue
		}
		score := -a.search(work, depth-1, math.Inf(-1), math.Inf(1), false)
		work.Undo()

		switch {
		case score > bestScore+tieTolerance:
			bestScore = score
			best = append(best[:0], move)
		case score > bestScore-tieTolerance:
			best = append(best, move)
		}
	}

	chosen := best[a.rng.Intn(len(best))]
	return &chosen
}

// rootDepth returns the depth budget for this search, deepening to the
// number of empty squares near the endgame for exact play.
func (a *AI) rootDepth(b *othello.Board) int {
	depth := a.maxDepth
	if empties := b.CountEmpty(); empties <= a.endgameThreshold && empties > depth {
		depth = empties
	}
	return depth
}

// search is a negamax alpha-beta search scoring the position from the
// perspective of the side to move on b. Hypothetical moves are applied
// to b and reverted on every exit path.
func (a *AI) search(b *othello.Board, depth int, alpha, beta float64, passed bool) float64 {
	a.nodes++

	if depth <= 0 || b.GameOver() {
		return Evaluate(b, b.ToMove())
	}

	key := b.Fingerprint()
	if entry, ok := a.table.Lookup(key); ok && entry.Depth >= depth {
		return entry.Score
	}

	moves := b.LegalMoves(b.ToMove())
	if len(moves) == 0 {
		if passed {
			// Both sides pass consecutively: evaluate as a leaf.
			return Evaluate(b, b.ToMove())
		}

		// Pass keeps the remaining depth budget.
		b.PassTurn()
		score := -a.search(b, depth, -beta, -alpha, true)
		b.Undo()
		return score
	}

	best := math.Inf(-1)
	for _, move := range a.orderMoves(b, moves) {
		if err := b.MakeMove(move); err != nil {
			continue
		}
		score := -a.search(b, depth-1, -beta, -alpha, false)
		b.Undo()

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	a.table.Store(key, Entry{Score: best, Depth: depth})
	return best
}

// orderMoves sorts candidate moves to maximize pruning: positions already
// in the transposition table first, then corners, then by flip count.
func (a *AI) orderMoves(b *othello.Board, moves []othello.Move) []othello.Move {
	size := b.Size()

	type scoredMove struct {
		move     othello.Move
		priority float64
	}

	scored := make([]scoredMove, len(moves))
	for i, move := range moves {
		priority := float64(move.FlipCount())

		isCorner := (move.Row == 0 || move.Row == size-1) && (move.Col == 0 || move.Col == size-1)
		if isCorner {
			priority += 100
		}

		if err := b.MakeMove(move); err == nil {
			if _, ok := a.table.Lookup(b.Fingerprint()); ok {
				priority += 1000
			}
			b.Undo()
		}

		scored[i] = scoredMove{move: move, priority: priority}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].priority > scored[j].priority
	})

	ordered := make([]othello.Move, len(moves))
	for i, s := range scored {
		ordered[i] = s.move
	}

	return ordered
}
