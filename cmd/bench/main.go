package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"reversi/internal/ai"
	"reversi/internal/config"
	"reversi/internal/othello"
)

func main() {
	size := flag.Int("size", config.DefaultBoardSize, "board size (even, 4-16)")
	maxDepth := flag.Int("max-depth", config.MaxAIDepth, "benchmark depths 1 through this value")
	seed := flag.Int64("seed", 1, "random seed for engine tie-breaking")
	flag.Parse()

	board, err := othello.NewBoard(*size)
	if err != nil {
		log.Fatalf("failed to create board: %v", err)
	}

	fmt.Printf("%5s %12s %12s %10s\n", "depth", "nodes", "duration", "tt size")

	for depth := config.MinAIDepth; depth <= *maxDepth; depth++ {
		engine, err := ai.New(depth, ai.WithRand(rand.New(rand.NewSource(*seed))))
		if err != nil {
			log.Fatalf("failed to create engine: %v", err)
		}

		start := time.Now()
		move := engine.Choose(board, board.ToMove())
		elapsed := time.Since(start)

		if move == nil {
			log.Fatal("engine found no move in the start position")
		}

		fmt.Printf("%5d %12d %12s %10d\n", depth, engine.NodesSearched(), elapsed.Round(time.Microsecond), engine.Table().Len())
	}
}
