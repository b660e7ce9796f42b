package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"reversi/internal/ai"
	"reversi/internal/config"
	"reversi/internal/othello"
)

func printBoard(board *othello.Board) {
	for _, line := range board.AsciiArtLines() {
		fmt.Println(line)
	}

	black, white := board.Score()
	fmt.Printf("black %d - %d white, %s to move\n", black, white, board.ToMove())
}

func humanMove(board *othello.Board, reader *bufio.Reader) bool {
	if !board.HasMoves(board.ToMove()) {
		fmt.Println("no legal moves, passing")
		board.PassTurn()
		return true
	}

	for {
		fmt.Print("your move (e.g. d3, or q to quit): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}

		line = strings.TrimSpace(line)
		if line == "q" || line == "quit" {
			return false
		}

		coord, err := board.FieldToCoord(line)
		if err != nil {
			fmt.Println(err)
			continue
		}

		move := othello.Move{Row: coord.Row, Col: coord.Col, Color: board.ToMove()}
		if err := board.MakeMove(move); err != nil {
			fmt.Println(err)
			continue
		}

		return true
	}
}

func aiMove(board *othello.Board, engine *ai.AI) {
	move := engine.Choose(board, board.ToMove())
	if move == nil {
		fmt.Println("engine passes")
		board.PassTurn()
		return
	}

	fmt.Printf("engine plays %c%d (searched %d nodes)\n", 'a'+move.Col, move.Row+1, engine.NodesSearched())
	if err := board.MakeMove(*move); err != nil {
		log.Fatalf("engine produced an illegal move: %v", err)
	}
}

func main() {
	size := flag.Int("size", config.DefaultBoardSize, "board size (even, 4-16)")
	depth := flag.Int("depth", config.DefaultAIDepth, "engine search depth (1-6)")
	seed := flag.Int64("seed", 0, "random seed for engine tie-breaking (0 for random)")
	playWhite := flag.Bool("white", false, "play as white instead of black")
	flag.Parse()

	board, err := othello.NewBoard(*size)
	if err != nil {
		log.Fatalf("failed to create board: %v", err)
	}

	var opts []ai.Option
	if *seed != 0 {
		opts = append(opts, ai.WithRand(rand.New(rand.NewSource(*seed))))
	}

	engine, err := ai.New(*depth, opts...)
	if err != nil {
		log.Fatalf("failed to create engine: %v", err)
	}

	human := othello.Black
	if *playWhite {
		human = othello.White
	}

	reader := bufio.NewReader(os.Stdin)

	for !board.GameOver() {
		printBoard(board)

		if board.ToMove() == human {
			if !humanMove(board, reader) {
				return
			}
		} else {
			aiMove(board, engine)
		}
	}

	printBoard(board)

	black, white := board.Score()
	switch {
	case black > white:
		fmt.Println("black wins")
	case white > black:
		fmt.Println("white wins")
	default:
		fmt.Println("draw")
	}
}
