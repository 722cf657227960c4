// Command perft is a move-generator correctness and performance harness.
// It is not part of the library's public surface — a debugging tool the
// way the reference repos this project studied keep their own perft
// commands separate from the engine core.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/silentHoo/3d-chess/internal/board"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string to perft from")
	depth := flag.Int("depth", 4, "perft depth in plies")
	divide := flag.Bool("divide", false, "print per-root-move node counts")
	want := flag.Uint64("want", 0, "expected node count; if nonzero, compare and report pass/fail")
	flag.Parse()

	cb, err := board.FromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid FEN: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		runDivide(cb, *depth)
		return
	}

	start := time.Now()
	nodes := perft(cb, *depth)
	elapsed := time.Since(start)

	nps := float64(0)
	if elapsed.Seconds() > 0 {
		nps = float64(nodes) / elapsed.Seconds()
	}
	fmt.Printf("depth=%d nodes=%d time=%s nps=%.0f\n", *depth, nodes, elapsed, nps)

	if *want != 0 {
		if diff := cmp.Diff(*want, nodes); diff != "" {
			color.New(color.FgRed).Printf("FAIL: node count mismatch (-want +got):\n%s\n", diff)
			os.Exit(1)
		}
		color.New(color.FgGreen).Println("PASS")
	}
}

func runDivide(cb board.ChessBoard, depth int) {
	turns := board.GenerateTurns(&cb)

	type line struct {
		turn  board.Turn
		nodes uint64
	}
	lines := make([]line, 0, len(turns))
	var total uint64
	for _, t := range turns {
		child := cb
		child.Apply(t)
		n := perft(child, depth-1)
		lines = append(lines, line{turn: t, nodes: n})
		total += n
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].turn.String() < lines[j].turn.String()
	})

	bold := color.New(color.Bold)
	for _, l := range lines {
		fmt.Printf("%s: %d\n", l.turn, l.nodes)
	}
	bold.Printf("total: %d\n", total)
}

// perft counts leaf nodes by copying the board before every candidate
// turn rather than making and unmaking a move in place.
func perft(cb board.ChessBoard, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	turns := board.GenerateTurns(&cb)
	if depth == 1 {
		return uint64(len(turns))
	}
	var nodes uint64
	for _, t := range turns {
		child := cb
		child.Apply(t)
		nodes += perft(child, depth-1)
	}
	return nodes
}
