package board

import "testing"

// perft counts leaf nodes at depth by walking GenerateTurns and applying
// each candidate to a fresh copy of the board - there is no make/unmake
// pair to call since ChessBoard is a value type and copies are cheap.
func perft(cb ChessBoard, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	turns := GenerateTurns(&cb)
	if depth == 1 {
		return uint64(len(turns))
	}

	var nodes uint64
	for _, t := range turns {
		next := cb
		next.Apply(t)
		nodes += perft(next, depth-1)
	}
	return nodes
}

func runPerft(t *testing.T, fen string, want []uint64) {
	t.Helper()
	cb, err := FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	for depth, expect := range want {
		got := perft(cb, depth+1)
		if got != expect {
			t.Errorf("perft(%q, %d) = %d, want %d", fen, depth+1, got, expect)
		}
	}
}

func TestPerftStartingPosition(t *testing.T) {
	runPerft(t, StartFEN, []uint64{20, 400, 8902, 197281})
}

func TestPerftKiwipete(t *testing.T) {
	runPerft(t,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		[]uint64{48, 2039, 97862})
}

func TestPerftPosition3(t *testing.T) {
	runPerft(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		[]uint64{14, 191, 2812, 43238})
}

func TestPerftEnPassantPin(t *testing.T) {
	// The en-passant capture would remove both d4 and e4 from the fourth
	// rank, unveiling a check from the rook on h4 against the black king
	// on a4 - it must not appear among the legal turns.
	runPerft(t, "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1", []uint64{6, 94})
}
