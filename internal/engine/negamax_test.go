package engine

import (
	"testing"

	"github.com/silentHoo/3d-chess/internal/board"
)

func mustGameState(t *testing.T, fen string) *board.GameState {
	t.Helper()
	gs, err := board.GameStateFromFEN(fen)
	if err != nil {
		t.Fatalf("GameStateFromFEN(%q): %v", fen, err)
	}
	return gs
}

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move: Ra1-a8 is a back-rank mate. The black king is boxed
	// in by its own pawns on f7/g7/h7 and the open a-file lets the rook
	// cover the whole eighth rank.
	gs := mustGameState(t, "6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")

	n := New(DefaultConfig())
	result := n.Search(gs, 2)

	if !result.Found {
		t.Fatal("expected a result")
	}
	if !result.IsVictoryCertain() {
		t.Fatalf("expected a certain-victory score, got %d", result.Score)
	}
	if result.Turn.From != board.A1 || result.Turn.To != board.A8 {
		t.Errorf("expected Ra1-a8#, got %v", result.Turn)
	}
}

func TestSearchAbortReturnsNotFound(t *testing.T) {
	gs := mustGameState(t, board.StartFEN)
	n := New(DefaultConfig())
	n.Abort()

	result := n.Search(gs, 4)
	if result.Found {
		t.Fatalf("expected an aborted search to report not-found, got %v", result)
	}
}

func TestSearchAgreesWithAndWithoutOptimizations(t *testing.T) {
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"

	full := New(Config{ABCutoffEnabled: true, MoveOrderingEnabled: true, TTEnabled: true, TableSize: 1 << 16})
	plain := New(Config{ABCutoffEnabled: false, MoveOrderingEnabled: false, TTEnabled: false})

	fullResult := full.Search(mustGameState(t, fen), 3)
	plainResult := plain.Search(mustGameState(t, fen), 3)

	if !fullResult.Found || !plainResult.Found {
		t.Fatal("expected both searches to produce a result")
	}
	if fullResult.Score != plainResult.Score {
		t.Errorf("alpha-beta score %d disagrees with brute-force score %d", fullResult.Score, plainResult.Score)
	}
}

func TestSearchOnCheckmatedPositionReturnsLoseScore(t *testing.T) {
	gs := mustGameState(t, "R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if !gs.IsGameOver() {
		t.Fatal("expected position to be game over")
	}

	n := New(DefaultConfig())
	result := n.Search(gs, 3)

	if !result.Found {
		t.Fatal("expected a result even with no legal turns")
	}
	if result.Score >= 0 {
		t.Errorf("expected a losing score for the checkmated side, got %d", result.Score)
	}
}
