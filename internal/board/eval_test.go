package board

import "testing"

// incrementalMatchesFullEstimate applies turn to a board parsed from fen
// and checks that the incremental evaluator agrees with a from-scratch
// recomputation of the resulting position, per spec.md's testable
// property that incremental and full evaluation never diverge.
func incrementalMatchesFullEstimate(t *testing.T, fen string, pick func(Turn) bool) {
	t.Helper()

	cb, err := FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}

	turns := GenerateTurns(&cb)
	var chosen Turn
	found := false
	for _, turn := range turns {
		if pick(turn) {
			chosen = turn
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("no matching turn among %v", turns)
	}

	cb.Apply(chosen)
	incremental := cb.Score(0)

	reparsed, err := FromFEN(cb.ToFEN())
	if err != nil {
		t.Fatalf("FromFEN(%q) (round-trip): %v", cb.ToFEN(), err)
	}
	full := reparsed.Score(0)

	if incremental != full {
		t.Errorf("incremental score %d != full-estimate score %d after %v (fen=%q)", incremental, full, chosen, cb.ToFEN())
	}
}

func TestIncrementalScoreMatchesFullEstimateAfterPromotion(t *testing.T) {
	incrementalMatchesFullEstimate(t, "1k6/P7/8/8/8/8/8/1K6 w - - 0 1", func(turn Turn) bool {
		return turn.Action == ActionPromotionQueen
	})
}

func TestIncrementalScoreMatchesFullEstimateAfterCapturePromotion(t *testing.T) {
	incrementalMatchesFullEstimate(t, "r1k5/1P6/8/8/8/8/8/1K6 w - - 0 1", func(turn Turn) bool {
		return turn.Action == ActionPromotionQueen && turn.To == A8
	})
}

func TestIncrementalScoreMatchesFullEstimateAfterOrdinaryMove(t *testing.T) {
	incrementalMatchesFullEstimate(t, StartFEN, func(turn Turn) bool {
		return turn.From == E2 && turn.To == E4
	})
}

func TestIncrementalScoreMatchesFullEstimateAfterCastle(t *testing.T) {
	incrementalMatchesFullEstimate(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", func(turn Turn) bool {
		return turn.Action == ActionCastle && turn.To == G1
	})
}
