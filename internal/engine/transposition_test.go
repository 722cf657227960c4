package engine

import (
	"testing"

	"github.com/silentHoo/3d-chess/internal/board"
)

func TestTranspositionTableLookupMiss(t *testing.T) {
	tt := NewTranspositionTable(16)
	if _, ok := tt.Lookup(12345); ok {
		t.Fatal("expected a miss on an empty table")
	}
}

func TestTranspositionTableRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(16)
	want := Entry{Hash: 7, Depth: 3, Score: 42, Turn: board.Turn{From: board.E2, To: board.E4}, Bound: Exact}

	tt.MaybeUpdate(want)

	got, ok := tt.Lookup(7)
	if !ok {
		t.Fatal("expected a hit after storing the entry")
	}
	if got.Score != want.Score || got.Depth != want.Depth || got.Bound != want.Bound || got.Turn != want.Turn {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestTranspositionTableCollisionIsRejectedNotWrong(t *testing.T) {
	tt := NewTranspositionTable(16)

	tt.MaybeUpdate(Entry{Hash: 1, Score: 100, Bound: Exact})
	// 17 collides with 1 in a 16-slot table (17 % 16 == 1) but is a
	// different position, so storing it must evict slot 1 rather than
	// silently returning its score for hash 1.
	tt.MaybeUpdate(Entry{Hash: 17, Score: -100, Bound: Exact})

	if _, ok := tt.Lookup(1); ok {
		t.Error("expected the colliding slot to no longer answer for hash 1")
	}
	got, ok := tt.Lookup(17)
	if !ok || got.Score != -100 {
		t.Errorf("expected the new entry to have replaced the old one, got %+v, ok=%v", got, ok)
	}
}

func TestTranspositionTableClear(t *testing.T) {
	tt := NewTranspositionTable(16)
	tt.MaybeUpdate(Entry{Hash: 3, Score: 1, Bound: Exact})

	tt.Clear()

	if _, ok := tt.Lookup(3); ok {
		t.Error("expected Clear to invalidate every slot")
	}
}

func TestTranspositionTableDefaultSize(t *testing.T) {
	tt := NewTranspositionTable(0)
	if tt.Size() != DefaultTableSize {
		t.Errorf("got size %d, want default %d", tt.Size(), DefaultTableSize)
	}
}

func TestBoundString(t *testing.T) {
	cases := map[Bound]string{Exact: "exact", Lower: "lower", Upper: "upper"}
	for b, want := range cases {
		if got := b.String(); got != want {
			t.Errorf("Bound(%d).String() = %q, want %q", b, got, want)
		}
	}
}
