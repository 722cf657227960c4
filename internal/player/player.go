// Package player adapts the search core to the external game driver's
// turn-based interface: a Player is handed a position and a deadline,
// and produces the turn it wants to play.
package player

import (
	"context"
	"errors"

	"github.com/silentHoo/3d-chess/internal/board"
	"github.com/silentHoo/3d-chess/internal/engine"
)

// ErrNoMove is returned when a Player cannot produce a turn, either
// because the position has none or because the search was aborted
// before completing.
var ErrNoMove = errors.New("player: no turn produced")

// Player is a participant in a game: given a state, it proposes a turn.
// ctx cancellation is the deadline mechanism — an AI implementation
// wires ctx.Done() to Negamax.Abort.
type Player interface {
	ChooseTurn(ctx context.Context, state *board.GameState) (board.Turn, error)
}

// AI wraps a Negamax instance with a fixed search depth, giving it the
// Player shape the game driver expects.
type AI struct {
	search *engine.Negamax
	depth  int
}

// NewAI returns an AI player that searches to depth plies per move using
// its own Negamax instance and transposition table.
func NewAI(config engine.Config, depth int) *AI {
	return &AI{search: engine.New(config), depth: depth}
}

// ChooseTurn runs the search and returns its best turn. If ctx is
// cancelled before the search finishes, a watcher goroutine calls
// Abort and ChooseTurn returns ErrNoMove once the (now-aborted) search
// unwinds.
func (a *AI) ChooseTurn(ctx context.Context, state *board.GameState) (board.Turn, error) {
	if state.IsGameOver() {
		return board.Turn{}, ErrNoMove
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			a.search.Abort()
		case <-done:
		}
	}()

	result := a.search.Search(state, a.depth)
	if !result.Found {
		return board.Turn{}, ErrNoMove
	}
	return result.Turn, nil
}
