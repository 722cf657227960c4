package board

// GameState wraps a ChessBoard with the legal-turn list for the current
// position, recomputing that list every time a turn is applied. Callers
// should never mutate the embedded board directly — go through Apply so
// the cached turn list and the board never drift apart.
type GameState struct {
	board ChessBoard
	turns []Turn
}

// NewGameState returns a GameState at the standard starting position.
func NewGameState() *GameState {
	gs := &GameState{board: NewChessBoard()}
	gs.turns = GenerateTurns(&gs.board)
	return gs
}

// GameStateFromFEN builds a GameState from an arbitrary FEN string.
func GameStateFromFEN(fen string) (*GameState, error) {
	cb, err := FromFEN(fen)
	if err != nil {
		return nil, err
	}
	gs := &GameState{board: cb}
	gs.turns = GenerateTurns(&gs.board)
	return gs, nil
}

// Board returns a copy of the underlying position.
func (gs *GameState) Board() ChessBoard {
	return gs.board
}

// ToFEN serializes the current position.
func (gs *GameState) ToFEN() string {
	return gs.board.ToFEN()
}

// Turns returns the legal turns available to the side to move. The
// returned slice is owned by GameState and must not be modified.
func (gs *GameState) Turns() []Turn {
	return gs.turns
}

// Apply plays t against the current position and regenerates the legal
// turn list for the resulting position. It panics if t is not among the
// turns most recently returned by Turns, since applying an unvetted turn
// would silently corrupt castling rights, en-passant state and the
// incremental evaluator.
func (gs *GameState) Apply(t Turn) {
	found := false
	for _, legal := range gs.turns {
		if legal == t {
			found = true
			break
		}
	}
	if !found {
		panic("board: GameState.Apply called with a turn that is not legal in the current position")
	}

	gs.board.Apply(t)
	gs.turns = GenerateTurns(&gs.board)
}

// NextPlayer returns the side to move.
func (gs *GameState) NextPlayer() Color {
	return gs.board.NextPlayer
}

// IsGameOver reports whether the position has a terminal outcome.
func (gs *GameState) IsGameOver() bool {
	return gs.board.IsGameOver()
}

// Winner returns the winning color, or NoPlayer for an ongoing or drawn
// game.
func (gs *GameState) Winner() Color {
	return gs.board.Winner()
}

// Score returns the position's score from the side-to-move's
// perspective at the given search depth.
func (gs *GameState) Score(depth int) int {
	return gs.board.Score(depth)
}

// Hash returns the Zobrist hash of the current position.
func (gs *GameState) Hash() uint64 {
	return gs.board.Hash
}

// HasLegalTurn reports whether t is currently legal, without mutating
// the game state.
func (gs *GameState) HasLegalTurn(t Turn) bool {
	for _, legal := range gs.turns {
		if legal == t {
			return true
		}
	}
	return false
}

// Equal reports whether two game states represent the same position
// (same piece placement, rights, side to move and move-clock state).
// ChessBoard carries a capture-history slice, so this compares by hash
// plus clocks rather than a struct equality (the board isn't
// comparable).
func (gs *GameState) Equal(other *GameState) bool {
	return gs.board.Hash == other.board.Hash &&
		gs.board.NextPlayer == other.board.NextPlayer &&
		gs.board.HalfMoveClock == other.board.HalfMoveClock &&
		gs.board.FullMoveClock == other.board.FullMoveClock
}

// String renders the board for debugging.
func (gs *GameState) String() string {
	return gs.board.String()
}
