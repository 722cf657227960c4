package engine

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/silentHoo/3d-chess/internal/board"
)

// Config toggles the search features the negamax recursion can exercise
// independently, mirroring the original engine's compile-time template
// parameters as runtime booleans.
type Config struct {
	ABCutoffEnabled     bool
	MoveOrderingEnabled bool
	TTEnabled           bool
	TableSize           int
}

// DefaultConfig enables every feature with a table sized for casual play.
func DefaultConfig() Config {
	return Config{
		ABCutoffEnabled:     true,
		MoveOrderingEnabled: true,
		TTEnabled:           true,
		TableSize:           DefaultTableSize,
	}
}

// Result is the outcome of a search: a score from the searching side's
// perspective, and the turn that achieves it. Found is false only when
// the search was aborted before producing a result. On a position that
// is already over, Found is true, Score is the terminal score and Turn
// is the zero Turn (callers should check IsGameOver first).
type Result struct {
	Score int
	Turn  board.Turn
	Found bool
}

// negate mirrors NegamaxResult's unary minus: flip the score, keep the
// turn so the caller one level up still knows which move it came from.
func (r Result) negate() Result {
	return Result{Score: -r.Score, Turn: r.Turn, Found: r.Found}
}

func (r Result) better(other Result) bool {
	return other.Found && (!r.Found || other.Score > r.Score)
}

// IsVictoryCertain reports whether the result represents a forced win
// too close to the mate bound to be anything else.
func (r Result) IsVictoryCertain() bool {
	return r.Score > board.WinScoreThreshold
}

func (r Result) String() string {
	if !r.Found {
		return "Result(aborted)"
	}
	return "Result(score=" + itoa(r.Score) + ", turn=" + r.Turn.String() + ")"
}

func itoa(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// PerfCounters tallies what happened during the most recent Search call,
// for debugging and benchmarking rather than for correctness.
type PerfCounters struct {
	Nodes                  uint64
	Cutoffs                uint64
	Updates                uint64
	TranspositionTableHits uint64
	Duration               time.Duration
}

// Negamax implements fixed-depth alpha-beta search with move ordering
// and a transposition table, all independently switchable via Config.
// One instance owns its table and is meant for exactly one goroutine to
// call Search on at a time; Abort is the sole safe cross-goroutine entry
// point.
type Negamax struct {
	config   Config
	tt       *TranspositionTable
	abort    atomic.Bool
	counters PerfCounters
}

// New builds a Negamax instance from config.
func New(config Config) *Negamax {
	return &Negamax{
		config: config,
		tt:     NewTranspositionTable(config.TableSize),
	}
}

// Abort requests that the current (or next) Search call stop early. It
// may be called from any goroutine; the search only observes it at its
// well-defined checkpoints, so a caller cannot assume the search has
// actually returned until Search itself returns.
func (n *Negamax) Abort() {
	n.abort.Store(true)
}

// Counters returns the performance counters from the most recently
// completed Search call.
func (n *Negamax) Counters() PerfCounters {
	return n.counters
}

// Search explores state to maxDepth plies and returns the best turn
// found along with its score, from state's side-to-move's perspective.
// On abort it returns a zero Result with Found == false.
func (n *Negamax) Search(state *board.GameState, maxDepth int) Result {
	n.counters = PerfCounters{}

	start := time.Now()
	result := n.searchRecurse(state.Board(), 0, maxDepth, board.MinScore, board.MaxScore)
	n.counters.Duration = time.Since(start)

	n.abort.Store(false)
	return result
}

func (n *Negamax) searchRecurse(state board.ChessBoard, depth, maxDepth int, alpha, beta int) Result {
	if n.abort.Load() {
		return Result{}
	}

	pliesLeft := maxDepth - depth

	// GenerateTurns must run on this exact position before IsGameOver is
	// trustworthy: state was produced by a parent's Apply, which moves
	// pieces but does not itself recompute the checkmate/stalemate flags
	// for the position it lands on.
	turns := board.GenerateTurns(&state)

	if state.IsGameOver() || pliesLeft == 0 {
		return Result{Score: state.Score(depth), Found: true}
	}

	initialAlpha := alpha

	if n.config.TTEnabled {
		if entry, ok := n.tt.Lookup(state.Hash); ok && entry.Depth >= pliesLeft {
			n.counters.TranspositionTableHits++
			switch entry.Bound {
			case Exact:
				return Result{Score: entry.Score, Turn: entry.Turn, Found: true}
			case Lower:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case Upper:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if n.config.ABCutoffEnabled && alpha >= beta {
				n.counters.Cutoffs++
				return Result{Score: entry.Score, Turn: entry.Turn, Found: true}
			}
		}
	}

	type option struct {
		turn     board.Turn
		child    board.ChessBoard
		estimate int
	}
	options := make([]option, len(turns))
	for i, t := range turns {
		child := state
		child.Apply(t)
		options[i] = option{turn: t, child: child, estimate: n.estimate(child, depth+1)}
	}

	if n.config.MoveOrderingEnabled {
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].estimate > options[j].estimate
		})
	}

	best := Result{Score: board.MinScore, Found: false}
	for _, opt := range options {
		n.counters.Nodes++

		childResult := n.searchRecurse(opt.child, depth+1, maxDepth, -beta, -alpha).negate()
		childResult.Turn = opt.turn

		if best.better(childResult) {
			n.counters.Updates++
			best = childResult
		}
		if best.Score > alpha {
			alpha = best.Score
		}
		if n.config.ABCutoffEnabled && alpha >= beta {
			n.counters.Cutoffs++
			break
		}
		if n.abort.Load() {
			return Result{}
		}
	}

	if n.config.TTEnabled && best.Found {
		bound := Exact
		switch {
		case best.Score <= initialAlpha:
			bound = Upper
		case best.Score >= beta:
			bound = Lower
		}
		n.tt.MaybeUpdate(Entry{
			Hash:  state.Hash,
			Depth: pliesLeft,
			Score: best.Score,
			Turn:  best.Turn,
			Bound: bound,
		})
	}

	return best
}

// estimate is the move-ordering heuristic: prefer children that the
// transposition table already rates highly, falling back to the raw
// incremental evaluation. The result is from the child's (opponent's)
// point of view, hence the negation.
func (n *Negamax) estimate(child board.ChessBoard, depth int) int {
	if n.config.TTEnabled {
		if entry, ok := n.tt.Lookup(child.Hash); ok {
			if entry.Bound == Upper {
				return -board.MinScore
			}
			return -entry.Score
		}
	}
	return -child.Score(depth)
}
