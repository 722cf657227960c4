package board

// Score constants shared by the evaluator's terminal scoring and by the
// search. WinScore/LoseScore bound every reachable evaluation; MinScore/
// MaxScore are one past those bounds so alpha-beta windows can be
// initialised strictly outside the real range.
const (
	WinScore          = 1 << 20
	LoseScore         = -WinScore
	MinScore          = LoseScore - 1
	MaxScore          = WinScore + 1
	WinScoreThreshold = WinScore - 1000
)
