package board

import "fmt"

// Action distinguishes the kinds of turn a piece can make.
type Action uint8

const (
	ActionMove Action = iota
	ActionCastle
	ActionPromotionQueen
	ActionPromotionRook
	ActionPromotionBishop
	ActionPromotionKnight
	ActionPass
	ActionForfeit
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionCastle:
		return "castle"
	case ActionPromotionQueen:
		return "promotion=Q"
	case ActionPromotionRook:
		return "promotion=R"
	case ActionPromotionBishop:
		return "promotion=B"
	case ActionPromotionKnight:
		return "promotion=N"
	case ActionPass:
		return "pass"
	case ActionForfeit:
		return "forfeit"
	default:
		return "unknown"
	}
}

// Turn is the unit of play: a piece moving from one square to another
// performing some action.
type Turn struct {
	Piece  Piece
	From   Square
	To     Square
	Action Action
}

// PromotionType returns the piece type a promotion turn produces, or
// NoType if the turn is not a promotion.
func (t Turn) PromotionType() PieceType {
	switch t.Action {
	case ActionPromotionQueen:
		return Queen
	case ActionPromotionRook:
		return Rook
	case ActionPromotionBishop:
		return Bishop
	case ActionPromotionKnight:
		return Knight
	default:
		return NoType
	}
}

// IsPromotion reports whether the turn promotes a pawn.
func (t Turn) IsPromotion() bool {
	return t.PromotionType() != NoType
}

// String renders a turn as algebraic-style text: from-square, to-square,
// and a suffix noting castling or the promoted-to piece. Tests compare
// turns structurally rather than by string, so this exists for logging.
func (t Turn) String() string {
	switch t.Action {
	case ActionCastle:
		if t.To.File() == 6 {
			return "O-O"
		}
		return "O-O-O"
	case ActionPromotionQueen, ActionPromotionRook, ActionPromotionBishop, ActionPromotionKnight:
		return fmt.Sprintf("%s%s=%c", t.From, t.To, t.PromotionType().Char()-32)
	default:
		return fmt.Sprintf("%s%s", t.From, t.To)
	}
}
