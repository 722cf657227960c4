package board

// evaluator tracks one integer, always from White's point of view,
// updated incrementally as turns are applied so that Score is O(1).
type evaluator struct {
	estimatedScore int
}

// fullEstimate recomputes the evaluator's score from scratch by scanning
// every occupied square. Used when constructing a board from FEN.
func (e *evaluator) fullEstimate(cb *ChessBoard) {
	score := 0
	for sq := A1; sq <= H8; sq++ {
		p := cb.PieceAt(sq)
		if p.IsNone() {
			continue
		}
		psqSquare := sq
		if p.Player == White {
			psqSquare = sq.Mirror()
		}
		contribution := PieceValue[p.Type] + pstValue(p.Type, psqSquare)
		if p.Player == White {
			score += contribution
		} else {
			score -= contribution
		}
	}
	e.estimatedScore = score
}

// onMove adjusts the score for a piece relocating from `from` to `to`.
// Material is unaffected; only the piece-square contribution changes.
func (e *evaluator) onMove(piece Piece, from, to Square) {
	if piece.Player == Black {
		e.estimatedScore += pstValue(piece.Type, from)
		e.estimatedScore -= pstValue(piece.Type, to)
	} else {
		e.estimatedScore -= pstValue(piece.Type, from.Mirror())
		e.estimatedScore += pstValue(piece.Type, to.Mirror())
	}
}

// onCapture removes a captured piece's material and piece-square
// contribution from the score.
func (e *evaluator) onCapture(field Square, captured Piece) {
	if captured.Player == Black {
		e.estimatedScore += pstValue(captured.Type, field)
		e.estimatedScore += PieceValue[captured.Type]
	} else {
		e.estimatedScore -= pstValue(captured.Type, field.Mirror())
		e.estimatedScore -= PieceValue[captured.Type]
	}
}

// onPromotion swaps a pawn for a new piece type at the destination
// square, adjusting both material and piece-square contributions.
func (e *evaluator) onPromotion(mover Color, to Square, newType PieceType) {
	if mover == Black {
		e.estimatedScore += pstValue(Pawn, to)
		e.estimatedScore += PieceValue[Pawn]
		e.estimatedScore -= pstValue(newType, to)
		e.estimatedScore -= PieceValue[newType]
	} else {
		blackSq := to.Mirror()
		e.estimatedScore -= pstValue(Pawn, blackSq)
		e.estimatedScore -= PieceValue[Pawn]
		e.estimatedScore += pstValue(newType, blackSq)
		e.estimatedScore += PieceValue[newType]
	}
}

// score returns the evaluator's score relative to the given color.
func (e *evaluator) score(c Color) int {
	if c == White {
		return e.estimatedScore
	}
	return -e.estimatedScore
}
