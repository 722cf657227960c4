package board

// GenerateTurns produces the set of legal turns for cb.NextPlayer and, as
// a side effect, sets cb.KingInCheck, cb.Checkmate and cb.Stalemate for
// this position. Checkmate/stalemate is decided by whether the returned
// list is empty, not by any prior state — the caller passes a freshly
// copied board so the flags it is about to set cannot be stale.
func GenerateTurns(cb *ChessBoard) []Turn {
	us := cb.NextPlayer
	opp := us.Other()

	occNoOwnKing := cb.AllOccupied() &^ cb.bb[us][King]
	oppAttacks := allAttacks(cb, opp, occNoOwnKing)

	kingSq := cb.KingSquare(us)
	inCheck := kingSq != NoSquare && oppAttacks.IsSet(kingSq)

	var uncheckFields Bitboard
	var epResolvesCheck bool
	if inCheck {
		uncheckFields, epResolvesCheck = computeUncheckFields(cb, kingSq, us)
	}

	turns := make([]Turn, 0, 48)
	own := cb.Occupied(us)

	turns = appendKingMoves(turns, cb, us, kingSq, own, oppAttacks)
	turns = appendKnightMoves(turns, cb, us, own, inCheck, uncheckFields)
	turns = appendSliderMoves(turns, cb, us, Bishop, own, inCheck, uncheckFields)
	turns = appendSliderMoves(turns, cb, us, Rook, own, inCheck, uncheckFields)
	turns = appendSliderMoves(turns, cb, us, Queen, own, inCheck, uncheckFields)
	turns = appendPawnMoves(turns, cb, us, inCheck, uncheckFields, epResolvesCheck)

	if !inCheck {
		turns = appendCastleMoves(turns, cb, us, oppAttacks)
	}

	// uncheckFields narrows candidates when already in check, but neither
	// it nor the king-move filter above catches a piece that is pinned
	// against its own king (e.g. the en-passant capture that unveils a
	// rook check along the vacated rank). Verify the remainder by
	// simulation rather than tracking pin rays explicitly.
	turns = filterDiscoveredCheck(cb, us, turns)

	cb.KingInCheck[us] = inCheck
	cb.KingInCheck[opp] = false
	if len(turns) == 0 {
		if inCheck {
			cb.Checkmate[us] = true
		} else {
			cb.Stalemate = true
		}
	}

	return turns
}

// allAttacks returns the union of every square attacked by color c given
// an explicit occupancy. Pawn attacks are the diagonal capture squares
// regardless of occupancy.
func allAttacks(cb *ChessBoard, c Color, occupied Bitboard) Bitboard {
	var attacks Bitboard

	pawns := cb.bb[c][Pawn]
	for pawns != 0 {
		attacks |= pawnAttacks[c][pawns.PopLSB()]
	}
	knights := cb.bb[c][Knight]
	for knights != 0 {
		attacks |= knightAttacks[knights.PopLSB()]
	}
	if ksq := cb.bb[c][King].LSB(); ksq != NoSquare {
		attacks |= kingAttacks[ksq]
	}
	bishops := cb.bb[c][Bishop] | cb.bb[c][Queen]
	for bishops != 0 {
		attacks |= getBishopAttacks(bishops.PopLSB(), occupied)
	}
	rooks := cb.bb[c][Rook] | cb.bb[c][Queen]
	for rooks != 0 {
		attacks |= getRookAttacks(rooks.PopLSB(), occupied)
	}
	return attacks
}

// computeUncheckFields returns the squares a non-king piece may land on
// to resolve check, and whether an en-passant capture of the checking
// pawn also resolves it. A double check returns an empty set (only king
// moves are legal) rather than replicating the original implementation's
// first-checker-only shortcut.
func computeUncheckFields(cb *ChessBoard, kingSq Square, us Color) (Bitboard, bool) {
	opp := us.Other()
	checkers := attackersByColor(cb, kingSq, opp, cb.AllOccupied())
	if checkers.PopCount() >= 2 {
		return Empty, false
	}

	checkerSq := checkers.LSB()
	checkerPiece := cb.PieceAt(checkerSq)

	fields := SquareBB(checkerSq)
	switch checkerPiece.Type {
	case Bishop, Rook, Queen:
		fields |= Between(checkerSq, kingSq)
	}

	epResolves := checkerPiece.Type == Pawn && checkerSq == cb.EnPassantSquareBehindPawn(us)
	return fields, epResolves
}

// EnPassantSquareBehindPawn returns the square of the pawn that would be
// captured by an en-passant capture onto cb.EnPassantSquare for the
// given side to move, or NoSquare if there is no en-passant square.
func (cb *ChessBoard) EnPassantSquareBehindPawn(sideToMove Color) Square {
	if cb.EnPassantSquare == NoSquare {
		return NoSquare
	}
	if sideToMove == White {
		return NewSquare(cb.EnPassantSquare.File(), cb.EnPassantSquare.Rank()-1)
	}
	return NewSquare(cb.EnPassantSquare.File(), cb.EnPassantSquare.Rank()+1)
}

func appendKingMoves(turns []Turn, cb *ChessBoard, us Color, kingSq Square, own Bitboard, oppAttacks Bitboard) []Turn {
	if kingSq == NoSquare {
		return turns
	}
	dests := kingAttacks[kingSq] &^ own &^ oppAttacks
	for dests != 0 {
		to := dests.PopLSB()
		turns = append(turns, Turn{Piece: NewPiece(King, us), From: kingSq, To: to, Action: ActionMove})
	}
	return turns
}

func appendKnightMoves(turns []Turn, cb *ChessBoard, us Color, own Bitboard, inCheck bool, uncheckFields Bitboard) []Turn {
	knights := cb.bb[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		dests := knightAttacks[from] &^ own
		if inCheck {
			dests &= uncheckFields
		}
		for dests != 0 {
			to := dests.PopLSB()
			turns = append(turns, Turn{Piece: NewPiece(Knight, us), From: from, To: to, Action: ActionMove})
		}
	}
	return turns
}

func appendSliderMoves(turns []Turn, cb *ChessBoard, us Color, pt PieceType, own Bitboard, inCheck bool, uncheckFields Bitboard) []Turn {
	pieces := cb.bb[us][pt]
	occupied := cb.AllOccupied()
	for pieces != 0 {
		from := pieces.PopLSB()
		var dests Bitboard
		switch pt {
		case Bishop:
			dests = getBishopAttacks(from, occupied)
		case Rook:
			dests = getRookAttacks(from, occupied)
		case Queen:
			dests = getBishopAttacks(from, occupied) | getRookAttacks(from, occupied)
		}
		dests &^= own
		if inCheck {
			dests &= uncheckFields
		}
		for dests != 0 {
			to := dests.PopLSB()
			turns = append(turns, Turn{Piece: NewPiece(pt, us), From: from, To: to, Action: ActionMove})
		}
	}
	return turns
}

func appendPawnMoves(turns []Turn, cb *ChessBoard, us Color, inCheck bool, uncheckFields Bitboard, epResolvesCheck bool) []Turn {
	opp := us.Other()
	occupied := cb.AllOccupied()
	pawns := cb.bb[us][Pawn]

	startRank, promoRank := 1, 7
	if us == Black {
		startRank, promoRank = 6, 0
	}

	for pawns != 0 {
		from := pawns.PopLSB()

		push := pawnPushes[us][from] &^ occupied
		if push != 0 {
			turns = appendPawnDestination(turns, us, from, push.LSB(), promoRank, inCheck, uncheckFields)

			if from.Rank() == startRank {
				doublePush := pawnPushes[us][push.LSB()] &^ occupied
				if doublePush != 0 {
					turns = appendPawnDestination(turns, us, from, doublePush.LSB(), promoRank, inCheck, uncheckFields)
				}
			}
		}

		captures := pawnAttacks[us][from] & cb.Occupied(opp)
		for captures != 0 {
			to := captures.PopLSB()
			turns = appendPawnDestination(turns, us, from, to, promoRank, inCheck, uncheckFields)
		}

		if cb.EnPassantSquare != NoSquare && pawnAttacks[us][from].IsSet(cb.EnPassantSquare) {
			legal := true
			if inCheck {
				legal = uncheckFields.IsSet(cb.EnPassantSquare) || epResolvesCheck
			}
			if legal {
				turns = append(turns, Turn{Piece: NewPiece(Pawn, us), From: from, To: cb.EnPassantSquare, Action: ActionMove})
			}
		}
	}
	return turns
}

func appendPawnDestination(turns []Turn, us Color, from, to Square, promoRank int, inCheck bool, uncheckFields Bitboard) []Turn {
	if inCheck && !uncheckFields.IsSet(to) {
		return turns
	}
	piece := NewPiece(Pawn, us)
	if to.Rank() == promoRank {
		turns = append(turns,
			Turn{Piece: piece, From: from, To: to, Action: ActionPromotionQueen},
			Turn{Piece: piece, From: from, To: to, Action: ActionPromotionRook},
			Turn{Piece: piece, From: from, To: to, Action: ActionPromotionBishop},
			Turn{Piece: piece, From: from, To: to, Action: ActionPromotionKnight},
		)
		return turns
	}
	return append(turns, Turn{Piece: piece, From: from, To: to, Action: ActionMove})
}

// filterDiscoveredCheck drops any turn that would leave the mover's own
// king attacked. King moves and castles are already safe by construction
// (oppAttacks was computed with the king removed from occupancy so a
// slider "sees through" it), but re-checking them here is cheap and
// keeps this the single source of truth for legality.
func filterDiscoveredCheck(cb *ChessBoard, us Color, turns []Turn) []Turn {
	kept := turns[:0]
	for _, t := range turns {
		clone := *cb
		clone.Apply(t)
		kingSq := clone.bb[us][King].LSB()
		if kingSq == NoSquare {
			kept = append(kept, t)
			continue
		}
		if attackersByColor(&clone, kingSq, us.Other(), clone.AllOccupied()) == Empty {
			kept = append(kept, t)
		}
	}
	return kept
}

func appendCastleMoves(turns []Turn, cb *ChessBoard, us Color, oppAttacks Bitboard) []Turn {
	rank := 0
	if us == Black {
		rank = 7
	}
	kingSq := NewSquare(4, rank)
	if cb.PieceAt(kingSq).Type != King {
		return turns
	}
	occupied := cb.AllOccupied()

	if cb.ShortCastleRight[us] {
		f, g := NewSquare(5, rank), NewSquare(6, rank)
		empty := occupied&SquareBB(f) == 0 && occupied&SquareBB(g) == 0
		safe := !oppAttacks.IsSet(kingSq) && !oppAttacks.IsSet(f) && !oppAttacks.IsSet(g)
		if empty && safe {
			turns = append(turns, Turn{Piece: NewPiece(King, us), From: kingSq, To: g, Action: ActionCastle})
		}
	}
	if cb.LongCastleRight[us] {
		b, c, d := NewSquare(1, rank), NewSquare(2, rank), NewSquare(3, rank)
		empty := occupied&SquareBB(b) == 0 && occupied&SquareBB(c) == 0 && occupied&SquareBB(d) == 0
		// B1/B8 need only be empty; only E/D/C need be unattacked (FIDE).
		safe := !oppAttacks.IsSet(kingSq) && !oppAttacks.IsSet(d) && !oppAttacks.IsSet(c)
		if empty && safe {
			turns = append(turns, Turn{Piece: NewPiece(King, us), From: kingSq, To: c, Action: ActionCastle})
		}
	}
	return turns
}
