package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN parses a FEN string into a ChessBoard. It rebuilds the
// evaluator's incremental score and the Zobrist hash from scratch rather
// than applying incremental updates, since there is no prior position to
// update from.
func FromFEN(fen string) (ChessBoard, error) {
	var cb ChessBoard
	cb.Clear()

	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return ChessBoard{}, fmt.Errorf("board: invalid FEN %q: want at least 4 fields, got %d", fen, len(fields))
	}

	if err := parsePlacement(&cb, fields[0]); err != nil {
		return ChessBoard{}, fmt.Errorf("board: invalid FEN %q: %w", fen, err)
	}

	switch fields[1] {
	case "w":
		cb.NextPlayer = White
	case "b":
		cb.NextPlayer = Black
	default:
		return ChessBoard{}, fmt.Errorf("board: invalid FEN %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				cb.ShortCastleRight[White] = true
			case 'Q':
				cb.LongCastleRight[White] = true
			case 'k':
				cb.ShortCastleRight[Black] = true
			case 'q':
				cb.LongCastleRight[Black] = true
			default:
				return ChessBoard{}, fmt.Errorf("board: invalid FEN %q: bad castling field %q", fen, fields[2])
			}
		}
	}

	if fields[3] == "-" {
		cb.EnPassantSquare = NoSquare
	} else {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return ChessBoard{}, fmt.Errorf("board: invalid FEN %q: bad en-passant field: %w", fen, err)
		}
		cb.EnPassantSquare = sq
	}

	cb.HalfMoveClock = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return ChessBoard{}, fmt.Errorf("board: invalid FEN %q: bad half-move clock: %w", fen, err)
		}
		cb.HalfMoveClock = n
	}

	cb.FullMoveClock = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return ChessBoard{}, fmt.Errorf("board: invalid FEN %q: bad full-move number: %w", fen, err)
		}
		cb.FullMoveClock = n
	}

	cb.eval.fullEstimate(&cb)
	cb.rehash()

	return cb, nil
}

func parsePlacement(cb *ChessBoard, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("want 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				p := PieceFromChar(byte(c))
				if p.IsNone() {
					return fmt.Errorf("bad piece char %q", c)
				}
				if file > 7 {
					return fmt.Errorf("rank %d overflows", rank+1)
				}
				cb.addPiece(p, NewSquare(file, rank))
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("rank %d has %d files, want 8", rank+1, file)
		}
	}
	return nil
}

// rehash recomputes cb.Hash from scratch, used after bulk board setup
// where incremental XOR bookkeeping was skipped.
func (cb *ChessBoard) rehash() {
	var h uint64
	for sq := A1; sq <= H8; sq++ {
		if p := cb.PieceAt(sq); !p.IsNone() {
			h ^= ZobristPiece(p.Player, p.Type, sq)
		}
	}
	if cb.EnPassantSquare != NoSquare {
		h ^= ZobristEnPassant(cb.EnPassantSquare.File())
	}
	h ^= ZobristCastling(cb.castlingMask())
	if cb.NextPlayer == Black {
		h ^= ZobristSideToMove()
	}
	cb.Hash = h
}

// ToFEN serializes the position back to FEN.
func (cb *ChessBoard) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := cb.PieceAt(NewSquare(file, rank))
			if p.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if cb.NextPlayer == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(cb.castlingMask().String())

	sb.WriteByte(' ')
	sb.WriteString(cb.EnPassantSquare.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(cb.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(cb.FullMoveClock))

	return sb.String()
}
