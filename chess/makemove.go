package chess

import "errors"

// ErrIllegalMove is returned by MakeMove when applying the move would
// leave (or place) the mover's own king in check.
var ErrIllegalMove = errors.New("chess: illegal move")

// MakeMove returns the position resulting from applying m to pos. It
// does not mutate pos. The caller must supply a move produced by
// Generate (or otherwise known to be pseudo-legal); MakeMove itself
// only checks the one rule Generate cannot: whether the mover's king
// ends up in check.
//
// Position has no pointers or slices, so producing "a new position"
// is just returning a modified copy; there is no separate clone step.
func MakeMove(pos Position, m Move) (Position, error) {
	next := pos
	c := next.ActiveColor

	moved := next.PieceAt(m.From)
	next.removePiece(moved, m.From)

	next.HalfmoveClock++

	captured := NoPiece
	switch m.Kind {
	case EnPassant:
		captured = Piece(WPawn + Piece(c.Opponent()))
		next.removePiece(captured, m.Captured)
		next.HalfmoveClock = 0
	default:
		captured = pos.PieceAt(m.To)
		if captured != NoPiece {
			next.removePiece(captured, m.To)
			next.HalfmoveClock = 0
		}
	}

	switch m.Kind {
	case Normal, EnPassant:
		next.placePiece(moved, m.To)
	case Castle:
		next.placePiece(moved, m.To)
		rook := WRook + Piece(c)
		next.removePiece(rook, m.Rook)
		next.placePiece(rook, m.RookTo())
	case Promotion:
		next.placePiece(promotedPiece(c, m.Promo), m.To)
	}

	next.EPTarget = NoEPTarget
	switch moved {
	case WPawn, BPawn:
		next.HalfmoveClock = 0
		if m.To-m.From == 16 {
			next.EPTarget = int8(m.From + 8)
		} else if m.From-m.To == 16 {
			next.EPTarget = int8(m.From - 8)
		}
	case WKing:
		next.CastlingRights &^= WhiteKingside | WhiteQueenside
	case BKing:
		next.CastlingRights &^= BlackKingside | BlackQueenside
	}

	// A rook's home corner square losing its rook, whether because the
	// rook itself moved away or because it was just captured there,
	// clears that side's right. Checking both From and To against the
	// four corners covers both events with one test.
	touches := func(sq int) bool { return m.From == sq || m.To == sq }
	if touches(0) {
		next.CastlingRights &^= WhiteQueenside
	}
	if touches(7) {
		next.CastlingRights &^= WhiteKingside
	}
	if touches(56) {
		next.CastlingRights &^= BlackQueenside
	}
	if touches(63) {
		next.CastlingRights &^= BlackKingside
	}

	if c == Black {
		next.FullmoveNumber++
	}
	next.ActiveColor = c.Opponent()

	if InCheck(&next, c) {
		return pos, ErrIllegalMove
	}
	return next, nil
}

func promotedPiece(c Color, pk PieceKind) Piece {
	switch pk {
	case Knight:
		return WKnight + Piece(c)
	case Bishop:
		return WBishop + Piece(c)
	case Rook:
		return WRook + Piece(c)
	default:
		return WQueen + Piece(c)
	}
}
