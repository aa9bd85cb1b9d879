package chess

import "github.com/DieSeeKat/osprey/bitboard"

// castlingPath is the set of squares strictly between the king and rook
// (excluding the king's own starting square, which the king itself still
// occupies) that must be empty for each of the four castling rights,
// indexed by bit position of the corresponding CastlingRights flag
// (0=WhiteKingside, 1=WhiteQueenside, 2=BlackKingside, 3=BlackQueenside).
var castlingPath = [4]uint64{
	bitboard.Square(5) | bitboard.Square(6),
	bitboard.Square(1) | bitboard.Square(2) | bitboard.Square(3),
	bitboard.Square(61) | bitboard.Square(62),
	bitboard.Square(57) | bitboard.Square(58) | bitboard.Square(59),
}

// castlingAttackPath is the set of squares that must be unattacked for
// each castling right: the king's own starting square plus the squares
// it crosses and lands on. The queenside b1/b8 square is in castlingPath
// but not here: it must be empty but may be attacked, since the king
// never crosses it.
var castlingAttackPath = [4]uint64{
	bitboard.Square(4) | bitboard.Square(5) | bitboard.Square(6),
	bitboard.Square(2) | bitboard.Square(3) | bitboard.Square(4),
	bitboard.Square(60) | bitboard.Square(61) | bitboard.Square(62),
	bitboard.Square(58) | bitboard.Square(59) | bitboard.Square(60),
}

var castlingRightBits = [4]CastlingRights{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside}

// Generate fills l (discarding its previous contents) with the
// pseudo-legal moves for pos's side to move. "Pseudo-legal" means every
// rule is respected except that a move may leave the mover's own king
// in check; king steps onto attacked squares and castles through
// attacked squares are already left out. Callers must run each
// candidate through MakeMove, which rejects moves failing that check.
func Generate(pos *Position, l *MoveList) {
	l.Len = 0
	genPawnMoves(pos, l)
	genPieceMoves(pos, l)
	genKingMoves(pos, l)
}

func genPawnMoves(pos *Position, l *MoveList) {
	c := pos.ActiveColor
	pawns := pos.Bitboards[WPawn+Piece(c)]
	occ := pos.Occupied()
	enemies := pos.Pieces(c.Opponent()) | pos.Bitboards[WKing+Piece(c.Opponent())]

	var epMask uint64
	if pos.EPTarget != NoEPTarget {
		epMask = bitboard.Square(int(pos.EPTarget))
	}

	dir, startRank, promoRank := 8, bitboard.Rank2, bitboard.Rank8
	if c == Black {
		dir, startRank, promoRank = -8, bitboard.Rank7, bitboard.Rank1
	}

	bb := pawns
	for bb != 0 {
		from := bitboard.PopLSB(&bb)
		to := from + dir
		if to < 0 || to >= 64 {
			continue
		}
		toMask := bitboard.Square(to)

		if toMask&occ == 0 {
			if toMask&promoRank != 0 {
				pushPromotions(l, from, to)
			} else {
				l.Push(Move{From: from, To: to, Kind: Normal})
			}
			if bitboard.Square(from)&startRank != 0 {
				dbl := from + 2*dir
				if bitboard.Square(dbl)&occ == 0 {
					l.Push(Move{From: from, To: dbl, Kind: Normal})
				}
			}
		}

		attacks := PawnAttacks(bitboard.Square(from), c) & (enemies | epMask)
		for attacks != 0 {
			to := bitboard.PopLSB(&attacks)
			toMask := bitboard.Square(to)
			switch {
			case toMask&epMask != 0:
				captured := to - dir
				l.Push(Move{From: from, To: to, Kind: EnPassant, Captured: captured})
			case toMask&promoRank != 0:
				pushPromotions(l, from, to)
			default:
				l.Push(Move{From: from, To: to, Kind: Normal})
			}
		}
	}
}

func pushPromotions(l *MoveList, from, to int) {
	for _, pk := range [4]PieceKind{Knight, Bishop, Rook, Queen} {
		l.Push(Move{From: from, To: to, Kind: Promotion, Promo: pk})
	}
}

func genPieceMoves(pos *Position, l *MoveList) {
	c := pos.ActiveColor
	allies := pos.Pieces(c) | pos.Bitboards[WKing+Piece(c)]
	occ := pos.Occupied()

	knights := pos.Bitboards[WKnight+Piece(c)]
	for knights != 0 {
		from := bitboard.PopLSB(&knights)
		dests := bitboard.KnightAttacks(from) &^ allies
		for dests != 0 {
			l.Push(Move{From: from, To: bitboard.PopLSB(&dests), Kind: Normal})
		}
	}

	bishops := pos.Bitboards[WBishop+Piece(c)]
	for bishops != 0 {
		from := bitboard.PopLSB(&bishops)
		dests := bitboard.BishopAttacks(from, occ) &^ allies
		for dests != 0 {
			l.Push(Move{From: from, To: bitboard.PopLSB(&dests), Kind: Normal})
		}
	}

	rooks := pos.Bitboards[WRook+Piece(c)]
	for rooks != 0 {
		from := bitboard.PopLSB(&rooks)
		dests := bitboard.RookAttacks(from, occ) &^ allies
		for dests != 0 {
			l.Push(Move{From: from, To: bitboard.PopLSB(&dests), Kind: Normal})
		}
	}

	queens := pos.Bitboards[WQueen+Piece(c)]
	for queens != 0 {
		from := bitboard.PopLSB(&queens)
		dests := bitboard.QueenAttacks(from, occ) &^ allies
		for dests != 0 {
			l.Push(Move{From: from, To: bitboard.PopLSB(&dests), Kind: Normal})
		}
	}
}

// genKingMoves appends the king's normal moves and castles. The king
// is temporarily removed from the occupancy used to compute enemy
// attacks so that a slider "X-raying" through the king's own square
// isn't mistaken for stopping there; see AttackedBy.
func genKingMoves(pos *Position, l *MoveList) {
	c := pos.ActiveColor
	kingBB := pos.Bitboards[WKing+Piece(c)]
	if kingBB == 0 {
		return
	}
	king := bitboard.BitScan(kingBB)

	occWithoutKing := pos.Occupied() &^ kingBB
	enemyAttacks := AttackedBy(pos, c.Opponent(), occWithoutKing)

	allies := pos.Pieces(c) | kingBB
	dests := bitboard.KingAttacks(king) &^ allies &^ enemyAttacks
	for dests != 0 {
		l.Push(Move{From: king, To: bitboard.PopLSB(&dests), Kind: Normal})
	}

	occ := pos.Occupied()
	base := 0
	if c == Black {
		base = 2
	}
	rookPiece := WRook + Piece(c)

	kingsideIdx, queensideIdx := base, base+1
	kingsideRook, queensideRook := king+3, king-4

	if pos.CastlingRights&castlingRightBits[kingsideIdx] != 0 &&
		occ&castlingPath[kingsideIdx] == 0 &&
		enemyAttacks&castlingAttackPath[kingsideIdx] == 0 &&
		pos.Bitboards[rookPiece]&bitboard.Square(kingsideRook) != 0 {
		l.Push(Move{From: king, To: king + 2, Kind: Castle, Rook: kingsideRook})
	}
	if pos.CastlingRights&castlingRightBits[queensideIdx] != 0 &&
		occ&castlingPath[queensideIdx] == 0 &&
		enemyAttacks&castlingAttackPath[queensideIdx] == 0 &&
		pos.Bitboards[rookPiece]&bitboard.Square(queensideRook) != 0 {
		l.Push(Move{From: king, To: king - 2, Kind: Castle, Rook: queensideRook})
	}
}
