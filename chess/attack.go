package chess

import "github.com/DieSeeKat/osprey/bitboard"

// PawnAttacks returns the squares attacked by every pawn in pawns
// (a bitboard of one or more same-colored pawns), for side c.
func PawnAttacks(pawns uint64, c Color) uint64 {
	if c == White {
		return (pawns&bitboard.NotFileA)<<7 | (pawns&bitboard.NotFileH)<<9
	}
	return (pawns&bitboard.NotFileA)>>9 | (pawns&bitboard.NotFileH)>>7
}

// AttackedBy returns the union of all squares attacked by c's pieces,
// given an explicit occupancy bitboard.
//
// occupancy is taken as an explicit parameter rather than derived from
// pos.Occupied() because king-safety checks must exclude the mover's
// own king from the occupancy used to compute slider attacks: if the
// king is left in the occupancy while it's "moving away" from a
// slider's line, the slider's attack appears to stop at the king's old
// square, and the king can wrongly be judged safe to step further back
// along that same line.
func AttackedBy(pos *Position, c Color, occupancy uint64) uint64 {
	var attacks uint64

	bishops := pos.Bitboards[WBishop+Piece(c)]
	for bishops != 0 {
		sq := bitboard.PopLSB(&bishops)
		attacks |= bitboard.BishopAttacks(sq, occupancy)
	}
	rooks := pos.Bitboards[WRook+Piece(c)]
	for rooks != 0 {
		sq := bitboard.PopLSB(&rooks)
		attacks |= bitboard.RookAttacks(sq, occupancy)
	}
	queens := pos.Bitboards[WQueen+Piece(c)]
	for queens != 0 {
		sq := bitboard.PopLSB(&queens)
		attacks |= bitboard.QueenAttacks(sq, occupancy)
	}

	attacks |= PawnAttacks(pos.Bitboards[WPawn+Piece(c)], c)

	knights := pos.Bitboards[WKnight+Piece(c)]
	for knights != 0 {
		sq := bitboard.PopLSB(&knights)
		attacks |= bitboard.KnightAttacks(sq)
	}

	king := pos.Bitboards[WKing+Piece(c)]
	if king != 0 {
		attacks |= bitboard.KingAttacks(bitboard.BitScan(king))
	}

	return attacks
}

// SquareAttacked reports whether sq is attacked by any of c's pieces,
// given occupancy.
func SquareAttacked(pos *Position, sq int, c Color, occupancy uint64) bool {
	return AttackedBy(pos, c, occupancy)&bitboard.Square(sq) != 0
}

// InCheck reports whether c's king is currently attacked.
func InCheck(pos *Position, c Color) bool {
	king := pos.KingSquare(c)
	if king < 0 {
		return false
	}
	return SquareAttacked(pos, king, c.Opponent(), pos.Occupied())
}
