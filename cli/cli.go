// Package cli formats chess positions and bitboards for terminal
// display, mainly to visualize perft runs and debugging sessions.
package cli

import (
	"strings"

	"github.com/DieSeeKat/osprey/chess"
)

var pieceSymbols = [chess.NumPieces]rune{
	'♙', '♟', '♘', '♞', '♗', '♝', '♖', '♜', '♕', '♛', '♔', '♚',
}

// FormatBitboard formats a single bitboard into an 8x8 board diagram,
// marking every set square with glyph.
func FormatBitboard(bb uint64, glyph rune) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			square := uint64(1) << uint(8*rank+file)
			symbol := glyph
			if bb&square == 0 {
				symbol = '.'
			}
			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")
	return b.String()
}

// FormatPosition formats a full chess position into a human-readable
// board diagram followed by side-to-move, en passant, and castling
// rights summary lines.
func FormatPosition(pos chess.Position) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			symbol := '.'
			if piece := pos.PieceAt(sq); piece != chess.NoPiece {
				symbol = pieceSymbols[piece]
			}
			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\nActive color: ")

	if pos.ActiveColor == chess.White {
		b.WriteString("white\nEn passant: ")
	} else {
		b.WriteString("black\nEn passant: ")
	}

	if pos.EPTarget == chess.NoEPTarget {
		b.WriteString("none\nCastling rights: ")
	} else {
		b.WriteString(chess.SquareName(int(pos.EPTarget)))
		b.WriteString("\nCastling rights: ")
	}

	wrote := false
	if pos.CastlingRights&chess.WhiteKingside != 0 {
		b.WriteByte('K')
		wrote = true
	}
	if pos.CastlingRights&chess.WhiteQueenside != 0 {
		b.WriteByte('Q')
		wrote = true
	}
	if pos.CastlingRights&chess.BlackKingside != 0 {
		b.WriteByte('k')
		wrote = true
	}
	if pos.CastlingRights&chess.BlackQueenside != 0 {
		b.WriteByte('q')
		wrote = true
	}
	if !wrote {
		b.WriteByte('-')
	}
	b.WriteByte('\n')

	return b.String()
}
