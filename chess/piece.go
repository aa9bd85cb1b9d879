// Package chess implements the chess position representation, move
// values, attack generation, pseudo-legal move generation, and the
// legality-checked make-move operation.
package chess

// Piece identifies one of the twelve (color, kind) bitboards that make
// up a Position. Colors interleave by design (WPawn, BPawn, WKnight,
// BKnight, ...) so that piece^1 flips the color of a piece in place.
type Piece int

const (
	WPawn Piece = iota
	BPawn
	WKnight
	BKnight
	WBishop
	BBishop
	WRook
	BRook
	WQueen
	BQueen
	WKing
	BKing

	// NoPiece marks the absence of a piece on a square.
	NoPiece Piece = -1
)

// NumPieces is the number of distinct (color, kind) piece bitboards.
const NumPieces = 12

// Color identifies the side to move or the side owning a piece.
type Color int

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color { return c ^ 1 }

// PieceKind identifies a piece's type irrespective of color, used for
// promotion targets.
type PieceKind int

const (
	Knight PieceKind = iota
	Bishop
	Rook
	Queen
)

// CastlingRights is a four-bit set of remaining castling rights.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// pieceGlyphs maps each Piece to its FEN letter, in Piece order.
var pieceGlyphs = [NumPieces]byte{
	'P', 'p', 'N', 'n', 'B', 'b', 'R', 'r', 'Q', 'q', 'K', 'k',
}

// Glyph returns the FEN letter for p.
func (p Piece) Glyph() byte { return pieceGlyphs[p] }

// Color returns the color of p.
func (p Piece) Color() Color { return Color(p & 1) }

// squareNames maps square index 0..63 to algebraic notation.
var squareNames = buildSquareNames()

func buildSquareNames() [64]string {
	var names [64]string
	files := "abcdefgh"
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq/8 + 1
		names[sq] = string([]byte{files[file], byte('0' + rank)})
	}
	return names
}

// SquareName returns the algebraic name ("e4") of square sq.
func SquareName(sq int) string { return squareNames[sq] }
