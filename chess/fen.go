package chess

import (
	"strconv"
	"strings"

	"github.com/DieSeeKat/osprey/bitboard"
)

// ParseErrorKind classifies why a FEN string failed to parse.
type ParseErrorKind int

const (
	ErrFieldCount ParseErrorKind = iota
	ErrPiecePlacement
	ErrActiveColor
	ErrCastlingRights
	ErrEPTarget
	ErrMoveCounter
)

// ParseError reports a FEN field that failed to parse, naming both the
// offending field and the reason, instead of panicking on malformed
// input.
type ParseError struct {
	Kind  ParseErrorKind
	Field string
	Msg   string
}

func (e *ParseError) Error() string {
	return "fen: " + e.Field + ": " + e.Msg
}

// ParseFEN parses a Forsyth-Edwards Notation string into a Position.
func ParseFEN(fen string) (Position, error) {
	var pos Position

	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return pos, &ParseError{ErrFieldCount, "fields", "expected 6 space-separated fields, got " + strconv.Itoa(len(fields))}
	}

	if err := parsePiecePlacement(fields[0], &pos); err != nil {
		return pos, err
	}

	switch fields[1] {
	case "w":
		pos.ActiveColor = White
	case "b":
		pos.ActiveColor = Black
	default:
		return pos, &ParseError{ErrActiveColor, "active color", "expected \"w\" or \"b\", got " + fields[1]}
	}

	if err := parseCastlingRights(fields[2], &pos); err != nil {
		return pos, err
	}

	ep, err := parseEPTarget(fields[3])
	if err != nil {
		return pos, err
	}
	pos.EPTarget = ep

	half, err := strconv.Atoi(fields[4])
	if err != nil {
		return pos, &ParseError{ErrMoveCounter, "halfmove clock", "not an integer: " + fields[4]}
	}
	pos.HalfmoveClock = half

	full, err := strconv.Atoi(fields[5])
	if err != nil {
		return pos, &ParseError{ErrMoveCounter, "fullmove number", "not an integer: " + fields[5]}
	}
	pos.FullmoveNumber = full

	return pos, nil
}

var fenGlyphToPiece = map[byte]Piece{
	'P': WPawn, 'p': BPawn,
	'N': WKnight, 'n': BKnight,
	'B': WBishop, 'b': BBishop,
	'R': WRook, 'r': BRook,
	'Q': WQueen, 'q': BQueen,
	'K': WKing, 'k': BKing,
}

func parsePiecePlacement(field string, pos *Position) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return &ParseError{ErrPiecePlacement, "piece placement", "expected 8 ranks, got " + strconv.Itoa(len(ranks))}
	}

	for r := 0; r < 8; r++ {
		rank := ranks[r]
		// FEN lists ranks from 8 down to 1; our rank index is 0-based
		// from rank 1, so rank string r corresponds to board rank 7-r.
		boardRank := 7 - r
		file := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := fenGlyphToPiece[c]
				if !ok {
					return &ParseError{ErrPiecePlacement, "piece placement", "unrecognized piece letter " + string(c)}
				}
				if file >= 8 {
					return &ParseError{ErrPiecePlacement, "piece placement", "rank " + strconv.Itoa(8-r) + " overflows 8 files"}
				}
				sq := boardRank*8 + file
				pos.Bitboards[piece] |= bitboard.Square(sq)
				file++
			}
		}
		if file != 8 {
			return &ParseError{ErrPiecePlacement, "piece placement", "rank " + strconv.Itoa(8-r) + " does not cover 8 files"}
		}
	}
	return nil
}

func parseCastlingRights(field string, pos *Position) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			pos.CastlingRights |= WhiteKingside
		case 'Q':
			pos.CastlingRights |= WhiteQueenside
		case 'k':
			pos.CastlingRights |= BlackKingside
		case 'q':
			pos.CastlingRights |= BlackQueenside
		default:
			return &ParseError{ErrCastlingRights, "castling rights", "unrecognized letter " + string(field[i])}
		}
	}
	return nil
}

func parseEPTarget(field string) (int8, error) {
	if field == "-" {
		return NoEPTarget, nil
	}
	if len(field) != 2 {
		return NoEPTarget, &ParseError{ErrEPTarget, "en passant target", "expected a square like \"e3\", got " + field}
	}
	file := field[0]
	if file < 'a' || file > 'h' {
		return NoEPTarget, &ParseError{ErrEPTarget, "en passant target", "invalid file in " + field}
	}
	rank := field[1]
	if rank < '1' || rank > '8' {
		return NoEPTarget, &ParseError{ErrEPTarget, "en passant target", "invalid rank in " + field}
	}
	sq := int(rank-'1')*8 + int(file-'a')
	return int8(sq), nil
}

// EmitFEN serializes pos into Forsyth-Edwards Notation.
func EmitFEN(pos Position) string {
	var b strings.Builder
	b.Grow(64)

	b.WriteString(emitPiecePlacement(pos))
	b.WriteByte(' ')

	if pos.ActiveColor == White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')

	wrote := false
	if pos.CastlingRights&WhiteKingside != 0 {
		b.WriteByte('K')
		wrote = true
	}
	if pos.CastlingRights&WhiteQueenside != 0 {
		b.WriteByte('Q')
		wrote = true
	}
	if pos.CastlingRights&BlackKingside != 0 {
		b.WriteByte('k')
		wrote = true
	}
	if pos.CastlingRights&BlackQueenside != 0 {
		b.WriteByte('q')
		wrote = true
	}
	if !wrote {
		b.WriteByte('-')
	}
	b.WriteByte(' ')

	if pos.EPTarget == NoEPTarget {
		b.WriteByte('-')
	} else {
		sq := int(pos.EPTarget)
		b.WriteString(SquareName(sq))
	}
	b.WriteByte(' ')

	b.WriteString(strconv.Itoa(pos.HalfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(pos.FullmoveNumber))

	return b.String()
}

func emitPiecePlacement(pos Position) string {
	var board [64]Piece
	for sq := range board {
		board[sq] = NoPiece
	}
	for piece, bb := range pos.Bitboards {
		for bb != 0 {
			sq := bitboard.PopLSB(&bb)
			board[sq] = Piece(piece)
		}
	}

	var b strings.Builder
	b.Grow(72)
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			piece := board[sq]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteByte(piece.Glyph())
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}
