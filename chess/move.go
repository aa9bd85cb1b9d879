package chess

// Kind distinguishes the four move shapes a Move can take. Each kind
// reads a different subset of Move's fields.
type Kind int

const (
	// Normal covers quiet moves and captures of any non-pawn-special kind.
	Normal Kind = iota
	// Castle moves the king two squares and carries the rook's
	// origin/destination implicitly via From/To/Rook.
	Castle
	// EnPassant captures a pawn that is not standing on To.
	EnPassant
	// Promotion replaces the moving pawn with Promo on arrival at To.
	Promotion
)

// Move is a single chess move. Unlike a packed integer encoding, each
// variant carries exactly the fields it needs: Castle needs Rook's
// own origin/destination square, EnPassant needs the captured pawn's
// square (which is not To), and Promotion needs the promoted-to piece
// kind. Move is a small comparable struct, so it is cheap to copy,
// store in a fixed-size MoveList, and compare with ==.
type Move struct {
	From, To int
	Kind     Kind
	// Rook is the rook's origin square for Castle moves; the rook's
	// destination is the square the king passes through.
	Rook int
	// Captured is the square of the pawn removed by an EnPassant
	// capture (one rank behind/ahead of To, depending on side).
	Captured int
	// Promo is the promoted-to piece kind for Promotion moves.
	Promo PieceKind
}

// RookTo returns the rook's destination square for a Castle move.
func (m Move) RookTo() int {
	if m.To > m.From {
		return m.From + 1
	}
	return m.From - 1
}

// MaxMoves bounds the number of pseudo-legal moves any chess position
// can have. See https://www.talkchess.com/forum/viewtopic.php?t=61792.
const MaxMoves = 218

// MoveList is a preallocated, fixed-capacity buffer of moves, avoiding
// per-call heap allocation during move generation.
type MoveList struct {
	Moves [MaxMoves]Move
	Len   int
}

// Push appends m to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Len] = m
	l.Len++
}

// Slice returns the populated prefix of the move list.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Len] }
