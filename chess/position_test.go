package chess

import "testing"

func TestAggregatesExcludeKing(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	if pos.WhitePieces()&pos.Bitboards[WKing] != 0 {
		t.Errorf("WhitePieces() must not include the white king")
	}
	if pos.BlackPieces()&pos.Bitboards[BKing] != 0 {
		t.Errorf("BlackPieces() must not include the black king")
	}

	// Occupied must still include both kings.
	occ := pos.Occupied()
	if occ&pos.Bitboards[WKing] == 0 || occ&pos.Bitboards[BKing] == 0 {
		t.Errorf("Occupied() must include both kings")
	}
}

func TestMaskDisjointness(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for i := 0; i < NumPieces; i++ {
		for j := i + 1; j < NumPieces; j++ {
			if pos.Bitboards[i]&pos.Bitboards[j] != 0 {
				t.Errorf("piece bitboards %d and %d overlap", i, j)
			}
		}
	}
}

func TestPieceAt(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := pos.PieceAt(0); got != WRook {
		t.Errorf("PieceAt(a1) = %v, want WRook", got)
	}
	if got := pos.PieceAt(4); got != WKing {
		t.Errorf("PieceAt(e1) = %v, want WKing", got)
	}
	if got := pos.PieceAt(28); got != NoPiece {
		t.Errorf("PieceAt(e4) = %v, want NoPiece", got)
	}
	if got := pos.PieceAt(60); got != BKing {
		t.Errorf("PieceAt(e8) = %v, want BKing", got)
	}
}
