package bitboard

import "testing"

func TestBitScanAndPopLSB(t *testing.T) {
	if got := BitScan(0); got != -1 {
		t.Fatalf("BitScan(0) = %d, want -1", got)
	}
	for sq := 0; sq < 64; sq++ {
		bb := Square(sq)
		if got := BitScan(bb); got != sq {
			t.Fatalf("BitScan(Square(%d)) = %d, want %d", sq, got, sq)
		}
	}

	bb := Square(3) | Square(40) | Square(63)
	var got []int
	for bb != 0 {
		got = append(got, PopLSB(&bb))
	}
	want := []int{3, 40, 63}
	if len(got) != len(want) {
		t.Fatalf("PopLSB sequence = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PopLSB sequence = %v, want %v", got, want)
		}
	}
	if bb != 0 {
		t.Fatalf("bitboard not empty after draining: %x", bb)
	}
}

func TestPopCount(t *testing.T) {
	if got := PopCount(0); got != 0 {
		t.Fatalf("PopCount(0) = %d, want 0", got)
	}
	if got := PopCount(Rank1); got != 8 {
		t.Fatalf("PopCount(Rank1) = %d, want 8", got)
	}
	if got := PopCount(^uint64(0)); got != 64 {
		t.Fatalf("PopCount(all) = %d, want 64", got)
	}
}

func TestKnightAttacks(t *testing.T) {
	testcases := []struct {
		name string
		sq   int
		want uint64
	}{
		{"d4", 27, Square(10) | Square(12) | Square(17) | Square(21) |
			Square(33) | Square(37) | Square(42) | Square(44)},
		{"a8", 56, Square(41) | Square(50)},
		{"h1", 7, Square(13) | Square(22)},
	}
	for _, tc := range testcases {
		if got := KnightAttacks(tc.sq); got != tc.want {
			t.Errorf("%s: KnightAttacks(%d) = %#x, want %#x", tc.name, tc.sq, got, tc.want)
		}
	}
}

func TestKingAttacks(t *testing.T) {
	testcases := []struct {
		name string
		sq   int
		want uint64
	}{
		{"d5", 35, Square(26) | Square(27) | Square(28) |
			Square(34) | Square(36) | Square(42) | Square(43) | Square(44)},
		{"a8", 56, Square(48) | Square(49) | Square(57)},
		{"h1", 7, Square(6) | Square(14) | Square(15)},
	}
	for _, tc := range testcases {
		if got := KingAttacks(tc.sq); got != tc.want {
			t.Errorf("%s: KingAttacks(%d) = %#x, want %#x", tc.name, tc.sq, got, tc.want)
		}
	}
}

func TestRookAttacksEmptyBoard(t *testing.T) {
	// Rook on d4 (sq 27) with no occupancy: full rank + file minus itself.
	got := RookAttacks(27, 0)
	want := (RankMasks[RankOf(27)] | FileMasks[FileOf(27)]) &^ Square(27)
	if got != want {
		t.Errorf("RookAttacks(27, 0) = %#x, want %#x", got, want)
	}
}

func TestRookAttacksBlocked(t *testing.T) {
	// Rook on a1 (sq 0), blocker on a4 (sq 24) and d1 (sq 3).
	occ := Square(24) | Square(3)
	got := RookAttacks(0, occ)
	want := Square(1) | Square(2) | Square(3) | Square(8) | Square(16) | Square(24)
	if got != want {
		t.Errorf("RookAttacks(0, occ) = %#x, want %#x", got, want)
	}
}

func TestBishopAttacksBlocked(t *testing.T) {
	// Bishop on d4 (sq 27), blocker on f6 (sq 45).
	occ := Square(45)
	got := BishopAttacks(27, occ)
	want := Square(0) | Square(9) | Square(18) | Square(36) | Square(45) | // a1-h8 diag
		Square(6) | Square(13) | Square(20) | Square(34) | Square(41) | Square(48) // a7-g1 anti-diag dir
	if got != want {
		t.Errorf("BishopAttacks(27, occ) = %#x, want %#x", got, want)
	}
}
