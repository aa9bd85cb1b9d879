// Package bitboard implements the low-level bit constants and primitives
// shared by move generation: file/rank/diagonal masks, knight/king attack
// seeds, and the sliding-attack identity used for bishops, rooks and queens.
package bitboard

import "math/bits"

// File and rank masks. Square indexing is 0..63 with file = index%8
// (0 = a-file) and rank = index/8 (0 = rank 1).
const (
	FileA uint64 = 0x0101010101010101
	FileB        = FileA << 1
	FileC        = FileA << 2
	FileD        = FileA << 3
	FileE        = FileA << 4
	FileF        = FileA << 5
	FileG        = FileA << 6
	FileH        = FileA << 7

	Rank1 uint64 = 0xFF
	Rank2        = Rank1 << (8 * 1)
	Rank3        = Rank1 << (8 * 2)
	Rank4        = Rank1 << (8 * 3)
	Rank5        = Rank1 << (8 * 4)
	Rank6        = Rank1 << (8 * 5)
	Rank7        = Rank1 << (8 * 6)
	Rank8        = Rank1 << (8 * 7)

	NotFileA uint64 = ^FileA
	NotFileH uint64 = ^FileH
)

// FileMasks and RankMasks index directly by file/rank (0..7).
var (
	FileMasks = [8]uint64{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
	RankMasks = [8]uint64{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}
)

// DiagMasks holds the fifteen a1-h8 diagonals, indexed by file+rank (0..14).
// AntiDiagMasks holds the fifteen a8-h1 anti-diagonals, indexed by
// rank+7-file (0..14).
var (
	DiagMasks     [15]uint64
	AntiDiagMasks [15]uint64
)

func init() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8
		DiagMasks[file+rank] |= uint64(1) << sq
		AntiDiagMasks[rank-file+7] |= uint64(1) << sq
	}
}

// Square returns the mask of square sq (0..63).
func Square(sq int) uint64 { return uint64(1) << uint(sq) }

// RankOf and FileOf return the rank/file (0..7) of a square.
func RankOf(sq int) int { return sq / 8 }
func FileOf(sq int) int { return sq % 8 }

// PopCount returns the number of set bits in bb.
//
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf
// section 3.1 for the hand-rolled alternative this mirrors; here we defer
// to the compiler-intrinsic math/bits implementation, which the corpus
// never uses but which is strictly the same operation.
func PopCount(bb uint64) int { return bits.OnesCount64(bb) }

// bitscanMagic and bitScanLookup implement a De Bruijn-style bit scan,
// mirroring the lookup-table approach used throughout the corpus for
// finding the least-significant set bit without a hardware instruction.
const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// BitScan returns the index of the least significant set bit of bb.
// Returns -1 for an empty bitboard.
func BitScan(bb uint64) int {
	if bb == 0 {
		return -1
	}
	return bitScanLookup[(bb&-bb)*bitscanMagic>>58]
}

// PopLSB clears the least significant set bit of *bb and returns its index.
// Returns -1 (and leaves *bb unchanged) for an empty bitboard.
func PopLSB(bb *uint64) int {
	lsb := BitScan(*bb)
	if lsb < 0 {
		return -1
	}
	*bb &= *bb - 1
	return lsb
}

// SlidingAttack computes the attack set of a slider standing on sq along
// the single line described by lineMask (a rank, file, diagonal or
// anti-diagonal mask that includes sq), given board occupancy occ.
//
// This is the "o^(o-2s)" hyperbola-quintessence identity: the attack set
// in each of the line's two directions is recovered simultaneously by
// computing the subtraction once and once more on the bit-reversed line,
// then re-reversing. Wrap-around (mod 2^64) subtraction is exactly what
// makes the identity work; Go's unsigned arithmetic wraps natively.
func SlidingAttack(sq int, lineMask, occ uint64) uint64 {
	s := Square(sq)
	o := occ & lineMask
	forward := o - 2*s
	reverseO := bits.Reverse64(o)
	reverseS := bits.Reverse64(s)
	backward := bits.Reverse64(reverseO - 2*reverseS)
	return (forward ^ backward) & lineMask
}

// BishopAttacks returns the attack set of a bishop on sq given occupancy occ.
// The result includes occupied squares (including enemy and own pieces);
// callers mask with the complement of their own pieces.
func BishopAttacks(sq int, occ uint64) uint64 {
	file, rank := FileOf(sq), RankOf(sq)
	return SlidingAttack(sq, DiagMasks[file+rank], occ) |
		SlidingAttack(sq, AntiDiagMasks[rank-file+7], occ)
}

// RookAttacks returns the attack set of a rook on sq given occupancy occ.
func RookAttacks(sq int, occ uint64) uint64 {
	return SlidingAttack(sq, RankMasks[RankOf(sq)], occ) |
		SlidingAttack(sq, FileMasks[FileOf(sq)], occ)
}

// QueenAttacks returns the attack set of a queen on sq given occupancy occ.
func QueenAttacks(sq int, occ uint64) uint64 {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}

// knightSeed holds the eight knight-move targets of square 18 (c3) and
// kingSeed the eight neighbours of square 9 (b2): shifting them by s-18
// (resp. s-9) and masking out wrap-around yields the attack set for a
// knight (resp. king) on any square s.
var knightSeed, kingSeed uint64

func init() {
	// Knight seed centered at square 18 (c3): the eight knight-move
	// offsets from c3, expressed directly so the seed is correct before
	// any shifting occurs.
	for _, d := range [8]int{-17, -15, -10, -6, 6, 10, 15, 17} {
		dst := 18 + d
		if dst >= 0 && dst < 64 {
			knightSeed |= Square(dst)
		}
	}
	// King seed centered at square 9 (b2): the eight adjacent squares.
	for dr := -1; dr <= 1; dr++ {
		for df := -1; df <= 1; df++ {
			if dr == 0 && df == 0 {
				continue
			}
			r, f := RankOf(9)+dr, FileOf(9)+df
			if r >= 0 && r < 8 && f >= 0 && f < 8 {
				kingSeed |= Square(r*8 + f)
			}
		}
	}
}

// shiftSeed shifts seed from its center square to sq, masking out any
// wrap-around across the board edge. center is 18 for knights, 9 for
// kings; lowFileLimit is the highest file index counted as the board's
// left side. Files G and H are dropped when sq's file is at most
// lowFileLimit, files A and B otherwise, preventing the seed pattern
// from reappearing on the opposite edge after the shift.
func shiftSeed(seed uint64, sq, center int, lowFileLimit int) uint64 {
	var shifted uint64
	if sq >= center {
		shifted = seed << uint(sq-center)
	} else {
		shifted = seed >> uint(center-sq)
	}
	if FileOf(sq) <= lowFileLimit {
		shifted &^= FileG | FileH
	} else {
		shifted &^= FileA | FileB
	}
	return shifted
}

// KnightAttacks returns the knight attack mask for a knight on sq.
func KnightAttacks(sq int) uint64 { return shiftSeed(knightSeed, sq, 18, 3) }

// KingAttacks returns the king attack mask for a king on sq.
func KingAttacks(sq int) uint64 { return shiftSeed(kingSeed, sq, 9, 3) }
