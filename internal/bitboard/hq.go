package bitboard

import "math/bits"

// HQAttacks computes the slider attack set along a single axis using the
// Hyperbola-Quintessence formula:
//
//	(((occ & m) - 2s) XOR reverse(reverse(occ & m) - 2*reverse(s))) & m
//
// s is the single-bit bitboard of the slider's square, occ the full board
// occupancy, and m the axis mask (file, rank, diagonal, or antidiagonal)
// running through that square. The result includes the first blocker hit
// in each direction along the axis.
//
// This is used at init time to build the magic/PEXT attack tables and as
// the ground-truth oracle in tests; it is not the hot runtime lookup path
// (see internal/attacks for that).
func HQAttacks(s, occ, m Bitboard) Bitboard {
	o := occ & m
	forward := o - 2*s
	oRev := Bitboard(bits.Reverse64(uint64(o)))
	sRev := Bitboard(bits.Reverse64(uint64(s)))
	reverse := Bitboard(bits.Reverse64(uint64(oRev - 2*sRev)))
	return (forward ^ reverse) & m
}
