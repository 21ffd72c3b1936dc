package attacks

import "github.com/hailam/chesscore/internal/bitboard"

// magicEntry holds the magic-multiply lookup data for a single square.
type magicEntry struct {
	mask   bb
	magic  uint64
	shift  uint8
	offset uint32
}

var (
	bishopMagics [64]magicEntry
	rookMagics   [64]magicEntry

	bishopTable [5248]bb
	rookTable   [102400]bb

	// bishopTablePext and rookTablePext hold the same per-square attack
	// sets as bishopTable/rookTable, but indexed by the dense pextGather
	// subset index rather than the magic-multiply hash, so the PEXT
	// lookup path in lookup.go can use a table exactly sized to the
	// number of occupancy subsets at each square, as spec'd.
	bishopTablePext [5248]bb
	rookTablePext   [102400]bb
)

// Known-good magic multipliers. A magic number for a square is valid if
// (occupancy&mask)*magic>>shift produces no collisions across every
// subset of mask; these have been verified to do so.
var bishopMagicNumbers = [64]uint64{
	0x0002020202020200, 0x0002020202020000, 0x0004010202000000, 0x0004040080000000,
	0x0001104000000000, 0x0000821040000000, 0x0000410410400000, 0x0000104104104000,
	0x0000040404040400, 0x0000020202020200, 0x0000040102020000, 0x0000040400800000,
	0x0000011040000000, 0x0000008210400000, 0x0000004104104000, 0x0000002082082000,
	0x0004000808080800, 0x0002000404040400, 0x0001000202020200, 0x0000800802004000,
	0x0000800400A00000, 0x0000200100884000, 0x0000400082082000, 0x0000200041041000,
	0x0002080010101000, 0x0001040008080800, 0x0000208004010400, 0x0000404004010200,
	0x0000840000802000, 0x0000404002011000, 0x0000808001041000, 0x0000404000820800,
	0x0001041000202000, 0x0000820800101000, 0x0000104400080800, 0x0000020080080080,
	0x0000404040040100, 0x0000808100020100, 0x0001010100020800, 0x0000808080010400,
	0x0000820820004000, 0x0000410410002000, 0x0000082088001000, 0x0000002011000800,
	0x0000080100400400, 0x0001010101000200, 0x0002020202000400, 0x0001010101000200,
	0x0000410410400000, 0x0000208208200000, 0x0000002084100000, 0x0000000020880000,
	0x0000001002020000, 0x0000040408020000, 0x0004040404040000, 0x0002020202020000,
	0x0000104104104000, 0x0000002082082000, 0x0000000020841000, 0x0000000000208800,
	0x0000000010020200, 0x0000000404080200, 0x0000040404040400, 0x0002020202020200,
}

var rookMagicNumbers = [64]uint64{
	0x0080001020400080, 0x0040001000200040, 0x0080081000200080, 0x0080040800100080,
	0x0080020400080080, 0x0080010200040080, 0x0080008001000200, 0x0080002040800100,
	0x0000800020400080, 0x0000400020005000, 0x0000801000200080, 0x0000800800100080,
	0x0000800400080080, 0x0000800200040080, 0x0000800100020080, 0x0000800040800100,
	0x0000208000400080, 0x0000404000201000, 0x0000808010002000, 0x0000808008001000,
	0x0000808004000800, 0x0000808002000400, 0x0000010100020004, 0x0000020000408104,
	0x0000208080004000, 0x0000200040005000, 0x0000100080200080, 0x0000080080100080,
	0x0000040080080080, 0x0000020080040080, 0x0000010080800200, 0x0000800080004100,
	0x0000204000800080, 0x0000200040401000, 0x0000100080802000, 0x0000080080801000,
	0x0000040080800800, 0x0000020080800400, 0x0000020001010004, 0x0000800040800100,
	0x0000204000808000, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000010002008080, 0x0000004081020004,
	0x0000204000800080, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000800100020080, 0x0000800041000080,
	0x00FFFCDDFCED714A, 0x007FFCDDFCED714A, 0x003FFFCDFFD88096, 0x0000040810002101,
	0x0001000204080011, 0x0001000204000801, 0x0001000082000401, 0x0001FFFAABFAD1A2,
}

func initMagics() {
	initBishopMagics()
	initRookMagics()
}

func initBishopMagics() {
	var offset uint32
	for s := bitboard.A1; s <= bitboard.H8; s++ {
		mask := bishopMask(s)
		n := mask.PopCount()

		bishopMagics[s] = magicEntry{
			mask:   mask,
			magic:  bishopMagicNumbers[s],
			shift:  uint8(64 - n),
			offset: offset,
		}

		entries := 1 << n
		for i := 0; i < entries; i++ {
			occ := indexToOccupancy(i, n, mask)
			attack := bishopAttacksHQ(s, occ)
			idx := (uint64(occ) * bishopMagicNumbers[s]) >> (64 - n)
			bishopTable[offset+uint32(idx)] = attack
			// indexToOccupancy packs mask's bits low-to-high into i the
			// same way pextGather packs them, so i is already the dense
			// PEXT subset index for this occ.
			bishopTablePext[offset+uint32(i)] = attack
		}
		offset += uint32(entries)
	}
}

func initRookMagics() {
	var offset uint32
	for s := bitboard.A1; s <= bitboard.H8; s++ {
		mask := rookMask(s)
		n := mask.PopCount()

		rookMagics[s] = magicEntry{
			mask:   mask,
			magic:  rookMagicNumbers[s],
			shift:  uint8(64 - n),
			offset: offset,
		}

		entries := 1 << n
		for i := 0; i < entries; i++ {
			occ := indexToOccupancy(i, n, mask)
			attack := rookAttacksHQ(s, occ)
			idx := (uint64(occ) * rookMagicNumbers[s]) >> (64 - n)
			rookTable[offset+uint32(idx)] = attack
			rookTablePext[offset+uint32(i)] = attack
		}
		offset += uint32(entries)
	}
}

// bishopMask returns the relevant occupancy mask for a bishop on s: the
// diagonal and antidiagonal through s, with the board edge squares
// stripped since an occupant there never changes the attack set.
func bishopMask(s sq) bb {
	edges := bitboard.Rank1 | bitboard.Rank8 | bitboard.FileA | bitboard.FileH
	return (DiagMask(s) | AntiDiagMask(s)) &^ (edges | bitboard.SquareBB(s))
}

// rookMask returns the relevant occupancy mask for a rook on s: its file
// and rank, excluding the far edge square in each direction and s itself.
func rookMask(s sq) bb {
	file, rank := s.File(), s.Rank()
	var mask bb
	for f := 1; f < 7; f++ {
		if f != file {
			mask |= bitboard.SquareBB(bitboard.NewSquare(f, rank))
		}
	}
	for r := 1; r < 7; r++ {
		if r != rank {
			mask |= bitboard.SquareBB(bitboard.NewSquare(file, r))
		}
	}
	return mask
}

// indexToOccupancy expands a dense subset index back into the sparse
// occupancy bitboard it represents, walking mask's set bits low to high.
func indexToOccupancy(index, bitCount int, mask bb) bb {
	var occ bb
	for i := 0; i < bitCount; i++ {
		s := mask.LSB()
		mask &= mask - 1
		if index&(1<<uint(i)) != 0 {
			occ |= bitboard.SquareBB(s)
		}
	}
	return occ
}

// bishopAttacksHQ and rookAttacksHQ are the Hyperbola-Quintessence ground
// truth used only to populate the magic tables at init time.
func bishopAttacksHQ(s sq, occ bb) bb {
	sBB := bitboard.SquareBB(s)
	return bitboard.HQAttacks(sBB, occ, DiagMask(s)) | bitboard.HQAttacks(sBB, occ, AntiDiagMask(s))
}

func rookAttacksHQ(s sq, occ bb) bb {
	sBB := bitboard.SquareBB(s)
	return bitboard.HQAttacks(sBB, occ, FileMask(s)) | bitboard.HQAttacks(sBB, occ, RankMask(s))
}

// bishopAttacksMagic returns bishop attacks via magic-multiply lookup.
func bishopAttacksMagic(s sq, occ bb) bb {
	m := &bishopMagics[s]
	idx := ((uint64(occ) & uint64(m.mask)) * m.magic) >> m.shift
	return bishopTable[m.offset+uint32(idx)]
}

// rookAttacksMagic returns rook attacks via magic-multiply lookup.
func rookAttacksMagic(s sq, occ bb) bb {
	m := &rookMagics[s]
	idx := ((uint64(occ) & uint64(m.mask)) * m.magic) >> m.shift
	return rookTable[m.offset+uint32(idx)]
}
