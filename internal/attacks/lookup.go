package attacks

// Rook returns the rook attack set from s given the full board occupancy.
func Rook(s sq, occ bb) bb {
	if pextAvailable {
		m := &rookMagics[s]
		idx := pextGather(occ&m.mask, m.mask)
		return rookTablePext[m.offset+uint32(idx)]
	}
	return rookAttacksMagic(s, occ)
}

// Bishop returns the bishop attack set from s given the full board occupancy.
func Bishop(s sq, occ bb) bb {
	if pextAvailable {
		m := &bishopMagics[s]
		idx := pextGather(occ&m.mask, m.mask)
		return bishopTablePext[m.offset+uint32(idx)]
	}
	return bishopAttacksMagic(s, occ)
}

// Queen returns the queen attack set from s given the full board occupancy.
func Queen(s sq, occ bb) bb {
	return Rook(s, occ) | Bishop(s, occ)
}
