package position

import (
	"github.com/hailam/chesscore/internal/attacks"
)

// AttackedByThem returns every square the opponent attacks, with our
// king removed from the occupancy first so that sliding attacks "see
// through" it — the squares a king may not flee to across a slider's
// ray include the square directly behind the king.
func (p *Position) AttackedByThem() bb {
	ops := OpsFor(p.sideToMove.Other())
	occWithoutOurKing := p.occupied &^ p.us.King

	var a bb
	a |= ops.Left(p.them.Pawn) | ops.Right(p.them.Pawn)
	a |= attacksOfSliders(p.them.RookQueens(), occWithoutOurKing, attacks.Rook)
	a |= attacksOfSliders(p.them.BishopQueens(), occWithoutOurKing, attacks.Bishop)
	p.them.Knight.ForEach(func(s sq) { a |= attacks.Knight(s) })
	if p.them.King != 0 {
		a |= attacks.King(p.them.King.LSB())
	}
	return a
}

// AttackedByUs returns every square we attack, with the opponent's king
// removed from the occupancy first, mirroring AttackedByThem.
func (p *Position) AttackedByUs() bb {
	ops := OpsFor(p.sideToMove)
	occWithoutTheirKing := p.occupied &^ p.them.King

	var a bb
	a |= ops.Left(p.us.Pawn) | ops.Right(p.us.Pawn)
	a |= attacksOfSliders(p.us.RookQueens(), occWithoutTheirKing, attacks.Rook)
	a |= attacksOfSliders(p.us.BishopQueens(), occWithoutTheirKing, attacks.Bishop)
	p.us.Knight.ForEach(func(s sq) { a |= attacks.Knight(s) })
	if p.us.King != 0 {
		a |= attacks.King(p.us.King.LSB())
	}
	return a
}

func attacksOfSliders(sliders, occ bb, lookup func(sq, bb) bb) bb {
	var a bb
	sliders.ForEach(func(s sq) { a |= lookup(s, occ) })
	return a
}

// Checkers returns the opponent pieces currently giving check to our
// king.
func (p *Position) Checkers() bb {
	kingSq := p.us.KingSquare()

	var c bb
	// attacks.Pawn(kingSq, us) gives the squares a pawn of color us
	// would capture to from kingSq, which is exactly the set of squares
	// an opposing pawn must stand on to check that king.
	c |= attacks.Pawn(kingSq, p.sideToMove) & p.them.Pawn
	c |= attacks.Rook(kingSq, p.occupied) & p.them.RookQueens()
	c |= attacks.Bishop(kingSq, p.occupied) & p.them.BishopQueens()
	c |= attacks.Knight(kingSq) & p.them.Knight
	return c
}

// Pinned returns the set of our pieces pinned against our king: pieces
// lying on a ray between our king and an opponent slider, where the
// king's own slider-attack along that ray (cast through the would-be
// pinned piece) meets exactly one of our pieces before the pinner.
func (p *Position) Pinned() bb {
	kingSq := p.us.KingSquare()
	var pinned bb

	pinned |= pinnedAlong(kingSq, p.them.RookQueens(), p.occupied, p.us.All, attacks.Rook)
	pinned |= pinnedAlong(kingSq, p.them.BishopQueens(), p.occupied, p.us.All, attacks.Bishop)
	return pinned
}

// pinnedAlong finds pieces of ours pinned against kingSq by an opponent
// slider of the given axis kind. For each opponent slider, the ray from
// the king toward it (attacks.BetweenExclusive) is intersected with
// our occupancy; if exactly one of our pieces sits on that ray, it is
// pinned.
func pinnedAlong(kingSq sq, oppSliders, occ, ours bb, lookup func(sq, bb) bb) bb {
	var pinned bb
	// Candidate pinners: opponent sliders that attack the king square
	// once all of our pieces are removed from the board (so the ray
	// passes through our blockers to find the slider behind them).
	xray := lookup(kingSq, occ&^ours) & oppSliders
	xray.ForEach(func(pinnerSq sq) {
		between := attacks.BetweenExclusive(kingSq, pinnerSq)
		blockers := between & ours
		if blockers.PopCount() == 1 {
			pinned |= blockers
		}
	})
	return pinned
}
