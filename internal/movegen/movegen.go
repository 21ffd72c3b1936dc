// Package movegen generates legal chess moves directly, without a
// pseudo-legal-then-filter pass: checkers, pinned pieces, and a
// capture/push mask pair are computed once per call and every
// per-piece-type generator intersects its candidate targets against
// them before a move is ever pushed onto the sink.
package movegen

import (
	"github.com/hailam/chesscore/internal/attacks"
	"github.com/hailam/chesscore/internal/bitboard"
	"github.com/hailam/chesscore/internal/move"
	"github.com/hailam/chesscore/internal/position"
)

type bb = bitboard.Bitboard
type sq = bitboard.Square

// GenType selects which regime of legal moves a call to Generate
// produces. NonEvasions and Evasions are the two regimes the driver
// itself distinguishes depending on whether the side to move is in
// check; Captures restricts output to captures and (per quiescence
// convention) non-capturing promotions.
type GenType uint8

const (
	NonEvasions GenType = iota
	Evasions
	Captures
)

// GenerateAll returns every legal move available to the side to move.
func GenerateAll(pos *position.Position) *move.List {
	list := &move.List{}
	checkers := pos.Checkers()
	gt := NonEvasions
	if checkers != 0 {
		gt = Evasions
	}
	Generate(gt, pos, checkers, list)
	return list
}

// GenerateCaptures returns captures and non-capturing promotions, for
// quiescence-style search.
func GenerateCaptures(pos *position.Position) *move.List {
	list := &move.List{}
	Generate(Captures, pos, pos.Checkers(), list)
	return list
}

// Generate pushes every legal move for pos matching gt onto sink.
// checkers is the caller-supplied result of pos.Checkers() (callers that
// already computed it avoid recomputing; GenerateAll/GenerateCaptures do
// it for you).
func Generate(gt GenType, pos *position.Position, checkers bb, sink move.Sink) {
	us, them := pos.Us(), pos.Them()
	occupied, free := pos.Occupied(), pos.Free()
	ops := position.OpsFor(pos.SideToMove())
	kingSq := us.KingSquare()
	attackedByThem := pos.AttackedByThem()

	if checkers.PopCount() >= 2 {
		generateKingMoves(us, them, occupied, attackedByThem, kingSq, gt, sink)
		return
	}

	var captureMask, pushMask bb
	allowCastle := false
	switch {
	case checkers != 0:
		captureMask = checkers
		checkerSq := checkers.LSB()
		if isSlider(them, checkerSq) {
			pushMask = attacks.BetweenExclusive(kingSq, checkerSq)
		}
	default:
		captureMask = them.All
		pushMask = free
		allowCastle = true
	}

	// Pawns keep the push mask so generatePawnGroup can still emit
	// non-capturing promotions under Captures.
	pawnPushMask := pushMask
	if gt == Captures {
		pushMask = 0
	}

	pinned := pos.Pinned()

	generateKnightMoves(us, them, pinned, captureMask, pushMask, sink)
	generateSliderMoves(us.Bishop, us, them, occupied, pinned, kingSq, captureMask, pushMask, attacks.Bishop, sink)
	generateSliderMoves(us.Rook, us, them, occupied, pinned, kingSq, captureMask, pushMask, attacks.Rook, sink)
	generateSliderMoves(us.Queen, us, them, occupied, pinned, kingSq, captureMask, pushMask, attacks.Queen, sink)
	generateKingMoves(us, them, occupied, attackedByThem, kingSq, gt, sink)
	generatePawnMoves(pos, ops, us, them, occupied, free, pinned, kingSq, captureMask, pawnPushMask, gt, sink)
	generateEnPassant(pos, ops, us, them, occupied, pinned, kingSq, captureMask, pushMask, sink)

	if allowCastle && gt != Captures {
		generateCastling(pos, ops, us, occupied, attackedByThem, sink)
	}
}

func isSlider(them *position.PieceSet, s sq) bool {
	switch them.KindAt(s) {
	case position.Rook, position.Bishop, position.Queen:
		return true
	default:
		return false
	}
}

// emitTargets pushes one move per set bit of targets, tagging each as a
// capture or quiet move depending on whether it lands on an enemy piece.
func emitTargets(from sq, targets bb, them *position.PieceSet, sink move.Sink) {
	targets.ForEach(func(to sq) {
		if them.All.IsSet(to) {
			sink.Push(move.NewCapture(from, to))
		} else {
			sink.Push(move.NewQuiet(from, to))
		}
	})
}

func generateKnightMoves(us, them *position.PieceSet, pinned, captureMask, pushMask bb, sink move.Sink) {
	// A pinned knight has no legal move: it cannot stay on the pin axis
	// and still move like a knight, so pinned knights are excluded
	// outright rather than masked.
	knights := us.Knight &^ pinned
	knights.ForEach(func(s sq) {
		targets := attacks.Knight(s) &^ us.All & (captureMask | pushMask)
		emitTargets(s, targets, them, sink)
	})
}

func generateSliderMoves(pieces bb, us, them *position.PieceSet, occupied, pinned bb, kingSq sq, captureMask, pushMask bb, lookup func(sq, bb) bb, sink move.Sink) {
	pieces.ForEach(func(s sq) {
		targets := lookup(s, occupied) &^ us.All & (captureMask | pushMask)
		if pinned.IsSet(s) {
			targets &= attacks.Line(kingSq, s)
		}
		emitTargets(s, targets, them, sink)
	})
}

func generateKingMoves(us, them *position.PieceSet, occupied, attackedByThem bb, kingSq sq, gt GenType, sink move.Sink) {
	targets := attacks.King(kingSq) &^ us.All &^ attackedByThem
	if gt == Captures {
		targets &= them.All
	}
	emitTargets(kingSq, targets, them, sink)
}

func generateCastling(pos *position.Position, ops *position.SideOps, us *position.PieceSet, occupied, attackedByThem bb, sink move.Sink) {
	rights := pos.CastlingRights()

	if rights&ops.KingsideRightBit != 0 && occupied&ops.KingsideBetween == 0 {
		if !anyAttacked(ops.KingsideSafe[:], attackedByThem) {
			sink.Push(move.New(ops.KingHome, ops.KingsideKingTo, move.ShortCastle))
		}
	}
	if rights&ops.QueensideRightBit != 0 && occupied&ops.QueensideBetween == 0 {
		if !anyAttacked(ops.QueensideSafe[:], attackedByThem) {
			sink.Push(move.New(ops.KingHome, ops.QueensideKingTo, move.LongCastle))
		}
	}
}

func anyAttacked(squares []sq, attackedByThem bb) bool {
	for _, s := range squares {
		if attackedByThem.IsSet(s) {
			return true
		}
	}
	return false
}
