package movegen

import (
	"github.com/hailam/chesscore/internal/attacks"
	"github.com/hailam/chesscore/internal/bitboard"
	"github.com/hailam/chesscore/internal/move"
	"github.com/hailam/chesscore/internal/position"
)

// generatePawnMoves handles pushes, double pushes, captures, and
// promotions for every pawn of us. Unpinned pawns are processed in bulk
// with shift-and-mask bitboard arithmetic; the rare pinned pawn is
// processed individually against its own pin axis, reusing the same
// bulk arithmetic with the axis folded in as an extra mask — a file pin
// zeroes out the diagonal capture targets, a diagonal pin zeroes out the
// push targets, and a rank pin zeroes out everything, so no special
// casing is needed per pin direction.
func generatePawnMoves(pos *position.Position, ops *position.SideOps, us, them *position.PieceSet, occupied, free, pinned bb, kingSq sq, captureMask, pushMask bb, gt GenType, sink move.Sink) {
	unpinned := us.Pawn &^ pinned
	generatePawnGroup(ops, unpinned, them, free, ^bb(0), captureMask, pushMask, gt, sink)

	pinnedPawns := us.Pawn & pinned
	pinnedPawns.ForEach(func(from sq) {
		axis := attacks.Line(kingSq, from)
		generatePawnGroup(ops, bitboard.SquareBB(from), them, free, axis, captureMask, pushMask, gt, sink)
	})
}

func pawnRawTargets(ops *position.SideOps, pawns, enemies, free bb) (push1, push2, attackL, attackR bb) {
	push1 = ops.Push(pawns) & free
	push2 = ops.Push(push1&ops.DoubleThru) & free
	attackL = ops.Left(pawns) & enemies
	attackR = ops.Right(pawns) & enemies
	return
}

func generatePawnGroup(ops *position.SideOps, pawns bb, them *position.PieceSet, free, axisMask, captureMask, pushMask bb, gt GenType, sink move.Sink) {
	push1, push2, attackL, attackR := pawnRawTargets(ops, pawns, them.All, free)

	push1 &= axisMask & pushMask
	push2 &= axisMask & pushMask
	attackL &= axisMask & captureMask
	attackR &= axisMask & captureMask

	if gt == Captures {
		push2 = 0
		push1 &= ops.PromoRank
	}

	emitPawnPushes(ops, push1, push2, sink)
	emitPawnCaptures(ops, attackL, attackR, sink)
}

func emitPawnPushes(ops *position.SideOps, push1, push2 bb, sink move.Sink) {
	promo := push1 & ops.PromoRank
	plain := push1 &^ ops.PromoRank
	emitPawnSingle(ops.PushDelta, plain, false, sink)
	emitPawnPromotions(ops.PushDelta, promo, false, sink)
	emitPawnDouble(ops.PushDelta, push2, sink)
}

func emitPawnCaptures(ops *position.SideOps, attackL, attackR bb, sink move.Sink) {
	promoL := attackL & ops.PromoRank
	plainL := attackL &^ ops.PromoRank
	promoR := attackR & ops.PromoRank
	plainR := attackR &^ ops.PromoRank

	emitPawnSingle(ops.LeftDelta, plainL, true, sink)
	emitPawnSingle(ops.RightDelta, plainR, true, sink)
	emitPawnPromotions(ops.LeftDelta, promoL, true, sink)
	emitPawnPromotions(ops.RightDelta, promoR, true, sink)
}

func emitPawnSingle(delta int, targets bb, capture bool, sink move.Sink) {
	targets.ForEach(func(to sq) {
		from := sq(int(to) - delta)
		if capture {
			sink.Push(move.NewCapture(from, to))
		} else {
			sink.Push(move.NewQuiet(from, to))
		}
	})
}

func emitPawnDouble(delta int, targets bb, sink move.Sink) {
	targets.ForEach(func(to sq) {
		from := sq(int(to) - 2*delta)
		sink.Push(move.New(from, to, move.DoublePawnPush))
	})
}

func emitPawnPromotions(delta int, targets bb, capture bool, sink move.Sink) {
	targets.ForEach(func(to sq) {
		from := sq(int(to) - delta)
		sink.Push(move.NewPromotion(from, to, move.Queen, capture))
		sink.Push(move.NewPromotion(from, to, move.Rook, capture))
		sink.Push(move.NewPromotion(from, to, move.Bishop, capture))
		sink.Push(move.NewPromotion(from, to, move.Knight, capture))
	})
}

// generateEnPassant handles the en-passant special case: enabled only
// when an ep target exists and either the jumped pawn intersects
// capture_mask or the target square intersects push_mask (so en passant
// can both resolve a check by capture and block a check by occupying
// the push square). Each candidate capturer is further checked against
// its own pin axis and, when the king shares the capture's rank,
// against the rank-discovered-check edge case produced by removing both
// pawns from occupancy at once.
func generateEnPassant(pos *position.Position, ops *position.SideOps, us, them *position.PieceSet, occupied, pinned bb, kingSq sq, captureMask, pushMask bb, sink move.Sink) {
	epTarget := pos.EnPassant()
	if epTarget == 0 {
		return
	}
	targetSq := epTarget.LSB()

	oppOps := position.OpsFor(pos.SideToMove().Other())
	attackers := (oppOps.Left(epTarget) | oppOps.Right(epTarget)) & us.Pawn

	attackers.ForEach(func(fromSq sq) {
		capturedSq := bitboard.NewSquare(targetSq.File(), fromSq.Rank())

		if captureMask&bitboard.SquareBB(capturedSq) == 0 && pushMask&epTarget == 0 {
			return
		}

		if pinned.IsSet(fromSq) {
			axis := attacks.Line(kingSq, fromSq)
			if axis&epTarget == 0 {
				return
			}
		}

		if kingSq.Rank() == fromSq.Rank() {
			afterCapture := occupied &^ bitboard.SquareBB(fromSq) &^ bitboard.SquareBB(capturedSq)
			if attacks.Rook(kingSq, afterCapture)&them.RookQueens()&attacks.RankMask(kingSq) != 0 {
				return
			}
		}

		sink.Push(move.New(fromSq, targetSq, move.EnPassant))
	})
}
