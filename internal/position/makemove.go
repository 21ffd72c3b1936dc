package position

import (
	"github.com/hailam/chesscore/internal/bitboard"
	"github.com/hailam/chesscore/internal/move"
)

// promoPieceType maps a move.PromoPiece to the PieceType placed on the
// board.
func promoPieceType(pp move.PromoPiece) PieceType {
	switch pp {
	case move.Knight:
		return Knight
	case move.Bishop:
		return Bishop
	case move.Rook:
		return Rook
	default:
		return Queen
	}
}

// MakeMove returns a new Position with m applied; p is left unmodified.
// It assumes m was produced by a legal generator call against p — it
// performs no legality checking of its own.
func MakeMove(p Position, m move.Move) Position {
	np := p.Copy()

	from, to, flag := m.From(), m.To(), m.MoveFlag()
	colorUs, colorThem := p.sideToMove, p.sideToMove.Other()
	ops := p.ops()

	key := p.key
	key ^= zobristSideToMove

	movingPt := np.us.KindAt(from)
	np.us.removePiece(movingPt, from)
	key ^= zobristPiece[colorUs][movingPt][from]

	// Captures (including en passant, handled separately since the
	// captured square differs from the target square).
	switch {
	case flag == move.EnPassant:
		capturedSq := bitboard.NewSquare(to.File(), from.Rank())
		np.them.removePiece(Pawn, capturedSq)
		key ^= zobristPiece[colorThem][Pawn][capturedSq]
	case m.IsCapture():
		capturedPt := np.them.KindAt(to)
		np.them.removePiece(capturedPt, to)
		key ^= zobristPiece[colorThem][capturedPt][to]

		oppOps := OpsFor(colorThem)
		if to == oppOps.KingsideRookHome {
			np.castlingRights &^= oppOps.KingsideRightBit
		}
		if to == oppOps.QueensideRookHome {
			np.castlingRights &^= oppOps.QueensideRightBit
		}
	}

	placedPt := movingPt
	if m.IsPromotion() {
		placedPt = promoPieceType(m.Promotion())
	}
	np.us.addPiece(placedPt, to)
	key ^= zobristPiece[colorUs][placedPt][to]

	if m.IsCastle() {
		var rookFrom, rookTo sq
		if flag == move.ShortCastle {
			rookFrom, rookTo = ops.KingsideRookHome, ops.KingsideRookTo
		} else {
			rookFrom, rookTo = ops.QueensideRookHome, ops.QueensideRookTo
		}
		np.us.removePiece(Rook, rookFrom)
		np.us.addPiece(Rook, rookTo)
		key ^= zobristPiece[colorUs][Rook][rookFrom]
		key ^= zobristPiece[colorUs][Rook][rookTo]
	}

	// Castling-rights decay from our own king or rook moving.
	if movingPt == King {
		np.castlingRights &^= ops.KingsideRightBit | ops.QueensideRightBit
	}
	if from == ops.KingsideRookHome {
		np.castlingRights &^= ops.KingsideRightBit
	}
	if from == ops.QueensideRookHome {
		np.castlingRights &^= ops.QueensideRightBit
	}

	changedRights := p.castlingRights ^ np.castlingRights
	changedRights.ForEach(func(s sq) {
		if idx := castlingRightIndex(s); idx >= 0 {
			key ^= zobristCastling[idx]
		}
	})

	if p.enPassant != 0 {
		oldTarget := p.enPassant.LSB()
		if canEnPassantCapture(oldTarget, colorUs, p.us.Pawn) {
			key ^= zobristEnPassant[oldTarget.File()]
		}
	}

	np.enPassant = 0
	if flag == move.DoublePawnPush {
		jumped := bitboard.NewSquare(from.File(), (from.Rank()+to.Rank())/2)
		np.enPassant = bitboard.SquareBB(jumped)
		if canEnPassantCapture(jumped, colorThem, p.them.Pawn) {
			key ^= zobristEnPassant[jumped.File()]
		}
	}

	if movingPt == Pawn || m.IsCapture() {
		np.halfmoveClock = 0
	} else {
		np.halfmoveClock = p.halfmoveClock + 1
	}
	if p.sideToMove == bitboard.Black {
		np.fullmoveClock = p.fullmoveClock + 1
	}

	np.refreshDerived()

	np.us, np.them = np.them, np.us
	np.sideToMove = colorThem
	np.key = key

	return np
}
