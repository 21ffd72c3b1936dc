// Package position implements the side-relative chess position: piece
// sets, FEN parsing/rendering, position analysis (checkers, pins, attack
// squares), incremental Zobrist keying, and make-move.
package position

import "github.com/hailam/chesscore/internal/bitboard"

type bb = bitboard.Bitboard
type sq = bitboard.Square

// PieceType enumerates the seven piece kinds, with All standing for the
// union of the other six on one side.
type PieceType uint8

const (
	All PieceType = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

func (pt PieceType) String() string {
	switch pt {
	case All:
		return "all"
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "?"
	}
}

// PieceSet holds the seven bitboards of one side: All is kept equal to
// the union of the other six (the invariant is maintained by every
// mutator in this package, never recomputed lazily on the hot path).
type PieceSet struct {
	All    bb
	Pawn   bb
	Rook   bb
	Knight bb
	Bishop bb
	Queen  bb
	King   bb
}

// Kind returns the bitboard for a single piece type.
func (ps *PieceSet) Kind(pt PieceType) bb {
	switch pt {
	case Pawn:
		return ps.Pawn
	case Rook:
		return ps.Rook
	case Knight:
		return ps.Knight
	case Bishop:
		return ps.Bishop
	case Queen:
		return ps.Queen
	case King:
		return ps.King
	default:
		return ps.All
	}
}

// setKind overwrites the bitboard for a single piece type.
func (ps *PieceSet) setKind(pt PieceType, b bb) {
	switch pt {
	case Pawn:
		ps.Pawn = b
	case Rook:
		ps.Rook = b
	case Knight:
		ps.Knight = b
	case Bishop:
		ps.Bishop = b
	case Queen:
		ps.Queen = b
	case King:
		ps.King = b
	}
}

// addPiece sets s in both the kind bitboard and All.
func (ps *PieceSet) addPiece(pt PieceType, s sq) {
	ps.setKind(pt, ps.Kind(pt).Set(s))
	ps.All = ps.All.Set(s)
}

// removePiece clears s from both the kind bitboard and All.
func (ps *PieceSet) removePiece(pt PieceType, s sq) {
	ps.setKind(pt, ps.Kind(pt).Clear(s))
	ps.All = ps.All.Clear(s)
}

// KindAt returns the piece type occupying s in this set, or All if s is
// empty in this set (callers check membership in All first).
func (ps *PieceSet) KindAt(s sq) PieceType {
	b := bitboard.SquareBB(s)
	switch {
	case ps.Pawn&b != 0:
		return Pawn
	case ps.Knight&b != 0:
		return Knight
	case ps.Bishop&b != 0:
		return Bishop
	case ps.Rook&b != 0:
		return Rook
	case ps.Queen&b != 0:
		return Queen
	case ps.King&b != 0:
		return King
	default:
		return All
	}
}

// RookQueens returns the rook|queen sliders, used for straight-line
// attack computation.
func (ps *PieceSet) RookQueens() bb { return ps.Rook | ps.Queen }

// BishopQueens returns the bishop|queen sliders, used for diagonal
// attack computation.
func (ps *PieceSet) BishopQueens() bb { return ps.Bishop | ps.Queen }

// KingSquare returns the single square of this side's king.
func (ps *PieceSet) KingSquare() sq { return ps.King.LSB() }
