// Package attacks holds the init-time knight/king/pawn attack tables,
// the per-square file/rank/diagonal/antidiagonal axis masks, the
// between-squares table, and the runtime magic (or PEXT) sliding-attack
// tables for rook and bishop moves.
package attacks

import (
	"github.com/hailam/chesscore/internal/bitboard"
)

type bb = bitboard.Bitboard
type sq = bitboard.Square

var (
	knightAttacks [64]bb
	kingAttacks   [64]bb
	pawnAttacks   [2][64]bb // [color][square]
	pawnPushes    [2][64]bb // [color][square] single-push target

	fileMaskOf [64]bb
	rankMaskOf [64]bb
	diagMaskOf [64]bb // a1-h8 direction
	antiMaskOf [64]bb // a8-h1 direction

	betweenTbl [64][64]bb
)

func init() {
	initKnightAttacks()
	initKingAttacks()
	initPawnAttacks()
	initAxisMasks()
	initBetween()
	initMagics()
}

func initKnightAttacks() {
	for s := bitboard.A1; s <= bitboard.H8; s++ {
		b := bitboard.SquareBB(s)
		knightAttacks[s] = b.NNE() | b.NNW() | b.SSE() | b.SSW() |
			b.ENE() | b.WNW() | b.ESE() | b.WSW()
	}
}

func initKingAttacks() {
	for s := bitboard.A1; s <= bitboard.H8; s++ {
		b := bitboard.SquareBB(s)
		kingAttacks[s] = b.North() | b.South() | b.East() | b.West() |
			b.NorthEast() | b.NorthWest() | b.SouthEast() | b.SouthWest()
	}
}

func initPawnAttacks() {
	for s := bitboard.A1; s <= bitboard.H8; s++ {
		b := bitboard.SquareBB(s)
		pawnAttacks[bitboard.White][s] = b.NorthEast() | b.NorthWest()
		pawnAttacks[bitboard.Black][s] = b.SouthEast() | b.SouthWest()
		pawnPushes[bitboard.White][s] = b.North()
		pawnPushes[bitboard.Black][s] = b.South()
	}
}

func initAxisMasks() {
	for s := bitboard.A1; s <= bitboard.H8; s++ {
		file, rank := s.File(), s.Rank()
		fileMaskOf[s] = bitboard.FileMask[file]
		rankMaskOf[s] = bitboard.RankMask[rank]

		var diag, anti bb
		// Diagonal (a1-h8 direction): file-rank is constant.
		d := file - rank
		for f := 0; f < 8; f++ {
			r := f - d
			if r >= 0 && r < 8 {
				diag |= bitboard.SquareBB(bitboard.NewSquare(f, r))
			}
		}
		// Antidiagonal (a8-h1 direction): file+rank is constant.
		sum := file + rank
		for f := 0; f < 8; f++ {
			r := sum - f
			if r >= 0 && r < 8 {
				anti |= bitboard.SquareBB(bitboard.NewSquare(f, r))
			}
		}
		diagMaskOf[s] = diag
		antiMaskOf[s] = anti
	}
}

func initBetween() {
	for a := bitboard.A1; a <= bitboard.H8; a++ {
		for b := bitboard.A1; b <= bitboard.H8; b++ {
			if a == b {
				continue
			}
			af, ar := a.File(), a.Rank()
			bf, br := b.File(), b.Rank()
			df, dr := sign(bf-af), sign(br-ar)
			if df != 0 && dr != 0 && abs(bf-af) != abs(br-ar) {
				continue // not aligned on rook or bishop axis
			}
			var between bb
			f, r := af+df, ar+dr
			for f != bf || r != br {
				between |= bitboard.SquareBB(bitboard.NewSquare(f, r))
				f += df
				r += dr
			}
			betweenTbl[a][b] = between
		}
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Knight returns the knight attack set from sq.
func Knight(s sq) bb { return knightAttacks[s] }

// King returns the king attack set from sq.
func King(s sq) bb { return kingAttacks[s] }

// Pawn returns the pawn capture-attack set from sq for the given color.
func Pawn(s sq, c bitboard.Color) bb { return pawnAttacks[c][s] }

// PawnPush returns the single-push target square's bitboard from sq for
// the given color (does not check occupancy).
func PawnPush(s sq, c bitboard.Color) bb { return pawnPushes[c][s] }

// FileMask returns the file mask through sq.
func FileMask(s sq) bb { return fileMaskOf[s] }

// RankMask returns the rank mask through sq.
func RankMask(s sq) bb { return rankMaskOf[s] }

// DiagMask returns the a1-h8-direction diagonal mask through sq.
func DiagMask(s sq) bb { return diagMaskOf[s] }

// AntiDiagMask returns the a8-h1-direction antidiagonal mask through sq.
func AntiDiagMask(s sq) bb { return antiMaskOf[s] }

// Between returns the squares strictly between a and b if they share a
// rook or bishop axis, including b (per spec's between_mask definition);
// if they share no axis, it returns just b.
func Between(a, b sq) bb {
	if a == b {
		return 0
	}
	return betweenTbl[a][b] | bitboard.SquareBB(b)
}

// BetweenExclusive returns the squares strictly between a and b,
// excluding both endpoints. Empty if they are not aligned.
func BetweenExclusive(a, b sq) bb {
	return betweenTbl[a][b]
}

// Line returns the full rook- or bishop-axis line through a and b
// (including both squares and every square beyond them to the board
// edge), or 0 if the two squares share no axis.
func Line(a, b sq) bb {
	if a == b {
		return 0
	}
	switch {
	case FileMask(a) == FileMask(b):
		return FileMask(a)
	case RankMask(a) == RankMask(b):
		return RankMask(a)
	case DiagMask(a) == DiagMask(b):
		return DiagMask(a)
	case AntiDiagMask(a) == AntiDiagMask(b):
		return AntiDiagMask(a)
	default:
		return 0
	}
}

// Aligned reports whether a, b and c all lie on a shared rook or bishop
// line (used by pin-axis checks).
func Aligned(a, b, c sq) bool {
	if a == b || b == c || a == c {
		return true
	}
	return (FileMask(a) == FileMask(b) && FileMask(b) == FileMask(c)) ||
		(RankMask(a) == RankMask(b) && RankMask(b) == RankMask(c)) ||
		(DiagMask(a) == DiagMask(b) && DiagMask(b) == DiagMask(c)) ||
		(AntiDiagMask(a) == AntiDiagMask(b) && AntiDiagMask(b) == AntiDiagMask(c))
}
