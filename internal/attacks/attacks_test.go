package attacks

import (
	"testing"

	"github.com/hailam/chesscore/internal/bitboard"
)

func TestKnightAttacksCorners(t *testing.T) {
	tests := []struct {
		s    bitboard.Square
		want int
	}{
		{bitboard.A1, 2},
		{bitboard.H1, 2},
		{bitboard.A8, 2},
		{bitboard.H8, 2},
		{bitboard.D4, 8},
	}
	for _, tc := range tests {
		t.Run(tc.s.String(), func(t *testing.T) {
			if got := Knight(tc.s).PopCount(); got != tc.want {
				t.Errorf("Knight(%s) popcount = %d, want %d", tc.s, got, tc.want)
			}
		})
	}
}

func TestKingAttacksCorners(t *testing.T) {
	tests := []struct {
		s    bitboard.Square
		want int
	}{
		{bitboard.A1, 3},
		{bitboard.H8, 3},
		{bitboard.D4, 8},
	}
	for _, tc := range tests {
		t.Run(tc.s.String(), func(t *testing.T) {
			if got := King(tc.s).PopCount(); got != tc.want {
				t.Errorf("King(%s) popcount = %d, want %d", tc.s, got, tc.want)
			}
		})
	}
}

func TestRookAttacksEmptyBoard(t *testing.T) {
	got := Rook(bitboard.D4, bitboard.Empty)
	want := bitboard.FileMask[bitboard.D4.File()] | bitboard.RankMask[bitboard.D4.Rank()]
	want &^= bitboard.SquareBB(bitboard.D4)
	if got != want {
		t.Errorf("Rook(D4, empty) = %s, want %s", got, want)
	}
}

func TestRookAttacksMatchesHQ(t *testing.T) {
	occs := []bitboard.Bitboard{
		bitboard.Empty,
		bitboard.SquareBB(bitboard.D1) | bitboard.SquareBB(bitboard.D7),
		bitboard.SquareBB(bitboard.A4) | bitboard.SquareBB(bitboard.G4) | bitboard.SquareBB(bitboard.D4),
		bitboard.Full,
	}
	for _, s := range []bitboard.Square{bitboard.A1, bitboard.D4, bitboard.H8, bitboard.E5} {
		for i, occ := range occs {
			got := Rook(s, occ)
			want := rookAttacksHQ(s, occ)
			if got != want {
				t.Errorf("Rook(%s, occ#%d) = %s, want %s (HQ)", s, i, got, want)
			}
		}
	}
}

func TestBishopAttacksMatchesHQ(t *testing.T) {
	occs := []bitboard.Bitboard{
		bitboard.Empty,
		bitboard.SquareBB(bitboard.B2) | bitboard.SquareBB(bitboard.F6),
		bitboard.Full,
	}
	for _, s := range []bitboard.Square{bitboard.A1, bitboard.D4, bitboard.H8, bitboard.C3} {
		for i, occ := range occs {
			got := Bishop(s, occ)
			want := bishopAttacksHQ(s, occ)
			if got != want {
				t.Errorf("Bishop(%s, occ#%d) = %s, want %s (HQ)", s, i, got, want)
			}
		}
	}
}

func TestQueenIsRookOrBishop(t *testing.T) {
	s := bitboard.D4
	occ := bitboard.SquareBB(bitboard.D7) | bitboard.SquareBB(bitboard.A4)
	want := Rook(s, occ) | Bishop(s, occ)
	if got := Queen(s, occ); got != want {
		t.Errorf("Queen(%s) = %s, want %s", s, got, want)
	}
}

func TestBetweenAligned(t *testing.T) {
	got := BetweenExclusive(bitboard.A1, bitboard.D4)
	want := bitboard.SquareBB(bitboard.B2) | bitboard.SquareBB(bitboard.C3)
	if got != want {
		t.Errorf("BetweenExclusive(A1,D4) = %s, want %s", got, want)
	}
}

func TestBetweenUnaligned(t *testing.T) {
	if got := BetweenExclusive(bitboard.A1, bitboard.B3); got != 0 {
		t.Errorf("BetweenExclusive(A1,B3) = %s, want empty", got)
	}
}

func TestAligned(t *testing.T) {
	if !Aligned(bitboard.A1, bitboard.C3, bitboard.H8) {
		t.Error("A1,C3,H8 should be aligned on the a1-h8 diagonal")
	}
	if Aligned(bitboard.A1, bitboard.B3, bitboard.H8) {
		t.Error("A1,B3,H8 should not be aligned")
	}
}

func TestPawnAttacksSideRelative(t *testing.T) {
	if got, want := Pawn(bitboard.E4, bitboard.White), bitboard.SquareBB(bitboard.D5)|bitboard.SquareBB(bitboard.F5); got != want {
		t.Errorf("Pawn(E4, white) = %s, want %s", got, want)
	}
	if got, want := Pawn(bitboard.E4, bitboard.Black), bitboard.SquareBB(bitboard.D3)|bitboard.SquareBB(bitboard.F3); got != want {
		t.Errorf("Pawn(E4, black) = %s, want %s", got, want)
	}
}
