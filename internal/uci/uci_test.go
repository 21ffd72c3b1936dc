package uci

import (
	"testing"

	"github.com/hailam/chesscore/internal/bitboard"
	"github.com/hailam/chesscore/internal/move"
	"github.com/hailam/chesscore/internal/position"
)

func sq(t *testing.T, s string) bitboard.Square {
	t.Helper()
	v, err := bitboard.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return v
}

func TestSetPositionDefaultsToStartpos(t *testing.T) {
	p := New()
	if err := p.SetPosition("", nil); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if p.FEN() != position.StartFEN {
		t.Errorf("FEN() = %q, want %q", p.FEN(), position.StartFEN)
	}
}

func TestSetPositionReplaysMoves(t *testing.T) {
	p := New()
	if err := p.SetPosition("", []string{"e2e4", "e7e5", "g1f3"}); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if p.FEN() == position.StartFEN {
		t.Error("expected position to change after replaying moves")
	}
}

func TestSetPositionRejectsIllegalMove(t *testing.T) {
	p := New()
	err := p.SetPosition("", []string{"e2e5"})
	if err == nil {
		t.Fatal("expected an error for an illegal move")
	}
	if _, ok := err.(*InvalidMoveError); !ok {
		t.Errorf("expected *InvalidMoveError, got %T", err)
	}
}

func TestLegalMoveResolvesFromCurrentPosition(t *testing.T) {
	p := New()
	m, ok := p.LegalMove(sq(t, "e2"), sq(t, "e4"), move.PromoNone)
	if !ok {
		t.Fatal("expected e2e4 to be legal from the starting position")
	}
	if !m.IsDoublePawnPush() {
		t.Error("expected e2e4 to resolve to a double pawn push")
	}
}

func TestSetPositionWithExplicitFEN(t *testing.T) {
	p := New()
	fen := "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"
	if err := p.SetPosition(fen, nil); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if p.FEN() != fen {
		t.Errorf("FEN() = %q, want %q", p.FEN(), fen)
	}
}
