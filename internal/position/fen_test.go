package position

import "testing"

func TestParseFENStartingPosition(t *testing.T) {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN(start) error: %v", err)
	}
	if p.us.Pawn.PopCount() != 8 || p.them.Pawn.PopCount() != 8 {
		t.Errorf("expected 8 pawns per side, got us=%d them=%d", p.us.Pawn.PopCount(), p.them.Pawn.PopCount())
	}
	if p.us.King.PopCount() != 1 || p.them.King.PopCount() != 1 {
		t.Error("expected exactly one king per side")
	}
	if p.castlingRights.PopCount() != 4 {
		t.Errorf("expected all 4 castling rights, got %d", p.castlingRights.PopCount())
	}
	if p.enPassant != 0 {
		t.Error("expected no en-passant square in starting position")
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			p, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN error: %v", err)
			}
			got := p.ToFEN()
			if got != fen {
				t.Errorf("round trip = %q, want %q", got, fen)
			}
		})
	}
}

func TestParseFENRejectsIllegalPosition(t *testing.T) {
	// Black to move, but White's king on e1 is attacked along the open
	// e-file by the black rook on e5 — White (who just moved) left
	// their own king in check, which is illegal.
	_, err := ParseFEN("4k3/8/8/4r3/8/8/8/4K3 b - - 0 1")
	if err == nil {
		t.Error("expected illegal-position error, got nil")
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",          // only 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", // bad rank
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1", // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
	}
	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			if _, err := ParseFEN(fen); err == nil {
				t.Errorf("ParseFEN(%q) expected error, got nil", fen)
			}
		})
	}
}
