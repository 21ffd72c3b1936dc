package position

import (
	"testing"

	"github.com/hailam/chesscore/internal/bitboard"
	"github.com/hailam/chesscore/internal/move"
)

func assertKeyMatchesScratch(t *testing.T, p *Position, label string) {
	t.Helper()
	if want := p.computeKey(); p.key != want {
		t.Errorf("%s: incremental key %#x != recomputed key %#x", label, p.key, want)
	}
}

func TestMakeMoveQuiet(t *testing.T) {
	p := NewPosition()
	m := move.NewQuiet(bitboard.G1, bitboard.F3)
	np := MakeMove(p, m)

	if np.them.Knight.IsSet(bitboard.F3) == false {
		t.Fatal("expected knight on f3 in the moved-from side's set after swap")
	}
	if np.sideToMove != bitboard.Black {
		t.Error("expected side to move to flip to Black")
	}
	assertKeyMatchesScratch(t, &np, "quiet knight move")
}

func TestMakeMoveDoublePushSetsEnPassant(t *testing.T) {
	p := NewPosition()
	np := MakeMove(p, move.New(bitboard.E2, bitboard.E4, move.DoublePawnPush))
	if np.enPassant != bitboard.SquareBB(bitboard.E3) {
		t.Errorf("expected en-passant target e3, got %s", np.enPassant)
	}
	assertKeyMatchesScratch(t, &np, "double push with no adjacency")
}

func TestMakeMoveDoublePushGainingEPFile(t *testing.T) {
	// Black pawn on d4 stands ready to capture en passant once White
	// pushes e2-e4.
	p, err := ParseFEN("4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	np := MakeMove(p, move.New(bitboard.E2, bitboard.E4, move.DoublePawnPush))
	assertKeyMatchesScratch(t, &np, "double push gaining ep file")
}

func TestMakeMoveEnPassantCapture(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	np := MakeMove(p, move.New(bitboard.D4, bitboard.E3, move.EnPassant))
	if np.them.Pawn.IsSet(bitboard.E4) {
		t.Error("expected captured pawn removed from e4")
	}
	if !np.them.Pawn.IsSet(bitboard.E3) {
		t.Error("expected capturing pawn to land on e3")
	}
	assertKeyMatchesScratch(t, &np, "en-passant capture")
}

func TestMakeMoveCastling(t *testing.T) {
	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	np := MakeMove(p, move.New(bitboard.E1, bitboard.G1, move.ShortCastle))
	if !np.them.King.IsSet(bitboard.G1) || !np.them.Rook.IsSet(bitboard.F1) {
		t.Error("expected king on g1 and rook on f1 after short castle")
	}
	if np.them.King.IsSet(bitboard.E1) || np.them.Rook.IsSet(bitboard.H1) {
		t.Error("expected e1 and h1 vacated after short castle")
	}
	assertKeyMatchesScratch(t, &np, "short castle")
}

func TestMakeMoveCastlingRightsDecay(t *testing.T) {
	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	np := MakeMove(p, move.NewQuiet(bitboard.A1, bitboard.B1))
	if np.them.All&bitboard.SquareBB(bitboard.B1) == 0 {
		t.Fatal("expected rook on b1")
	}
	if np.castlingRights&bitboard.SquareBB(bitboard.A1) != 0 {
		t.Error("expected White queenside right cleared after a1 rook moves")
	}
	if np.castlingRights&bitboard.SquareBB(bitboard.H1) == 0 {
		t.Error("expected White kingside right untouched")
	}
	assertKeyMatchesScratch(t, &np, "castling rights decay from rook move")
}

func TestMakeMovePromotion(t *testing.T) {
	p, err := ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	np := MakeMove(p, move.NewPromotion(bitboard.A7, bitboard.A8, move.Queen, false))
	if !np.them.Queen.IsSet(bitboard.A8) {
		t.Error("expected promoted queen on a8")
	}
	if np.them.Pawn != 0 {
		t.Error("expected no pawns remaining after promotion")
	}
	assertKeyMatchesScratch(t, &np, "promotion")
}

func TestMakeMovePromotionCapture(t *testing.T) {
	p, err := ParseFEN("1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	np := MakeMove(p, move.NewPromotion(bitboard.A7, bitboard.B8, move.Rook, true))
	if !np.them.Rook.IsSet(bitboard.B8) {
		t.Error("expected promoted rook on b8")
	}
	if np.them.Knight != 0 {
		t.Error("expected captured knight removed")
	}
	assertKeyMatchesScratch(t, &np, "promotion-capture")
}

func TestMakeMoveRookCaptureRemovesCastlingRight(t *testing.T) {
	p, err := ParseFEN("r3k2r/8/8/8/8/8/7B/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	np := MakeMove(p, move.NewCapture(bitboard.H2, bitboard.H8))
	if np.them.All&bitboard.SquareBB(bitboard.H8) == 0 {
		t.Fatal("expected bishop to have captured on h8")
	}
	if np.castlingRights&bitboard.SquareBB(bitboard.H8) != 0 {
		t.Error("expected Black kingside right cleared after h8 rook is captured")
	}
	assertKeyMatchesScratch(t, &np, "rook capture clears opponent castling right")
}
