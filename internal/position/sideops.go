package position

import "github.com/hailam/chesscore/internal/bitboard"

// SideOps resolves the handful of side-dependent constants and shift
// primitives (pawn push direction, start/promotion rank, castle squares)
// once per ply, so the rest of the package — and internal/movegen —
// never branches on color. There are exactly two variants, selected by
// color.
type SideOps struct {
	Push  func(bb) bb // pawn single-push shift
	Left  func(bb) bb // pawn capture shift toward the a-file
	Right func(bb) bb // pawn capture shift toward the h-file

	// Signed square-index deltas matching Push/Left/Right, used to walk
	// backward from a landing square to its origin square.
	PushDelta, LeftDelta, RightDelta int

	StartRank     bb // rank pawns begin on
	DoubleThru    bb // rank a double push's intermediate square sits on
	PromoRank     bb // rank on which a push/capture promotes
	EpCaptureRank bb // rank an en-passant-capturing pawn stands on

	KingHome          sq
	KingsideRookHome  sq
	QueensideRookHome sq

	KingsideKingTo  sq
	KingsideRookTo  sq
	QueensideKingTo sq
	QueensideRookTo sq

	KingsideRightBit  bb
	QueensideRightBit bb

	KingsideBetween  bb // must be empty
	QueensideBetween bb // must be empty

	KingsideSafe  [3]sq // king's path incl. start and destination, must be unattacked
	QueensideSafe [3]sq
}

var whiteOps = SideOps{
	Push:  func(b bb) bb { return b.North() },
	Left:  func(b bb) bb { return b.NorthWest() },
	Right: func(b bb) bb { return b.NorthEast() },

	PushDelta:  8,
	LeftDelta:  7,
	RightDelta: 9,

	StartRank:     bitboard.Rank2,
	DoubleThru:    bitboard.Rank3,
	PromoRank:     bitboard.Rank8,
	EpCaptureRank: bitboard.Rank5,

	KingHome:          bitboard.E1,
	KingsideRookHome:  bitboard.H1,
	QueensideRookHome: bitboard.A1,

	KingsideKingTo:  bitboard.G1,
	KingsideRookTo:  bitboard.F1,
	QueensideKingTo: bitboard.C1,
	QueensideRookTo: bitboard.D1,

	KingsideRightBit:  bitboard.SquareBB(bitboard.H1),
	QueensideRightBit: bitboard.SquareBB(bitboard.A1),

	KingsideBetween:  bitboard.SquareBB(bitboard.F1) | bitboard.SquareBB(bitboard.G1),
	QueensideBetween: bitboard.SquareBB(bitboard.B1) | bitboard.SquareBB(bitboard.C1) | bitboard.SquareBB(bitboard.D1),

	KingsideSafe:  [3]sq{bitboard.E1, bitboard.F1, bitboard.G1},
	QueensideSafe: [3]sq{bitboard.E1, bitboard.D1, bitboard.C1},
}

var blackOps = SideOps{
	Push:  func(b bb) bb { return b.South() },
	Left:  func(b bb) bb { return b.SouthWest() },
	Right: func(b bb) bb { return b.SouthEast() },

	PushDelta:  -8,
	LeftDelta:  -9,
	RightDelta: -7,

	StartRank:     bitboard.Rank7,
	DoubleThru:    bitboard.Rank6,
	PromoRank:     bitboard.Rank1,
	EpCaptureRank: bitboard.Rank4,

	KingHome:          bitboard.E8,
	KingsideRookHome:  bitboard.H8,
	QueensideRookHome: bitboard.A8,

	KingsideKingTo:  bitboard.G8,
	KingsideRookTo:  bitboard.F8,
	QueensideKingTo: bitboard.C8,
	QueensideRookTo: bitboard.D8,

	KingsideRightBit:  bitboard.SquareBB(bitboard.H8),
	QueensideRightBit: bitboard.SquareBB(bitboard.A8),

	KingsideBetween:  bitboard.SquareBB(bitboard.F8) | bitboard.SquareBB(bitboard.G8),
	QueensideBetween: bitboard.SquareBB(bitboard.B8) | bitboard.SquareBB(bitboard.C8) | bitboard.SquareBB(bitboard.D8),

	KingsideSafe:  [3]sq{bitboard.E8, bitboard.F8, bitboard.G8},
	QueensideSafe: [3]sq{bitboard.E8, bitboard.D8, bitboard.C8},
}

// OpsFor returns the side-ops variant for c.
func OpsFor(c bitboard.Color) *SideOps {
	if c == bitboard.White {
		return &whiteOps
	}
	return &blackOps
}
