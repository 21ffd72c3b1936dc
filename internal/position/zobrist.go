package position

import "github.com/hailam/chesscore/internal/bitboard"

// 781 values: 2 colors x 6 kinds x 64 squares (768) + 4 castling-right
// bits + 8 en-passant files + 1 side-to-move.
var (
	zobristPiece      [2][7][64]uint64 // indexed by Color, PieceType (Pawn..King), Square
	zobristCastling   [4]uint64        // indexed by castlingRightIndex
	zobristEnPassant  [8]uint64        // indexed by file
	zobristSideToMove uint64
)

// prng is a seeded xorshift64* generator, used only at init time to fill
// the Zobrist tables deterministically.
type prng struct{ state uint64 }

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func init() {
	rng := prng{state: 0x98F107A2BEEF1234}
	for c := 0; c < 2; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for s := 0; s < 64; s++ {
				zobristPiece[c][pt][s] = rng.next()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// castlingRightIndex maps one of the four rook-start squares to its
// zobristCastling slot.
func castlingRightIndex(s sq) int {
	switch s {
	case bitboard.A1:
		return 0
	case bitboard.H1:
		return 1
	case bitboard.A8:
		return 2
	case bitboard.H8:
		return 3
	default:
		return -1
	}
}

// canEnPassantCapture reports whether at least one pawn of color side
// stands where it attacks the ep-target square target, i.e. whether
// the ep-file term is hashable under the Polyglot convention. Pins and
// other legality constraints on that capture are not checked.
func canEnPassantCapture(target sq, side bitboard.Color, sidePawns bb) bool {
	ops := OpsFor(side)
	candidates := ops.Left(sidePawns) | ops.Right(sidePawns)
	return candidates&bitboard.SquareBB(target) != 0
}

// computeKey recomputes the Zobrist key from scratch, for use at FEN
// construction time and in tests verifying incremental updates.
func (p *Position) computeKey() uint64 {
	var key uint64
	white, black := p.whiteBlack()

	for pt := Pawn; pt <= King; pt++ {
		white.Kind(pt).ForEach(func(s sq) { key ^= zobristPiece[bitboard.White][pt][s] })
		black.Kind(pt).ForEach(func(s sq) { key ^= zobristPiece[bitboard.Black][pt][s] })
	}

	rights := p.castlingRights
	rights.ForEach(func(s sq) {
		if idx := castlingRightIndex(s); idx >= 0 {
			key ^= zobristCastling[idx]
		}
	})

	if p.enPassant != 0 {
		target := p.enPassant.LSB()
		// The pawns that could capture belong to the side to move,
		// standing one rank behind the target relative to them.
		capturingSide := p.sideToMove
		capturerPawns := p.us.Pawn
		if canEnPassantCapture(target, capturingSide, capturerPawns) {
			key ^= zobristEnPassant[target.File()]
		}
	}

	if p.sideToMove == bitboard.Black {
		key ^= zobristSideToMove
	}

	return key
}
