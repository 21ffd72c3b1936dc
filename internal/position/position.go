package position

import (
	"fmt"

	"github.com/hailam/chesscore/internal/bitboard"
)

// Position is a side-relative chess position. us is always the side to
// move; the roles swap at the end of MakeMove rather than being looked
// up by color throughout.
type Position struct {
	us, them PieceSet

	occupied bb
	free     bb

	// CastlingRights has a bit set on each of a1, h1, a8, h8 whose
	// corresponding rook+king pair still retains castling eligibility.
	castlingRights bb

	// EnPassant has zero or one bit set: the square a capturing pawn
	// would move to.
	enPassant bb

	halfmoveClock int
	fullmoveClock int

	sideToMove bitboard.Color

	key uint64
}

// Us returns the side-to-move's piece set.
func (p *Position) Us() *PieceSet { return &p.us }

// Them returns the opponent's piece set.
func (p *Position) Them() *PieceSet { return &p.them }

// Occupied returns the union of all pieces on the board.
func (p *Position) Occupied() bb { return p.occupied }

// Free returns the complement of Occupied.
func (p *Position) Free() bb { return p.free }

// CastlingRights returns the bitboard of rook-start squares that still
// carry castling eligibility.
func (p *Position) CastlingRights() bb { return p.castlingRights }

// EnPassant returns the en-passant target square bitboard (zero or one
// bit set).
func (p *Position) EnPassant() bb { return p.enPassant }

// HalfmoveClock returns the plies since the last pawn move or capture.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveClock returns the full-move counter.
func (p *Position) FullmoveClock() int { return p.fullmoveClock }

// SideToMove returns which color is to move.
func (p *Position) SideToMove() bitboard.Color { return p.sideToMove }

// WhiteToMove is a convenience boolean form of SideToMove.
func (p *Position) WhiteToMove() bool { return p.sideToMove == bitboard.White }

// Key returns the incrementally maintained Zobrist hash.
func (p *Position) Key() uint64 { return p.key }

// Copy returns a value copy; Position has no pointers or heap-backed
// fields, so this is a plain struct copy.
func (p *Position) Copy() Position { return *p }

// ops returns the side-ops variant for the side to move.
func (p *Position) ops() *SideOps { return OpsFor(p.sideToMove) }

// refreshDerived recomputes occupied/free from us/them. Called after
// bulk-mutating us/them: at FEN construction and at the end of MakeMove.
func (p *Position) refreshDerived() {
	p.occupied = p.us.All | p.them.All
	p.free = ^p.occupied
}

// PieceAt returns the piece type and color occupying s, or (All, White)
// with ok=false if s is empty.
func (p *Position) PieceAt(s sq) (pt PieceType, c bitboard.Color, ok bool) {
	b := bitboard.SquareBB(s)
	switch {
	case p.us.All&b != 0:
		return p.us.KindAt(s), p.sideToMove, true
	case p.them.All&b != 0:
		return p.them.KindAt(s), p.sideToMove.Other(), true
	default:
		return All, bitboard.White, false
	}
}

// whiteBlack returns (white, black) piece sets regardless of who is to
// move, for color-keyed consumers such as FEN rendering.
func (p *Position) whiteBlack() (white, black *PieceSet) {
	if p.sideToMove == bitboard.White {
		return &p.us, &p.them
	}
	return &p.them, &p.us
}

// String renders an ASCII board, rank 8 first, uppercase for white.
func (p *Position) String() string {
	white, black := p.whiteBlack()
	s := ""
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			sqr := bitboard.NewSquare(file, rank)
			ch := byte('.')
			switch {
			case white.Pawn.IsSet(sqr):
				ch = 'P'
			case white.Knight.IsSet(sqr):
				ch = 'N'
			case white.Bishop.IsSet(sqr):
				ch = 'B'
			case white.Rook.IsSet(sqr):
				ch = 'R'
			case white.Queen.IsSet(sqr):
				ch = 'Q'
			case white.King.IsSet(sqr):
				ch = 'K'
			case black.Pawn.IsSet(sqr):
				ch = 'p'
			case black.Knight.IsSet(sqr):
				ch = 'n'
			case black.Bishop.IsSet(sqr):
				ch = 'b'
			case black.Rook.IsSet(sqr):
				ch = 'r'
			case black.Queen.IsSet(sqr):
				ch = 'q'
			case black.King.IsSet(sqr):
				ch = 'k'
			}
			s += fmt.Sprintf("%c ", ch)
		}
		s += "\n"
	}
	return s + "  a b c d e f g h\n"
}
