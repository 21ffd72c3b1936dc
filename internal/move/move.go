// Package move implements the 16-bit packed move representation: a
// source square, a target square, and a 4-bit flag nibble identifying
// quiet moves, castling, captures, en passant, and the eight promotion
// variants. Neither the moved nor the captured piece is stored; both
// are recoverable from the position the move is applied to.
package move

import (
	"fmt"

	"github.com/hailam/chesscore/internal/bitboard"
)

// Move is a packed 16-bit move: bits 0-5 source square, bits 6-11
// target square, bits 12-15 flag.
type Move uint16

// Flag identifies the kind of move packed into bits 12-15. Bit 14 set
// (Flag&0x4 != 0) always means capture; bit 15 set (Flag&0x8 != 0)
// always means promotion.
type Flag uint8

const (
	Quiet          Flag = 0
	DoublePawnPush Flag = 1
	ShortCastle    Flag = 2
	LongCastle     Flag = 3
	Capture        Flag = 4
	EnPassant      Flag = 5

	PromoKnight Flag = 8
	PromoBishop Flag = 9
	PromoRook   Flag = 10
	PromoQueen  Flag = 11

	PromoCaptureKnight Flag = 12
	PromoCaptureBishop Flag = 13
	PromoCaptureRook   Flag = 14
	PromoCaptureQueen  Flag = 15
)

const (
	fromMask = 0x003F
	toShift  = 6
	toMask   = 0x0FC0
	flagShift = 12
)

// New packs a move with an explicit flag.
func New(from, to bitboard.Square, flag Flag) Move {
	return Move(uint16(from)&fromMask | (uint16(to)<<toShift)&toMask | uint16(flag)<<flagShift)
}

// NewQuiet packs a plain, non-capturing, non-special move.
func NewQuiet(from, to bitboard.Square) Move { return New(from, to, Quiet) }

// NewCapture packs a plain capture.
func NewCapture(from, to bitboard.Square) Move { return New(from, to, Capture) }

// From returns the source square.
func (m Move) From() bitboard.Square { return bitboard.Square(m & fromMask) }

// To returns the target square.
func (m Move) To() bitboard.Square { return bitboard.Square((m & toMask) >> toShift) }

// MoveFlag returns the packed flag nibble.
func (m Move) MoveFlag() Flag { return Flag(m >> flagShift) }

// IsCapture reports whether bit 14 (the capture bit) is set: true for
// Capture, EnPassant, and every promotion-capture flag.
func (m Move) IsCapture() bool { return m.MoveFlag()&0x4 != 0 }

// IsPromotion reports whether bit 15 (the promotion bit) is set: true
// for every plain-promotion and promotion-capture flag.
func (m Move) IsPromotion() bool { return m.MoveFlag()&0x8 != 0 }

// IsEnPassant reports whether this move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.MoveFlag() == EnPassant }

// IsDoublePawnPush reports whether this move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool { return m.MoveFlag() == DoublePawnPush }

// IsCastle reports whether this move is a short or long castle.
func (m Move) IsCastle() bool {
	f := m.MoveFlag()
	return f == ShortCastle || f == LongCastle
}

// PromoPiece identifies the piece kind a pawn promotes to. The zero
// value, PromoNone, is returned by moves that are not promotions.
type PromoPiece uint8

const (
	PromoNone PromoPiece = iota
	Knight
	Bishop
	Rook
	Queen
)

// Promotion returns the promotion piece kind, or PromoNone if m is not
// a promotion.
func (m Move) Promotion() PromoPiece {
	if !m.IsPromotion() {
		return PromoNone
	}
	switch m.MoveFlag() & 0x3 {
	case 0:
		return Knight
	case 1:
		return Bishop
	case 2:
		return Rook
	default:
		return Queen
	}
}

func (pp PromoPiece) String() string {
	switch pp {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	default:
		return ""
	}
}

// promoFlag returns the plain-promotion or promotion-capture flag for
// pp, depending on capture.
func promoFlag(pp PromoPiece, capture bool) Flag {
	base := Flag(0)
	switch pp {
	case Knight:
		base = 0
	case Bishop:
		base = 1
	case Rook:
		base = 2
	case Queen:
		base = 3
	}
	if capture {
		return PromoCaptureKnight + base
	}
	return PromoKnight + base
}

// NewPromotion packs a promotion (or promotion-capture) move.
func NewPromotion(from, to bitboard.Square, pp PromoPiece, capture bool) Move {
	return New(from, to, promoFlag(pp, capture))
}

// String renders algebraic notation: source, target, and a trailing
// lowercase promotion letter if applicable (e.g. "a7a8q").
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.Promotion().String()
	}
	return s
}

// ParseAlgebraicError reports an algebraic move string whose squares
// fall outside a1..h8.
type ParseAlgebraicError struct {
	text string
}

func (e *ParseAlgebraicError) Error() string {
	return fmt.Sprintf("move: invalid algebraic move %q", e.text)
}

// ParseAlgebraic parses a UCI-style algebraic move ("e2e4", "a7a8q")
// into its from/to squares and promotion piece; it does not know about
// capture or castling flags, since those depend on board context — see
// movegen.MatchAlgebraic for resolving against a legal move list.
func ParseAlgebraic(s string) (from, to bitboard.Square, promo PromoPiece, err error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, 0, PromoNone, &ParseAlgebraicError{text: s}
	}
	from, err = bitboard.ParseSquare(s[0:2])
	if err != nil {
		return 0, 0, PromoNone, &ParseAlgebraicError{text: s}
	}
	to, err = bitboard.ParseSquare(s[2:4])
	if err != nil {
		return 0, 0, PromoNone, &ParseAlgebraicError{text: s}
	}
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return 0, 0, PromoNone, &ParseAlgebraicError{text: s}
		}
	}
	return from, to, promo, nil
}
