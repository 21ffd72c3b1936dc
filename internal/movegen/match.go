package movegen

import (
	"github.com/hailam/chesscore/internal/bitboard"
	"github.com/hailam/chesscore/internal/move"
	"github.com/hailam/chesscore/internal/position"
)

// MatchAlgebraic resolves a bare (from, to, promo) triple — as produced
// by move.ParseAlgebraic, which knows nothing of board context — against
// the legal moves available in pos, recovering the capture/en-passant/
// castle flag the packed encoding needs.
func MatchAlgebraic(pos *position.Position, from, to bitboard.Square, promo move.PromoPiece) (move.Move, bool) {
	list := GenerateAll(pos)
	for i := 0; i < list.Len(); i++ {
		m := list.Get(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() {
			if m.Promotion() == promo {
				return m, true
			}
			continue
		}
		if promo == move.PromoNone {
			return m, true
		}
	}
	return 0, false
}
