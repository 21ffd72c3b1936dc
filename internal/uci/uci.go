// Package uci describes the boundary between the move generation core
// and a UCI front-end, without implementing protocol dispatch: parsing
// "position"/"go"/"stop" commands, time management, and the search loop
// belong to a consumer of this core, the way the teacher's own uci
// package sits atop its engine package rather than inside it.
package uci

import (
	"github.com/hailam/chesscore/internal/bitboard"
	"github.com/hailam/chesscore/internal/move"
	"github.com/hailam/chesscore/internal/movegen"
	"github.com/hailam/chesscore/internal/position"
)

// FrontEnd is the minimal surface a UCI command loop needs from this
// core: parse a position from algebraic moves, render it back to FEN,
// and resolve legal moves by name.
type FrontEnd interface {
	SetPosition(fen string, moves []string) error
	FEN() string
	LegalMove(from, to bitboard.Square, promo move.PromoPiece) (move.Move, bool)
}

// Position adapts a position.Position to FrontEnd. It carries no search
// or evaluation state; a UCI command loop built on top supplies those.
type Position struct {
	pos position.Position
}

// New returns a Position set to the standard starting position.
func New() *Position {
	return &Position{pos: position.NewPosition()}
}

// SetPosition parses fen (or the starting position if fen is empty) and
// replays moves, an algebraic move per entry, as UCI's "position"
// command does.
func (p *Position) SetPosition(fen string, moves []string) error {
	var pos position.Position
	var err error
	if fen == "" {
		pos = position.NewPosition()
	} else {
		pos, err = position.ParseFEN(fen)
		if err != nil {
			return err
		}
	}

	for _, alg := range moves {
		from, to, promo, err := move.ParseAlgebraic(alg)
		if err != nil {
			return err
		}
		m, ok := movegen.MatchAlgebraic(&pos, from, to, promo)
		if !ok {
			return &InvalidMoveError{Move: alg}
		}
		pos = position.MakeMove(pos, m)
	}

	p.pos = pos
	return nil
}

// FEN renders the current position.
func (p *Position) FEN() string { return p.pos.ToFEN() }

// LegalMove resolves a bare move against the current position's legal
// move list.
func (p *Position) LegalMove(from, to bitboard.Square, promo move.PromoPiece) (move.Move, bool) {
	return movegen.MatchAlgebraic(&p.pos, from, to, promo)
}

// InvalidMoveError reports a UCI-supplied move absent from the current
// legal move list.
type InvalidMoveError struct {
	Move string
}

func (e *InvalidMoveError) Error() string {
	return "uci: move not legal in current position: " + e.Move
}
