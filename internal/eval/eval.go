// Package eval defines the evaluator interface the move generation core
// exposes a hook for. No evaluation function lives here: search,
// material weights, and positional tables are out of scope for this
// module, per the teacher's engine package carrying that concern
// instead.
package eval

import "github.com/hailam/chesscore/internal/position"

// Evaluator scores a position in centipawns from the side-to-move's
// perspective. Positive is better for the side to move.
type Evaluator interface {
	Evaluate(pos *position.Position) int
}

// Func adapts a plain function to the Evaluator interface.
type Func func(pos *position.Position) int

func (f Func) Evaluate(pos *position.Position) int { return f(pos) }
