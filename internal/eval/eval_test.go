package eval

import (
	"testing"

	"github.com/hailam/chesscore/internal/position"
)

func TestFuncAdapterCallsUnderlyingFunction(t *testing.T) {
	pos := position.NewPosition()
	var called bool
	f := Func(func(p *position.Position) int {
		called = true
		if p.SideToMove() != pos.SideToMove() {
			t.Errorf("unexpected side to move passed through")
		}
		return 42
	})

	var e Evaluator = f
	if got := e.Evaluate(&pos); got != 42 {
		t.Errorf("Evaluate() = %d, want 42", got)
	}
	if !called {
		t.Error("expected underlying function to be called")
	}
}
