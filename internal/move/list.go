package move

// Sink receives moves from the generator. List, Counter and
// DetailedCounter are the implementations: a dense materialized list for
// normal use, a bare counter for perft bulk counting where the moves
// themselves are never inspected, and a counter that also tallies the
// move-kind breakdown.
type Sink interface {
	Push(Move)
}

// maxMoves bounds the legal moves reachable from any single chess
// position; published analysis puts the true maximum at 218.
const maxMoves = 256

// List is a fixed-capacity, stack-friendly move sink.
type List struct {
	moves [maxMoves]Move
	n     int
}

// Push appends m. Push is a no-op past maxMoves, which legal chess
// positions never reach.
func (l *List) Push(m Move) {
	if l.n < maxMoves {
		l.moves[l.n] = m
		l.n++
	}
}

// Len returns the number of moves pushed so far.
func (l *List) Len() int { return l.n }

// Get returns the i'th move.
func (l *List) Get(i int) Move { return l.moves[i] }

// Slice returns the pushed moves as a slice backed by l's array.
func (l *List) Slice() []Move { return l.moves[:l.n] }

// Contains reports whether m was pushed.
func (l *List) Contains(m Move) bool {
	for i := 0; i < l.n; i++ {
		if l.moves[i] == m {
			return true
		}
	}
	return false
}

// Counter is a Sink that only counts pushes, used for perft bulk
// counting at the final ply where the moves themselves are discarded.
type Counter struct{ N int64 }

func (c *Counter) Push(Move) { c.N++ }

// DetailedCounter is a Sink that tallies a node count alongside the
// capture/en-passant/castle/promotion breakdown that perft reports in
// its Result.Detailed, without materializing the moves themselves.
type DetailedCounter struct {
	Nodes      uint64
	Captures   uint32
	EnPassants uint32
	Castles    uint32
	Promotions uint32
}

func (c *DetailedCounter) Push(m Move) {
	c.Nodes++
	if m.IsEnPassant() {
		c.EnPassants++
	} else if m.IsCapture() {
		c.Captures++
	}
	if m.IsCastle() {
		c.Castles++
	}
	if m.IsPromotion() {
		c.Promotions++
	}
}

// Add accumulates o's counts into c.
func (c *DetailedCounter) Add(o DetailedCounter) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassants += o.EnPassants
	c.Castles += o.Castles
	c.Promotions += o.Promotions
}
