package perft

import (
	"context"
	"time"

	"github.com/hailam/chesscore/internal/cache"
	"github.com/hailam/chesscore/internal/position"
)

// BenchmarkPosition names one of the six standard perft benchmark
// positions and the depth its suite entry is run at.
type BenchmarkPosition struct {
	Name  string
	FEN   string
	Depth int
}

// StandardSuite is the set of six perft benchmark positions and depths
// used across the chess programming community (the same FENs spec's
// edge-case and perft-suite tests are drawn from).
var StandardSuite = []BenchmarkPosition{
	{Name: "startpos", FEN: position.StartFEN, Depth: 6},
	{Name: "kiwipete", FEN: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", Depth: 5},
	{Name: "position3", FEN: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", Depth: 7},
	{Name: "position4", FEN: "r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1", Depth: 5},
	{Name: "position5", FEN: "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", Depth: 5},
	{Name: "position6", FEN: "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", Depth: 5},
}

// BenchmarkResult is one row of a benchmark suite report.
type BenchmarkResult struct {
	Position   BenchmarkPosition
	Nodes      uint64
	Elapsed    time.Duration
	MNps       float64
	CacheStats cache.Snapshot
}

// RunBenchmarkSuite runs every position in StandardSuite at its
// assigned depth under cfg and returns one result row per position, in
// suite order. A malformed FEN in StandardSuite is a programming error,
// not a runtime condition, so it panics rather than threading an error
// through every row.
func RunBenchmarkSuite(ctx context.Context, cfg Config) ([]BenchmarkResult, error) {
	results := make([]BenchmarkResult, 0, len(StandardSuite))
	for _, bp := range StandardSuite {
		pos, err := position.ParseFEN(bp.FEN)
		if err != nil {
			panic("perft: invalid benchmark FEN " + bp.FEN + ": " + err.Error())
		}

		res, err := Perft(ctx, &pos, bp.Depth, cfg)
		if err != nil {
			return nil, err
		}

		var stats cache.Snapshot
		if res.Cache != nil {
			stats = res.Cache.Stats.Snapshot()
		}

		results = append(results, BenchmarkResult{
			Position:   bp,
			Nodes:      res.Nodes,
			Elapsed:    res.Elapsed,
			MNps:       res.MNps,
			CacheStats: stats,
		})
	}
	return results, nil
}
