package perft

import (
	"context"
	"testing"

	"github.com/hailam/chesscore/internal/position"
)

func mustParse(t *testing.T, fen string) position.Position {
	t.Helper()
	p, err := position.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func TestPerftMatchesStartingPositionCounts(t *testing.T) {
	p := position.NewPosition()
	cases := []struct {
		depth    int
		expected uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, tc := range cases {
		for _, cfg := range []Config{{}, {Threads: 1, CacheSizeBytes: DefaultCacheSizeBytes}, {Threads: 4, CacheSizeBytes: DefaultCacheSizeBytes}} {
			res, err := Perft(context.Background(), &p, tc.depth, cfg)
			if err != nil {
				t.Fatalf("Perft(depth=%d, cfg=%+v): %v", tc.depth, cfg, err)
			}
			if res.Nodes != tc.expected {
				t.Errorf("Perft(depth=%d, cfg=%+v) = %d, want %d", tc.depth, cfg, res.Nodes, tc.expected)
			}
		}
	}
}

func TestPerftKiwipeteWithCache(t *testing.T) {
	p := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	res, err := Perft(context.Background(), &p, 3, Config{Threads: 4, CacheSizeBytes: DefaultCacheSizeBytes})
	if err != nil {
		t.Fatalf("Perft: %v", err)
	}
	if res.Nodes != 97862 {
		t.Errorf("Perft(depth=3) = %d, want 97862", res.Nodes)
	}
}

func TestPerftDetailedBreakdownStartingPositionDepthFour(t *testing.T) {
	p := position.NewPosition()
	res, err := Perft(context.Background(), &p, 4, Config{})
	if err != nil {
		t.Fatalf("Perft: %v", err)
	}
	// Published depth-4 breakdown for the starting position.
	if res.Detailed.Captures != 1576 {
		t.Errorf("Captures = %d, want 1576", res.Detailed.Captures)
	}
	if res.Detailed.EnPassants != 0 {
		t.Errorf("EnPassants = %d, want 0", res.Detailed.EnPassants)
	}
	if res.Detailed.Castles != 0 {
		t.Errorf("Castles = %d, want 0", res.Detailed.Castles)
	}
	if res.Detailed.Promotions != 0 {
		t.Errorf("Promotions = %d, want 0", res.Detailed.Promotions)
	}
}

func TestPerftDividedSumsToTotal(t *testing.T) {
	p := position.NewPosition()
	entries, err := PerftDivided(context.Background(), &p, 3, Config{})
	if err != nil {
		t.Fatalf("PerftDivided: %v", err)
	}
	if len(entries) != 20 {
		t.Fatalf("len(entries) = %d, want 20 root moves", len(entries))
	}
	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	if sum != 8902 {
		t.Errorf("sum of divided counts = %d, want 8902", sum)
	}
}

func TestPerftRespectsCancelledContext(t *testing.T) {
	p := position.NewPosition()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Perft(ctx, &p, 4, Config{Threads: 2})
	if err == nil {
		t.Error("expected Perft to return an error for an already-cancelled context")
	}
}

func TestRunBenchmarkSuiteCoversAllSixPositions(t *testing.T) {
	// Depths are trimmed well below the published suite so the test
	// stays fast; only the row count and the starting position's
	// depth-2 node count are checked.
	cfg := Config{Threads: 2, CacheSizeBytes: 1 << 20}
	trimmed := make([]BenchmarkPosition, len(StandardSuite))
	copy(trimmed, StandardSuite)
	for i := range trimmed {
		trimmed[i].Depth = 2
	}
	orig := StandardSuite
	StandardSuite = trimmed
	defer func() { StandardSuite = orig }()

	results, err := RunBenchmarkSuite(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RunBenchmarkSuite: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("len(results) = %d, want 6", len(results))
	}
	if results[0].Nodes != 400 {
		t.Errorf("startpos depth-2 nodes = %d, want 400", results[0].Nodes)
	}
}
