// Package perft counts the leaf nodes of the legal move tree below a
// position to a fixed depth — the standard correctness and performance
// benchmark for a chess move generator. The top ply fans out across a
// bounded worker pool; everything below it recurses sequentially against
// a cache shared by every worker, mirroring the original perft driver's
// single-thread-per-root-move model but replacing its mpsc-channel
// fan-out with an errgroup.
package perft

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/chesscore/internal/cache"
	"github.com/hailam/chesscore/internal/move"
	"github.com/hailam/chesscore/internal/movegen"
	"github.com/hailam/chesscore/internal/position"
)

// Config controls a Perft run. The zero value means: runtime.GOMAXPROCS
// workers and no cache.
type Config struct {
	// Threads bounds the number of root moves explored concurrently at
	// the top ply. Threads <= 0 uses runtime.GOMAXPROCS(0).
	Threads int

	// CacheSizeBytes sizes the shared memo cache. Zero disables
	// caching entirely.
	CacheSizeBytes int
}

// DefaultCacheSizeBytes is a reasonable default for the -cache flag: one
// gigabyte, about 33 million 32-byte entries.
const DefaultCacheSizeBytes = 1 << 30

func toCounts(dc move.DetailedCounter) cache.Counts {
	return cache.Counts{
		Nodes:      dc.Nodes,
		Captures:   dc.Captures,
		EnPassants: dc.EnPassants,
		Castles:    dc.Castles,
		Promotions: dc.Promotions,
	}
}

func addCounts(a, b cache.Counts) cache.Counts {
	return cache.Counts{
		Nodes:      a.Nodes + b.Nodes,
		Captures:   a.Captures + b.Captures,
		EnPassants: a.EnPassants + b.EnPassants,
		Castles:    a.Castles + b.Castles,
		Promotions: a.Promotions + b.Promotions,
	}
}

// leafCounts generates moves for pos matching whichever regime its own
// check state calls for and tallies them directly, without ever
// materializing a move.List.
func leafCounts(pos *position.Position) cache.Counts {
	var dc move.DetailedCounter
	checkers := pos.Checkers()
	gt := movegen.NonEvasions
	if checkers != 0 {
		gt = movegen.Evasions
	}
	movegen.Generate(gt, pos, checkers, &dc)
	return toCounts(dc)
}

func countInner(ctx context.Context, pos *position.Position, depth uint8, c *cache.Cache) (cache.Counts, error) {
	if err := ctx.Err(); err != nil {
		return cache.Counts{}, err
	}

	if c != nil {
		if count, ok := c.Fetch(pos.Key(), depth); ok {
			return count, nil
		}
	}

	if depth == 1 {
		count := leafCounts(pos)
		if c != nil {
			c.Store(pos.Key(), depth, count)
		}
		return count, nil
	}

	list := movegen.GenerateAll(pos)
	var total cache.Counts
	for i := 0; i < list.Len(); i++ {
		child := position.MakeMove(*pos, list.Get(i))
		sub, err := countInner(ctx, &child, depth-1, c)
		if err != nil {
			return cache.Counts{}, err
		}
		total = addCounts(total, sub)
	}

	if c != nil {
		c.Store(pos.Key(), depth, total)
	}
	return total, nil
}

// Result is the outcome of a Perft run.
type Result struct {
	Nodes    uint64
	Elapsed  time.Duration
	MNps     float64 // million nodes per second
	Cache    *cache.Cache
	Detailed cache.Counts
}

// Perft counts the leaf nodes reachable from pos in exactly depth plies.
// Root-move fan-out runs across cfg.Threads goroutines (default: GOMAXPROCS)
// when depth warrants it; every goroutine shares one cache instance when
// cfg.CacheSizeBytes > 0.
func Perft(ctx context.Context, pos *position.Position, depth int, cfg Config) (Result, error) {
	start := time.Now()

	var c *cache.Cache
	if cfg.CacheSizeBytes > 0 {
		c = cache.New(cfg.CacheSizeBytes)
	}

	var total cache.Counts
	switch {
	case depth <= 0:
		total = cache.Counts{Nodes: 1}
	case depth == 1:
		total = leafCounts(pos)
	default:
		threads := cfg.Threads
		if threads <= 0 {
			threads = runtime.GOMAXPROCS(0)
		}

		list := movegen.GenerateAll(pos)
		n := list.Len()
		results := make([]cache.Counts, n)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(threads)
		for i := 0; i < n; i++ {
			i := i
			m := list.Get(i)
			g.Go(func() error {
				child := position.MakeMove(*pos, m)
				sub, err := countInner(gctx, &child, uint8(depth-1), c)
				if err != nil {
					return err
				}
				results[i] = sub
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Result{}, err
		}
		for _, r := range results {
			total = addCounts(total, r)
		}
	}

	elapsed := time.Since(start)
	seconds := elapsed.Seconds()
	var mnps float64
	if seconds > 0 {
		mnps = float64(total.Nodes) / (seconds * 1_000_000)
	}

	return Result{Nodes: total.Nodes, Elapsed: elapsed, MNps: mnps, Cache: c, Detailed: total}, nil
}

// DividedEntry is one line of a divided-perft report: a root move and the
// node count of the subtree below it.
type DividedEntry struct {
	Move  move.Move
	Nodes uint64
}

// PerftDivided reports, for each legal move at the root, the node count
// of the subtree depth-1 plies below it — the standard way to bisect a
// perft mismatch against a known-good engine.
func PerftDivided(ctx context.Context, pos *position.Position, depth int, cfg Config) ([]DividedEntry, error) {
	var c *cache.Cache
	if cfg.CacheSizeBytes > 0 {
		c = cache.New(cfg.CacheSizeBytes)
	}

	list := movegen.GenerateAll(pos)
	entries := make([]DividedEntry, list.Len())

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i := 0; i < list.Len(); i++ {
		i := i
		m := list.Get(i)
		g.Go(func() error {
			var nodes uint64
			if depth <= 1 {
				nodes = 1
			} else {
				child := position.MakeMove(*pos, m)
				sub, err := countInner(gctx, &child, uint8(depth-1), c)
				if err != nil {
					return err
				}
				nodes = sub.Nodes
			}
			entries[i] = DividedEntry{Move: m, Nodes: nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
