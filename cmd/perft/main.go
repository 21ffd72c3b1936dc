// Command perft is the thinnest possible exerciser of the move
// generation core: parse a FEN, run perft to a given depth, print a
// node count. Flag handling mirrors the teacher's chessplay-uci
// command's flat flag.String/flag.Int style.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hailam/chesscore/internal/perft"
	"github.com/hailam/chesscore/internal/position"
)

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN of the position to search")
	depth := flag.Int("depth", 5, "perft depth")
	threads := flag.Int("threads", 0, "worker count for root-move fan-out (0 = GOMAXPROCS)")
	cacheSize := flag.Int("cache", perft.DefaultCacheSizeBytes, "in-memory memo cache size in bytes (0 disables caching)")
	divided := flag.Bool("divided", false, "print a per-root-move node count breakdown")
	memoDir := flag.String("memo", "", "directory for a persistent badger-backed perft memo store (empty disables it)")
	bench := flag.Bool("bench", false, "run the six-position benchmark suite instead of a single perft")
	flag.Parse()

	cfg := perft.Config{Threads: *threads, CacheSizeBytes: *cacheSize}
	ctx := context.Background()

	if *bench {
		runBench(ctx, cfg)
		return
	}

	pos, err := position.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}

	var store *perft.MemoStore
	if *memoDir != "" {
		store, err = perft.OpenMemoStore(*memoDir)
		if err != nil {
			log.Fatalf("could not open memo store at %s: %v", *memoDir, err)
		}
		defer store.Close()

		if nodes, ok, err := store.Get(*fen, *depth); err != nil {
			log.Printf("memo store read failed: %v", err)
		} else if ok {
			fmt.Printf("nodes: %s (from memo store)\n", humanize.Comma(int64(nodes)))
			return
		}
	}

	if *divided {
		entries, err := perft.PerftDivided(ctx, &pos, *depth, cfg)
		if err != nil {
			log.Fatalf("perft: %v", err)
		}
		var total uint64
		for _, e := range entries {
			fmt.Printf("%s: %s\n", e.Move, humanize.Comma(int64(e.Nodes)))
			total += e.Nodes
		}
		fmt.Printf("\nnodes: %s\n", humanize.Comma(int64(total)))
		if store != nil {
			if err := store.Put(*fen, *depth, total); err != nil {
				log.Printf("memo store write failed: %v", err)
			}
		}
		return
	}

	res, err := perft.Perft(ctx, &pos, *depth, cfg)
	if err != nil {
		log.Fatalf("perft: %v", err)
	}
	fmt.Printf("nodes: %s\n", humanize.Comma(int64(res.Nodes)))
	fmt.Printf("time: %s (%.2f Mnodes/s)\n", res.Elapsed.Round(time.Millisecond), res.MNps)
	if res.Cache != nil {
		snap := res.Cache.Stats.Snapshot()
		fmt.Printf("cache: %s hits, %s misses, %s collisions\n",
			humanize.Comma(int64(snap.Hits)), humanize.Comma(int64(snap.Misses)), humanize.Comma(int64(snap.Collisions)))
	}
	if store != nil {
		if err := store.Put(*fen, *depth, res.Nodes); err != nil {
			log.Printf("memo store write failed: %v", err)
		}
	}
}

func runBench(ctx context.Context, cfg perft.Config) {
	results, err := perft.RunBenchmarkSuite(ctx, cfg)
	if err != nil {
		log.Fatalf("benchmark suite: %v", err)
	}
	fmt.Printf("%-10s %-14s %-10s %-8s %-8s\n", "position", "nodes", "time", "Mn/s", "hit %")
	for _, r := range results {
		accesses := r.CacheStats.Hits + r.CacheStats.Misses + r.CacheStats.Collisions
		hitPct := 0.0
		if accesses > 0 {
			hitPct = float64(r.CacheStats.Hits) / float64(accesses) * 100
		}
		fmt.Printf("%-10s %-14s %-10s %-8.2f %-8.1f\n",
			r.Position.Name, humanize.Comma(int64(r.Nodes)), r.Elapsed.Round(time.Millisecond), r.MNps, hitPct)
	}
}
