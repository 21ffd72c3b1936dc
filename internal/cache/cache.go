// Package cache implements the lock-free shared transposition cache the
// perft driver memoizes subtree node counts in. Each slot is four
// independent atomic words rather than a mutex-guarded struct, so
// concurrent perft workers can probe and store without ever blocking
// each other; a torn read (one worker storing while another loads) is
// made self-detecting by XOR-encoding the key with every data word, the
// same trick the teacher's engine.TranspositionTable gets from a single
// mutex-free array read but without the luxury of a single atomic word
// to hold an entire entry.
package cache

import "sync/atomic"

// entrySize is the size in bytes of one slot: four uint64 words.
const entrySize = 32

// entry is one cache slot. key stores the real key XORed with the three
// data words; recovering the real key requires XORing the data words
// back in, which only produces the expected value when all four loads
// observed a single, non-torn write.
type entry struct {
	key    atomic.Uint64
	wordq1 atomic.Uint64 // depth (low 8 bits) | node count (upper 56 bits)
	wordq2 atomic.Uint64 // captures (upper 32) | en passants (lower 32)
	wordq3 atomic.Uint64 // castles (upper 32) | promotions (lower 32)
}

func (e *entry) load() (key, w1, w2, w3 uint64) {
	return e.key.Load(), e.wordq1.Load(), e.wordq2.Load(), e.wordq3.Load()
}

func (e *entry) store(key, w1, w2, w3 uint64) {
	e.key.Store(key ^ w1 ^ w2 ^ w3)
	e.wordq1.Store(w1)
	e.wordq2.Store(w2)
	e.wordq3.Store(w3)
}

func encode(depth uint8, count Counts) (w1, w2, w3 uint64) {
	w1 = uint64(depth) | count.Nodes<<8
	w2 = uint64(count.Captures)<<32 | uint64(count.EnPassants)
	w3 = uint64(count.Castles)<<32 | uint64(count.Promotions)
	return
}

func decode(w1, w2, w3 uint64) (depth uint8, count Counts) {
	depth = uint8(w1)
	count = Counts{
		Nodes:      w1 >> 8,
		Captures:   uint32(w2 >> 32),
		EnPassants: uint32(w2),
		Castles:    uint32(w3 >> 32),
		Promotions: uint32(w3),
	}
	return
}

// Counts is the stored value: a perft node count plus the capture/en
// passant/castle/promotion breakdown that perft reports in its
// Result.Detailed.
type Counts struct {
	Nodes      uint64
	Captures   uint32
	EnPassants uint32
	Castles    uint32
	Promotions uint32
}

// Stats are atomic hit/miss/collision counters, sampled by the perft
// benchmark suite to report cache effectiveness per suite position.
type Stats struct {
	Hits       atomic.Uint64
	Misses     atomic.Uint64
	Collisions atomic.Uint64
	HitNodes   atomic.Uint64
}

// Accesses returns the total number of Fetch calls observed.
func (s *Stats) Accesses() uint64 {
	return s.Hits.Load() + s.Misses.Load() + s.Collisions.Load()
}

// Snapshot is a point-in-time copy of Stats, safe to pass by value.
type Snapshot struct {
	Hits, Misses, Collisions, HitNodes uint64
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Hits:       s.Hits.Load(),
		Misses:     s.Misses.Load(),
		Collisions: s.Collisions.Load(),
		HitNodes:   s.HitNodes.Load(),
	}
}

// Cache is a fixed-size, lock-free perft memoization table shared across
// goroutines. The zero value is not usable; construct with New.
type Cache struct {
	entries []entry
	size    uint64
	Stats   Stats
}

// New allocates a cache sized to fit within sizeBytes, rounded down to a
// whole number of entries (minimum one).
func New(sizeBytes int) *Cache {
	n := sizeBytes / entrySize
	if n < 1 {
		n = 1
	}
	return &Cache{entries: make([]entry, n), size: uint64(n)}
}

// Fetch returns the memoized count for key at exactly depth, if present.
func (c *Cache) Fetch(key uint64, depth uint8) (Counts, bool) {
	idx := key % c.size
	e := &c.entries[idx]
	storedKey, w1, w2, w3 := e.load()

	if storedKey^w1^w2^w3 != key {
		if storedKey != 0 {
			c.Stats.Collisions.Add(1)
		} else {
			c.Stats.Misses.Add(1)
		}
		return Counts{}, false
	}

	entryDepth, count := decode(w1, w2, w3)
	if entryDepth != depth {
		c.Stats.Misses.Add(1)
		return Counts{}, false
	}

	c.Stats.Hits.Add(1)
	c.Stats.HitNodes.Add(count.Nodes)
	return count, true
}

// Store memoizes count for key at depth, unconditionally overwriting
// whatever previously occupied the slot.
func (c *Cache) Store(key uint64, depth uint8, count Counts) {
	idx := key % c.size
	w1, w2, w3 := encode(depth, count)
	c.entries[idx].store(key, w1, w2, w3)
}

// Clear resets every slot and every statistic counter to zero.
func (c *Cache) Clear() {
	for i := range c.entries {
		c.entries[i] = entry{}
	}
	c.Stats = Stats{}
}

// Size returns the number of entries the cache holds.
func (c *Cache) Size() uint64 { return c.size }
