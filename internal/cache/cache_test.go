package cache

import "testing"

func TestStoreThenFetchRoundTrips(t *testing.T) {
	c := New(1 << 20)
	key := uint64(0x1234567890ABCDEF)
	want := Counts{Nodes: 197281, Captures: 1576, EnPassants: 0, Castles: 0, Promotions: 0}

	c.Store(key, 4, want)

	got, ok := c.Fetch(key, 4)
	if !ok {
		t.Fatal("expected a hit after Store")
	}
	if got != want {
		t.Errorf("Fetch = %+v, want %+v", got, want)
	}
	if c.Stats.Hits.Load() != 1 {
		t.Errorf("Hits = %d, want 1", c.Stats.Hits.Load())
	}
}

func TestFetchMissesOnEmptySlot(t *testing.T) {
	c := New(1 << 10)
	if _, ok := c.Fetch(0xDEADBEEF, 3); ok {
		t.Error("expected a miss on an untouched cache")
	}
	if c.Stats.Misses.Load() != 1 {
		t.Errorf("Misses = %d, want 1", c.Stats.Misses.Load())
	}
}

func TestFetchMissesOnDepthMismatch(t *testing.T) {
	c := New(1 << 10)
	key := uint64(42)
	c.Store(key, 5, Counts{Nodes: 100})

	if _, ok := c.Fetch(key, 4); ok {
		t.Error("expected a miss when depth differs from the stored entry")
	}
}

func TestStoreOverwritesCollidingSlot(t *testing.T) {
	// A one-entry cache forces every key into the same slot.
	c := New(entrySize)
	c.Store(1, 3, Counts{Nodes: 10})
	c.Store(2, 3, Counts{Nodes: 20})

	if _, ok := c.Fetch(1, 3); ok {
		t.Error("expected the first key's entry to have been overwritten")
	}
	got, ok := c.Fetch(2, 3)
	if !ok || got.Nodes != 20 {
		t.Errorf("Fetch(2) = %+v, %v, want {Nodes:20}, true", got, ok)
	}
	if c.Stats.Collisions.Load() == 0 {
		t.Error("expected the failed Fetch(1) probe to be recorded as a collision, not a plain miss")
	}
}

func TestClearResetsEntriesAndStats(t *testing.T) {
	c := New(1 << 10)
	c.Store(7, 2, Counts{Nodes: 400})
	c.Fetch(7, 2)
	c.Fetch(9, 2)

	c.Clear()

	if _, ok := c.Fetch(7, 2); ok {
		t.Error("expected cache to be empty after Clear")
	}
	if c.Stats.Hits.Load() != 0 {
		t.Errorf("Hits after Clear = %d, want 0", c.Stats.Hits.Load())
	}
}

func TestNewRoundsSizeDownToWholeEntries(t *testing.T) {
	c := New(entrySize*4 + 5)
	if c.Size() != 4 {
		t.Errorf("Size() = %d, want 4", c.Size())
	}
}

func TestNewNeverReturnsZeroEntries(t *testing.T) {
	c := New(1)
	if c.Size() != 1 {
		t.Errorf("Size() = %d, want 1", c.Size())
	}
}
