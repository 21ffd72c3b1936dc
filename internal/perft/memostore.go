package perft

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
)

// MemoStore is an optional, disk-backed perft memo keyed on (FEN, depth)
// rather than Zobrist key, so results survive across process runs the
// same way the in-memory cache.Cache survives across recursive calls
// within one — the two are independent layers, not a replacement for
// each other, mirroring the teacher's badger-backed Storage wrapper
// repurposed here for a single integer value per key instead of JSON
// documents.
type MemoStore struct {
	db *badger.DB
}

// OpenMemoStore opens (creating if absent) a badger database rooted at
// dir for persisting perft node counts across runs.
func OpenMemoStore(dir string) (*MemoStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &MemoStore{db: db}, nil
}

// Close closes the underlying database.
func (m *MemoStore) Close() error { return m.db.Close() }

func memoKey(fen string, depth int) []byte {
	sum := xxhash.Sum64String(fmt.Sprintf("%s|%d", fen, depth))
	return []byte(fmt.Sprintf("perft:%016x", sum))
}

// Get returns the memoized node count for (fen, depth), if present.
func (m *MemoStore) Get(fen string, depth int) (uint64, bool, error) {
	var nodes uint64
	var found bool

	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(memoKey(fen, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("perft: corrupt memo entry (%d bytes)", len(val))
			}
			nodes = binary.BigEndian.Uint64(val)
			return nil
		})
	})
	return nodes, found, err
}

// Put stores the node count for (fen, depth).
func (m *MemoStore) Put(fen string, depth int, nodes uint64) error {
	var val [8]byte
	binary.BigEndian.PutUint64(val[:], nodes)
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(memoKey(fen, depth), val[:])
	})
}
