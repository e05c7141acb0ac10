package history

import "github.com/cognisync/go-engine/internal/signal"

// Capacity is the maximum number of snapshots a Store retains.
const Capacity = 5

// #region store

// Store is a bounded FIFO of the most recent snapshots for one session.
// Oldest entries are evicted once Capacity is exceeded. Not safe for
// concurrent use; the owning session serializes access.
type Store struct {
	entries []signal.Snapshot
}

// NewStore returns an empty history store.
func NewStore() *Store {
	return &Store{entries: make([]signal.Snapshot, 0, Capacity)}
}

// Append adds a snapshot, evicting the oldest entry when full.
func (s *Store) Append(snap signal.Snapshot) {
	if len(s.entries) == Capacity {
		copy(s.entries, s.entries[1:])
		s.entries[Capacity-1] = snap
		return
	}
	s.entries = append(s.entries, snap)
}

// Len reports how many snapshots are stored.
func (s *Store) Len() int {
	return len(s.entries)
}

// Window returns a copy of the last min(n, Len) snapshots, oldest first.
func (s *Store) Window(n int) []signal.Snapshot {
	if n > len(s.entries) {
		n = len(s.entries)
	}
	if n <= 0 {
		return nil
	}
	out := make([]signal.Snapshot, n)
	copy(out, s.entries[len(s.entries)-n:])
	return out
}

// Snapshots returns a copy of all stored snapshots, oldest first.
func (s *Store) Snapshots() []signal.Snapshot {
	return s.Window(len(s.entries))
}

// #endregion store
