package tactic

// RotationEvery is how many consecutive hits of the same key are served the
// same variant before rotating to the next one.
const RotationEvery = 4

// #region tracker

// Tracker counts consecutive hits per catalog key and derives the variant
// index to serve. Switching keys resets the previous key's counter, so a
// state that goes away and comes back starts its escalation over. Misses
// still advance the counter; the key was the live state either way.
type Tracker struct {
	counts  map[string]int
	lastKey string
}

// NewTracker returns an empty rotation tracker.
func NewTracker() *Tracker {
	return &Tracker{counts: make(map[string]int)}
}

// Next records a hit for key and returns the variant index to serve from an
// entry with variantCount variants. The hit is counted before the index is
// derived, and counted even when variantCount is zero (a catalog miss).
func (t *Tracker) Next(key string, variantCount int) int {
	if t.lastKey != key {
		if t.lastKey != "" {
			delete(t.counts, t.lastKey)
		}
		t.lastKey = key
	}

	hits := t.counts[key]
	t.counts[key] = hits + 1

	if variantCount <= 0 {
		return 0
	}
	return (hits / RotationEvery) % variantCount
}

// #endregion tracker
