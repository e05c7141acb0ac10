package history

import (
	"testing"

	"github.com/cognisync/go-engine/internal/signal"
)

func snapN(n float32) signal.Snapshot {
	return signal.Snapshot{Emotion: signal.EmotionNeutral, Engagement: n}
}

// #region store-tests

func TestStore_EvictsOldestAtCapacity(t *testing.T) {
	s := NewStore()
	for i := 1; i <= 7; i++ {
		s.Append(snapN(float32(i)))
	}

	if s.Len() != Capacity {
		t.Fatalf("Len = %d, want %d", s.Len(), Capacity)
	}
	got := s.Snapshots()
	for i, want := range []float32{3, 4, 5, 6, 7} {
		if got[i].Engagement != want {
			t.Errorf("entry %d = %v, want %v", i, got[i].Engagement, want)
		}
	}
}

func TestStore_WindowClampsToLength(t *testing.T) {
	s := NewStore()
	s.Append(snapN(1))
	s.Append(snapN(2))

	got := s.Window(3)
	if len(got) != 2 {
		t.Fatalf("Window(3) over 2 entries: len = %d, want 2", len(got))
	}
	if got[0].Engagement != 1 || got[1].Engagement != 2 {
		t.Errorf("Window order wrong: %v", got)
	}

	if got := s.Window(0); got != nil {
		t.Errorf("Window(0) = %v, want nil", got)
	}
}

func TestStore_WindowReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append(snapN(1))
	s.Append(snapN(2))

	w := s.Window(2)
	w[0].Engagement = 99

	if s.Snapshots()[0].Engagement != 1 {
		t.Error("mutating a window leaked into the store")
	}
}

func TestStore_EmptyWindow(t *testing.T) {
	s := NewStore()
	if got := s.Window(3); got != nil {
		t.Errorf("Window on empty store = %v, want nil", got)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

// #endregion store-tests
