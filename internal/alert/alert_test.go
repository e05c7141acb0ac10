package alert

import (
	"testing"

	"github.com/cognisync/go-engine/internal/signal"
)

// #region helpers

func snap(attention signal.Attention, engagement, stress float32) signal.Snapshot {
	return signal.Snapshot{
		Emotion:    signal.EmotionNeutral,
		Attention:  attention,
		Engagement: engagement,
		Stress:     stress,
		Confidence: 50,
	}
}

func kinds(alerts []Alert) []Kind {
	out := make([]Kind, len(alerts))
	for i, a := range alerts {
		out[i] = a.Kind
	}
	return out
}

// #endregion helpers

// #region detect-tests

func TestDetect_NeedsTwoHistoryEntries(t *testing.T) {
	// Extreme values, but no trend baseline yet: nothing fires.
	current := snap(signal.AttentionLow, 5, 95)

	if got := Detect(current, nil); got != nil {
		t.Errorf("empty history: got %v, want none", kinds(got))
	}
	one := []signal.Snapshot{snap(signal.AttentionHigh, 80, 20)}
	if got := Detect(current, one); got != nil {
		t.Errorf("one entry: got %v, want none", kinds(got))
	}
}

func TestDetect_EngagementDrop(t *testing.T) {
	history := []signal.Snapshot{
		snap(signal.AttentionHigh, 80, 30),
		snap(signal.AttentionHigh, 80, 30),
	}
	current := snap(signal.AttentionHigh, 59, 30)

	got := Detect(current, history)
	if len(got) != 1 || got[0].Kind != KindEngagementDropping {
		t.Fatalf("got %v, want [engagement_dropping]", kinds(got))
	}

	// Exactly 20 below the average is not a drop; the comparison is strict.
	current = snap(signal.AttentionHigh, 60, 30)
	if got := Detect(current, history); got != nil {
		t.Errorf("at threshold: got %v, want none", kinds(got))
	}
}

func TestDetect_StressSpike(t *testing.T) {
	history := []signal.Snapshot{
		snap(signal.AttentionHigh, 60, 25),
		snap(signal.AttentionHigh, 60, 25),
	}
	current := snap(signal.AttentionHigh, 60, 46)

	got := Detect(current, history)
	if len(got) != 1 || got[0].Kind != KindStressSpiking {
		t.Fatalf("got %v, want [stress_spiking]", kinds(got))
	}
}

func TestDetect_AbsoluteThresholds(t *testing.T) {
	history := []signal.Snapshot{
		snap(signal.AttentionHigh, 28, 74),
		snap(signal.AttentionHigh, 28, 74),
	}

	// Low engagement fires strictly below 30, high stress strictly above 75.
	got := Detect(snap(signal.AttentionHigh, 29, 76), history)
	want := []Kind{KindVeryLowEngagement, KindHighStress}
	if len(got) != 2 || got[0].Kind != want[0] || got[1].Kind != want[1] {
		t.Fatalf("got %v, want %v", kinds(got), want)
	}

	got = Detect(snap(signal.AttentionHigh, 30, 75), history)
	if got != nil {
		t.Errorf("at thresholds: got %v, want none", kinds(got))
	}
}

func TestDetect_AttentionLost(t *testing.T) {
	history := []signal.Snapshot{
		snap(signal.AttentionHigh, 60, 30),
		snap(signal.AttentionHigh, 60, 30),
	}
	got := Detect(snap(signal.AttentionLow, 60, 30), history)
	if len(got) != 1 || got[0].Kind != KindAttentionLost {
		t.Fatalf("got %v, want [attention_lost]", kinds(got))
	}
}

func TestDetect_AllFireInFixedOrder(t *testing.T) {
	history := []signal.Snapshot{
		snap(signal.AttentionHigh, 80, 20),
		snap(signal.AttentionHigh, 80, 20),
		snap(signal.AttentionHigh, 80, 20),
	}
	current := snap(signal.AttentionLow, 10, 90)

	got := Detect(current, history)
	want := []Kind{
		KindEngagementDropping,
		KindStressSpiking,
		KindVeryLowEngagement,
		KindHighStress,
		KindAttentionLost,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", kinds(got), want)
	}
	for i := range want {
		if got[i].Kind != want[i] {
			t.Errorf("alert %d = %v, want %v", i, got[i].Kind, want[i])
		}
	}
}

func TestDetect_WindowIsLastThree(t *testing.T) {
	// Old entries with engagement 100 would dominate the average if the
	// window were unbounded; the last three carry engagement 50.
	history := []signal.Snapshot{
		snap(signal.AttentionHigh, 100, 30),
		snap(signal.AttentionHigh, 100, 30),
		snap(signal.AttentionHigh, 50, 30),
		snap(signal.AttentionHigh, 50, 30),
		snap(signal.AttentionHigh, 50, 30),
	}
	current := snap(signal.AttentionHigh, 35, 30)

	// 35 vs window average 50: not a 20-point drop.
	if got := Detect(current, history); got != nil {
		t.Errorf("got %v, want none", kinds(got))
	}
}

func TestDetect_NeverEmitsInconsistency(t *testing.T) {
	history := []signal.Snapshot{
		snap(signal.AttentionHigh, 80, 20),
		snap(signal.AttentionHigh, 80, 20),
	}
	got := Detect(snap(signal.AttentionLow, 10, 90), history)
	for _, a := range got {
		if a.Kind == KindInconsistency {
			t.Fatalf("detector emitted inconsistency: %v", a)
		}
	}
}

// #endregion detect-tests
