package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/cognisync/go-engine/internal/alert"
	"github.com/cognisync/go-engine/internal/catalog"
	"github.com/cognisync/go-engine/internal/session"
	"github.com/cognisync/go-engine/internal/signal"
	"github.com/cognisync/go-engine/internal/tactic"
)

// #region mock

type mockAdvisor struct {
	text  string
	err   error
	calls int

	gotHistory []signal.Snapshot
	gotAlerts  []alert.Alert
}

func (m *mockAdvisor) Advise(_ context.Context, _ signal.Snapshot, history []signal.Snapshot, alerts []alert.Alert) (string, error) {
	m.calls++
	m.gotHistory = history
	m.gotAlerts = alerts
	return m.text, m.err
}

// #endregion mock

// #region helpers

func calmVision() signal.VisionSignals {
	return signal.VisionSignals{
		Emotion:   signal.EmotionNeutral,
		Attention: signal.AttentionMedium,
		Posture:   signal.PostureNeutral,
		Movement:  signal.MovementModerate,
	}
}

func calmAudio() signal.AudioSignals {
	return signal.AudioSignals{
		SpeechSpeed: signal.SpeechNormal,
		Pauses:      signal.PausesMinimal,
		Tone:        signal.ToneNeutral,
	}
}

func newSession() *session.Session {
	return session.New(catalog.Builtin())
}

// #endregion helpers

// #region analyze-tests

func TestAnalyze_AdvisorSuccess(t *testing.T) {
	adv := &mockAdvisor{text: "mirror their last phrase"}
	eng := New(adv)
	sess := newSession()

	res := eng.Analyze(context.Background(), sess, calmVision(), calmAudio())

	if res.Source != SourceAdvisor {
		t.Fatalf("source = %s, want advisor", res.Source)
	}
	if res.Advice != "mirror their last phrase" {
		t.Errorf("advice = %q", res.Advice)
	}
	if res.Selection.Branch != "" {
		t.Errorf("selector ran despite advisor success: %+v", res.Selection)
	}
	if res.Seq != 1 {
		t.Errorf("seq = %d, want 1", res.Seq)
	}
	if sess.History.Len() != 1 {
		t.Errorf("history len = %d, want 1", sess.History.Len())
	}
}

func TestAnalyze_AdvisorErrorFallsBack(t *testing.T) {
	adv := &mockAdvisor{err: errors.New("timeout")}
	eng := New(adv)
	sess := newSession()

	res := eng.Analyze(context.Background(), sess, calmVision(), calmAudio())

	if res.Source != SourceEngine {
		t.Fatalf("source = %s, want engine", res.Source)
	}
	if res.Advice == "" {
		t.Error("fallback produced no advice")
	}
	if res.Selection.Branch == "" {
		t.Error("fallback carries no selection provenance")
	}
}

func TestAnalyze_AdvisorEmptyFallsBack(t *testing.T) {
	adv := &mockAdvisor{text: ""}
	eng := New(adv)
	sess := newSession()

	res := eng.Analyze(context.Background(), sess, calmVision(), calmAudio())
	if res.Source != SourceEngine {
		t.Fatalf("source = %s, want engine", res.Source)
	}
	if res.Advice == "" {
		t.Error("fallback produced no advice")
	}
}

func TestAnalyze_NilAdvisorIsSelectorOnly(t *testing.T) {
	eng := New(nil)
	sess := newSession()

	res := eng.Analyze(context.Background(), sess, calmVision(), calmAudio())
	if res.Source != SourceEngine {
		t.Fatalf("source = %s, want engine", res.Source)
	}
	// calm baseline scores to 65/30/70, the exact neutral key.
	if res.Selection.Branch != tactic.BranchExact {
		t.Errorf("branch = %s, want exact", res.Selection.Branch)
	}
	if res.Selection.Key != "neutral/medium/low/mid" {
		t.Errorf("key = %s", res.Selection.Key)
	}
}

func TestAnalyze_AppendsAfterDecision(t *testing.T) {
	adv := &mockAdvisor{text: "ok"}
	eng := New(adv)
	sess := newSession()

	eng.Analyze(context.Background(), sess, calmVision(), calmAudio())
	if len(adv.gotHistory) != 0 {
		t.Errorf("first frame saw %d history entries, want 0", len(adv.gotHistory))
	}

	eng.Analyze(context.Background(), sess, calmVision(), calmAudio())
	if len(adv.gotHistory) != 1 {
		t.Errorf("second frame saw %d history entries, want 1", len(adv.gotHistory))
	}
}

func TestAnalyze_SequenceAndHistoryAdvance(t *testing.T) {
	eng := New(nil)
	sess := newSession()

	var last Result
	for i := 0; i < 7; i++ {
		last = eng.Analyze(context.Background(), sess, calmVision(), calmAudio())
	}
	if last.Seq != 7 {
		t.Errorf("seq = %d, want 7", last.Seq)
	}
	if sess.History.Len() != 5 {
		t.Errorf("history len = %d, want capped at 5", sess.History.Len())
	}
}

func TestAnalyze_AlertsReachAdvisor(t *testing.T) {
	adv := &mockAdvisor{text: "ok"}
	eng := New(adv)
	sess := newSession()

	// Two engaged frames, then a collapsed one: the detector fires and the
	// advisor sees it.
	engaged := signal.VisionSignals{
		Emotion:   signal.EmotionHappy,
		Attention: signal.AttentionHigh,
		Posture:   signal.PostureLeaningForward,
		Movement:  signal.MovementStill,
	}
	collapsed := signal.VisionSignals{
		Emotion:   signal.EmotionSad,
		Attention: signal.AttentionLow,
		Posture:   signal.PostureSlouched,
		Movement:  signal.MovementStill,
	}

	eng.Analyze(context.Background(), sess, engaged, calmAudio())
	eng.Analyze(context.Background(), sess, engaged, calmAudio())
	eng.Analyze(context.Background(), sess, collapsed, signal.AudioSignals{
		SpeechSpeed: signal.SpeechSilent,
		Pauses:      signal.PausesFrequent,
		Tone:        signal.ToneNeutral,
	})

	if len(adv.gotAlerts) == 0 {
		t.Fatal("advisor saw no alerts on the collapsed frame")
	}
	found := false
	for _, a := range adv.gotAlerts {
		if a.Kind == alert.KindAttentionLost {
			found = true
		}
	}
	if !found {
		t.Errorf("alerts %v missing attention_lost", adv.gotAlerts)
	}
}

// #endregion analyze-tests
