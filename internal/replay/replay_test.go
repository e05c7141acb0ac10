package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cognisync/go-engine/internal/catalog"
	"github.com/cognisync/go-engine/internal/tactic"
)

// #region helpers

func calmFrame(id string) FixtureFrame {
	return FixtureFrame{
		FrameID: id,
		Vision: FixtureVisionSignals{
			Emotion:   "neutral",
			Attention: "medium",
			Posture:   "neutral",
			Movement:  "moderate",
		},
		Audio: FixtureAudioSignals{
			SpeechSpeed: "normal",
			Pauses:      "minimal",
			Tone:        "neutral",
		},
	}
}

func engagedFrame(id string) FixtureFrame {
	return FixtureFrame{
		FrameID: id,
		Vision: FixtureVisionSignals{
			Emotion:   "happy",
			Attention: "high",
			Posture:   "leaning_forward",
			Movement:  "still",
		},
		Audio: FixtureAudioSignals{
			SpeechSpeed: "normal",
			Pauses:      "minimal",
			Tone:        "neutral",
		},
	}
}

func collapsedFrame(id string) FixtureFrame {
	return FixtureFrame{
		FrameID: id,
		Vision: FixtureVisionSignals{
			Emotion:   "sad",
			Attention: "low",
			Posture:   "slouched",
			Movement:  "still",
		},
		Audio: FixtureAudioSignals{
			SpeechSpeed: "silent",
			Pauses:      "frequent",
			Tone:        "neutral",
		},
	}
}

// #endregion helpers

// #region replay-tests

func TestReplay_CalmSequenceRotates(t *testing.T) {
	frames := []FixtureFrame{
		calmFrame("f1"), calmFrame("f2"), calmFrame("f3"),
		calmFrame("f4"), calmFrame("f5"),
	}
	results := Replay(catalog.Builtin(), frames)

	if len(results) != 5 {
		t.Fatalf("got %d results, want 5", len(results))
	}
	wantVariants := []int{0, 0, 0, 0, 1}
	for i, r := range results {
		if r.Selection.Branch != tactic.BranchExact {
			t.Errorf("frame %s: branch = %s, want exact", r.FrameID, r.Selection.Branch)
		}
		if r.Selection.Key != "neutral/medium/low/mid" {
			t.Errorf("frame %s: key = %s", r.FrameID, r.Selection.Key)
		}
		if r.Selection.Variant != wantVariants[i] {
			t.Errorf("frame %s: variant = %d, want %d", r.FrameID, r.Selection.Variant, wantVariants[i])
		}
	}
}

func TestReplay_CollapseTriggersAlertBranch(t *testing.T) {
	frames := []FixtureFrame{
		engagedFrame("f1"), engagedFrame("f2"), collapsedFrame("f3"),
	}
	results := Replay(catalog.Builtin(), frames)

	if results[0].Selection.Branch != tactic.BranchExact || results[0].Selection.Key != "happy/high/low/high" {
		t.Errorf("frame f1: %+v", results[0].Selection)
	}
	if len(results[1].Alerts) != 0 {
		t.Errorf("frame f2 alerted with a one-frame history: %v", results[1].Alerts)
	}

	last := results[2]
	if len(last.Alerts) == 0 {
		t.Fatal("collapsed frame produced no alerts")
	}
	if last.Selection.Branch != tactic.BranchAlert {
		t.Errorf("frame f3: branch = %s, want alert", last.Selection.Branch)
	}
	if last.Selection.Key != string(catalog.CrisisAttentionLost) {
		t.Errorf("frame f3: key = %s, want %s", last.Selection.Key, catalog.CrisisAttentionLost)
	}
}

func TestReplay_AdvisorFramesSkipSelector(t *testing.T) {
	advisorFrame := calmFrame("f2")
	advisorFrame.Source = AdvisorSource
	frames := []FixtureFrame{
		calmFrame("f1"), advisorFrame, calmFrame("f3"),
		calmFrame("f4"), calmFrame("f5"), calmFrame("f6"),
	}
	results := Replay(catalog.Builtin(), frames)

	if sel := results[1].Selection; sel.Branch != "" || sel.Advice != "" {
		t.Errorf("advisor frame ran the selector: %+v", sel)
	}

	// Rotation ticks only on the five engine frames: the fifth hit, on f6,
	// escalates to the second variant. Counting the advisor frame would
	// escalate one frame early, on f5.
	wantVariants := map[string]int{"f1": 0, "f3": 0, "f4": 0, "f5": 0, "f6": 1}
	var expected []FixtureExpectedResult
	for _, r := range results {
		want, ok := wantVariants[r.FrameID]
		if !ok {
			continue
		}
		if r.Selection.Variant != want {
			t.Errorf("frame %s: variant = %d, want %d", r.FrameID, r.Selection.Variant, want)
		}
		expected = append(expected, FixtureExpectedResult{
			FrameID: r.FrameID,
			Branch:  string(tactic.BranchExact),
			Key:     "neutral/medium/low/mid",
			Variant: want,
		})
	}
	if mm := Verify(results, expected); len(mm) != 0 {
		t.Errorf("mixed session reported spurious mismatches: %+v", mm)
	}

	s := Summarize(results)
	if s.AdvisorFrames != 1 {
		t.Errorf("advisor frames = %d, want 1", s.AdvisorFrames)
	}
	if s.ByBranch[tactic.BranchExact] != 5 {
		t.Errorf("exact branch count = %d, want 5", s.ByBranch[tactic.BranchExact])
	}
}

func TestReplay_Deterministic(t *testing.T) {
	frames := []FixtureFrame{
		engagedFrame("f1"), calmFrame("f2"), collapsedFrame("f3"),
		calmFrame("f4"), engagedFrame("f5"),
	}
	a := Replay(catalog.Builtin(), frames)
	b := Replay(catalog.Builtin(), frames)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("two replays of the same frames diverged (-first +second):\n%s", diff)
	}
}

// #endregion replay-tests

// #region summary-tests

func TestSummarize(t *testing.T) {
	frames := []FixtureFrame{
		engagedFrame("f1"), engagedFrame("f2"), collapsedFrame("f3"),
	}
	s := Summarize(Replay(catalog.Builtin(), frames))

	if s.TotalFrames != 3 {
		t.Errorf("total = %d, want 3", s.TotalFrames)
	}
	if s.ByBranch[tactic.BranchExact] != 2 || s.ByBranch[tactic.BranchAlert] != 1 {
		t.Errorf("branch counts = %v", s.ByBranch)
	}
	if s.AlertFrames != 1 {
		t.Errorf("alert frames = %d, want 1", s.AlertFrames)
	}
}

// #endregion summary-tests

// #region verify-tests

func TestVerify_Clean(t *testing.T) {
	frames := []FixtureFrame{calmFrame("f1"), calmFrame("f2")}
	results := Replay(catalog.Builtin(), frames)

	expected := []FixtureExpectedResult{
		{FrameID: "f1", Branch: "exact", Key: "neutral/medium/low/mid", Variant: 0},
		{FrameID: "f2", Branch: "exact", Variant: 0},
	}
	if mm := Verify(results, expected); len(mm) != 0 {
		t.Errorf("unexpected mismatches: %+v", mm)
	}
}

func TestVerify_ReportsDivergence(t *testing.T) {
	results := Replay(catalog.Builtin(), []FixtureFrame{calmFrame("f1")})

	expected := []FixtureExpectedResult{
		{FrameID: "f1", Branch: "default", Key: "wrong/key", Variant: 2},
		{FrameID: "ghost", Branch: "exact"},
	}
	mm := Verify(results, expected)
	if len(mm) != 4 {
		t.Fatalf("got %d mismatches, want 4: %+v", len(mm), mm)
	}

	fields := map[string]bool{}
	for _, m := range mm {
		fields[m.FrameID+"/"+m.Field] = true
	}
	for _, want := range []string{"f1/branch", "f1/key", "f1/variant", "ghost/frame"} {
		if !fields[want] {
			t.Errorf("missing mismatch %s in %+v", want, mm)
		}
	}
}

// #endregion verify-tests

// #region fixture-tests

func TestLoadFixture(t *testing.T) {
	f := Fixture{
		Description: "calm baseline",
		Frames:      []FixtureFrame{calmFrame("f1")},
		ExpectedResults: []FixtureExpectedResult{
			{FrameID: "f1", Branch: "exact", Key: "neutral/medium/low/mid", Variant: 0},
		},
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if diff := cmp.Diff(&f, loaded); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFixtureFrame_NormalizesOnLoad(t *testing.T) {
	frame := FixtureFrame{
		Vision: FixtureVisionSignals{Emotion: "bewildered", Attention: "high"},
		Audio:  FixtureAudioSignals{Tone: "calm"},
	}
	v := frame.ToVision()
	if v.Emotion != "neutral" || v.Attention != "high" {
		t.Errorf("vision = %+v", v)
	}
	a := frame.ToAudio()
	if a.Tone != "calm" || a.SpeechSpeed != "normal" || a.Pauses != "minimal" {
		t.Errorf("audio = %+v", a)
	}
}

// #endregion fixture-tests
