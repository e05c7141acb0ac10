package replay

import (
	"fmt"

	"github.com/cognisync/go-engine/internal/alert"
	"github.com/cognisync/go-engine/internal/catalog"
	"github.com/cognisync/go-engine/internal/history"
	"github.com/cognisync/go-engine/internal/signal"
	"github.com/cognisync/go-engine/internal/tactic"
)

// #region types

// Result captures the outcome of replaying one frame through the
// deterministic pipeline. Selection is zero for advisor-sourced frames.
type Result struct {
	FrameID   string
	Source    string
	Snapshot  signal.Snapshot
	Alerts    []alert.Alert
	Selection tactic.Selection
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalFrames   int
	ByBranch      map[tactic.Branch]int
	AlertFrames   int
	AdvisorFrames int
}

// Mismatch is one divergence between a replay result and the fixture's
// expectation.
type Mismatch struct {
	FrameID string
	Field   string
	Want    string
	Got     string
}

// #endregion types

// #region replay

// Replay runs the frames through a fresh session: score, detect, select,
// append. Entirely in-memory and deterministic; the advisory path never
// participates, so two runs of the same fixture always agree. Frames whose
// live decision came from the advisor still score, detect and append, but
// skip the selector, exactly as the engine did, so rotation counters stay
// aligned with the recorded session.
func Replay(cat *catalog.Catalog, frames []FixtureFrame) []Result {
	hist := history.NewStore()
	selector := tactic.NewSelector(cat)

	results := make([]Result, 0, len(frames))
	for _, frame := range frames {
		snap := signal.NewSnapshot(frame.ToVision(), frame.ToAudio())
		past := hist.Snapshots()
		alerts := alert.Detect(snap, past)
		var sel tactic.Selection
		if frame.Source != AdvisorSource {
			sel = selector.Select(snap, past, alerts)
		}
		hist.Append(snap)

		results = append(results, Result{
			FrameID:   frame.FrameID,
			Source:    frame.Source,
			Snapshot:  snap,
			Alerts:    alerts,
			Selection: sel,
		})
	}
	return results
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result) Summary {
	s := Summary{
		TotalFrames: len(results),
		ByBranch:    make(map[tactic.Branch]int),
	}
	for _, r := range results {
		if r.Source == AdvisorSource {
			s.AdvisorFrames++
		} else {
			s.ByBranch[r.Selection.Branch]++
		}
		if len(r.Alerts) > 0 {
			s.AlertFrames++
		}
	}
	return s
}

// Verify compares replay results against the fixture's expectations, matched
// by frame ID. Expectations for unknown frame IDs are reported as mismatches.
func Verify(results []Result, expected []FixtureExpectedResult) []Mismatch {
	byID := make(map[string]Result, len(results))
	for _, r := range results {
		byID[r.FrameID] = r
	}

	var mismatches []Mismatch
	for _, exp := range expected {
		r, ok := byID[exp.FrameID]
		if !ok {
			mismatches = append(mismatches, Mismatch{
				FrameID: exp.FrameID,
				Field:   "frame",
				Want:    "present",
				Got:     "missing",
			})
			continue
		}
		if string(r.Selection.Branch) != exp.Branch {
			mismatches = append(mismatches, Mismatch{
				FrameID: exp.FrameID,
				Field:   "branch",
				Want:    exp.Branch,
				Got:     string(r.Selection.Branch),
			})
		}
		if exp.Key != "" && r.Selection.Key != exp.Key {
			mismatches = append(mismatches, Mismatch{
				FrameID: exp.FrameID,
				Field:   "key",
				Want:    exp.Key,
				Got:     r.Selection.Key,
			})
		}
		if r.Selection.Variant != exp.Variant {
			mismatches = append(mismatches, Mismatch{
				FrameID: exp.FrameID,
				Field:   "variant",
				Want:    fmt.Sprintf("%d", exp.Variant),
				Got:     fmt.Sprintf("%d", r.Selection.Variant),
			})
		}
	}
	return mismatches
}

// #endregion replay
