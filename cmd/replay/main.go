package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cognisync/go-engine/internal/catalog"
	"github.com/cognisync/go-engine/internal/replay"
	"github.com/cognisync/go-engine/internal/seslog"
	"github.com/cognisync/go-engine/internal/signal"
	"github.com/cognisync/go-engine/internal/tactic"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to cognisync.db (DB mode)")
	sessionID := flag.String("session", "", "session to replay (DB mode, defaults to the only session)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	catalogPath := flag.String("catalog", "", "external catalog YAML (defaults to built-in)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--catalog file.yaml]")
		fmt.Fprintln(os.Stderr, "       replay --db path/to/cognisync.db [--session id] [--catalog file.yaml]")
		os.Exit(2)
	}

	cat := catalog.Builtin()
	if *catalogPath != "" {
		loaded, err := catalog.Load(*catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load catalog: %v\n", err)
			os.Exit(2)
		}
		cat = loaded
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath, cat)
	} else {
		exitCode = runDBMode(*dbPath, *sessionID, cat)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string, cat *catalog.Catalog) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	results := replay.Replay(cat, f.Frames)
	mismatches := replay.Verify(results, f.ExpectedResults)

	printResults(results)
	return printMismatches(mismatches, len(f.ExpectedResults))
}

// #endregion fixture-mode

// #region db-mode

// runDBMode re-runs a recorded session's frames through a fresh selector and
// compares against the logged decisions. Advisor-sourced rows replay without
// the selector, as in the live session, and carry no expectations: the
// generative path is not reproducible.
func runDBMode(dbPath, sessionID string, cat *catalog.Catalog) int {
	store, err := seslog.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	if sessionID == "" {
		sessions, err := store.Sessions()
		if err != nil {
			fmt.Fprintf(os.Stderr, "list sessions: %v\n", err)
			return 2
		}
		if len(sessions) != 1 {
			fmt.Fprintf(os.Stderr, "db holds %d sessions, pick one with --session\n", len(sessions))
			return 2
		}
		sessionID = sessions[0].SessionID
	}

	decisions, err := store.Decisions(sessionID, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load decisions: %v\n", err)
		return 2
	}
	if len(decisions) == 0 {
		fmt.Fprintf(os.Stderr, "no decisions for session %s\n", sessionID)
		return 2
	}

	frames := make([]replay.FixtureFrame, len(decisions))
	var expected []replay.FixtureExpectedResult
	advisorRows := 0
	for i, d := range decisions {
		snap, err := d.Snapshot()
		if err != nil {
			fmt.Fprintf(os.Stderr, "decision %d: %v\n", d.Seq, err)
			return 2
		}
		frameID := fmt.Sprintf("seq-%d", d.Seq)
		frames[i] = frameFromSnapshot(frameID, d.AdviceSource, snap)
		if d.AdviceSource != replay.AdvisorSource {
			expected = append(expected, replay.FixtureExpectedResult{
				FrameID: frameID,
				Branch:  d.SelectorBranch,
				Key:     d.SelectorKey,
				Variant: d.SelectorVariant,
			})
		} else {
			advisorRows++
		}
	}

	results := replay.Replay(cat, frames)
	mismatches := replay.Verify(results, expected)

	printResults(results)
	if advisorRows > 0 {
		fmt.Printf("%d advisor-sourced rows replayed without expectations\n", advisorRows)
	}
	return printMismatches(mismatches, len(expected))
}

func frameFromSnapshot(frameID, source string, snap signal.Snapshot) replay.FixtureFrame {
	f := replay.FixtureFrame{
		FrameID: frameID,
		Vision: replay.FixtureVisionSignals{
			Emotion:   string(snap.Emotion),
			Attention: string(snap.Attention),
			Posture:   string(snap.Posture),
			Movement:  string(snap.Movement),
		},
		Audio: replay.FixtureAudioSignals{
			SpeechSpeed: string(snap.Audio.SpeechSpeed),
			Pauses:      string(snap.Audio.Pauses),
			Tone:        string(snap.Audio.Tone),
		},
	}
	if source == replay.AdvisorSource {
		f.Source = source
	}
	return f
}

// #endregion db-mode

// #region output

func printResults(results []replay.Result) {
	fmt.Printf("%-10s| %6s %6s %6s | %-10s| %-32s| %s\n",
		"Frame", "Eng", "Str", "Conf", "Branch", "Key", "Var")
	fmt.Printf("%-10s+%-22s+%-10s+%-33s+%s\n",
		"----------", "-----------------------", "-----------", "---------------------------------", "----")
	for _, r := range results {
		branch := string(r.Selection.Branch)
		if r.Source == replay.AdvisorSource {
			branch = "(advisor)"
		}
		fmt.Printf("%-10s| %6.1f %6.1f %6.1f | %-10s| %-32s| %d\n",
			r.FrameID, r.Snapshot.Engagement, r.Snapshot.Stress, r.Snapshot.Confidence,
			branch, r.Selection.Key, r.Selection.Variant)
	}

	summary := replay.Summarize(results)
	fmt.Printf("\nSummary: %d frames, %d with alerts, %d advisor-sourced, branches: %s\n",
		summary.TotalFrames, summary.AlertFrames, summary.AdvisorFrames, branchCounts(summary.ByBranch))
}

func branchCounts(byBranch map[tactic.Branch]int) string {
	b, _ := json.Marshal(byBranch)
	return string(b)
}

func printMismatches(mismatches []replay.Mismatch, checked int) int {
	if len(mismatches) == 0 {
		fmt.Printf("Verified: %d expectations, all match\n", checked)
		return 0
	}
	fmt.Printf("Verified: %d expectations, %d mismatches\n", checked, len(mismatches))
	for _, m := range mismatches {
		fmt.Printf("  %s %s: want %s, got %s\n", m.FrameID, m.Field, m.Want, m.Got)
	}
	return 1
}

// #endregion output
