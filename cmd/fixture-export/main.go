package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cognisync/go-engine/internal/replay"
	"github.com/cognisync/go-engine/internal/seslog"
	"github.com/cognisync/go-engine/internal/signal"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to cognisync.db")
	sessionID := flag.String("session", "", "session to export (defaults to the only session)")
	last := flag.Int("last", 0, "export only the N most recent decisions (0 = all)")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/cognisync.db --out path/to/fixture.json [--session id] [--last N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *sessionID, *last, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

// run pulls a session's decisions out of the log and writes them as a replay
// fixture. Only selector-sourced rows carry expectations; advisor rows export
// their frames marked with the source, so history effects replay intact and
// the harness skips the selector on them as the engine did.
func run(dbPath, sessionID string, last int, outPath string) error {
	store, err := seslog.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	if sessionID == "" {
		sessions, err := store.Sessions()
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) != 1 {
			return fmt.Errorf("db holds %d sessions, pick one with --session", len(sessions))
		}
		sessionID = sessions[0].SessionID
	}

	decisions, err := store.Decisions(sessionID, last)
	if err != nil {
		return fmt.Errorf("load decisions: %w", err)
	}
	if len(decisions) == 0 {
		return fmt.Errorf("no decisions for session %s", sessionID)
	}

	fixture := replay.Fixture{
		Description: fmt.Sprintf("exported from session %s (%d frames)", sessionID, len(decisions)),
	}
	for _, d := range decisions {
		snap, err := d.Snapshot()
		if err != nil {
			return fmt.Errorf("decision %d: %w", d.Seq, err)
		}
		frameID := fmt.Sprintf("seq-%d", d.Seq)
		fixture.Frames = append(fixture.Frames, frameFromSnapshot(frameID, d.AdviceSource, snap))
		if d.AdviceSource != replay.AdvisorSource {
			fixture.ExpectedResults = append(fixture.ExpectedResults, replay.FixtureExpectedResult{
				FrameID: frameID,
				Branch:  d.SelectorBranch,
				Key:     d.SelectorKey,
				Variant: d.SelectorVariant,
			})
		}
	}

	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	fmt.Printf("exported %d frames (%d expectations) to %s\n",
		len(fixture.Frames), len(fixture.ExpectedResults), outPath)
	return nil
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

// #endregion export
