package engine

import (
	"context"
	"log"
	"time"

	"github.com/cognisync/go-engine/internal/alert"
	"github.com/cognisync/go-engine/internal/session"
	"github.com/cognisync/go-engine/internal/signal"
	"github.com/cognisync/go-engine/internal/tactic"
)

// #region types

// Advisor produces a generative tactical recommendation. Implementations may
// fail or time out; the engine's selector is the guaranteed fallback.
type Advisor interface {
	Advise(ctx context.Context, current signal.Snapshot, history []signal.Snapshot, alerts []alert.Alert) (string, error)
}

// Source records which path produced the advice.
type Source string

const (
	SourceAdvisor Source = "advisor"
	SourceEngine  Source = "engine"
)

// Result is the outcome of analyzing one frame.
type Result struct {
	SessionID string
	Seq       int64
	Snapshot  signal.Snapshot
	Alerts    []alert.Alert
	Advice    string
	Source    Source
	Selection tactic.Selection
	Elapsed   time.Duration
}

// #endregion types

// #region engine

// Engine runs the per-frame analysis pipeline: score, detect, advise,
// append. A nil advisor means selector-only operation.
type Engine struct {
	advisor Advisor
}

// New returns an engine. advisor may be nil.
func New(advisor Advisor) *Engine {
	return &Engine{advisor: advisor}
}

// Analyze scores one frame's signals for the session, detects alerts against
// the history, picks advice, and appends the snapshot. The snapshot joins
// the history only after the decision, so the frame never compares against
// itself. Total: it always returns a result.
func (e *Engine) Analyze(ctx context.Context, sess *session.Session, vision signal.VisionSignals, audio signal.AudioSignals) Result {
	start := time.Now()

	sess.Lock()
	defer sess.Unlock()

	snap := signal.NewSnapshot(vision, audio)
	hist := sess.History.Snapshots()
	alerts := alert.Detect(snap, hist)

	res := Result{
		SessionID: sess.ID,
		Snapshot:  snap,
		Alerts:    alerts,
	}

	if e.advisor != nil {
		text, err := e.advisor.Advise(ctx, snap, hist, alerts)
		switch {
		case err != nil:
			log.Printf("[ENGINE] advisor failed, falling back to selector: %v", err)
		case text == "":
			log.Printf("[ENGINE] advisor returned empty advice, falling back to selector")
		default:
			res.Advice = text
			res.Source = SourceAdvisor
		}
	}

	if res.Source != SourceAdvisor {
		sel := sess.Selector.Select(snap, hist, alerts)
		res.Advice = sel.Advice
		res.Source = SourceEngine
		res.Selection = sel
	}

	sess.History.Append(snap)
	res.Seq = sess.NextSeq()
	res.Elapsed = time.Since(start)
	return res
}

// #endregion engine
