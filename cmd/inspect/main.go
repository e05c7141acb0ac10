package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cognisync/go-engine/internal/seslog"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to cognisync.db")
	sessionID := flag.String("session", "", "show one session's decisions")
	last := flag.Int("last", 20, "show N most recent decisions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/cognisync.db [--session id] [--last N] [--json]")
		os.Exit(2)
	}

	store, err := seslog.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *sessionID != "" {
		if err := runDecisionMode(store, *sessionID, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runSessionMode(store, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region session-mode

func runSessionMode(store *seslog.Store, jsonOut bool) error {
	sessions, err := store.Sessions()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "no sessions found")
		return nil
	}

	if jsonOut {
		return printJSON(sessions)
	}

	fmt.Printf("%-36s  %s\n", "Session", "Created")
	fmt.Printf("%-36s+-%s\n", "------------------------------------", "--------------------")
	for _, s := range sessions {
		fmt.Printf("%-36s  %s\n", s.SessionID, s.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}

// #endregion session-mode

// #region decision-mode

type decisionRow struct {
	Seq        int64   `json:"seq"`
	Engagement float32 `json:"engagement"`
	Stress     float32 `json:"stress"`
	Confidence float32 `json:"confidence"`
	Alerts     string  `json:"alerts,omitempty"`
	Source     string  `json:"advice_source"`
	Branch     string  `json:"selector_branch,omitempty"`
	Key        string  `json:"selector_key,omitempty"`
	Variant    int     `json:"selector_variant"`
	Advice     string  `json:"advice"`
	CreatedAt  string  `json:"created_at"`
}

func runDecisionMode(store *seslog.Store, sessionID string, last int, jsonOut bool) error {
	decisions, err := store.Decisions(sessionID, last)
	if err != nil {
		return err
	}
	if len(decisions) == 0 {
		fmt.Fprintf(os.Stderr, "no decisions for session %s\n", sessionID)
		return nil
	}

	rows := make([]decisionRow, len(decisions))
	for i, d := range decisions {
		alertText := ""
		alerts, err := d.DecodedAlerts()
		if err != nil {
			return err
		}
		for j, a := range alerts {
			if j > 0 {
				alertText += ","
			}
			alertText += string(a.Kind)
		}
		rows[i] = decisionRow{
			Seq:        d.Seq,
			Engagement: d.Engagement,
			Stress:     d.Stress,
			Confidence: d.Confidence,
			Alerts:     alertText,
			Source:     d.AdviceSource,
			Branch:     d.SelectorBranch,
			Key:        d.SelectorKey,
			Variant:    d.SelectorVariant,
			Advice:     d.Advice,
			CreatedAt:  d.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%4s  %6s %6s %6s  %-8s  %-10s  %-28s  %s\n",
		"Seq", "Eng", "Str", "Conf", "Source", "Branch", "Alerts", "Advice")
	for _, r := range rows {
		fmt.Printf("%4d  %6.1f %6.1f %6.1f  %-8s  %-10s  %-28s  %s\n",
			r.Seq, r.Engagement, r.Stress, r.Confidence, r.Source, r.Branch,
			truncate(r.Alerts, 28), truncate(r.Advice, 60))
	}
	return nil
}

// #endregion decision-mode

// #region output

// truncate shortens on rune boundaries; advice text carries multibyte
// punctuation that byte slicing would split.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// #endregion output
