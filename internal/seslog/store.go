package seslog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognisync/go-engine/internal/alert"
	"github.com/cognisync/go-engine/internal/engine"
	"github.com/cognisync/go-engine/internal/signal"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id    TEXT PRIMARY KEY,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS decision_log (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id       TEXT NOT NULL,
	seq              INTEGER NOT NULL,
	engagement       REAL NOT NULL,
	stress           REAL NOT NULL,
	confidence       REAL NOT NULL,
	snapshot_json    TEXT NOT NULL,
	alerts_json      TEXT,
	advice           TEXT NOT NULL,
	advice_source    TEXT NOT NULL,
	selector_branch  TEXT,
	selector_key     TEXT,
	selector_variant INTEGER,
	elapsed_ms       REAL NOT NULL,
	created_at       TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE INDEX IF NOT EXISTS idx_decision_session_seq
	ON decision_log(session_id, seq);
`

// #endregion schema

// #region types

// Decision is one decision_log row.
type Decision struct {
	ID              int64
	SessionID       string
	Seq             int64
	Engagement      float32
	Stress          float32
	Confidence      float32
	SnapshotJSON    string
	AlertsJSON      string
	Advice          string
	AdviceSource    string
	SelectorBranch  string
	SelectorKey     string
	SelectorVariant int
	ElapsedMS       float64
	CreatedAt       time.Time
}

// SessionRow is one sessions row.
type SessionRow struct {
	SessionID string
	CreatedAt time.Time
}

// #endregion types

// #region store

// Store is the SQLite decision log. The engine holds no durable state; this
// is observability and the replay substrate.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store

// #region writes

// CreateSession registers a session. Idempotent per session ID.
func (s *Store) CreateSession(sessionID string, createdAt time.Time) error {
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO sessions (session_id, created_at) VALUES (?, ?)`,
		sessionID, createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// LogDecision writes one decision row.
func (s *Store) LogDecision(d Decision) error {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO decision_log (session_id, seq, engagement, stress, confidence, snapshot_json, alerts_json, advice, advice_source, selector_branch, selector_key, selector_variant, elapsed_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.SessionID, d.Seq, d.Engagement, d.Stress, d.Confidence,
		d.SnapshotJSON, nullIfEmpty(d.AlertsJSON), d.Advice, d.AdviceSource,
		nullIfEmpty(d.SelectorBranch), nullIfEmpty(d.SelectorKey), d.SelectorVariant,
		d.ElapsedMS, d.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// FromResult converts an analysis result to a loggable decision row.
func FromResult(res engine.Result) (Decision, error) {
	snapJSON, err := json.Marshal(res.Snapshot)
	if err != nil {
		return Decision{}, fmt.Errorf("marshal snapshot: %w", err)
	}
	alertsJSON := ""
	if len(res.Alerts) > 0 {
		b, err := json.Marshal(res.Alerts)
		if err != nil {
			return Decision{}, fmt.Errorf("marshal alerts: %w", err)
		}
		alertsJSON = string(b)
	}
	return Decision{
		SessionID:       res.SessionID,
		Seq:             res.Seq,
		Engagement:      res.Snapshot.Engagement,
		Stress:          res.Snapshot.Stress,
		Confidence:      res.Snapshot.Confidence,
		SnapshotJSON:    string(snapJSON),
		AlertsJSON:      alertsJSON,
		Advice:          res.Advice,
		AdviceSource:    string(res.Source),
		SelectorBranch:  string(res.Selection.Branch),
		SelectorKey:     res.Selection.Key,
		SelectorVariant: res.Selection.Variant,
		ElapsedMS:       float64(res.Elapsed) / float64(time.Millisecond),
	}, nil
}

// #endregion writes

// #region reads

// Sessions lists all registered sessions, newest first.
func (s *Store) Sessions() ([]SessionRow, error) {
	rows, err := s.db.Query(`SELECT session_id, created_at FROM sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRow
	for rows.Next() {
		var r SessionRow
		var created string
		if err := rows.Scan(&r.SessionID, &created); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Decisions returns a session's decisions in sequence order. limit <= 0
// returns all of them.
func (s *Store) Decisions(sessionID string, limit int) ([]Decision, error) {
	q := `SELECT id, session_id, seq, engagement, stress, confidence, snapshot_json, alerts_json, advice, advice_source, selector_branch, selector_key, selector_variant, elapsed_ms, created_at
	      FROM decision_log WHERE session_id = ? ORDER BY seq`
	args := []interface{}{sessionID}
	if limit > 0 {
		q = `SELECT * FROM (` + q + ` DESC LIMIT ?) ORDER BY seq`
		args = append(args, limit)
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}
	defer rows.Close()

	var out []Decision
	for rows.Next() {
		var d Decision
		var alertsJSON, branch, key sql.NullString
		var variant sql.NullInt64
		var created string
		if err := rows.Scan(
			&d.ID, &d.SessionID, &d.Seq, &d.Engagement, &d.Stress, &d.Confidence,
			&d.SnapshotJSON, &alertsJSON, &d.Advice, &d.AdviceSource,
			&branch, &key, &variant, &d.ElapsedMS, &created,
		); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		d.AlertsJSON = alertsJSON.String
		d.SelectorBranch = branch.String
		d.SelectorKey = key.String
		d.SelectorVariant = int(variant.Int64)
		d.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Snapshot decodes a decision row's snapshot JSON.
func (d Decision) Snapshot() (signal.Snapshot, error) {
	var snap signal.Snapshot
	if err := json.Unmarshal([]byte(d.SnapshotJSON), &snap); err != nil {
		return signal.Snapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, nil
}

// DecodedAlerts decodes a decision row's alerts JSON.
func (d Decision) DecodedAlerts() ([]alert.Alert, error) {
	if d.AlertsJSON == "" {
		return nil, nil
	}
	var alerts []alert.Alert
	if err := json.Unmarshal([]byte(d.AlertsJSON), &alerts); err != nil {
		return nil, fmt.Errorf("unmarshal alerts: %w", err)
	}
	return alerts, nil
}

// #endregion reads

// #region helpers

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
