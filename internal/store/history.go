package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"reconx/internal/domain"
)

const historyFile = "history.db"

const schema = `
CREATE TABLE IF NOT EXISTS scans (
	id          TEXT PRIMARY KEY,
	domain      TEXT NOT NULL,
	started_at  INTEGER NOT NULL,
	finished_at INTEGER NOT NULL,
	wayback_n   INTEGER NOT NULL DEFAULT 0,
	live_n      INTEGER NOT NULL DEFAULT 0,
	fuzz_n      INTEGER NOT NULL DEFAULT 0,
	report_path TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS scans_started ON scans(started_at DESC);
`

// History is a SQLite-backed scan log.
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if needed) the history database in dir.
func OpenHistory(dir string) (*History, error) {
	return openHistoryPath(filepath.Join(dir, historyFile))
}

func openHistoryPath(path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// SQLite supports one writer at a time.
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("history db: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &History{db: db}, nil
}

// Record inserts one completed scan.
func (h *History) Record(ctx context.Context, s domain.Summary) error {
	_, err := h.db.ExecContext(ctx, `
		INSERT INTO scans (id, domain, started_at, finished_at, wayback_n, live_n, fuzz_n, report_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Domain, s.StartedAt.UTC().Unix(), s.FinishedAt.UTC().Unix(),
		s.WaybackN, s.LiveN, s.FuzzN, s.ReportPath,
	)
	if err != nil {
		return fmt.Errorf("record scan %s: %w", s.Domain, err)
	}
	return nil
}

// Recent returns up to limit scans, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]domain.Summary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := h.db.QueryContext(ctx, `
		SELECT id, domain, started_at, finished_at, wayback_n, live_n, fuzz_n, report_path
		FROM scans ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()

	var out []domain.Summary
	for rows.Next() {
		var (
			s                 domain.Summary
			started, finished int64
		)
		if err := rows.Scan(&s.ID, &s.Domain, &started, &finished,
			&s.WaybackN, &s.LiveN, &s.FuzzN, &s.ReportPath); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		s.StartedAt = time.Unix(started, 0).UTC()
		s.FinishedAt = time.Unix(finished, 0).UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}

// Prune keeps only the newest keep scans.
func (h *History) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := h.db.ExecContext(ctx, `
		DELETE FROM scans WHERE id NOT IN (
			SELECT id FROM scans ORDER BY started_at DESC, id LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}

func (h *History) Close() error { return h.db.Close() }

var _ domain.HistoryStore = (*History)(nil)
