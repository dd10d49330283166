// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists generation results and serves full-text
// search over them.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/brandkit/brandkit/pkg/types"
)

const dbFile = "history.db"

// Store manages the generation history SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// NewStore opens or creates the history database at dir/history.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		dir:        cfg.Dir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			topic TEXT,
			platform TEXT,
			length TEXT,
			period TEXT,
			count INTEGER,
			model TEXT,
			content TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_kind ON records(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_records_created_at ON records(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='records_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE records_fts USING fts5(topic, content, content=records, content_rowid=rowid)`,
			`CREATE TRIGGER records_ai AFTER INSERT ON records BEGIN
				INSERT INTO records_fts(rowid, topic, content) VALUES (new.rowid, new.topic, new.content);
			END`,
			`CREATE TRIGGER records_ad AFTER DELETE ON records BEGIN
				INSERT INTO records_fts(records_fts, rowid, topic, content) VALUES('delete', old.rowid, old.topic, old.content);
			END`,
			`CREATE TRIGGER records_au AFTER UPDATE ON records BEGIN
				INSERT INTO records_fts(records_fts, rowid, topic, content) VALUES('delete', old.rowid, old.topic, old.content);
				INSERT INTO records_fts(rowid, topic, content) VALUES (new.rowid, new.topic, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Add stores one generation result. A missing ID or timestamp is filled
// in before the insert.
func (s *Store) Add(ctx context.Context, rec *types.GenerationRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (id, kind, topic, platform, length, period, count, model, content, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Kind), rec.Topic, rec.Platform, rec.Length,
		rec.Period, rec.Count, rec.Model, rec.Content,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting record %s: %w", rec.ID, err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

func scanRecord(rows *sql.Rows) (types.GenerationRecord, error) {
	var (
		rec       types.GenerationRecord
		kind      string
		createdAt string
		rank      float64
	)

	if err := rows.Scan(
		&rec.ID, &kind, &rec.Topic, &rec.Platform, &rec.Length,
		&rec.Period, &rec.Count, &rec.Model, &rec.Content, &createdAt, &rank,
	); err != nil {
		return types.GenerationRecord{}, fmt.Errorf("scanning row: %w", err)
	}

	rec.Kind = types.GenerationKind(kind)
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return types.GenerationRecord{}, fmt.Errorf("parsing timestamp %q: %w", createdAt, err)
	}
	rec.CreatedAt = ts

	return rec, nil
}
