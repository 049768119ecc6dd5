// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runlog persists pipeline runs in a SQLite database so batch
// results survive the process and can be listed or exported later.
package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nlp4re/orkgforms/pkg/types"
)

const dbFile = "runs.db"

// Store manages the run log SQLite database.
type Store struct {
	db     *sql.DB
	logDir string
}

// NewStore opens or creates the run database at logDir/runs.db,
// creating the schema when missing.
func NewStore(cfg types.RunLogConfig) (*Store, error) {
	logDir := cfg.LogDir
	if logDir == "" {
		logDir = "run_logs"
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating run log directory: %w", err)
	}

	dbPath := filepath.Join(logDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening run database: %w", err)
	}

	s := &Store{db: db, logDir: logDir}
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		pdf_path TEXT NOT NULL,
		json_path TEXT,
		instance_id TEXT,
		status TEXT NOT NULL,
		error TEXT,
		started_at TEXT NOT NULL,
		finished_at TEXT
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Begin records a new pending run for the PDF and returns it.
func (s *Store) Begin(ctx context.Context, pdfPath string) (types.Run, error) {
	run := types.Run{
		ID:        uuid.NewString(),
		PDFPath:   pdfPath,
		Status:    types.RunPending,
		StartedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, pdf_path, status, started_at) VALUES (?, ?, ?, ?)`,
		run.ID, run.PDFPath, string(run.Status), run.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return types.Run{}, fmt.Errorf("recording run: %w", err)
	}
	return run, nil
}

// MarkExtracted records that extraction produced the JSON document.
func (s *Store) MarkExtracted(ctx context.Context, runID, jsonPath string) error {
	return s.update(ctx,
		`UPDATE runs SET json_path = ?, status = ? WHERE id = ?`,
		jsonPath, string(types.RunExtracted), runID)
}

// MarkCreated records the created ORKG instance and finishes the run.
func (s *Store) MarkCreated(ctx context.Context, runID, instanceID string) error {
	return s.update(ctx,
		`UPDATE runs SET instance_id = ?, status = ?, finished_at = ? WHERE id = ?`,
		instanceID, string(types.RunCreated), now(), runID)
}

// MarkFailed records a failure message and finishes the run.
func (s *Store) MarkFailed(ctx context.Context, runID, message string) error {
	return s.update(ctx,
		`UPDATE runs SET error = ?, status = ?, finished_at = ? WHERE id = ?`,
		message, string(types.RunFailed), now(), runID)
}

func (s *Store) update(ctx context.Context, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("no run with ID %s", args[len(args)-1])
	}
	return nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// List returns all runs, most recent first.
func (s *Store) List(ctx context.Context) ([]types.Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, pdf_path, json_path, instance_id, status, error, started_at, finished_at
		 FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var run types.Run
		var jsonPath, instanceID, errMsg, startedAt, finishedAt sql.NullString
		var status string

		if err := rows.Scan(&run.ID, &run.PDFPath, &jsonPath, &instanceID,
			&status, &errMsg, &startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}

		run.JSONPath = jsonPath.String
		run.InstanceID = instanceID.String
		run.Status = types.RunStatus(status)
		run.Error = errMsg.String
		run.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt.String)
		if finishedAt.Valid {
			run.FinishedAt, _ = time.Parse(time.RFC3339Nano, finishedAt.String)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
