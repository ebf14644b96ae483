package catalog

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx.
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// RecordRun inserts a run row. A missing ID is filled with a fresh UUID;
// the assigned ID is returned.
func RecordRun(db DBExecutor, run Run) (string, error) {
	if strings.TrimSpace(run.Corpus) == "" {
		return "", fmt.Errorf("run corpus must be non-empty")
	}
	if strings.TrimSpace(run.SelectorKind) == "" {
		return "", fmt.Errorf("run selector kind must be non-empty")
	}
	id := run.ID
	if id == "" {
		id = uuid.NewString()
	}
	_, err := db.Exec(
		`INSERT INTO runs (id, corpus, selector_kind, selector_value, pair_count, train_count, test_count, output_dir)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, run.Corpus, run.SelectorKind, run.SelectorValue,
		run.PairCount, run.TrainCount, run.TestCount, run.OutputDir,
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return id, nil
}

// ListRuns returns all recorded runs, most recent first.
func ListRuns(db DBExecutor) ([]Run, error) {
	rows, err := db.Query(
		`SELECT id, corpus, selector_kind, selector_value, pair_count, train_count, test_count, output_dir, created_at
		 FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Corpus, &r.SelectorKind, &r.SelectorValue,
			&r.PairCount, &r.TrainCount, &r.TestCount, &r.OutputDir, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
