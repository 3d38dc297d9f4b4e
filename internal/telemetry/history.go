// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package telemetry

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/solemate/solemate-tui/internal/cloud"
)

// History is a persistent log of model calls backed by SQLite.
type History struct {
	db *sql.DB
}

// CallRecord is one persisted call.
type CallRecord struct {
	RequestedAt  time.Time
	Model        string
	InputTokens  int
	OutputTokens int
	TotalCost    float64
	Latency      time.Duration
}

const historySchema = `
CREATE TABLE IF NOT EXISTS calls (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	requested_at  INTEGER NOT NULL,
	model         TEXT NOT NULL,
	input_tokens  INTEGER NOT NULL,
	output_tokens INTEGER NOT NULL,
	total_cost    REAL NOT NULL,
	latency_ms    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_calls_requested_at ON calls(requested_at);
`

// OpenHistory opens (creating if needed) the call-history database at
// path. A single connection with WAL keeps concurrent readers happy
// without write contention.
func OpenHistory(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &History{db: db}, nil
}

// Append persists one call.
func (h *History) Append(modelName string, stats cloud.CallStats) error {
	_, err := h.db.Exec(
		`INSERT INTO calls (requested_at, model, input_tokens, output_tokens, total_cost, latency_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		stats.RequestedAt.UnixMilli(),
		modelName,
		stats.InputTokens,
		stats.OutputTokens,
		stats.TotalCost,
		stats.Latency.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("append call record: %w", err)
	}
	return nil
}

// Recent returns up to n calls, newest first.
func (h *History) Recent(n int) ([]CallRecord, error) {
	rows, err := h.db.Query(
		`SELECT requested_at, model, input_tokens, output_tokens, total_cost, latency_ms
		 FROM calls ORDER BY requested_at DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query call records: %w", err)
	}
	defer rows.Close()

	var records []CallRecord
	for rows.Next() {
		var rec CallRecord
		var requestedAt, latencyMS int64
		if err := rows.Scan(&requestedAt, &rec.Model, &rec.InputTokens,
			&rec.OutputTokens, &rec.TotalCost, &latencyMS); err != nil {
			return nil, fmt.Errorf("scan call record: %w", err)
		}
		rec.RequestedAt = time.UnixMilli(requestedAt)
		rec.Latency = time.Duration(latencyMS) * time.Millisecond
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Totals returns the all-time call count and accumulated cost.
func (h *History) Totals() (calls int, cost float64, err error) {
	row := h.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(total_cost), 0) FROM calls`)
	if err := row.Scan(&calls, &cost); err != nil {
		return 0, 0, fmt.Errorf("query totals: %w", err)
	}
	return calls, cost, nil
}

// Close closes the database.
func (h *History) Close() error {
	return h.db.Close()
}
