// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package telemetry

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/solemate/solemate-tui/internal/cloud"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := OpenHistory(filepath.Join(t.TempDir(), "usage.db"))
	if err != nil {
		t.Fatalf("OpenHistory() error = %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func TestHistoryAppendAndRecent(t *testing.T) {
	h := openTestHistory(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		err := h.Append("claude-3-7-sonnet-20250219", cloud.CallStats{
			RequestedAt:  base.Add(time.Duration(i) * time.Minute),
			InputTokens:  100 * (i + 1),
			OutputTokens: 50,
			TotalCost:    0.01,
			Latency:      1200 * time.Millisecond,
		})
		if err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	records, err := h.Recent(2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	// Newest first
	if records[0].InputTokens != 300 || records[1].InputTokens != 200 {
		t.Errorf("records = %+v, want newest first", records)
	}
	if records[0].Model != "claude-3-7-sonnet-20250219" {
		t.Errorf("Model = %q", records[0].Model)
	}
	if records[0].Latency != 1200*time.Millisecond {
		t.Errorf("Latency = %v", records[0].Latency)
	}
}

func TestHistoryTotals(t *testing.T) {
	h := openTestHistory(t)

	calls, cost, err := h.Totals()
	if err != nil || calls != 0 || cost != 0 {
		t.Fatalf("empty Totals() = %d/%v/%v", calls, cost, err)
	}

	h.Append("m", cloud.CallStats{RequestedAt: time.Now(), TotalCost: 0.02})
	h.Append("m", cloud.CallStats{RequestedAt: time.Now(), TotalCost: 0.03})

	calls, cost, err = h.Totals()
	if err != nil {
		t.Fatalf("Totals() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if diff := cost - 0.05; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("cost = %v, want 0.05", cost)
	}
}

func TestHistoryReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "usage.db")

	h, err := OpenHistory(path)
	if err != nil {
		t.Fatal(err)
	}
	h.Append("m", cloud.CallStats{RequestedAt: time.Now(), TotalCost: 0.01})
	h.Close()

	h2, err := OpenHistory(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer h2.Close()

	calls, _, err := h2.Totals()
	if err != nil || calls != 1 {
		t.Errorf("after reopen: calls = %d, err = %v, want 1/nil", calls, err)
	}
}
