// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package telemetry

import (
	"sync"

	"github.com/solemate/solemate-tui/internal/cloud"
)

// UsageTracker accumulates per-call cost and token accounting for the
// session. Totals are monotonically non-decreasing. Safe for
// concurrent use.
type UsageTracker struct {
	mu         sync.Mutex
	totalCost  float64
	totalCalls int
	lastCall   *cloud.CallStats
}

// NewUsageTracker creates an empty tracker.
func NewUsageTracker() *UsageTracker {
	return &UsageTracker{}
}

// Record folds one call's stats into the running totals.
func (t *UsageTracker) Record(stats cloud.CallStats) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalCost += stats.TotalCost
	t.totalCalls++
	s := stats
	t.lastCall = &s
}

// Snapshot is a point-in-time copy of the running totals. LastCall is
// nil before the first recorded call.
type Snapshot struct {
	TotalCost  float64
	TotalCalls int
	LastCall   *cloud.CallStats
}

// Snapshot returns a copy of the current totals.
func (t *UsageTracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := Snapshot{
		TotalCost:  t.totalCost,
		TotalCalls: t.totalCalls,
	}
	if t.lastCall != nil {
		s := *t.lastCall
		snap.LastCall = &s
	}
	return snap
}
