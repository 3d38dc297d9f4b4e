// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import "time"

// CallStats is per-call usage accounting. Costs are in US dollars.
type CallStats struct {
	RequestedAt  time.Time
	Latency      time.Duration
	InputTokens  int
	OutputTokens int
	InputCost    float64
	OutputCost   float64
	TotalCost    float64
}

// modelPricing is dollars per 1K tokens.
type modelPricing struct {
	Prompt     float64
	Completion float64
}

var pricingTable = map[string]modelPricing{
	"claude-3-7-sonnet-20250219": {Prompt: 0.003, Completion: 0.015},
	"claude-3-5-sonnet-20241022": {Prompt: 0.003, Completion: 0.015},
	"claude-3-5-haiku-20241022":  {Prompt: 0.0008, Completion: 0.004},
	"claude-3-opus-20240229":     {Prompt: 0.015, Completion: 0.075},
}

// defaultPricing applies to models missing from the table.
var defaultPricing = modelPricing{Prompt: 0.003, Completion: 0.015}

func computeStats(modelName string, promptTokens, completionTokens int, start time.Time) CallStats {
	p, ok := pricingTable[modelName]
	if !ok {
		p = defaultPricing
	}

	in := float64(promptTokens) / 1000 * p.Prompt
	out := float64(completionTokens) / 1000 * p.Completion

	return CallStats{
		RequestedAt:  start,
		Latency:      time.Since(start),
		InputTokens:  promptTokens,
		OutputTokens: completionTokens,
		InputCost:    in,
		OutputCost:   out,
		TotalCost:    in + out,
	}
}
