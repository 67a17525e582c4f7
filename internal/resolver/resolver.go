// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resolver merges and deduplicates scored candidates into the final
// result set for a single recognizer. Resolution is deterministic: any input
// order of the same candidate set yields an identical result set.
package resolver

import (
	"sort"

	"idscan/internal/detector"
)

// Options carries the per-recognizer resolution rules.
type Options struct {
	// MinKeepScore drops candidates scoring at or below this threshold.
	// Candidates with score <= 0 are always dropped.
	MinKeepScore float64

	// MinHitQuorum, when positive, discards the entire result set unless at
	// least this many merged candidates survive.
	MinHitQuorum int
}

// Resolve applies threshold filtering, deterministic ordering, sweep-merge
// of overlapping spans, and the optional hit quorum.
func Resolve(candidates []detector.Candidate, opts Options) []detector.Result {
	kept := make([]detector.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Score <= 0 || c.Score < opts.MinKeepScore {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return nil
	}

	// Earlier start wins before higher score; remaining fields only break
	// ties so resolution is order-independent.
	sort.Slice(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Pattern < b.Pattern
	})

	// Sweep left to right; an overlapping candidate widens the kept span and
	// the kept span retains the higher score.
	merged := kept[:1]
	for _, c := range kept[1:] {
		last := &merged[len(merged)-1]
		if c.Start < last.End {
			if c.End > last.End {
				last.End = c.End
			}
			if c.Score > last.Score {
				last.Score = c.Score
			}
			continue
		}
		merged = append(merged, c)
	}

	if opts.MinHitQuorum > 0 && len(merged) < opts.MinHitQuorum {
		return nil
	}

	results := make([]detector.Result, len(merged))
	for i, c := range merged {
		results[i] = detector.Result{
			EntityType: c.EntityType,
			Start:      c.Start,
			End:        c.End,
			Score:      detector.ClampScore(c.Score),
		}
	}
	return results
}
