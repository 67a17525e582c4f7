// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package matcher runs compiled recognizer patterns against input text and
// produces raw candidates. Go's regexp engine is RE2-based and runs in time
// linear in the input, which rules out catastrophic backtracking; a
// wall-clock budget per pattern is still enforced so that pathological
// pattern/input combinations stay observable and bounded.
package matcher

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"idscan/internal/detector"
)

// DefaultBudget is the per-pattern execution budget applied when no budget
// is configured.
const DefaultBudget = 2 * time.Second

// Pattern is a compiled recognizer pattern with its base confidence score.
type Pattern struct {
	Name      string
	BaseScore float64
	re        *regexp.Regexp
}

// Compile builds a Pattern, failing fast on invalid regex syntax so broken
// configuration surfaces at recognizer construction, not at analysis time.
func Compile(name, expr string, baseScore float64) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern %q: %w", name, err)
	}
	return Pattern{Name: name, BaseScore: detector.ClampScore(baseScore), re: re}, nil
}

// Matcher executes pattern sets with a per-pattern time budget.
type Matcher struct {
	budget time.Duration

	// onBudgetExceeded, when non-nil, is called once per dropped pattern.
	onBudgetExceeded func(entityType, pattern string)
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithBudget sets the per-pattern execution budget.
func WithBudget(budget time.Duration) Option {
	return func(m *Matcher) {
		if budget > 0 {
			m.budget = budget
		}
	}
}

// WithBudgetExceededHook registers a callback invoked whenever a pattern
// exceeds its budget and its candidates are dropped.
func WithBudgetExceededHook(hook func(entityType, pattern string)) Option {
	return func(m *Matcher) { m.onBudgetExceeded = hook }
}

// New creates a Matcher.
func New(opts ...Option) *Matcher {
	m := &Matcher{budget: DefaultBudget}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match runs every pattern against text and returns one candidate per
// non-overlapping match, scored with the pattern's base score. Outputs from
// different patterns are concatenated, not merged. A pattern that overruns
// the budget contributes no candidates; remaining patterns still run. The
// context is checked between patterns so an abandoned analysis stops early.
func (m *Matcher) Match(ctx context.Context, entityType, text string, patterns []Pattern) ([]detector.Candidate, error) {
	if text == "" {
		return nil, nil
	}

	var candidates []detector.Candidate
	for _, p := range patterns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		locs := p.re.FindAllStringIndex(text, -1)
		if m.budget > 0 && time.Since(start) > m.budget {
			if m.onBudgetExceeded != nil {
				m.onBudgetExceeded(entityType, p.Name)
			}
			continue
		}

		for _, loc := range locs {
			if loc[0] == loc[1] {
				continue // empty matches carry no information
			}
			candidates = append(candidates, detector.Candidate{
				EntityType:  entityType,
				Start:       loc[0],
				End:         loc[1],
				Score:       p.BaseScore,
				MatchedText: text[loc[0]:loc[1]],
				Pattern:     p.Name,
			})
		}
	}

	return candidates, nil
}
