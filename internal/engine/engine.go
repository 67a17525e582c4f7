// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package engine orchestrates recognizers over input text: it selects the
// applicable recognizers, fans their analysis out in parallel, and merges
// the per-recognizer results into one ordered, threshold-filtered set.
package engine

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"idscan/internal/detector"
	"idscan/internal/matcher"
	"idscan/internal/observability"
	"idscan/internal/recognizer"
)

// DefaultLanguage is assumed when a request does not name one.
const DefaultLanguage = "en"

// Request describes one analysis call.
type Request struct {
	Text     string
	Language string

	// Entities restricts analysis to the named entity types. Empty means
	// every registered entity type.
	Entities []string

	// ScoreThreshold drops results scoring below it. Zero keeps everything
	// the resolvers emitted.
	ScoreThreshold float64

	// CorrelationID ties log lines and the response to the caller's
	// request. Generated when empty.
	CorrelationID string

	// Auxiliary carries entity spans from external collaborators (for
	// example person names from an NLP engine) for recognizers that use
	// them as corroborating signals.
	Auxiliary []detector.Span
}

// Response is the outcome of one analysis call.
type Response struct {
	CorrelationID string            `json:"correlation_id"`
	Results       []detector.Result `json:"results"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithObserver attaches an observer for operation timing and debug output.
func WithObserver(obs *observability.StandardObserver) Option {
	return func(e *Engine) { e.observer = obs }
}

// WithPatternBudget overrides the per-pattern evaluation time budget.
func WithPatternBudget(budget time.Duration) Option {
	return func(e *Engine) { e.budget = budget }
}

// Engine runs registered recognizers over text. Safe for concurrent use.
type Engine struct {
	registry *recognizer.Registry
	matcher  *matcher.Matcher
	observer *observability.StandardObserver
	budget   time.Duration
}

// New creates an engine over a registry.
func New(reg *recognizer.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: reg,
		budget:   matcher.DefaultBudget,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.matcher = matcher.New(
		matcher.WithBudget(e.budget),
		matcher.WithBudgetExceededHook(func(entityType, pattern string) {
			observability.CountPatternBudgetExceeded(entityType, pattern)
			if e.observer != nil {
				e.observer.LogOperation(observability.OperationData{
					Component:  "matcher",
					Operation:  "pattern_budget_exceeded",
					EntityType: entityType,
					Metadata:   map[string]interface{}{"pattern": pattern},
				})
			}
		}),
	)
	return e
}

// Registry exposes the engine's recognizer registry for introspection
// surfaces (recognizer and entity listings).
func (e *Engine) Registry() *recognizer.Registry { return e.registry }

// Analyze runs every applicable recognizer over the request text and merges
// their results. Results are ordered by position; overlapping results of
// different entity types survive side by side unless a recognizer declared
// cross-type suppression.
func (e *Engine) Analyze(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	if req.CorrelationID == "" {
		req.CorrelationID = uuid.NewString()
	}
	if req.Language == "" {
		req.Language = DefaultLanguage
	}

	resp := &Response{CorrelationID: req.CorrelationID, Results: []detector.Result{}}
	if req.Text == "" {
		return resp, nil
	}

	var done func(bool, map[string]interface{})
	if e.observer != nil {
		done = e.observer.StartTiming("engine", "analyze", req.CorrelationID)
	}

	selected := e.registry.Select(req.Language, req.Entities)
	perRecognizer := make([][]detector.Result, len(selected))

	g, gctx := errgroup.WithContext(ctx)
	for i, rec := range selected {
		i, rec := i, rec
		g.Go(func() error {
			results, err := rec.Analyze(gctx, req.Text, e.matcher, req.Auxiliary)
			if err != nil {
				return err
			}
			perRecognizer[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if done != nil {
			done(false, map[string]interface{}{"error": err.Error()})
		}
		return nil, err
	}

	if e.observer != nil && e.observer.DebugObserver != nil {
		for i, rec := range selected {
			e.observer.DebugObserver.TraceRecognizer(rec.EntityType(), req.Language, len(perRecognizer[i]))
		}
	}

	suppressors := make(map[string]bool)
	for _, rec := range selected {
		if rec.SuppressesOtherTypes() {
			suppressors[rec.EntityType()] = true
		}
	}

	var merged []detector.Result
	for _, results := range perRecognizer {
		merged = append(merged, results...)
	}
	merged = suppress(merged, suppressors)

	for _, r := range merged {
		if r.Score < req.ScoreThreshold {
			continue
		}
		resp.Results = append(resp.Results, r)
	}

	sort.Slice(resp.Results, func(i, j int) bool {
		a, b := resp.Results[i], resp.Results[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.EntityType < b.EntityType
	})

	observability.ObserveAnalyzeDuration(time.Since(start))
	for _, r := range resp.Results {
		observability.CountResult(r.EntityType)
	}
	if done != nil {
		done(true, map[string]interface{}{
			"text_length":  len(req.Text),
			"result_count": len(resp.Results),
			"recognizers":  len(selected),
		})
	}
	return resp, nil
}

// suppress removes results overlapped by an equal-or-higher-scoring result
// of a suppressing entity type. Results of suppressing types are never
// removed by each other.
func suppress(results []detector.Result, suppressors map[string]bool) []detector.Result {
	if len(suppressors) == 0 {
		return results
	}

	kept := results[:0]
	for _, r := range results {
		if suppressors[r.EntityType] {
			kept = append(kept, r)
			continue
		}
		suppressed := false
		for _, s := range results {
			if !suppressors[s.EntityType] {
				continue
			}
			if s.Start < r.End && r.Start < s.End && s.Score >= r.Score {
				suppressed = true
				break
			}
		}
		if !suppressed {
			kept = append(kept, r)
		}
	}
	return kept
}
