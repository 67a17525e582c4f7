// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package recognizer defines the declarative per-family recognizer
// configuration, the compiled recognizer pipeline, and the registry that
// holds one recognizer per (entity type, language) pair.
package recognizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"idscan/internal/checksum"
	"idscan/internal/contextscore"
	"idscan/internal/detector"
	"idscan/internal/matcher"
	"idscan/internal/resolver"
)

// PatternConfig declares one regex pattern of an identifier family.
type PatternConfig struct {
	Name      string
	Regex     string
	BaseScore float64

	// Checksum, when set, overrides the recognizer-level checksum for
	// candidates produced by this pattern. Used by multi-signal families
	// where only some patterns carry a check digit.
	Checksum checksum.Func
}

// Config is the immutable declaration of one identifier family. A Config is
// compiled into a Recognizer at registration; configs share no mutable
// state afterwards.
type Config struct {
	// Name identifies the recognizer; defaults to EntityType.
	Name string

	EntityType string

	// Language restricts the recognizer to a single analysis language.
	// Empty means language-agnostic.
	Language string

	Patterns []PatternConfig

	// Checksum validates delimiter-stripped matches. Nil skips validation.
	Checksum checksum.Func

	// ChecksumPassScore, when positive, replaces the pattern base score
	// after a successful checksum. Checksum failure always zeroes the score.
	ChecksumPassScore float64

	// StripChars are removed from the matched text before checksum
	// validation and post-filtering.
	StripChars string

	// PostFilter rejects matches that pass pattern and checksum stages but
	// are structurally implausible (e.g. reserved SSN blocks). Returning
	// false drops the candidate.
	PostFilter func(string) bool

	ContextKeywords   []string
	SecondaryKeywords []string
	NegativeKeywords  []string
	ContextWindow     int
	ContextPolicy     contextscore.Policy
	ContextBoost      float64
	NoContextDecay    float64
	NegativeFactor    float64
	OverrideScores    contextscore.OverrideScores

	MinKeepScore float64
	MinHitQuorum int

	// AuxiliaryEntities names externally supplied entity spans (for example
	// person names from an NLP engine) that count toward the hit quorum.
	AuxiliaryEntities []string

	// SuppressOtherTypes declares cross-type suppression: final results of
	// this recognizer suppress overlapping lower-scoring results of other
	// entity types at the engine merge step.
	SuppressOtherTypes bool
}

// Recognizer is a compiled, immutable identifier-family pipeline.
type Recognizer struct {
	cfg      Config
	patterns []matcher.Pattern

	// pattern-level checksum functions keyed by pattern name
	patternChecksum map[string]checksum.Func

	scorer    *contextscore.Scorer
	auxiliary map[string]bool
}

// New compiles a Config. All configuration errors (missing fields, invalid
// regex syntax) surface here so a broken recognizer can never be activated.
func New(cfg Config) (*Recognizer, error) {
	if cfg.EntityType == "" {
		return nil, errors.New("recognizer entity type is required")
	}
	if len(cfg.Patterns) == 0 {
		return nil, fmt.Errorf("recognizer %s: at least one pattern is required", cfg.EntityType)
	}
	if cfg.Name == "" {
		cfg.Name = cfg.EntityType
	}

	r := &Recognizer{
		cfg:             cfg,
		patternChecksum: make(map[string]checksum.Func),
		auxiliary:       make(map[string]bool),
	}

	for _, pc := range cfg.Patterns {
		p, err := matcher.Compile(pc.Name, pc.Regex, pc.BaseScore)
		if err != nil {
			return nil, fmt.Errorf("recognizer %s: %w", cfg.EntityType, err)
		}
		r.patterns = append(r.patterns, p)
		if pc.Checksum != nil {
			r.patternChecksum[pc.Name] = pc.Checksum
		}
	}

	r.scorer = &contextscore.Scorer{
		Window:            cfg.ContextWindow,
		Policy:            cfg.ContextPolicy,
		Keywords:          cfg.ContextKeywords,
		SecondaryKeywords: cfg.SecondaryKeywords,
		NegativeKeywords:  cfg.NegativeKeywords,
		Boost:             cfg.ContextBoost,
		Decay:             cfg.NoContextDecay,
		NegativeFactor:    cfg.NegativeFactor,
		Override:          cfg.OverrideScores,
	}

	for _, entity := range cfg.AuxiliaryEntities {
		r.auxiliary[entity] = true
	}

	return r, nil
}

// Name returns the recognizer's name.
func (r *Recognizer) Name() string { return r.cfg.Name }

// EntityType returns the entity type this recognizer produces.
func (r *Recognizer) EntityType() string { return r.cfg.EntityType }

// Language returns the supported language, empty for language-agnostic.
func (r *Recognizer) Language() string { return r.cfg.Language }

// SuppressesOtherTypes reports whether this recognizer declared cross-type
// suppression.
func (r *Recognizer) SuppressesOtherTypes() bool { return r.cfg.SuppressOtherTypes }

// SupportsLanguage reports whether the recognizer applies to the given
// analysis language (case-insensitive; empty recognizer language matches
// everything).
func (r *Recognizer) SupportsLanguage(language string) bool {
	return r.cfg.Language == "" || strings.EqualFold(r.cfg.Language, language)
}

// Analyze runs the full pipeline for this recognizer: pattern matching,
// checksum validation, post-filtering, context scoring, and overlap
// resolution. Auxiliary spans matching the recognizer's declared auxiliary
// entities join the candidate set before resolution so they count toward
// the hit quorum.
func (r *Recognizer) Analyze(ctx context.Context, text string, m *matcher.Matcher, aux []detector.Span) ([]detector.Result, error) {
	candidates, err := m.Match(ctx, r.cfg.EntityType, text, r.patterns)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		c := &candidates[i]
		stripped := r.strip(c.MatchedText)

		if fn := r.checksumFor(c.Pattern); fn != nil {
			if !fn(stripped) {
				c.Score = 0 // invalid checksum: dropped by the resolver
				continue
			}
			if r.cfg.ChecksumPassScore > 0 {
				c.Score = r.cfg.ChecksumPassScore
			}
		}

		if r.cfg.PostFilter != nil && !r.cfg.PostFilter(stripped) {
			c.Score = 0
			continue
		}

		*c = r.scorer.Score(text, *c)
	}

	for _, sp := range aux {
		if !r.auxiliary[sp.EntityType] {
			continue
		}
		if sp.Start < 0 || sp.End > len(text) || sp.Start >= sp.End {
			continue
		}
		candidates = append(candidates, detector.Candidate{
			EntityType:  sp.EntityType,
			Start:       sp.Start,
			End:         sp.End,
			Score:       detector.ClampScore(sp.Score),
			MatchedText: text[sp.Start:sp.End],
			Pattern:     "auxiliary",
		})
	}

	return resolver.Resolve(candidates, resolver.Options{
		MinKeepScore: r.cfg.MinKeepScore,
		MinHitQuorum: r.cfg.MinHitQuorum,
	}), nil
}

func (r *Recognizer) checksumFor(pattern string) checksum.Func {
	if fn, ok := r.patternChecksum[pattern]; ok {
		return fn
	}
	return r.cfg.Checksum
}

func (r *Recognizer) strip(matched string) string {
	if r.cfg.StripChars == "" {
		return matched
	}
	return strings.Map(func(ch rune) rune {
		if strings.ContainsRune(r.cfg.StripChars, ch) {
			return -1
		}
		return ch
	}, matched)
}
