// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package contextscore adjusts candidate confidence based on keywords found
// in a symmetric text window around the candidate span.
package contextscore

import (
	"strings"

	"idscan/internal/detector"
)

// Policy selects how keyword hits update a candidate's score.
type Policy int

const (
	// PolicyAdditive adds a boost when a keyword is found and optionally
	// decays the score when none is.
	PolicyAdditive Policy = iota

	// PolicyOverride discards the pattern's base score entirely and sets a
	// fixed score per keyword tier.
	PolicyOverride

	// PolicyMultiplicative multiplies the score down when a discouraging
	// keyword is present, and otherwise behaves additively on positive hits.
	PolicyMultiplicative
)

// DefaultWindow is the window width used when a recognizer does not declare
// one.
const DefaultWindow = 50

// OverrideScores holds the fixed scores for the OVERRIDE policy tiers.
// Secondary keywords model weaker corroboration (for example US state names
// near a driver's-license number).
type OverrideScores struct {
	Both      float64 // primary and secondary keyword present
	Keyword   float64 // primary keyword only
	Secondary float64 // secondary keyword only
	None      float64 // no keyword in the window
}

// Scorer applies a context policy to candidates. The scorer never changes a
// candidate's span, only its score and context info.
type Scorer struct {
	// Window is the number of characters inspected before and after the span.
	Window int

	Policy Policy

	// Keywords are matched case-insensitively inside the window.
	Keywords          []string
	SecondaryKeywords []string
	NegativeKeywords  []string

	// Additive policy parameters. Decay of 0 is treated as 1.0 (no penalty).
	Boost float64
	Decay float64

	// Multiplicative policy parameter applied on negative keyword hits.
	NegativeFactor float64

	Override OverrideScores
}

// Score returns the candidate with its score adjusted per the policy.
func (s *Scorer) Score(text string, c detector.Candidate) detector.Candidate {
	window := s.Window
	if window <= 0 {
		window = DefaultWindow
	}

	before := c.Start - window
	if before < 0 {
		before = 0
	}
	after := c.End + window
	if after > len(text) {
		after = len(text)
	}

	c.Context.BeforeText = text[before:c.Start]
	c.Context.AfterText = text[c.End:after]
	lowered := strings.ToLower(text[before:after])

	c.Context.PositiveKeywords = found(lowered, s.Keywords)
	c.Context.NegativeKeywords = found(lowered, s.NegativeKeywords)
	positive := len(c.Context.PositiveKeywords) > 0
	negative := len(c.Context.NegativeKeywords) > 0
	secondary := len(found(lowered, s.SecondaryKeywords)) > 0

	switch s.Policy {
	case PolicyOverride:
		switch {
		case positive && secondary:
			c.Score = s.Override.Both
		case positive:
			c.Score = s.Override.Keyword
		case secondary:
			c.Score = s.Override.Secondary
		default:
			c.Score = s.Override.None
		}

	case PolicyMultiplicative:
		if negative {
			c.Score *= s.NegativeFactor
		} else if positive {
			c.Score += s.Boost
		}

	default: // PolicyAdditive
		if positive {
			c.Score += s.Boost
		} else if s.Decay > 0 {
			c.Score *= s.Decay
		}
	}

	c.Score = detector.ClampScore(c.Score)
	return c
}

func found(window string, keywords []string) []string {
	var hits []string
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(window, strings.ToLower(kw)) {
			hits = append(hits, kw)
		}
	}
	return hits
}
