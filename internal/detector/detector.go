// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// ContextInfo stores contextual information about a candidate span.
type ContextInfo struct {
	// Text before and after the span, bounded by the recognizer's window
	BeforeText string
	AfterText  string

	// Contextual keywords found inside the window
	PositiveKeywords []string // Keywords that increase confidence
	NegativeKeywords []string // Keywords that decrease confidence
}

// Candidate represents an unvalidated or partially validated pattern match
// flowing through the recognition pipeline. The checksum and context stages
// mutate Score in place; the resolver consumes and possibly drops it.
type Candidate struct {
	EntityType  string
	Start       int
	End         int
	Score       float64
	MatchedText string
	Pattern     string // Name of the pattern that produced this candidate
	Context     ContextInfo
}

// Overlaps reports whether the two half-open spans [Start, End) intersect.
func (c Candidate) Overlaps(other Candidate) bool {
	return c.Start < other.End && other.Start < c.End
}

// Result is the externally visible, finalized form of a Candidate.
type Result struct {
	EntityType string  `json:"entity_type"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Score      float64 `json:"score"`
}

// Span is an auxiliary entity span supplied by an external collaborator
// (for example a person name detected by an NLP engine). Spans participate
// in quorum counting for recognizers that declare auxiliary entities.
type Span struct {
	EntityType string  `json:"entity_type"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Score      float64 `json:"score"`
}

// ClampScore bounds a confidence score to [0.0, 1.0].
func ClampScore(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	if score < 0.0 {
		return 0.0
	}
	return score
}
