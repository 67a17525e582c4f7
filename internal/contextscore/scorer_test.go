// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package contextscore

import (
	"testing"

	"idscan/internal/detector"
)

func candidateAt(text, match string, score float64) detector.Candidate {
	start := 0
	for i := 0; i+len(match) <= len(text); i++ {
		if text[i:i+len(match)] == match {
			start = i
			break
		}
	}
	return detector.Candidate{
		EntityType:  "TEST_ID",
		Start:       start,
		End:         start + len(match),
		Score:       score,
		MatchedText: match,
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}

func TestAdditiveBoost(t *testing.T) {
	s := &Scorer{
		Policy:   PolicyAdditive,
		Window:   50,
		Keywords: []string{"national id"},
		Boost:    0.3,
	}

	text := "the national ID is 123456789 on file"
	got := s.Score(text, candidateAt(text, "123456789", 0.7))
	if !almostEqual(got.Score, 1.0) {
		t.Errorf("score = %v, want 1.0", got.Score)
	}
	if len(got.Context.PositiveKeywords) != 1 {
		t.Errorf("positive keywords = %v, want one hit", got.Context.PositiveKeywords)
	}
}

func TestAdditiveDecayWithoutKeyword(t *testing.T) {
	s := &Scorer{
		Policy:   PolicyAdditive,
		Window:   50,
		Keywords: []string{"ssn"},
		Boost:    0.4,
		Decay:    0.5,
	}

	text := "row value 123456789 end"
	got := s.Score(text, candidateAt(text, "123456789", 0.8))
	if !almostEqual(got.Score, 0.4) {
		t.Errorf("score = %v, want 0.4", got.Score)
	}
}

func TestAdditiveNoDecayConfigured(t *testing.T) {
	s := &Scorer{
		Policy:   PolicyAdditive,
		Window:   50,
		Keywords: []string{"ssn"},
		Boost:    0.4,
	}

	text := "row value 123456789 end"
	got := s.Score(text, candidateAt(text, "123456789", 0.8))
	if !almostEqual(got.Score, 0.8) {
		t.Errorf("score = %v, want base score kept at 0.8", got.Score)
	}
}

func TestOverrideTiers(t *testing.T) {
	s := &Scorer{
		Policy:            PolicyOverride,
		Window:            50,
		Keywords:          []string{"license"},
		SecondaryKeywords: []string{"texas"},
		Override:          OverrideScores{Both: 1.0, Keyword: 0.75, Secondary: 0.5, None: 0.25},
	}

	cases := []struct {
		name string
		text string
		want float64
	}{
		{"keyword and secondary", "Texas license A1234567 issued", 1.0},
		{"keyword only", "license A1234567 issued", 0.75},
		{"secondary only", "Texas resident A1234567", 0.5},
		{"neither", "value A1234567 in row", 0.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Score(tc.text, candidateAt(tc.text, "A1234567", 0.5))
			if !almostEqual(got.Score, tc.want) {
				t.Errorf("score = %v, want %v", got.Score, tc.want)
			}
		})
	}
}

func TestMultiplicativeNegativeKeyword(t *testing.T) {
	s := &Scorer{
		Policy:           PolicyMultiplicative,
		Window:           50,
		Keywords:         []string{"credit card"},
		NegativeKeywords: []string{"tracking"},
		Boost:            0.15,
		NegativeFactor:   0.15,
	}

	text := "tracking number 4111111111111111 for the parcel"
	got := s.Score(text, candidateAt(text, "4111111111111111", 0.8))
	if !almostEqual(got.Score, 0.12) {
		t.Errorf("score = %v, want 0.12 (0.8 x 0.15)", got.Score)
	}
	if len(got.Context.NegativeKeywords) != 1 {
		t.Errorf("negative keywords = %v, want one hit", got.Context.NegativeKeywords)
	}
}

func TestMultiplicativePositiveBoost(t *testing.T) {
	s := &Scorer{
		Policy:           PolicyMultiplicative,
		Window:           50,
		Keywords:         []string{"credit card"},
		NegativeKeywords: []string{"tracking"},
		Boost:            0.15,
		NegativeFactor:   0.15,
	}

	text := "credit card 4111111111111111 on the account"
	got := s.Score(text, candidateAt(text, "4111111111111111", 0.8))
	if !almostEqual(got.Score, 0.95) {
		t.Errorf("score = %v, want 0.95", got.Score)
	}
}

func TestWindowBoundsAtTextEdges(t *testing.T) {
	s := &Scorer{
		Policy:   PolicyAdditive,
		Window:   300,
		Keywords: []string{"iban"},
		Boost:    0.3,
	}

	// Window larger than the text must not panic or read out of bounds.
	text := "IBAN GB82WEST12345698765432"
	got := s.Score(text, candidateAt(text, "GB82WEST12345698765432", 0.5))
	if !almostEqual(got.Score, 0.8) {
		t.Errorf("score = %v, want 0.8", got.Score)
	}
	if got.Context.BeforeText != "IBAN " {
		t.Errorf("before text = %q, want %q", got.Context.BeforeText, "IBAN ")
	}
	if got.Context.AfterText != "" {
		t.Errorf("after text = %q, want empty", got.Context.AfterText)
	}
}

func TestKeywordOutsideWindowIgnored(t *testing.T) {
	s := &Scorer{
		Policy:   PolicyAdditive,
		Window:   5,
		Keywords: []string{"passport"},
		Boost:    0.3,
		Decay:    0.5,
	}

	text := "passport number mentioned far away ........ 123456789"
	got := s.Score(text, candidateAt(text, "123456789", 0.6))
	if !almostEqual(got.Score, 0.3) {
		t.Errorf("score = %v, want 0.3 (keyword outside 5-char window)", got.Score)
	}
}

func TestScoreNeverChangesSpan(t *testing.T) {
	s := &Scorer{Policy: PolicyAdditive, Keywords: []string{"id"}, Boost: 0.2}
	text := "id 1234"
	in := candidateAt(text, "1234", 0.5)
	got := s.Score(text, in)
	if got.Start != in.Start || got.End != in.End {
		t.Errorf("span changed from [%d, %d) to [%d, %d)", in.Start, in.End, got.Start, got.End)
	}
}

func TestScoreClamped(t *testing.T) {
	s := &Scorer{Policy: PolicyAdditive, Keywords: []string{"id"}, Boost: 0.9}
	text := "id 1234"
	got := s.Score(text, candidateAt(text, "1234", 0.9))
	if !almostEqual(got.Score, 1.0) {
		t.Errorf("score = %v, want clamped to 1.0", got.Score)
	}
}
