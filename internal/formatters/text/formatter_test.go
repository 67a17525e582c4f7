// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"idscan/internal/detector"
	"idscan/internal/formatters"
)

func TestFormatNoResults(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(nil, "some text", formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if out != "No identifiers found." {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestFormatSummary(t *testing.T) {
	f := NewFormatter()
	text := "ssn 123-45-6789"
	results := []detector.Result{
		{EntityType: "US_SSN_ITIN", Start: 4, End: 15, Score: 1.0},
	}

	out, err := f.Format(results, text, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "US_SSN_ITIN") {
		t.Errorf("output missing entity type: %q", out)
	}
	if !strings.Contains(out, "[HIGH  ]") {
		t.Errorf("output missing confidence level: %q", out)
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Errorf("matched text should be redacted by default: %q", out)
	}
	if strings.Contains(out, "123-45-6789") {
		t.Errorf("matched text leaked without show-match: %q", out)
	}
}

func TestFormatShowMatch(t *testing.T) {
	f := NewFormatter()
	text := "ssn 123-45-6789"
	results := []detector.Result{
		{EntityType: "US_SSN_ITIN", Start: 4, End: 15, Score: 1.0},
	}

	out, err := f.Format(results, text, formatters.FormatterOptions{NoColor: true, ShowMatch: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "123-45-6789") {
		t.Errorf("matched text missing with show-match: %q", out)
	}
}

func TestFormatConfidenceFilter(t *testing.T) {
	f := NewFormatter()
	results := []detector.Result{
		{EntityType: "US_SSN_ITIN", Start: 0, End: 11, Score: 0.425},
	}

	out, err := f.Format(results, "123-45-6789", formatters.FormatterOptions{
		NoColor:         true,
		ConfidenceLevel: map[string]bool{"high": true},
	})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "No identifiers found at the specified confidence levels.") {
		t.Errorf("low-confidence result should be filtered: %q", out)
	}
}
