// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"idscan/internal/detector"
	"idscan/internal/formatters"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

type jsonResult struct {
	EntityType string  `json:"entity_type"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Score      float64 `json:"score"`
	Level      string  `json:"level"`
	Match      string  `json:"match,omitempty"`
}

func (f *Formatter) Format(results []detector.Result, text string, options formatters.FormatterOptions) (string, error) {
	filtered := formatters.FilterByConfidence(results, options)
	if len(filtered) == 0 {
		return "[]", nil
	}

	out := make([]jsonResult, 0, len(filtered))
	for _, r := range filtered {
		jr := jsonResult{
			EntityType: r.EntityType,
			Start:      r.Start,
			End:        r.End,
			Score:      r.Score,
			Level:      formatters.ConfidenceLevel(r.Score),
		}
		if options.ShowMatch && r.Start >= 0 && r.End <= len(text) && r.Start < r.End {
			jr.Match = text[r.Start:r.End]
		}
		out = append(out, jr)
	}

	jsonData, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}
	return string(jsonData), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
