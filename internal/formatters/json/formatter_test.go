// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	stdjson "encoding/json"
	"testing"

	"idscan/internal/detector"
	"idscan/internal/formatters"
)

func TestFormatEmpty(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(nil, "", formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if out != "[]" {
		t.Errorf("expected empty array, got %q", out)
	}
}

func TestFormatResults(t *testing.T) {
	f := NewFormatter()
	text := "iban GB82WEST12345698765432"
	results := []detector.Result{
		{EntityType: "EU_IBAN", Start: 5, End: 27, Score: 1.0},
	}

	out, err := f.Format(results, text, formatters.FormatterOptions{ShowMatch: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	var decoded []map[string]interface{}
	if err := stdjson.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(decoded))
	}
	if decoded[0]["entity_type"] != "EU_IBAN" {
		t.Errorf("entity_type = %v", decoded[0]["entity_type"])
	}
	if decoded[0]["level"] != "HIGH" {
		t.Errorf("level = %v", decoded[0]["level"])
	}
	if decoded[0]["match"] != "GB82WEST12345698765432" {
		t.Errorf("match = %v", decoded[0]["match"])
	}
}

func TestFormatRedactsByDefault(t *testing.T) {
	f := NewFormatter()
	results := []detector.Result{
		{EntityType: "EU_IBAN", Start: 0, End: 22, Score: 1.0},
	}

	out, err := f.Format(results, "GB82WEST12345698765432", formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	var decoded []map[string]interface{}
	if err := stdjson.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, leaked := decoded[0]["match"]; leaked {
		t.Error("match field should be omitted without show-match")
	}
}
