// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	content := "my ssn is 123-45-6789\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	text, err := NewExtractor().ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != content {
		t.Errorf("text = %q, want %q", text, content)
	}
}

func TestExtractStripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.txt")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFhello"), 0600); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	text, err := NewExtractor().ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != "hello" {
		t.Errorf("text = %q, want %q", text, "hello")
	}
}

func TestExtractRejectsBinary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binary.txt")
	if err := os.WriteFile(path, []byte{0xFF, 0xFE, 0x00, 0x01}, 0600); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	if _, err := NewExtractor().ExtractText(path); err == nil {
		t.Error("expected an error for non-UTF-8 content")
	}
}

func TestExtractMissingFile(t *testing.T) {
	if _, err := NewExtractor().ExtractText("/nonexistent/input.txt"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestExtractPDFDisabled(t *testing.T) {
	e := NewExtractor()
	e.EnablePDF = false

	if _, err := e.ExtractText("document.pdf"); err == nil {
		t.Error("expected an error when PDF extraction is disabled")
	}
}

func TestCleanText(t *testing.T) {
	in := "SSN:   123-45-6789\n\n\tname\t John\n"
	want := "SSN: 123-45-6789\nname John"
	if got := cleanText(in); got != want {
		t.Errorf("cleanText = %q, want %q", got, want)
	}
}
