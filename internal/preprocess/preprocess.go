// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocess turns input files into analyzable text. Plain text
// files pass through unchanged; PDFs go through text extraction.
package preprocess

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"idscan/internal/observability"
)

// Extractor converts files into text for analysis
type Extractor struct {
	observer *observability.StandardObserver

	// EnablePDF controls whether PDF extraction runs; when disabled PDF
	// files are rejected instead of extracted.
	EnablePDF bool
}

// NewExtractor creates an extractor with PDF support enabled
func NewExtractor() *Extractor {
	return &Extractor{EnablePDF: true}
}

// SetObserver sets the observability component
func (e *Extractor) SetObserver(observer *observability.StandardObserver) {
	e.observer = observer
}

// ExtractText reads the file and returns its text content
func (e *Extractor) ExtractText(filePath string) (string, error) {
	var done func(bool, map[string]interface{})
	if e.observer != nil {
		done = e.observer.StartTiming("preprocess", "extract_text", "")
	}

	text, err := e.extract(filePath)
	if done != nil {
		done(err == nil, map[string]interface{}{
			"file":        filepath.Base(filePath),
			"text_length": len(text),
		})
	}
	return text, err
}

func (e *Extractor) extract(filePath string) (string, error) {
	if strings.EqualFold(filepath.Ext(filePath), ".pdf") {
		if !e.EnablePDF {
			return "", fmt.Errorf("PDF extraction is disabled")
		}
		return extractPDFText(filePath)
	}
	return readPlainText(filePath)
}

// readPlainText reads a file as UTF-8 text, rejecting binary content
func readPlainText(filePath string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return "", fmt.Errorf("error reading file: %w", err)
	}

	// Strip UTF-8 BOM if present
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s does not contain valid UTF-8 text", filepath.Base(filePath))
	}
	return string(data), nil
}
