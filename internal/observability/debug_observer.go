// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DebugObserver writes a human-readable trace of the analysis pipeline
// alongside the JSON operation log: which stages ran, how long each took,
// and how many results every recognizer contributed. The output is meant
// for a person chasing a misbehaving recognizer, not for machines.
type DebugObserver struct {
	*StandardObserver
	depth int
}

// NewDebugObserver creates a debug-level observer that traces pipeline
// stages. Components holding the embedded StandardObserver can reach the
// tracer back through its DebugObserver field.
func NewDebugObserver(writer io.Writer) *DebugObserver {
	d := &DebugObserver{
		StandardObserver: NewStandardObserver(ObservabilityDebug, writer),
	}
	d.StandardObserver.DebugObserver = d
	return d
}

// StartStage begins a pipeline stage and returns its completion function.
// Stages nest: recognizer traces emitted during an analysis indent under
// the engine's analyze stage.
func (d *DebugObserver) StartStage(component, stage, subject string) func(success bool, details string) {
	start := time.Now()
	fmt.Fprintf(d.writer, "%s> %s %s: %s\n", d.pad(), component, stage, subject)
	d.depth++

	return func(success bool, details string) {
		d.depth--
		outcome := "done"
		if !success {
			outcome = "FAILED"
		}
		fmt.Fprintf(d.writer, "%s< %s %s %s in %dms %s\n",
			d.pad(), component, stage, outcome, time.Since(start).Milliseconds(), details)
	}
}

// TraceRecognizer records one recognizer's contribution to an analysis.
func (d *DebugObserver) TraceRecognizer(entityType, language string, hits int) {
	fmt.Fprintf(d.writer, "%s. recognizer %s lang=%s hits=%d\n", d.pad(), entityType, language, hits)
}

// LogDetail records a free-form note inside the current stage.
func (d *DebugObserver) LogDetail(component, detail string) {
	fmt.Fprintf(d.writer, "%s. %s: %s\n", d.pad(), component, detail)
}

func (d *DebugObserver) pad() string {
	return strings.Repeat("  ", d.depth)
}
