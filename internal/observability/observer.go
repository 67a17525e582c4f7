// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides operation timing, structured debug output,
// and Prometheus metrics for the analysis pipeline.
package observability

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
)

// StandardObserver implements observability for all components
type StandardObserver struct {
	level         ObservabilityLevel
	writer        io.Writer
	DebugObserver *DebugObserver // Reference to debug observer when in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates observability component
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation, correlationID string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		duration := time.Since(start)

		data := OperationData{
			Component:     component,
			Operation:     operation,
			CorrelationID: correlationID,
			DurationMs:    duration.Milliseconds(),
			Success:       success,
			Metadata:      metadata,
		}

		o.LogOperation(data)
	}
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data OperationData) {
	if o.level == ObservabilityOff {
		return
	}

	if data.CorrelationID == "" {
		data.CorrelationID = uuid.NewString()
	}

	// Only log JSON in debug mode
	if o.level == ObservabilityDebug {
		json.NewEncoder(o.writer).Encode(data)
	}
}

// OperationData for all components
type OperationData struct {
	Component     string                 `json:"component"`
	Operation     string                 `json:"operation"`
	CorrelationID string                 `json:"correlation_id"`
	EntityType    string                 `json:"entity_type,omitempty"`
	DurationMs    int64                  `json:"duration_ms,omitempty"`
	Success       bool                   `json:"success"`
	Error         string                 `json:"error,omitempty"`
	TextLength    int                    `json:"text_length,omitempty"`
	ResultCount   int                    `json:"result_count,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}
