// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"sort"
	"strings"

	"idscan/internal/detector"
	"idscan/internal/formatters"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":   color.New(color.FgGreen),
			"yellow":  color.New(color.FgYellow),
			"red":     color.New(color.FgRed),
			"cyan":    color.New(color.FgCyan),
			"magenta": color.New(color.FgMagenta),
			"blue":    color.New(color.FgBlue),
			"white":   color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []detector.Result, text string, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	if len(results) == 0 {
		return "No identifiers found.", nil
	}

	filtered := formatters.FilterByConfidence(results, options)
	if len(filtered) == 0 {
		return "No identifiers found at the specified confidence levels.", nil
	}

	return f.formatResults(filtered, text, options), nil
}

func (f *Formatter) formatResults(results []detector.Result, text string, options formatters.FormatterOptions) string {
	var builder strings.Builder

	// Sort by confidence level first, position second
	f.sortResults(results)

	if !options.Verbose {
		f.appendHeaders(&builder, results, text, options)
	}

	for _, result := range results {
		level := formatters.ConfidenceLevel(result.Score)
		if options.Verbose {
			f.appendDetailedResult(&builder, result, level, text, options)
		} else {
			f.appendSummaryLine(&builder, result, level, text, options)
		}
	}

	return builder.String()
}

func (f *Formatter) sortResults(results []detector.Result) {
	rank := map[string]int{"HIGH": 0, "MEDIUM": 1, "LOW": 2}
	sort.SliceStable(results, func(i, j int) bool {
		ri, rj := rank[formatters.ConfidenceLevel(results[i].Score)], rank[formatters.ConfidenceLevel(results[j].Score)]
		if ri != rj {
			return ri < rj
		}
		return results[i].Start < results[j].Start
	})
}

// appendHeaders adds column headers to the string builder
func (f *Formatter) appendHeaders(builder *strings.Builder, results []detector.Result, text string, options formatters.FormatterOptions) {
	matchWidth := f.calculateMatchColumnWidth(results, text, options)
	headerStr := fmt.Sprintf("%-8s %-24s %-7s %-13s %s\n",
		"LEVEL", "ENTITY", "SCORE", "SPAN", "MATCH")
	if !options.NoColor {
		headerStr = f.colors["white"].Sprintf("%-8s %-24s %-7s %-13s %s\n",
			"LEVEL", "ENTITY", "SCORE", "SPAN", "MATCH")
	}
	builder.WriteString(headerStr)

	totalWidth := 8 + 1 + 24 + 1 + 7 + 1 + 13 + 1 + matchWidth
	separator := strings.Repeat("-", totalWidth) + "\n"
	if !options.NoColor {
		separator = f.colors["white"].Sprint(strings.Repeat("-", totalWidth) + "\n")
	}
	builder.WriteString(separator)
}

// calculateMatchColumnWidth calculates the optimal width for the match column
func (f *Formatter) calculateMatchColumnWidth(results []detector.Result, text string, options formatters.FormatterOptions) int {
	maxWidth := 10 // Minimum width for "[REDACTED]"
	if options.ShowMatch || options.Verbose {
		for _, result := range results {
			runeCount := len([]rune(f.matchText(result, text)))
			if runeCount > maxWidth {
				maxWidth = runeCount
			}
		}
	}
	// Cap at 30 characters for readability
	if maxWidth > 30 {
		maxWidth = 30
	}
	return maxWidth
}

func (f *Formatter) matchText(result detector.Result, text string) string {
	if result.Start < 0 || result.End > len(text) || result.Start >= result.End {
		return ""
	}
	matched := text[result.Start:result.End]
	matched = strings.ReplaceAll(matched, "\n", " ")
	return strings.ReplaceAll(matched, "\t", " ")
}

func (f *Formatter) levelColor(level string) *color.Color {
	switch level {
	case "HIGH":
		return f.colors["red"]
	case "MEDIUM":
		return f.colors["yellow"]
	default:
		return f.colors["green"]
	}
}

// appendSummaryLine adds a single line summary to the string builder
func (f *Formatter) appendSummaryLine(builder *strings.Builder, result detector.Result, level string, text string, options formatters.FormatterOptions) {
	levelStr := fmt.Sprintf("[%-6s]", level)
	if !options.NoColor {
		levelStr = f.levelColor(level).Sprintf("[%-6s]", level)
	}

	entityDisplay := result.EntityType
	if len(entityDisplay) > 24 {
		entityDisplay = entityDisplay[:21] + "..."
	}
	entityStr := fmt.Sprintf("%-24s", entityDisplay)
	if !options.NoColor {
		entityStr = f.colors["cyan"].Sprintf("%-24s", entityDisplay)
	}

	scoreStr := fmt.Sprintf("%7.2f", result.Score)
	if !options.NoColor {
		scoreStr = f.colors["blue"].Sprintf("%7.2f", result.Score)
	}

	spanStr := fmt.Sprintf("%-13s", fmt.Sprintf("[%d:%d)", result.Start, result.End))
	if !options.NoColor {
		spanStr = f.colors["magenta"].Sprintf("%-13s", fmt.Sprintf("[%d:%d)", result.Start, result.End))
	}

	matchText := "[REDACTED]"
	if options.ShowMatch {
		matchText = f.matchText(result, text)
		if len([]rune(matchText)) > 30 {
			matchText = string([]rune(matchText)[:27]) + "..."
		}
	}

	builder.WriteString(fmt.Sprintf("%s %s %s %s %s\n", levelStr, entityStr, scoreStr, spanStr, matchText))
}

// appendDetailedResult adds a multi-line result block for verbose mode
func (f *Formatter) appendDetailedResult(builder *strings.Builder, result detector.Result, level string, text string, options formatters.FormatterOptions) {
	header := fmt.Sprintf("%s: %s", level, result.EntityType)
	if !options.NoColor {
		header = f.levelColor(level).Sprintf("%s: %s", level, result.EntityType)
	}
	builder.WriteString(header + "\n")
	builder.WriteString(fmt.Sprintf("  Score: %.2f\n", result.Score))
	builder.WriteString(fmt.Sprintf("  Span:  [%d:%d)\n", result.Start, result.End))
	if options.ShowMatch {
		builder.WriteString(fmt.Sprintf("  Match: %s\n", f.matchText(result, text)))
	}
	builder.WriteString("\n")
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
