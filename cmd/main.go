// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"idscan/internal/config"
	"idscan/internal/engine"
	"idscan/internal/formatters"
	"idscan/internal/observability"
	"idscan/internal/preprocess"
	"idscan/internal/recognizer"
	"idscan/internal/version"
	"idscan/internal/web"

	// Import formatters to register them
	_ "idscan/internal/formatters/json"
	_ "idscan/internal/formatters/text"
)

// cliFlags holds command line flag values
type cliFlags struct {
	text             string
	inputFile        string
	language         string
	entities         string
	threshold        float64
	format           string
	confidenceLevels string
	configFile       string
	profileName      string
	outputFile       string
	listProfiles     bool
	listEntities     bool
	verbose          bool
	debug            bool
	noColor          bool
	showMatch        bool
	quiet            bool
	webMode          bool
	webPort          string
	showVersion      bool
}

func main() {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		return
	}

	// Auto-detect non-interactive environment
	if !isTerminal(os.Stderr) || flags.quiet || os.Getenv("CI") != "" {
		flags.noColor = true
	}

	var debugObs *observability.DebugObserver
	if flags.debug {
		debugObs = observability.NewDebugObserver(os.Stderr)
		debugObs.LogDetail("main", fmt.Sprintf("Command line arguments: %v", os.Args))
	}

	cfg := config.LoadConfigOrDefault(flags.configFile)

	if flags.listProfiles {
		printProfiles(cfg)
		return
	}

	settings := resolveSettings(cfg, flags)

	eng, err := buildEngine(settings, debugObs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flags.listEntities {
		for _, entity := range eng.Registry().SupportedEntities(settings.Language) {
			fmt.Println(entity)
		}
		return
	}

	if flags.webMode {
		port := flags.webPort
		if port == "" {
			port = fmt.Sprintf("%d", cfg.Server.Port)
		}
		if err := web.NewServer(eng, port).Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	text, err := resolveText(flags, settings, debugObs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	resp, err := eng.Analyze(context.Background(), engine.Request{
		Text:           text,
		Language:       settings.Language,
		Entities:       parseEntityList(settings.Entities),
		ScoreThreshold: settings.ScoreThreshold,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: analysis failed: %v\n", err)
		os.Exit(1)
	}

	output, err := formatters.Export(settings.Format, resp.Results, text, formatters.FormatterOptions{
		ConfidenceLevel: parseConfidenceLevels(flags.confidenceLevels),
		Verbose:         settings.Verbose,
		NoColor:         settings.NoColor,
		ShowMatch:       settings.ShowMatch,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutput(output, flags.outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() *cliFlags {
	flags := &cliFlags{}

	flag.StringVar(&flags.text, "text", "", "Text to analyze")
	flag.StringVar(&flags.inputFile, "file", "", "Path to the input file (plain text or PDF)")
	flag.StringVar(&flags.language, "language", "", "Analysis language (default: en)")
	flag.StringVar(&flags.entities, "entities", "", "Entity types to detect, comma-separated (default: all)")
	flag.Float64Var(&flags.threshold, "threshold", -1, "Minimum score for reported results (0.0 to 1.0)")
	flag.StringVar(&flags.format, "format", "", "Output format: text, json (default: text)")
	flag.StringVar(&flags.confidenceLevels, "confidence", "", "Confidence levels to display: high, medium, low, or combinations like 'high,medium'")
	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	flag.StringVar(&flags.profileName, "profile", "", "Profile name to use from config file")
	flag.StringVar(&flags.outputFile, "output", "", "Path to output file (if not specified, output to stdout)")
	flag.BoolVar(&flags.listProfiles, "list-profiles", false, "List available profiles in config file")
	flag.BoolVar(&flags.listEntities, "list-entities", false, "List supported entity types and exit")
	flag.BoolVar(&flags.verbose, "verbose", false, "Display detailed information for each result")
	flag.BoolVar(&flags.debug, "debug", false, "Enable debug logging of the analysis flow")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.showMatch, "show-match", false, "Display the actual matched text in results")
	flag.BoolVar(&flags.quiet, "quiet", false, "Suppress progress output (useful for scripts and CI/CD)")
	flag.BoolVar(&flags.webMode, "web", false, "Start web server mode instead of CLI analysis")
	flag.StringVar(&flags.webPort, "port", "", "Port for web server (default: 8080)")
	flag.BoolVar(&flags.showVersion, "version", false, "Show version information")

	flag.Parse()
	return flags
}

// resolveSettings layers configuration: defaults, then profile, then
// explicitly set command line flags
func resolveSettings(cfg *config.Config, flags *cliFlags) config.Settings {
	settings := cfg.Defaults

	if flags.profileName != "" {
		if profile := cfg.GetProfile(flags.profileName); profile != nil {
			settings = profile.Settings
		} else {
			fmt.Fprintf(os.Stderr, "Warning: profile %q not found, using defaults\n", flags.profileName)
		}
	}

	if flags.format != "" {
		settings.Format = flags.format
	}
	if flags.language != "" {
		settings.Language = flags.language
	}
	if flags.entities != "" {
		settings.Entities = flags.entities
	}
	if flags.threshold >= 0 {
		settings.ScoreThreshold = flags.threshold
	}
	if flags.verbose {
		settings.Verbose = true
	}
	if flags.debug {
		settings.Debug = true
	}
	if flags.noColor {
		settings.NoColor = true
	}
	if flags.showMatch {
		settings.ShowMatch = true
	}

	if settings.Format == "" {
		settings.Format = "text"
	}
	if settings.Language == "" {
		settings.Language = engine.DefaultLanguage
	}
	return settings
}

func buildEngine(settings config.Settings, debugObs *observability.DebugObserver) (*engine.Engine, error) {
	reg, err := recognizer.Default()
	if err != nil {
		return nil, fmt.Errorf("building recognizer registry: %w", err)
	}

	opts := []engine.Option{}
	if settings.PatternBudgetMs > 0 {
		opts = append(opts, engine.WithPatternBudget(time.Duration(settings.PatternBudgetMs)*time.Millisecond))
	}
	obs := observability.NewStandardObserver(observability.ObservabilityMetrics, os.Stderr)
	if debugObs != nil {
		// The engine traces per-recognizer hit counts through the
		// tracer hanging off its observer.
		obs = debugObs.StandardObserver
	}
	opts = append(opts, engine.WithObserver(obs))

	return engine.New(reg, opts...), nil
}

// resolveText obtains the text to analyze from -text or -file
func resolveText(flags *cliFlags, settings config.Settings, debugObs *observability.DebugObserver) (string, error) {
	if flags.text != "" && flags.inputFile != "" {
		return "", fmt.Errorf("-text and -file are mutually exclusive")
	}
	if flags.text != "" {
		return flags.text, nil
	}
	if flags.inputFile == "" {
		return "", fmt.Errorf("no input: provide -text or -file (see -help)")
	}

	extractor := preprocess.NewExtractor()
	extractor.EnablePDF = settings.EnablePreprocessors
	if debugObs != nil {
		extractor.SetObserver(debugObs.StandardObserver)
		finish := debugObs.StartStage("main", "extract text", flags.inputFile)
		text, err := extractor.ExtractText(flags.inputFile)
		finish(err == nil, fmt.Sprintf("%d bytes", len(text)))
		return text, err
	}
	return extractor.ExtractText(flags.inputFile)
}

func parseEntityList(entities string) []string {
	entities = strings.TrimSpace(entities)
	if entities == "" || strings.EqualFold(entities, "all") {
		return nil
	}
	var list []string
	for _, entity := range strings.Split(entities, ",") {
		if entity = strings.TrimSpace(entity); entity != "" {
			list = append(list, entity)
		}
	}
	return list
}

func parseConfidenceLevels(levels string) map[string]bool {
	levels = strings.TrimSpace(levels)
	if levels == "" || strings.EqualFold(levels, "all") {
		return nil
	}
	enabled := make(map[string]bool)
	for _, level := range strings.Split(levels, ",") {
		if level = strings.ToLower(strings.TrimSpace(level)); level != "" {
			enabled[level] = true
		}
	}
	return enabled
}

func printProfiles(cfg *config.Config) {
	profiles := cfg.ListProfiles()
	if len(profiles) == 0 {
		fmt.Println("No profiles configured.")
		return
	}
	fmt.Println("Available profiles:")
	for _, name := range profiles {
		profile := cfg.GetProfile(name)
		if profile.Description != "" {
			fmt.Printf("  %s - %s\n", name, profile.Description)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
}

func writeOutput(output, outputFile string) error {
	if outputFile == "" {
		fmt.Println(output)
		return nil
	}
	if err := os.WriteFile(outputFile, []byte(output), 0600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	fmt.Printf("Results written to %s\n", outputFile)
	return nil
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
