// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/kingcheck-go/internal/config"
)

var (
	// Input options
	inputType    = flag.String("type", "auto", "Input type: auto, grid, fen, image")
	templateDir  = flag.String("templates", "", "Template directory for image input (default: the image's directory)")
	fileListFile = flag.String("f", "", "File containing list of input files to process (one per line)")
	// Note: -A flag is handled manually before flag.Parse() in loadArgsFromFileIfSpecified
	_ = flag.String("A", "", "File containing command-line arguments (one per line, # for comments)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	jsonLines    = flag.Bool("jsonl", false, "Output one JSON object per board")
	diagram      = flag.Bool("diagram", false, "Add a text diagram after each summary")
	details      = flag.Bool("details", false, "Add king, attacker and escape squares after each summary")
	svgDir       = flag.String("svg", "", "Write an SVG diagram of each board into this directory")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	logLevel  = flag.String("loglevel", "warn", "Diagnostic level: debug, info, warn, error")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no board count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyInputFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	if err := applyRuntimeFlags(cfg); err != nil {
		return err
	}

	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyInputFlags configures input kind, files and templates.
func applyInputFlags(cfg *config.Config) error {
	kind, err := config.ParseInputKind(*inputType)
	if err != nil {
		return err
	}
	cfg.Input.Kind = kind
	cfg.Vision.TemplateDir = *templateDir

	files := flag.Args()
	if *fileListFile != "" {
		listed, err := loadFileList(*fileListFile)
		if err != nil {
			return fmt.Errorf("reading file list %s: %w", *fileListFile, err)
		}
		files = append(files, listed...)
	}
	cfg.Input.Files = files
	return nil
}

// applyOutputFlags configures the report format and extras.
func applyOutputFlags(cfg *config.Config) {
	switch {
	case *jsonLines:
		cfg.Output.Format = config.JSONLines
	case *jsonOutput:
		cfg.Output.Format = config.JSON
	default:
		cfg.Output.Format = config.Summary
	}
	cfg.Output.Diagram = *diagram
	cfg.Output.Details = *details
	cfg.Output.SVGDir = *svgDir
}

// applyRuntimeFlags configures workers and the diagnostic level.
func applyRuntimeFlags(cfg *config.Config) error {
	cfg.Runtime.Workers = *workers
	level, err := config.ParseLogLevel(*logLevel)
	if err != nil {
		return err
	}
	cfg.Runtime.LogLevel = level
	return nil
}

// exitOnError prints err and exits when it is not nil.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
