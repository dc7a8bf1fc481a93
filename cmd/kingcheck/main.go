// kingcheck reports whether a king is in check on a board diagram and
// whether a lone checked king is mated.
package main

import (
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"log/slog"
	"os"

	"github.com/lgbarn/kingcheck-go/internal/config"
)

const programVersion = "0.1.0"

var logger = slog.Default().With("package", "main")

func main() {
	args, err := loadArgsFromFileIfSpecified(os.Args[1:])
	exitOnError(err)
	flag.Usage = usage
	exitOnError(flag.CommandLine.Parse(args))

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("kingcheck version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	exitOnError(applyFlags(cfg))
	exitOnError(cfg.Validate())

	// Set up logging and output files
	setupLogFile(cfg)
	setupLogging(cfg)
	setupOutputFile(cfg)

	stats, err := processAllInputs(cfg, os.Stdin)
	if closer, ok := cfg.OutputFile.(io.Closer); ok && cfg.OutputFile != os.Stdout {
		closer.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
	exitOnError(err)

	// Report statistics
	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, stats)
	}
	if stats.failed > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupLogging routes package loggers to the log file at the configured
// level. Package loggers hold the default handler, which writes through
// the standard logger, so redirecting that logger redirects them all.
func setupLogging(cfg *config.Config) {
	stdlog.SetOutput(cfg.LogFile)
	slog.SetLogLoggerLevel(cfg.Runtime.LogLevel)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, stats runStats) {
	if stats.failed > 0 {
		fmt.Fprintf(w, "%d board(s) analysed, %d failed.\n", stats.boards-stats.failed, stats.failed)
		return
	}
	fmt.Fprintf(w, "%d board(s) analysed.\n", stats.boards)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: kingcheck [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Reports check and mate for boards given as grids, FEN or screenshots.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput types (-type):\n")
	fmt.Fprintf(os.Stderr, "  auto   By extension: .png/.bmp/.webp image, .fen FEN, otherwise grid (default)\n")
	fmt.Fprintf(os.Stderr, "  grid   Eight rows of * and KQRBNP/kqrbnp, or one line of rows joined by /\n")
	fmt.Fprintf(os.Stderr, "  fen    One FEN piece placement per line\n")
	fmt.Fprintf(os.Stderr, "  image  Screenshot matched against tiles/ and pieces/ templates\n")
	fmt.Fprintf(os.Stderr, "\nSummary output, four lines per board:\n")
	fmt.Fprintf(os.Stderr, "  origin   Board's top-left pixel as row,column (images only)\n")
	fmt.Fprintf(os.Stderr, "  fen      Piece placement\n")
	fmt.Fprintf(os.Stderr, "  checker  W or B for the side giving check, - for none\n")
	fmt.Fprintf(os.Stderr, "  result   1 mate, 0 no mate, blank when other pieces might help\n")
}
