// processor.go - Board analysis and report output
package main

import (
	"io"
	"os"

	"github.com/lgbarn/kingcheck-go/internal/config"
	"github.com/lgbarn/kingcheck-go/internal/output"
	"github.com/lgbarn/kingcheck-go/internal/worker"
)

// runStats counts the boards seen in one run.
type runStats struct {
	boards int
	failed int
}

// newReportWriter builds the writer for the configured output format,
// adding an SVG writer when a diagram directory is set.
func newReportWriter(cfg *config.Config) (output.ReportWriter, error) {
	var w output.ReportWriter
	switch cfg.Output.Format {
	case config.JSON:
		w = output.NewJSONWriter(cfg.OutputFile)
	case config.JSONLines:
		w = output.NewJSONWriterSingle(cfg.OutputFile)
	default:
		w = output.NewTextWriter(cfg.OutputFile, cfg.Output.Diagram, cfg.Output.Details)
	}
	if cfg.Output.SVGDir == "" {
		return w, nil
	}
	svgWriter, err := output.NewSVGWriter(cfg.Output.SVGDir)
	if err != nil {
		return nil, err
	}
	return output.MultiWriter{w, svgWriter}, nil
}

// collectInputs reads every input file, or stdin when there are none, and
// numbers the resulting items in input order.
func collectInputs(cfg *config.Config, stdin io.Reader) []worker.WorkItem {
	reader := newInputReader(cfg)
	var items []worker.WorkItem

	if len(cfg.Input.Files) == 0 {
		items = reader.read(stdin, "-")
	} else {
		for _, filename := range cfg.Input.Files {
			file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
			if err != nil {
				items = append(items, worker.WorkItem{Source: filename, Err: inputError(filename, 0, err)})
				continue
			}
			items = append(items, reader.read(file, filename)...)
			file.Close() //nolint:errcheck,gosec // G104: read-only file
		}
	}

	for i := range items {
		items[i].Index = i
	}
	return items
}

// analyzeItems analyses every item, on a worker pool when more than one
// worker is configured. Results come back in input order.
func analyzeItems(items []worker.WorkItem, cfg *config.Config) []worker.ProcessResult {
	numWorkers := cfg.Runtime.EffectiveWorkers()
	if numWorkers <= 1 || len(items) <= 1 {
		results := make([]worker.ProcessResult, len(items))
		for i, item := range items {
			results[i] = worker.AnalyzeItem(item)
		}
		return results
	}

	bufferSize := len(items)
	if bufferSize > cfg.Runtime.BufferSize {
		bufferSize = cfg.Runtime.BufferSize
	}
	logger.Debug("analysing in parallel", "workers", numWorkers, "boards", len(items))
	return worker.NewPool(numWorkers, bufferSize, worker.AnalyzeItem).Run(items)
}

// writeResults writes every result and logs the failures.
func writeResults(results []worker.ProcessResult, w output.ReportWriter) (runStats, error) {
	var stats runStats
	for _, result := range results {
		stats.boards++
		if result.Error != nil {
			stats.failed++
			logger.Error("board skipped", "source", result.Source, "board", result.Number, "error", result.Error)
		}
		entry := output.Entry{
			Source: result.Source,
			Number: result.Number,
			Board:  result.Board,
			Report: result.Report,
			Err:    result.Error,
		}
		if err := w.WriteReport(entry); err != nil {
			return stats, err
		}
	}
	return stats, w.Close()
}

// processAllInputs reads, analyses and reports every board.
func processAllInputs(cfg *config.Config, stdin io.Reader) (runStats, error) {
	w, err := newReportWriter(cfg)
	if err != nil {
		return runStats{}, err
	}
	items := collectInputs(cfg, stdin)
	return writeResults(analyzeItems(items, cfg), w)
}
