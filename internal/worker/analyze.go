package worker

import (
	"fmt"
	"log/slog"

	"github.com/lgbarn/kingcheck-go/internal/analysis"
	"github.com/lgbarn/kingcheck-go/internal/errors"
	"github.com/lgbarn/kingcheck-go/internal/vision"
)

var log = slog.Default().With("package", "worker")

// AnalyzeItem is the standard ProcessFunc: it recognises the item's image
// when there is one, then analyses the board.
func AnalyzeItem(item WorkItem) ProcessResult {
	result := ProcessResult{
		Source: item.Source,
		Index:  item.Index,
		Number: item.Number,
		Board:  item.Board,
	}
	if item.Err != nil {
		result.Error = item.Err
		return result
	}

	var read *vision.Result
	if item.Image != nil {
		if item.Recognizer == nil {
			result.Error = fmt.Errorf("no templates loaded: %w", errors.ErrMissingTemplate)
			return result
		}
		var err error
		if read, err = item.Recognizer.Recognize(item.Image); err != nil {
			result.Error = err
			return result
		}
		if result.Board, err = read.Board(); err != nil {
			result.Error = err
			return result
		}
	}

	if result.Board == nil {
		result.Error = fmt.Errorf("no board to analyse: %w", errors.ErrMalformedBoard)
		return result
	}

	report, err := analysis.Analyze(result.Board)
	if err != nil {
		result.Error = err
		return result
	}
	if read != nil {
		report.Origin = read.Origin
		report.HasOrigin = true
	}
	result.Report = report
	log.Debug("board analysed", "source", item.Source, "number", item.Number, "image", read != nil, "outcome", report.Outcome)
	return result
}
