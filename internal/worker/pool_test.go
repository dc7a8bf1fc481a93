package worker

import (
	"fmt"
	"image"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/kingcheck-go/internal/analysis"
	"github.com/lgbarn/kingcheck-go/internal/chess"
	"github.com/lgbarn/kingcheck-go/internal/engine"
	"github.com/lgbarn/kingcheck-go/internal/errors"
	"github.com/lgbarn/kingcheck-go/internal/testutil"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Board: item.Board, Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Board: item.Board, Index: item.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func mustBoard(t *testing.T, rows ...string) *chess.Board {
	t.Helper()
	board, err := engine.ParseRows(rows)
	testutil.AssertNoError(t, err)
	return board
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(4, 10, countingProcessFunc(&processed))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Board: chess.NewBoard(), Index: i})
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != numItems {
		t.Errorf("results = %d; want %d", resultCount, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolSingleWorker tests pool with single worker.
func TestPoolSingleWorker(t *testing.T) {
	pool := NewPool(1, 5, noopProcessFunc())
	pool.Start()

	const numItems = 5
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Board: chess.NewBoard(), Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests that a stopped pool discards queued work.
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(2, 100, slowProcessFunc)
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(2, 10, noopProcessFunc())
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	go pool.Close()
	collectResults(pool)
}

// TestNewPoolClampsCounts tests that invalid sizes fall back to one.
func TestNewPoolClampsCounts(t *testing.T) {
	pool := NewPool(0, -3, noopProcessFunc())
	testutil.AssertEqual(t, pool.NumWorkers(), 1)
	testutil.AssertEqual(t, pool.bufferSize, 10)

	pool = NewPoolWithOptions(noopProcessFunc(), WithWorkers(6), WithBufferSize(3))
	testutil.AssertEqual(t, pool.NumWorkers(), 6)
	testutil.AssertEqual(t, cap(pool.workChan), 3)
}

// TestPoolRunPreservesOrder tests that Run sorts results by index even
// when later items finish first.
func TestPoolRunPreservesOrder(t *testing.T) {
	const numItems = 20
	items := make([]WorkItem, numItems)
	for i := range items {
		items[i] = WorkItem{Index: i, Source: fmt.Sprintf("item-%d", i)}
	}

	pool := NewPool(4, 2, func(item WorkItem) ProcessResult {
		time.Sleep(time.Duration(numItems-item.Index) * time.Millisecond)
		return ProcessResult{Index: item.Index, Source: item.Source}
	})
	results := pool.Run(items)

	testutil.AssertEqual(t, len(results), numItems)
	for i, result := range results {
		if result.Index != i || result.Source != items[i].Source {
			t.Errorf("results[%d] = %d %q; want %d %q", i, result.Index, result.Source, i, items[i].Source)
		}
	}
}

func TestPoolRunEmpty(t *testing.T) {
	results := NewPool(3, 1, noopProcessFunc()).Run(nil)
	testutil.AssertEqual(t, len(results), 0)
}

func TestAnalyzeItem(t *testing.T) {
	mate := mustBoard(t, "k****R**", "********", "********", "***B****", "********", "R*******", "********", "*******K")

	result := AnalyzeItem(WorkItem{Source: "boards.txt", Index: 3, Number: 2, Board: mate})
	testutil.AssertNoError(t, result.Error)
	testutil.AssertEqual(t, result.Source, "boards.txt")
	testutil.AssertEqual(t, result.Index, 3)
	testutil.AssertEqual(t, result.Number, 2)
	testutil.AssertEqual(t, result.Report.Outcome, analysis.Mated)
	testutil.AssertFalse(t, result.Report.HasOrigin)
}

func TestAnalyzeItem_Errors(t *testing.T) {
	tests := []struct {
		name string
		item WorkItem
		want error
	}{
		{"read error passes through", WorkItem{Err: errors.ErrInvalidFEN}, errors.ErrInvalidFEN},
		{"nothing to analyse", WorkItem{}, errors.ErrMalformedBoard},
		{"image without templates", WorkItem{Image: image.NewRGBA(image.Rect(0, 0, 8, 8))}, errors.ErrMissingTemplate},
		{"missing king", WorkItem{Board: mustBoard(t, "********", "********", "********", "********", "********", "********", "********", "*******K")}, errors.ErrKingNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeItem(tt.item)
			testutil.AssertErrorIs(t, result.Error, tt.want)
			if result.Report != nil {
				t.Errorf("Report = %+v; want nil", result.Report)
			}
		})
	}
}

func TestPoolRunWithAnalyzeItem(t *testing.T) {
	items := []WorkItem{
		{Index: 0, Board: mustBoard(t, "kQ******", "********", "********", "********", "********", "********", "********", "*******K")},
		{Index: 1, Err: errors.ErrMalformedBoard},
		{Index: 2, Board: mustBoard(t, "k*******", "********", "********", "********", "********", "********", "********", "*******K")},
	}
	results := NewPool(2, 4, AnalyzeItem).Run(items)

	testutil.AssertEqual(t, len(results), 3)
	testutil.AssertEqual(t, results[0].Report.Outcome, analysis.NotMated)
	testutil.AssertErrorIs(t, results[1].Error, errors.ErrMalformedBoard)
	testutil.AssertEqual(t, results[2].Report.Outcome, analysis.None)
}
