// input.go - Reading boards from grid, FEN and image inputs
package main

import (
	"bufio"
	"fmt"
	"image"
	_ "image/png" // register PNG decoding
	"io"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"  // register BMP decoding
	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/lgbarn/kingcheck-go/internal/chess"
	"github.com/lgbarn/kingcheck-go/internal/config"
	"github.com/lgbarn/kingcheck-go/internal/engine"
	"github.com/lgbarn/kingcheck-go/internal/errors"
	"github.com/lgbarn/kingcheck-go/internal/vision"
	"github.com/lgbarn/kingcheck-go/internal/worker"
)

// recognizerCache loads each template directory once.
type recognizerCache struct {
	mu          sync.Mutex
	recognizers map[string]*vision.Recognizer
	failures    map[string]error
}

func newRecognizerCache() *recognizerCache {
	return &recognizerCache{
		recognizers: make(map[string]*vision.Recognizer),
		failures:    make(map[string]error),
	}
}

// get returns the recognizer for templates in dir.
func (c *recognizerCache) get(dir string) (*vision.Recognizer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r, ok := c.recognizers[dir]; ok {
		return r, nil
	}
	if err, ok := c.failures[dir]; ok {
		return nil, err
	}
	templates, err := vision.LoadTemplates(dir)
	if err != nil {
		c.failures[dir] = err
		return nil, err
	}
	r := vision.NewRecognizer(templates)
	c.recognizers[dir] = r
	logger.Info("templates loaded", "dir", dir)
	return r, nil
}

// inputReader turns input streams into work items.
type inputReader struct {
	cfg         *config.Config
	recognizers *recognizerCache
}

func newInputReader(cfg *config.Config) *inputReader {
	return &inputReader{cfg: cfg, recognizers: newRecognizerCache()}
}

// read returns one work item per board found in r. Boards that cannot be
// read become items carrying their error.
func (ir *inputReader) read(r io.Reader, name string) []worker.WorkItem {
	switch config.KindForFile(ir.cfg.Input.Kind, name) {
	case config.ImageInput:
		return []worker.WorkItem{ir.readImage(r, name)}
	case config.FENInput:
		return readFENBoards(r, name)
	default:
		return readGridBoards(r, name)
	}
}

func (ir *inputReader) readImage(r io.Reader, name string) worker.WorkItem {
	item := worker.WorkItem{Source: name, Number: 1}
	img, format, err := image.Decode(r)
	if err != nil {
		item.Err = inputError(name, 1, fmt.Errorf("decoding image: %w", err))
		return item
	}
	logger.Debug("image decoded", "source", name, "format", format, "bounds", img.Bounds())

	recognizer, err := ir.recognizers.get(ir.cfg.Vision.TemplateDirFor(name))
	if err != nil {
		item.Err = inputError(name, 1, err)
		return item
	}
	item.Image = img
	item.Recognizer = recognizer
	return item
}

// readFENBoards reads one FEN per non-blank line. Lines starting with #
// are comments.
func readFENBoards(r io.Reader, name string) []worker.WorkItem {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		number := len(items) + 1
		item := worker.WorkItem{Source: name, Number: number}
		item.Board, item.Err = boardOrError(engine.NewBoardFromFEN(line))
		if item.Err != nil {
			item.Err = inputError(name, number, item.Err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		items = append(items, worker.WorkItem{Source: name, Number: len(items) + 1, Err: inputError(name, 0, err)})
	}
	return items
}

// readGridBoards reads boards of eight symbol rows. Blank lines separate
// boards, and a line holding '/' is a whole board with its rows joined by
// slashes. A run of rows longer than eight is split into boards of eight.
func readGridBoards(r io.Reader, name string) []worker.WorkItem {
	var items []worker.WorkItem
	add := func(rows []string) {
		number := len(items) + 1
		item := worker.WorkItem{Source: name, Number: number}
		item.Board, item.Err = boardOrError(engine.ParseRows(rows))
		if item.Err != nil {
			item.Err = inputError(name, number, item.Err)
		}
		items = append(items, item)
	}

	var rows []string
	flush := func() {
		if len(rows) > 0 {
			add(rows)
			rows = nil
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "#"):
		case strings.Contains(line, "/"):
			flush()
			add(strings.Split(line, "/"))
		default:
			rows = append(rows, line)
			if len(rows) == chess.BoardSize {
				flush()
			}
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		items = append(items, worker.WorkItem{Source: name, Number: len(items) + 1, Err: inputError(name, 0, err)})
	}
	return items
}

func boardOrError(board *chess.Board, err error) (*chess.Board, error) {
	if err != nil {
		return nil, err
	}
	return board, nil
}

func inputError(name string, number int, err error) error {
	return &errors.InputError{Err: err, File: name, Index: number}
}
