// Package output writes board reports as text summaries, JSON and SVG
// diagrams.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/kingcheck-go/internal/analysis"
	"github.com/lgbarn/kingcheck-go/internal/chess"
	"github.com/lgbarn/kingcheck-go/internal/render"
)

// Entry is one board report, or the error that prevented it, together
// with where the board came from.
type Entry struct {
	Source string // Input file name ("-" for stdin)
	Number int    // 1-based board number within Source
	Board  *chess.Board
	Report *analysis.Report
	Err    error
}

// ReportWriter is the interface for writing board reports.
// Different implementations handle different output formats.
type ReportWriter interface {
	// WriteReport writes a single entry to the output.
	WriteReport(e Entry) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// Highlights returns the squares a diagram of the entry should mark.
func Highlights(e Entry) render.Highlights {
	h := render.Highlights{}
	if e.Report == nil {
		return h
	}
	h.Title = e.Report.FEN
	if e.Report.InCheck {
		h.King = e.Report.King
		h.HasKing = true
		h.Attackers = e.Report.Attackers
		h.Escapes = e.Report.Escapes
	}
	return h
}

// TextWriter writes the four-line summary of each report, optionally
// followed by a diagram and the attacker and escape squares. Entries that
// failed are skipped; callers report their errors.
type TextWriter struct {
	w       *bufio.Writer
	diagram bool
	details bool
}

// NewTextWriter creates a new summary writer.
func NewTextWriter(w io.Writer, diagram, details bool) *TextWriter {
	return &TextWriter{
		w:       bufio.NewWriter(w),
		diagram: diagram,
		details: details,
	}
}

// WriteReport writes the summary for one entry.
func (tw *TextWriter) WriteReport(e Entry) error {
	if e.Err != nil || e.Report == nil {
		return nil
	}
	if _, err := tw.w.WriteString(e.Report.Summary()); err != nil {
		return err
	}
	if tw.details && e.Report.InCheck {
		fmt.Fprintf(tw.w, "king %s\n", e.Report.King.Algebraic())
		fmt.Fprintf(tw.w, "attackers %s\n", squareList(e.Report.Attackers))
		fmt.Fprintf(tw.w, "escapes %s\n", squareList(e.Report.Escapes))
	}
	if tw.diagram && e.Board != nil {
		tw.w.WriteString(render.Text(e.Board, render.Marks(e.Board, Highlights(e))))
		tw.w.WriteByte('\n')
	}
	return nil
}

func squareList(squares []chess.Square) string {
	if len(squares) == 0 {
		return "-"
	}
	return strings.Join(algebraic(squares), " ")
}

// Flush flushes buffered summaries.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}

// Close flushes the text writer.
func (tw *TextWriter) Close() error {
	return tw.Flush()
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	entries []Entry
	single  bool // If true, write each report immediately as one line
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		entries: make([]Entry, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report
// immediately, one object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteReport buffers an entry for JSON output (or writes immediately in
// single mode).
func (jw *JSONWriter) WriteReport(e Entry) error {
	if jw.single {
		return encodeJSON(jw.w, EntryToJSON(e), false)
	}
	jw.entries = append(jw.entries, e)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.entries) == 0 {
		return nil
	}

	out := &JSONOutput{
		Boards: make([]*JSONBoard, 0, len(jw.entries)),
	}
	for _, e := range jw.entries {
		out.Boards = append(out.Boards, EntryToJSON(e))
	}
	err := encodeJSON(jw.w, out, true)

	// Clear buffer after writing
	jw.entries = jw.entries[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// SVGWriter writes one SVG diagram per successful entry into a directory.
type SVGWriter struct {
	dir     string
	written int
}

// NewSVGWriter creates an SVG writer, creating dir if needed.
func NewSVGWriter(dir string) (*SVGWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &SVGWriter{dir: dir}, nil
}

// FileName returns the diagram file name for an entry: the source's base
// name without extension followed by the board number.
func FileName(e Entry) string {
	base := filepath.Base(e.Source)
	if e.Source == "" || e.Source == "-" {
		base = "stdin"
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s-%d.svg", base, e.Number)
}

// WriteReport writes the diagram for one entry.
func (sw *SVGWriter) WriteReport(e Entry) error {
	if e.Err != nil || e.Board == nil {
		return nil
	}
	f, err := os.Create(filepath.Join(sw.dir, FileName(e)))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	render.SVG(w, e.Board, Highlights(e))
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	sw.written++
	return f.Close()
}

// Written returns the number of diagrams written so far.
func (sw *SVGWriter) Written() int {
	return sw.written
}

// Flush is a no-op; each diagram is written when reported.
func (sw *SVGWriter) Flush() error {
	return nil
}

// Close closes the SVG writer.
func (sw *SVGWriter) Close() error {
	return nil
}

// MultiWriter fans each entry out to several writers.
type MultiWriter []ReportWriter

// WriteReport writes the entry to every writer, returning the first error.
func (mw MultiWriter) WriteReport(e Entry) error {
	var first error
	for _, w := range mw {
		if err := w.WriteReport(e); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Flush flushes every writer.
func (mw MultiWriter) Flush() error {
	var first error
	for _, w := range mw {
		if err := w.Flush(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Close closes every writer.
func (mw MultiWriter) Close() error {
	var first error
	for _, w := range mw {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
