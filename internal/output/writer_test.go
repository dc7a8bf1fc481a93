package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/kingcheck-go/internal/analysis"
	"github.com/lgbarn/kingcheck-go/internal/engine"
	"github.com/lgbarn/kingcheck-go/internal/errors"
	"github.com/lgbarn/kingcheck-go/internal/testutil"
)

var (
	checkRows = []string{"kQ******", "********", "********", "********", "********", "********", "********", "*******K"}
	mateRows  = []string{"k****R**", "********", "********", "***B****", "********", "R*******", "********", "*******K"}
	quietRows = []string{"k*******", "********", "********", "********", "********", "********", "********", "*******K"}
)

func testEntry(t *testing.T, number int, rows []string) Entry {
	t.Helper()
	board, err := engine.ParseRows(rows)
	testutil.AssertNoError(t, err)
	report, err := analysis.Analyze(board)
	testutil.AssertNoError(t, err)
	return Entry{Source: "boards.txt", Number: number, Board: board, Report: report}
}

// TestTextWriter_WriteReport verifies the four-line summary
func TestTextWriter_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, false, false)

	testutil.AssertNoError(t, writer.WriteReport(testEntry(t, 1, checkRows)))
	testutil.AssertNoError(t, writer.WriteReport(Entry{Source: "boards.txt", Number: 2, Err: errors.ErrMalformedBoard}))
	testutil.AssertNoError(t, writer.WriteReport(testEntry(t, 3, quietRows)))
	testutil.AssertNoError(t, writer.Close())

	want := "\nkQ6/8/8/8/8/8/8/7K\nW\n0\n" +
		"\nk7/8/8/8/8/8/8/7K\n-\n0\n"
	testutil.AssertEqual(t, buf.String(), want)
}

// TestTextWriter_Details verifies the attacker and escape lines
func TestTextWriter_Details(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, false, true)

	testutil.AssertNoError(t, writer.WriteReport(testEntry(t, 1, checkRows)))
	testutil.AssertNoError(t, writer.WriteReport(testEntry(t, 2, mateRows)))
	testutil.AssertNoError(t, writer.WriteReport(testEntry(t, 3, quietRows)))
	testutil.AssertNoError(t, writer.Flush())

	blocks := strings.Split(buf.String(), "\n\n")
	testutil.AssertEqual(t, len(blocks), 3)
	testutil.AssertTrue(t, strings.HasSuffix(blocks[0], "W\n0\nking a8\nattackers b8\nescapes b8"))
	testutil.AssertContains(t, blocks[1], "k4R2/8/8/3B4/8/R7/8/7K\nW\n1\nking a8\n")
	testutil.AssertTrue(t, strings.HasSuffix(blocks[1], "escapes -"))
	testutil.AssertContains(t, blocks[1], "f8")
	testutil.AssertContains(t, blocks[1], "d5")
	testutil.AssertFalse(t, strings.Contains(blocks[2], "king"), "no details without check")
}

// TestTextWriter_Diagram verifies diagrams follow the summary
func TestTextWriter_Diagram(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, true, false)

	testutil.AssertNoError(t, writer.WriteReport(testEntry(t, 1, quietRows)))
	testutil.AssertNoError(t, writer.Close())

	out := buf.String()
	testutil.AssertTrue(t, strings.HasPrefix(out, "\nk7/8/8/8/8/8/8/7K\n-\n0\n8 | k * * * * * * *\n"))
	testutil.AssertTrue(t, strings.HasSuffix(out, "    a b c d e f g h\n\n"))
}

// TestJSONWriter_WriteReport verifies the batched JSON document
func TestJSONWriter_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)

	entry := testEntry(t, 1, checkRows)
	entry.Report.Origin.X, entry.Report.Origin.Y = 40, 12
	entry.Report.HasOrigin = true
	testutil.AssertNoError(t, writer.WriteReport(entry))
	testutil.AssertNoError(t, writer.WriteReport(Entry{Source: "shot.png", Number: 1, Err: errors.ErrUnrecognizedImage}))

	if buf.Len() != 0 {
		t.Fatal("JSON should be buffered until Flush")
	}
	testutil.AssertNoError(t, writer.Flush())

	var got JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &got))
	testutil.AssertEqual(t, len(got.Boards), 2)

	first := got.Boards[0]
	testutil.AssertEqual(t, first.FEN, "kQ6/8/8/8/8/8/8/7K")
	testutil.AssertEqual(t, first.Checker, "W")
	testutil.AssertEqual(t, first.Checked, "black")
	testutil.AssertEqual(t, first.Result, "0")
	testutil.AssertEqual(t, *first.Origin, JSONOrigin{Row: 12, Col: 40})
	testutil.AssertEqual(t, first.King, "a8")
	testutil.AssertEqual(t, first.Attackers, []string{"b8"})
	testutil.AssertEqual(t, first.Escapes, []string{"b8"})
	testutil.AssertContains(t, buf.String(), `"outcome": "NotMated"`)

	second := got.Boards[1]
	testutil.AssertEqual(t, second.Source, "shot.png")
	testutil.AssertContains(t, second.Error, "unrecognized")
	testutil.AssertTrue(t, second.FEN == "" && second.Outcome == nil, "failed entries carry no report")
}

// TestJSONWriterSingle verifies one object per line
func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf)

	testutil.AssertNoError(t, writer.WriteReport(testEntry(t, 1, mateRows)))
	testutil.AssertNoError(t, writer.WriteReport(testEntry(t, 2, quietRows)))
	testutil.AssertNoError(t, writer.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, len(lines), 2)

	var board JSONBoard
	testutil.AssertNoError(t, json.Unmarshal([]byte(lines[0]), &board))
	testutil.AssertEqual(t, board.Result, "1")
	testutil.AssertEqual(t, board.Defenders, 1)
	testutil.AssertContains(t, lines[0], `"outcome":"Mated"`)
	testutil.AssertContains(t, lines[1], `"checker":"-"`)
	testutil.AssertFalse(t, strings.Contains(lines[1], `"king"`))
}

// TestJSONWriter_Close verifies Close flushes pending reports
func TestJSONWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	writer.WriteReport(testEntry(t, 1, quietRows))

	testutil.AssertNoError(t, writer.Close())
	if buf.Len() == 0 {
		t.Error("Expected output after Close")
	}

	// Nothing pending: a second close writes nothing more.
	n := buf.Len()
	testutil.AssertNoError(t, writer.Close())
	testutil.AssertEqual(t, buf.Len(), n)
}

func TestSVGWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "diagrams")
	writer, err := NewSVGWriter(dir)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, writer.WriteReport(testEntry(t, 2, checkRows)))
	testutil.AssertNoError(t, writer.WriteReport(Entry{Source: "boards.txt", Number: 3, Err: errors.ErrKingNotFound}))
	testutil.AssertNoError(t, writer.Close())
	testutil.AssertEqual(t, writer.Written(), 1)

	data, err := os.ReadFile(filepath.Join(dir, "boards-2.svg"))
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, string(data), "<title>kQ6/8/8/8/8/8/8/7K</title>")

	_, err = os.Stat(filepath.Join(dir, "boards-3.svg"))
	testutil.AssertTrue(t, os.IsNotExist(err), "failed entries get no diagram")
}

func TestFileName(t *testing.T) {
	tests := []struct {
		source string
		number int
		want   string
	}{
		{"boards.txt", 1, "boards-1.svg"},
		{filepath.Join("shots", "screen.png"), 1, "screen-1.svg"},
		{"-", 4, "stdin-4.svg"},
		{"", 2, "stdin-2.svg"},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, FileName(Entry{Source: tt.source, Number: tt.number}), tt.want)
	}
}

func TestMultiWriter(t *testing.T) {
	var text, js bytes.Buffer
	writer := MultiWriter{NewTextWriter(&text, false, false), NewJSONWriterSingle(&js)}

	testutil.AssertNoError(t, writer.WriteReport(testEntry(t, 1, quietRows)))
	testutil.AssertNoError(t, writer.Close())

	testutil.AssertContains(t, text.String(), "k7/8/8/8/8/8/8/7K")
	testutil.AssertContains(t, js.String(), `"fen":"k7/8/8/8/8/8/8/7K"`)
}

// TestReportWriter_Interface verifies that writers implement the interface
func TestReportWriter_Interface(t *testing.T) {
	var buf bytes.Buffer

	var _ ReportWriter = NewTextWriter(&buf, false, false)
	var _ ReportWriter = NewJSONWriter(&buf)
	var _ ReportWriter = &SVGWriter{}
	var _ ReportWriter = MultiWriter{}
}

func TestHighlights(t *testing.T) {
	h := Highlights(testEntry(t, 1, checkRows))
	testutil.AssertTrue(t, h.HasKing)
	testutil.AssertEqual(t, h.King.Algebraic(), "a8")
	testutil.AssertEqual(t, h.Title, "kQ6/8/8/8/8/8/8/7K")

	h = Highlights(testEntry(t, 1, quietRows))
	testutil.AssertFalse(t, h.HasKing)
	testutil.AssertEqual(t, len(h.Escapes), 0)
}
