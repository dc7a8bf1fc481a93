// Package analysis decides, for a parsed board, which side is in check and
// whether the checked king can escape.
package analysis

import (
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/lgbarn/kingcheck-go/internal/chess"
	"github.com/lgbarn/kingcheck-go/internal/engine"
)

var log = slog.Default().With("package", "analysis")

// Outcome is the reported mate status of a board.
type Outcome int

const (
	None     Outcome = iota // No king is in check
	NotMated                // The checked king has a safe square
	Mated                   // The checked lone king has no safe square
	Unknown                 // No escape, but other defenders might still help
)

var outcomeNames = [...]string{"None", "NotMated", "Mated", "Unknown"}

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name written by MarshalText.
func (o *Outcome) UnmarshalText(text []byte) error {
	for i, name := range outcomeNames {
		if name == string(text) {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}

// Report holds everything learned about one board.
type Report struct {
	Rows      []string
	FEN       string
	InCheck   bool
	Checked   chess.Colour // Valid only when InCheck
	Outcome   Outcome
	Defenders int // Pieces of the checked side, king included
	King      chess.Square
	Attackers []chess.Square
	Escapes   []chess.Square

	// Origin is the board's top-left pixel when it was read from an image.
	Origin    image.Point
	HasOrigin bool
}

// CheckerLetter returns "W" when White gives check, "B" when Black does
// and "-" when neither king is attacked.
func (r *Report) CheckerLetter() string {
	if !r.InCheck {
		return "-"
	}
	return string(r.Checked.Opposite().Letter())
}

// ResultLine returns "1" for mate, "0" for no mate or no check and an
// empty string when the result is unknown.
func (r *Report) ResultLine() string {
	switch r.Outcome {
	case Mated:
		return "1"
	case None, NotMated:
		return "0"
	default:
		return ""
	}
}

// OriginLine returns the board's top-left pixel as "row,column" for image
// inputs and an empty string otherwise.
func (r *Report) OriginLine() string {
	if !r.HasOrigin {
		return ""
	}
	return fmt.Sprintf("%d,%d", r.Origin.Y, r.Origin.X)
}

// Summary returns the four-line report: origin, FEN placement, checker
// letter and result.
func (r *Report) Summary() string {
	var sb strings.Builder
	for _, line := range []string{r.OriginLine(), r.FEN, r.CheckerLetter(), r.ResultLine()} {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Analyze determines the check status of the board. The Black king is
// examined first and must be present; the White king is examined, and
// required, only when Black is not in check.
func Analyze(board *chess.Board) (*Report, error) {
	report := &Report{
		Rows: engine.FormatRows(board),
		FEN:  engine.ToFEN(board),
	}

	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		inCheck, err := engine.IsInCheck(board, colour)
		if err != nil {
			return nil, err
		}
		if inCheck {
			report.InCheck = true
			report.Checked = colour
			break
		}
	}

	if !report.InCheck {
		report.Outcome = None
		log.Debug("no check", "fen", report.FEN)
		return report, nil
	}

	colour := report.Checked
	king, err := engine.FindKing(board, colour)
	if err != nil {
		return nil, err
	}
	report.King = king
	report.Defenders = board.Count(colour)
	report.Attackers = engine.Attackers(board, king, colour)

	verdict, err := engine.FindEscape(board, colour)
	if err != nil {
		return nil, err
	}
	if report.Escapes, err = engine.EscapeSquares(board, colour); err != nil {
		return nil, err
	}

	report.Outcome = applyLoneKingGate(verdict, engine.IsLoneKing(board, colour))
	log.Debug("check found",
		"fen", report.FEN,
		"checked", colour,
		"verdict", verdict,
		"outcome", report.Outcome,
		"defenders", report.Defenders)
	return report, nil
}

// applyLoneKingGate converts an escape verdict into an outcome. The
// escape search only moves the king, so a Mated verdict stands only when
// the king is the last piece of its side.
func applyLoneKingGate(verdict engine.Verdict, lone bool) Outcome {
	if verdict == engine.NotMated {
		return NotMated
	}
	if !lone {
		return Unknown
	}
	return Mated
}

// AnalyzeRows parses grid rows and analyses the resulting board.
func AnalyzeRows(rows []string) (*Report, error) {
	board, err := engine.ParseRows(rows)
	if err != nil {
		return nil, err
	}
	return Analyze(board)
}

// AnalyzeFEN parses a FEN placement and analyses the resulting board.
func AnalyzeFEN(fen string) (*Report, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return Analyze(board)
}
