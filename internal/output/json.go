package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/kingcheck-go/internal/analysis"
	"github.com/lgbarn/kingcheck-go/internal/chess"
)

// JSONOrigin is the top-left pixel of a board read from an image.
type JSONOrigin struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// JSONBoard represents one analysed board in JSON format.
type JSONBoard struct {
	Source    string            `json:"source,omitempty"`
	Number    int               `json:"number,omitempty"`
	Error     string            `json:"error,omitempty"`
	Origin    *JSONOrigin       `json:"origin,omitempty"`
	FEN       string            `json:"fen,omitempty"`
	Rows      []string          `json:"rows,omitempty"`
	Checker   string            `json:"checker,omitempty"`
	Checked   string            `json:"checked,omitempty"`
	Outcome   *analysis.Outcome `json:"outcome,omitempty"`
	Result    string            `json:"result,omitempty"`
	King      string            `json:"king,omitempty"`
	Defenders int               `json:"defenders,omitempty"`
	Attackers []string          `json:"attackers,omitempty"`
	Escapes   []string          `json:"escapes,omitempty"`
}

// JSONOutput holds multiple boards for array output.
type JSONOutput struct {
	Boards []*JSONBoard `json:"boards"`
}

// EntryToJSON converts an entry to JSON format. Failed entries carry only
// their source, number and error text.
func EntryToJSON(e Entry) *JSONBoard {
	jb := &JSONBoard{Source: e.Source, Number: e.Number}
	if e.Err != nil {
		jb.Error = e.Err.Error()
		return jb
	}
	r := e.Report
	if r == nil {
		return jb
	}

	jb.FEN = r.FEN
	jb.Rows = r.Rows
	jb.Checker = r.CheckerLetter()
	jb.Result = r.ResultLine()
	outcome := r.Outcome
	jb.Outcome = &outcome
	if r.HasOrigin {
		jb.Origin = &JSONOrigin{Row: r.Origin.Y, Col: r.Origin.X}
	}
	if r.InCheck {
		jb.Checked = strings.ToLower(r.Checked.String())
		jb.King = r.King.Algebraic()
		jb.Defenders = r.Defenders
		jb.Attackers = algebraic(r.Attackers)
		jb.Escapes = algebraic(r.Escapes)
	}
	return jb
}

func algebraic(squares []chess.Square) []string {
	if len(squares) == 0 {
		return nil
	}
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.Algebraic()
	}
	return names
}

func encodeJSON(w io.Writer, v interface{}, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
