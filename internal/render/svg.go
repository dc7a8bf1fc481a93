package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/kingcheck-go/internal/chess"
	"github.com/lgbarn/kingcheck-go/internal/engine"
)

// Highlights marks the squares of interest on a diagram.
type Highlights struct {
	King      chess.Square
	HasKing   bool
	Attackers []chess.Square
	Escapes   []chess.Square
	Title     string
}

// Square size and fills for SVG diagrams.
const (
	SquareSize = 48
	margin     = 16

	lightFill    = "fill:#f0d9b5"
	darkFill     = "fill:#b58863"
	kingFill     = "fill:#e06c75;fill-opacity:0.7"
	attackerFill = "fill:#e5c07b;fill-opacity:0.7"
	escapeFill   = "fill:#98c379;fill-opacity:0.7"
	whiteText    = "fill:#ffffff;stroke:#000000;stroke-width:1"
	blackText    = "fill:#000000"
	labelText    = "fill:#555555;font-size:11px;text-anchor:middle"
	pieceText    = "font-family:sans-serif;font-size:28px;font-weight:bold;text-anchor:middle;dominant-baseline:central"
)

// Size returns the width and height of an SVG diagram.
func Size() int {
	return chess.BoardSize*SquareSize + 2*margin
}

// SVG writes a diagram of the board to w. Squares are drawn first, then
// highlight overlays, then piece letters and coordinates.
func SVG(w io.Writer, board *chess.Board, h Highlights) {
	canvas := svg.New(w)
	size := Size()
	canvas.Start(size, size)
	if h.Title != "" {
		canvas.Title(h.Title)
	}

	canvas.Gid("squares")
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			fill := lightFill
			if (row+col)%2 == 1 {
				fill = darkFill
			}
			x, y := origin(chess.Sq(row, col))
			canvas.Rect(x, y, SquareSize, SquareSize, fill)
		}
	}
	canvas.Gend()

	canvas.Gid("highlights")
	for _, sq := range h.Escapes {
		overlay(canvas, sq, escapeFill)
	}
	for _, sq := range h.Attackers {
		overlay(canvas, sq, attackerFill)
	}
	if h.HasKing {
		overlay(canvas, h.King, kingFill)
	}
	canvas.Gend()

	canvas.Gid("pieces")
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.GetByIndex(row, col)
			if piece == chess.Empty {
				continue
			}
			style := blackText
			if chess.ExtractColour(piece) == chess.White {
				style = whiteText
			}
			x, y := origin(chess.Sq(row, col))
			canvas.Text(x+SquareSize/2, y+SquareSize/2, string(engine.Symbol(piece)), pieceText+";"+style)
		}
	}
	canvas.Gend()

	canvas.Gid("coordinates")
	for i := 0; i < chess.BoardSize; i++ {
		canvas.Text(margin+i*SquareSize+SquareSize/2, size-margin/4, string(files[i]), labelText)
		canvas.Text(margin/2, margin+i*SquareSize+SquareSize/2, fmt.Sprint(chess.BoardSize-i), labelText)
	}
	canvas.Gend()
	canvas.End()
}

func origin(sq chess.Square) (int, int) {
	return margin + sq.Col*SquareSize, margin + sq.Row*SquareSize
}

func overlay(canvas *svg.SVG, sq chess.Square, fill string) {
	x, y := origin(sq)
	canvas.Rect(x, y, SquareSize, SquareSize, fill)
}
