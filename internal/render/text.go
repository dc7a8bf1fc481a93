// Package render draws boards as text diagrams and SVG images.
package render

import (
	"strings"

	"github.com/lgbarn/kingcheck-go/internal/chess"
	"github.com/lgbarn/kingcheck-go/internal/engine"
)

const files = "abcdefgh"

// Text returns a diagram of the board with rank numbers on the left and
// file letters underneath. A square listed in marks shows its mark
// instead of its contents.
func Text(board *chess.Board, marks map[chess.Square]byte) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		sb.WriteByte(byte('8' - row))
		sb.WriteString(" |")
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			symbol := engine.Symbol(board.Get(sq))
			if mark, ok := marks[sq]; ok {
				symbol = mark
			}
			sb.WriteByte(' ')
			sb.WriteByte(symbol)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for i := 0; i < chess.BoardSize; i++ {
		sb.WriteByte(' ')
		sb.WriteByte(files[i])
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Marks returns text marks for a set of highlights. Empty escape squares
// show 'o' and capturing escapes keep the captured piece.
func Marks(board *chess.Board, h Highlights) map[chess.Square]byte {
	marks := make(map[chess.Square]byte, len(h.Escapes))
	for _, sq := range h.Escapes {
		if board.Get(sq) == chess.Empty {
			marks[sq] = 'o'
		}
	}
	return marks
}
