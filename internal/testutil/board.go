package testutil

import "github.com/lgbarn/kingcheck-go/internal/chess"

// EmptyRow is a grid row with no pieces.
const EmptyRow = "********"

// EmptyRows returns eight empty grid rows.
func EmptyRows() []string {
	rows := make([]string, chess.BoardSize)
	for i := range rows {
		rows[i] = EmptyRow
	}
	return rows
}

// Rows returns eight grid rows with the given symbols placed.
// Off-board placements are ignored.
func Rows(placements map[chess.Square]byte) []string {
	grid := make([][]byte, chess.BoardSize)
	for i := range grid {
		grid[i] = []byte(EmptyRow)
	}
	for sq, symbol := range placements {
		if sq.InBounds() {
			grid[sq.Row][sq.Col] = symbol
		}
	}
	rows := make([]string, chess.BoardSize)
	for i, row := range grid {
		rows[i] = string(row)
	}
	return rows
}
