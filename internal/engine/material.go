package engine

import "github.com/lgbarn/kingcheck-go/internal/chess"

// IsLoneKing reports whether the given colour's king is its only piece.
func IsLoneKing(board *chess.Board, colour chess.Colour) bool {
	_, hasKing := board.Find(chess.MakeColouredPiece(colour, chess.King))
	return hasKing && board.Count(colour) == 1
}
