package engine

import "github.com/lgbarn/kingcheck-go/internal/chess"

// Verdict is the outcome of a king escape search.
type Verdict int

const (
	NotMated Verdict = iota // At least one adjacent square is safe
	Mated                   // Every reachable adjacent square is attacked
)

// String returns the string representation of a verdict.
func (v Verdict) String() string {
	if v == Mated {
		return "Mated"
	}
	return "NotMated"
}

// trialMove reports whether the king on from may step in direction dir
// to a square that is not attacked. Off-board destinations and squares
// held by the king's own side are not trials. A capture is modelled by
// the captured piece vanishing from a private copy of the board.
func trialMove(board *chess.Board, from chess.Square, dir chess.Direction, colour chess.Colour) (chess.Square, bool) {
	to, ok := from.Add(dir.Offset())
	if !ok {
		return to, false
	}
	if chess.IsColour(board.Get(to), colour) {
		return to, false
	}
	hypothetical := board.WithMove(from, to)
	return to, !IsSquareAttacked(hypothetical, to, colour)
}

// FindEscape decides whether the given colour's king can step out of
// attack. It tries the eight adjacent squares in the fixed order
// E, SE, S, SW, W, NW, N, NE and stops at the first safe one.
//
// Only king moves are considered: blocking or capturing the attacker
// with another piece is never modelled, so a Mated verdict is only
// meaningful when the king is its side's last piece. Callers are expected
// to have established check first; a king that is not attacked already
// stands on a safe square and yields NotMated.
func FindEscape(board *chess.Board, colour chess.Colour) (Verdict, error) {
	king, err := FindKing(board, colour)
	if err != nil {
		return NotMated, err
	}
	if !IsSquareAttacked(board, king, colour) {
		return NotMated, nil
	}
	for _, dir := range chess.Directions {
		if _, safe := trialMove(board, king, dir, colour); safe {
			return NotMated, nil
		}
	}
	return Mated, nil
}

// EscapeSquares returns every safe destination for the given colour's
// king, in the same order FindEscape tries them.
func EscapeSquares(board *chess.Board, colour chess.Colour) ([]chess.Square, error) {
	king, err := FindKing(board, colour)
	if err != nil {
		return nil, err
	}
	var squares []chess.Square
	for _, dir := range chess.Directions {
		if to, safe := trialMove(board, king, dir, colour); safe {
			squares = append(squares, to)
		}
	}
	return squares, nil
}
