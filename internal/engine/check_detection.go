package engine

import "github.com/lgbarn/kingcheck-go/internal/chess"

// attackTable maps a piece kind to the furthest distance at which it
// attacks along one ray. Zero means the kind never attacks along that ray.
type attackTable [chess.NumPieceValues]int

// unlimited reaches any square on the board.
const unlimited = chess.BoardSize

var (
	straightAttackers = attackTable{
		chess.Queen: unlimited,
		chess.Rook:  unlimited,
		chess.King:  1,
	}
	diagonalAttackers = attackTable{
		chess.Queen:  unlimited,
		chess.Bishop: unlimited,
		chess.King:   1,
	}
	// Diagonals from which the attacker's pawns capture toward the target.
	pawnDiagonalAttackers = attackTable{
		chess.Queen:  unlimited,
		chess.Bishop: unlimited,
		chess.King:   1,
		chess.Pawn:   1,
	}
)

// rayAttackers returns the compatibility table for a ray leaving the
// target in direction dir, when the pieces of colour attacker are the
// ones doing the attacking.
func rayAttackers(dir chess.Direction, attacker chess.Colour) *attackTable {
	if !dir.IsDiagonal() {
		return &straightAttackers
	}
	// A pawn standing at target+step captures back along -step, so it
	// only counts when -step is its colour's advance.
	if -dir.Offset().DRow == chess.PawnAdvance(attacker) {
		return &pawnDiagonalAttackers
	}
	return &diagonalAttackers
}

// scanRay steps from target in direction dir until the board edge or the
// first occupied square. It reports that square when it holds a piece of
// colour attacker able to attack at that distance. The first occupant
// always stops the ray, whatever its type or colour.
func scanRay(board *chess.Board, target chess.Square, dir chess.Direction, attacker chess.Colour) (chess.Square, bool) {
	table := rayAttackers(dir, attacker)
	step := dir.Offset()
	sq := target
	for distance := 1; ; distance++ {
		var onBoard bool
		if sq, onBoard = sq.Add(step); !onBoard {
			return chess.Square{}, false
		}
		piece := board.Get(sq)
		if piece == chess.Empty {
			continue
		}
		if chess.ExtractColour(piece) == attacker && distance <= table[chess.ExtractPiece(piece)] {
			return sq, true
		}
		return chess.Square{}, false // Blocked
	}
}

// attackersOf collects the squares of pieces opposing defending that
// attack target. With first set it stops at the first attacker found.
func attackersOf(board *chess.Board, target chess.Square, defending chess.Colour, first bool) []chess.Square {
	attacker := defending.Opposite()
	var found []chess.Square

	// Check sliding pieces, kings and pawns along rays
	for _, dir := range chess.Directions {
		if sq, ok := scanRay(board, target, dir, attacker); ok {
			found = append(found, sq)
			if first {
				return found
			}
		}
	}

	// Check knight attacks; knights jump, so nothing blocks them
	knight := chess.MakeColouredPiece(attacker, chess.Knight)
	for _, jump := range chess.KnightOffsets {
		sq, ok := target.Add(jump)
		if !ok {
			continue
		}
		if board.Get(sq) == knight {
			found = append(found, sq)
			if first {
				return found
			}
		}
	}

	return found
}

// IsSquareAttacked returns true if any piece opposing the defending colour
// attacks the target square. The board is not modified.
func IsSquareAttacked(board *chess.Board, target chess.Square, defending chess.Colour) bool {
	return len(attackersOf(board, target, defending, true)) > 0
}

// Attackers returns every square holding a piece opposing the defending
// colour that attacks target: ray attackers in direction order, then
// knights in offset order.
func Attackers(board *chess.Board, target chess.Square, defending chess.Colour) []chess.Square {
	return attackersOf(board, target, defending, false)
}

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king returns an error wrapping ErrKingNotFound.
func IsInCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	king, err := FindKing(board, colour)
	if err != nil {
		return false, err
	}
	return IsSquareAttacked(board, king, colour), nil
}
