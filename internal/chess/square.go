package chess

import "fmt"

// Square is a (row, column) board coordinate. Row 0 is the first row the
// producer emits; for FEN and screenshots that is the eighth rank.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether the square lies on the 8x8 board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Add returns s shifted by d and whether the result is still on the board.
func (s Square) Add(d Offset) (Square, bool) {
	next := Square{Row: s.Row + d.DRow, Col: s.Col + d.DCol}
	return next, next.InBounds()
}

// Algebraic returns the square in algebraic notation (row 0 is rank 8).
func (s Square) Algebraic() string {
	if !s.InBounds() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+s.Col, '8'-s.Row)
}

// String returns "(row,col)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// Offset is a step on the board in rows and columns.
type Offset struct {
	DRow int
	DCol int
}

// Direction names one of the eight compass directions.
type Direction int

// Compass directions in king-move enumeration order.
const (
	East Direction = iota
	SouthEast
	South
	SouthWest
	West
	NorthWest
	North
	NorthEast
	NumDirections
)

var directionOffsets = [NumDirections]Offset{
	East:      {0, 1},
	SouthEast: {1, 1},
	South:     {1, 0},
	SouthWest: {1, -1},
	West:      {0, -1},
	NorthWest: {-1, -1},
	North:     {-1, 0},
	NorthEast: {-1, 1},
}

var directionNames = [NumDirections]string{"E", "SE", "S", "SW", "W", "NW", "N", "NE"}

// Offset returns the unit step for the direction.
func (d Direction) Offset() Offset {
	return directionOffsets[d]
}

// String returns the compass abbreviation of the direction.
func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return "?"
	}
	return directionNames[d]
}

// IsDiagonal reports whether the direction moves along a diagonal.
func (d Direction) IsDiagonal() bool {
	o := d.Offset()
	return o.DRow != 0 && o.DCol != 0
}

// Directions lists all eight compass directions in enumeration order.
var Directions = [NumDirections]Direction{East, SouthEast, South, SouthWest, West, NorthWest, North, NorthEast}

// KnightOffsets are the eight knight jumps.
var KnightOffsets = [8]Offset{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}
