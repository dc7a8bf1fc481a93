package chess

// Board is an 8x8 grid of coloured pieces, indexed [row][col].
// It is a value type: assigning a Board copies every square, so a
// hypothetical position never aliases the one it was derived from.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get returns the piece on the square, or Empty for an off-board square.
func (b *Board) Get(sq Square) Piece {
	if !sq.InBounds() {
		return Empty
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on the square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.InBounds() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// GetByIndex returns the piece at the given board array indices.
func (b *Board) GetByIndex(row, col int) Piece {
	return b.Squares[row][col]
}

// SetByIndex places a piece at the given board array indices.
func (b *Board) SetByIndex(row, col int, piece Piece) {
	b.Squares[row][col] = piece
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// WithMove returns a copy of the board with the piece on from moved to to.
// Whatever stood on to is discarded.
func (b *Board) WithMove(from, to Square) *Board {
	next := b.Copy()
	piece := next.Get(from)
	next.Set(from, Empty)
	next.Set(to, piece)
	return next
}

// Count returns the number of pieces of the given colour.
func (b *Board) Count(colour Colour) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if IsColour(b.Squares[row][col], colour) {
				n++
			}
		}
	}
	return n
}

// Find returns the first square, scanning rows top to bottom and columns
// left to right, holding exactly the given coloured piece.
func (b *Board) Find(piece Piece) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == piece {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}
