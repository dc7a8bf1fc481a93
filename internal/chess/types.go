// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the single letter used for the colour in reports (W or B).
func (c Colour) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// Piece represents a chess piece type, or a coloured piece once combined
// with a colour by MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p > King {
		p = ExtractPiece(p)
	}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceKinds lists the six piece types in a fixed order.
var PieceKinds = [...]Piece{King, Queen, Rook, Bishop, Knight, Pawn}

// Constants for board dimensions.
const (
	BoardSize = 8
	LastIndex = BoardSize - 1
)

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsColour reports whether p is a piece (not Empty) of the given colour.
func IsColour(p Piece, colour Colour) bool {
	return p != Empty && ExtractColour(p) == colour
}

// PawnAdvance returns the row step a pawn of the given colour moves by.
// White pawns advance toward row 0, the first row the producers emit.
func PawnAdvance(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}
