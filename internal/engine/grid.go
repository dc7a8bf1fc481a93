// Package engine provides board parsing, check detection and king escape search.
package engine

import (
	"strings"
	"unicode"

	"github.com/lgbarn/kingcheck-go/internal/chess"
	"github.com/lgbarn/kingcheck-go/internal/errors"
)

// EmptySymbol marks an empty square in grid rows.
const EmptySymbol = '*'

// Grid piece characters (always English, uppercase for White).
var pieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// ConvertSymbolToPiece converts a letter to a piece type, ignoring case.
func ConvertSymbolToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// PieceFromSymbol converts a grid character to a coloured piece.
// The second result is false for characters outside the grid alphabet.
func PieceFromSymbol(c byte) (chess.Piece, bool) {
	if c == EmptySymbol {
		return chess.Empty, true
	}
	piece := ConvertSymbolToPiece(c)
	if piece == chess.Empty {
		return chess.Empty, false
	}
	if unicode.IsLower(rune(c)) {
		return chess.B(piece), true
	}
	return chess.W(piece), true
}

// Symbol returns the grid character for a coloured piece.
func Symbol(colouredPiece chess.Piece) byte {
	if colouredPiece == chess.Empty {
		return EmptySymbol
	}
	letter, ok := pieceChars[chess.ExtractPiece(colouredPiece)]
	if !ok {
		return '?'
	}
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// KingSymbol returns the grid character of the given colour's king.
func KingSymbol(colour chess.Colour) byte {
	return Symbol(chess.MakeColouredPiece(colour, chess.King))
}

// ParseRows builds a board from exactly eight rows of exactly eight grid
// characters. Nothing is tolerated partially: any deviation is reported as
// a *errors.BoardError wrapping errors.ErrMalformedBoard.
func ParseRows(rows []string) (*chess.Board, error) {
	if len(rows) != chess.BoardSize {
		return nil, &errors.BoardError{
			Err: errors.Wrapf(errors.ErrMalformedBoard, "got %d rows, want %d", len(rows), chess.BoardSize),
			Row: -1,
			Col: -1,
		}
	}

	board := chess.NewBoard()
	for row, text := range rows {
		if len(text) != chess.BoardSize {
			return nil, &errors.BoardError{
				Err: errors.Wrapf(errors.ErrMalformedBoard, "row has %d characters, want %d", len(text), chess.BoardSize),
				Row: row,
				Col: -1,
				Got: text,
			}
		}
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := PieceFromSymbol(text[col])
			if !ok {
				return nil, &errors.BoardError{
					Err: errors.ErrMalformedBoard,
					Row: row,
					Col: col,
					Got: string(text[col]),
				}
			}
			board.SetByIndex(row, col, piece)
		}
	}
	return board, nil
}

// ParseGrid parses rows separated by '/' or newlines, the forms the image
// recognizer and grid files use. Surrounding whitespace is ignored.
func ParseGrid(text string) (*chess.Board, error) {
	text = strings.TrimSpace(text)
	var rows []string
	if strings.Contains(text, "/") {
		rows = strings.Split(text, "/")
	} else {
		rows = strings.Split(text, "\n")
	}
	for i, row := range rows {
		rows[i] = strings.TrimSpace(row)
	}
	return ParseRows(rows)
}

// FormatRows returns the board as eight grid rows.
func FormatRows(board *chess.Board) []string {
	rows := make([]string, chess.BoardSize)
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		sb.Reset()
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(Symbol(board.GetByIndex(row, col)))
		}
		rows[row] = sb.String()
	}
	return rows
}

// FindKing returns the square of the given colour's king, scanning rows
// top to bottom and columns left to right. A missing king is an error.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	sq, ok := board.Find(chess.MakeColouredPiece(colour, chess.King))
	if !ok {
		return chess.Square{}, errors.Wrapf(errors.ErrKingNotFound, "%s king", strings.ToLower(colour.String()))
	}
	return sq, nil
}
