package engine

import (
	"fmt"
	"strings"
	"sync"

	corentings "github.com/corentings/chess/v2"

	"github.com/lgbarn/kingcheck-go/internal/chess"
	"github.com/lgbarn/kingcheck-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceTypes = map[chess.Piece]corentings.PieceType{
	chess.King:   corentings.King,
	chess.Queen:  corentings.Queen,
	chess.Rook:   corentings.Rook,
	chess.Bishop: corentings.Bishop,
	chess.Knight: corentings.Knight,
	chess.Pawn:   corentings.Pawn,
}

var pieceKinds = func() map[corentings.PieceType]chess.Piece {
	m := make(map[corentings.PieceType]chess.Piece, len(pieceTypes))
	for kind, t := range pieceTypes {
		m[t] = kind
	}
	return m
}()

// fenSquare maps a board square to its FEN square. Row 0 is rank 8.
// fenMu serialises placement decoding; the decoder reuses package-level
// rank buffers.
var fenMu sync.Mutex

func fenSquare(sq chess.Square) corentings.Square {
	return corentings.NewSquare(corentings.File(sq.Col), corentings.Rank(chess.LastIndex-sq.Row))
}

// NewBoardFromFEN creates a board from a FEN string. Only the piece
// placement field is used; the remaining fields may be omitted.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	var placement corentings.Board
	fenMu.Lock()
	err := placement.UnmarshalText([]byte(parts[0]))
	fenMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			p := placement.Piece(fenSquare(sq))
			if p == corentings.NoPiece {
				continue
			}
			colour := chess.White
			if p.Color() == corentings.Black {
				colour = chess.Black
			}
			board.Set(sq, chess.MakeColouredPiece(colour, pieceKinds[p.Type()]))
		}
	}
	return board, nil
}

// ToFEN returns the piece placement field of the board's FEN.
func ToFEN(board *chess.Board) string {
	squares := make(map[corentings.Square]corentings.Piece)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.GetByIndex(row, col)
			if piece == chess.Empty {
				continue
			}
			colour := corentings.White
			if chess.ExtractColour(piece) == chess.Black {
				colour = corentings.Black
			}
			squares[fenSquare(chess.Sq(row, col))] = corentings.NewPiece(pieceTypes[chess.ExtractPiece(piece)], colour)
		}
	}
	return corentings.NewBoard(squares).String()
}
