package engine

import (
	"testing"

	"github.com/lgbarn/kingcheck-go/internal/chess"
	"github.com/lgbarn/kingcheck-go/internal/errors"
	"github.com/lgbarn/kingcheck-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Sq(7, 4)) == chess.W(chess.King) &&
					b.Get(chess.Sq(0, 4)) == chess.B(chess.King) &&
					b.Get(chess.Sq(6, 4)) == chess.W(chess.Pawn) &&
					b.Get(chess.Sq(1, 4)) == chess.B(chess.Pawn) &&
					b.Count(chess.White) == 16 &&
					b.Count(chess.Black) == 16
			},
		},
		{
			name: "placement only",
			fen:  "R3k3/8/8/8/8/8/8/8",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Sq(0, 0)) == chess.W(chess.Rook) &&
					b.Get(chess.Sq(0, 4)) == chess.B(chess.King) &&
					b.Count(chess.White) == 1
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Sq(4, 4)) == chess.W(chess.Pawn) &&
					b.Get(chess.Sq(6, 4)) == chess.Empty
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN(%q) produced unexpected board:\n%v", tt.fen, FormatRows(board))
			}
		})
	}
}

func TestNewBoardFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "8/8/8/8/8/8/8"},
		{"short rank", "7/8/8/8/8/8/8/8"},
		{"bad piece", "8/8/8/3x4/8/8/8/8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}

func TestToFEN(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want string
	}{
		{
			name: "open rank rook",
			rows: []string{"R***k***", "********", "********", "********", "********", "********", "********", "********"},
			want: "R3k3/8/8/8/8/8/8/8",
		},
		{
			name: "starting position",
			rows: []string{"rnbqkbnr", "pppppppp", "********", "********", "********", "********", "PPPPPPPP", "RNBQKBNR"},
			want: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToFEN(mustBoard(t, tt.rows))
			testutil.AssertEqual(t, got, tt.want)

			back, err := NewBoardFromFEN(got)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, FormatRows(back), tt.rows)
		})
	}
}
