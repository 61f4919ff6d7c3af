package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustFEN(t *testing.T, fen string) GameState {
	t.Helper()
	state, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return state
}

func sq(t *testing.T, square string) Position {
	t.Helper()
	p, ok := ParseSquare(square)
	if !ok {
		t.Fatalf("ParseSquare(%q) failed", square)
	}
	return p
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		square string
		want   Position
		ok     bool
	}{
		{"a8", Position{X: 0, Y: 0}, true},
		{"h1", Position{X: 7, Y: 7}, true},
		{"e4", Position{X: 4, Y: 4}, true},
		{"a1", Position{X: 0, Y: 7}, true},
		{"h8", Position{X: 7, Y: 0}, true},
		{"i1", Position{}, false},
		{"a9", Position{}, false},
		{"a0", Position{}, false},
		{"e", Position{}, false},
		{"e44", Position{}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.square, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseSquare(tt.square)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, %v, want %v, %v", tt.square, got, ok, tt.want, tt.ok)
			}
			if ok && got.Square() != tt.square {
				t.Errorf("ParseSquare(%q).Square() = %q", tt.square, got.Square())
			}
		})
	}
}

func TestNewBoard(t *testing.T) {
	board := newBoard()

	checks := map[string]Piece{
		"a1": {Type: Rook, Color: White},
		"e1": {Type: King, Color: White},
		"d1": {Type: Queen, Color: White},
		"e2": {Type: Pawn, Color: White},
		"e8": {Type: King, Color: Black},
		"g8": {Type: Knight, Color: Black},
		"c7": {Type: Pawn, Color: Black},
		"e4": {},
	}
	for square, want := range checks {
		if got := board.At(sq(t, square)); got != want {
			t.Errorf("newBoard().At(%s) = %+v, want %+v", square, got, want)
		}
	}

	if king, ok := board.FindKing(Black); !ok || king.Square() != "e8" {
		t.Errorf("FindKing(Black) = %v, %v, want e8", king.Square(), ok)
	}
}

func TestBoardMoveCopies(t *testing.T) {
	board := newBoard()
	next := board.Move(sq(t, "e2"), sq(t, "e4"))

	if board.At(sq(t, "e4")) != (Piece{}) || board.At(sq(t, "e2")).IsEmpty() {
		t.Errorf("Move mutated the original board")
	}
	if !next.At(sq(t, "e4")).Is(Pawn, White) || !next.At(sq(t, "e2")).IsEmpty() {
		t.Errorf("Move did not relocate the pawn: e2=%+v e4=%+v", next.At(sq(t, "e2")), next.At(sq(t, "e4")))
	}

	copied := board
	copied[0][0] = Piece{}
	if board[0][0].IsEmpty() {
		t.Errorf("assigning a Board shares storage with the original")
	}
}

func TestGameStateJSONRoundTrip(t *testing.T) {
	state, err := NewGameState().Replay("e4", "e5", "Nf3")
	if err != nil {
		t.Fatalf("Replay error: %v", err)
	}

	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}

	var decoded GameState
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	if diff := cmp.Diff(state, decoded); diff != "" {
		t.Errorf("GameState JSON round trip mismatch (-want +got):\n%s", diff)
	}

	next, err := decoded.MakeMove("Nc6")
	if err != nil {
		t.Fatalf("MakeMove on decoded state error: %v", err)
	}
	if next.MoveCount != 4 {
		t.Errorf("MoveCount = %d, want 4", next.MoveCount)
	}
}

func TestEmptySquareMarshalsNull(t *testing.T) {
	data, err := json.Marshal(Piece{})
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("json.Marshal(Piece{}) = %s, want null", data)
	}
}
