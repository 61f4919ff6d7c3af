package model

import "testing"

func TestCanMove(t *testing.T) {
	// White: Ke1, Qd4, Ra1, Bc1, Nb1, pawns b2 e2 g2; black: ke8, rc5, pd5 f3 g3
	fen := "4k3/8/8/2rp4/3Q4/5pp1/1P2P1P1/RNB1K3 w - - 0 1"

	tests := []struct {
		name      string
		pieceType PieceType
		color     Color
		from, to  string
		want      bool
	}{
		{"pawn single step", Pawn, White, "e2", "e3", true},
		{"pawn double step", Pawn, White, "e2", "e4", true},
		{"pawn triple step", Pawn, White, "e2", "e5", false},
		{"pawn backwards", Pawn, White, "e2", "e1", false},
		{"pawn diagonal capture", Pawn, White, "e2", "f3", true},
		{"pawn diagonal onto empty", Pawn, White, "e2", "d3", false},
		{"pawn blocked single step", Pawn, White, "g2", "g3", false},
		{"pawn blocked double step", Pawn, White, "g2", "g4", false},
		{"black pawn forward", Pawn, Black, "d5", "d4", false},
		{"black pawn capture", Pawn, Black, "f3", "e2", true},
		{"black pawn capture backwards", Pawn, Black, "d5", "e6", false},
		{"knight jump over pieces", Knight, White, "b1", "d2", true},
		{"knight jump", Knight, White, "b1", "c3", true},
		{"knight straight", Knight, White, "b1", "b3", false},
		{"bishop blocked", Bishop, White, "c1", "a3", false},
		{"bishop diagonal", Bishop, White, "c1", "d2", true},
		{"bishop straight", Bishop, White, "c1", "c2", false},
		{"rook file", Rook, White, "a1", "a8", true},
		{"rook blocked rank", Rook, White, "a1", "d1", false},
		{"rook diagonal", Rook, White, "a1", "b2", false},
		{"queen diagonal", Queen, White, "d4", "g7", true},
		{"queen file blocked", Queen, White, "d4", "d6", false},
		{"queen rank", Queen, White, "d4", "a4", true},
		{"queen capture on rank", Queen, White, "d4", "d5", true},
		{"queen knight shape", Queen, White, "d4", "e6", false},
		{"king step", King, White, "e1", "f2", true},
		{"king two squares", King, White, "e1", "g1", false},
		{"king onto attacked square is geometric", King, White, "e1", "f1", true},
		{"null move", King, White, "e1", "e1", false},
	}

	board := mustFEN(t, fen).Board
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CanMove(board, tt.pieceType, tt.color, sq(t, tt.from), sq(t, tt.to))
			if got != tt.want {
				t.Errorf("CanMove(%s %s %s->%s) = %v, want %v", tt.color, tt.pieceType, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsPathClear(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		want     bool
	}{
		{"empty file", "8/8/8/8/8/8/8/8 w - - 0 1", "a1", "a8", true},
		{"white blocker", "8/8/8/8/P7/8/8/8 w - - 0 1", "a1", "a8", false},
		{"black blocker", "8/8/8/8/p7/8/8/8 w - - 0 1", "a1", "a8", false},
		{"occupied endpoints only", "p7/8/8/8/8/8/8/P7 w - - 0 1", "a1", "a8", true},
		{"diagonal blocker", "8/8/8/8/3n4/8/8/8 w - - 0 1", "a1", "h8", false},
		{"diagonal clear", "8/8/8/8/8/8/8/8 w - - 0 1", "h1", "a8", true},
		{"adjacent squares", "8/8/8/8/8/8/8/8 w - - 0 1", "d4", "e5", true},
		{"rank blocker", "8/8/8/8/8/8/8/2b5 w - - 0 1", "a1", "h1", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustFEN(t, tt.fen).Board
			if got := IsPathClear(board, sq(t, tt.from), sq(t, tt.to)); got != tt.want {
				t.Errorf("IsPathClear(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
