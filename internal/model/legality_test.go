package model

import (
	"math/rand"
	"testing"
)

func TestIsSquareAttacked(t *testing.T) {
	// white pawn e4, white knight g1, black bishop b4, black rook h8
	board := mustFEN(t, "4k2r/8/8/8/1b2P3/8/8/4K1N1 w - - 0 1").Board

	tests := []struct {
		square string
		by     Color
		want   bool
	}{
		{"d5", White, true},  // pawn diagonal
		{"f5", White, true},  // pawn diagonal
		{"e5", White, false}, // pawn advance square is not attacked
		{"f3", White, true},  // knight
		{"e2", White, true},  // knight and king
		{"e1", Black, true},  // bishop b4 through c3 d2
		{"h1", Black, true},  // rook down the h-file
		{"a1", Black, false},
		{"c5", Black, true}, // bishop
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.square+"/"+string(tt.by), func(t *testing.T) {
			t.Parallel()
			if got := IsSquareAttacked(board, sq(t, tt.square), tt.by); got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %s) = %v, want %v", tt.square, tt.by, got, tt.want)
			}
		})
	}
}

func TestIsKingInCheck(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		color Color
		want  bool
	}{
		{"start position", InitialFEN, White, false},
		{"rook check", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", White, true},
		{"blocked rook", "4k3/8/8/8/8/8/8/r1N1K3 w - - 0 1", White, false},
		{"pawn check", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", Black, true},
		{"pawn in front does not check", "4k3/4P3/8/8/8/8/8/4K3 b - - 0 1", Black, false},
		{"knight check", "4k3/8/5N2/8/8/8/8/4K3 b - - 0 1", Black, true},
		{"no king", "8/8/8/8/8/8/8/r7 w - - 0 1", White, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustFEN(t, tt.fen).Board
			if got := IsKingInCheck(board, tt.color); got != tt.want {
				t.Errorf("IsKingInCheck(%s) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestAllLegalMovesStartPosition(t *testing.T) {
	moves := AllLegalMoves(newBoard(), White)
	if len(moves) != 20 {
		t.Fatalf("len(AllLegalMoves(start, White)) = %d, want 20", len(moves))
	}
	if first := moves[0].String(); first != "a2a4" {
		t.Errorf("first legal move = %s, want a2a4", first)
	}
}

func TestFirstMovesNeverCheck(t *testing.T) {
	start := newBoard()
	for _, move := range AllLegalMoves(start, White) {
		board := start.Move(move.From, move.To)
		end := GameEndState(board, Black)
		if end.Check || end.Checkmate || end.Stalemate {
			t.Errorf("after %s: GameEndState(Black) = %+v, want no check", move, end)
		}
	}
}

func TestAllLegalMovesPinnedPiece(t *testing.T) {
	// The knight on e2 is pinned by the rook on e8.
	board := mustFEN(t, "4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1").Board
	for _, move := range AllLegalMoves(board, White) {
		if move.From == sq(t, "e2") {
			t.Errorf("AllLegalMoves returned pinned knight move %s", move)
		}
	}
}

func TestAllLegalMovesNeverExposeKing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		board := newBoard()
		turn := White
		for ply := 0; ply < 80; ply++ {
			moves := AllLegalMoves(board, turn)
			if len(moves) == 0 {
				break
			}
			for _, move := range moves {
				next := board.Move(move.From, move.To)
				king, ok := next.FindKing(turn)
				if !ok {
					t.Fatalf("game %d ply %d: %s removed the king", game, ply, move)
				}
				if IsSquareAttacked(next, king, turn.Opponent()) {
					t.Fatalf("game %d ply %d: %s leaves %s king attacked", game, ply, move, turn)
				}
				if target := board.At(move.To); !target.IsEmpty() && target.Color == turn {
					t.Fatalf("game %d ply %d: %s captures own piece", game, ply, move)
				}
			}
			move := moves[rng.Intn(len(moves))]
			board = board.Move(move.From, move.To)
			turn = turn.Opponent()
		}
	}
}

func TestGameEndState(t *testing.T) {
	white, black := White, Black
	tests := []struct {
		name  string
		fen   string
		color Color
		want  EndState
	}{
		{"start", InitialFEN, White, EndState{}},
		{"check", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", White, EndState{Check: true}},
		{"queen mate", "7k/6Q1/6K1/8/8/8/8/8 b - - 0 1", Black, EndState{Check: true, Checkmate: true, Winner: &white}},
		{"back rank mate", "6k1/8/8/8/8/8/5PPP/r5K1 w - - 0 1", White, EndState{Check: true, Checkmate: true, Winner: &black}},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Black, EndState{Stalemate: true}},
		{"king and pawn stalemate", "k7/P7/1K6/8/8/8/8/8 b - - 0 1", Black, EndState{Stalemate: true}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := GameEndState(mustFEN(t, tt.fen).Board, tt.color)
			if got.Check != tt.want.Check || got.Checkmate != tt.want.Checkmate || got.Stalemate != tt.want.Stalemate {
				t.Errorf("GameEndState(%s) = %+v, want %+v", tt.color, got, tt.want)
			}
			switch {
			case tt.want.Winner == nil && got.Winner != nil:
				t.Errorf("GameEndState(%s).Winner = %s, want nil", tt.color, *got.Winner)
			case tt.want.Winner != nil && (got.Winner == nil || *got.Winner != *tt.want.Winner):
				t.Errorf("GameEndState(%s).Winner = %v, want %s", tt.color, got.Winner, *tt.want.Winner)
			}
		})
	}
}
