package model

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// GameState is an immutable snapshot of a game. MakeMove never modifies its
// receiver; every accepted move yields a fresh state that shares no mutable
// storage with the previous one.
type GameState struct {
	Board     Board          `json:"board"`
	Turn      Color          `json:"turn"`
	MoveCount int            `json:"moveCount"`
	History   []string       `json:"history"`
	Check     bool           `json:"check"`
	Checkmate bool           `json:"checkmate"`
	Stalemate bool           `json:"stalemate"`
	Winner    *Color         `json:"winner,omitempty"`
	Castling  CastlingRights `json:"castling"`
	LastMove  *Move          `json:"lastMove,omitempty"`
}

const (
	OutcomeInProgress = "in_progress"
	OutcomeCheckmate  = "checkmate"
	OutcomeStalemate  = "stalemate"
)

func NewGameState() GameState {
	return GameState{
		Board:    newBoard(),
		Turn:     White,
		History:  []string{},
		Castling: allCastlingRights(),
	}
}

func (s GameState) IsOver() bool {
	return s.Checkmate || s.Stalemate
}

func (s GameState) Outcome() string {
	switch {
	case s.Checkmate:
		return OutcomeCheckmate
	case s.Stalemate:
		return OutcomeStalemate
	}
	return OutcomeInProgress
}

// LegalMoves lists the ordinary moves available to the side to move.
func (s GameState) LegalMoves() []Move {
	if s.IsOver() {
		return []Move{}
	}
	return AllLegalMoves(s.Board, s.Turn)
}

// MakeMove applies notation for the side to move and returns the resulting
// state. On error the returned state is the receiver, unchanged.
func (s GameState) MakeMove(notation string) (GameState, error) {
	if s.IsOver() {
		return s, fmt.Errorf("%w: no moves after %s", ErrGameOver, s.Outcome())
	}

	move, err := ParseMove(s.Board, s.Turn, notation)
	if err != nil {
		return s, err
	}

	piece := s.Board.At(move.From)
	if piece.IsEmpty() {
		return s, &OwnershipError{Square: move.From.Square(), Reason: "no piece at source square"}
	}
	if piece.Color != s.Turn {
		return s, &OwnershipError{Square: move.From.Square(), Reason: fmt.Sprintf("piece belongs to %s", piece.Color)}
	}

	var board Board
	if move.Kind.isCastle() {
		board, err = s.castle(move, notation)
	} else {
		board, err = s.advance(piece, move, notation)
	}
	if err != nil {
		return s, err
	}

	opponent := s.Turn.Opponent()
	end := GameEndState(board, opponent)

	return GameState{
		Board:     board,
		Turn:      opponent,
		MoveCount: s.MoveCount + 1,
		History:   append(slices.Clone(s.History), notation),
		Check:     end.Check,
		Checkmate: end.Checkmate,
		Stalemate: end.Stalemate,
		Winner:    end.Winner,
		Castling:  s.Castling.afterMove(move.From, move.To),
		LastMove:  &move,
	}, nil
}

func (s GameState) advance(piece Piece, move Move, notation string) (Board, error) {
	if !CanMove(s.Board, piece.Type, piece.Color, move.From, move.To) {
		return Board{}, &IllegalMoveError{Notation: notation, Reason: fmt.Sprintf("%s on %s cannot move to %s", piece.Type, move.From.Square(), move.To.Square())}
	}
	if target := s.Board.At(move.To); !target.IsEmpty() && target.Color == piece.Color {
		return Board{}, &IllegalMoveError{Notation: notation, Reason: fmt.Sprintf("%s is occupied by your own %s", move.To.Square(), target.Type)}
	}
	board := s.Board.Move(move.From, move.To)
	if IsKingInCheck(board, piece.Color) {
		return Board{}, &IllegalMoveError{Notation: notation, Reason: "move leaves your king in check"}
	}
	return board, nil
}

func (s GameState) castle(move Move, notation string) (Board, error) {
	king, rook := castleMoves(move.Kind, s.Turn)
	opponent := s.Turn.Opponent()

	if !s.Castling.allows(s.Turn, move.Kind) {
		return Board{}, &IllegalMoveError{Notation: notation, Reason: "castling right has been lost"}
	}
	if !s.Board.At(king.From).Is(King, s.Turn) || !s.Board.At(rook.From).Is(Rook, s.Turn) {
		return Board{}, &IllegalMoveError{Notation: notation, Reason: "king and rook must be on their starting squares"}
	}
	if !IsPathClear(s.Board, king.From, rook.From) {
		return Board{}, &IllegalMoveError{Notation: notation, Reason: "pieces stand between king and rook"}
	}
	if IsSquareAttacked(s.Board, king.From, opponent) {
		return Board{}, &IllegalMoveError{Notation: notation, Reason: "cannot castle out of check"}
	}
	step := sign(king.To.X - king.From.X)
	for x := king.From.X + step; ; x += step {
		if IsSquareAttacked(s.Board, Position{X: x, Y: king.From.Y}, opponent) {
			return Board{}, &IllegalMoveError{Notation: notation, Reason: "king cannot pass through or land on an attacked square"}
		}
		if x == king.To.X {
			break
		}
	}

	return s.Board.Move(king.From, king.To).Move(rook.From, rook.To), nil
}

// Replay applies moves in order and stops at the first rejected one,
// returning the last good state alongside the error.
func (s GameState) Replay(moves ...string) (GameState, error) {
	for i, notation := range moves {
		next, err := s.MakeMove(notation)
		if err != nil {
			return s, fmt.Errorf("move %d: %w", i+1, err)
		}
		s = next
	}
	return s, nil
}
