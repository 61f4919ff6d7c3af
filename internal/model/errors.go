package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for rejected moves. Use errors.Is to classify an error
// returned by MakeMove or ParseMove.
var (
	ErrParse       = errors.New("invalid notation")
	ErrOwnership   = errors.New("wrong piece")
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

// ParseError reports notation that could not be turned into a single move.
type ParseError struct {
	Notation string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrParse, e.Notation, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// OwnershipError reports a move whose source square is empty or holds an
// opponent's piece.
type OwnershipError struct {
	Square string
	Reason string
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("%v on %s: %s", ErrOwnership, e.Square, e.Reason)
}

func (e *OwnershipError) Unwrap() error {
	return ErrOwnership
}

// IllegalMoveError reports a parsed move that the rules do not allow.
type IllegalMoveError struct {
	Notation string
	Reason   string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrIllegalMove, e.Notation, e.Reason)
}

func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}
