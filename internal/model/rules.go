package model

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// CanMove reports whether a piece of the given type and color may move from
// one square to another by its movement pattern alone. Whether the move
// exposes the mover's king is decided by the legality engine, and whether
// the destination holds a friendly piece is left to the caller.
func CanMove(board Board, pieceType PieceType, color Color, from, to Position) bool {
	if !boundaryCheck(from) || !boundaryCheck(to) || from == to {
		return false
	}
	dx := to.X - from.X
	dy := to.Y - from.Y

	switch pieceType {
	case Pawn:
		return canPawnMove(board, color, from, to)
	case Knight:
		return (abs(dx) == 2 && abs(dy) == 1) || (abs(dx) == 1 && abs(dy) == 2)
	case Bishop:
		return abs(dx) == abs(dy) && IsPathClear(board, from, to)
	case Rook:
		return (dx == 0 || dy == 0) && IsPathClear(board, from, to)
	case Queen:
		return (abs(dx) == abs(dy) || dx == 0 || dy == 0) && IsPathClear(board, from, to)
	case King:
		return abs(dx) <= 1 && abs(dy) <= 1
	}
	return false
}

func canPawnMove(board Board, color Color, from, to Position) bool {
	dir := color.forward()
	dx := to.X - from.X
	dy := to.Y - from.Y
	target := board.At(to)

	// advance
	if dx == 0 {
		if dy == dir {
			return target.IsEmpty()
		}
		if dy == 2*dir && from.Y == color.pawnStartRow() {
			return target.IsEmpty() && board[from.Y+dir][from.X].IsEmpty()
		}
		return false
	}
	// capture
	return abs(dx) == 1 && dy == dir && !target.IsEmpty() && target.Color != color
}

// pawnAttacks reports whether a pawn of color on from covers to, regardless
// of what stands on to.
func pawnAttacks(color Color, from, to Position) bool {
	return abs(to.X-from.X) == 1 && to.Y-from.Y == color.forward()
}

// IsPathClear reports whether every square strictly between from and to is
// empty. from and to must share a row, a file or a diagonal.
func IsPathClear(board Board, from, to Position) bool {
	step := Position{X: sign(to.X - from.X), Y: sign(to.Y - from.Y)}
	current := Position{X: from.X + step.X, Y: from.Y + step.Y}
	for current != to && boundaryCheck(current) {
		if !board.At(current).IsEmpty() {
			return false
		}
		current = Position{X: current.X + step.X, Y: current.Y + step.Y}
	}
	return true
}
