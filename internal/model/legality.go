package model

// EndState classifies a position for the side to move.
type EndState struct {
	Check     bool
	Checkmate bool
	Stalemate bool
	Winner    *Color
}

// IsSquareAttacked reports whether any piece of attackingColor covers position.
func IsSquareAttacked(board Board, position Position, attackingColor Color) bool {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			piece := board[y][x]
			if piece.IsEmpty() || piece.Color != attackingColor {
				continue
			}
			from := Position{X: x, Y: y}
			if piece.Type == Pawn {
				if pawnAttacks(attackingColor, from, position) {
					return true
				}
				continue
			}
			if CanMove(board, piece.Type, attackingColor, from, position) {
				return true
			}
		}
	}
	return false
}

// IsKingInCheck reports whether color's king is attacked. A board without
// that king is never in check.
func IsKingInCheck(board Board, color Color) bool {
	king, ok := board.FindKing(color)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, color.Opponent())
}

// AllLegalMoves enumerates every ordinary move available to color by trying
// each source/destination pair and simulating it. Castling is not included.
func AllLegalMoves(board Board, color Color) []Move {
	legalMoves := []Move{}
	for fy := 0; fy < 8; fy++ {
		for fx := 0; fx < 8; fx++ {
			piece := board[fy][fx]
			if piece.IsEmpty() || piece.Color != color {
				continue
			}
			from := Position{X: fx, Y: fy}
			for ty := 0; ty < 8; ty++ {
				for tx := 0; tx < 8; tx++ {
					to := Position{X: tx, Y: ty}
					if move, ok := tryMove(board, piece, from, to); ok {
						legalMoves = append(legalMoves, move)
					}
				}
			}
		}
	}
	return legalMoves
}

// tryMove checks a single ordinary move for piece on from and returns it
// with its kind filled in.
func tryMove(board Board, piece Piece, from, to Position) (Move, bool) {
	if !CanMove(board, piece.Type, piece.Color, from, to) {
		return Move{}, false
	}
	target := board.At(to)
	if !target.IsEmpty() && target.Color == piece.Color {
		return Move{}, false
	}
	if IsKingInCheck(board.Move(from, to), piece.Color) {
		return Move{}, false
	}
	kind := MoveKindMove
	if !target.IsEmpty() {
		kind = MoveKindCapture
	}
	return Move{From: from, To: to, Kind: kind}, true
}

func hasLegalMove(board Board, color Color) bool {
	for fy := 0; fy < 8; fy++ {
		for fx := 0; fx < 8; fx++ {
			piece := board[fy][fx]
			if piece.IsEmpty() || piece.Color != color {
				continue
			}
			for ty := 0; ty < 8; ty++ {
				for tx := 0; tx < 8; tx++ {
					if _, ok := tryMove(board, piece, Position{X: fx, Y: fy}, Position{X: tx, Y: ty}); ok {
						return true
					}
				}
			}
		}
	}
	return false
}

// GameEndState evaluates the position for color, the side about to move.
func GameEndState(board Board, color Color) EndState {
	inCheck := IsKingInCheck(board, color)
	if hasLegalMove(board, color) {
		return EndState{Check: inCheck}
	}
	if inCheck {
		winner := color.Opponent()
		return EndState{Check: true, Checkmate: true, Winner: &winner}
	}
	return EndState{Stalemate: true}
}
