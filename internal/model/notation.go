package model

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	castleShortRegex = regexp.MustCompile(`^(?:O-O|0-0)$`)
	castleLongRegex  = regexp.MustCompile(`^(?:O-O-O|0-0-0)$`)
	pawnAdvanceRegex = regexp.MustCompile(`^([a-h][1-8])$`)
	pawnCaptureRegex = regexp.MustCompile(`^([a-h])x([a-h][1-8])$`)
	pieceMoveRegex   = regexp.MustCompile(`^([KQRBN])([a-h])?([1-8])?(x)?([a-h][1-8])$`)
)

// ParseMove turns SAN-like notation into a move for color on board.
//
// Supported forms, tried in order: castling (O-O, O-O-O, also written with
// zeros), pawn advance (e4), pawn capture (exd5) and piece moves with an
// optional file, rank or square disambiguator (Nf3, Nbd7, R1e2, Qh4e1, Qxe5).
// Trailing check and mate markers are ignored. Piece moves that more than
// one piece could make are rejected unless disambiguated.
func ParseMove(board Board, color Color, notation string) (Move, error) {
	clean := strings.TrimRight(strings.TrimSpace(notation), "+#")

	switch {
	case castleShortRegex.MatchString(clean):
		king, _ := castleMoves(MoveKindCastleShort, color)
		return king, nil
	case castleLongRegex.MatchString(clean):
		king, _ := castleMoves(MoveKindCastleLong, color)
		return king, nil
	}

	if m := pawnAdvanceRegex.FindStringSubmatch(clean); m != nil {
		to, _ := ParseSquare(m[1])
		return parsePawnAdvance(board, color, notation, to)
	}
	if m := pawnCaptureRegex.FindStringSubmatch(clean); m != nil {
		to, _ := ParseSquare(m[2])
		return parsePawnCapture(board, color, notation, int(m[1][0]-'a'), to)
	}
	if m := pieceMoveRegex.FindStringSubmatch(clean); m != nil {
		pieceType, _ := pieceTypeFromNotation(m[1][0])
		to, _ := ParseSquare(m[5])
		return parsePieceMove(board, color, notation, pieceType, m[2], m[3], m[4] != "", to)
	}

	return Move{}, &ParseError{Notation: notation, Reason: "unrecognized move format"}
}

// parsePawnAdvance locates the pawn behind to. When the square directly
// behind is empty and a pawn still stands on its start row two squares back,
// the advance is read as the double step.
func parsePawnAdvance(board Board, color Color, notation string, to Position) (Move, error) {
	dir := color.forward()
	from := Position{X: to.X, Y: to.Y - dir}
	if !boundaryCheck(from) {
		return Move{}, &ParseError{Notation: notation, Reason: fmt.Sprintf("no pawn can advance to %s", to.Square())}
	}

	behind := board.At(from)
	if behind.IsEmpty() {
		start := Position{X: to.X, Y: to.Y - 2*dir}
		if start.Y == color.pawnStartRow() && board.At(start).Is(Pawn, color) {
			from = start
		}
	} else if !behind.Is(Pawn, color) {
		// Anything else on the square behind blocks every pawn of this color.
		return Move{}, &ParseError{Notation: notation, Reason: fmt.Sprintf("no %s pawn on %s", color, from.Square())}
	}

	return Move{From: from, To: to, Kind: MoveKindMove}, nil
}

func parsePawnCapture(board Board, color Color, notation string, file int, to Position) (Move, error) {
	if abs(file-to.X) != 1 {
		return Move{}, &ParseError{Notation: notation, Reason: "a pawn captures onto an adjacent file"}
	}
	from := Position{X: file, Y: to.Y - color.forward()}
	if !boundaryCheck(from) {
		return Move{}, &ParseError{Notation: notation, Reason: fmt.Sprintf("no pawn can capture on %s", to.Square())}
	}
	if source := board.At(from); !source.IsEmpty() && source.Color == color && source.Type != Pawn {
		return Move{}, &ParseError{Notation: notation, Reason: fmt.Sprintf("no pawn on %s", from.Square())}
	}
	return Move{From: from, To: to, Kind: MoveKindCapture}, nil
}

func parsePieceMove(board Board, color Color, notation string, pieceType PieceType, fileHint, rankHint string, capture bool, to Position) (Move, error) {
	target := board.At(to)
	if capture && target.IsEmpty() {
		return Move{}, &ParseError{Notation: notation, Reason: fmt.Sprintf("nothing to capture on %s", to.Square())}
	}

	reachable := 0
	candidates := []Position{}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			from := Position{X: x, Y: y}
			if !board.At(from).Is(pieceType, color) || !CanMove(board, pieceType, color, from, to) {
				continue
			}
			reachable++
			if fileHint != "" && from.getFileNotation() != fileHint {
				continue
			}
			if rankHint != "" && from.getRankNotation() != rankHint {
				continue
			}
			candidates = append(candidates, from)
		}
	}

	switch {
	case reachable == 0:
		return Move{}, &ParseError{Notation: notation, Reason: fmt.Sprintf("no %s can reach %s", pieceType, to.Square())}
	case len(candidates) == 0:
		return Move{}, &ParseError{Notation: notation, Reason: fmt.Sprintf("no %s matching the disambiguator can reach %s", pieceType, to.Square())}
	case len(candidates) > 1:
		return Move{}, &ParseError{Notation: notation, Reason: fmt.Sprintf("ambiguous: %d pieces can reach %s", len(candidates), to.Square())}
	}

	kind := MoveKindMove
	if !target.IsEmpty() {
		kind = MoveKindCapture
	}
	return Move{From: candidates[0], To: to, Kind: kind}, nil
}
