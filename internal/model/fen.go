package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrInvalidFEN = errors.New("invalid FEN string")

func pieceFromFENChar(c rune) (Piece, bool) {
	color := White
	if unicode.IsLower(c) {
		color = Black
	}
	pieceType, ok := pieceTypeFromNotation(byte(unicode.ToUpper(c)))
	if !ok {
		if unicode.ToUpper(c) != 'P' {
			return Piece{}, false
		}
		pieceType = Pawn
	}
	return Piece{Type: pieceType, Color: color}, true
}

func (p Piece) fenChar() byte {
	letter := p.Type.getPieceNotation()
	if letter == "" {
		letter = "P"
	}
	if p.Color == Black {
		return letter[0] + ('a' - 'A')
	}
	return letter[0]
}

// ParseFEN builds a game state from the placement, side-to-move and castling
// fields of a FEN string. En passant and clock fields are accepted and
// ignored. The returned state has an empty history and its check, mate and
// stalemate flags evaluated for the side to move.
func ParseFEN(fen string) (GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return GameState{}, fmt.Errorf("empty FEN string: %w", ErrInvalidFEN)
	}

	board, err := parsePlacement(fields[0])
	if err != nil {
		return GameState{}, err
	}

	turn := White
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
		case "b":
			turn = Black
		default:
			return GameState{}, fmt.Errorf("side to move %q: %w", fields[1], ErrInvalidFEN)
		}
	}

	var castling CastlingRights
	if len(fields) > 2 {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				castling.WhiteShort = true
			case 'Q':
				castling.WhiteLong = true
			case 'k':
				castling.BlackShort = true
			case 'q':
				castling.BlackLong = true
			case '-':
			default:
				return GameState{}, fmt.Errorf("castling field %q: %w", fields[2], ErrInvalidFEN)
			}
		}
	}

	end := GameEndState(board, turn)
	return GameState{
		Board:     board,
		Turn:      turn,
		History:   []string{},
		Check:     end.Check,
		Checkmate: end.Checkmate,
		Stalemate: end.Stalemate,
		Winner:    end.Winner,
		Castling:  castling,
	}, nil
}

func parsePlacement(placement string) (Board, error) {
	var board Board
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return board, fmt.Errorf("expected 8 ranks, got %d: %w", len(rows), ErrInvalidFEN)
	}
	for y, row := range rows {
		x := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				continue
			}
			piece, ok := pieceFromFENChar(c)
			if !ok {
				return board, fmt.Errorf("invalid piece character %q: %w", c, ErrInvalidFEN)
			}
			if x > 7 {
				return board, fmt.Errorf("rank %d overflows: %w", 8-y, ErrInvalidFEN)
			}
			board[y][x] = piece
			x++
		}
		if x != 8 {
			return board, fmt.Errorf("rank %d has %d files: %w", 8-y, x, ErrInvalidFEN)
		}
	}
	return board, nil
}

// Placement returns the piece placement field of the board's FEN.
func (b Board) Placement() string {
	var sb strings.Builder
	for y := 0; y < 8; y++ {
		empty := 0
		for x := 0; x < 8; x++ {
			piece := b[y][x]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.fenChar())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if y < 7 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN returns the state as a FEN string. The en passant field is always "-"
// and the halfmove clock is always 0.
func (s GameState) FEN() string {
	side := "w"
	if s.Turn == Black {
		side = "b"
	}
	castling := ""
	if s.Castling.WhiteShort {
		castling += "K"
	}
	if s.Castling.WhiteLong {
		castling += "Q"
	}
	if s.Castling.BlackShort {
		castling += "k"
	}
	if s.Castling.BlackLong {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	return fmt.Sprintf("%s %s %s - 0 %d", s.Board.Placement(), side, castling, s.MoveCount/2+1)
}
