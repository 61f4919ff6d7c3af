package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type PieceType string

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

func pieceTypeFromNotation(letter byte) (PieceType, bool) {
	switch letter {
	case 'K':
		return King, true
	case 'Q':
		return Queen, true
	case 'R':
		return Rook, true
	case 'B':
		return Bishop, true
	case 'N':
		return Knight, true
	}
	return "", false
}

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the row delta a pawn of this color advances by.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) pawnStartRow() int {
	if c == White {
		return 6
	}
	return 1
}

func (c Color) homeRow() int {
	if c == White {
		return 7
	}
	return 0
}

// Piece is the content of a single square. The zero value is an empty square.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

func (p Piece) IsEmpty() bool {
	return p.Type == ""
}

func (p Piece) Is(t PieceType, c Color) bool {
	return p.Type == t && p.Color == c
}

func (p Piece) MarshalJSON() ([]byte, error) {
	if p.IsEmpty() {
		return []byte("null"), nil
	}
	type plain Piece
	return json.Marshal(plain(p))
}

func (p *Piece) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = Piece{}
		return nil
	}
	type plain Piece
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Piece(v)
	return nil
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Square returns the algebraic name of the position, e.g. "e4".
func (p Position) Square() string {
	return fmt.Sprintf("%c%d", p.X+'a', 8-p.Y)
}

func (p Position) getFileNotation() string {
	return fmt.Sprintf("%c", p.X+'a')
}

func (p Position) getRankNotation() string {
	return fmt.Sprintf("%d", 8-p.Y)
}

// ParseSquare converts an algebraic square such as "e4" into board indices.
func ParseSquare(square string) (Position, bool) {
	if len(square) != 2 {
		return Position{}, false
	}
	file, rank := square[0], square[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, false
	}
	return Position{X: int(file - 'a'), Y: int('8' - rank)}, true
}

func boundaryCheck(position Position) bool {
	return position.X >= 0 && position.X < 8 && position.Y >= 0 && position.Y < 8
}

// Board is an 8x8 grid indexed [row][file]; row 0 is rank 8.
// It is a value type: assigning or passing a Board copies all 64 squares.
type Board [8][8]Piece

func (b Board) At(p Position) Piece {
	return b[p.Y][p.X]
}

// Move returns a copy of the board with the piece on from relocated to to.
func (b Board) Move(from, to Position) Board {
	next := b
	next[to.Y][to.X] = next[from.Y][from.X]
	next[from.Y][from.X] = Piece{}
	return next
}

func (b Board) FindKing(color Color) (Position, bool) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if b[y][x].Is(King, color) {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

func newBoard() Board {
	var board Board
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for i := 0; i < 8; i++ {
		board[0][i] = Piece{Type: backRank[i], Color: Black}
		board[1][i] = Piece{Type: Pawn, Color: Black}
		board[6][i] = Piece{Type: Pawn, Color: White}
		board[7][i] = Piece{Type: backRank[i], Color: White}
	}
	return board
}
