package model

type MoveKind string

const (
	MoveKindMove        MoveKind = "move"
	MoveKindCapture     MoveKind = "capture"
	MoveKindCastleShort MoveKind = "castle-short"
	MoveKindCastleLong  MoveKind = "castle-long"
)

func (k MoveKind) isCastle() bool {
	return k == MoveKindCastleShort || k == MoveKindCastleLong
}

type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
	Kind MoveKind `json:"kind"`
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.Square() + m.To.Square()
}

type CastleRookMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// castleMoves returns the king and rook relocations for a castle of the
// given kind by color.
func castleMoves(kind MoveKind, color Color) (Move, CastleRookMove) {
	row := color.homeRow()
	king := Move{From: Position{X: 4, Y: row}, Kind: kind}
	var rook CastleRookMove
	switch kind {
	case MoveKindCastleShort:
		king.To = Position{X: 6, Y: row}
		rook = CastleRookMove{From: Position{X: 7, Y: row}, To: Position{X: 5, Y: row}}
	case MoveKindCastleLong:
		king.To = Position{X: 2, Y: row}
		rook = CastleRookMove{From: Position{X: 0, Y: row}, To: Position{X: 3, Y: row}}
	}
	return king, rook
}

// CastlingRights records which castles each side may still make.
type CastlingRights struct {
	WhiteShort bool `json:"whiteShort"`
	WhiteLong  bool `json:"whiteLong"`
	BlackShort bool `json:"blackShort"`
	BlackLong  bool `json:"blackLong"`
}

func allCastlingRights() CastlingRights {
	return CastlingRights{WhiteShort: true, WhiteLong: true, BlackShort: true, BlackLong: true}
}

func (c CastlingRights) allows(color Color, kind MoveKind) bool {
	switch {
	case color == White && kind == MoveKindCastleShort:
		return c.WhiteShort
	case color == White && kind == MoveKindCastleLong:
		return c.WhiteLong
	case color == Black && kind == MoveKindCastleShort:
		return c.BlackShort
	case color == Black && kind == MoveKindCastleLong:
		return c.BlackLong
	}
	return false
}

// afterMove drops the rights lost when a piece leaves or lands on a king or
// rook home square.
func (c CastlingRights) afterMove(from, to Position) CastlingRights {
	for _, p := range []Position{from, to} {
		switch p {
		case Position{X: 4, Y: 7}:
			c.WhiteShort, c.WhiteLong = false, false
		case Position{X: 4, Y: 0}:
			c.BlackShort, c.BlackLong = false, false
		case Position{X: 7, Y: 7}:
			c.WhiteShort = false
		case Position{X: 0, Y: 7}:
			c.WhiteLong = false
		case Position{X: 7, Y: 0}:
			c.BlackShort = false
		case Position{X: 0, Y: 0}:
			c.BlackLong = false
		}
	}
	return c
}
