package model

import (
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

const border = "  +------------------------+\n"

// RenderASCII draws the board from white's side in a fixed-width grid with
// rank and file labels. Squares touched by lastMove are bracketed.
func RenderASCII(board Board, lastMove *Move) string {
	var sb strings.Builder
	sb.WriteString(border)
	for y := 0; y < 8; y++ {
		sb.WriteByte(byte('8' - y))
		sb.WriteString(" |")
		for x := 0; x < 8; x++ {
			pos := Position{X: x, Y: y}
			glyph := byte('.')
			if piece := board.At(pos); !piece.IsEmpty() {
				glyph = piece.fenChar()
			}
			if lastMove != nil && (lastMove.From == pos || lastMove.To == pos) {
				sb.WriteByte('[')
				sb.WriteByte(glyph)
				sb.WriteByte(']')
			} else {
				sb.WriteByte(' ')
				sb.WriteByte(glyph)
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	sb.WriteString("    a  b  c  d  e  f  g  h\n")
	return sb.String()
}

const (
	svgSquare = 60
	svgMargin = 24
)

var svgGlyphs = map[Color]map[PieceType]string{
	White: {King: "♔", Queen: "♕", Rook: "♖", Bishop: "♗", Knight: "♘", Pawn: "♙"},
	Black: {King: "♚", Queen: "♛", Rook: "♜", Bishop: "♝", Knight: "♞", Pawn: "♟"},
}

// RenderSVG writes an SVG drawing of the board to w, white at the bottom,
// with the squares of lastMove highlighted.
func RenderSVG(w io.Writer, board Board, lastMove *Move) {
	size := 8*svgSquare + 2*svgMargin
	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:#302e2b")

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pos := Position{X: x, Y: y}
			fill := "#f0d9b5"
			if (x+y)%2 == 1 {
				fill = "#b58863"
			}
			if lastMove != nil && (lastMove.From == pos || lastMove.To == pos) {
				fill = "#cdd26a"
			}
			px := svgMargin + x*svgSquare
			py := svgMargin + y*svgSquare
			canvas.Rect(px, py, svgSquare, svgSquare, "fill:"+fill)
			if piece := board.At(pos); !piece.IsEmpty() {
				canvas.Text(px+svgSquare/2, py+svgSquare*3/4, svgGlyphs[piece.Color][piece.Type],
					"text-anchor:middle;font-size:44px;fill:#000")
			}
		}
	}

	labelStyle := "text-anchor:middle;font-size:14px;fill:#eee;font-family:monospace"
	for i := 0; i < 8; i++ {
		canvas.Text(svgMargin+i*svgSquare+svgSquare/2, size-svgMargin/3, string(rune('a'+i)), labelStyle)
		canvas.Text(svgMargin/2, svgMargin+i*svgSquare+svgSquare/2+5, string(rune('8'-i)), labelStyle)
	}
	canvas.End()
}
