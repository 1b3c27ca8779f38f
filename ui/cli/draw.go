package cli

import (
	"boardeditor/src/base"
	"boardeditor/src/board"
	"fmt"
	"io"
)

type DrawFunc func(w io.Writer, f board.Frame, cursor int)

// PrintFrame draws the board with ANSI colours. The selected tile gets a red
// background and the cursor tile is framed with brackets.
func PrintFrame(w io.Writer, f board.Frame, cursor int) {
	const (
		reset   = "\033[0m"
		lightBg = "\033[47m"
		darkBg  = "\033[100m"
		selBg   = "\033[41m"
		whiteF  = "\033[97m"
		blackF  = "\033[30m"
		dimF    = "\033[90m"
	)

	pieceGlyph := func(p base.PieceKind) string {
		switch p {
		case base.WKing:
			return "♔"
		case base.WQueen:
			return "♕"
		case base.WRook:
			return "♖"
		case base.WBishop:
			return "♗"
		case base.WKnight:
			return "♘"
		case base.WPawn:
			return "♙"
		case base.BKing:
			return "♚"
		case base.BQueen:
			return "♛"
		case base.BRook:
			return "♜"
		case base.BBishop:
			return "♝"
		case base.BKnight:
			return "♞"
		case base.BPawn:
			return "♟"
		case base.NoPiece:
			return " "
		default:
			return "?"
		}
	}

	var kinds [base.NumTiles]base.PieceKind
	for _, p := range f.Pieces {
		if p.IsBound() {
			kinds[p.Tile] = p.Kind
		}
	}
	tiles := make([]board.Tile, base.NumTiles)
	for _, t := range f.Tiles {
		tiles[t.Index] = t
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	for row := 0; row < base.Rows; row++ {
		rank := base.Rows - row
		fmt.Fprintf(w, "%d ", rank)
		for col := 0; col < base.Cols; col++ {
			t := tiles[base.ConvRowColToIndex(row, col)]
			p := kinds[t.Index]

			var bg, fg string
			switch {
			case t.Selected:
				bg = selBg
			case t.Shade == base.Light:
				bg = lightBg
			default:
				bg = darkBg
			}
			switch p.Color() {
			case base.White:
				fg = whiteF
			case base.Black:
				fg = blackF
			default:
				fg = dimF
			}

			cell := " " + pieceGlyph(p) + " "
			if p == base.NoPiece && t.ShowLabel {
				cell = fmt.Sprintf("%2d ", t.Index)
			}
			if t.Index == cursor {
				cell = "[" + pieceGlyph(p) + "]"
			}
			fmt.Fprintf(w, "%s%s%s%s", bg, fg, cell, reset)
		}
		fmt.Fprintf(w, " %d\n", rank)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	fmt.Fprintln(w)
}
