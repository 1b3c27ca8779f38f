// Package render draws a board frame to image formats.
package render

import (
	"boardeditor/src/base"
	"boardeditor/src/board"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Margin surrounds the tiles so the selection border stays visible.
const Margin = 3

type Palette struct {
	Background  color.RGBA
	SquareLight color.RGBA
	SquareDark  color.RGBA
	Selection   color.RGBA
	Label       color.RGBA
	WhitePiece  color.RGBA
	BlackPiece  color.RGBA
}

var LightPalette = Palette{
	Background:  color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	SquareLight: color.RGBA{0xf0, 0xd9, 0xb5, 0xff},
	SquareDark:  color.RGBA{0xb5, 0x88, 0x63, 0xff},
	Selection:   color.RGBA{0xff, 0x00, 0x00, 0xff},
	Label:       color.RGBA{0x22, 0x22, 0x22, 0xff},
	WhitePiece:  color.RGBA{0xfa, 0xfa, 0xfa, 0xff},
	BlackPiece:  color.RGBA{0x22, 0x22, 0x22, 0xff},
}

var DarkPalette = Palette{
	Background:  color.RGBA{0x12, 0x12, 0x12, 0xff},
	SquareLight: color.RGBA{0x9e, 0xa7, 0xb0, 0xff},
	SquareDark:  color.RGBA{0x4b, 0x57, 0x63, 0xff},
	Selection:   color.RGBA{0xff, 0x40, 0x40, 0xff},
	Label:       color.RGBA{0xee, 0xee, 0xee, 0xff},
	WhitePiece:  color.RGBA{0xfa, 0xfa, 0xfa, 0xff},
	BlackPiece:  color.RGBA{0x11, 0x11, 0x11, 0xff},
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

func (p Palette) Square(s base.TileShade) color.RGBA {
	if s == base.Dark {
		return p.SquareDark
	}
	return p.SquareLight
}

// PieceColors returns fill and ink for a kind.
func (p Palette) PieceColors(k base.PieceKind) (fill, ink color.RGBA) {
	if k.Color() == base.Black {
		return p.BlackPiece, p.WhitePiece
	}
	return p.WhitePiece, p.BlackPiece
}

// Glyph is the letter drawn on a piece disk.
func Glyph(k base.PieceKind) string {
	switch k.Role() {
	case base.King:
		return "K"
	case base.Queen:
		return "Q"
	case base.Rook:
		return "R"
	case base.Bishop:
		return "B"
	case base.Knight:
		return "N"
	case base.Pawn:
		return "P"
	default:
		return "?"
	}
}

// CanvasSize is the pixel edge of a rendered frame.
func CanvasSize(f board.Frame) int {
	return int(f.TileSize)*base.Cols + 2*Margin
}

// DrawPiece paints a piece disk with its glyph into the box at (x, y).
func DrawPiece(dc *gg.Context, pal Palette, k base.PieceKind, x, y, size float64) {
	fill, ink := pal.PieceColors(k)
	r := size / 2
	dc.DrawCircle(x+r, y+r, r-1)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(ink)
	dc.SetLineWidth(2)
	dc.Stroke()
	dc.SetFontFace(basicfont.Face7x13)
	dc.DrawStringAnchored(Glyph(k), x+r, y+r, 0.5, 0.35)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
