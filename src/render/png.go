package render

import (
	"boardeditor/src/board"
	"image"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Image draws the frame on a new context.
func Image(f board.Frame, pal Palette) image.Image {
	return drawFrame(f, pal).Image()
}

// PNG encodes the frame as a PNG image.
func PNG(w io.Writer, f board.Frame, pal Palette) error {
	return drawFrame(f, pal).EncodePNG(w)
}

func drawFrame(f board.Frame, pal Palette) *gg.Context {
	size := CanvasSize(f)
	dc := gg.NewContext(size, size)
	dc.SetColor(pal.Background)
	dc.Clear()
	dc.Translate(Margin, Margin)
	dc.SetFontFace(basicfont.Face7x13)

	for _, t := range f.Tiles {
		b := t.Bounds
		dc.DrawRectangle(b.Left(), b.Top(), b.W, b.H)
		dc.SetColor(pal.Square(t.Shade))
		dc.Fill()
		if t.ShowLabel {
			dc.SetColor(pal.Label)
			dc.DrawStringAnchored(board.TileLabel(t), b.Center.X, b.Center.Y, 0.5, 0.5)
		}
		if t.Selected {
			dc.DrawRectangle(b.Left()-1, b.Top()-1, b.W+2, b.H+2)
			dc.SetColor(pal.Selection)
			dc.SetLineWidth(2)
			dc.Stroke()
		}
	}
	dc.SetColor(pal.Label)
	for _, c := range f.Coordinates {
		dc.DrawStringAnchored(c.Text, c.Pos.X, c.Pos.Y, 0.5, 0.5)
	}
	for _, p := range f.Pieces {
		DrawPiece(dc, pal, p.Kind, p.Position.X, p.Position.Y, p.Size)
	}
	return dc
}
