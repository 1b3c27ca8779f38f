package render

import (
	"boardeditor/src/board"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// SVG writes the frame as a standalone SVG document.
func SVG(w io.Writer, f board.Frame, pal Palette) {
	size := CanvasSize(f)
	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Title("board")
	canvas.Rect(0, 0, size, size, "fill:"+hex(pal.Background))

	canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", Margin, Margin))
	canvas.Gid("tiles")
	for _, t := range f.Tiles {
		b := t.Bounds
		x, y, s := int(b.Left()), int(b.Top()), int(b.W)
		canvas.Rect(x, y, s, s, "fill:"+hex(pal.Square(t.Shade)))
		if t.ShowLabel {
			canvas.Text(int(b.Center.X), int(b.Center.Y), board.TileLabel(t),
				"text-anchor:middle;dominant-baseline:middle;font-size:20px;fill:"+hex(pal.Label))
		}
		if t.Selected {
			canvas.Rect(x-1, y-1, s+2, s+2, "fill:none;stroke-width:2;stroke:"+hex(pal.Selection))
		}
	}
	canvas.Gend()

	canvas.Gid("coordinates")
	for _, c := range f.Coordinates {
		canvas.Text(int(c.Pos.X), int(c.Pos.Y), c.Text,
			"text-anchor:middle;dominant-baseline:middle;font-size:14px;fill:"+hex(pal.Label))
	}
	canvas.Gend()

	canvas.Gid("pieces")
	for _, p := range f.Pieces {
		fill, ink := pal.PieceColors(p.Kind)
		r := int(p.Size / 2)
		cx, cy := int(p.Position.X)+r, int(p.Position.Y)+r
		canvas.Circle(cx, cy, r-1, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:2", hex(fill), hex(ink)))
		canvas.Text(cx, cy, Glyph(p.Kind),
			fmt.Sprintf("text-anchor:middle;dominant-baseline:middle;font-size:%dpx;fill:%s", r, hex(ink)))
	}
	canvas.Gend()

	canvas.Gend()
	canvas.End()
}
