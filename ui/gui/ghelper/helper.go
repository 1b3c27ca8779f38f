package ghelper

import (
	"boardeditor/src/base"
	"boardeditor/src/render"
	"boardeditor/ui/gui/gbase"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

func AppendButton(theme gbase.Palette, label string, x, y, w, h int, buttons []*gbase.Button) (int, []*gbase.Button) {
	b := &gbase.Button{
		Label:       label,
		X:           x,
		Y:           y,
		W:           w,
		H:           h,
		Image:       RenderRoundedRect(w, h, 12, theme.ButtonFill, theme.ButtonStroke, 3),
		Scale:       1.0,
		TargetScale: 1.0,
	}
	return len(buttons), append(buttons, b)
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

func EbitenutilDrawRectStroke(screen *ebiten.Image, x, y, w, h, thickness float64, col color.Color) {
	if screen == nil || w <= 0 || h <= 0 || thickness <= 0 {
		return
	}

	maxTh := math.Min(w, h) / 2.0
	if thickness > maxTh {
		thickness = maxTh
	}

	px := ebiten.NewImage(1, 1)
	px.Fill(col)

	// up
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, thickness)
	op.GeoM.Translate(x, y)
	screen.DrawImage(px, op)

	// down
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, thickness)
	op.GeoM.Translate(x, y+h-thickness)
	screen.DrawImage(px, op)

	// left
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(thickness, h-thickness*2)
	op.GeoM.Translate(x, y+thickness)
	screen.DrawImage(px, op)

	// right
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(thickness, h-thickness*2)
	op.GeoM.Translate(x+w-thickness, y+thickness)
	screen.DrawImage(px, op)
}

// PieceSprites renders piece images on first use, one per kind and size.
type PieceSprites struct {
	palette render.Palette
	cache   map[spriteKey]*ebiten.Image
}

type spriteKey struct {
	kind base.PieceKind
	size int
}

func NewPieceSprites(pal render.Palette) *PieceSprites {
	return &PieceSprites{palette: pal, cache: make(map[spriteKey]*ebiten.Image)}
}

func (ps *PieceSprites) Sprite(kind base.PieceKind, size float64) *ebiten.Image {
	key := spriteKey{kind: kind, size: int(size)}
	if img, ok := ps.cache[key]; ok {
		return img
	}
	if !kind.IsValid() || key.size <= 0 {
		return nil
	}
	dc := gg.NewContext(key.size, key.size)
	render.DrawPiece(dc, ps.palette, kind, 0, 0, float64(key.size))
	img := ebiten.NewImageFromImage(dc.Image())
	ps.cache[key] = img
	return img
}
