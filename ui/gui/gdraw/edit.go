package gdraw

import (
	"boardeditor/src/base"
	"boardeditor/src/board"
	"boardeditor/src/render"
	"boardeditor/ui/gui/gbase"
	"boardeditor/ui/gui/gctx"
	"boardeditor/ui/gui/ghelper"
	"boardeditor/ui/gui/ghelper/gclipboard"
	"boardeditor/ui/gui/ghelper/gdialog"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const toastDuration = 3 * time.Second

type GUIEditDrawer struct {
	face  font.Face
	toast gbase.Toast

	// layout
	boardX, boardY int
	boardSize      int
	sqSize         int
	paletteX       int

	// interaction
	prevMouseDown bool
	prevMouse     [2]int
	boardGesture  bool           // press started on the board
	dragKind      base.PieceKind // piece dragged out of the palette

	// buttons
	buttons     []*gbase.Button
	btnStartPos int
	btnClear    int
	btnGrid     int
	btnCopy     int
	btnSave     int

	// cache visuals
	sprites    *ghelper.PieceSprites
	sqLightImg *ebiten.Image
	sqDarkImg  *ebiten.Image
	borderImg  *ebiten.Image

	lastTick time.Time
}

func NewGUIEditDrawer(ctx *gctx.GUIGameContext) *GUIEditDrawer {
	ed := &GUIEditDrawer{
		face:     basicfont.Face7x13,
		dragKind: base.NoPiece,
		lastTick: time.Now(),
	}

	// layout
	ed.sqSize = int(ctx.Builder.Board().TileSize())
	ed.boardSize = ed.sqSize*base.Cols + 2*render.Margin
	ed.boardX = 20
	ed.boardY = (ctx.Config.WindowH - ed.boardSize) / 2
	if ed.boardY < 50 {
		ed.boardY = 50
	}
	ed.paletteX = ed.boardX + ed.boardSize + 24

	ed.prepareCache(ctx)

	// buttons
	spacingY := 16
	x := ed.paletteX + 2*(ed.sqSize+8) + 16
	y := ed.boardY
	w, h := 200, 44
	ed.btnStartPos, ed.buttons = ghelper.AppendButton(ctx.Theme, "Start Position", x, y, w, h, ed.buttons)
	ed.btnClear, ed.buttons = ghelper.AppendButton(ctx.Theme, "Clear", x, y+(h+spacingY), w, h, ed.buttons)
	ed.btnGrid, ed.buttons = ghelper.AppendButton(ctx.Theme, gridLabel(ctx.Builder.Board().LabelsShown()), x, y+(h+spacingY)*2, w, h, ed.buttons)
	ed.btnCopy, ed.buttons = ghelper.AppendButton(ctx.Theme, "Copy Layout", x, y+(h+spacingY)*3, w, h, ed.buttons)
	ed.btnSave, ed.buttons = ghelper.AppendButton(ctx.Theme, "Save Snapshot", x, y+(h+spacingY)*4, w, h, ed.buttons)

	return ed
}

func gridLabel(shown bool) string {
	if shown {
		return "Hide Grid"
	}
	return "Show Grid"
}

// Update translates the mouse into board-local pointer events and handles
// the palette and the buttons.
func (ed *GUIEditDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	now := time.Now()
	dt := now.Sub(ed.lastTick).Seconds()
	ed.lastTick = now

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return SceneNotChanged, gbase.ErrExit
	}

	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !ed.prevMouseDown
	justReleased := !mouseDown && ed.prevMouseDown
	moved := mx != ed.prevMouse[0] || my != ed.prevMouse[1]
	ed.prevMouseDown = mouseDown
	ed.prevMouse = [2]int{mx, my}

	builder := ctx.Builder
	ed.buttons[ed.btnClear].Disabled = !builder.Frame().HasPieces

	for i, b := range ed.buttons {
		clicked := b.HandleInput(mx, my, justPressed, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case ed.btnStartPos:
			builder.Reset()
		case ed.btnClear:
			builder.Clear()
		case ed.btnGrid:
			b.Label = gridLabel(builder.ToggleLabels())
		case ed.btnCopy:
			layout := builder.Layout()
			if err := gclipboard.WriteAll(layout); err != nil {
				ctx.Logx.Errorf("error copy layout to clipboard: %v", err)
				ed.toast.Show("Copy failed", toastDuration)
			} else {
				ed.toast.Show("Copied: "+layout, toastDuration)
			}
		case ed.btnSave:
			ed.saveSnapshot(ctx)
			// the dialog swallowed the release
			ed.prevMouseDown = false
		}
	}

	local := ed.toBoard(mx, my)
	if justPressed {
		if kind, ok := ed.paletteAt(mx, my); ok {
			ed.dragKind = kind
		} else if ed.inBoard(mx, my) {
			ed.boardGesture = true
			builder.Down(local)
		}
	}
	if mouseDown && moved && ed.boardGesture {
		builder.Move(local)
	}
	if justReleased {
		if ed.dragKind != base.NoPiece {
			builder.Drop(ed.dragKind.String(), local)
			ed.dragKind = base.NoPiece
		}
		if ed.boardGesture {
			builder.Up(local)
			ed.boardGesture = false
		}
	}

	return SceneNotChanged, nil
}

func (ed *GUIEditDrawer) saveSnapshot(ctx *gctx.GUIGameContext) {
	path, err := gdialog.SaveFile("Save board snapshot", "PNG image", "png")
	if err != nil {
		if !gdialog.IsCancelled(err) {
			ctx.Logx.Errorf("error save dialog: %v", err)
		}
		return
	}
	if err := render.SaveFile(path, ctx.Builder.Frame(), ctx.Theme.Board); err != nil {
		ctx.Logx.Errorf("error save snapshot: %v", err)
		ed.toast.Show("Save failed", toastDuration)
		return
	}
	ctx.Logx.Infof("snapshot saved to %s", path)
	ed.toast.Show("Saved "+path, toastDuration)
}

func (ed *GUIEditDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	f := ctx.Builder.Frame()
	pal := ctx.Theme.Board

	text.Draw(screen, "Board Editor", ed.face, ed.boardX, 24, ctx.Theme.MenuText)
	text.Draw(screen, fmt.Sprintf("Layout: %s   State: %v", ctx.Builder.Layout(), f.State), ed.face, ed.boardX, 42, ctx.Theme.MenuText)

	if ed.borderImg != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(ed.boardX-4), float64(ed.boardY-4))
		screen.DrawImage(ed.borderImg, op)
	}

	ox, oy := ed.origin()
	for _, t := range f.Tiles {
		img := ed.sqLightImg
		if t.Shade == base.Dark {
			img = ed.sqDarkImg
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(ox+t.Bounds.Left(), oy+t.Bounds.Top())
		screen.DrawImage(img, op)
		if t.ShowLabel {
			ed.drawCentered(screen, board.TileLabel(t), ox+t.Bounds.Center.X, oy+t.Bounds.Center.Y, pal)
		}
		if t.Selected {
			ghelper.EbitenutilDrawRectStroke(screen, ox+t.Bounds.Left()-1, oy+t.Bounds.Top()-1, t.Bounds.W+2, t.Bounds.H+2, 2, pal.Selection)
		}
	}
	for _, c := range f.Coordinates {
		ed.drawCentered(screen, c.Text, ox+c.Pos.X, oy+c.Pos.Y, pal)
	}

	// sprites are built on first draw; a piece without one is skipped
	for _, p := range f.Pieces {
		img := ed.sprites.Sprite(p.Kind, p.Size)
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(ox+p.Position.X, oy+p.Position.Y)
		screen.DrawImage(img, op)
	}

	ed.drawPalette(screen, ctx)

	if ed.dragKind != base.NoPiece {
		size := base.PieceSize(ed.dragKind, float64(ed.sqSize))
		if img := ed.sprites.Sprite(ed.dragKind, size); img != nil {
			mx, my := ebiten.CursorPosition()
			op := &ebiten.DrawImageOptions{}
			op.ColorScale.ScaleAlpha(0.85)
			op.GeoM.Translate(float64(mx)-size/2, float64(my)-size/2)
			screen.DrawImage(img, op)
		}
	}

	for _, b := range ed.buttons {
		b.DrawAnimated(screen, ed.face, ctx.Theme)
	}

	if ed.toast.Visible(time.Now()) {
		text.Draw(screen, ed.toast.Text, ed.face, ed.boardX, ed.boardY+ed.boardSize+24, ctx.Theme.Accent)
	}

	if ctx.Config.Debug {
		mx, my := ebiten.CursorPosition()
		local := ed.toBoard(mx, my)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Editor TPS: %0.2f  board (%.0f, %.0f)", ebiten.ActualTPS(), local.X, local.Y))
	}
}

func (ed *GUIEditDrawer) drawPalette(screen *ebiten.Image, ctx *gctx.GUIGameContext) {
	for i, kind := range base.AllPieceKinds {
		x, y := ed.paletteCell(i)
		ghelper.EbitenutilDrawRectStroke(screen, float64(x), float64(y), float64(ed.sqSize), float64(ed.sqSize), 1, ctx.Theme.ButtonStroke)
		size := base.PieceSize(kind, float64(ed.sqSize))
		img := ed.sprites.Sprite(kind, size)
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		off := (float64(ed.sqSize) - size) / 2
		op.GeoM.Translate(float64(x)+off, float64(y)+off)
		screen.DrawImage(img, op)
	}
}

func (ed *GUIEditDrawer) drawCentered(screen *ebiten.Image, s string, cx, cy float64, pal render.Palette) {
	bounds := text.BoundString(ed.face, s)
	text.Draw(screen, s, ed.face, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, pal.Label)
}

// ---------- helpers ----------

func (ed *GUIEditDrawer) prepareCache(ctx *gctx.GUIGameContext) {
	pal := ctx.Theme.Board
	ed.sqLightImg = ebiten.NewImage(ed.sqSize, ed.sqSize)
	ed.sqLightImg.Fill(pal.SquareLight)
	ed.sqDarkImg = ebiten.NewImage(ed.sqSize, ed.sqSize)
	ed.sqDarkImg.Fill(pal.SquareDark)
	ed.borderImg = ghelper.RenderRoundedRect(ed.boardSize+8, ed.boardSize+8, 6, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
	ed.sprites = ghelper.NewPieceSprites(pal)
}

// origin is the screen position of board-local (0, 0).
func (ed *GUIEditDrawer) origin() (float64, float64) {
	return float64(ed.boardX + render.Margin), float64(ed.boardY + render.Margin)
}

func (ed *GUIEditDrawer) toBoard(mx, my int) base.Point {
	ox, oy := ed.origin()
	return base.Point{X: float64(mx) - ox, Y: float64(my) - oy}
}

func (ed *GUIEditDrawer) inBoard(mx, my int) bool {
	return ghelper.PointInRect(mx, my, ed.boardX, ed.boardY, ed.boardSize, ed.boardSize)
}

// palette: white kinds in the first column, black kinds in the second
func (ed *GUIEditDrawer) paletteCell(i int) (x, y int) {
	per := len(base.AllPieceKinds) / 2
	x = ed.paletteX + (i/per)*(ed.sqSize+8)
	y = ed.boardY + (i%per)*(ed.sqSize+8)
	return x, y
}

func (ed *GUIEditDrawer) paletteAt(mx, my int) (base.PieceKind, bool) {
	for i, kind := range base.AllPieceKinds {
		x, y := ed.paletteCell(i)
		if ghelper.PointInRect(mx, my, x, y, ed.sqSize, ed.sqSize) {
			return kind, true
		}
	}
	return base.NoPiece, false
}
