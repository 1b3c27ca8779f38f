package gbase

import (
	"boardeditor/src/render"
	"errors"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// ---- Styles (palettes) ----

type Palette struct {
	Bg             color.RGBA
	ButtonFill     color.RGBA
	ButtonStroke   color.RGBA
	ButtonText     color.RGBA
	ButtonDisabled color.RGBA
	MenuText       color.RGBA
	Accent         color.RGBA
	Board          render.Palette
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:             color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	ButtonFill:     color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke:   color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:     color.RGBA{0x22, 0x22, 0x22, 0xff},
	ButtonDisabled: color.RGBA{0xaa, 0xaa, 0xaa, 0xff},
	MenuText:       color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:         color.RGBA{0x22, 0x88, 0xcc, 0xff},
	Board:          render.LightPalette,
}

var DarkPalette = Palette{
	Bg:             color.RGBA{0x12, 0x12, 0x12, 0xff},
	ButtonFill:     color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke:   color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	ButtonDisabled: color.RGBA{0x66, 0x66, 0x66, 0xff},
	MenuText:       color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:         color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	Board:          render.DarkPalette,
}

// ---- UI elements ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke
	Disabled   bool

	// animation state
	Hover   bool // mouse over
	Pressed bool // mouse currently pressed on this button
	// animation variables
	Scale         float64 // current scale (1.0 default)
	TargetScale   float64
	OffsetY       float64 // current vertical offset for pressed effect
	TargetOffsetY float64
	AnimSpeed     float64 // how fast to approach target (per second)
}

func (b *Button) Contains(px, py int) bool {
	return px >= b.X && px < b.X+b.W && py >= b.Y && py < b.Y+b.H
}

// Call every Update: pass mouse info, returns true if click finished on this button
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	inside := b.Contains(px, py)
	b.Hover = inside && !b.Disabled
	if b.Disabled {
		b.Pressed = false
		b.TargetScale = 1.0
		b.TargetOffsetY = 0
		return false
	}

	if justClicked && inside {
		b.Pressed = true
		b.TargetScale = 0.96
		b.TargetOffsetY = 3.0
	}
	if justReleased {
		if b.Pressed && inside {
			b.Pressed = false
			b.TargetScale = 1.03
			b.TargetOffsetY = 0
			return true
		}
		b.Pressed = false
		b.TargetScale = 1.0
		b.TargetOffsetY = 0
	}
	if inside && !b.Pressed {
		b.TargetScale = 1.02
		b.TargetOffsetY = 0
	} else if !b.Pressed {
		b.TargetScale = 1.0
		b.TargetOffsetY = 0
	}
	return false
}

// Call every Update with dt seconds to approach the target values
func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8.0
	}
	approach := func(cur *float64, target float64, speed float64) {
		t := 1.0 - math.Exp(-speed*dt)
		*cur = *cur*(1.0-t) + target*t
	}

	approach(&b.Scale, b.TargetScale, b.AnimSpeed)
	approach(&b.OffsetY, b.TargetOffsetY, b.AnimSpeed)

	if !b.Pressed && math.Abs(b.Scale-1.03) < 0.005 {
		b.TargetScale = 1.0
	}
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y+b.H/2) + b.OffsetY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.Image, op)

	clr := theme.ButtonText
	if b.Disabled {
		clr = theme.ButtonDisabled
	}
	bounds := text.BoundString(face, b.Label)
	tx := int(cx) - bounds.Dx()/2
	ty := int(cy) + bounds.Dy()/2
	text.Draw(screen, b.Label, face, tx, ty, clr)
}

// Toast is a one-line status message that disappears after a while.
type Toast struct {
	Text  string
	Until time.Time
}

func (t *Toast) Show(msg string, d time.Duration) {
	t.Text = msg
	t.Until = time.Now().Add(d)
}

func (t *Toast) Visible(now time.Time) bool {
	return t.Text != "" && now.Before(t.Until)
}
