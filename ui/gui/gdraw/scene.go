package gdraw

import (
	"boardeditor/ui/gui/gctx"

	"github.com/hajimehoshi/ebiten/v2"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIGameContext) (SceneType, error)
	Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image)
}

type SceneType int

const (
	SceneEditor SceneType = iota
	SceneNotChanged
)

func (t SceneType) ToScene(s Scene, ctx *gctx.GUIGameContext) Scene {
	switch t {
	case SceneEditor:
		s = NewGUIEditDrawer(ctx)
	case SceneNotChanged:
	default:
	}
	return s
}
