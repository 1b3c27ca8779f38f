package gui

import (
	"boardeditor/src"
	"boardeditor/src/logx"
	"boardeditor/ui/gui/gbase"
	"boardeditor/ui/gui/gbase/gconf"
	"boardeditor/ui/gui/gctx"
	"boardeditor/ui/gui/gdraw"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

func NewGUI(b *src.EditorBuilder, conf *gconf.Config, logx logx.Logger) *GUIProcessing {
	ctx := gctx.NewGUIGameContext(b, conf, logx)
	if conf.ShowLabels && !b.Board().LabelsShown() {
		b.ToggleLabels()
	}
	return &GUIProcessing{
		current: gdraw.SceneEditor.ToScene(nil, ctx),
		ctx:     ctx,
	}
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("Board Editor")
	err := ebiten.RunGame(gp)
	if errors.Is(err, gbase.ErrExit) {
		return nil
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	gp.current = next.ToScene(gp.current, gp.ctx)
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
