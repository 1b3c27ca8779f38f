package gctx

import (
	"boardeditor/src"
	"boardeditor/src/logx"
	"boardeditor/ui/gui/gbase"
	"boardeditor/ui/gui/gbase/gconf"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Builder *src.EditorBuilder
	Config  *gconf.Config
	Theme   gbase.Palette
	Logx    logx.Logger
}

func NewGUIGameContext(b *src.EditorBuilder, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Builder: b,
		Config:  c,
		Theme:   gbase.PaletteFromString(c.Theme),
		Logx:    l,
	}
}
