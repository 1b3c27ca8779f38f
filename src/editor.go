package src

import (
	"boardeditor/src/base"
	"boardeditor/src/board"
	"boardeditor/src/events"
	"boardeditor/src/logx"
)

// EditorBuilder owns one board and the bus it listens on. Front ends publish
// pointer input through Down/Move/Up and issue editor commands.
type EditorBuilder struct {
	bus    *events.Bus
	board  *board.Board
	logger logx.Logger
}

func NewEditorBuilder(tileSize float64, logger logx.Logger) *EditorBuilder {
	bus := events.NewBus()
	eb := &EditorBuilder{
		bus:    bus,
		board:  board.New(board.Config{TileSize: tileSize}, bus),
		logger: logger,
	}
	bus.OnChange(eb.logChange)
	return eb
}

func (eb *EditorBuilder) logChange(ev events.ChangeEvent) {
	switch ev.Kind {
	case events.PieceMoved:
		eb.logger.Infof("%v %v from %d to %d", ev.Kind, ev.Piece, ev.From, ev.To)
	case events.PiecePlaced:
		eb.logger.Infof("%v %v on %d", ev.Kind, ev.Piece, ev.To)
	case events.PieceRemoved:
		eb.logger.Infof("%v %v from %d", ev.Kind, ev.Piece, ev.From)
	case events.DragReverted:
		eb.logger.Debugf("%v: %v back to %d", ev.Kind, ev.Piece, ev.From)
	case events.TileSelected:
		eb.logger.Debugf("%v %d", ev.Kind, ev.To)
	case events.TileUnselected:
		eb.logger.Debugf("%v %d", ev.Kind, ev.From)
	case events.BoardCleared, events.BoardReset, events.LabelsToggled:
		eb.logger.Debug(ev.Kind.String())
	}
}

func (eb *EditorBuilder) Bus() *events.Bus {
	return eb.bus
}

func (eb *EditorBuilder) Board() *board.Board {
	return eb.board
}

func (eb *EditorBuilder) Frame() board.Frame {
	return eb.board.Frame()
}

// ---- Pointer input ----

func (eb *EditorBuilder) Down(p base.Point) {
	eb.bus.Down(p)
}

func (eb *EditorBuilder) Move(p base.Point) {
	eb.bus.Move(p)
}

func (eb *EditorBuilder) Up(p base.Point) {
	eb.bus.Up(p)
}

// Click presses and releases on the centre of a tile.
func (eb *EditorBuilder) Click(index int) error {
	c, err := eb.board.TileCenter(index)
	if err != nil {
		return err
	}
	eb.Down(c)
	eb.Up(c)
	return nil
}

// Drag presses on one tile centre, moves to another and releases there.
func (eb *EditorBuilder) Drag(from, to int) error {
	src, err := eb.board.TileCenter(from)
	if err != nil {
		return err
	}
	dst, err := eb.board.TileCenter(to)
	if err != nil {
		return err
	}
	eb.Down(src)
	eb.Move(dst)
	eb.Up(dst)
	return nil
}

// ---- Editor commands ----

func (eb *EditorBuilder) Reset() {
	eb.logger.Info("reset to start position")
	eb.board.ResetToStartPosition()
}

// Clear reports false when the board had nothing to clear.
func (eb *EditorBuilder) Clear() bool {
	if eb.board.PieceCount() == 0 {
		return false
	}
	eb.logger.Info("clear board")
	eb.board.Clear()
	return true
}

func (eb *EditorBuilder) Drop(kind string, p base.Point) bool {
	if !eb.board.DropNewPiece(kind, p) {
		eb.logger.Debugf("drop %q at (%.1f, %.1f) ignored", kind, p.X, p.Y)
		return false
	}
	return true
}

func (eb *EditorBuilder) DropAt(kind string, index int) bool {
	c, err := eb.board.TileCenter(index)
	if err != nil {
		eb.logger.Errorf("drop %q: %v", kind, err)
		return false
	}
	return eb.Drop(kind, c)
}

func (eb *EditorBuilder) Remove(index int) bool {
	return eb.board.RemoveAt(index)
}

func (eb *EditorBuilder) ToggleLabels() bool {
	eb.board.ToggleCoordinateLabels()
	return eb.board.LabelsShown()
}

func (eb *EditorBuilder) Layout() string {
	return eb.board.Layout()
}
