// Package events carries pointer input into the board and board changes out of it.
//
// A Bus is created by the owner of the editor and handed to every component
// that produces or consumes events; there is no package-level instance.
// Dispatch is synchronous, in registration order, on the publishing goroutine.
package events

import "boardeditor/src/base"

type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is already in board-local coordinates.
type PointerEvent struct {
	Kind PointerKind
	Pos  base.Point
}

type ChangeKind uint8

const (
	TileSelected ChangeKind = iota
	TileUnselected
	PiecePlaced
	PieceMoved
	PieceRemoved
	DragReverted
	BoardCleared
	BoardReset
	LabelsToggled
)

func (k ChangeKind) String() string {
	switch k {
	case TileSelected:
		return "tile selected"
	case TileUnselected:
		return "tile unselected"
	case PiecePlaced:
		return "piece placed"
	case PieceMoved:
		return "piece moved"
	case PieceRemoved:
		return "piece removed"
	case DragReverted:
		return "drag reverted"
	case BoardCleared:
		return "board cleared"
	case BoardReset:
		return "board reset"
	case LabelsToggled:
		return "labels toggled"
	default:
		return "unknown"
	}
}

// ChangeEvent describes one mutation of the board. From and To are tile
// indices, -1 when not applicable.
type ChangeEvent struct {
	Kind  ChangeKind
	From  int
	To    int
	Piece base.PieceKind
}

type PointerListener func(ev PointerEvent)

type ChangeListener func(ev ChangeEvent)

type Bus struct {
	pointer map[PointerKind][]PointerListener
	change  []ChangeListener
}

func NewBus() *Bus {
	return &Bus{pointer: make(map[PointerKind][]PointerListener)}
}

func (b *Bus) OnPointer(kind PointerKind, fn PointerListener) {
	b.pointer[kind] = append(b.pointer[kind], fn)
}

func (b *Bus) OnChange(fn ChangeListener) {
	b.change = append(b.change, fn)
}

func (b *Bus) PublishPointer(ev PointerEvent) {
	for _, fn := range b.pointer[ev.Kind] {
		fn(ev)
	}
}

// PublishChange is safe to call on a nil Bus.
func (b *Bus) PublishChange(ev ChangeEvent) {
	if b == nil {
		return
	}
	for _, fn := range b.change {
		fn(ev)
	}
}

// Convenience publishers used by input adapters.

func (b *Bus) Down(p base.Point) {
	b.PublishPointer(PointerEvent{Kind: PointerDown, Pos: p})
}

func (b *Bus) Move(p base.Point) {
	b.PublishPointer(PointerEvent{Kind: PointerMove, Pos: p})
}

func (b *Bus) Up(p base.Point) {
	b.PublishPointer(PointerEvent{Kind: PointerUp, Pos: p})
}
