package board

import (
	"boardeditor/src/base"
	"boardeditor/src/events"
)

type State uint8

const (
	Idle State = iota
	Selected
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selected:
		return "selected"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// State is derived from the selection and the gesture in progress.
func (b *Board) State() State {
	if b.dragging && b.clickedTile != NoTile && !b.tiles[b.clickedTile].IsEmpty() {
		return Dragging
	}
	if b.selectedTile != NoTile {
		return Selected
	}
	return Idle
}

// SelectedTile returns the selected tile index or NoTile.
func (b *Board) SelectedTile() int {
	return b.selectedTile
}

// ClickedTile returns the tile where the current gesture started or NoTile.
func (b *Board) ClickedTile() int {
	return b.clickedTile
}

func (b *Board) IsDragging() bool {
	return b.dragging
}

func (b *Board) selectTile(i int) {
	b.selectedTile = i
	b.tiles[i].Selected = true
	b.bus.PublishChange(events.ChangeEvent{Kind: events.TileSelected, From: NoTile, To: i})
}

func (b *Board) unselectTile(i int) {
	b.tiles[i].Selected = false
	if b.selectedTile == i {
		b.selectedTile = NoTile
	}
	b.bus.PublishChange(events.ChangeEvent{Kind: events.TileUnselected, From: i, To: NoTile})
}

// PointerDown starts a gesture. A second press on another tile completes a
// click-to-move from the selected tile; a press on the selected tile
// unselects it.
func (b *Board) PointerDown(p base.Point) {
	tile, ok := b.TileAt(p)
	if !ok {
		return
	}
	prev := b.selectedTile
	switch {
	case prev == NoTile:
		b.grab(tile)
	case prev == tile:
		b.unselectTile(tile)
		b.clickedTile = NoTile
		b.dragging = false
	default:
		b.unselectTile(prev)
		if b.MovePiece(prev, tile) {
			b.clickedTile = NoTile
			b.dragging = false
			return
		}
		b.grab(tile)
	}
}

func (b *Board) grab(tile int) {
	b.selectTile(tile)
	b.clickedTile = tile
	b.dragging = true
}

// PointerMove drags the occupant of the clicked tile. Tile bindings are
// untouched; only the drawing position follows the pointer.
func (b *Board) PointerMove(p base.Point) {
	if !b.dragging || b.clickedTile == NoTile {
		return
	}
	piece, ok := b.pieces[b.tiles[b.clickedTile].Occupant]
	if !ok {
		return
	}
	piece.Position = p.Sub(piece.half())
}

// PointerUp drops a dragged piece on the tile under p. A rejected drop puts
// the piece back on the tile it came from and keeps the selection.
func (b *Board) PointerUp(p base.Point) {
	b.dragging = false
	clicked := b.clickedTile
	b.clickedTile = NoTile
	if clicked == NoTile {
		return
	}
	piece, ok := b.pieces[b.tiles[clicked].Occupant]
	if !ok {
		return
	}
	dst, _ := b.TileAt(p)
	if b.MovePiece(clicked, dst) {
		b.unselectTile(clicked)
		b.selectedTile = NoTile
		return
	}
	moved := piece.Position
	piece.recenter(b.tiles[clicked].Center())
	if moved == piece.Position {
		return
	}
	b.bus.PublishChange(events.ChangeEvent{Kind: events.DragReverted, From: clicked, To: dst, Piece: piece.Kind})
}
