// Package board holds the tile/piece model of the editor, hit-testing and the
// pointer selection/drag state machine.
package board

import (
	"boardeditor/src/base"
	"boardeditor/src/events"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NoTile marks an absent tile reference.
const NoTile int = -1

var ErrTileIndex = errors.New("tile index out of range")

type Tile struct {
	Index     int
	Row       int
	Col       int
	Shade     base.TileShade
	Bounds    base.Rect
	Occupant  PieceID
	Selected  bool
	ShowLabel bool
}

func (t Tile) Center() base.Point {
	return t.Bounds.Center
}

func (t Tile) IsEmpty() bool {
	return t.Occupant == NoPiece
}

type Config struct {
	TileSize float64
}

type Board struct {
	tiles    [base.NumTiles]Tile
	pieces   map[PieceID]*Piece
	order    []PieceID // creation order, used for drawing
	nextID   PieceID
	tileSize float64
	labels   bool

	selectedTile int
	clickedTile  int
	dragging     bool

	bus *events.Bus
}

// New builds the 64 tiles and, when bus is not nil, subscribes the
// selection state machine to its pointer events and publishes changes on it.
func New(cfg Config, bus *events.Bus) *Board {
	size := cfg.TileSize
	if size <= 0 {
		size = base.DefaultTileSize
	}
	b := &Board{
		pieces:       make(map[PieceID]*Piece),
		nextID:       1,
		tileSize:     size,
		selectedTile: NoTile,
		clickedTile:  NoTile,
		bus:          bus,
	}
	for row := 0; row < base.Rows; row++ {
		for col := 0; col < base.Cols; col++ {
			i := base.ConvRowColToIndex(row, col)
			b.tiles[i] = Tile{
				Index:    i,
				Row:      row,
				Col:      col,
				Shade:    base.ShadeAt(row, col),
				Bounds:   base.RectFromTopLeft(float64(col)*size, float64(row)*size, size, size),
				Occupant: NoPiece,
			}
		}
	}
	if bus != nil {
		bus.OnPointer(events.PointerDown, func(ev events.PointerEvent) { b.PointerDown(ev.Pos) })
		bus.OnPointer(events.PointerMove, func(ev events.PointerEvent) { b.PointerMove(ev.Pos) })
		bus.OnPointer(events.PointerUp, func(ev events.PointerEvent) { b.PointerUp(ev.Pos) })
	}
	return b
}

func (b *Board) TileSize() float64 {
	return b.tileSize
}

// Size is the edge of the whole board in board-local units.
func (b *Board) Size() float64 {
	return b.tileSize * float64(base.Cols)
}

// TileAt scans tiles in row-major order and returns the first one whose
// region contains p.
func (b *Board) TileAt(p base.Point) (int, bool) {
	for i := range b.tiles {
		if b.tiles[i].Bounds.ContainsPoint(p) {
			return i, true
		}
	}
	return NoTile, false
}

func (b *Board) Tile(index int) (Tile, error) {
	if !base.IsValidIndex(index) {
		return Tile{}, fmt.Errorf("%w: %d", ErrTileIndex, index)
	}
	return b.tiles[index], nil
}

func (b *Board) TileCenter(index int) (base.Point, error) {
	t, err := b.Tile(index)
	if err != nil {
		return base.Point{}, err
	}
	return t.Center(), nil
}

// Tiles returns a copy of all tiles in index order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, base.NumTiles)
	copy(out, b.tiles[:])
	return out
}

func (b *Board) OccupantOf(index int) (Piece, bool) {
	if !base.IsValidIndex(index) {
		return Piece{}, false
	}
	p, ok := b.pieces[b.tiles[index].Occupant]
	if !ok {
		return Piece{}, false
	}
	return *p, true
}

func (b *Board) Piece(id PieceID) (Piece, bool) {
	p, ok := b.pieces[id]
	if !ok {
		return Piece{}, false
	}
	return *p, true
}

// Pieces returns copies of the pieces in creation order.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.pieces[id])
	}
	return out
}

func (b *Board) PieceCount() int {
	return len(b.order)
}

// Spawn creates an unbound piece. It becomes visible once placed.
func (b *Board) Spawn(kind base.PieceKind) (PieceID, error) {
	if !kind.IsValid() {
		return NoPiece, fmt.Errorf("cannot spawn piece of kind %v", kind)
	}
	id := b.nextID
	b.nextID++
	b.pieces[id] = &Piece{
		ID:   id,
		Kind: kind,
		Tile: NoTile,
		Size: base.PieceSize(kind, b.tileSize),
	}
	b.order = append(b.order, id)
	return id, nil
}

// Place binds the piece to the tile. A different piece already standing on
// the tile is evicted from the board first.
func (b *Board) Place(id PieceID, index int) error {
	p, ok := b.pieces[id]
	if !ok {
		return fmt.Errorf("unknown piece %d", id)
	}
	if !base.IsValidIndex(index) {
		return fmt.Errorf("%w: %d", ErrTileIndex, index)
	}
	if other := b.tiles[index].Occupant; other != NoPiece && other != id {
		b.remove(other)
	}
	b.place(p, index)
	b.bus.PublishChange(events.ChangeEvent{Kind: events.PiecePlaced, From: NoTile, To: index, Piece: p.Kind})
	return nil
}

func (b *Board) place(p *Piece, index int) {
	if p.Tile != NoTile {
		b.tiles[p.Tile].Occupant = NoPiece
	}
	p.Tile = index
	b.tiles[index].Occupant = p.ID
	p.recenter(b.tiles[index].Center())
}

func (b *Board) remove(id PieceID) {
	p, ok := b.pieces[id]
	if !ok {
		return
	}
	from := p.Tile
	if from != NoTile {
		b.tiles[from].Occupant = NoPiece
	}
	delete(b.pieces, id)
	for i, oid := range b.order {
		if oid == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	b.bus.PublishChange(events.ChangeEvent{Kind: events.PieceRemoved, From: from, To: NoTile, Piece: p.Kind})
}

// RemoveAt deletes the occupant of the tile, if any.
func (b *Board) RemoveAt(index int) bool {
	if !base.IsValidIndex(index) || b.tiles[index].IsEmpty() {
		return false
	}
	b.remove(b.tiles[index].Occupant)
	return true
}

// MovePiece moves the occupant of src onto dst only when src is occupied
// and dst is empty. Nothing changes otherwise.
func (b *Board) MovePiece(src, dst int) bool {
	if !base.IsValidIndex(src) || !base.IsValidIndex(dst) {
		return false
	}
	id := b.tiles[src].Occupant
	if id == NoPiece || !b.tiles[dst].IsEmpty() {
		return false
	}
	p := b.pieces[id]
	b.place(p, dst)
	b.bus.PublishChange(events.ChangeEvent{Kind: events.PieceMoved, From: src, To: dst, Piece: p.Kind})
	return true
}

// Clear removes every piece and drops any selection or gesture in progress.
// Tiles and label visibility are kept.
func (b *Board) Clear() {
	for i := range b.tiles {
		b.tiles[i].Occupant = NoPiece
		b.tiles[i].Selected = false
	}
	b.pieces = make(map[PieceID]*Piece)
	b.order = nil
	b.selectedTile = NoTile
	b.clickedTile = NoTile
	b.dragging = false
	b.bus.PublishChange(events.ChangeEvent{Kind: events.BoardCleared, From: NoTile, To: NoTile})
}

func (b *Board) ResetToStartPosition() {
	b.Clear()
	indices := make([]int, 0, len(base.StartPosition))
	for i := range base.StartPosition {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	for _, i := range indices {
		id, _ := b.Spawn(base.StartPosition[i])
		b.place(b.pieces[id], i)
	}
	b.bus.PublishChange(events.ChangeEvent{Kind: events.BoardReset, From: NoTile, To: NoTile})
}

// DropNewPiece places a new piece named like "w_queen" on the empty tile
// under p. Unknown names, misses and occupied tiles are ignored.
func (b *Board) DropNewPiece(kindName string, p base.Point) bool {
	kind, err := base.ParsePieceKind(kindName)
	if err != nil {
		return false
	}
	return b.DropPiece(kind, p)
}

func (b *Board) DropPiece(kind base.PieceKind, p base.Point) bool {
	if !kind.IsValid() {
		return false
	}
	index, ok := b.TileAt(p)
	if !ok || !b.tiles[index].IsEmpty() {
		return false
	}
	id, err := b.Spawn(kind)
	if err != nil {
		return false
	}
	b.place(b.pieces[id], index)
	b.bus.PublishChange(events.ChangeEvent{Kind: events.PiecePlaced, From: NoTile, To: index, Piece: kind})
	return true
}

func (b *Board) ToggleCoordinateLabels() {
	b.labels = !b.labels
	for i := range b.tiles {
		b.tiles[i].ShowLabel = b.labels
	}
	b.bus.PublishChange(events.ChangeEvent{Kind: events.LabelsToggled, From: NoTile, To: NoTile})
}

func (b *Board) LabelsShown() bool {
	return b.labels
}

// Layout writes the occupancy as the placement field of a FEN record,
// row 0 first.
func (b *Board) Layout() string {
	var sb strings.Builder
	for row := 0; row < base.Rows; row++ {
		empty := 0
		for col := 0; col < base.Cols; col++ {
			t := b.tiles[base.ConvRowColToIndex(row, col)]
			if t.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(base.ConvertRuneFromPiece(b.pieces[t.Occupant].Kind))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < base.Rows-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// Kinds returns the kind standing on every tile, NoPiece for empty tiles.
func (b *Board) Kinds() [base.NumTiles]base.PieceKind {
	var out [base.NumTiles]base.PieceKind
	for i, t := range b.tiles {
		if p, ok := b.pieces[t.Occupant]; ok {
			out[i] = p.Kind
		}
	}
	return out
}
