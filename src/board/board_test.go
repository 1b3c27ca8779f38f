package board

import (
	"boardeditor/src/base"
	"boardeditor/src/events"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const startLayout = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// recorder collects every change published by the board under test.
type recorder struct {
	events []events.ChangeEvent
}

func (r *recorder) kinds() []events.ChangeKind {
	var out []events.ChangeKind
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

func (r *recorder) reset() {
	r.events = nil
}

func newTestBoard(t *testing.T) (*Board, *events.Bus, *recorder) {
	t.Helper()
	bus := events.NewBus()
	rec := &recorder{}
	bus.OnChange(func(ev events.ChangeEvent) { rec.events = append(rec.events, ev) })
	return New(Config{TileSize: 75}, bus), bus, rec
}

// checkBinding verifies that every occupied tile and its piece point at each other.
func checkBinding(t *testing.T, b *Board) {
	t.Helper()
	for i, tile := range b.tiles {
		if tile.Index != i {
			t.Fatalf("tile %d has index %d", i, tile.Index)
		}
		if tile.Occupant == NoPiece {
			continue
		}
		p, ok := b.pieces[tile.Occupant]
		if !ok {
			t.Fatalf("tile %d holds unknown piece %d", i, tile.Occupant)
		}
		if p.Tile != i {
			t.Fatalf("tile %d holds piece %d bound to %d", i, p.ID, p.Tile)
		}
	}
	for id, p := range b.pieces {
		if p.Tile != NoTile && b.tiles[p.Tile].Occupant != id {
			t.Fatalf("piece %d bound to %d but tile holds %d", id, p.Tile, b.tiles[p.Tile].Occupant)
		}
	}
	if len(b.order) != len(b.pieces) {
		t.Fatalf("order has %d ids, arena has %d pieces", len(b.order), len(b.pieces))
	}
}

func centerOf(t *testing.T, b *Board, index int) base.Point {
	t.Helper()
	c, err := b.TileCenter(index)
	if err != nil {
		t.Fatalf("TileCenter(%d): %v", index, err)
	}
	return c
}

func mustPlace(t *testing.T, b *Board, kind base.PieceKind, index int) PieceID {
	t.Helper()
	id, err := b.Spawn(kind)
	if err != nil {
		t.Fatalf("Spawn(%v): %v", kind, err)
	}
	if err := b.Place(id, index); err != nil {
		t.Fatalf("Place(%d, %d): %v", id, index, err)
	}
	return id
}

func TestNewBoardTiles(t *testing.T) {
	b, _, _ := newTestBoard(t)
	tiles := b.Tiles()
	if len(tiles) != base.NumTiles {
		t.Fatalf("got %d tiles", len(tiles))
	}
	tile, err := b.Tile(27)
	if err != nil {
		t.Fatal(err)
	}
	want := Tile{
		Index:    27,
		Row:      3,
		Col:      3,
		Shade:    base.Light,
		Bounds:   base.Rect{Center: base.Point{X: 262.5, Y: 262.5}, W: 75, H: 75},
		Occupant: NoPiece,
	}
	if diff := cmp.Diff(want, tile); diff != "" {
		t.Errorf("tile 27 mismatch (-want +got):\n%s", diff)
	}
	if b.Size() != 600 {
		t.Errorf("Size() = %v", b.Size())
	}
	if b.PieceCount() != 0 || b.SelectedTile() != NoTile || b.ClickedTile() != NoTile {
		t.Error("new board is not empty and idle")
	}
}

func TestDefaultTileSize(t *testing.T) {
	b := New(Config{}, nil)
	if b.TileSize() != base.DefaultTileSize {
		t.Errorf("TileSize() = %v", b.TileSize())
	}
}

func TestTileErrors(t *testing.T) {
	b, _, _ := newTestBoard(t)
	for _, i := range []int{-1, 64, 1000} {
		if _, err := b.Tile(i); !errors.Is(err, ErrTileIndex) {
			t.Errorf("Tile(%d) err = %v", i, err)
		}
		if _, err := b.TileCenter(i); !errors.Is(err, ErrTileIndex) {
			t.Errorf("TileCenter(%d) err = %v", i, err)
		}
	}
}

func TestTileAt(t *testing.T) {
	b, _, _ := newTestBoard(t)
	tests := []struct {
		name   string
		p      base.Point
		want   int
		wantOK bool
	}{
		{"center of 27", centerOf(t, b, 27), 27, true},
		{"top left corner", base.Point{X: 0, Y: 0}, 0, true},
		{"shared edge of 0 and 1", base.Point{X: 75, Y: 30}, 0, true},
		{"shared corner of 0, 1, 8, 9", base.Point{X: 75, Y: 75}, 0, true},
		{"inside 1", base.Point{X: 75.5, Y: 30}, 1, true},
		{"bottom right corner", base.Point{X: 600, Y: 600}, 63, true},
		{"negative", base.Point{X: -1, Y: -1}, NoTile, false},
		{"past right edge", base.Point{X: 600.5, Y: 10}, NoTile, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.TileAt(tt.p)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("TileAt(%v) = %d, %v; want %d, %v", tt.p, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSpawnAndPlace(t *testing.T) {
	b, _, rec := newTestBoard(t)
	id, err := b.Spawn(base.WQueen)
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Errorf("first id = %d", id)
	}
	p, _ := b.Piece(id)
	if p.IsBound() {
		t.Error("spawned piece is bound")
	}
	if _, err := b.Spawn(base.NoPiece); err == nil {
		t.Error("spawned NoPiece")
	}

	if err := b.Place(id, 27); err != nil {
		t.Fatal(err)
	}
	checkBinding(t, b)
	p, _ = b.Piece(id)
	want := Piece{ID: id, Kind: base.WQueen, Tile: 27, Size: 65, Position: base.Point{X: 230, Y: 230}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("placed piece mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(base.Rect{Center: centerOf(t, b, 27), W: 65, H: 65}, p.Bounds()); diff != "" {
		t.Errorf("piece bounds mismatch (-want +got):\n%s", diff)
	}

	// moving a bound piece clears its old tile
	if err := b.Place(id, 28); err != nil {
		t.Fatal(err)
	}
	checkBinding(t, b)
	if _, ok := b.OccupantOf(27); ok {
		t.Error("tile 27 still occupied")
	}
	if occ, ok := b.OccupantOf(28); !ok || occ.ID != id {
		t.Errorf("OccupantOf(28) = %v, %v", occ, ok)
	}

	if err := b.Place(id, 64); !errors.Is(err, ErrTileIndex) {
		t.Errorf("Place on 64 err = %v", err)
	}
	if err := b.Place(99, 1); err == nil {
		t.Error("placed an unknown piece")
	}

	want2 := []events.ChangeKind{events.PiecePlaced, events.PiecePlaced}
	if diff := cmp.Diff(want2, rec.kinds()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaceEvictsOccupant(t *testing.T) {
	b, _, rec := newTestBoard(t)
	old := mustPlace(t, b, base.BPawn, 20)
	rec.reset()
	queen := mustPlace(t, b, base.WQueen, 20)
	checkBinding(t, b)

	if _, ok := b.Piece(old); ok {
		t.Error("evicted piece still in the arena")
	}
	if occ, _ := b.OccupantOf(20); occ.ID != queen {
		t.Errorf("tile 20 holds %d, want %d", occ.ID, queen)
	}
	if b.PieceCount() != 1 {
		t.Errorf("PieceCount() = %d", b.PieceCount())
	}
	want := []events.ChangeEvent{
		{Kind: events.PieceRemoved, From: 20, To: NoTile, Piece: base.BPawn},
		{Kind: events.PiecePlaced, From: NoTile, To: 20, Piece: base.WQueen},
	}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	// placing a piece on its own tile is not an eviction
	if err := b.Place(queen, 20); err != nil {
		t.Fatal(err)
	}
	if b.PieceCount() != 1 {
		t.Errorf("self placement removed a piece")
	}
}

func TestMovePiece(t *testing.T) {
	b, _, rec := newTestBoard(t)
	pawn := mustPlace(t, b, base.BPawn, 12)
	king := mustPlace(t, b, base.BKing, 3)
	rec.reset()

	tests := []struct {
		name     string
		src, dst int
	}{
		{"empty source", 40, 41},
		{"occupied destination", 12, 3},
		{"same tile", 12, 12},
		{"invalid source", -1, 20},
		{"invalid destination", 12, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := b.Kinds()
			if b.MovePiece(tt.src, tt.dst) {
				t.Fatalf("MovePiece(%d, %d) succeeded", tt.src, tt.dst)
			}
			if diff := cmp.Diff(before, b.Kinds()); diff != "" {
				t.Errorf("board changed (-before +after):\n%s", diff)
			}
			checkBinding(t, b)
		})
	}
	if len(rec.events) != 0 {
		t.Errorf("failed moves published %v", rec.kinds())
	}

	if !b.MovePiece(12, 20) {
		t.Fatal("MovePiece(12, 20) failed")
	}
	checkBinding(t, b)
	if _, ok := b.OccupantOf(12); ok {
		t.Error("tile 12 still occupied")
	}
	if occ, _ := b.OccupantOf(20); occ.ID != pawn {
		t.Errorf("tile 20 holds %d, want %d", occ.ID, pawn)
	}
	if occ, _ := b.OccupantOf(3); occ.ID != king {
		t.Errorf("tile 3 holds %d, want %d", occ.ID, king)
	}
	want := []events.ChangeEvent{{Kind: events.PieceMoved, From: 12, To: 20, Piece: base.BPawn}}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestResetClearReset(t *testing.T) {
	b, _, rec := newTestBoard(t)
	b.ResetToStartPosition()
	checkBinding(t, b)
	first := b.Kinds()
	if b.PieceCount() != 32 {
		t.Fatalf("PieceCount() = %d", b.PieceCount())
	}
	if got := b.Layout(); got != startLayout {
		t.Errorf("Layout() = %q", got)
	}

	b.Clear()
	checkBinding(t, b)
	if b.PieceCount() != 0 || b.Layout() != "8/8/8/8/8/8/8/8" {
		t.Errorf("board not empty after Clear: %q", b.Layout())
	}
	if len(b.Tiles()) != base.NumTiles {
		t.Error("Clear removed tiles")
	}

	b.ResetToStartPosition()
	checkBinding(t, b)
	if diff := cmp.Diff(first, b.Kinds()); diff != "" {
		t.Errorf("second reset differs (-first +second):\n%s", diff)
	}
	for i, kind := range base.StartPosition {
		occ, ok := b.OccupantOf(i)
		if !ok || occ.Kind != kind {
			t.Errorf("tile %d holds %v, want %v", i, occ.Kind, kind)
		}
	}

	var resets, clears int
	for _, k := range rec.kinds() {
		switch k {
		case events.BoardReset:
			resets++
		case events.BoardCleared:
			clears++
		}
	}
	if resets != 2 || clears != 3 {
		t.Errorf("resets = %d, clears = %d", resets, clears)
	}
}

func TestClearDropsSelection(t *testing.T) {
	b, bus, _ := newTestBoard(t)
	b.ResetToStartPosition()
	bus.Down(centerOf(t, b, 12))
	b.Clear()
	if b.State() != Idle || b.SelectedTile() != NoTile || b.ClickedTile() != NoTile || b.IsDragging() {
		t.Errorf("selection survived Clear: state %v", b.State())
	}
	for _, tile := range b.Tiles() {
		if tile.Selected {
			t.Errorf("tile %d still selected", tile.Index)
		}
	}
}

func TestRemoveAt(t *testing.T) {
	b, _, _ := newTestBoard(t)
	mustPlace(t, b, base.WRook, 0)
	if !b.RemoveAt(0) {
		t.Fatal("RemoveAt(0) failed")
	}
	checkBinding(t, b)
	if b.RemoveAt(0) || b.RemoveAt(-3) {
		t.Error("RemoveAt on empty or invalid tile succeeded")
	}
	if b.PieceCount() != 0 {
		t.Errorf("PieceCount() = %d", b.PieceCount())
	}
}

func TestDropNewPiece(t *testing.T) {
	b, _, rec := newTestBoard(t)
	tests := []struct {
		name string
		kind string
		p    base.Point
		want bool
	}{
		{"empty tile", "w_knight", centerOf(t, b, 35), true},
		{"occupied tile", "b_queen", centerOf(t, b, 35), false},
		{"unknown kind", "w_dragon", centerOf(t, b, 36), false},
		{"off board", "w_pawn", base.Point{X: -10, Y: 5}, false},
		{"mixed case name", "B_Bishop", centerOf(t, b, 36), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.DropNewPiece(tt.kind, tt.p); got != tt.want {
				t.Errorf("DropNewPiece(%q) = %v, want %v", tt.kind, got, tt.want)
			}
			checkBinding(t, b)
		})
	}
	if occ, _ := b.OccupantOf(35); occ.Kind != base.WKnight {
		t.Errorf("tile 35 holds %v", occ.Kind)
	}
	if occ, _ := b.OccupantOf(36); occ.Kind != base.BBishop {
		t.Errorf("tile 36 holds %v", occ.Kind)
	}
	want := []events.ChangeEvent{
		{Kind: events.PiecePlaced, From: NoTile, To: 35, Piece: base.WKnight},
		{Kind: events.PiecePlaced, From: NoTile, To: 36, Piece: base.BBishop},
	}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if b.DropPiece(base.NoPiece, centerOf(t, b, 40)) {
		t.Error("dropped NoPiece")
	}
}

func TestToggleCoordinateLabels(t *testing.T) {
	b, _, rec := newTestBoard(t)
	b.ToggleCoordinateLabels()
	if !b.LabelsShown() {
		t.Fatal("labels not shown")
	}
	for _, tile := range b.Tiles() {
		if !tile.ShowLabel {
			t.Fatalf("tile %d has no label", tile.Index)
		}
	}
	b.ToggleCoordinateLabels()
	for _, tile := range b.Tiles() {
		if tile.ShowLabel {
			t.Fatalf("tile %d still labelled", tile.Index)
		}
	}
	want := []events.ChangeKind{events.LabelsToggled, events.LabelsToggled}
	if diff := cmp.Diff(want, rec.kinds()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout(t *testing.T) {
	b, _, _ := newTestBoard(t)
	mustPlace(t, b, base.BKing, 4)
	mustPlace(t, b, base.WPawn, 52)
	mustPlace(t, b, base.WKing, 63)
	if got, want := b.Layout(), "4k3/8/8/8/8/8/4P3/7K"; got != want {
		t.Errorf("Layout() = %q, want %q", got, want)
	}
}

func TestBoardWithoutBus(t *testing.T) {
	b := New(Config{TileSize: 50}, nil)
	b.ResetToStartPosition()
	b.PointerDown(base.Point{X: 25, Y: 75})
	b.PointerUp(base.Point{X: 25, Y: 125})
	checkBinding(t, b)
	if occ, ok := b.OccupantOf(16); !ok || occ.Kind != base.BPawn {
		t.Errorf("tile 16 holds %v, %v", occ.Kind, ok)
	}
}
