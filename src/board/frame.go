package board

import (
	"boardeditor/src/base"
	"strconv"
)

// CoordinateLabel is a rank or file name drawn on the board edge.
type CoordinateLabel struct {
	Text string
	Pos  base.Point
}

// Frame is everything a renderer needs to draw one frame. Tiles and Pieces
// are in draw order: the selected tile and the piece being dragged (or
// standing on the selected tile) come last.
type Frame struct {
	TileSize     float64
	Tiles        []Tile
	Pieces       []Piece
	Coordinates  []CoordinateLabel
	SelectedTile int
	ClickedTile  int
	State        State
	HasPieces    bool
	Labels       bool
}

func (b *Board) Frame() Frame {
	f := Frame{
		TileSize:     b.tileSize,
		Tiles:        make([]Tile, 0, base.NumTiles),
		Pieces:       make([]Piece, 0, len(b.order)),
		Coordinates:  b.coordinateLabels(),
		SelectedTile: b.selectedTile,
		ClickedTile:  b.clickedTile,
		State:        b.State(),
		HasPieces:    len(b.order) > 0,
		Labels:       b.labels,
	}
	for i := range b.tiles {
		if i != b.selectedTile {
			f.Tiles = append(f.Tiles, b.tiles[i])
		}
	}
	if b.selectedTile != NoTile {
		f.Tiles = append(f.Tiles, b.tiles[b.selectedTile])
	}

	var top *Piece
	switch {
	case b.clickedTile != NoTile:
		top = b.pieces[b.tiles[b.clickedTile].Occupant]
	case b.selectedTile != NoTile:
		top = b.pieces[b.tiles[b.selectedTile].Occupant]
	}
	for _, id := range b.order {
		p := b.pieces[id]
		if p == top || !p.IsBound() {
			continue
		}
		f.Pieces = append(f.Pieces, *p)
	}
	if top != nil {
		f.Pieces = append(f.Pieces, *top)
	}
	return f
}

// coordinateLabels puts ranks 8..1 in the top-left corner of the first
// column and files a..h in the bottom-right corner of the last row.
func (b *Board) coordinateLabels() []CoordinateLabel {
	labels := make([]CoordinateLabel, 0, base.Rows+base.Cols)
	for row := 0; row < base.Rows; row++ {
		r := b.tiles[base.ConvRowColToIndex(row, 0)].Bounds
		labels = append(labels, CoordinateLabel{
			Text: strconv.Itoa(base.Rows - row),
			Pos:  base.Point{X: r.Left() + 10, Y: r.Top() + 15},
		})
	}
	for col := 0; col < base.Cols; col++ {
		r := b.tiles[base.ConvRowColToIndex(base.Rows-1, col)].Bounds
		labels = append(labels, CoordinateLabel{
			Text: string(rune('a' + col)),
			Pos:  base.Point{X: r.Right() - 10, Y: r.Bottom() - 12},
		})
	}
	return labels
}

// TileLabel is the text drawn on a tile when labels are shown.
func TileLabel(t Tile) string {
	return strconv.Itoa(t.Index)
}
