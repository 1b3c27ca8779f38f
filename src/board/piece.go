package board

import "boardeditor/src/base"

// PieceID is a stable handle into the board's piece arena.
type PieceID int

const NoPiece PieceID = 0

type Piece struct {
	ID   PieceID
	Kind base.PieceKind
	Tile int
	Size float64
	// Position is the top-left corner of the sprite. It follows the pointer
	// while the piece is dragged and is recentred on its tile otherwise.
	Position base.Point
}

func (p Piece) IsBound() bool {
	return p.Tile != NoTile
}

func (p Piece) Bounds() base.Rect {
	return base.RectFromTopLeft(p.Position.X, p.Position.Y, p.Size, p.Size)
}

func (p *Piece) half() base.Point {
	return base.Point{X: p.Size / 2, Y: p.Size / 2}
}

func (p *Piece) recenter(center base.Point) {
	p.Position = center.Sub(p.half())
}
