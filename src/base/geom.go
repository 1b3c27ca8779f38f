package base

type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Rect is an axis-aligned box described by its center.
type Rect struct {
	Center Point
	W      float64
	H      float64
}

func RectFromTopLeft(left, top, w, h float64) Rect {
	return Rect{Center: Point{X: left + w/2, Y: top + h/2}, W: w, H: h}
}

func (r Rect) Left() float64   { return r.Center.X - r.W/2 }
func (r Rect) Top() float64    { return r.Center.Y - r.H/2 }
func (r Rect) Right() float64  { return r.Center.X + r.W/2 }
func (r Rect) Bottom() float64 { return r.Center.Y + r.H/2 }

func (r Rect) TopLeft() Point {
	return Point{X: r.Left(), Y: r.Top()}
}

// ContainsPoint tests each axis against the half extent independently:
// (x-cx)² <= (w/2)² and (y-cy)² <= (h/2)².
func (r Rect) ContainsPoint(p Point) bool {
	dx := p.X - r.Center.X
	dy := p.Y - r.Center.Y
	hw := r.W / 2
	hh := r.H / 2
	return dx*dx <= hw*hw && dy*dy <= hh*hh
}
