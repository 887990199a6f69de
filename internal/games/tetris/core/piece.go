package core

// Piece is the active falling polyomino. It owns a single coordinate buffer
// whose length never changes after construction.
type Piece struct {
	shape  Shape
	cells  []Point
	origin Point
}

// NewPiece builds a piece of the given shape with its template anchored at
// (col, row). Returns nil for an invalid shape.
func NewPiece(s Shape, col, row int) *Piece {
	offsets, origin := Template(s)
	if offsets == nil {
		return nil
	}
	for i := range offsets {
		offsets[i] = offsets[i].Add(col, row)
	}
	return &Piece{
		shape:  s,
		cells:  offsets,
		origin: origin.Add(col, row),
	}
}

// Shape returns the piece's shape id.
func (p *Piece) Shape() Shape {
	return p.shape
}

// Origin returns the rotation pivot.
func (p *Piece) Origin() Point {
	return p.origin
}

// Cells returns a copy of the occupied coordinates.
func (p *Piece) Cells() []Point {
	out := make([]Point, len(p.cells))
	copy(out, p.cells)
	return out
}

// Len returns the number of cells the piece occupies.
func (p *Piece) Len() int {
	return len(p.cells)
}

// Translate shifts every cell and the origin by (dx, dy).
func (p *Piece) Translate(dx, dy int) {
	for i := range p.cells {
		p.cells[i] = p.cells[i].Add(dx, dy)
	}
	p.origin = p.origin.Add(dx, dy)
}

// Shifted returns the cells moved by (dx, dy) without changing the piece.
func (p *Piece) Shifted(dx, dy int) []Point {
	out := make([]Point, len(p.cells))
	for i, c := range p.cells {
		out[i] = c.Add(dx, dy)
	}
	return out
}

// Rotated returns the cells turned 90 degrees about the origin.
// It does not check collisions and does not modify the piece.
func (p *Piece) Rotated(clockwise bool) []Point {
	out := make([]Point, len(p.cells))
	for i, c := range p.cells {
		dx := c.X - p.origin.X
		dy := c.Y - p.origin.Y
		if clockwise {
			out[i] = Point{X: p.origin.X - dy, Y: p.origin.Y + dx}
		} else {
			out[i] = Point{X: p.origin.X + dy, Y: p.origin.Y - dx}
		}
	}
	return out
}

// Rotate commits a rotation about the origin.
func (p *Piece) Rotate(clockwise bool) {
	p.setCells(p.Rotated(clockwise))
}

// setCells replaces the cell buffer in place. The length must match.
func (p *Piece) setCells(cells []Point) {
	copy(p.cells, cells)
}

// ContainsCell reports whether (x, y) is one of the piece's cells.
func (p *Piece) ContainsCell(x, y int) bool {
	for _, c := range p.cells {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// Bottom returns the largest y among the piece's cells.
func (p *Piece) Bottom() int {
	bottom := p.cells[0].Y
	for _, c := range p.cells[1:] {
		if c.Y > bottom {
			bottom = c.Y
		}
	}
	return bottom
}
