package core

// Board is the grid of locked cells.
// Cells are stored in row-major order: index = y*W + x. A zero cell is empty,
// any other value is the Shape that was locked there.
type Board struct {
	w     int
	h     int
	cells []Shape
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(w, h int) *Board {
	return &Board{
		w:     w,
		h:     h,
		cells: make([]Shape, w*h),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

// index converts a coordinate to a flat array index.
func (b *Board) index(x, y int) int {
	return y*b.w + x
}

// InBounds returns true if (x, y) is on the visible board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

// ValueAt returns the shape locked at (x, y), or ShapeNone if the cell is
// empty or off the board.
func (b *Board) ValueAt(x, y int) Shape {
	if !b.InBounds(x, y) {
		return ShapeNone
	}
	return b.cells[b.index(x, y)]
}

// IsEmptyRegion reports whether every cell is empty.
// Cells above the board (y < 0) count as empty and are not bounds-checked.
// A cell with x outside the board or y >= height is a precondition violation.
func (b *Board) IsEmptyRegion(cells []Point) (bool, error) {
	empty := true
	for _, c := range cells {
		if c.Y < 0 {
			continue
		}
		if c.X < 0 || c.X >= b.w || c.Y >= b.h {
			return false, preconditionf("cell (%d,%d) outside %dx%d board", c.X, c.Y, b.w, b.h)
		}
		if b.cells[b.index(c.X, c.Y)] != ShapeNone {
			empty = false
		}
	}
	return empty, nil
}

// Lock writes s into every cell. If any cell lies above the board the call
// returns ErrStackOut and the board is left untouched.
func (b *Board) Lock(cells []Point, s Shape) error {
	if !s.Valid() {
		return preconditionf("lock with invalid shape %d", s)
	}
	for _, c := range cells {
		if c.X < 0 || c.X >= b.w || c.Y >= b.h {
			return preconditionf("lock cell (%d,%d) outside %dx%d board", c.X, c.Y, b.w, b.h)
		}
	}
	for _, c := range cells {
		if c.Y < 0 {
			return ErrStackOut
		}
	}
	for _, c := range cells {
		b.cells[b.index(c.X, c.Y)] = s
	}
	return nil
}

// rowFull reports whether every column in row y is occupied.
func (b *Board) rowFull(y int) bool {
	row := b.cells[b.index(0, y) : b.index(0, y)+b.w]
	for _, v := range row {
		if v == ShapeNone {
			return false
		}
	}
	return true
}

// removeRow empties row y and shifts every row above it down by one,
// copying bottom-up so no source row is overwritten before it is read.
func (b *Board) removeRow(y int) {
	for r := y; r > 0; r-- {
		copy(b.cells[b.index(0, r):b.index(0, r)+b.w], b.cells[b.index(0, r-1):b.index(0, r-1)+b.w])
	}
	clear(b.cells[:b.w])
}

// ClearFullRows removes every full row, scanning bottom to top and
// rescanning the same row index after each removal. Returns the number of
// rows cleared. More than Height clears in one call means the board is
// corrupted and yields ErrRunawayClear.
func (b *Board) ClearFullRows() (int, error) {
	cleared := 0
	y := b.h - 1
	for y >= 0 {
		if !b.rowFull(y) {
			y--
			continue
		}
		if cleared >= b.h {
			return cleared, ErrRunawayClear
		}
		b.removeRow(y)
		cleared++
	}
	return cleared, nil
}

// Rows returns a copy of the grid as rows, for snapshots and rendering.
func (b *Board) Rows() [][]Shape {
	rows := make([][]Shape, b.h)
	for y := range rows {
		rows[y] = make([]Shape, b.w)
		copy(rows[y], b.cells[b.index(0, y):b.index(0, y)+b.w])
	}
	return rows
}

// String renders the board as rows of shape letters, '.' for empty.
func (b *Board) String() string {
	buf := make([]byte, 0, (b.w+1)*b.h)
	for y := 0; y < b.h; y++ {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := 0; x < b.w; x++ {
			buf = append(buf, b.cells[b.index(x, y)].String()...)
		}
	}
	return string(buf)
}
