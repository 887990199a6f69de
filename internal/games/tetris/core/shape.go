// Package core provides the board/piece simulation for the falling-block game.
// This package is UI-agnostic and deterministic for a given seed; it performs
// no I/O and no locking, callers serialize access to an Engine.
package core

// Shape identifies one of the fixed polyomino shapes.
// The zero value means "empty" when stored in a board cell.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeI
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// ShapeCount is the number of distinct playable shapes.
const ShapeCount = 7

// String returns the conventional letter for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "."
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the playable shapes.
func (s Shape) Valid() bool {
	return s >= ShapeI && s <= ShapeZ
}

// AllShapes returns every playable shape in id order.
func AllShapes() []Shape {
	return []Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}
}

// Point is a cell coordinate on the board: origin top-left, y grows downward.
type Point struct {
	X, Y int
}

// P is shorthand for constructing a Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// shapeDef is a spawn template: cell offsets relative to the spawn column
// and row, plus the rotation origin in the same frame.
type shapeDef struct {
	cells  [4]Point
	origin Point
}

// shapeTable is indexed by Shape; index 0 is unused.
var shapeTable = [ShapeCount + 1]shapeDef{
	ShapeI: {cells: [4]Point{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}, origin: Point{0, 0}},
	ShapeJ: {cells: [4]Point{{-1, 0}, {0, 0}, {1, 0}, {1, 1}}, origin: Point{1, 0}},
	ShapeL: {cells: [4]Point{{-1, 0}, {-1, 1}, {0, 0}, {1, 0}}, origin: Point{-1, 0}},
	ShapeO: {cells: [4]Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, origin: Point{0, 1}},
	ShapeS: {cells: [4]Point{{-1, 1}, {0, 0}, {0, 1}, {1, 0}}, origin: Point{0, 1}},
	ShapeT: {cells: [4]Point{{-1, 0}, {0, 0}, {0, 1}, {1, 0}}, origin: Point{0, 1}},
	ShapeZ: {cells: [4]Point{{-1, 0}, {0, 0}, {0, 1}, {1, 1}}, origin: Point{0, 0}},
}

// Template returns the spawn offsets and origin for a shape.
// Returns nil cells for an invalid shape.
func Template(s Shape) (cells []Point, origin Point) {
	if !s.Valid() {
		return nil, Point{}
	}
	def := shapeTable[s]
	cells = make([]Point, len(def.cells))
	copy(cells, def.cells[:])
	return cells, def.origin
}
