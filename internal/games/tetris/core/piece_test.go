package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPieceInvalidShape(t *testing.T) {
	assert.Nil(t, NewPiece(ShapeNone, 5, 5))
	assert.Nil(t, NewPiece(Shape(42), 5, 5))
}

func TestNewPieceAnchorsTemplate(t *testing.T) {
	p := NewPiece(ShapeT, 8, -1)
	require.NotNil(t, p)

	assert.Equal(t, ShapeT, p.Shape())
	assert.Equal(t, 4, p.Len())
	assert.ElementsMatch(t, []Point{P(7, -1), P(8, -1), P(8, 0), P(9, -1)}, p.Cells())
	assert.Equal(t, P(8, 0), p.Origin())
}

func TestEveryShapeHasFourCells(t *testing.T) {
	for _, s := range AllShapes() {
		p := NewPiece(s, 5, 5)
		require.NotNil(t, p, "shape %s", s)
		assert.Equal(t, 4, p.Len(), "shape %s", s)
	}
}

func TestPieceRotateClockwise(t *testing.T) {
	p := NewPiece(ShapeI, 5, 3)

	p.Rotate(true)

	assert.ElementsMatch(t, []Point{P(5, 2), P(5, 3), P(5, 4), P(5, 5)}, p.Cells())
	assert.Equal(t, P(5, 3), p.Origin())
}

func TestPieceRotationIdentities(t *testing.T) {
	for _, s := range AllShapes() {
		t.Run(s.String(), func(t *testing.T) {
			p := NewPiece(s, 6, 6)
			start := p.Cells()

			for range 4 {
				p.Rotate(true)
			}
			assert.Equal(t, start, p.Cells(), "four clockwise turns")

			p.Rotate(true)
			p.Rotate(false)
			assert.Equal(t, start, p.Cells(), "clockwise then counter-clockwise")

			for range 4 {
				p.Rotate(false)
			}
			assert.Equal(t, start, p.Cells(), "four counter-clockwise turns")
		})
	}
}

func TestPieceRotatedDoesNotMutate(t *testing.T) {
	p := NewPiece(ShapeL, 4, 4)
	before := p.Cells()

	_ = p.Rotated(true)
	_ = p.Shifted(1, 1)

	assert.Equal(t, before, p.Cells())
}

func TestPieceTranslate(t *testing.T) {
	p := NewPiece(ShapeO, 2, 2)
	origin := p.Origin()

	p.Translate(3, -1)

	assert.ElementsMatch(t, []Point{P(5, 1), P(5, 2), P(6, 1), P(6, 2)}, p.Cells())
	assert.Equal(t, origin.Add(3, -1), p.Origin())
}

func TestPieceContainsCellAndBottom(t *testing.T) {
	p := NewPiece(ShapeZ, 3, 0)

	assert.True(t, p.ContainsCell(2, 0))
	assert.True(t, p.ContainsCell(4, 1))
	assert.False(t, p.ContainsCell(2, 1))
	assert.Equal(t, 1, p.Bottom())
}

func TestPieceCellsIsACopy(t *testing.T) {
	p := NewPiece(ShapeS, 5, 5)
	before := p.Cells()

	cells := p.Cells()
	cells[0] = P(-9, -9)

	assert.Equal(t, before, p.Cells())
}
