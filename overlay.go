package gridview

import (
	"iter"
	"math"

	"github.com/google/uuid"
)

// Object is anything placed on the grid. The engine only ever reads its
// grid-space position; how it is drawn is up to the presentation layer.
type Object interface {
	Position() Point
}

// Placement is a ready-made Object pairing arbitrary content with a
// grid-space position.
type Placement struct {
	ID      uuid.UUID
	Pos     Point
	Content any
}

// NewPlacement creates a Placement with a fresh random ID.
func NewPlacement(pos Point, content any) *Placement {
	return &Placement{ID: uuid.New(), Pos: pos, Content: content}
}

// Position implements Object.
func (p *Placement) Position() Point { return p.Pos }

// Transform returns the grid-to-screen matrix for the current state.
func (e *Engine) Transform() Matrix {
	return Scale(e.scale, e.scale).Multiply(Translate(e.translation.X, e.translation.Y))
}

// Project maps a grid-space position to screen space.
func (e *Engine) Project(p Point) Point {
	return e.Transform().TransformPoint(p)
}

// Unproject maps a screen-space position back to grid space. It is the
// inverse of Project while the scale is positive.
func (e *Engine) Unproject(p Point) Point {
	return e.Transform().Invert().TransformPoint(p)
}

// CellAt returns the column and row of the grid cell under the screen-space
// point p. Cell (0, 0) spans grid space [0, LineSpacing) on both axes.
func (e *Engine) CellAt(p Point) (col, row int) {
	g := e.Unproject(p)
	return int(math.Floor(g.X / e.lineSpacing)), int(math.Floor(g.Y / e.lineSpacing))
}

// Placements yields every object with its current screen position. Objects
// must be re-placed whenever the translation or scale changes.
func Placements[O Object](e *Engine, objs []O) iter.Seq2[O, Point] {
	return func(yield func(O, Point) bool) {
		for _, o := range objs {
			if !yield(o, e.Project(o.Position())) {
				return
			}
		}
	}
}
