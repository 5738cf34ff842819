package grid

import (
	"github.com/matzehuels/cubetex/pkg/errors"
)

// Cuboid holds the three visible faces of a projected block.
//
// Front is y × z, Top is x × z and Side is y × x. Top rows run from the back
// edge to the front edge in reading order; the renderer inverts them so the
// first row ends up furthest from the viewer.
type Cuboid struct {
	Front Grid
	Top   Grid
	Side  Grid
}

// InspectCuboid derives the cuboid extents from its faces and verifies that
// faces agree on every shared edge:
//
//	front.Cols == top.Cols  (z)
//	front.Rows == side.Rows (y)
//	top.Rows   == side.Cols (x)
//
// A disagreement yields an INCONSISTENT_CUBOID error naming the axis.
func InspectCuboid(c Cuboid) (Shape3, error) {
	s := Shape3{
		X: c.Top.Rows(),
		Y: c.Front.Rows(),
		Z: c.Front.Cols(),
	}
	if got := c.Top.Cols(); got != s.Z {
		return Shape3{}, errors.New(errors.ErrCodeInconsistentCuboid,
			"z extent: front has %d columns but top has %d", s.Z, got)
	}
	if got := c.Side.Rows(); got != s.Y {
		return Shape3{}, errors.New(errors.ErrCodeInconsistentCuboid,
			"y extent: front has %d rows but side has %d", s.Y, got)
	}
	if got := c.Side.Cols(); got != s.X {
		return Shape3{}, errors.New(errors.ErrCodeInconsistentCuboid,
			"x extent: top has %d rows but side has %d columns", s.X, got)
	}
	return s, nil
}

// BlankCuboid returns placeholder faces for an x × y × z cuboid with every
// cell set to value.
func BlankCuboid(x, y, z int, value string) Cuboid {
	return Cuboid{
		Front: Uniform(y, z, value),
		Top:   Uniform(x, z, value),
		Side:  Uniform(y, x, value),
	}
}
