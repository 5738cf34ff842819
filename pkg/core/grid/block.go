package grid

import "github.com/matzehuels/cubetex/pkg/errors"

// Block is a full 3D array of labels with shape (x, y, z): x depth slices,
// each a y × z [Grid]. Slice 0 is the front face; higher indices recede.
type Block []Grid

// Shape3 is the extent of a [Block] or [Cuboid].
type Shape3 struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Slices returns the number of depth slices.
func (b Block) Slices() int { return len(b) }

// Shape returns (x, y, z) where y and z are taken from the front slice.
// An empty block has shape (0, 0, 0). Use [InspectBlock] to also check the
// other slices.
func (b Block) Shape() Shape3 {
	if len(b) == 0 {
		return Shape3{}
	}
	return Shape3{X: len(b), Y: b[0].Rows(), Z: b[0].Cols()}
}

// InspectBlock returns the shape of b and checks that every slice spans the
// same y × z extent as the front slice. Ragged rows inside a slice are
// allowed; the widest row sets the slice's columns.
func InspectBlock(b Block) (Shape3, error) {
	s := b.Shape()
	for i, g := range b[1:] {
		if g.Rows() != s.Y || g.Cols() != s.Z {
			return Shape3{}, errors.New(errors.ErrCodeInconsistentCuboid,
				"slice %d is %d×%d but the front slice is %d×%d", i+1, g.Rows(), g.Cols(), s.Y, s.Z)
		}
	}
	return s, nil
}

// Uniform returns a block with the per-row lengths of b and every cell set
// to value.
func (b Block) Uniform(value string) Block {
	out := make(Block, len(b))
	for i, g := range b {
		out[i] = FillLike(g, value)
	}
	return out
}
