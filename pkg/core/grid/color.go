package grid

import (
	"github.com/matzehuels/cubetex/pkg/errors"
)

// ResolveColors returns the color grid to pair with labels.
//
// A nil colors grid is synthesized with [FillLike] using fill. A supplied grid
// is returned as-is once it is verified to have the same number of rows and
// the same length for every row as labels; otherwise a SHAPE_MISMATCH error
// is returned.
func ResolveColors(labels, colors Grid, fill string) (Grid, error) {
	if colors == nil {
		return FillLike(labels, fill), nil
	}
	if err := matchShape(labels, colors); err != nil {
		return nil, err
	}
	return colors, nil
}

// ResolveBlockColors returns the color block to pair with labels.
//
// Resolution order:
//  1. explicit colors, validated slice by slice
//  2. a non-empty fill applied to every cell
//  3. one uniform shade per slice from g
func ResolveBlockColors(labels, colors Block, fill string, g Gradient) (Block, error) {
	if colors != nil {
		if len(colors) != len(labels) {
			return nil, errors.New(errors.ErrCodeShapeMismatch,
				"color block has %d slices, want %d", len(colors), len(labels))
		}
		for i := range labels {
			if err := matchShape(labels[i], colors[i]); err != nil {
				return nil, errors.Wrap(errors.ErrCodeShapeMismatch, err, "slice %d", i)
			}
		}
		return colors, nil
	}
	if fill != "" {
		return labels.Uniform(fill), nil
	}

	shades := g.Shades(len(labels))
	out := make(Block, len(labels))
	for i, slice := range labels {
		out[i] = FillLike(slice, shades[i])
	}
	return out, nil
}

func matchShape(labels, colors Grid) error {
	if len(colors) != len(labels) {
		return errors.New(errors.ErrCodeShapeMismatch,
			"color grid has %d rows, want %d", len(colors), len(labels))
	}
	for i := range labels {
		if len(colors[i]) != len(labels[i]) {
			return errors.New(errors.ErrCodeShapeMismatch,
				"color row %d has %d cells, want %d", i, len(colors[i]), len(labels[i]))
		}
	}
	return nil
}
