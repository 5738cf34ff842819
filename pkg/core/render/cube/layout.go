package cube

import (
	"github.com/matzehuels/cubetex/pkg/core/grid"
	"github.com/matzehuels/cubetex/pkg/errors"
)

// Kind selects how a [Diagram] is projected.
type Kind string

const (
	// KindCuboid renders three explicit faces of a block.
	KindCuboid Kind = "cuboid"
	// KindStacked renders every depth slice of a 3D array, receding diagonally.
	KindStacked Kind = "stacked"
	// KindFlat renders a single 2D matrix as a cuboid of depth one.
	KindFlat Kind = "flat"
)

// Fixed projection parameters per kind.
const (
	cuboidYScale = 0.75
	stackedScale = 1.0
	flatYScale   = 0.5
	defaultSlant = 1.0
)

// Fills of the placeholder faces that only frame the projection.
const (
	blankFlatFill    = "white"
	blankStackedFill = "none, draw=none"
)

// Diagram is the input of a render. Only the fields belonging to Kind are read.
// Nil color grids are resolved from the fill (or, for stacked diagrams, the
// depth gradient).
type Diagram struct {
	Kind Kind

	// KindCuboid
	Faces      grid.Cuboid
	FaceColors grid.Cuboid

	// KindStacked
	Block       grid.Block
	BlockColors grid.Block

	// KindFlat
	Matrix       grid.Grid
	MatrixColors grid.Grid
}

// NewCuboid returns a cuboid diagram from its three faces.
func NewCuboid(front, top, side grid.Grid) Diagram {
	return Diagram{Kind: KindCuboid, Faces: grid.Cuboid{Front: front, Top: top, Side: side}}
}

// NewStacked returns a stacked diagram of a full 3D array.
func NewStacked(b grid.Block) Diagram {
	return Diagram{Kind: KindStacked, Block: b}
}

// NewFlat returns a flat diagram of a 2D matrix.
func NewFlat(m grid.Grid) Diagram {
	return Diagram{Kind: KindFlat, Matrix: m}
}

// Layout is a fully resolved diagram: the configuration record plus the
// formatted body of every face, ready to be written in paint order.
type Layout struct {
	Kind   Kind        `json:"kind"`
	Config Config      `json:"config"`
	Shape  grid.Shape3 `json:"shape"`

	Top   string `json:"top"`
	Front string `json:"front"`
	Side  string `json:"side"`

	// Hidden holds the bodies of the depth slices behind the front face;
	// Hidden[k] is drawn at depth k+1. Only stacked diagrams have them.
	Hidden []string `json:"hidden,omitempty"`
}

// Build resolves shapes and colors of d and formats every face.
//
// It fails with INCONSISTENT_CUBOID when cuboid faces disagree on a shared
// edge or stacked slices differ in extent, SHAPE_MISMATCH when a color grid does not match its labels and
// INVALID_KIND for an unknown kind.
func Build(d Diagram, opts ...Option) (Layout, error) {
	s := newSettings(opts...)
	switch d.Kind {
	case KindCuboid:
		return buildCuboid(d, s)
	case KindStacked:
		return buildStacked(d, s)
	case KindFlat:
		return buildFlat(d, s)
	default:
		return Layout{}, errors.New(errors.ErrCodeInvalidKind,
			"unknown diagram kind %q (must be cuboid, stacked or flat)", d.Kind)
	}
}

func (s settings) config(shape grid.Shape3, yscale float64) Config {
	return Config{
		X: shape.X, Y: shape.Y, Z: shape.Z,
		YScale:       yscale,
		ZSlant:       defaultSlant,
		XLabel:       s.xLabel,
		YLabel:       s.yLabel,
		ZLabel:       s.zLabel,
		GridColor:    s.gridColor,
		ShadeA:       s.shadeA,
		ShadeB:       s.shadeB,
		Declarations: s.declarations,
	}
}

func buildCuboid(d Diagram, s settings) (Layout, error) {
	shape, err := grid.InspectCuboid(d.Faces)
	if err != nil {
		return Layout{}, err
	}

	top, err := formatResolved("top", d.Faces.Top, d.FaceColors.Top, s.fill, true)
	if err != nil {
		return Layout{}, err
	}
	front, err := formatResolved("front", d.Faces.Front, d.FaceColors.Front, s.fill, false)
	if err != nil {
		return Layout{}, err
	}
	side, err := formatResolved("side", d.Faces.Side, d.FaceColors.Side, s.fill, false)
	if err != nil {
		return Layout{}, err
	}

	return Layout{
		Kind:   KindCuboid,
		Config: s.config(shape, cuboidYScale),
		Shape:  shape,
		Top:    top,
		Front:  front,
		Side:   side,
	}, nil
}

func formatResolved(face string, labels, colors grid.Grid, fill string, invert bool) (string, error) {
	resolved, err := grid.ResolveColors(labels, colors, fill)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeShapeMismatch, err, "%s face", face)
	}
	return FormatFace(labels, resolved, invert), nil
}

func buildStacked(d Diagram, s settings) (Layout, error) {
	shape, err := grid.InspectBlock(d.Block)
	if err != nil {
		return Layout{}, err
	}
	colors, err := grid.ResolveBlockColors(d.Block, d.BlockColors, s.fill, s.gradient)
	if err != nil {
		return Layout{}, err
	}

	// The depth extent is the diagonal offset of the last slice, not the
	// slice count.
	depth := max(shape.X-1, 0)
	cfg := s.config(grid.Shape3{X: depth, Y: shape.Y, Z: shape.Z}, stackedScale)

	l := Layout{Kind: KindStacked, Config: cfg, Shape: shape}
	for i, slice := range d.Block {
		body := FormatFace(slice, colors[i], false)
		if i == 0 {
			l.Front = body
			continue
		}
		l.Hidden = append(l.Hidden, body)
	}

	blank := grid.BlankCuboid(shape.X, shape.Y, shape.Z, "")
	l.Top = FormatFaceFill(blank.Top, blankStackedFill, false)
	l.Side = FormatFaceFill(blank.Side, blankStackedFill, false)
	return l, nil
}

func buildFlat(d Diagram, s settings) (Layout, error) {
	colors, err := grid.ResolveColors(d.Matrix, d.MatrixColors, s.fill)
	if err != nil {
		return Layout{}, err
	}

	m := d.Matrix.Shape()
	shape := grid.Shape3{X: 1, Y: m.Rows, Z: m.Cols}

	// A matrix has no depth axis; the x label names the columns.
	s.zLabel, s.xLabel = s.xLabel, ""
	blank := grid.BlankCuboid(shape.X, shape.Y, shape.Z, "")
	return Layout{
		Kind:   KindFlat,
		Config: s.config(shape, flatYScale),
		Shape:  shape,
		Top:    FormatFaceFill(blank.Top, blankFlatFill, false),
		Front:  FormatFace(d.Matrix, colors, false),
		Side:   FormatFaceFill(blank.Side, blankFlatFill, false),
	}, nil
}
