package io

import (
	"github.com/matzehuels/cubetex/pkg/core/grid"
	"github.com/matzehuels/cubetex/pkg/core/render/cube"
	"github.com/matzehuels/cubetex/pkg/errors"
)

// Spec is a diagram spec document.
type Spec struct {
	Kind cube.Kind `json:"kind,omitempty" toml:"kind,omitempty" yaml:"kind,omitempty"`

	Labels   *Labels   `json:"labels,omitempty" toml:"labels,omitempty" yaml:"labels,omitempty"`
	Gradient *Gradient `json:"gradient,omitempty" toml:"gradient,omitempty" yaml:"gradient,omitempty"`

	GridColor    string `json:"grid_color,omitempty" toml:"grid_color,omitempty" yaml:"grid_color,omitempty"`
	ShadeA       string `json:"shade_a,omitempty" toml:"shade_a,omitempty" yaml:"shade_a,omitempty"`
	ShadeB       string `json:"shade_b,omitempty" toml:"shade_b,omitempty" yaml:"shade_b,omitempty"`
	Fill         string `json:"fill,omitempty" toml:"fill,omitempty" yaml:"fill,omitempty"`
	Declarations string `json:"declarations,omitempty" toml:"declarations,omitempty" yaml:"declarations,omitempty"`

	Front       grid.Grid `json:"front,omitempty" toml:"front,omitempty" yaml:"front,omitempty"`
	Top         grid.Grid `json:"top,omitempty" toml:"top,omitempty" yaml:"top,omitempty"`
	Side        grid.Grid `json:"side,omitempty" toml:"side,omitempty" yaml:"side,omitempty"`
	FrontColors grid.Grid `json:"front_colors,omitempty" toml:"front_colors,omitempty" yaml:"front_colors,omitempty"`
	TopColors   grid.Grid `json:"top_colors,omitempty" toml:"top_colors,omitempty" yaml:"top_colors,omitempty"`
	SideColors  grid.Grid `json:"side_colors,omitempty" toml:"side_colors,omitempty" yaml:"side_colors,omitempty"`

	Block       grid.Block `json:"block,omitempty" toml:"block,omitempty" yaml:"block,omitempty"`
	BlockColors grid.Block `json:"block_colors,omitempty" toml:"block_colors,omitempty" yaml:"block_colors,omitempty"`

	Matrix       grid.Grid `json:"matrix,omitempty" toml:"matrix,omitempty" yaml:"matrix,omitempty"`
	MatrixColors grid.Grid `json:"matrix_colors,omitempty" toml:"matrix_colors,omitempty" yaml:"matrix_colors,omitempty"`
}

// Labels are the axis labels of a spec. When the labels table is omitted
// the defaults x, y and z apply.
type Labels struct {
	X string `json:"x" toml:"x" yaml:"x"`
	Y string `json:"y" toml:"y" yaml:"y"`
	Z string `json:"z" toml:"z" yaml:"z"`
}

// Gradient overrides the depth shading of stacked diagrams. Zero fields keep
// their defaults.
type Gradient struct {
	Color string `json:"color,omitempty" toml:"color,omitempty" yaml:"color,omitempty"`
	Span  int    `json:"span,omitempty" toml:"span,omitempty" yaml:"span,omitempty"`
}

// ResolvedKind returns the kind of s. An omitted kind is inferred from the
// data present: matrix means flat, block means stacked, anything else cuboid.
func (s *Spec) ResolvedKind() cube.Kind {
	switch {
	case s.Kind != "":
		return s.Kind
	case s.Matrix != nil:
		return cube.KindFlat
	case s.Block != nil:
		return cube.KindStacked
	default:
		return cube.KindCuboid
	}
}

// Validate checks the kind and that only data belonging to it is present.
// Shapes are checked when the diagram is built.
func (s *Spec) Validate() error {
	kind := s.ResolvedKind()
	cuboid := s.Front != nil || s.Top != nil || s.Side != nil ||
		s.FrontColors != nil || s.TopColors != nil || s.SideColors != nil
	stacked := s.Block != nil || s.BlockColors != nil
	flat := s.Matrix != nil || s.MatrixColors != nil

	switch kind {
	case cube.KindCuboid:
		if stacked || flat {
			return errors.New(errors.ErrCodeInvalidInput, "cuboid spec may only set front, top and side")
		}
	case cube.KindStacked:
		if cuboid || flat {
			return errors.New(errors.ErrCodeInvalidInput, "stacked spec may only set block")
		}
	case cube.KindFlat:
		if cuboid || stacked {
			return errors.New(errors.ErrCodeInvalidInput, "flat spec may only set matrix")
		}
	default:
		return errors.New(errors.ErrCodeInvalidKind,
			"unknown kind %q (must be cuboid, stacked or flat)", kind)
	}
	if s.Gradient != nil && s.Gradient.Span < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "gradient span must not be negative")
	}
	return nil
}

// Diagram returns the diagram described by s.
func (s *Spec) Diagram() (cube.Diagram, error) {
	if err := s.Validate(); err != nil {
		return cube.Diagram{}, err
	}
	d := cube.Diagram{Kind: s.ResolvedKind()}
	switch d.Kind {
	case cube.KindCuboid:
		d.Faces = grid.Cuboid{Front: s.Front, Top: s.Top, Side: s.Side}
		d.FaceColors = grid.Cuboid{Front: s.FrontColors, Top: s.TopColors, Side: s.SideColors}
	case cube.KindStacked:
		d.Block, d.BlockColors = s.Block, s.BlockColors
	case cube.KindFlat:
		d.Matrix, d.MatrixColors = s.Matrix, s.MatrixColors
	}
	return d, nil
}

// Options returns the render options described by s.
func (s *Spec) Options() []cube.Option {
	opts := []cube.Option{
		cube.WithGridColor(s.GridColor),
		cube.WithShades(s.ShadeA, s.ShadeB),
		cube.WithFill(s.Fill),
		cube.WithDeclarations(s.Declarations),
	}
	if s.Labels != nil {
		opts = append(opts, cube.WithLabels(s.Labels.X, s.Labels.Y, s.Labels.Z))
	}
	if s.Gradient != nil {
		opts = append(opts, cube.WithGradient(s.ResolvedGradient()))
	}
	return opts
}

// ResolvedGradient returns the depth gradient of s with defaults filled in.
func (s *Spec) ResolvedGradient() grid.Gradient {
	g := grid.DefaultGradient()
	if s.Gradient == nil {
		return g
	}
	if s.Gradient.Color != "" {
		g.Color = s.Gradient.Color
	}
	if s.Gradient.Span != 0 {
		g.Span = s.Gradient.Span
	}
	return g
}
