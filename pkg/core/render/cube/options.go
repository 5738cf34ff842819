package cube

import "github.com/matzehuels/cubetex/pkg/core/grid"

// Option configures [Build] and [Compose].
type Option func(*settings)

type settings struct {
	xLabel, yLabel, zLabel string
	gridColor              string
	shadeA, shadeB         string
	declarations           string
	fill                   string
	gradient               grid.Gradient
}

func newSettings(opts ...Option) settings {
	s := settings{
		xLabel:    DefaultXLabel,
		yLabel:    DefaultYLabel,
		zLabel:    DefaultZLabel,
		gridColor: DefaultGridColor,
		shadeA:    DefaultShadeA,
		shadeB:    DefaultShadeB,
		gradient:  grid.DefaultGradient(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithLabels sets the axis labels. Labels are TikZ markup and are emitted
// verbatim. For flat diagrams the x label names the column axis and z is
// ignored.
func WithLabels(x, y, z string) Option {
	return func(s *settings) { s.xLabel, s.yLabel, s.zLabel = x, y, z }
}

// WithGridColor sets the color of the cell borders.
func WithGridColor(c string) Option {
	return func(s *settings) {
		if c != "" {
			s.gridColor = c
		}
	}
}

// WithShades sets the two shading endpoint colors. a is used as the front
// face background.
func WithShades(a, b string) Option {
	return func(s *settings) {
		if a != "" {
			s.shadeA = a
		}
		if b != "" {
			s.shadeB = b
		}
	}
}

// WithDeclarations injects opaque markup after the definitions block.
func WithDeclarations(d string) Option { return func(s *settings) { s.declarations = d } }

// WithFill sets the fill used for cells without explicit colors. For stacked
// diagrams a fill replaces the depth gradient.
func WithFill(c string) Option { return func(s *settings) { s.fill = c } }

// WithGradient sets the depth gradient used by stacked diagrams without
// explicit colors or fill.
func WithGradient(g grid.Gradient) Option { return func(s *settings) { s.gradient = g } }
