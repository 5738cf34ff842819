package grid

import "fmt"

// Default gradient parameters: slices fade from black!0 to black!15.
const (
	DefaultGradientColor = "black"
	DefaultGradientSpan  = 15
)

// Gradient describes a linear shade ramp across depth slices, expressed as
// xcolor mixes of Color with increasing percentages.
type Gradient struct {
	Color string // base color mixed into white, e.g. "black"
	Span  int    // percentage reached by the last slice
}

// DefaultGradient returns the black!0 … black!15 ramp.
func DefaultGradient() Gradient {
	return Gradient{Color: DefaultGradientColor, Span: DefaultGradientSpan}
}

// Shades returns one shade per slice. Slice i gets Color!int(i*step) with
// step = Span / max(1, n-1), so shades never decrease with depth and slice 0
// is always Color!0.
//
// For n <= 1 a single base shade is returned. The step is never computed over
// a zero divisor.
func (g Gradient) Shades(n int) []string {
	if g.Color == "" {
		g.Color = DefaultGradientColor
	}
	if n <= 1 {
		return []string{g.shade(0)}
	}
	step := float64(g.Span) / float64(max(1, n-1))
	out := make([]string, n)
	for i := range out {
		out[i] = g.shade(int(float64(i) * step))
	}
	return out
}

func (g Gradient) shade(pct int) string {
	return fmt.Sprintf("%s!%d", g.Color, pct)
}
