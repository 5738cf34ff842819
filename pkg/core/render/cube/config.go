package cube

import (
	"bytes"
	"fmt"
)

// Default styling values shared by every diagram kind.
const (
	DefaultXLabel    = "x"
	DefaultYLabel    = "y"
	DefaultZLabel    = "z"
	DefaultGridColor = "black!80"
	DefaultShadeA    = "white"
	DefaultShadeB    = "black!20"
)

// Config is the configuration record every face scope reads. It is rendered
// once as a block of \def macros (\x, \y, \z, \yscale, \zslant, \xlab, \ylab,
// \zlab, \gridcol, \shadecolA, \shadecolB) and passed by value to each face
// writer.
type Config struct {
	X int `json:"x"` // depth extent (top rows, side columns)
	Y int `json:"y"` // height extent (front and side rows)
	Z int `json:"z"` // width extent (front and top columns)

	YScale float64 `json:"yscale"` // vertical compression of the top face
	ZSlant float64 `json:"zslant"` // slant of the top face; the side uses 1/ZSlant

	XLabel string `json:"xlabel"`
	YLabel string `json:"ylabel"`
	ZLabel string `json:"zlabel"`

	GridColor string `json:"grid_color"`
	ShadeA    string `json:"shade_a"` // front face background
	ShadeB    string `json:"shade_b"`

	// Declarations is injected verbatim after the definitions, e.g. custom
	// \pgfdeclareverticalshading blocks referenced from cell colors.
	Declarations string `json:"declarations,omitempty"`
}

// Definitions renders the \def block for cfg.
func (cfg Config) Definitions() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\n    \\def\\x{%d}", cfg.X)
	fmt.Fprintf(&buf, "\n    \\def\\y{%d}", cfg.Y)
	fmt.Fprintf(&buf, "\n    \\def\\z{%d}", cfg.Z)
	fmt.Fprintf(&buf, "\n    \\def\\yscale{%f}", cfg.YScale)
	fmt.Fprintf(&buf, "\n    \\def\\zslant{%f}", cfg.ZSlant)
	fmt.Fprintf(&buf, "\n    \\def\\xlab{%s}", cfg.XLabel)
	fmt.Fprintf(&buf, "\n    \\def\\ylab{%s}", cfg.YLabel)
	fmt.Fprintf(&buf, "\n    \\def\\zlab{%s}", cfg.ZLabel)
	fmt.Fprintf(&buf, "\n    \\def\\gridcol{%s}", cfg.GridColor)
	fmt.Fprintf(&buf, "\n    \\def\\shadecolA{%s}", cfg.ShadeA)
	fmt.Fprintf(&buf, "\n    \\def\\shadecolB{%s}", cfg.ShadeB)
	return buf.String()
}
