// Package sink provides the output formats of a cuboid render.
//
// # Overview
//
// A sink turns a [cube.Diagram] into bytes:
//
//   - TikZ: a bare tikzpicture, ready to \input into a larger document
//   - TeX: a standalone LaTeX document wrapping the picture
//   - JSON: the resolved configuration record, extents and face bodies
//
// All sinks accept the composer's [cube.Option] values:
//
//	tex, err := sink.RenderTeX(d,
//	    cube.WithLabels("$i$", "$j$", "$k$"),
//	    cube.WithGridColor("gray"),
//	)
//
// Compiling the TeX output (pdflatex, latexmk) is left to the caller.
//
// [cube.Diagram]: github.com/matzehuels/cubetex/pkg/core/render/cube.Diagram
// [cube.Option]: github.com/matzehuels/cubetex/pkg/core/render/cube.Option
package sink
