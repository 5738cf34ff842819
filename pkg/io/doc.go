// Package io reads and writes diagram spec documents.
//
// # Overview
//
// A spec describes one render: the diagram kind, its label grids, optional
// color grids and the styling options. The same schema is accepted as JSON,
// TOML or YAML; the format is picked from the file extension.
//
// # Schema
//
//	kind = "cuboid"            # cuboid, stacked or flat (inferred when omitted)
//	grid_color = "black!80"
//	shade_a = "white"
//	shade_b = "black!20"
//	fill = ""                  # fill of cells without explicit colors
//	declarations = ""          # markup injected after the \def block
//
//	[labels]
//	x = "$k$"
//	y = "$j$"
//	z = "$i$"
//
//	[gradient]                 # depth shading of stacked diagrams
//	color = "black"
//	span = 15
//
// Cell data depends on the kind:
//
//   - cuboid: front, top, side (plus front_colors, top_colors, side_colors)
//   - stacked: block (plus block_colors), a list of slices, front first
//   - flat: matrix (plus matrix_colors)
//
// Data keys of another kind are rejected. Unknown keys are rejected in every
// format.
//
// # Import
//
// Use [ImportFile] to read a spec from a path, or [ReadSpec] with an explicit
// [Format] for any io.Reader:
//
//	spec, err := io.ImportFile("tensor.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, err := spec.Diagram()
//	tex, err := sink.RenderTeX(d, spec.Options()...)
//
// # Export
//
// [WriteSpec] and [ExportFile] encode a spec in any of the formats. Exported
// specs re-import identically.
//
// Label and color strings are TikZ markup and are never inspected.
package io
