// Package grid provides the data model behind cube diagrams.
//
// # Overview
//
// A cube diagram is built from rectangular grids of text fragments. Each
// fragment is markup destined for a typesetting engine and is opaque to this
// package: labels are never parsed or validated, only counted and reordered.
//
//   - [Grid]: a 2D sequence of labels (or colors), one face of the cuboid
//   - [Block]: a stack of equally shaped grids forming a full 3D array
//   - [Cuboid]: the three visible faces (front, top, side) of a block
//
// # Shapes
//
// Face extents follow the axis naming used throughout cubetex:
//
//	front: y × z    top: x × z    side: y × x
//
// [InspectCuboid] derives (x, y, z) from the three faces and rejects faces
// that disagree on a shared edge with an INCONSISTENT_CUBOID error.
//
// # Colors
//
// Every label cell carries a style fragment (usually a fill color). Callers may
// supply a color grid of the same shape; otherwise [ResolveColors] fills one
// with a constant value. For blocks without explicit colors, [Gradient]
// synthesizes one uniform shade per depth slice so that slices recede from a
// base shade at the front to a lighter shade at the back.
//
// Color grids that do not match their label grid are rejected with a
// SHAPE_MISMATCH error instead of being silently truncated.
//
// # Immutability
//
// No function in this package mutates its arguments. [Grid.Reversed] and the
// resolvers always return fresh slices.
package grid
