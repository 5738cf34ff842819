// Package cube turns labeled grids into TikZ markup of an isometric cuboid.
//
// A render has three layers:
//
//   - the face formatter ([FormatFace]) turns a label grid and its colors
//     into the body of a TikZ matrix,
//   - the composer ([Build], [Compose]) resolves shapes and colors of a
//     [Diagram] and places the front, top and side faces (plus the hidden
//     depth slices of a stacked diagram) with slant, scale and shift
//     transforms,
//   - the wrappers ([WrapPicture], [WrapDocument]) turn the body into a
//     tikzpicture or a standalone LaTeX document.
//
// Every face scope reads the same configuration record ([Config]), emitted
// once as a block of \def macros at the top of the picture. Output is plain
// text; nothing here typesets or validates the label markup.
//
// # Diagram kinds
//
//   - [KindCuboid] draws three explicit faces of shapes front y×z, top x×z
//     and side y×x.
//   - [KindStacked] draws every depth slice of a 3D array. Slices recede
//     diagonally by one unit each and are shaded by a depth gradient unless
//     colors are given.
//   - [KindFlat] draws a single matrix as a cuboid of depth one.
//
// Output formats live in the sink subpackage.
package cube
