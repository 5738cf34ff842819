// Package pkg provides the core libraries of cubetex.
//
// # Overview
//
// cubetex draws labeled 2D and 3D arrays as isometric cuboids in TikZ. A
// diagram is one of three kinds:
//
//   - cuboid: three explicit faces (front, top, side) of a block
//   - stacked: every depth slice of a 3D array, receding diagonally
//   - flat: a single matrix drawn as a cuboid of depth one
//
// The pkg directory is organized into these areas:
//
//  1. [core/grid] - Label grids, shape inspection, color resolution and depth gradients
//  2. [core/render/cube] - Layout of the faces and TikZ composition
//  3. [io] - Spec documents in JSON, TOML and YAML
//  4. [pipeline] - Orchestration (compose → render) with caching and batches
//  5. [api] - HTTP render service
//  6. [cache] - File, redis and null caches for rendered artifacts
//
// # Architecture
//
//	spec file (json / toml / yaml)
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [core/grid] package (shapes, colors, gradient)
//	         ↓
//	    [core/render/cube] package (layout + TikZ body)
//	         ↓
//	    tex / tikz / json output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/cubetex/pkg/core/grid"
//	    "github.com/matzehuels/cubetex/pkg/core/render/cube"
//	    "github.com/matzehuels/cubetex/pkg/core/render/cube/sink"
//	)
//
//	d := cube.NewFlat(grid.Grid{
//	    {"$a$", "$b$"},
//	    {"$c$", "$d$"},
//	})
//	doc, err := sink.RenderTeX(d, cube.WithLabels("cols", "rows", ""))
//
// # Supporting Packages
//
// [errors] - Coded errors (INVALID_*, SHAPE_MISMATCH, INCONSISTENT_CUBOID)
// shared by the CLI and the API.
//
// [observability] - Hooks for compose, render, cache and HTTP events.
//
// [buildinfo] - Version information injected at build time.
package pkg
