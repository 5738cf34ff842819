package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/cubetex/pkg/core/render/cube"
	"github.com/matzehuels/cubetex/pkg/core/render/cube/sink"
	specio "github.com/matzehuels/cubetex/pkg/io"
	"github.com/matzehuels/cubetex/pkg/observability"
)

// Render generates output artifacts of spec in the formats listed in opts.
// Option overrides must already be applied (see [Options.Apply]).
func Render(ctx context.Context, spec *specio.Spec, opts Options) (map[string][]byte, error) {
	l, _, err := compose(ctx, spec)
	if err != nil {
		return nil, err
	}
	return Encode(l, opts.Formats)
}

// Encode writes a built layout in every listed format. The layout is built
// once and shared by all sinks.
func Encode(l cube.Layout, formats []string) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatTeX:
			data, err = sink.EncodeTeX(l)
		case FormatTikZ:
			data, err = sink.EncodeTikZ(l)
		case FormatJSON:
			data, err = sink.EncodeJSON(l)
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// compose builds the layout of spec and reports the compose hooks. It also
// returns the number of labeled cells.
func compose(ctx context.Context, spec *specio.Spec) (cube.Layout, int, error) {
	d, err := spec.Diagram()
	if err != nil {
		return cube.Layout{}, 0, err
	}
	cells := countCells(d)

	start := time.Now()
	observability.Pipeline().OnComposeStart(ctx, string(d.Kind), cells)
	l, err := cube.Build(d, spec.Options()...)
	observability.Pipeline().OnComposeComplete(ctx, string(d.Kind), time.Since(start), err)
	if err != nil {
		return cube.Layout{}, 0, err
	}
	return l, cells, nil
}

// countCells counts the labeled cells of every face or slice of d.
func countCells(d cube.Diagram) int {
	n := 0
	count := func(rows [][]string) {
		for _, r := range rows {
			n += len(r)
		}
	}
	switch d.Kind {
	case cube.KindCuboid:
		count(d.Faces.Front)
		count(d.Faces.Top)
		count(d.Faces.Side)
	case cube.KindStacked:
		for _, s := range d.Block {
			count(s)
		}
	case cube.KindFlat:
		count(d.Matrix)
	}
	return n
}
