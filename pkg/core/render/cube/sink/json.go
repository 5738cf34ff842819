package sink

import (
	"encoding/json"

	"github.com/matzehuels/cubetex/pkg/core/grid"
	"github.com/matzehuels/cubetex/pkg/core/render/cube"
)

type jsonOutput struct {
	Kind   cube.Kind   `json:"kind"`
	Config cube.Config `json:"config"`
	Shape  grid.Shape3 `json:"shape"`
	Slices int         `json:"slices"`
	Bounds cube.Rect   `json:"bounds"`
	Faces  jsonFaces   `json:"faces"`
}

type jsonFaces struct {
	Top    string   `json:"top"`
	Front  string   `json:"front"`
	Side   string   `json:"side"`
	Hidden []string `json:"hidden,omitempty"` // nearest first
}

// RenderJSON exports the resolved layout of d as a pretty-printed JSON
// document: kind, configuration record, extents, slice count, projected
// bounds in cm and the formatted matrix body of every face.
//
// It is meant for tooling that wants to place or size the picture without
// parsing TikZ.
func RenderJSON(d cube.Diagram, opts ...cube.Option) ([]byte, error) {
	l, err := cube.Build(d, opts...)
	if err != nil {
		return nil, err
	}
	return EncodeJSON(l)
}

// EncodeJSON exports an already built layout; see [RenderJSON].
func EncodeJSON(l cube.Layout) ([]byte, error) {
	out := jsonOutput{
		Kind:   l.Kind,
		Config: l.Config,
		Shape:  l.Shape,
		Slices: len(l.Hidden) + 1,
		Bounds: l.Bounds(),
		Faces: jsonFaces{
			Top:    l.Top,
			Front:  l.Front,
			Side:   l.Side,
			Hidden: l.Hidden,
		},
	}
	return json.MarshalIndent(out, "", "  ")
}
