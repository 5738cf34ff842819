package sink

import "github.com/matzehuels/cubetex/pkg/core/render/cube"

// RenderTikZ renders d as a tikzpicture environment.
func RenderTikZ(d cube.Diagram, opts ...cube.Option) ([]byte, error) {
	l, err := cube.Build(d, opts...)
	if err != nil {
		return nil, err
	}
	return EncodeTikZ(l)
}

// EncodeTikZ writes an already built layout as a tikzpicture environment.
func EncodeTikZ(l cube.Layout) ([]byte, error) {
	body, err := l.Body()
	if err != nil {
		return nil, err
	}
	return []byte(cube.WrapPicture(body)), nil
}

// RenderTeX renders d as a standalone LaTeX document.
func RenderTeX(d cube.Diagram, opts ...cube.Option) ([]byte, error) {
	l, err := cube.Build(d, opts...)
	if err != nil {
		return nil, err
	}
	return EncodeTeX(l)
}

// EncodeTeX writes an already built layout as a standalone LaTeX document.
func EncodeTeX(l cube.Layout) ([]byte, error) {
	body, err := l.Body()
	if err != nil {
		return nil, err
	}
	return []byte(cube.WrapDocument(cube.WrapPicture(body))), nil
}
