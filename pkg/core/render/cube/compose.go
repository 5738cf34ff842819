package cube

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/cubetex/pkg/errors"
)

// Compose builds d and returns the picture body: definitions, declarations,
// the grid matrix style and one scope holding every face in paint order.
// The result still needs [WrapPicture] (and optionally [WrapDocument]).
func Compose(d Diagram, opts ...Option) (string, error) {
	l, err := Build(d, opts...)
	if err != nil {
		return "", err
	}
	return l.Body()
}

// Body writes the layout in paint order:
//
//	definitions → declarations → style → scope
//	  → hidden slices (farthest first) → top → front → side → bounding regions
//	→ end scope
//
// Farther slices are painted first so nearer ones occlude them.
func (l Layout) Body() (string, error) {
	var buf bytes.Buffer
	buf.WriteString(l.Config.Definitions())
	buf.WriteString(l.Config.Declarations)
	buf.WriteString(gridMatrixStyle)
	buf.WriteString(beginScope)

	for i := len(l.Hidden); i >= 1; i-- {
		v := faceView{Name: fmt.Sprintf("front_%d", i), Body: l.Hidden[i-1], Offset: i}
		if err := writeFace(&buf, "slice", v); err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "write slice %d", i)
		}
	}
	for _, f := range []struct{ tmpl, body string }{
		{"top", l.Top},
		{"front", l.Front},
		{"side", l.Side},
	} {
		if err := writeFace(&buf, f.tmpl, faceView{Name: f.tmpl, Body: f.body}); err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "write %s face", f.tmpl)
		}
	}

	buf.WriteString(boundingRegions)
	buf.WriteString(endScope)
	return buf.String(), nil
}

// ConfigFor returns the configuration record d renders with.
func ConfigFor(d Diagram, opts ...Option) (Config, error) {
	l, err := Build(d, opts...)
	if err != nil {
		return Config{}, err
	}
	return l.Config, nil
}
