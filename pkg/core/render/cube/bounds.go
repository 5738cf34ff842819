package cube

// Rect is an axis-aligned rectangle in picture coordinates (cm).
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

func (r Rect) union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Bounds returns the projected extent of a cuboid described by cfg, drawn
// with the given number of depth slices (0 or 1 for a plain cuboid). Axis
// labels are not included.
//
// The front face occupies [-z, 0] × [-y, 0]. The top face is scaled by
// yscale and slanted by zslant, so its back edge sits at height x·yscale and
// is shifted right by x·yscale·zslant; the side face mirrors that on the
// right. Hidden slices add their diagonal offsets, and the invisible bounding
// regions contribute [-z, 0] × [0, x] and [0, x] × [-y, 0].
func Bounds(cfg Config, slices int) Rect {
	x, y, z := float64(cfg.X), float64(cfg.Y), float64(cfg.Z)
	depth := x * cfg.YScale

	r := Rect{MinX: -z, MinY: -y, MaxX: 0, MaxY: 0}
	r = r.union(Rect{MinX: -z, MinY: 0, MaxX: depth * cfg.ZSlant, MaxY: depth})
	r = r.union(Rect{MinX: 0, MinY: -y, MaxX: depth * cfg.ZSlant, MaxY: depth})
	r = r.union(Rect{MinX: -z, MinY: 0, MaxX: 0, MaxY: x})
	r = r.union(Rect{MinX: 0, MinY: -y, MaxX: x, MaxY: 0})

	for i := 1; i < slices; i++ {
		off := float64(i)
		r = r.union(Rect{MinX: -z + off, MinY: -y + off, MaxX: off, MaxY: off})
	}
	return r
}

// Bounds returns the projected extent of l.
func (l Layout) Bounds() Rect {
	return Bounds(l.Config, len(l.Hidden)+1)
}
