package grid

import "slices"

// DefaultFill is the fill value used when a color grid is synthesized without
// an explicit fill.
const DefaultFill = "none"

// Grid is a rectangular 2D sequence of text fragments addressed as g[row][col].
// Rows may legitimately be empty, and cells may be empty strings.
type Grid [][]string

// Shape is the extent of a [Grid].
type Shape struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the length of the widest row, or 0 for an empty grid.
func (g Grid) Cols() int {
	n := 0
	for _, row := range g {
		n = max(n, len(row))
	}
	return n
}

// Shape returns the grid's extent.
func (g Grid) Shape() Shape { return Shape{Rows: g.Rows(), Cols: g.Cols()} }

// Reversed returns a copy of g with its row order reversed. Rows are cloned
// so the result shares no backing arrays with g.
func (g Grid) Reversed() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[len(g)-1-i] = slices.Clone(row)
	}
	return out
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = slices.Clone(row)
	}
	return out
}

// Uniform returns a rows × cols grid with every cell set to value.
// Non-positive dimensions yield an empty grid.
func Uniform(rows, cols int, value string) Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	g := make(Grid, rows)
	for i := range g {
		row := make([]string, cols)
		for j := range row {
			row[j] = value
		}
		g[i] = row
	}
	return g
}

// FillLike returns a grid with exactly the per-row lengths of labels and every
// cell set to value. An empty value selects [DefaultFill].
func FillLike(labels Grid, value string) Grid {
	if value == "" {
		value = DefaultFill
	}
	g := make(Grid, len(labels))
	for i, row := range labels {
		cells := make([]string, len(row))
		for j := range cells {
			cells[j] = value
		}
		g[i] = cells
	}
	return g
}
