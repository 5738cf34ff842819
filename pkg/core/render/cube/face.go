package cube

import (
	"fmt"
	"strings"

	"github.com/matzehuels/cubetex/pkg/core/grid"
)

// Separators used inside a TikZ matrix body.
const (
	// ColumnSeparator joins the cells of one row.
	ColumnSeparator = " & "

	// RowSeparator terminates every row, including the last one.
	RowSeparator = " \\\\\n"
)

// FormatCell renders one matrix cell carrying its fill style and label.
func FormatCell(label, color string) string {
	return fmt.Sprintf("|[fill=%s]| %s", color, label)
}

// FormatFace renders labels and their resolved colors as a TikZ matrix body.
// Cells are paired row by row, so colors must already match labels (see
// [grid.ResolveColors]). When invert is set the rows are emitted bottom-up,
// which is how the top face has to be written to read correctly once it is
// slanted away from the viewer.
//
// An empty grid formats to the empty string. Empty labels and empty rows are
// kept as they are.
func FormatFace(labels, colors grid.Grid, invert bool) string {
	rows := make([]string, 0, len(labels))
	for i, row := range labels {
		cells := make([]string, len(row))
		for j, label := range row {
			cells[j] = FormatCell(label, colorAt(colors, i, j))
		}
		rows = append(rows, strings.Join(cells, ColumnSeparator))
	}
	if invert {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(r)
		b.WriteString(RowSeparator)
	}
	return b.String()
}

// FormatFaceFill renders labels with every cell filled by fill.
func FormatFaceFill(labels grid.Grid, fill string, invert bool) string {
	return FormatFace(labels, grid.FillLike(labels, fill), invert)
}

func colorAt(colors grid.Grid, i, j int) string {
	if i < len(colors) && j < len(colors[i]) {
		return colors[i][j]
	}
	return grid.DefaultFill
}
