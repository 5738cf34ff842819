package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/cubetex/pkg/core/grid"
	"github.com/matzehuels/cubetex/pkg/core/render/cube"
	specio "github.com/matzehuels/cubetex/pkg/io"
)

// Viewer styles
var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorDim)
	cellEmptyStyle   = lipgloss.NewStyle().Foreground(colorDim)
	headerCellStyle  = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	listDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// emptyCell stands in for blank labels so the grid stays readable.
const emptyCell = "·"

// =============================================================================
// InspectModel - Interactive face and slice viewer
// =============================================================================

// InspectPage is one face or slice of a diagram.
type InspectPage struct {
	Title  string
	Labels grid.Grid
	Colors grid.Grid
}

// InspectModel is the bubbletea model of the inspect viewer.
type InspectModel struct {
	Name       string
	Layout     cube.Layout
	Pages      []InspectPage
	Page       int
	ShowColors bool
}

// NewInspectModel resolves spec and splits it into pages: the three faces of
// a cuboid, every slice of a stacked diagram, or the single matrix.
func NewInspectModel(name string, spec *specio.Spec) (InspectModel, error) {
	d, err := spec.Diagram()
	if err != nil {
		return InspectModel{}, err
	}
	l, err := cube.Build(d, spec.Options()...)
	if err != nil {
		return InspectModel{}, err
	}

	m := InspectModel{Name: name, Layout: l}
	switch d.Kind {
	case cube.KindCuboid:
		for _, f := range []struct {
			title          string
			labels, colors grid.Grid
		}{
			{"front", d.Faces.Front, d.FaceColors.Front},
			{"top", d.Faces.Top, d.FaceColors.Top},
			{"side", d.Faces.Side, d.FaceColors.Side},
		} {
			colors, err := grid.ResolveColors(f.labels, f.colors, spec.Fill)
			if err != nil {
				return InspectModel{}, err
			}
			m.Pages = append(m.Pages, InspectPage{Title: f.title, Labels: f.labels, Colors: colors})
		}
	case cube.KindStacked:
		colors, err := grid.ResolveBlockColors(d.Block, d.BlockColors, spec.Fill, spec.ResolvedGradient())
		if err != nil {
			return InspectModel{}, err
		}
		for i, slice := range d.Block {
			m.Pages = append(m.Pages, InspectPage{
				Title:  "slice " + strconv.Itoa(i),
				Labels: slice,
				Colors: colors[i],
			})
		}
	case cube.KindFlat:
		colors, err := grid.ResolveColors(d.Matrix, d.MatrixColors, spec.Fill)
		if err != nil {
			return InspectModel{}, err
		}
		m.Pages = append(m.Pages, InspectPage{Title: "matrix", Labels: d.Matrix, Colors: colors})
	}
	return m, nil
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "tab", "n":
			if m.Page < len(m.Pages)-1 {
				m.Page++
			}
		case "left", "h", "shift+tab", "p":
			if m.Page > 0 {
				m.Page--
			}
		case "c":
			m.ShowColors = !m.ShowColors
		}
	}
	return m, nil
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ page  c colors  q quit"))
	b.WriteString("\n\n")
	b.WriteString(m.summary())
	b.WriteString("\n\n")

	tabs := make([]string, len(m.Pages))
	for i, p := range m.Pages {
		if i == m.Page {
			tabs[i] = tabActiveStyle.Render("[" + p.Title + "]")
		} else {
			tabs[i] = tabInactiveStyle.Render(" " + p.Title + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n")

	if len(m.Pages) == 0 {
		b.WriteString(listDimStyle.Render("  (empty diagram)"))
		return b.String()
	}
	page := m.Pages[m.Page]
	cells := page.Labels
	if m.ShowColors {
		cells = page.Colors
	}
	b.WriteString(renderGridTable(cells))
	b.WriteString("\n")
	return b.String()
}

// summary renders kind, shape, extents and axis labels on one line.
func (m InspectModel) summary() string {
	cfg := m.Layout.Config
	bounds := m.Layout.Bounds()
	parts := []string{
		StyleHighlight.Render(string(m.Layout.Kind)),
		fmt.Sprintf("%d×%d×%d", m.Layout.Shape.X, m.Layout.Shape.Y, m.Layout.Shape.Z),
		fmt.Sprintf("%.1f×%.1f cm", bounds.Width(), bounds.Height()),
		fmt.Sprintf("labels %s / %s / %s", orEmpty(cfg.XLabel), orEmpty(cfg.YLabel), orEmpty(cfg.ZLabel)),
	}
	return strings.Join(parts, StyleDim.Render(separator))
}

func orEmpty(s string) string {
	if s == "" {
		return emptyCell
	}
	return s
}

// renderGridTable draws g as a bordered table with row and column numbers.
// Short rows are padded with empty cells.
func renderGridTable(g grid.Grid) string {
	cols := g.Cols()
	headers := make([]string, cols+1)
	for j := range cols {
		headers[j+1] = strconv.Itoa(j + 1)
	}

	rows := make([][]string, len(g))
	for i, row := range g {
		cells := make([]string, cols+1)
		cells[0] = strconv.Itoa(i + 1)
		for j := range cols {
			cells[j+1] = emptyCell
			if j < len(row) && row[j] != "" {
				cells[j+1] = row[j]
			}
		}
		rows[i] = cells
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 || col == 0 {
				return headerCellStyle
			}
			if row < len(rows) && rows[row][col] == emptyCell {
				return cellEmptyStyle
			}
			return lipgloss.NewStyle().Foreground(colorValue)
		})
	return t.Render()
}
