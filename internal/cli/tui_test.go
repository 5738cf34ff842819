package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/cubetex/pkg/core/grid"
	"github.com/matzehuels/cubetex/pkg/core/render/cube"
	"github.com/matzehuels/cubetex/pkg/errors"
	specio "github.com/matzehuels/cubetex/pkg/io"
)

func pageTitles(m InspectModel) []string {
	titles := make([]string, len(m.Pages))
	for i, p := range m.Pages {
		titles[i] = p.Title
	}
	return titles
}

func TestNewInspectModel(t *testing.T) {
	tests := []struct {
		name   string
		spec   *specio.Spec
		kind   cube.Kind
		titles []string
	}{
		{"cuboid", specio.ExampleSpec(), cube.KindCuboid, []string{"front", "top", "side"}},
		{"stacked", stackedSpec(), cube.KindStacked, []string{"slice 0", "slice 1"}},
		{"flat", flatSpec(), cube.KindFlat, []string{"matrix"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewInspectModel(tt.name+".toml", tt.spec)
			if err != nil {
				t.Fatalf("NewInspectModel: %v", err)
			}
			if m.Layout.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", m.Layout.Kind, tt.kind)
			}
			if diff := cmp.Diff(tt.titles, pageTitles(m)); diff != "" {
				t.Errorf("page titles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewInspectModelColors(t *testing.T) {
	m, err := NewInspectModel("stacked", stackedSpec())
	if err != nil {
		t.Fatal(err)
	}
	want := []grid.Grid{{{"black!0", "black!0"}}, {{"black!15", "black!15"}}}
	for i, p := range m.Pages {
		if diff := cmp.Diff(want[i], p.Colors); diff != "" {
			t.Errorf("slice %d colors mismatch (-want +got):\n%s", i, diff)
		}
	}

	spec := flatSpec()
	spec.Fill = "yellow"
	m, err = NewInspectModel("flat", spec)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(grid.Uniform(2, 2, "yellow"), m.Pages[0].Colors); diff != "" {
		t.Errorf("flat fill mismatch (-want +got):\n%s", diff)
	}
}

func TestNewInspectModelErrors(t *testing.T) {
	spec := &specio.Spec{
		Front: grid.Grid{{"a", "b"}},
		Top:   grid.Grid{{"a"}},
		Side:  grid.Grid{{"a"}},
	}
	_, err := NewInspectModel("bad", spec)
	if !errors.Is(err, errors.ErrCodeInconsistentCuboid) {
		t.Errorf("error = %v, want INCONSISTENT_CUBOID", err)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInspectModelUpdate(t *testing.T) {
	m, err := NewInspectModel("tensor", specio.ExampleSpec())
	if err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		key        string
		page       int
		showColors bool
	}{
		{"right", 1, false},
		{"l", 2, false},
		{"right", 2, false}, // clamped at the last page
		{"c", 2, true},
		{"left", 1, true},
		{"h", 0, true},
		{"left", 0, true}, // clamped at the first page
		{"c", 0, false},
	}

	var model tea.Model = m
	for i, step := range steps {
		model, _ = model.Update(key(step.key))
		got := model.(InspectModel)
		if got.Page != step.page || got.ShowColors != step.showColors {
			t.Errorf("step %d (%s): page=%d colors=%v, want page=%d colors=%v",
				i, step.key, got.Page, got.ShowColors, step.page, step.showColors)
		}
	}

	_, cmd := model.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestInspectModelView(t *testing.T) {
	spec := flatSpec()
	spec.Matrix[1][1] = ""
	m, err := NewInspectModel("matrix.toml", spec)
	if err != nil {
		t.Fatal(err)
	}

	view := m.View()
	for _, want := range []string{"matrix.toml", "[matrix]", "flat", "1×2×2", "a", emptyCell} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m.ShowColors = true
	if !strings.Contains(m.View(), emptyCell) {
		t.Error("colors view should mark unset colors as empty")
	}
}

func TestRenderGridTableRagged(t *testing.T) {
	out := renderGridTable(grid.Grid{{"a", "b", "c"}, {"d"}})
	if strings.Count(out, emptyCell) != 2 {
		t.Errorf("ragged row should be padded with two empty cells:\n%s", out)
	}
}
