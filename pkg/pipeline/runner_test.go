package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"github.com/matzehuels/cubetex/pkg/cache"
	"github.com/matzehuels/cubetex/pkg/core/grid"
	"github.com/matzehuels/cubetex/pkg/core/render/cube"
	"github.com/matzehuels/cubetex/pkg/errors"
	specio "github.com/matzehuels/cubetex/pkg/io"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func stackedSpec() *specio.Spec {
	return &specio.Spec{
		Kind: cube.KindStacked,
		Block: grid.Block{
			{{"1", "2"}, {"3", "4"}},
			{{"5", "6"}, {"7", "8"}},
			{{"9", "10"}, {"11", "12"}},
		},
	}
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil, nil)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRunnerRender(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t)

	res, err := r.Render(ctx, stackedSpec(), Options{Formats: []string{"tex", "tikz", "json"}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Kind != cube.KindStacked {
		t.Errorf("kind = %s", res.Kind)
	}
	if res.Shape != (grid.Shape3{X: 3, Y: 2, Z: 2}) {
		t.Errorf("shape = %+v", res.Shape)
	}
	if res.Stats.Cells != 12 {
		t.Errorf("cells = %d, want 12", res.Stats.Cells)
	}
	if res.CacheInfo.RenderHit {
		t.Error("first render should miss the cache")
	}
	if len(res.SpecHash) != 64 {
		t.Errorf("spec hash = %q", res.SpecHash)
	}

	tex := string(res.Artifacts["tex"])
	tikz := string(res.Artifacts["tikz"])
	if !strings.Contains(tex, `\documentclass`) || !strings.Contains(tex, tikz) {
		t.Error("tex artifact should wrap the tikz artifact")
	}
	var out struct {
		Slices int `json:"slices"`
	}
	if err := json.Unmarshal(res.Artifacts["json"], &out); err != nil || out.Slices != 3 {
		t.Errorf("json artifact: slices %d, err %v", out.Slices, err)
	}
}

func TestRunnerRenderCache(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t)
	opts := Options{Formats: []string{"tikz"}}

	first, err := r.Render(ctx, stackedSpec(), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := r.Render(ctx, stackedSpec(), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second render should hit the cache")
	}
	if string(first.Artifacts["tikz"]) != string(second.Artifacts["tikz"]) {
		t.Error("cached artifact differs")
	}
	if second.Shape != first.Shape {
		t.Errorf("shape on hit = %+v, want %+v", second.Shape, first.Shape)
	}

	// Refresh bypasses the lookup
	refreshed, err := r.Render(ctx, stackedSpec(), Options{Formats: []string{"tikz"}, Refresh: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if refreshed.CacheInfo.RenderHit {
		t.Error("refresh should not hit the cache")
	}

	// Different options use different keys
	colored, err := r.Render(ctx, stackedSpec(), Options{Formats: []string{"tikz"}, Fill: "red"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if colored.CacheInfo.RenderHit {
		t.Error("fill override should miss the cache")
	}
	if !strings.Contains(string(colored.Artifacts["tikz"]), "|[fill=red]| 1") {
		t.Error("fill override not applied")
	}

	// A new format misses even if others are cached
	mixed, err := r.Render(ctx, stackedSpec(), Options{Formats: []string{"tikz", "json"}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if mixed.CacheInfo.RenderHit {
		t.Error("partially cached formats should miss")
	}
}

func TestRunnerRenderErrors(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)

	bad := &specio.Spec{
		Front: grid.Uniform(2, 2, "f"),
		Top:   grid.Uniform(2, 3, "t"),
		Side:  grid.Uniform(2, 2, "s"),
	}
	if _, err := r.Render(ctx, bad, Options{}); !errors.Is(err, errors.ErrCodeInconsistentCuboid) {
		t.Errorf("inconsistent cuboid: err = %v", err)
	}

	if _, err := r.Render(ctx, stackedSpec(), Options{Formats: []string{"svg"}}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format: err = %v", err)
	}

	mixed := stackedSpec()
	mixed.Matrix = grid.Grid{{"x"}}
	if _, err := r.Render(ctx, mixed, Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("mixed spec: err = %v", err)
	}
}

// Render without a Runner skips validation, so the diagram error must
// surface from compose itself.
func TestRenderComposeErrors(t *testing.T) {
	mixed := stackedSpec()
	mixed.Matrix = grid.Grid{{"x"}}

	tests := []struct {
		name string
		spec *specio.Spec
		code errors.Code
	}{
		{"mixed kinds", mixed, errors.ErrCodeInvalidInput},
		{"unknown kind", &specio.Spec{Kind: "sphere"}, errors.ErrCodeInvalidKind},
		{"ragged block", &specio.Spec{Block: grid.Block{grid.Uniform(2, 2, "a"), grid.Uniform(1, 2, "b")}}, errors.ErrCodeInconsistentCuboid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifacts, err := Render(context.Background(), tt.spec, Options{Formats: []string{FormatTeX}})
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
			if artifacts != nil {
				t.Errorf("artifacts = %v, want none", artifacts)
			}
		})
	}
}

func TestRunnerRenderBatch(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t)

	var jobs []Job
	for i := range 10 {
		jobs = append(jobs, Job{
			Name:    fmt.Sprintf("spec-%d", i),
			Spec:    &specio.Spec{Matrix: grid.Grid{{fmt.Sprint(i)}}},
			Options: Options{Formats: []string{"tikz"}},
		})
	}

	results, err := r.RenderBatch(ctx, jobs)
	if err != nil {
		t.Fatalf("RenderBatch: %v", err)
	}
	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, res := range results {
		want := fmt.Sprintf("|[fill=none]| %d \\\\", i)
		if !strings.Contains(string(res.Artifacts["tikz"]), want) {
			t.Errorf("result %d out of order", i)
		}
	}
}

func TestRunnerRenderBatchError(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)

	jobs := []Job{
		{Name: "good.toml", Spec: stackedSpec()},
		{Name: "bad.toml", Spec: &specio.Spec{Kind: "sphere"}},
	}
	_, err := r.RenderBatch(ctx, jobs)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "bad.toml") {
		t.Errorf("error %q does not name the job", err)
	}
	if !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("err = %v, want INVALID_KIND", err)
	}
}

func TestRunnerRenderBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(nil, nil, nil)
	_, err := r.RenderBatch(ctx, []Job{{Name: "a", Spec: stackedSpec()}})
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestRunnerRenderStyleDefaults(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t)
	spec := &specio.Spec{Matrix: grid.Grid{{"a"}}, GridColor: "red"}

	plain, err := r.Render(ctx, spec, Options{Formats: []string{"tikz"}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	opts := Options{
		Formats:  []string{"tikz"},
		Defaults: StyleDefaults{GridColor: "gray", Fill: "white"},
	}
	styled, err := r.Render(ctx, spec, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if styled.CacheInfo.RenderHit {
		t.Error("defaults should change the cache key")
	}

	tikz := string(styled.Artifacts["tikz"])
	if !strings.Contains(tikz, `\def\gridcol{red}`) {
		t.Error("spec grid color should win over the default")
	}
	if !strings.Contains(tikz, "|[fill=white]| a") {
		t.Error("default fill not applied to an unset spec fill")
	}
	if string(plain.Artifacts["tikz"]) == tikz {
		t.Error("defaults had no effect")
	}
}
