package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/cubetex/pkg/core/grid"
	"github.com/matzehuels/cubetex/pkg/errors"
	specio "github.com/matzehuels/cubetex/pkg/io"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"tex", false},
		{"tikz", false},
		{"json", false},
		{"pdf", true},
		{"TEX", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"tex", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"tex", "svg"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if diff := cmp.Diff([]string{DefaultFormat}, o.Formats); diff != "" {
		t.Errorf("formats (-want +got):\n%s", diff)
	}
	if o.Logger == nil {
		t.Error("logger not set")
	}

	o = Options{Formats: []string{"json", "tex", "json"}}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if diff := cmp.Diff([]string{"json", "tex"}, o.Formats); diff != "" {
		t.Errorf("deduped formats (-want +got):\n%s", diff)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad format", Options{Formats: []string{"png"}}, errors.ErrCodeInvalidFormat},
		{"two labels", Options{Labels: []string{"x", "y"}}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOptionsApply(t *testing.T) {
	spec := &specio.Spec{
		GridColor: "gray",
		ShadeA:    "blue",
		Matrix:    grid.Grid{{"1"}},
	}
	o := Options{
		Labels: []string{"i", "j", "k"},
		ShadeA: "red",
		Fill:   "yellow",
	}

	got := o.Apply(spec)
	want := &specio.Spec{
		Labels:    &specio.Labels{X: "i", Y: "j", Z: "k"},
		GridColor: "gray",
		ShadeA:    "red",
		Fill:      "yellow",
		Matrix:    grid.Grid{{"1"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply (-want +got):\n%s", diff)
	}
	if spec.ShadeA != "blue" || spec.Labels != nil {
		t.Error("Apply modified its input")
	}
}

func TestOptionsApplyDefaults(t *testing.T) {
	defaults := StyleDefaults{GridColor: "gray", ShadeA: "blue!10", Fill: "white"}

	tests := []struct {
		name      string
		spec      specio.Spec
		opts      Options
		gridColor string
		shadeA    string
		fill      string
	}{
		{
			name:      "defaults fill empty fields",
			opts:      Options{Defaults: defaults},
			gridColor: "gray", shadeA: "blue!10", fill: "white",
		},
		{
			name:      "spec wins over defaults",
			spec:      specio.Spec{GridColor: "red", Fill: "blue"},
			opts:      Options{Defaults: defaults},
			gridColor: "red", shadeA: "blue!10", fill: "blue",
		},
		{
			name:      "override wins over spec",
			spec:      specio.Spec{GridColor: "red", Fill: "blue"},
			opts:      Options{GridColor: "green", Defaults: defaults},
			gridColor: "green", shadeA: "blue!10", fill: "blue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.opts.Apply(&tt.spec)
			if got.GridColor != tt.gridColor || got.ShadeA != tt.shadeA || got.Fill != tt.fill {
				t.Errorf("Apply = (grid %q, shade %q, fill %q), want (%q, %q, %q)",
					got.GridColor, got.ShadeA, got.Fill, tt.gridColor, tt.shadeA, tt.fill)
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	o := Options{GridColor: "gray", Labels: []string{"a", "b", "c"}}
	k := o.ArtifactKeyOpts("tikz")
	if k.Format != "tikz" || k.GridColor != "gray" || len(k.Labels) != 3 {
		t.Errorf("ArtifactKeyOpts = %+v", k)
	}

	o.Defaults = StyleDefaults{Fill: "white"}
	if k := o.ArtifactKeyOpts("tikz"); k.DefaultFill != "white" {
		t.Errorf("defaults missing from key options: %+v", k)
	}
}
