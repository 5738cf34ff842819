// Package pipeline provides the render pipeline shared by the CLI and the API.
//
// The pipeline takes a diagram spec, applies render options on top of it and
// produces one artifact per requested format:
//
//  1. Compose: resolve shapes and colors and lay out the faces
//  2. Render: emit tex, tikz or json output
//
// A [Runner] adds caching keyed by the spec content, so repeated renders of
// an unchanged spec are served from the cache, and batch rendering of many
// specs at once.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Render(ctx, spec, pipeline.Options{
//	    Formats: []string{"tex", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tex := result.Artifacts["tex"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cubetex/pkg/cache"
	"github.com/matzehuels/cubetex/pkg/core/grid"
	"github.com/matzehuels/cubetex/pkg/core/render/cube"
	"github.com/matzehuels/cubetex/pkg/errors"
	specio "github.com/matzehuels/cubetex/pkg/io"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// Format constants for output formats.
const (
	FormatTeX  = "tex"
	FormatTikZ = "tikz"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatTeX:  true,
	FormatTikZ: true,
	FormatJSON: true,
}

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatTeX

// DefaultConcurrency bounds the number of specs rendered at once by
// [Runner.RenderBatch].
const DefaultConcurrency = 4

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains the render configuration applied on top of a spec.
// Non-empty values override the matching spec fields; [StyleDefaults] only
// fill the fields the spec leaves empty.
// This struct supports JSON serialization for API requests.
type Options struct {
	Formats []string `json:"formats,omitempty"`

	// Labels overrides the axis labels; it must be empty or hold x, y and z.
	Labels       []string `json:"labels,omitempty"`
	GridColor    string   `json:"grid_color,omitempty"`
	ShadeA       string   `json:"shade_a,omitempty"`
	ShadeB       string   `json:"shade_b,omitempty"`
	Fill         string   `json:"fill,omitempty"`
	Declarations string   `json:"declarations,omitempty"`

	// Defaults rank below the spec, e.g. values from a user config file.
	Defaults StyleDefaults `json:"-"`

	// Refresh skips cache lookups; fresh results are still stored.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// StyleDefaults are fallbacks for style fields a spec leaves empty.
type StyleDefaults struct {
	GridColor string
	ShadeA    string
	ShadeB    string
	Fill      string
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Spec is the spec with all option overrides applied.
	Spec *specio.Spec

	// SpecHash is the content hash of the input spec.
	SpecHash string

	// Kind and Shape describe the rendered diagram.
	Kind  cube.Kind
	Shape grid.Shape3

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Cells      int
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: tex, tikz, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills in unset options.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	o.Formats = dedupe(o.Formats)
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the options without modifying them.
func (o *Options) Validate() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if len(o.Labels) != 0 && len(o.Labels) != 3 {
		return errors.New(errors.ErrCodeInvalidInput,
			"labels must hold x, y and z (got %d values)", len(o.Labels))
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and validates.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Apply returns a copy of spec with the option overrides applied. Style
// fields resolve as override, then spec value, then [Options.Defaults].
func (o *Options) Apply(spec *specio.Spec) *specio.Spec {
	out := *spec
	if len(o.Labels) == 3 {
		out.Labels = &specio.Labels{X: o.Labels[0], Y: o.Labels[1], Z: o.Labels[2]}
	}
	out.GridColor = firstSet(o.GridColor, spec.GridColor, o.Defaults.GridColor)
	out.ShadeA = firstSet(o.ShadeA, spec.ShadeA, o.Defaults.ShadeA)
	out.ShadeB = firstSet(o.ShadeB, spec.ShadeB, o.Defaults.ShadeB)
	out.Fill = firstSet(o.Fill, spec.Fill, o.Defaults.Fill)
	if o.Declarations != "" {
		out.Declarations = o.Declarations
	}
	return &out
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:       format,
		Labels:       o.Labels,
		GridColor:    o.GridColor,
		ShadeA:       o.ShadeA,
		ShadeB:       o.ShadeB,
		Fill:         o.Fill,
		Declarations: o.Declarations,

		DefaultGridColor: o.Defaults.GridColor,
		DefaultShadeA:    o.Defaults.ShadeA,
		DefaultShadeB:    o.Defaults.ShadeB,
		DefaultFill:      o.Defaults.Fill,
	}
}

func dedupe(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := formats[:0:0]
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
