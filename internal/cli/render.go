package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cubetex/pkg/errors"
	specio "github.com/matzehuels/cubetex/pkg/io"
	"github.com/matzehuels/cubetex/pkg/pipeline"
)

// stdoutPath selects standard output as the render destination.
const stdoutPath = "-"

// formatExt maps output formats to file extensions. JSON layouts get a
// compound extension so they never overwrite a JSON spec of the same name.
var formatExt = map[string]string{
	pipeline.FormatTeX:  ".tex",
	pipeline.FormatTikZ: ".tikz",
	pipeline.FormatJSON: ".layout.json",
}

// renderFlags holds the command-line flags of the render command.
type renderFlags struct {
	formats string
	labels  string
	output  string
	noCache bool
	watch   bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render <spec>...",
		Short: "Render diagram specs to TikZ",
		Long: `Render diagram specs to TikZ.

Each spec file (.json, .toml or .yaml) describes a cuboid, a stack of slices
or a flat matrix. By default a standalone LaTeX document is written next to
the spec; use -f to pick other formats:

  tex   standalone document, compiles with pdflatex
  tikz  the bare tikzpicture, for \input into another document
  json  the resolved layout (configuration, faces and bounds)

With a single spec and format, -o names the output file ("-" for stdout).
With several formats it is the base path, and with several specs a directory.

Results are cached locally for faster subsequent runs.`,
		Example: `  cubetex render tensor.toml
  cubetex render -f tex,json -o build/tensor tensor.toml
  cubetex render --labels 'k,j,i' -o - matrix.yaml
  cubetex render --watch specs/*.toml`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeSpecFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(flags.formats)
			opts.Labels = parseLabels(flags.labels)
			c.Config.Render.applyTo(&opts)
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if err := checkOutput(flags.output, len(args), len(opts.Formats)); err != nil {
				return err
			}

			runner, err := c.newRunner(flags.noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			if flags.watch {
				return c.watchRender(cmd.Context(), runner, args, opts, flags.output)
			}
			return c.runRender(cmd.Context(), runner, args, opts, flags.output)
		},
	}

	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): tex (default), tikz, json (comma-separated)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", `output file, base path or directory ("-" for stdout)`)
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-render when a spec file changes")
	cmd.Flags().StringVar(&flags.labels, "labels", "", "axis labels as x,y,z")
	cmd.Flags().StringVar(&opts.GridColor, "grid-color", "", "color of the cell grid lines")
	cmd.Flags().StringVar(&opts.ShadeA, "shade-a", "", "background of the front face")
	cmd.Flags().StringVar(&opts.ShadeB, "shade-b", "", "secondary shade color")
	cmd.Flags().StringVar(&opts.Fill, "fill", "", "fill of cells without an explicit color")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "ignore cached results")

	return cmd
}

// checkOutput rejects -o values that cannot name every output file.
func checkOutput(output string, specs, formats int) error {
	if output == stdoutPath && (specs > 1 || formats > 1) {
		return errors.New(errors.ErrCodeInvalidInput,
			"stdout output needs a single spec and format (got %d specs, %d formats)", specs, formats)
	}
	return nil
}

// runRender renders all inputs as one batch and writes their artifacts.
func (c *CLI) runRender(ctx context.Context, runner *pipeline.Runner, inputs []string, opts pipeline.Options, output string) error {
	timer := startBatch(loggerFromContext(ctx))

	jobs, err := loadJobs(inputs, opts)
	if err != nil {
		return err
	}

	quiet := output == stdoutPath
	var spinner *Spinner
	if !quiet {
		spinner = newRenderSpinner(ctx, c.errOut, len(jobs), opts.Formats)
		for i := range jobs {
			jobs[i].OnDone = func(*pipeline.Result) { spinner.Advance() }
		}
		spinner.Start()
	}

	results, err := runner.RenderBatch(ctx, jobs)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		if spinner != nil && !spinner.Cancelled() {
			c.ui().failure("Render failed")
		}
		return fmt.Errorf("render: %w", err)
	}

	for i, res := range results {
		if err := c.writeArtifacts(artifactWriteParams{
			artifacts: res.Artifacts,
			formats:   opts.Formats,
			input:     inputs[i],
			output:    output,
			multiSpec: len(inputs) > 1,
		}); err != nil {
			return err
		}
		if !quiet {
			c.ui().rendered(res, opts.Formats)
		}
	}
	timer.done(results)
	return nil
}

// loadJobs reads every spec file into a render job.
func loadJobs(inputs []string, opts pipeline.Options) ([]pipeline.Job, error) {
	jobs := make([]pipeline.Job, len(inputs))
	for i, path := range inputs {
		spec, err := specio.ImportFile(path)
		if err != nil {
			return nil, fmt.Errorf("load spec: %w", err)
		}
		jobs[i] = pipeline.Job{Name: path, Spec: spec, Options: opts}
	}
	return jobs, nil
}

// =============================================================================
// Output
// =============================================================================

// artifactWriteParams describes where the artifacts of one spec go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	multiSpec bool
}

// writeArtifacts writes every requested format to its output path.
func (c *CLI) writeArtifacts(p artifactWriteParams) error {
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return errors.New(errors.ErrCodeInternal, "%s: no %s artifact rendered", p.input, format)
		}
		path := outputPath(p.input, p.output, format, p.multiSpec, len(p.formats) > 1)
		if err := writeOutput(path, data); err != nil {
			return err
		}
		if path != stdoutPath {
			c.ui().wrote(path)
		}
	}
	return nil
}

// outputPath derives the destination of one artifact.
//
//   - no output: next to the input, extension replaced
//   - several specs: output is a directory
//   - several formats: output is a base path
//   - otherwise: output is the file itself
func outputPath(input, output, format string, multiSpec, multiFormat bool) string {
	ext := formatExt[format]
	switch {
	case output == "":
		return basePath(input) + ext
	case multiSpec:
		return filepath.Join(output, filepath.Base(basePath(input))+ext)
	case multiFormat:
		return basePath(output) + ext
	default:
		return output
	}
}

// basePath strips a known spec or output extension from path.
func basePath(path string) string {
	lower := strings.ToLower(path)
	for _, ext := range []string{".layout.json", ".json", ".toml", ".yaml", ".yml", ".tex", ".tikz"} {
		if strings.HasSuffix(lower, ext) {
			return path[:len(path)-len(ext)]
		}
	}
	return path
}

// writeOutput writes data to path, creating parent directories as needed.
func writeOutput(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}

// openOutput opens path for writing, or stdout for "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == stdoutPath {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
