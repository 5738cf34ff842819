package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cubetex/pkg/core/render/cube/sink"
	specio "github.com/matzehuels/cubetex/pkg/io"
)

// exampleCommand creates the example command.
func (c *CLI) exampleCommand() *cobra.Command {
	var specPath string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print the annotated tensor example",
		Long: `Print the annotated tensor example.

Writes a standalone LaTeX document of a k × j × i tensor with elided entries,
one color per axis and shaded cells where two axes meet. Pipe it into a file
and compile it with pdflatex.

With --spec the example is written as a spec file instead, ready to edit and
render with 'cubetex render'. The format follows the file extension.`,
		Example: `  cubetex example > tensor.tex
  cubetex example --spec tensor.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := specio.ExampleSpec()

			if specPath != "" {
				if err := specio.ExportFile(specPath, spec); err != nil {
					return err
				}
				ui := c.ui()
				ui.success("Wrote example spec")
				ui.wrote(specPath)
				ui.nextStep("Render", "cubetex render "+specPath)
				return nil
			}

			d, err := spec.Diagram()
			if err != nil {
				return err
			}
			doc, err := sink.RenderTeX(d, spec.Options()...)
			if err != nil {
				return fmt.Errorf("render example: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "write the example spec to this file (.json, .toml or .yaml)")

	return cmd
}
