package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	specio "github.com/matzehuels/cubetex/pkg/io"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		static bool
		colors bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <spec>",
		Short: "Browse the faces and slices of a spec",
		Long: `Browse the faces and slices of a spec.

Opens an interactive viewer showing each face of a cuboid, each slice of a
stacked diagram or the matrix of a flat diagram as a table, together with the
resolved shape, picture extents and axis labels. Press c to switch between
labels and resolved cell colors.

Use --print to write the first page to stdout instead.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSpecFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := specio.ImportFile(args[0])
			if err != nil {
				return err
			}
			m, err := NewInspectModel(args[0], spec)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", args[0], err)
			}
			m.ShowColors = colors

			if static {
				fmt.Fprint(cmd.OutOrStdout(), m.View())
				return nil
			}
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&static, "print", false, "print instead of opening the viewer")
	cmd.Flags().BoolVarP(&colors, "colors", "c", false, "start with cell colors instead of labels")

	return cmd
}
