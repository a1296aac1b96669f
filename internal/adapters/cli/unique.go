package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewUniqueCommand creates the unique command: check whether a puzzle has
// exactly one solution.
func NewUniqueCommand(rootOpts *RootOptions) *cobra.Command {
	var input inputFlags

	cmd := &cobra.Command{
		Use:   "unique [puzzle]",
		Short: "Check whether a puzzle has exactly one solution",
		Long: `Check whether a Sudoku has exactly one solution. The search stops as
soon as a second solution is found, so this is cheap even on sparse grids.

Example:
  doku unique --file puzzle.txt
  doku unique --id 3f2c... --db ./doku.db`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, source, err := resolveInput(cmd.Context(), rootOpts, input, args)
			if err != nil {
				return err
			}
			unique, st, err := newService().Unique(cmd.Context(), g)
			if err != nil {
				return err
			}
			rootOpts.Logger.Debug("uniqueness checked",
				"source", source,
				"nodes", st.Nodes,
				"dur", st.Duration.Round(time.Microsecond),
			)
			out := cmd.OutOrStdout()
			if unique {
				fmt.Fprintln(out, "puzzle has exactly one solution")
			} else {
				fmt.Fprintln(out, "puzzle does not have a unique solution")
			}
			return nil
		},
	}

	addInputFlags(cmd, &input)
	return cmd
}
