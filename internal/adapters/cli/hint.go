package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHintCommand creates the hint command: suggest the next forced cell.
func NewHintCommand(rootOpts *RootOptions) *cobra.Command {
	var input inputFlags

	cmd := &cobra.Command{
		Use:   "hint [puzzle]",
		Short: "Suggest the next naked single",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := resolveInput(cmd.Context(), rootOpts, input, args)
			if err != nil {
				return err
			}
			cell, v, ok, err := newService().Hint(cmd.Context(), g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "no naked single available")
				return nil
			}
			fmt.Fprintf(out, "row %d, col %d: only %d fits\n", cell.Row+1, cell.Col+1, v)
			return nil
		},
	}

	addInputFlags(cmd, &input)
	return cmd
}
