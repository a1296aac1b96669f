package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command: render a puzzle without solving.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	var input inputFlags

	cmd := &cobra.Command{
		Use:   "show [puzzle]",
		Short: "Render a puzzle without solving it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := resolveInput(cmd.Context(), rootOpts, input, args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), g.Render())
			return nil
		},
	}

	addInputFlags(cmd, &input)
	return cmd
}
