package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command: enumerate stored puzzles.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var store storeFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := newStoreService(rootOpts, store)
			if err != nil {
				return err
			}
			defer closeStore()

			metas, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCREATED\tNAME")
			for _, m := range metas {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, time.Unix(m.CreatedAt, 0).UTC().Format("2006-01-02"), m.Name)
			}
			return w.Flush()
		},
	}

	addStoreFlags(cmd, &store)
	return cmd
}
