package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/doku/internal/domain"
	"svw.info/doku/internal/grid"
)

// NewSaveCommand creates the save command: store a puzzle for later lookup.
func NewSaveCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		file  string
		name  string
		store storeFlags
	)

	cmd := &cobra.Command{
		Use:   "save [puzzle]",
		Short: "Store a puzzle and print its identifier",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src string
			switch {
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				src = string(data)
			case len(args) == 1:
				src = args[0]
			default:
				return fmt.Errorf("nothing to save: pass a puzzle string or --file")
			}
			g, err := grid.Parse(src)
			if err != nil {
				return err
			}

			svc, closeStore, err := newStoreService(rootOpts, store)
			if err != nil {
				return err
			}
			defer closeStore()

			p := &domain.Puzzle{Name: name, Givens: g.Flat()}
			if err := svc.Save(cmd.Context(), p); err != nil {
				return err
			}
			rootOpts.Logger.Debug("puzzle stored", "id", p.ID, "name", p.Name)
			fmt.Fprintln(cmd.OutOrStdout(), p.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "load puzzle from file")
	cmd.Flags().StringVar(&name, "name", "", "puzzle name")
	addStoreFlags(cmd, &store)
	return cmd
}
