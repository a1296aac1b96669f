package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/doku/internal/grid"
)

// DefaultPuzzle is the built-in demo grid used when no input is given.
const DefaultPuzzle = "xxxxxxx9xx9x7xx21xxx4x9xxxxx1xxx8xxx7xx42xxx5xx8xxxx748x1xxxx4xxxxxxxxxxxx9613xxx"

// inputFlags selects the puzzle source: a literal argument, a file, a stored
// identifier, or the built-in default.
type inputFlags struct {
	File string
	ID   string
	storeFlags
}

func addInputFlags(cmd *cobra.Command, f *inputFlags) {
	cmd.Flags().StringVarP(&f.File, "file", "f", "", "load puzzle from file")
	cmd.Flags().StringVar(&f.ID, "id", "", "load puzzle from the store by identifier")
	addStoreFlags(cmd, &f.storeFlags)
}

// resolveInput builds the grid from whichever source is selected. Digits 1–9
// are clues; any other non-newline character is an empty cell.
func resolveInput(ctx context.Context, opts *RootOptions, f inputFlags, args []string) (*grid.Grid, string, error) {
	switch {
	case f.ID != "":
		svc, closeStore, err := newStoreService(opts, f.storeFlags)
		if err != nil {
			return nil, "", err
		}
		defer closeStore()
		p, err := svc.Load(ctx, f.ID)
		if err != nil {
			return nil, "", err
		}
		g, err := grid.Parse(p.Givens)
		if err != nil {
			return nil, "", fmt.Errorf("stored puzzle %s: %w", f.ID, err)
		}
		return g, p.ID, nil
	case f.File != "":
		data, err := os.ReadFile(f.File)
		if err != nil {
			return nil, "", err
		}
		g, err := grid.Parse(string(data))
		return g, f.File, err
	case len(args) == 1:
		g, err := grid.Parse(args[0])
		return g, "argument", err
	default:
		g, err := grid.Parse(DefaultPuzzle)
		return g, "builtin", err
	}
}
