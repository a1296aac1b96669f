package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/doku/internal/adapters/term"
	"svw.info/doku/internal/grid"
	"svw.info/doku/internal/ports"
	"svw.info/doku/internal/solver"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	inputFlags
	Limit   int
	All     bool
	Quiet   bool
	DelayMS int
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a puzzle, animating the search",
		Long: `Solve a Sudoku given as an 81-character string, a file, a stored
identifier, or the built-in demo puzzle. Unless --quiet is set, every
assignment and retraction of the search is drawn in place.

Example:
  doku solve --delay 5
  doku solve --file puzzle.txt --quiet --all
  doku solve --id 3f2c... --db ./doku.db`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args)
		},
	}

	addInputFlags(cmd, &opts.inputFlags)
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 1, "maximum number of solutions (0 = all)")
	cmd.Flags().BoolVar(&opts.All, "all", false, "enumerate every solution (same as --limit 0)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "no animation, print solutions only")
	cmd.Flags().IntVar(&opts.DelayMS, "delay", -1, "milliseconds between animation frames (default from config)")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *SolveOptions, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	g, source, err := resolveInput(ctx, opts.RootOptions, opts.inputFlags, args)
	if err != nil {
		return err
	}
	limit := opts.Limit
	if opts.All {
		limit = 0
	}
	opts.Logger.Debug("solving", "source", source, "limit", limit, "clues", grid.Cells-g.EmptyCount())

	out := cmd.OutOrStdout()

	if opts.Quiet {
		sols, st, err := newService().Solve(ctx, g, limit)
		if err != nil {
			return err
		}
		reportStats(opts, st, len(sols))
		if len(sols) == 0 {
			fmt.Fprintln(out, "No solution found")
			return nil
		}
		for i, sol := range sols {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, sol.Render())
		}
		return nil
	}

	delay := time.Duration(opts.DelayMS) * time.Millisecond
	if opts.DelayMS < 0 {
		delay = time.Duration(opts.Config.DelayMS) * time.Millisecond
	}

	fmt.Fprint(out, term.HideCursor)
	defer fmt.Fprint(out, term.ShowCursor)

	// Streaming sits below the usecase API: the animator consumes raw solver
	// steps, so the animated path talks to the backtracker directly.
	anim := term.New(out, g, delay)
	run := solver.NewBacktracker().Stream(ctx, g, limit)
	if animErr := anim.Run(run.Steps()); animErr != nil {
		// The display is gone; abandon the search and drain what's left.
		cancel()
		for range run.Steps() {
		}
	}
	sols, st, err := run.Wait()
	if err != nil {
		return err
	}
	reportStats(opts, st, len(sols))

	if len(sols) == 0 {
		fmt.Fprintln(out, term.FgRed+"No solution found"+term.Reset)
		return nil
	}
	// The final frame already shows the last solution found.
	fmt.Fprintln(out, term.FgGreen+"Done!"+term.Reset)
	if len(sols) > 1 {
		fmt.Fprintf(out, "\n%d solutions:\n", len(sols))
		for i, sol := range sols {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, sol.Render())
		}
	}
	return nil
}

func reportStats(opts *SolveOptions, st ports.Stats, solutions int) {
	opts.Logger.Debug("search finished",
		"nodes", st.Nodes,
		"dur", st.Duration.Round(time.Microsecond),
		"solutions", solutions,
	)
}
