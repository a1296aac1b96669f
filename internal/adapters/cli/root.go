// Package cli implements the doku command tree.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"svw.info/doku/internal/config"
)

// RootOptions holds global flags and the loaded configuration.
type RootOptions struct {
	Verbose    bool
	ConfigPath string

	Config config.Config
	Logger *slog.Logger
}

// NewRootCommand creates the doku root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "doku",
		Short:         "Solve 9×9 Sudoku puzzles in the terminal",
		Long:          "doku solves standard Sudoku puzzles, optionally animating the search,\nand keeps a small puzzle store for lookup by identifier.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			explicit := cmd.Flags().Changed("config")
			cfg, err := config.Load(opts.ConfigPath, explicit)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts.Config = cfg

			level := parseLevel(cfg.LogLevel)
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.Logger = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{Level: level}))
			slog.SetDefault(opts.Logger)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultPath, "config file")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewUniqueCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewHintCommand(opts))
	cmd.AddCommand(NewSaveCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
