// Package cli defines the flow command line.
package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/flow/internal/app"
)

// Execute runs the root command.
func Execute() error {
	if err := newRootCmd(app.Run).Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

type runFunc func(context.Context, app.Options) error

func newRootCmd(run runFunc) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "flow [log file]",
		Short: "Follow and search a log file in the terminal",
		Long: "flow tails a log file, splits it into filtered tabs and searches it\n" +
			"as it grows. Without a path it reads log_path from the config file.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Source = args[0]
			}
			if opts.MaxLines < 0 {
				return fmt.Errorf("--lines must not be negative")
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return run(ctx, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default ~/.config/flow/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "prefs file (default ~/.config/flow/prefs.toml)")
	flags.StringVar(&opts.LogFile, "log-file", "", "write diagnostics to this file")
	flags.StringVar(&opts.LogLevel, "log-level", "info", "diagnostics level: debug, info, warn or error")
	flags.IntVarP(&opts.MaxLines, "lines", "n", 0, "lines kept per tab (default max_lines from config)")

	return cmd
}
