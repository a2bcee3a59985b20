package main

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/parasols-go/maxclique/internal/rlog"
)

// Execute builds and runs the maxclique command tree.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "maxclique [flags] GRAPH-FILE",
		Short:        "Find a maximum clique in a graph by exact branch-and-bound search",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(rlog.WithLogger(cmd.Context(), rlog.New(os.Stderr, level)))

			return bindViper(cmd)
		},
		RunE: runSolve,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().String("config", "", "path to a YAML config file of flag defaults")

	root.Flags().Duration("timeout", 0, "abort the search after this long (0 = no timeout)")
	root.Flags().Int("threads", 1, "number of worker goroutines")
	root.Flags().String("format", "dimacs", "graph file format: dimacs, pairs0, pairs1, net, metis, mivia, lad, lv, adj")
	root.Flags().String("order", "mw", "vertex ordering: deg, deg-reverse, ex, ex-reverse, dynex, mw, mw-reverse, mwsi, mwssi, none, none-reverse")
	root.Flags().Int("initial-bound", 0, "seed the incumbent below the true answer")
	root.Flags().Int("stop-after-finding", 0, "stop as soon as a clique of this size is found (0 = unlimited)")
	root.Flags().Bool("print-incumbents", false, "log the incumbent size after each finished subproblem (debug level, shown with --verbose)")

	return root.ExecuteContext(ctx)
}

// bindViper merges an optional --config file's values in as flag defaults:
// any flag the user didn't set explicitly on the command line falls back
// to the config file, then to the flag's own default.
func bindViper(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	var walkErr error
	for _, name := range []string{"timeout", "threads", "format", "order", "initial-bound", "stop-after-finding", "print-incumbents"} {
		if cmd.Flags().Changed(name) || !v.IsSet(name) {
			continue
		}
		if err := cmd.Flags().Set(name, v.GetString(name)); err != nil {
			walkErr = err
		}
	}

	return walkErr
}
