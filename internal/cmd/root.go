// Package cmd implements the codexplus CLI: a small cobra application that
// exercises the extension engine standalone, for local testing and for
// hosts that prefer shelling out over embedding the Go packages directly.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jleechanorg/codex-fork/internal/integration"
	"github.com/jleechanorg/codex-fork/internal/xlog"
)

var (
	flagCwd     string
	flagHome    string
	flagDebug   bool
	flagLogFile string
)

// RootCmd is the codexplus root command.
var RootCmd = &cobra.Command{
	Use:   "codexplus",
	Short: "Slash commands and lifecycle hooks for coding-agent CLIs",
	Long: `codexplus loads project and user scoped slash-command and hook
configuration and exposes three operations a host agent wires into its own
prompt and tool-use pipeline: prompt rewriting, lifecycle event dispatch,
and status-line generation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagLogFile != "" {
			xlog.Setup(flagLogFile, flagDebug)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&flagCwd, "cwd", "", "working directory to resolve project scope from (default: current directory)")
	RootCmd.PersistentFlags().StringVar(&flagHome, "home", "", "home directory to resolve user scope from (default: os.UserHomeDir)")
	RootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging (only takes effect together with --log-file)")
	RootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "rotate logs to this file in addition to stderr")

	RootCmd.AddCommand(commandsCmd, promptCmd, hooksCmd, statusLineCmd, schemaCmd)
}

// Execute runs the codexplus command, exiting the process with status 1 on
// error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "codexplus:", err)
		os.Exit(1)
	}
}

// loadEngine resolves --cwd (defaulting to the process working directory)
// and builds an Engine for it.
func loadEngine() (*integration.Engine, error) {
	cwd := flagCwd
	if cwd == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		cwd = dir
	}
	return integration.Load(cwd, flagHome)
}
