package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jleechanorg/codex-fork/internal/hookspec"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Run lifecycle hooks",
}

var hooksRunCmd = &cobra.Command{
	Use:   "run <event>",
	Short: "Run every hook registered for one lifecycle event",
	Long: `Reads a HookInput JSON object from stdin, runs every matching hook
registered for the given event, and prints the resulting Aggregate as JSON
on stdout. Exits with status 2 if a hook blocked the event, mirroring the
exit-code convention hooks themselves use.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		event := hookspec.Event(args[0])
		if !hookspec.KnownEvents[event] {
			return fmt.Errorf("unknown hook event %q", event)
		}

		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read hook input from stdin: %w", err)
		}

		var input hookspec.Input
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &input); err != nil {
				return fmt.Errorf("decode hook input: %w", err)
			}
		}
		if input.SessionID == "" {
			input.SessionID = uuid.NewString()
		}
		if input.Cwd == "" {
			input.Cwd = flagCwd
		}

		engine, err := loadEngine()
		if err != nil {
			return err
		}

		agg := engine.RunEvent(context.Background(), event, input)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(agg); err != nil {
			return fmt.Errorf("encode aggregate: %w", err)
		}

		if agg.Blocked {
			os.Exit(2)
		}
		return nil
	},
}

func init() {
	hooksCmd.AddCommand(hooksRunCmd)
}
