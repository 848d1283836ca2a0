package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jleechanorg/codex-fork/internal/hookspec"
)

var statusLineCmd = &cobra.Command{
	Use:   "status-line",
	Short: "Run the configured status-line command, if any",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}

		text, mode, ok := engine.StatusLine(context.Background(), hookspec.Input{Cwd: flagCwd})
		if !ok {
			return nil
		}
		cmd.Println(mode, text)
		return nil
	},
}
