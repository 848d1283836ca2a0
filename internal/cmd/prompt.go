package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Operate on user prompt text before it reaches the model",
}

var promptRewriteCmd = &cobra.Command{
	Use:   "rewrite [text...]",
	Short: "Rewrite a slash-command invocation into its expanded prompt body",
	Long: `Detects a leading slash-command invocation in the given text and, if
registered, prints its body with $ARGUMENTS substituted. Text that does not
match a registered command is printed unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		cmd.Println(engine.RewritePrompt(strings.Join(args, " ")))
		return nil
	},
}

func init() {
	promptCmd.AddCommand(promptRewriteCmd)
}
